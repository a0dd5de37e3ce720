// Package markdown parses article sources: YAML front matter for the
// bilingual metadata and a goldmark body rendered to sanitised HTML.
package markdown
