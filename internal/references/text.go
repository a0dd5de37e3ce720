package references

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-showcase/internal/domain"
)

var strictPolicy = bluemonday.StrictPolicy()

// PlainText strips markup from editor-authored text and collapses whitespace.
func PlainText(text domain.Localized) domain.Localized {
	return domain.Localized{En: stripHTML(text.En), Ar: stripHTML(text.Ar)}
}

func stripHTML(value string) string {
	if value == "" {
		return ""
	}
	// Block tags become spaces so adjacent paragraphs do not run together.
	spaced := strings.NewReplacer("</p>", "</p> ", "<br>", " ", "<br/>", " ", "<br />", " ", "</li>", "</li> ").Replace(value)
	stripped := html.UnescapeString(strictPolicy.Sanitize(spaced))
	return strings.Join(strings.Fields(stripped), " ")
}
