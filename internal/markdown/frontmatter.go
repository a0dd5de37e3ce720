package markdown

import (
	"bytes"
	"fmt"
	"time"

	"github.com/adrg/frontmatter"
)

// FrontMatter is the metadata block accepted at the top of an article file.
type FrontMatter struct {
	TitleEn     string    `yaml:"title_en"`
	TitleAr     string    `yaml:"title_ar"`
	SlugEn      string    `yaml:"slug_en"`
	SlugAr      string    `yaml:"slug_ar"`
	SummaryEn   string    `yaml:"summary_en"`
	SummaryAr   string    `yaml:"summary_ar"`
	Category    string    `yaml:"category"`
	Image       string    `yaml:"image"`
	PublishedAt time.Time `yaml:"published_at"`
	Draft       bool      `yaml:"draft"`
}

// ParseFrontMatter splits source into its metadata and Markdown body.
func ParseFrontMatter(source []byte) (FrontMatter, []byte, error) {
	var meta FrontMatter
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return FrontMatter{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}
	return meta, body, nil
}
