package display

import (
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-showcase/internal/domain"
	"github.com/goliatone/go-showcase/internal/i18n"
)

// DisplaySlide is a slide resolved for one locale and ready to render. It is
// computed per request and never stored.
type DisplaySlide struct {
	ID        uuid.UUID        `json:"id"`
	Type      domain.SlideType `json:"slide_type"`
	Locale    string           `json:"locale"`
	Direction i18n.Direction   `json:"direction"`

	Title           string `json:"title"`
	Subtitle        string `json:"subtitle"`
	ImageURL        string `json:"image_url,omitempty"`
	BackgroundColor string `json:"background_color,omitempty"`
	OverlayOpacity  int    `json:"overlay_opacity"`

	CTA       CTA        `json:"cta"`
	IsActive  bool       `json:"is_active"`
	SortOrder int        `json:"sort_order"`
	Reference *Reference `json:"reference,omitempty"`
}

type CTA struct {
	Visible bool   `json:"visible"`
	Text    string `json:"text"`
	Href    string `json:"href,omitempty"`
}

// Reference is the resolved entity with every field fixed to one locale.
// Only the metadata relevant to the slide type is set.
type Reference struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Slug        string     `json:"slug"`
	ImageURL    string     `json:"image_url,omitempty"`
	Href        string     `json:"href,omitempty"`
	Category    string     `json:"category,omitempty"`
	ProjectType string     `json:"project_type,omitempty"`
	Location    string     `json:"location,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	Year        int        `json:"year,omitempty"`
}
