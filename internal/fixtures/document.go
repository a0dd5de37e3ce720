package fixtures

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"time"

	"github.com/goliatone/go-showcase/internal/domain"
	"github.com/goliatone/go-showcase/internal/validation"
)

//go:embed schema.json
var schemaDocument []byte

var documentSchema = validation.MustCompile("showcase-fixtures.json", schemaDocument)

// Document is a seed file for sections, catalog entities, images and slides.
// Entities refer to each other by fixture key.
type Document struct {
	Sections     []Section     `json:"sections"`
	Images       []Image       `json:"images"`
	Categories   []Category    `json:"categories"`
	ProjectTypes []ProjectType `json:"project_types"`
	Articles     []Article     `json:"articles"`
	Products     []Product     `json:"products"`
	Services     []Service     `json:"services"`
	Projects     []Project     `json:"projects"`
	Slides       []Slide       `json:"slides"`
}

type Section struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type Image struct {
	Key    string `json:"key"`
	URL    string `json:"url"`
	AltEn  string `json:"alt_en"`
	AltAr  string `json:"alt_ar"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type Category struct {
	Key  string           `json:"key"`
	Slug string           `json:"slug"`
	Name domain.Localized `json:"name"`
}

type ProjectType struct {
	Key  string           `json:"key"`
	Slug string           `json:"slug"`
	Name domain.Localized `json:"name"`
}

type Article struct {
	Key         string           `json:"key"`
	Title       domain.Localized `json:"title"`
	Slug        domain.Localized `json:"slug"`
	Summary     domain.Localized `json:"summary"`
	Body        domain.Localized `json:"body"`
	Category    string           `json:"category"`
	Image       string           `json:"image"`
	PublishedAt *time.Time       `json:"published_at"`
}

type Product struct {
	Key         string           `json:"key"`
	Title       domain.Localized `json:"title"`
	Slug        domain.Localized `json:"slug"`
	Description domain.Localized `json:"description"`
	Category    string           `json:"category"`
	Image       string           `json:"image"`
}

type Service struct {
	Key         string           `json:"key"`
	Kind        string           `json:"kind"`
	Title       domain.Localized `json:"title"`
	Slug        domain.Localized `json:"slug"`
	Description domain.Localized `json:"description"`
	Image       string           `json:"image"`
}

type Project struct {
	Key         string           `json:"key"`
	Title       domain.Localized `json:"title"`
	Slug        domain.Localized `json:"slug"`
	Description domain.Localized `json:"description"`
	Location    domain.Localized `json:"location"`
	Year        int              `json:"year"`
	ProjectType string           `json:"project_type"`
	Image       string           `json:"image"`
}

// Slide sits in Section or on the page of Service. Reference names the
// fixture key of the entity a non-custom slide points at.
type Slide struct {
	Key             string           `json:"key"`
	Section         string           `json:"section"`
	Service         string           `json:"service"`
	Type            domain.SlideType `json:"type"`
	Reference       string           `json:"reference"`
	Title           domain.Localized `json:"title"`
	Subtitle        domain.Localized `json:"subtitle"`
	BackgroundImage string           `json:"background_image"`
	BackgroundColor string           `json:"background_color"`
	OverlayOpacity  *int             `json:"overlay_opacity"`
	CTA             *SlideCTA        `json:"cta"`
	Active          *bool            `json:"active"`
}

type SlideCTA struct {
	Enabled bool             `json:"enabled"`
	Text    domain.Localized `json:"text"`
	Href    string           `json:"href"`
}

// Parse validates raw against the fixture schema and decodes it.
func Parse(raw []byte) (*Document, error) {
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()
	var generic any
	if err := decoder.Decode(&generic); err != nil {
		return nil, fmt.Errorf("fixtures: decode: %w", err)
	}
	if err := documentSchema.Validate(generic); err != nil {
		return nil, fmt.Errorf("fixtures: %w", err)
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("fixtures: decode: %w", err)
	}
	return &doc, nil
}
