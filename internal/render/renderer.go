package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"

	"github.com/goliatone/go-showcase/internal/display"
	"github.com/goliatone/go-showcase/internal/i18n"
	"github.com/goliatone/go-showcase/pkg/interfaces"
)

// TemplateName is the name passed to a host TemplateRenderer.
const TemplateName = "hero_carousel"

//go:embed templates/*.html
var templateFS embed.FS

var defaultTemplate = template.Must(template.New(TemplateName).ParseFS(templateFS, "templates/*.html"))

// Renderer dispatches slides to variants and renders hero regions.
type Renderer struct {
	registry *Registry
	labels   Labels
	interval time.Duration
	host     interfaces.TemplateRenderer
	tmpl     *template.Template
}

type Option func(*Renderer)

func WithRegistry(registry *Registry) Option {
	return func(r *Renderer) {
		if registry != nil {
			r.registry = registry
		}
	}
}

func WithLabels(labels Labels) Option {
	return func(r *Renderer) {
		if labels != nil {
			r.labels = labels
		}
	}
}

// WithInterval sets the auto-advance period exposed to the client script.
func WithInterval(d time.Duration) Option {
	return func(r *Renderer) {
		if d > 0 {
			r.interval = d
		}
	}
}

// WithTemplateRenderer hands HTML output to a host template engine.
func WithTemplateRenderer(host interfaces.TemplateRenderer) Option {
	return func(r *Renderer) {
		r.host = host
	}
}

func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		registry: DefaultRegistry(),
		labels:   i18n.MustDefaultCatalog(),
		interval: 5000 * time.Millisecond,
		tmpl:     defaultTemplate,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// HTML renders the region markup.
func (r *Renderer) HTML(view CarouselView) (template.HTML, error) {
	if r.host != nil {
		out, err := r.host.Render(TemplateName, view)
		if err != nil {
			return "", fmt.Errorf("render: host template: %w", err)
		}
		return template.HTML(out), nil
	}
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "carousel", view); err != nil {
		return "", fmt.Errorf("render: carousel template: %w", err)
	}
	return template.HTML(buf.String()), nil
}

var defaultRenderer = NewRenderer()

// Slide builds a slide view with the built-in variants.
func Slide(slide display.DisplaySlide, labels Labels, isActive bool) SlideView {
	return defaultRenderer.Slide(slide, labels, isActive)
}

// Carousel builds a region view with the built-in variants and labels.
func Carousel(slides []display.DisplaySlide, locale string, opts CarouselOptions) CarouselView {
	return defaultRenderer.Carousel(slides, locale, opts)
}
