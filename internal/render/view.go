package render

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-showcase/internal/display"
	"github.com/goliatone/go-showcase/internal/domain"
	"github.com/goliatone/go-showcase/internal/i18n"
)

// Arrow actions.
const (
	ActionPrevious = "previous"
	ActionNext     = "next"
)

// SlideView is the template model of one slide. Inactive slides stay in the
// tree but are hidden and take no pointer events.
type SlideView struct {
	ID              uuid.UUID        `json:"id"`
	Type            domain.SlideType `json:"slide_type"`
	Active          bool             `json:"active"`
	Title           string           `json:"title"`
	Subtitle        string           `json:"subtitle,omitempty"`
	ImageURL        string           `json:"image_url,omitempty"`
	BackgroundColor string           `json:"background_color,omitempty"`
	OverlayOpacity  int              `json:"overlay_opacity"`
	OverlayAlpha    string           `json:"-"`
	Badges          []Badge          `json:"badges,omitempty"`
	CTA             display.CTA      `json:"cta"`
}

// ArrowView is one navigation arrow. Side is where it is drawn; Action is
// what it does, which flips for right-to-left locales.
type ArrowView struct {
	Side   string `json:"side"`
	Action string `json:"action"`
	Label  string `json:"label"`
}

type DotView struct {
	Index  int    `json:"index"`
	Label  string `json:"label"`
	Active bool   `json:"active"`
}

// CarouselView is the template model of a whole hero region.
type CarouselView struct {
	ID           string         `json:"id"`
	Locale       string         `json:"locale"`
	Direction    i18n.Direction `json:"direction"`
	Label        string         `json:"label"`
	Empty        bool           `json:"empty"`
	EmptyMessage string         `json:"empty_message,omitempty"`
	Slides       []SlideView    `json:"slides"`
	ActiveIndex  int            `json:"active_index"`
	ShowArrows   bool           `json:"show_arrows"`
	ShowDots     bool           `json:"show_dots"`
	LeftArrow    ArrowView      `json:"left_arrow"`
	RightArrow   ArrowView      `json:"right_arrow"`
	Dots         []DotView      `json:"dots,omitempty"`
	IntervalMS   int64          `json:"interval_ms"`
	AutoAdvance  bool           `json:"auto_advance"`
	PauseOnHover bool           `json:"pause_on_hover"`
}

// CarouselOptions tunes the region view.
type CarouselOptions struct {
	ID           string
	ActiveIndex  int
	Interval     time.Duration
	PauseOnHover bool
	Labels       Labels
}

// Slide builds the view of one slide.
func (r *Renderer) Slide(slide display.DisplaySlide, labels Labels, isActive bool) SlideView {
	if labels == nil {
		labels = r.labels
	}
	return SlideView{
		ID:              slide.ID,
		Type:            slide.Type,
		Active:          isActive,
		Title:           slide.Title,
		Subtitle:        slide.Subtitle,
		ImageURL:        slide.ImageURL,
		BackgroundColor: slide.BackgroundColor,
		OverlayOpacity:  slide.OverlayOpacity,
		OverlayAlpha:    overlayAlpha(slide.OverlayOpacity),
		Badges:          r.registry.Lookup(slide.Type).Badges(slide, labels),
		CTA:             slide.CTA,
	}
}

// Carousel builds the region view. Arrows and dots only appear when there is
// more than one slide.
func (r *Renderer) Carousel(slides []display.DisplaySlide, locale string, opts CarouselOptions) CarouselView {
	labels := opts.Labels
	if labels == nil {
		labels = r.labels
	}
	locale = i18n.Normalize(locale)
	if locale == "" && len(slides) > 0 {
		locale = slides[0].Locale
	}
	dir := i18n.DirectionOf(locale)

	interval := opts.Interval
	if interval <= 0 {
		interval = r.interval
	}

	view := CarouselView{
		ID:           opts.ID,
		Locale:       locale,
		Direction:    dir,
		Label:        labels.T(locale, "carousel.region"),
		Slides:       make([]SlideView, 0, len(slides)),
		IntervalMS:   interval.Milliseconds(),
		PauseOnHover: opts.PauseOnHover,
	}
	if view.ID == "" {
		view.ID = "hero-carousel"
	}

	if len(slides) == 0 {
		view.Empty = true
		view.EmptyMessage = labels.T(locale, "carousel.empty")
		return view
	}

	active := opts.ActiveIndex
	if active < 0 || active >= len(slides) {
		active = 0
	}
	view.ActiveIndex = active
	for i, slide := range slides {
		view.Slides = append(view.Slides, r.Slide(slide, labels, i == active))
	}

	if len(slides) == 1 {
		return view
	}
	view.AutoAdvance = true
	view.ShowArrows = true
	view.ShowDots = true
	view.LeftArrow, view.RightArrow = arrows(dir, locale, labels)
	view.Dots = make([]DotView, len(slides))
	for i := range slides {
		view.Dots[i] = DotView{
			Index:  i,
			Label:  labels.T(locale, "carousel.go_to", i+1),
			Active: i == active,
		}
	}
	return view
}

func arrows(dir i18n.Direction, locale string, labels Labels) (ArrowView, ArrowView) {
	left, right := ActionPrevious, ActionNext
	if dir == i18n.RTL {
		left, right = right, left
	}
	return ArrowView{Side: "left", Action: left, Label: labels.T(locale, "carousel."+left)},
		ArrowView{Side: "right", Action: right, Label: labels.T(locale, "carousel."+right)}
}

func overlayAlpha(opacity int) string {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 100 {
		opacity = 100
	}
	return fmt.Sprintf("%.2f", float64(opacity)/100)
}
