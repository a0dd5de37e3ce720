package showcase

import (
	"context"
	"html/template"

	"github.com/goliatone/go-showcase/internal/carousel"
	"github.com/goliatone/go-showcase/internal/i18n"
	"github.com/goliatone/go-showcase/internal/logging"
	"github.com/goliatone/go-showcase/internal/render"
)

type (
	CarouselController = carousel.Controller
	CarouselState      = carousel.State
	CarouselOption     = carousel.Option
	CarouselKey        = carousel.Key
	CarouselClock      = carousel.Clock
	ManualClock        = carousel.ManualClock
	Badge              = render.Badge
)

const (
	KeyArrowLeft  = carousel.KeyArrowLeft
	KeyArrowRight = carousel.KeyArrowRight
)

var (
	NewManualClock           = carousel.NewManualClock
	WithCarouselClock        = carousel.WithClock
	WithCarouselInterval     = carousel.WithInterval
	WithCarouselPauseOnHover = carousel.WithPauseOnHover
	OnCarouselChange         = carousel.OnChange
)

// HeroRegion is one mounted hero carousel. The embedded controller owns the
// current slide and the auto-advance timer; View and HTML render from its
// state. Close the region when the page goes away.
type HeroRegion struct {
	*carousel.Controller
	renderer *render.Renderer
	locale   string
	id       string
}

// Carousel builds the slides of section code in locale and mounts a running
// controller over them. Interval and pause-on-hover come from the module
// config unless opts override them; arrow keys follow the locale direction.
func (m *Module) Carousel(ctx context.Context, code, locale string, opts ...CarouselOption) (*HeroRegion, error) {
	builder := m.container.DisplayBuilder()
	locale = builder.Locale(locale)
	built, err := builder.BuildSection(ctx, code, locale)
	if err != nil {
		return nil, err
	}

	cfg := m.container.Config.Carousel
	base := []carousel.Option{
		carousel.WithInterval(cfg.Interval),
		carousel.WithPauseOnHover(cfg.PauseOnHover),
		carousel.WithDirection(i18n.DirectionOf(locale)),
		carousel.WithLogger(logging.CarouselLogger(m.container.LoggerProvider())),
	}
	controller := carousel.NewController(built, append(base, opts...)...)
	controller.Start()

	return &HeroRegion{
		Controller: controller,
		renderer:   m.container.Renderer(),
		locale:     locale,
		id:         "hero-" + code,
	}, nil
}

// Locale is the locale the region was built for.
func (r *HeroRegion) Locale() string { return r.locale }

// View renders the region with the controller's current slide active.
func (r *HeroRegion) View() CarouselView {
	state := r.State()
	return r.renderer.Carousel(r.Slides(), r.locale, render.CarouselOptions{
		ID:           r.id,
		ActiveIndex:  state.Index,
		Interval:     state.Interval,
		PauseOnHover: state.PauseOnHover,
	})
}

func (r *HeroRegion) HTML() (template.HTML, error) {
	return r.renderer.HTML(r.View())
}
