package showcase

import (
	"context"
	"errors"
	"html/template"
	"net/http"

	"github.com/google/uuid"

	"github.com/goliatone/go-showcase/commands"
	"github.com/goliatone/go-showcase/internal/catalog"
	"github.com/goliatone/go-showcase/internal/di"
	"github.com/goliatone/go-showcase/internal/display"
	"github.com/goliatone/go-showcase/internal/fixtures"
	showcasehttp "github.com/goliatone/go-showcase/internal/http"
	"github.com/goliatone/go-showcase/internal/media"
	"github.com/goliatone/go-showcase/internal/render"
	"github.com/goliatone/go-showcase/internal/slides"
)

// SlideService exports the slide management contract.
type SlideService = slides.Service

// CatalogService exports the catalog contract for articles, products,
// services and projects.
type CatalogService = catalog.CatalogService

// MediaService exports the image registry contract.
type MediaService = media.Service

type (
	SlideInput       = slides.SlideInput
	SectionInput     = slides.SectionInput
	SlideRecord      = slides.Record
	DisplaySlide     = display.DisplaySlide
	CarouselOptions  = render.CarouselOptions
	CarouselView     = render.CarouselView
	ServiceKind      = catalog.ServiceKind
	SeedSummary      = fixtures.Summary
	Option           = di.Option
	StorageOpener    = di.StorageOpener
	CommandOptions   = commands.RegistrationOptions
	CommandsResult   = commands.RegistrationResult
	HeroRouteOption  = showcasehttp.HeroOption
	AdminRouteOption = showcasehttp.AdminOption
)

const (
	ServiceKindImport      = catalog.ServiceKindImport
	ServiceKindContracting = catalog.ServiceKindContracting
)

var (
	WithLoggerProvider = di.WithLoggerProvider
	WithBunDB          = di.WithBunDB
	WithCache          = di.WithCache
	WithTemplate       = di.WithTemplate
	WithActivitySink   = di.WithActivitySink
	WithActivityHooks  = di.WithActivityHooks
	WithMarkdownFS     = di.WithMarkdownFS
	WithLabelOverrides = di.WithLabelOverrides
	WithStorageOpener  = di.WithStorageOpener
)

// Module represents the top level showcase runtime facade.
type Module struct {
	container *di.Container
}

// New constructs a showcase module using the provided configuration and optional DI overrides.
func New(cfg Config, opts ...Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

func (m *Module) Slides() SlideService {
	return m.container.SlideService()
}

func (m *Module) Catalog() CatalogService {
	return m.container.CatalogService()
}

func (m *Module) Media() MediaService {
	return m.container.MediaService()
}

// Migrate applies pending SQL migrations. In-memory storage has none.
func (m *Module) Migrate(ctx context.Context) ([]string, error) {
	return m.container.Migrate(ctx)
}

// SeedDemo loads the bundled demo catalog, sections and slides. Rows that
// already exist are skipped.
func (m *Module) SeedDemo(ctx context.Context) (SeedSummary, error) {
	return m.container.Seeder().SeedFile(ctx, fixtures.Data, fixtures.DemoFile)
}

// Section returns the display slides of a hero section in locale.
func (m *Module) Section(ctx context.Context, code, locale string) ([]DisplaySlide, error) {
	builder := m.container.DisplayBuilder()
	return builder.BuildSection(ctx, code, builder.Locale(locale))
}

// ServiceSlides returns the display slides owned by an import or contracting service.
func (m *Module) ServiceSlides(ctx context.Context, kind ServiceKind, serviceID uuid.UUID, locale string) ([]DisplaySlide, error) {
	builder := m.container.DisplayBuilder()
	return builder.BuildServiceSlides(ctx, kind, serviceID, builder.Locale(locale))
}

// RenderSection renders the hero carousel of a section as HTML with
// opts.ActiveIndex as the visible slide. Use Carousel for a region driven by
// a running controller.
func (m *Module) RenderSection(ctx context.Context, code, locale string, opts CarouselOptions) (template.HTML, error) {
	builder := m.container.DisplayBuilder()
	locale = builder.Locale(locale)
	built, err := builder.BuildSection(ctx, code, locale)
	if err != nil {
		return "", err
	}
	if opts.ID == "" {
		opts.ID = "hero-" + code
	}
	if opts.Interval <= 0 {
		opts.Interval = m.container.Config.Carousel.Interval
	}
	// Hover pausing applies when either the config or the caller enables it.
	opts.PauseOnHover = opts.PauseOnHover || m.container.Config.Carousel.PauseOnHover
	renderer := m.container.Renderer()
	return renderer.HTML(renderer.Carousel(built, locale, opts))
}

// Handler mounts the public hero routes and the admin API on one mux. When
// the permissions feature is on, the caller role is read from the
// X-Showcase-Role header.
func (m *Module) Handler(hero []HeroRouteOption, admin []AdminRouteOption) (http.Handler, error) {
	mux := http.NewServeMux()
	if err := errors.Join(
		m.container.HeroAPI(hero...).Register(mux),
		m.container.AdminAPI(admin...).Register(mux),
	); err != nil {
		return nil, err
	}
	if m.container.Config.Features.Permissions {
		return showcasehttp.RoleFromHeader(showcasehttp.DefaultRoleHeader, mux), nil
	}
	return mux, nil
}

// RegisterCommands builds the command handlers and hands them to the
// registry, dispatcher and cron integrations in opts.
func (m *Module) RegisterCommands(opts CommandOptions) (*CommandsResult, error) {
	return commands.RegisterContainerCommands(m.container, opts)
}

func (m *Module) Close() error {
	return m.container.Close()
}
