package di

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	repocache "github.com/goliatone/go-repository-cache/cache"
	urlkit "github.com/goliatone/go-urlkit"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-showcase/internal/catalog"
	"github.com/goliatone/go-showcase/internal/display"
	"github.com/goliatone/go-showcase/internal/fixtures"
	showcasehttp "github.com/goliatone/go-showcase/internal/http"
	"github.com/goliatone/go-showcase/internal/i18n"
	"github.com/goliatone/go-showcase/internal/logging"
	"github.com/goliatone/go-showcase/internal/markdown"
	"github.com/goliatone/go-showcase/internal/media"
	"github.com/goliatone/go-showcase/internal/migrations"
	"github.com/goliatone/go-showcase/internal/references"
	"github.com/goliatone/go-showcase/internal/render"
	"github.com/goliatone/go-showcase/internal/runtimeconfig"
	"github.com/goliatone/go-showcase/internal/slides"
	"github.com/goliatone/go-showcase/pkg/activity"
	"github.com/goliatone/go-showcase/pkg/activity/usersink"
	"github.com/goliatone/go-showcase/pkg/interfaces"
)

// Container wires module dependencies. Without a SQL storage provider every
// repository is in memory.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider
	template       interfaces.TemplateRenderer
	activitySink   interfaces.ActivitySink
	activityHooks  activity.Hooks
	markdownFS     fs.FS
	labelsFS       fs.FS
	labelsFile     string

	bunDB         *bun.DB
	ownsDB        bool
	openers       map[string]StorageOpener
	cacheTTL      time.Duration
	cacheService  repocache.CacheService
	keySerializer repocache.KeySerializer
	routeManager  *urlkit.RouteManager

	catalogRepos catalog.Repositories
	imageRepo    media.ImageRepository
	slideRepo    slides.SlideRepository
	sectionRepo  slides.HeroSectionRepository

	labels   *i18n.Catalog
	emitter  *activity.Emitter
	catalog  catalog.CatalogService
	media    media.Service
	resolver *references.Resolver
	slides   slides.Service
	builder  *display.Builder
	renderer *render.Renderer
	importer *catalog.ArticleImporter
	seeder   *fixtures.Seeder
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithLoggerProvider overrides the provider chosen from the logging config.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithBunDB supplies an open database; the container will not close it.
func WithBunDB(db *bun.DB) Option {
	return func(c *Container) {
		c.bunDB = db
	}
}

// WithCache overrides the default cache service.
func WithCache(service repocache.CacheService, serializer repocache.KeySerializer) Option {
	return func(c *Container) {
		c.cacheService = service
		c.keySerializer = serializer
	}
}

// WithTemplate lets the host render the hero region with its own engine.
func WithTemplate(tr interfaces.TemplateRenderer) Option {
	return func(c *Container) {
		c.template = tr
	}
}

// WithActivitySink forwards slide mutations to a go-users activity sink.
func WithActivitySink(sink interfaces.ActivitySink) Option {
	return func(c *Container) {
		c.activitySink = sink
	}
}

// WithActivityHooks adds hooks notified on every slide mutation.
func WithActivityHooks(hooks ...activity.Hook) Option {
	return func(c *Container) {
		c.activityHooks = append(c.activityHooks, hooks...)
	}
}

// WithMarkdownFS enables the markdown article importer over fsys.
func WithMarkdownFS(fsys fs.FS) Option {
	return func(c *Container) {
		c.markdownFS = fsys
	}
}

// WithLabelOverrides layers the label bundle stored at name in fsys over the
// built-in English/Arabic copy.
func WithLabelOverrides(fsys fs.FS, name string) Option {
	return func(c *Container) {
		c.labelsFS = fsys
		c.labelsFile = name
	}
}

// WithStorageOpener registers or replaces the opener for a storage provider.
func WithStorageOpener(provider string, opener StorageOpener) Option {
	return func(c *Container) {
		if opener != nil {
			c.openers[normalize(provider)] = opener
		}
	}
}

func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cacheTTL := cfg.Cache.DefaultTTL
	if cacheTTL <= 0 {
		cacheTTL = time.Minute
	}

	c := &Container{
		Config:       cfg,
		cacheTTL:     cacheTTL,
		openers:      defaultOpeners(),
		catalogRepos: catalog.NewMemoryRepositories(),
		imageRepo:    media.NewMemoryImageRepository(),
		slideRepo:    slides.NewMemorySlideRepository(),
		sectionRepo:  slides.NewMemorySectionRepository(),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	if err := c.configureLoggerProvider(); err != nil {
		return nil, err
	}
	if err := c.configureStorage(context.Background()); err != nil {
		return nil, err
	}
	c.configureCacheDefaults()
	c.configureRepositories()
	if err := c.configureServices(); err != nil {
		_ = c.Close()
		return nil, err
	}

	logging.ModuleLogger(c.loggerProvider, "showcase").Info("container.configured",
		"storage", c.storageProvider(),
		"cache", c.cacheService != nil,
		"activity", c.emitter.Enabled(),
	)
	return c, nil
}

func (c *Container) configureCacheDefaults() {
	if !c.Config.Cache.Enabled || c.bunDB == nil {
		return
	}

	if c.cacheService == nil {
		cfg := repocache.DefaultConfig()
		if c.cacheTTL > 0 {
			cfg.TTL = c.cacheTTL
		}
		service, err := repocache.NewCacheService(cfg)
		if err == nil {
			c.cacheService = service
		}
	}

	if c.cacheService != nil && c.keySerializer == nil {
		c.keySerializer = repocache.NewDefaultKeySerializer()
	}
}

func (c *Container) configureRepositories() {
	if c.bunDB == nil {
		return
	}
	c.catalogRepos = catalog.NewBunRepositoriesWithCache(c.bunDB, c.cacheService, c.keySerializer)
	c.imageRepo = media.NewBunImageRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
	c.slideRepo = slides.NewBunSlideRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
	c.sectionRepo = slides.NewBunHeroSectionRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
}

func (c *Container) configureServices() error {
	provider := c.loggerProvider

	fixture, err := i18n.DefaultFixture()
	if err != nil {
		return fmt.Errorf("di: label fixture: %w", err)
	}
	if c.labelsFS != nil {
		override, err := i18n.LoadFixture(c.labelsFS, c.labelsFile)
		if err != nil {
			return fmt.Errorf("di: label overrides: %w", err)
		}
		fixture = fixture.Overlay(override)
	}
	labels, err := i18n.NewCatalog(i18n.FromModuleConfig(c.Config.DefaultLocale, c.Config.Locales), fixture.Translations)
	if err != nil {
		return fmt.Errorf("di: label catalog: %w", err)
	}
	c.labels = labels

	hooks := append(activity.Hooks{}, c.activityHooks...)
	if c.activitySink != nil {
		hooks = append(hooks, usersink.Hook{Sink: c.activitySink})
	}
	if !c.Config.Features.Activity {
		hooks = nil
	}
	c.emitter = activity.NewEmitter(hooks)

	c.catalog = catalog.NewService(c.catalogRepos, catalog.WithLogger(logging.CatalogLogger(provider)))
	c.media = media.NewService(c.imageRepo)

	registry, err := references.NewRegistry(references.BuiltinKinds(c.catalog, c.media)...)
	if err != nil {
		return fmt.Errorf("di: reference registry: %w", err)
	}
	resolverOpts := []references.ResolverOption{references.WithLogger(logging.ReferencesLogger(provider))}
	if paths := c.configureRoutes(); paths != nil {
		resolverOpts = append(resolverOpts, references.WithPathBuilder(paths))
	}
	c.resolver = references.NewResolver(registry, resolverOpts...)

	c.slides = slides.NewService(c.slideRepo, c.sectionRepo,
		slides.WithLogger(logging.SlidesLogger(provider)),
		slides.WithActivity(c.emitter),
		slides.WithReferenceCheck(c.resolver),
		slides.WithServiceLookup(c.catalog),
	)

	c.builder = display.NewBuilder(c.resolver, c.labels,
		display.WithImages(c.media),
		display.WithSlideSource(c.slides),
		display.WithLocales(c.Config.DefaultLocale, c.Config.Locales...),
		display.WithLogger(logging.DisplayLogger(provider)),
	)

	renderOpts := []render.Option{
		render.WithLabels(c.labels),
		render.WithInterval(c.Config.Carousel.Interval),
	}
	if c.template != nil {
		renderOpts = append(renderOpts, render.WithTemplateRenderer(c.template))
	}
	c.renderer = render.NewRenderer(renderOpts...)

	if c.markdownFS != nil {
		loader := markdown.NewLoader(c.markdownFS, nil, "")
		c.importer = catalog.NewArticleImporter(c.catalog, loader,
			catalog.WithMedia(c.media),
			catalog.WithImportLogger(logging.CatalogLogger(provider)),
		)
	}

	seeder, err := fixtures.NewSeeder(c.catalog, c.media, c.slides, fixtures.WithLogger(logging.FixturesLogger(provider)))
	if err != nil {
		return fmt.Errorf("di: fixtures seeder: %w", err)
	}
	c.seeder = seeder
	return nil
}

// configureRoutes returns urlkit-backed paths when a route config is set.
func (c *Container) configureRoutes() references.PathBuilder {
	routes := c.Config.Routes
	if routes.URLKit == nil {
		return nil
	}
	c.routeManager = urlkit.NewRouteManager(routes.URLKit)
	return references.NewURLKitPaths(references.URLKitOptions{
		Manager:      c.routeManager,
		LocaleGroups: routes.LocaleGroups,
		DefaultGroup: routes.LocaleGroups[normalize(c.Config.DefaultLocale)],
		RouteNames:   routes.RouteNames,
	})
}

// Migrate applies the embedded SQL migrations. It is a no-op for in-memory
// storage.
func (c *Container) Migrate(ctx context.Context) ([]string, error) {
	if c.bunDB == nil {
		return nil, nil
	}
	runner, err := migrations.NewRunner(c.bunDB,
		migrations.WithLogger(logging.ModuleLogger(c.loggerProvider, "showcase.migrations")))
	if err != nil {
		return nil, err
	}
	return runner.Up(ctx)
}

// Close releases the database when the container opened it.
func (c *Container) Close() error {
	if c == nil || c.bunDB == nil || !c.ownsDB {
		return nil
	}
	err := c.bunDB.Close()
	if errors.Is(err, sql.ErrConnDone) {
		return nil
	}
	return err
}

func (c *Container) LoggerProvider() interfaces.LoggerProvider { return c.loggerProvider }
func (c *Container) BunDB() *bun.DB                            { return c.bunDB }
func (c *Container) RouteManager() *urlkit.RouteManager        { return c.routeManager }
func (c *Container) Labels() *i18n.Catalog                     { return c.labels }
func (c *Container) CatalogService() catalog.CatalogService    { return c.catalog }
func (c *Container) MediaService() media.Service               { return c.media }
func (c *Container) ReferenceResolver() *references.Resolver   { return c.resolver }
func (c *Container) SlideService() slides.Service              { return c.slides }
func (c *Container) DisplayBuilder() *display.Builder          { return c.builder }
func (c *Container) Renderer() *render.Renderer                { return c.renderer }
func (c *Container) Seeder() *fixtures.Seeder                  { return c.seeder }

// ArticleImporter is nil unless WithMarkdownFS was supplied.
func (c *Container) ArticleImporter() *catalog.ArticleImporter { return c.importer }

// HeroAPI builds the public hero endpoints over the container services.
func (c *Container) HeroAPI(opts ...showcasehttp.HeroOption) *showcasehttp.HeroAPI {
	base := []showcasehttp.HeroOption{
		showcasehttp.WithRenderer(c.renderer),
		showcasehttp.WithCarousel(c.Config.Carousel.Interval, c.Config.Carousel.PauseOnHover),
		showcasehttp.WithHeroLogger(logging.HTTPLogger(c.loggerProvider)),
	}
	return showcasehttp.NewHeroAPI(c.builder, append(base, opts...)...)
}

// AdminAPI builds the admin JSON endpoints over the slide service.
func (c *Container) AdminAPI(opts ...showcasehttp.AdminOption) *showcasehttp.AdminAPI {
	base := []showcasehttp.AdminOption{
		showcasehttp.WithSlideService(c.slides),
		showcasehttp.WithAdminLogger(logging.HTTPLogger(c.loggerProvider)),
	}
	return showcasehttp.NewAdminAPI(append(base, opts...)...)
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
