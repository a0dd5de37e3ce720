package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/goliatone/go-showcase"
	internalcommands "github.com/goliatone/go-showcase/internal/commands"
	markdowncmd "github.com/goliatone/go-showcase/internal/commands/markdown"
	showcasehttp "github.com/goliatone/go-showcase/internal/http"
)

var moduleBuilder = showcase.New

const usage = `usage: showcase <command> [flags]

commands:
  serve    run the hero and admin HTTP endpoints
  migrate  apply SQL migrations
  seed     load the demo catalog and slides
  import   import markdown articles into the catalog`

var errUsage = errors.New(usage)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("showcase: %v", err)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	switch args[0] {
	case "serve":
		return runServe(ctx, args[1:], out)
	case "migrate":
		return runMigrate(ctx, args[1:], out)
	case "seed":
		return runSeed(ctx, args[1:], out)
	case "import":
		return runImport(ctx, args[1:], out)
	}
	return fmt.Errorf("unknown command %q\n%w", args[0], errUsage)
}

// moduleFlags are shared by every command. Defaults come from SHOWCASE_*
// environment variables.
type moduleFlags struct {
	storage       *string
	dsn           *string
	defaultLocale *string
	locales       *string
	logProvider   *string
	logLevel      *string
	logFormat     *string
	interval      *time.Duration
	cache         *bool
	permissions   *bool
	activity      *bool
}

func bindModuleFlags(fs *flag.FlagSet) moduleFlags {
	defaults := showcase.DefaultConfig()
	return moduleFlags{
		storage:       fs.String("storage", envOr("SHOWCASE_STORAGE", defaults.Storage.Provider), "Storage provider: memory, sqlite or postgres"),
		dsn:           fs.String("dsn", envOr("SHOWCASE_DSN", ""), "Database DSN for sql storage"),
		defaultLocale: fs.String("default-locale", envOr("SHOWCASE_DEFAULT_LOCALE", defaults.DefaultLocale), "Fallback locale"),
		locales:       fs.String("locales", envOr("SHOWCASE_LOCALES", strings.Join(defaults.Locales, ",")), "Comma separated list of served locales"),
		logProvider:   fs.String("log-provider", envOr("SHOWCASE_LOG_PROVIDER", defaults.Logging.Provider), "Logging provider: console or gologger"),
		logLevel:      fs.String("log-level", envOr("SHOWCASE_LOG_LEVEL", defaults.Logging.Level), "Minimum log level"),
		logFormat:     fs.String("log-format", envOr("SHOWCASE_LOG_FORMAT", defaults.Logging.Format), "go-logger output format"),
		interval:      fs.Duration("interval", envDuration("SHOWCASE_CAROUSEL_INTERVAL", defaults.Carousel.Interval), "Carousel auto-advance interval"),
		cache:         fs.Bool("cache", envBool("SHOWCASE_CACHE", defaults.Cache.Enabled), "Cache sql repository reads"),
		permissions:   fs.Bool("permissions", envBool("SHOWCASE_PERMISSIONS", defaults.Features.Permissions), "Enforce roles from the X-Showcase-Role header"),
		activity:      fs.Bool("activity", envBool("SHOWCASE_ACTIVITY", defaults.Features.Activity), "Emit slide activity events"),
	}
}

func (f moduleFlags) config() showcase.Config {
	cfg := showcase.DefaultConfig()
	cfg.Storage.Provider = *f.storage
	cfg.Storage.DSN = *f.dsn
	cfg.DefaultLocale = *f.defaultLocale
	cfg.Locales = splitList(*f.locales)
	cfg.Logging.Provider = *f.logProvider
	cfg.Logging.Level = *f.logLevel
	cfg.Logging.Format = *f.logFormat
	cfg.Carousel.Interval = *f.interval
	cfg.Cache.Enabled = *f.cache
	cfg.Features.Permissions = *f.permissions
	cfg.Features.Activity = *f.activity
	return cfg
}

func (f moduleFlags) open(ctx context.Context, opts ...showcase.Option) (*showcase.Module, error) {
	module, err := moduleBuilder(f.config(), opts...)
	if err != nil {
		return nil, fmt.Errorf("bootstrap module: %w", err)
	}
	if _, err := module.Migrate(ctx); err != nil {
		_ = module.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return module, nil
}

func runServe(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	shared := bindModuleFlags(fs)
	addr := fs.String("addr", envOr("SHOWCASE_ADDR", ":8080"), "HTTP listen address")
	seed := fs.Bool("seed", envBool("SHOWCASE_SEED", false), "Load the demo fixture before serving")
	heroBase := fs.String("hero-base", "/hero", "Base path of the public hero routes")
	adminBase := fs.String("admin-base", "/admin/api", "Base path of the admin API")
	labels := fs.String("labels", envOr("SHOWCASE_LABELS", ""), "JSON label bundle overriding the built-in copy")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var opts []showcase.Option
	if *labels != "" {
		opts = append(opts, showcase.WithLabelOverrides(os.DirFS(filepath.Dir(*labels)), filepath.Base(*labels)))
	}
	module, err := shared.open(ctx, opts...)
	if err != nil {
		return err
	}
	defer module.Close()

	if *seed {
		if err := seedDemo(ctx, module, out); err != nil {
			return err
		}
	}

	handler, err := module.Handler(
		[]showcase.HeroRouteOption{showcasehttp.WithHeroBasePath(*heroBase)},
		[]showcase.AdminRouteOption{showcasehttp.WithBasePath(*adminBase)},
	)
	if err != nil {
		return fmt.Errorf("mount routes: %w", err)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := &http.Server{
		Addr:              *addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()
	fmt.Fprintf(out, "showcase listening on %s\n", *addr)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	}
}

func runMigrate(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("migrate", flag.ContinueOnError)
	shared := bindModuleFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	module, err := moduleBuilder(shared.config())
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}
	defer module.Close()

	applied, err := module.Migrate(ctx)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if len(applied) == 0 {
		fmt.Fprintln(out, "no pending migrations")
		return nil
	}
	for _, name := range applied {
		fmt.Fprintf(out, "applied %s\n", name)
	}
	return nil
}

func runSeed(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	shared := bindModuleFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	module, err := shared.open(ctx)
	if err != nil {
		return err
	}
	defer module.Close()
	return seedDemo(ctx, module, out)
}

func runImport(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)
	shared := bindModuleFlags(fs)
	contentDir := fs.String("content-dir", envOr("SHOWCASE_CONTENT_DIR", "content"), "Path to the markdown content root")
	directory := fs.String("directory", ".", "Directory to import, relative to the content root")
	if err := fs.Parse(args); err != nil {
		return err
	}

	module, err := shared.open(ctx, showcase.WithMarkdownFS(os.DirFS(*contentDir)))
	if err != nil {
		return err
	}
	defer module.Close()

	container := module.Container()
	importer := container.ArticleImporter()
	if importer == nil {
		return errors.New("markdown importer not configured")
	}
	handler := markdowncmd.NewImportArticlesHandler(importer,
		internalcommands.CommandLogger(container.LoggerProvider(), "markdown"),
		markdowncmd.FeatureGates{},
	)
	if err := handler.Execute(ctx, markdowncmd.ImportArticlesCommand{Directory: *directory}); err != nil {
		return fmt.Errorf("execute import command: %w", err)
	}
	articles, err := module.Catalog().ListArticles(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "markdown import finished, %d articles in catalog\n", len(articles))
	return nil
}

func seedDemo(ctx context.Context, module *showcase.Module, out io.Writer) error {
	summary, err := module.SeedDemo(ctx)
	if err != nil {
		return fmt.Errorf("seed demo: %w", err)
	}
	fmt.Fprintf(out, "seeded %d records, skipped %d\n", summary.Total(), summary.Skipped)
	return nil
}
