package showcase_test

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goliatone/go-showcase"
	"github.com/goliatone/go-showcase/internal/fixtures"
	"github.com/goliatone/go-showcase/internal/identity"
)

func newModule(t *testing.T, mutate func(*showcase.Config)) *showcase.Module {
	t.Helper()
	cfg := showcase.DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	module, err := showcase.New(cfg)
	if err != nil {
		t.Fatalf("new module: %v", err)
	}
	t.Cleanup(func() { _ = module.Close() })
	if _, err := module.SeedDemo(context.Background()); err != nil {
		t.Fatalf("seed demo: %v", err)
	}
	return module
}

func TestModuleSectionAndRender(t *testing.T) {
	ctx := context.Background()
	module := newModule(t, nil)

	built, err := module.Section(ctx, "home", "en")
	if err != nil {
		t.Fatalf("section: %v", err)
	}
	if len(built) == 0 {
		t.Fatal("expected demo slides in the home section")
	}

	arabic, err := module.Section(ctx, "home", "ar")
	if err != nil {
		t.Fatalf("arabic section: %v", err)
	}
	if len(arabic) != len(built) {
		t.Fatalf("expected same slide count across locales, got %d and %d", len(arabic), len(built))
	}

	html, err := module.RenderSection(ctx, "home", "fr", showcase.CarouselOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	markup := string(html)
	if !strings.Contains(markup, `id="hero-home"`) || !strings.Contains(markup, `lang="en"`) {
		t.Fatalf("expected default-locale carousel markup, got %s", markup)
	}
}

func TestModuleServiceSlides(t *testing.T) {
	module := newModule(t, nil)

	built, err := module.ServiceSlides(context.Background(), showcase.ServiceKindImport, identity.EntityUUID(fixtures.KindService, "import"), "en")
	if err != nil {
		t.Fatalf("service slides: %v", err)
	}
	if len(built) != 1 {
		t.Fatalf("expected one import service slide, got %d", len(built))
	}
}

func TestModuleSeedDemoIsIdempotent(t *testing.T) {
	module := newModule(t, nil)

	summary, err := module.SeedDemo(context.Background())
	if err != nil {
		t.Fatalf("reseed: %v", err)
	}
	if summary.Total() != 0 || summary.Skipped == 0 {
		t.Fatalf("expected reseed to skip existing rows, got %+v", summary)
	}
}

func TestModuleHandlerEnforcesRoles(t *testing.T) {
	module := newModule(t, func(cfg *showcase.Config) {
		cfg.Features.Permissions = true
	})

	handler, err := module.Handler(nil, nil)
	if err != nil {
		t.Fatalf("handler: %v", err)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/api/hero-sections", nil))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 without role, got %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/admin/api/hero-sections", nil)
	req.Header.Set("X-Showcase-Role", "viewer")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for viewer, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/hero/ar/sections/home", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `dir="rtl"`) {
		t.Fatalf("expected public rtl hero, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestModuleRegisterCommands(t *testing.T) {
	module := newModule(t, nil)

	result, err := module.RegisterCommands(showcase.CommandOptions{})
	if err != nil {
		t.Fatalf("register commands: %v", err)
	}
	if len(result.Handlers) == 0 {
		t.Fatal("expected command handlers")
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := showcase.DefaultConfig()
	cfg.DefaultLocale = ""
	if _, err := showcase.New(cfg); !errors.Is(err, showcase.ErrDefaultLocaleRequired) {
		t.Fatalf("expected default locale error, got %v", err)
	}

	cfg = showcase.DefaultConfig()
	cfg.Logging.Provider = "syslog"
	if _, err := showcase.New(cfg); !errors.Is(err, showcase.ErrLoggingProviderUnknown) {
		t.Fatalf("expected logging provider error, got %v", err)
	}
}

func TestGetMigrationsFS(t *testing.T) {
	for _, dialect := range []string{showcase.DialectSQLite, showcase.DialectPostgres} {
		fsys, err := showcase.GetMigrationsFS(dialect)
		if err != nil {
			t.Fatalf("%s migrations: %v", dialect, err)
		}
		matches, err := fs.Glob(fsys, "*.up.sql")
		if err != nil || len(matches) == 0 {
			t.Fatalf("expected %s up migrations, got %v %v", dialect, matches, err)
		}
	}
	if _, err := showcase.GetMigrationsFS("mysql"); err == nil {
		t.Fatal("expected unsupported dialect error")
	}
}
