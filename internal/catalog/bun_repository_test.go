package catalog_test

import (
	"context"
	"errors"
	"testing"
	"time"

	repocache "github.com/goliatone/go-repository-cache/cache"
	"github.com/google/uuid"

	"github.com/goliatone/go-showcase/internal/catalog"
	"github.com/goliatone/go-showcase/internal/domain"
	"github.com/goliatone/go-showcase/pkg/testsupport"
)

func TestCatalogServiceWithBunStorage(t *testing.T) {
	ctx := context.Background()

	db, err := testsupport.NewBunDB(ctx, "catalog_service",
		(*catalog.Category)(nil),
		(*catalog.ProjectType)(nil),
		(*catalog.Article)(nil),
		(*catalog.Product)(nil),
		(*catalog.Service)(nil),
		(*catalog.Project)(nil),
	)
	if err != nil {
		t.Fatalf("new bun db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	svc := catalog.NewService(catalog.NewBunRepositories(db))

	category, err := svc.CreateCategory(ctx, catalog.CategoryInput{Name: domain.Localized{En: "Industry", Ar: "صناعة"}})
	if err != nil {
		t.Fatalf("create category: %v", err)
	}
	article, err := svc.CreateArticle(ctx, catalog.ArticleInput{
		Title:      domain.Localized{En: "Annual Review", Ar: "المراجعة السنوية"},
		Summary:    domain.Localized{En: "Twelve months in review"},
		CategoryID: &category.ID,
	})
	if err != nil {
		t.Fatalf("create article: %v", err)
	}

	got, err := svc.GetArticleBySlug(ctx, "en", "annual-review")
	if err != nil {
		t.Fatalf("get by slug: %v", err)
	}
	if got.ID != article.ID || got.CategoryID == nil || *got.CategoryID != category.ID {
		t.Fatalf("unexpected article: %+v", got)
	}
	if _, err := svc.GetArticleBySlug(ctx, "ar", "المراجعة-السنوية"); err != nil {
		t.Fatalf("get by arabic slug: %v", err)
	}

	if err := svc.DeleteArticle(ctx, article.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.GetArticle(ctx, article.ID); !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if _, err := svc.GetProduct(ctx, uuid.New()); !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown product, got %v", err)
	}

	svcRecord, err := svc.CreateService(ctx, catalog.ServiceInput{Kind: catalog.ServiceKindContracting, Title: domain.Localized{En: "Fit Out"}})
	if err != nil {
		t.Fatalf("create service: %v", err)
	}
	found, err := svc.GetServiceBySlug(ctx, catalog.ServiceKindContracting, "en", "fit-out")
	if err != nil || found.ID != svcRecord.ID {
		t.Fatalf("expected contracting service, got %+v (%v)", found, err)
	}
}

func TestCatalogReadsWithBunStorageAndCache(t *testing.T) {
	ctx := context.Background()

	db, err := testsupport.NewBunDB(ctx, "catalog_cached",
		(*catalog.Category)(nil),
		(*catalog.ProjectType)(nil),
		(*catalog.Article)(nil),
		(*catalog.Product)(nil),
		(*catalog.Service)(nil),
		(*catalog.Project)(nil),
	)
	if err != nil {
		t.Fatalf("new bun db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	cacheCfg := repocache.DefaultConfig()
	cacheCfg.TTL = time.Minute
	cacheService, err := repocache.NewCacheService(cacheCfg)
	if err != nil {
		t.Fatalf("new cache service: %v", err)
	}
	svc := catalog.NewService(catalog.NewBunRepositoriesWithCache(db, cacheService, repocache.NewDefaultKeySerializer()))

	project, err := svc.CreateProject(ctx, catalog.ProjectInput{Title: domain.Localized{En: "Tower 1"}, Year: 2023})
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	for i := 0; i < 2; i++ {
		got, err := svc.GetProject(ctx, project.ID)
		if err != nil {
			t.Fatalf("get project (pass %d): %v", i, err)
		}
		if got.SlugEn != "tower-1" || got.Year != 2023 {
			t.Fatalf("unexpected project: %+v", got)
		}
	}
}
