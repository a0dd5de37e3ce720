package catalog_test

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-showcase/internal/catalog"
	"github.com/goliatone/go-showcase/internal/domain"
	"github.com/goliatone/go-showcase/internal/markdown"
	"github.com/goliatone/go-showcase/internal/media"
)

func newTestService(t *testing.T) catalog.CatalogService {
	t.Helper()
	fixed := time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC)
	return catalog.NewService(catalog.NewMemoryRepositories(), catalog.WithNow(func() time.Time { return fixed }))
}

func TestCreateArticleDerivesSlugs(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	article, err := svc.CreateArticle(ctx, catalog.ArticleInput{
		Title:   domain.Localized{En: "Cold Chain Logistics", Ar: "سلسلة التبريد"},
		Summary: domain.Localized{En: "How we keep it cool"},
	})
	if err != nil {
		t.Fatalf("create article: %v", err)
	}
	if article.SlugEn != "cold-chain-logistics" {
		t.Fatalf("expected english slug cold-chain-logistics, got %q", article.SlugEn)
	}
	if article.SlugAr != "سلسلة-التبريد" {
		t.Fatalf("expected arabic slug, got %q", article.SlugAr)
	}
	if article.ID == uuid.Nil {
		t.Fatalf("expected generated id")
	}

	bySlug, err := svc.GetArticleBySlug(ctx, domain.LocaleArabic, article.SlugAr)
	if err != nil {
		t.Fatalf("get by arabic slug: %v", err)
	}
	if bySlug.ID != article.ID {
		t.Fatalf("expected %s, got %s", article.ID, bySlug.ID)
	}
}

func TestCreateArticleRequiresEnglishTitle(t *testing.T) {
	svc := newTestService(t)
	if _, err := svc.CreateArticle(context.Background(), catalog.ArticleInput{
		Title: domain.Localized{Ar: "عنوان"},
	}); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestCreateArticleRejectsDuplicateSlug(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	if _, err := svc.CreateArticle(ctx, catalog.ArticleInput{Title: domain.Localized{En: "Report"}}); err != nil {
		t.Fatalf("create: %v", err)
	}
	_, err := svc.CreateArticle(ctx, catalog.ArticleInput{Title: domain.Localized{En: "report"}})
	if !errors.Is(err, catalog.ErrSlugExists) {
		t.Fatalf("expected ErrSlugExists, got %v", err)
	}
}

func TestCreateArticleUnknownCategory(t *testing.T) {
	svc := newTestService(t)
	missing := uuid.New()
	_, err := svc.CreateArticle(context.Background(), catalog.ArticleInput{
		Title:      domain.Localized{En: "Orphan"},
		CategoryID: &missing,
	})
	if !errors.Is(err, catalog.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestDeleteArticleHidesRecord(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	article, err := svc.CreateArticle(ctx, catalog.ArticleInput{Title: domain.Localized{En: "Gone Soon"}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.DeleteArticle(ctx, article.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := svc.GetArticle(ctx, article.ID); !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if _, err := svc.GetArticleBySlug(ctx, "en", "gone-soon"); !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("expected slug lookup to miss, got %v", err)
	}
	list, err := svc.ListArticles(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected deleted article to be hidden, got %d", len(list))
	}

	// The slug is free again once the record is deleted.
	if _, err := svc.CreateArticle(ctx, catalog.ArticleInput{Title: domain.Localized{En: "Gone Soon"}}); err != nil {
		t.Fatalf("recreate: %v", err)
	}
}

func TestUpdateProductKeepsOwnSlug(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	product, err := svc.CreateProduct(ctx, catalog.ProductInput{Title: domain.Localized{En: "Steel Beam"}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	updated, err := svc.UpdateProduct(ctx, catalog.ProductInput{
		ID:          product.ID,
		Title:       domain.Localized{En: "Steel Beam"},
		Description: domain.Localized{En: "Now galvanised"},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.DescriptionEn != "Now galvanised" || !updated.CreatedAt.Equal(product.CreatedAt) {
		t.Fatalf("unexpected update result: %+v", updated)
	}
}

func TestServicesScopedByKind(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	main, err := svc.CreateService(ctx, catalog.ServiceInput{Kind: catalog.ServiceKindMain, Title: domain.Localized{En: "Consulting"}})
	if err != nil {
		t.Fatalf("create main: %v", err)
	}
	if _, err := svc.CreateService(ctx, catalog.ServiceInput{Kind: catalog.ServiceKindImport, Title: domain.Localized{En: "Consulting"}}); err != nil {
		t.Fatalf("same slug under another kind should be allowed: %v", err)
	}
	if _, err := svc.CreateService(ctx, catalog.ServiceInput{Kind: catalog.ServiceKindMain, Title: domain.Localized{En: "Consulting"}}); !errors.Is(err, catalog.ErrSlugExists) {
		t.Fatalf("expected ErrSlugExists within kind, got %v", err)
	}
	if _, err := svc.CreateService(ctx, catalog.ServiceInput{Kind: "other", Title: domain.Localized{En: "Bad"}}); err == nil {
		t.Fatalf("expected invalid kind to fail")
	}

	mains, err := svc.ListServices(ctx, catalog.ServiceKindMain)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(mains) != 1 || mains[0].ID != main.ID {
		t.Fatalf("expected only the main service, got %+v", mains)
	}
	all, _ := svc.ListServices(ctx, "")
	if len(all) != 2 {
		t.Fatalf("expected two services overall, got %d", len(all))
	}
}

func TestCreateProjectValidatesYearAndType(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	if _, err := svc.CreateProject(ctx, catalog.ProjectInput{Title: domain.Localized{En: "Old"}, Year: 1200}); err == nil {
		t.Fatalf("expected year validation error")
	}
	missing := uuid.New()
	if _, err := svc.CreateProject(ctx, catalog.ProjectInput{Title: domain.Localized{En: "Typed"}, ProjectTypeID: &missing}); !errors.Is(err, catalog.ErrProjectTypeMissing) {
		t.Fatalf("expected ErrProjectTypeMissing, got %v", err)
	}

	pt, err := svc.CreateProjectType(ctx, catalog.ProjectTypeInput{Name: domain.Localized{En: "Residential", Ar: "سكني"}})
	if err != nil {
		t.Fatalf("create project type: %v", err)
	}
	project, err := svc.CreateProject(ctx, catalog.ProjectInput{
		Title:         domain.Localized{En: "Tower A"},
		Location:      domain.Localized{En: "Riyadh", Ar: "الرياض"},
		Year:          2021,
		ProjectTypeID: &pt.ID,
	})
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	if project.Location().In("ar") != "الرياض" || project.Year != 2021 {
		t.Fatalf("unexpected project: %+v", project)
	}
}

func TestArticleImporterUpsertsBySlug(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	if _, err := svc.CreateCategory(ctx, catalog.CategoryInput{Name: domain.Localized{En: "News"}}); err != nil {
		t.Fatalf("create category: %v", err)
	}
	mediaSvc := media.NewService(media.NewMemoryImageRepository())

	files := fstest.MapFS{
		"articles/launch.md": &fstest.MapFile{Data: []byte("---\ntitle_en: Launch Day\ntitle_ar: يوم الإطلاق\ncategory: news\nimage: /uploads/launch.jpg\npublished_at: 2024-03-05T00:00:00Z\n---\n# Hello\n")},
		"articles/draft.md":  &fstest.MapFile{Data: []byte("---\ntitle_en: Not Yet\ndraft: true\n---\nbody\n")},
	}
	importer := catalog.NewArticleImporter(svc, markdown.NewLoader(files, nil, ""), catalog.WithMedia(mediaSvc))

	first, err := importer.ImportDirectory(ctx, "articles")
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(first.Created) != 1 || len(first.Updated) != 0 {
		t.Fatalf("expected one created article, got %+v", first)
	}

	article, err := svc.GetArticle(ctx, first.Created[0])
	if err != nil {
		t.Fatalf("get imported: %v", err)
	}
	if article.CategoryID == nil || article.ImageID == nil || article.PublishedAt == nil {
		t.Fatalf("expected category, image and date to be set: %+v", article)
	}
	if article.SlugEn != "launch-day" {
		t.Fatalf("expected slug launch-day, got %q", article.SlugEn)
	}

	second, err := importer.ImportDirectory(ctx, "articles")
	if err != nil {
		t.Fatalf("reimport: %v", err)
	}
	if len(second.Created) != 0 || len(second.Updated) != 1 || second.Updated[0] != article.ID {
		t.Fatalf("expected update of existing article, got %+v", second)
	}
}
