package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/goliatone/go-showcase/internal/domain"
	"github.com/goliatone/go-showcase/internal/logging"
	"github.com/goliatone/go-showcase/internal/markdown"
	"github.com/goliatone/go-showcase/internal/media"
	"github.com/goliatone/go-showcase/pkg/interfaces"
)

// ImportResult summarises an article import run.
type ImportResult struct {
	Created []uuid.UUID
	Updated []uuid.UUID
}

// ArticleImporter loads Markdown articles and upserts them by English slug.
type ArticleImporter struct {
	catalog CatalogService
	loader  *markdown.Loader
	media   media.Service
	logger  interfaces.Logger
}

type ImporterOption func(*ArticleImporter)

// WithMedia registers front matter image URLs in the media library.
func WithMedia(svc media.Service) ImporterOption {
	return func(i *ArticleImporter) {
		i.media = svc
	}
}

func WithImportLogger(logger interfaces.Logger) ImporterOption {
	return func(i *ArticleImporter) {
		if logger != nil {
			i.logger = logger
		}
	}
}

func NewArticleImporter(catalog CatalogService, loader *markdown.Loader, opts ...ImporterOption) *ArticleImporter {
	if catalog == nil || loader == nil {
		panic("catalog: importer requires a catalog service and a loader")
	}
	imp := &ArticleImporter{catalog: catalog, loader: loader, logger: logging.NoOp()}
	for _, opt := range opts {
		opt(imp)
	}
	return imp
}

// ImportDirectory imports every non-draft document under dir. The first
// failing document stops the run; earlier writes are kept.
func (i *ArticleImporter) ImportDirectory(ctx context.Context, dir string) (ImportResult, error) {
	var result ImportResult
	docs, err := i.loader.LoadDirectory(ctx, dir)
	if err != nil {
		return result, err
	}
	for _, doc := range docs {
		article, created, err := i.importDocument(ctx, doc)
		if err != nil {
			return result, fmt.Errorf("import %s: %w", doc.Path, err)
		}
		if created {
			result.Created = append(result.Created, article.ID)
		} else {
			result.Updated = append(result.Updated, article.ID)
		}
	}
	i.logger.Info("catalog.import.completed", "dir", dir, "created", len(result.Created), "updated", len(result.Updated))
	return result, nil
}

func (i *ArticleImporter) importDocument(ctx context.Context, doc *markdown.Document) (*Article, bool, error) {
	meta := doc.FrontMatter
	input := ArticleInput{
		Title:   domain.Localized{En: meta.TitleEn, Ar: meta.TitleAr},
		Slug:    domain.Localized{En: meta.SlugEn, Ar: meta.SlugAr},
		Summary: domain.Localized{En: meta.SummaryEn, Ar: meta.SummaryAr},
		Body:    domain.Localized{En: string(doc.HTML)},
	}
	if !meta.PublishedAt.IsZero() {
		at := meta.PublishedAt.UTC()
		input.PublishedAt = &at
	}
	if category := strings.TrimSpace(meta.Category); category != "" {
		found, err := i.catalog.GetCategoryBySlug(ctx, NormalizeSlug(category))
		if err != nil {
			return nil, false, err
		}
		input.CategoryID = &found.ID
	}
	if image := strings.TrimSpace(meta.Image); image != "" && i.media != nil {
		registered, err := i.media.Register(ctx, media.RegisterImageInput{URL: image, AltEn: meta.TitleEn, AltAr: meta.TitleAr})
		if err != nil {
			return nil, false, err
		}
		input.ImageID = &registered.ID
	}

	slugEn, _ := localizedSlugs(meta.SlugEn, "", meta.TitleEn, "")
	existing, err := i.catalog.GetArticleBySlug(ctx, domain.LocaleEnglish, slugEn)
	switch {
	case err == nil:
		input.ID = existing.ID
		updated, err := i.catalog.UpdateArticle(ctx, input)
		return updated, false, err
	case errors.Is(err, ErrNotFound):
		created, err := i.catalog.CreateArticle(ctx, input)
		return created, true, err
	default:
		return nil, false, err
	}
}
