package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/goliatone/go-showcase/internal/domain"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// BunRepository implements Repository over go-repository-bun with optional caching.
type BunRepository[T Record] struct {
	repo     repository.Repository[T]
	resource string
	columns  []string
	slugEn   string
	slugAr   string
}

type bunSpec[T Record] struct {
	resource  string
	newRecord func() T
	columns   []string
	slugEn    string
	slugAr    string
}

func newBunRepository[T Record](db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer, spec bunSpec[T]) *BunRepository[T] {
	base := newRecordRepository(db, spec.newRecord, spec.slugEn)
	base = wrapWithCache(base, cacheService, serializer)
	slugAr := spec.slugAr
	if slugAr == "" {
		slugAr = spec.slugEn
	}
	return &BunRepository[T]{
		repo:     base,
		resource: spec.resource,
		columns:  spec.columns,
		slugEn:   spec.slugEn,
		slugAr:   slugAr,
	}
}

func wrapWithCache[T any](base repository.Repository[T], cacheService cache.CacheService, serializer cache.KeySerializer) repository.Repository[T] {
	if cacheService == nil || serializer == nil {
		return base
	}
	return repositorycache.New(base, cacheService, serializer)
}

var (
	categoryColumns    = []string{"slug", "name_en", "name_ar", "updated_at", "deleted_at"}
	projectTypeColumns = categoryColumns
	articleColumns     = []string{
		"title_en", "title_ar", "slug_en", "slug_ar", "summary_en", "summary_ar",
		"body_en", "body_ar", "category_id", "image_id", "published_at", "updated_at", "deleted_at",
	}
	productColumns = []string{
		"title_en", "title_ar", "slug_en", "slug_ar", "description_en", "description_ar",
		"category_id", "image_id", "updated_at", "deleted_at",
	}
	serviceColumns = []string{
		"kind", "title_en", "title_ar", "slug_en", "slug_ar", "description_en", "description_ar",
		"image_id", "updated_at", "deleted_at",
	}
	projectColumns = []string{
		"title_en", "title_ar", "slug_en", "slug_ar", "description_en", "description_ar",
		"location_en", "location_ar", "year", "project_type_id", "image_id", "updated_at", "deleted_at",
	}
)

// NewBunRepositories returns bun-backed stores for every catalog entity.
func NewBunRepositories(db *bun.DB) Repositories {
	return NewBunRepositoriesWithCache(db, nil, nil)
}

func NewBunRepositoriesWithCache(db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer) Repositories {
	return Repositories{
		Categories: newBunRepository(db, cacheService, serializer, bunSpec[*Category]{
			resource: "category", newRecord: func() *Category { return &Category{} },
			columns: categoryColumns, slugEn: "slug",
		}),
		ProjectTypes: newBunRepository(db, cacheService, serializer, bunSpec[*ProjectType]{
			resource: "project_type", newRecord: func() *ProjectType { return &ProjectType{} },
			columns: projectTypeColumns, slugEn: "slug",
		}),
		Articles: newBunRepository(db, cacheService, serializer, bunSpec[*Article]{
			resource: "article", newRecord: func() *Article { return &Article{} },
			columns: articleColumns, slugEn: "slug_en", slugAr: "slug_ar",
		}),
		Products: newBunRepository(db, cacheService, serializer, bunSpec[*Product]{
			resource: "product", newRecord: func() *Product { return &Product{} },
			columns: productColumns, slugEn: "slug_en", slugAr: "slug_ar",
		}),
		Services: newBunRepository(db, cacheService, serializer, bunSpec[*Service]{
			resource: "service", newRecord: func() *Service { return &Service{} },
			columns: serviceColumns, slugEn: "slug_en", slugAr: "slug_ar",
		}),
		Projects: newBunRepository(db, cacheService, serializer, bunSpec[*Project]{
			resource: "project", newRecord: func() *Project { return &Project{} },
			columns: projectColumns, slugEn: "slug_en", slugAr: "slug_ar",
		}),
	}
}

func (r *BunRepository[T]) Create(ctx context.Context, record T) (T, error) {
	created, err := r.repo.Create(ctx, record)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("%s repository error: %w", r.resource, err)
	}
	return created, nil
}

func (r *BunRepository[T]) Update(ctx context.Context, record T) (T, error) {
	updated, err := r.repo.Update(ctx, record,
		repository.UpdateByID(record.GetID().String()),
		repository.UpdateColumns(r.columns...),
	)
	if err != nil {
		var zero T
		return zero, mapRepositoryError(err, r.resource, record.GetID().String())
	}
	return updated, nil
}

func (r *BunRepository[T]) GetByID(ctx context.Context, id uuid.UUID) (T, error) {
	record, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		var zero T
		return zero, mapRepositoryError(err, r.resource, id.String())
	}
	return record, nil
}

func (r *BunRepository[T]) GetBySlug(ctx context.Context, locale, slug string) (T, error) {
	column := r.slugEn
	if strings.EqualFold(strings.TrimSpace(locale), domain.LocaleArabic) {
		column = r.slugAr
	}
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.? = ?", bun.Ident(column), strings.TrimSpace(slug)).
				Where("?TableAlias.deleted_at IS NULL")
		}),
		repository.SelectPaginate(1, 0),
	)
	var zero T
	if err != nil {
		return zero, mapRepositoryError(err, r.resource, slug)
	}
	if len(records) == 0 {
		return zero, &NotFoundError{Resource: r.resource, Key: slug}
	}
	return records[0], nil
}

func (r *BunRepository[T]) List(ctx context.Context, opts ListOptions) ([]T, error) {
	records, _, err := r.repo.List(ctx, repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
		if !opts.IncludeDeleted {
			q = q.Where("?TableAlias.deleted_at IS NULL")
		}
		return q.OrderExpr("?TableAlias.created_at ASC, ?TableAlias.id ASC")
	}))
	if err != nil {
		return nil, fmt.Errorf("%s repository error: %w", r.resource, err)
	}
	return records, nil
}

func mapRepositoryError(err error, resource, key string) error {
	if err == nil {
		return nil
	}
	if errors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{Resource: resource, Key: key}
	}
	return fmt.Errorf("%s repository error: %w", resource, err)
}
