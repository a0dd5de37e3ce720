package slides

import (
	"context"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	cache "github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

var slideColumns = []string{
	"slide_type", "hero_section_id", "parent_import_service_id", "parent_contracting_service_id",
	"article_id", "product_id", "main_service_id", "import_service_id", "contracting_service_id", "project_id",
	"title_en", "title_ar", "subtitle_en", "subtitle_ar", "background_image_id", "background_color",
	"overlay_opacity", "cta_enabled", "cta_text_en", "cta_text_ar", "cta_href", "is_active", "sort_order",
	"updated_at",
}

// BunSlideRepository implements SlideRepository with optional caching.
type BunSlideRepository struct {
	repo         repository.Repository[*Slide]
	cacheService cache.CacheService
	cachePrefix  string
}

const slideNamespace = "hero_slide"

// NewBunSlideRepository creates a slide repository without caching.
func NewBunSlideRepository(db *bun.DB) *BunSlideRepository {
	return NewBunSlideRepositoryWithCache(db, nil, nil)
}

// NewBunSlideRepositoryWithCache creates a slide repository with caching services.
func NewBunSlideRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer) *BunSlideRepository {
	base := NewSlideRepository(db)
	var svc cache.CacheService
	if cacheService != nil && serializer != nil {
		base = repositorycache.New(base, cacheService, serializer)
		svc = cacheService
	}
	prefix := ""
	if svc != nil {
		prefix = cachePrefix(slideNamespace)
	}
	return &BunSlideRepository{repo: base, cacheService: svc, cachePrefix: prefix}
}

func (r *BunSlideRepository) Create(ctx context.Context, slide *Slide) (*Slide, error) {
	return r.repo.Create(ctx, slide)
}

func (r *BunSlideRepository) Update(ctx context.Context, slide *Slide) (*Slide, error) {
	record, err := r.repo.Update(ctx, slide,
		repository.UpdateByID(slide.ID.String()),
		repository.UpdateColumns(slideColumns...),
	)
	if err != nil {
		return nil, mapRepositoryError(err, "hero_slide", slide.ID.String())
	}
	return record, nil
}

func (r *BunSlideRepository) GetByID(ctx context.Context, id uuid.UUID) (*Slide, error) {
	record, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "hero_slide", id.String())
	}
	return record, nil
}

func (r *BunSlideRepository) ListByOwner(ctx context.Context, owner Owner) ([]*Slide, error) {
	column := ownerColumn(owner)
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.? = ?", bun.Ident(column), owner.ID).
				OrderExpr("?TableAlias.sort_order ASC, ?TableAlias.id ASC")
		}),
	)
	return records, err
}

func (r *BunSlideRepository) UpdateSortOrder(ctx context.Context, slides []*Slide) error {
	if len(slides) == 0 {
		return nil
	}
	if _, err := r.repo.UpdateMany(ctx, slides,
		repository.UpdateColumns("sort_order", "updated_at"),
	); err != nil {
		return err
	}
	return r.InvalidateCache(ctx)
}

func (r *BunSlideRepository) Delete(ctx context.Context, id uuid.UUID) error {
	record, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return r.repo.Delete(ctx, record)
}

func (r *BunSlideRepository) InvalidateCache(ctx context.Context) error {
	if r.cacheService == nil || r.cachePrefix == "" {
		return nil
	}
	return r.cacheService.DeleteByPrefix(ctx, r.cachePrefix)
}

// BunHeroSectionRepository implements HeroSectionRepository with optional caching.
type BunHeroSectionRepository struct {
	repo repository.Repository[*HeroSection]
}

func NewBunHeroSectionRepository(db *bun.DB) *BunHeroSectionRepository {
	return NewBunHeroSectionRepositoryWithCache(db, nil, nil)
}

func NewBunHeroSectionRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer) *BunHeroSectionRepository {
	base := NewHeroSectionRepository(db)
	if cacheService != nil && serializer != nil {
		base = repositorycache.New(base, cacheService, serializer)
	}
	return &BunHeroSectionRepository{repo: base}
}

func (r *BunHeroSectionRepository) Create(ctx context.Context, section *HeroSection) (*HeroSection, error) {
	return r.repo.Create(ctx, section)
}

func (r *BunHeroSectionRepository) GetByID(ctx context.Context, id uuid.UUID) (*HeroSection, error) {
	record, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "hero_section", id.String())
	}
	return record, nil
}

func (r *BunHeroSectionRepository) GetByCode(ctx context.Context, code string) (*HeroSection, error) {
	record, err := r.repo.GetByIdentifier(ctx, code)
	if err != nil {
		return nil, mapRepositoryError(err, "hero_section", code)
	}
	return record, nil
}

func (r *BunHeroSectionRepository) List(ctx context.Context) ([]*HeroSection, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.OrderExpr("?TableAlias.code ASC")
		}),
	)
	return records, err
}

func cachePrefix(namespace string) string {
	if namespace == "" {
		return ""
	}
	return namespace + cache.KeySeparator
}

func mapRepositoryError(err error, resource, key string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{Resource: resource, Key: key}
	}
	return err
}
