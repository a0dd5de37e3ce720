package media

import (
	"context"
	"fmt"

	"github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// BunImageRepository implements ImageRepository with optional caching.
type BunImageRepository struct {
	repo repository.Repository[*Image]
}

func NewBunImageRepository(db *bun.DB) *BunImageRepository {
	return NewBunImageRepositoryWithCache(db, nil, nil)
}

func NewBunImageRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer) *BunImageRepository {
	base := NewImageRepository(db)
	if cacheService != nil && serializer != nil {
		base = repositorycache.New(base, cacheService, serializer)
	}
	return &BunImageRepository{repo: base}
}

func (r *BunImageRepository) Create(ctx context.Context, img *Image) (*Image, error) {
	record, err := r.repo.Create(ctx, img)
	if err != nil {
		return nil, fmt.Errorf("image repository error: %w", err)
	}
	return record, nil
}

func (r *BunImageRepository) GetByID(ctx context.Context, id uuid.UUID) (*Image, error) {
	record, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "image", id.String())
	}
	return record, nil
}

func (r *BunImageRepository) List(ctx context.Context) ([]*Image, error) {
	records, _, err := r.repo.List(ctx, repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Order("created_at ASC")
	}))
	return records, err
}

func (r *BunImageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := r.repo.Delete(ctx, existing); err != nil {
		return mapRepositoryError(err, "image", id.String())
	}
	return nil
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
