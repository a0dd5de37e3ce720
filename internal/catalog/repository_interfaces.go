package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Repository is the persistence contract shared by every catalog entity.
// GetByID returns soft-deleted records; GetBySlug and List skip them unless
// asked otherwise.
type Repository[T Record] interface {
	Create(ctx context.Context, record T) (T, error)
	Update(ctx context.Context, record T) (T, error)
	GetByID(ctx context.Context, id uuid.UUID) (T, error)
	GetBySlug(ctx context.Context, locale, slug string) (T, error)
	List(ctx context.Context, opts ListOptions) ([]T, error)
}

type ListOptions struct {
	IncludeDeleted bool
}

type (
	CategoryRepository    = Repository[*Category]
	ProjectTypeRepository = Repository[*ProjectType]
	ArticleRepository     = Repository[*Article]
	ProductRepository     = Repository[*Product]
	ServiceRepository     = Repository[*Service]
	ProjectRepository     = Repository[*Project]
)

// Repositories bundles the stores the catalog service needs.
type Repositories struct {
	Categories   CategoryRepository
	ProjectTypes ProjectTypeRepository
	Articles     ArticleRepository
	Products     ProductRepository
	Services     ServiceRepository
	Projects     ProjectRepository
}

// NotFoundError is returned when a record cannot be located.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}
