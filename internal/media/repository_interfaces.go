package media

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// ImageRepository persists media library entries.
type ImageRepository interface {
	Create(ctx context.Context, img *Image) (*Image, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Image, error)
	List(ctx context.Context) ([]*Image, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// NotFoundError is returned when an image cannot be located.
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
