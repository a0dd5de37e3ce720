package media

import (
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// NewImageRepository creates a go-repository-bun repository for images.
func NewImageRepository(db *bun.DB) repository.Repository[*Image] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Image]{
		NewRecord: func() *Image { return &Image{} },
		GetID: func(img *Image) uuid.UUID {
			return img.ID
		},
		SetID: func(img *Image, id uuid.UUID) {
			img.ID = id
		},
		GetIdentifier: func() string {
			return "url"
		},
		GetIdentifierValue: func(img *Image) string {
			return img.URL
		},
	})
}
