package catalog

import (
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// newRecordRepository builds the go-repository-bun repository for T keyed by
// identifier (used by GetByIdentifier).
func newRecordRepository[T Record](db *bun.DB, newRecord func() T, identifier string) repository.Repository[T] {
	return repository.MustNewRepository(db, repository.ModelHandlers[T]{
		NewRecord: newRecord,
		GetID: func(record T) uuid.UUID {
			return record.GetID()
		},
		SetID: func(record T, id uuid.UUID) {
			record.SetID(id)
		},
		GetIdentifier: func() string {
			return identifier
		},
		GetIdentifierValue: func(record T) string {
			return record.SlugFor("en")
		},
	})
}
