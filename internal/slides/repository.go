package slides

import (
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// NewSlideRepository creates a repository for Slide rows.
func NewSlideRepository(db *bun.DB) repository.Repository[*Slide] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Slide]{
		NewRecord: func() *Slide { return &Slide{} },
		GetID: func(s *Slide) uuid.UUID {
			return s.ID
		},
		SetID: func(s *Slide, id uuid.UUID) {
			s.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(s *Slide) string {
			return s.ID.String()
		},
	})
}

// NewHeroSectionRepository creates a repository for HeroSection entities.
func NewHeroSectionRepository(db *bun.DB) repository.Repository[*HeroSection] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*HeroSection]{
		NewRecord: func() *HeroSection { return &HeroSection{} },
		GetID: func(s *HeroSection) uuid.UUID {
			return s.ID
		},
		SetID: func(s *HeroSection, id uuid.UUID) {
			s.ID = id
		},
		GetIdentifier: func() string {
			return "code"
		},
		GetIdentifierValue: func(s *HeroSection) string {
			return s.Code
		},
	})
}
