package slides

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/goliatone/go-showcase/internal/catalog"
)

// SlideRepository stores slide rows. Lists are ordered by sort_order, then id.
type SlideRepository interface {
	Create(ctx context.Context, slide *Slide) (*Slide, error)
	Update(ctx context.Context, slide *Slide) (*Slide, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Slide, error)
	ListByOwner(ctx context.Context, owner Owner) ([]*Slide, error)
	// UpdateSortOrder writes sort_order and updated_at for every slide given.
	UpdateSortOrder(ctx context.Context, slides []*Slide) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// HeroSectionRepository stores hero sections.
type HeroSectionRepository interface {
	Create(ctx context.Context, section *HeroSection) (*HeroSection, error)
	GetByID(ctx context.Context, id uuid.UUID) (*HeroSection, error)
	GetByCode(ctx context.Context, code string) (*HeroSection, error)
	List(ctx context.Context) ([]*HeroSection, error)
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

// ownerColumn names the foreign key column for owner.
func ownerColumn(owner Owner) string {
	switch {
	case owner.Section:
		return "hero_section_id"
	case owner.ServiceKind == catalog.ServiceKindImport:
		return "parent_import_service_id"
	default:
		return "parent_contracting_service_id"
	}
}

func rowOwner(row *Slide) (Owner, bool) {
	switch {
	case row.HeroSectionID != nil:
		return SectionPlacement{SectionID: *row.HeroSectionID}.Owner(), true
	case row.ParentImportServiceID != nil:
		return ServicePlacement{Kind: catalog.ServiceKindImport, ServiceID: *row.ParentImportServiceID}.Owner(), true
	case row.ParentContractingServiceID != nil:
		return ServicePlacement{Kind: catalog.ServiceKindContracting, ServiceID: *row.ParentContractingServiceID}.Owner(), true
	}
	return Owner{}, false
}
