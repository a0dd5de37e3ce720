package slides

import (
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-showcase/internal/catalog"
	"github.com/goliatone/go-showcase/internal/domain"
)

// Record is a slide as the rest of the system sees it. Placement and Content
// are closed sums, so a slide cannot sit in two places or mix a reference
// with custom fields.
type Record struct {
	ID        uuid.UUID
	Placement Placement
	Content   Content
	CTA       CTA
	IsActive  bool
	SortOrder int
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (r *Record) Type() domain.SlideType {
	if r == nil || r.Content == nil {
		return domain.SlideTypeCustom
	}
	return r.Content.SlideType()
}

// Placement says where a slide is shown.
type Placement interface {
	Owner() Owner
	isPlacement()
}

// Owner is the comparable key of a placement, used to group slides.
type Owner struct {
	Section     bool
	ServiceKind catalog.ServiceKind
	ID          uuid.UUID
}

// SectionPlacement puts a slide in a named hero section.
type SectionPlacement struct {
	SectionID uuid.UUID
}

func (p SectionPlacement) Owner() Owner { return Owner{Section: true, ID: p.SectionID} }
func (SectionPlacement) isPlacement()   {}

// ServicePlacement puts a slide on an import or contracting service page.
type ServicePlacement struct {
	Kind      catalog.ServiceKind
	ServiceID uuid.UUID
}

func (p ServicePlacement) Owner() Owner { return Owner{ServiceKind: p.Kind, ID: p.ServiceID} }
func (ServicePlacement) isPlacement()   {}

// Content is what a slide shows.
type Content interface {
	SlideType() domain.SlideType
	isContent()
}

// CustomContent is a hand-authored slide.
type CustomContent struct {
	Title             domain.Localized
	Subtitle          domain.Localized
	BackgroundImageID *uuid.UUID
	BackgroundColor   string
	OverlayOpacity    *int
}

func (CustomContent) SlideType() domain.SlideType { return domain.SlideTypeCustom }
func (CustomContent) isContent()                  {}

// ReferenceContent points the slide at a catalog entity.
type ReferenceContent struct {
	Type domain.SlideType
	ID   uuid.UUID
}

func (c ReferenceContent) SlideType() domain.SlideType { return c.Type }
func (ReferenceContent) isContent()                    {}

// CTA is the call to action shared by every slide type.
type CTA struct {
	Enabled bool
	Text    domain.Localized
	Href    string
}

// IntPtr is a helper for optional integer fields.
func IntPtr(v int) *int { return &v }
