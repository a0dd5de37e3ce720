package slidescmd

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/goliatone/go-showcase/internal/catalog"
	"github.com/goliatone/go-showcase/internal/slides"
)

const (
	createSectionMessageType = "showcase.hero_sections.create"
	createSlideMessageType   = "showcase.slides.create"
	updateSlideMessageType   = "showcase.slides.update"
	deleteSlideMessageType   = "showcase.slides.delete"
	reorderSlidesMessageType = "showcase.slides.reorder"
)

// CreateSectionCommand registers a hero section.
type CreateSectionCommand struct {
	Section slides.SectionInput `json:"section"`
	ActorID string              `json:"actor_id,omitempty"`
}

func (CreateSectionCommand) Type() string { return createSectionMessageType }

func (m CreateSectionCommand) Validate() error {
	return m.Section.Validate()
}

// CreateSlideCommand adds a slide to a section or parent service. When
// Result is set the stored record is written back to it.
type CreateSlideCommand struct {
	Slide   slides.SlideInput `json:"slide"`
	ActorID string            `json:"actor_id,omitempty"`
	Result  *slides.Record    `json:"-"`
}

func (CreateSlideCommand) Type() string { return createSlideMessageType }

func (m CreateSlideCommand) Validate() error {
	return m.Slide.Validate()
}

// UpdateSlideCommand replaces the editable fields of a slide.
type UpdateSlideCommand struct {
	ID      uuid.UUID         `json:"id"`
	Slide   slides.SlideInput `json:"slide"`
	ActorID string            `json:"actor_id,omitempty"`
	Result  *slides.Record    `json:"-"`
}

func (UpdateSlideCommand) Type() string { return updateSlideMessageType }

func (m UpdateSlideCommand) Validate() error {
	if err := validation.ValidateStruct(&m,
		validation.Field(&m.ID, validation.By(requiredID)),
	); err != nil {
		return err
	}
	return m.Slide.Validate()
}

// DeleteSlideCommand removes a slide.
type DeleteSlideCommand struct {
	ID      uuid.UUID `json:"id"`
	ActorID string    `json:"actor_id,omitempty"`
}

func (DeleteSlideCommand) Type() string { return deleteSlideMessageType }

func (m DeleteSlideCommand) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.ID, validation.By(requiredID)),
	)
}

// ReorderSlidesCommand rewrites the order of every slide of one owner.
// Exactly one of SectionID or ServiceID is set.
type ReorderSlidesCommand struct {
	SectionID   *uuid.UUID          `json:"hero_section_id,omitempty"`
	ServiceKind catalog.ServiceKind `json:"service_kind,omitempty"`
	ServiceID   *uuid.UUID          `json:"service_id,omitempty"`
	SlideIDs    []uuid.UUID         `json:"slide_ids"`
	ActorID     string              `json:"actor_id,omitempty"`
}

var errReorderOwner = errors.New("exactly one of hero_section_id or service_id is required")

func requiredID(value any) error {
	if id, ok := value.(uuid.UUID); !ok || id == uuid.Nil {
		return validation.NewError("showcase.slides.id_required", "id is required")
	}
	return nil
}

func (ReorderSlidesCommand) Type() string { return reorderSlidesMessageType }

func (m ReorderSlidesCommand) Validate() error {
	if err := validation.ValidateStruct(&m,
		validation.Field(&m.SlideIDs, validation.Required),
		validation.Field(&m.ServiceKind, validation.When(m.ServiceID != nil,
			validation.Required, validation.In(catalog.ServiceKindImport, catalog.ServiceKindContracting))),
	); err != nil {
		return err
	}
	if (m.SectionID == nil) == (m.ServiceID == nil) {
		return validation.Errors{"owner": errReorderOwner}
	}
	return nil
}

// Placement converts the owner fields into a slide placement.
func (m ReorderSlidesCommand) Placement() slides.Placement {
	if m.SectionID != nil {
		return slides.SectionPlacement{SectionID: *m.SectionID}
	}
	if m.ServiceID != nil {
		return slides.ServicePlacement{Kind: m.ServiceKind, ServiceID: *m.ServiceID}
	}
	return nil
}
