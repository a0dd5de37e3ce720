package catalog

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/goliatone/go-showcase/internal/domain"
)

// CategoryInput creates a category. Slug defaults to the English name.
type CategoryInput struct {
	ID   uuid.UUID
	Slug string
	Name domain.Localized
}

func (in CategoryInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.By(requireEnglish)),
	)
}

// ProjectTypeInput creates a project type.
type ProjectTypeInput struct {
	ID   uuid.UUID
	Slug string
	Name domain.Localized
}

func (in ProjectTypeInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.By(requireEnglish)),
	)
}

// ArticleInput creates or replaces an article. A zero ID on create asks the
// service to generate one.
type ArticleInput struct {
	ID          uuid.UUID
	Title       domain.Localized
	Slug        domain.Localized
	Summary     domain.Localized
	Body        domain.Localized
	CategoryID  *uuid.UUID
	ImageID     *uuid.UUID
	PublishedAt *time.Time
}

func (in ArticleInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Title, validation.By(requireEnglish)),
	)
}

type ProductInput struct {
	ID          uuid.UUID
	Title       domain.Localized
	Slug        domain.Localized
	Description domain.Localized
	CategoryID  *uuid.UUID
	ImageID     *uuid.UUID
}

func (in ProductInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Title, validation.By(requireEnglish)),
	)
}

type ServiceInput struct {
	ID          uuid.UUID
	Kind        ServiceKind
	Title       domain.Localized
	Slug        domain.Localized
	Description domain.Localized
	ImageID     *uuid.UUID
}

func (in ServiceInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Kind, validation.Required, validation.In(ServiceKindMain, ServiceKindImport, ServiceKindContracting)),
		validation.Field(&in.Title, validation.By(requireEnglish)),
	)
}

type ProjectInput struct {
	ID            uuid.UUID
	Title         domain.Localized
	Slug          domain.Localized
	Description   domain.Localized
	Location      domain.Localized
	Year          int
	ProjectTypeID *uuid.UUID
	ImageID       *uuid.UUID
}

func (in ProjectInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Title, validation.By(requireEnglish)),
		validation.Field(&in.Year, validation.When(in.Year != 0, validation.Min(1900), validation.Max(2200))),
	)
}

var errEnglishRequired = validation.NewError("validation_required_en", "english text is required")

func requireEnglish(value any) error {
	text, _ := value.(domain.Localized)
	if text.Trim().En == "" {
		return errEnglishRequired
	}
	return nil
}
