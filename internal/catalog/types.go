package catalog

import (
	"strings"
	"time"

	"github.com/goliatone/go-showcase/internal/domain"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ServiceKind separates the three service listings of the site.
type ServiceKind string

const (
	ServiceKindMain        ServiceKind = "main"
	ServiceKindImport      ServiceKind = "import"
	ServiceKindContracting ServiceKind = "contracting"
)

func (k ServiceKind) Valid() bool {
	switch k {
	case ServiceKindMain, ServiceKindImport, ServiceKindContracting:
		return true
	}
	return false
}

// ServiceKindFor maps a service slide type to its listing.
func ServiceKindFor(t domain.SlideType) (ServiceKind, bool) {
	switch t {
	case domain.SlideTypeMainService:
		return ServiceKindMain, true
	case domain.SlideTypeImportService:
		return ServiceKindImport, true
	case domain.SlideTypeContractingService:
		return ServiceKindContracting, true
	}
	return "", false
}

// Record is implemented by every catalog entity.
type Record interface {
	GetID() uuid.UUID
	SetID(uuid.UUID)
	IsDeleted() bool
	SlugFor(locale string) string
}

type Category struct {
	bun.BaseModel `bun:"table:categories,alias:cat"`

	ID        uuid.UUID  `bun:",pk,type:uuid"   json:"id"`
	Slug      string     `bun:"slug,notnull"    json:"slug"`
	NameEn    string     `bun:"name_en,notnull" json:"name_en"`
	NameAr    string     `bun:"name_ar"         json:"name_ar"`
	CreatedAt time.Time  `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time  `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
	DeletedAt *time.Time `bun:"deleted_at,nullzero" json:"deleted_at,omitempty"`
}

func (c *Category) Name() domain.Localized { return domain.Localized{En: c.NameEn, Ar: c.NameAr} }

type ProjectType struct {
	bun.BaseModel `bun:"table:project_types,alias:pt"`

	ID        uuid.UUID  `bun:",pk,type:uuid"   json:"id"`
	Slug      string     `bun:"slug,notnull"    json:"slug"`
	NameEn    string     `bun:"name_en,notnull" json:"name_en"`
	NameAr    string     `bun:"name_ar"         json:"name_ar"`
	CreatedAt time.Time  `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time  `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
	DeletedAt *time.Time `bun:"deleted_at,nullzero" json:"deleted_at,omitempty"`
}

func (p *ProjectType) Name() domain.Localized { return domain.Localized{En: p.NameEn, Ar: p.NameAr} }

// Article descriptions and bodies hold editor HTML.
type Article struct {
	bun.BaseModel `bun:"table:articles,alias:a"`

	ID          uuid.UUID  `bun:",pk,type:uuid"        json:"id"`
	TitleEn     string     `bun:"title_en,notnull"     json:"title_en"`
	TitleAr     string     `bun:"title_ar"             json:"title_ar"`
	SlugEn      string     `bun:"slug_en,notnull"      json:"slug_en"`
	SlugAr      string     `bun:"slug_ar"              json:"slug_ar"`
	SummaryEn   string     `bun:"summary_en"           json:"summary_en"`
	SummaryAr   string     `bun:"summary_ar"           json:"summary_ar"`
	BodyEn      string     `bun:"body_en"              json:"body_en"`
	BodyAr      string     `bun:"body_ar"              json:"body_ar"`
	CategoryID  *uuid.UUID `bun:"category_id,type:uuid" json:"category_id,omitempty"`
	ImageID     *uuid.UUID `bun:"image_id,type:uuid"   json:"image_id,omitempty"`
	PublishedAt *time.Time `bun:"published_at,nullzero" json:"published_at,omitempty"`
	CreatedAt   time.Time  `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt   time.Time  `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
	DeletedAt   *time.Time `bun:"deleted_at,nullzero"  json:"deleted_at,omitempty"`
}

func (a *Article) Title() domain.Localized { return domain.Localized{En: a.TitleEn, Ar: a.TitleAr} }
func (a *Article) Summary() domain.Localized {
	return domain.Localized{En: a.SummaryEn, Ar: a.SummaryAr}
}
func (a *Article) Slug() domain.Localized { return domain.Localized{En: a.SlugEn, Ar: a.SlugAr} }

type Product struct {
	bun.BaseModel `bun:"table:products,alias:p"`

	ID            uuid.UUID  `bun:",pk,type:uuid"         json:"id"`
	TitleEn       string     `bun:"title_en,notnull"      json:"title_en"`
	TitleAr       string     `bun:"title_ar"              json:"title_ar"`
	SlugEn        string     `bun:"slug_en,notnull"       json:"slug_en"`
	SlugAr        string     `bun:"slug_ar"               json:"slug_ar"`
	DescriptionEn string     `bun:"description_en"        json:"description_en"`
	DescriptionAr string     `bun:"description_ar"        json:"description_ar"`
	CategoryID    *uuid.UUID `bun:"category_id,type:uuid" json:"category_id,omitempty"`
	ImageID       *uuid.UUID `bun:"image_id,type:uuid"    json:"image_id,omitempty"`
	CreatedAt     time.Time  `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt     time.Time  `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
	DeletedAt     *time.Time `bun:"deleted_at,nullzero"   json:"deleted_at,omitempty"`
}

func (p *Product) Title() domain.Localized { return domain.Localized{En: p.TitleEn, Ar: p.TitleAr} }
func (p *Product) Description() domain.Localized {
	return domain.Localized{En: p.DescriptionEn, Ar: p.DescriptionAr}
}
func (p *Product) Slug() domain.Localized { return domain.Localized{En: p.SlugEn, Ar: p.SlugAr} }

// Service is shared by the main, import and contracting listings.
type Service struct {
	bun.BaseModel `bun:"table:services,alias:s"`

	ID            uuid.UUID   `bun:",pk,type:uuid"      json:"id"`
	Kind          ServiceKind `bun:"kind,notnull"       json:"kind"`
	TitleEn       string      `bun:"title_en,notnull"   json:"title_en"`
	TitleAr       string      `bun:"title_ar"           json:"title_ar"`
	SlugEn        string      `bun:"slug_en,notnull"    json:"slug_en"`
	SlugAr        string      `bun:"slug_ar"            json:"slug_ar"`
	DescriptionEn string      `bun:"description_en"     json:"description_en"`
	DescriptionAr string      `bun:"description_ar"     json:"description_ar"`
	ImageID       *uuid.UUID  `bun:"image_id,type:uuid" json:"image_id,omitempty"`
	CreatedAt     time.Time   `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt     time.Time   `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
	DeletedAt     *time.Time  `bun:"deleted_at,nullzero" json:"deleted_at,omitempty"`
}

func (s *Service) Title() domain.Localized { return domain.Localized{En: s.TitleEn, Ar: s.TitleAr} }
func (s *Service) Description() domain.Localized {
	return domain.Localized{En: s.DescriptionEn, Ar: s.DescriptionAr}
}
func (s *Service) Slug() domain.Localized { return domain.Localized{En: s.SlugEn, Ar: s.SlugAr} }

type Project struct {
	bun.BaseModel `bun:"table:projects,alias:pr"`

	ID            uuid.UUID  `bun:",pk,type:uuid"             json:"id"`
	TitleEn       string     `bun:"title_en,notnull"          json:"title_en"`
	TitleAr       string     `bun:"title_ar"                  json:"title_ar"`
	SlugEn        string     `bun:"slug_en,notnull"           json:"slug_en"`
	SlugAr        string     `bun:"slug_ar"                   json:"slug_ar"`
	DescriptionEn string     `bun:"description_en"            json:"description_en"`
	DescriptionAr string     `bun:"description_ar"            json:"description_ar"`
	LocationEn    string     `bun:"location_en"               json:"location_en"`
	LocationAr    string     `bun:"location_ar"               json:"location_ar"`
	Year          int        `bun:"year,notnull,default:0"    json:"year,omitempty"`
	ProjectTypeID *uuid.UUID `bun:"project_type_id,type:uuid" json:"project_type_id,omitempty"`
	ImageID       *uuid.UUID `bun:"image_id,type:uuid"        json:"image_id,omitempty"`
	CreatedAt     time.Time  `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt     time.Time  `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
	DeletedAt     *time.Time `bun:"deleted_at,nullzero"       json:"deleted_at,omitempty"`
}

func (p *Project) Title() domain.Localized { return domain.Localized{En: p.TitleEn, Ar: p.TitleAr} }
func (p *Project) Description() domain.Localized {
	return domain.Localized{En: p.DescriptionEn, Ar: p.DescriptionAr}
}
func (p *Project) Slug() domain.Localized { return domain.Localized{En: p.SlugEn, Ar: p.SlugAr} }
func (p *Project) Location() domain.Localized {
	return domain.Localized{En: p.LocationEn, Ar: p.LocationAr}
}

func (c *Category) GetID() uuid.UUID      { return c.ID }
func (c *Category) SetID(id uuid.UUID)    { c.ID = id }
func (c *Category) IsDeleted() bool       { return c.DeletedAt != nil }
func (c *Category) SlugFor(string) string { return c.Slug }

func (p *ProjectType) GetID() uuid.UUID      { return p.ID }
func (p *ProjectType) SetID(id uuid.UUID)    { p.ID = id }
func (p *ProjectType) IsDeleted() bool       { return p.DeletedAt != nil }
func (p *ProjectType) SlugFor(string) string { return p.Slug }

func (a *Article) GetID() uuid.UUID             { return a.ID }
func (a *Article) SetID(id uuid.UUID)           { a.ID = id }
func (a *Article) IsDeleted() bool              { return a.DeletedAt != nil }
func (a *Article) SlugFor(locale string) string { return slugFor(locale, a.SlugEn, a.SlugAr) }

func (p *Product) GetID() uuid.UUID             { return p.ID }
func (p *Product) SetID(id uuid.UUID)           { p.ID = id }
func (p *Product) IsDeleted() bool              { return p.DeletedAt != nil }
func (p *Product) SlugFor(locale string) string { return slugFor(locale, p.SlugEn, p.SlugAr) }

func (s *Service) GetID() uuid.UUID             { return s.ID }
func (s *Service) SetID(id uuid.UUID)           { s.ID = id }
func (s *Service) IsDeleted() bool              { return s.DeletedAt != nil }
func (s *Service) SlugFor(locale string) string { return slugFor(locale, s.SlugEn, s.SlugAr) }

func (p *Project) GetID() uuid.UUID             { return p.ID }
func (p *Project) SetID(id uuid.UUID)           { p.ID = id }
func (p *Project) IsDeleted() bool              { return p.DeletedAt != nil }
func (p *Project) SlugFor(locale string) string { return slugFor(locale, p.SlugEn, p.SlugAr) }

func slugFor(locale, en, ar string) string {
	if strings.EqualFold(strings.TrimSpace(locale), domain.LocaleArabic) {
		return ar
	}
	return en
}

func (c *Category) markDeleted(at time.Time)    { c.DeletedAt, c.UpdatedAt = &at, at }
func (p *ProjectType) markDeleted(at time.Time) { p.DeletedAt, p.UpdatedAt = &at, at }
func (a *Article) markDeleted(at time.Time)     { a.DeletedAt, a.UpdatedAt = &at, at }
func (p *Product) markDeleted(at time.Time)     { p.DeletedAt, p.UpdatedAt = &at, at }
func (s *Service) markDeleted(at time.Time)     { s.DeletedAt, s.UpdatedAt = &at, at }
func (p *Project) markDeleted(at time.Time)     { p.DeletedAt, p.UpdatedAt = &at, at }
