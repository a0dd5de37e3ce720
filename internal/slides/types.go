package slides

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// HeroSection is a named carousel on a page, such as "home".
type HeroSection struct {
	bun.BaseModel `bun:"table:hero_sections,alias:hs"`

	ID        uuid.UUID `bun:",pk,type:uuid" json:"id"`
	Code      string    `bun:"code,notnull,unique" json:"code"`
	Name      string    `bun:"name" json:"name"`
	CreatedAt time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// Slide is the stored row. Application code works with Record; Slide only
// exists at the storage boundary.
type Slide struct {
	bun.BaseModel `bun:"table:hero_slides,alias:hsl"`

	ID                         uuid.UUID  `bun:",pk,type:uuid" json:"id"`
	SlideType                  string     `bun:"slide_type,notnull" json:"slide_type"`
	HeroSectionID              *uuid.UUID `bun:"hero_section_id,type:uuid" json:"hero_section_id,omitempty"`
	ParentImportServiceID      *uuid.UUID `bun:"parent_import_service_id,type:uuid" json:"parent_import_service_id,omitempty"`
	ParentContractingServiceID *uuid.UUID `bun:"parent_contracting_service_id,type:uuid" json:"parent_contracting_service_id,omitempty"`
	ArticleID                  *uuid.UUID `bun:"article_id,type:uuid" json:"article_id,omitempty"`
	ProductID                  *uuid.UUID `bun:"product_id,type:uuid" json:"product_id,omitempty"`
	MainServiceID              *uuid.UUID `bun:"main_service_id,type:uuid" json:"main_service_id,omitempty"`
	ImportServiceID            *uuid.UUID `bun:"import_service_id,type:uuid" json:"import_service_id,omitempty"`
	ContractingServiceID       *uuid.UUID `bun:"contracting_service_id,type:uuid" json:"contracting_service_id,omitempty"`
	ProjectID                  *uuid.UUID `bun:"project_id,type:uuid" json:"project_id,omitempty"`
	TitleEn                    string     `bun:"title_en" json:"title_en"`
	TitleAr                    string     `bun:"title_ar" json:"title_ar"`
	SubtitleEn                 string     `bun:"subtitle_en" json:"subtitle_en"`
	SubtitleAr                 string     `bun:"subtitle_ar" json:"subtitle_ar"`
	BackgroundImageID          *uuid.UUID `bun:"background_image_id,type:uuid" json:"background_image_id,omitempty"`
	BackgroundColor            string     `bun:"background_color" json:"background_color"`
	OverlayOpacity             *int       `bun:"overlay_opacity" json:"overlay_opacity,omitempty"`
	CTAEnabled                 bool       `bun:"cta_enabled,notnull" json:"cta_enabled"`
	CTATextEn                  string     `bun:"cta_text_en" json:"cta_text_en"`
	CTATextAr                  string     `bun:"cta_text_ar" json:"cta_text_ar"`
	CTAHref                    string     `bun:"cta_href" json:"cta_href"`
	IsActive                   bool       `bun:"is_active,notnull" json:"is_active"`
	SortOrder                  int        `bun:"sort_order,notnull,default:0" json:"sort_order"`
	CreatedAt                  time.Time  `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt                  time.Time  `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

func cloneSection(s *HeroSection) *HeroSection {
	if s == nil {
		return nil
	}
	cloned := *s
	return &cloned
}

func cloneSlide(s *Slide) *Slide {
	if s == nil {
		return nil
	}
	cloned := *s
	for _, field := range []**uuid.UUID{
		&cloned.HeroSectionID, &cloned.ParentImportServiceID, &cloned.ParentContractingServiceID,
		&cloned.ArticleID, &cloned.ProductID, &cloned.MainServiceID, &cloned.ImportServiceID,
		&cloned.ContractingServiceID, &cloned.ProjectID, &cloned.BackgroundImageID,
	} {
		if *field != nil {
			id := **field
			*field = &id
		}
	}
	if cloned.OverlayOpacity != nil {
		v := *cloned.OverlayOpacity
		cloned.OverlayOpacity = &v
	}
	return &cloned
}
