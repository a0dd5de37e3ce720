package slides

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/goliatone/go-showcase/internal/catalog"
	"github.com/goliatone/go-showcase/internal/domain"
	"github.com/goliatone/go-showcase/pkg/interfaces"
)

var (
	ErrUnknownSlideType  = errors.New("slides: unknown slide type")
	ErrPlacementRequired = errors.New("slides: slide has no section or parent service")
)

// referenceColumn returns the row field holding the id for t.
func referenceColumn(row *Slide, t domain.SlideType) **uuid.UUID {
	switch t {
	case domain.SlideTypeArticle:
		return &row.ArticleID
	case domain.SlideTypeProduct:
		return &row.ProductID
	case domain.SlideTypeMainService:
		return &row.MainServiceID
	case domain.SlideTypeImportService:
		return &row.ImportServiceID
	case domain.SlideTypeContractingService:
		return &row.ContractingServiceID
	case domain.SlideTypeProject:
		return &row.ProjectID
	}
	return nil
}

// Encode flattens r onto a fresh row. Columns that do not belong to r's
// variant stay empty, so re-encoding after a type change clears them.
func Encode(r *Record) *Slide {
	row := &Slide{
		ID:         r.ID,
		SlideType:  string(r.Type()),
		CTAEnabled: r.CTA.Enabled,
		CTATextEn:  r.CTA.Text.En,
		CTATextAr:  r.CTA.Text.Ar,
		CTAHref:    r.CTA.Href,
		IsActive:   r.IsActive,
		SortOrder:  r.SortOrder,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}

	switch p := r.Placement.(type) {
	case SectionPlacement:
		row.HeroSectionID = uuidPtr(p.SectionID)
	case ServicePlacement:
		switch p.Kind {
		case catalog.ServiceKindImport:
			row.ParentImportServiceID = uuidPtr(p.ServiceID)
		case catalog.ServiceKindContracting:
			row.ParentContractingServiceID = uuidPtr(p.ServiceID)
		}
	}

	switch c := r.Content.(type) {
	case CustomContent:
		row.TitleEn, row.TitleAr = c.Title.En, c.Title.Ar
		row.SubtitleEn, row.SubtitleAr = c.Subtitle.En, c.Subtitle.Ar
		row.BackgroundColor = c.BackgroundColor
		if c.BackgroundImageID != nil {
			row.BackgroundImageID = uuidPtr(*c.BackgroundImageID)
		}
		if c.OverlayOpacity != nil {
			row.OverlayOpacity = IntPtr(*c.OverlayOpacity)
		}
	case ReferenceContent:
		if col := referenceColumn(row, c.Type); col != nil {
			*col = uuidPtr(c.ID)
		}
	}
	return row
}

// Decode lifts a stored row into a Record. Rows written before validation
// existed may carry both a reference id and custom fields; the reference wins
// and the mix is logged.
func Decode(row *Slide, logger interfaces.Logger) (*Record, error) {
	if row == nil {
		return nil, nil
	}
	slideType, ok := domain.ParseSlideType(row.SlideType)
	if !ok {
		return nil, fmt.Errorf("%w: %q (slide %s)", ErrUnknownSlideType, row.SlideType, row.ID)
	}

	placement, err := decodePlacement(row, logger)
	if err != nil {
		return nil, err
	}

	record := &Record{
		ID:        row.ID,
		Placement: placement,
		CTA: CTA{
			Enabled: row.CTAEnabled,
			Text:    domain.Localized{En: row.CTATextEn, Ar: row.CTATextAr},
			Href:    row.CTAHref,
		},
		IsActive:  row.IsActive,
		SortOrder: row.SortOrder,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}

	custom := CustomContent{
		Title:           domain.Localized{En: row.TitleEn, Ar: row.TitleAr},
		Subtitle:        domain.Localized{En: row.SubtitleEn, Ar: row.SubtitleAr},
		BackgroundColor: row.BackgroundColor,
	}
	if row.BackgroundImageID != nil {
		custom.BackgroundImageID = uuidPtr(*row.BackgroundImageID)
	}
	if row.OverlayOpacity != nil {
		custom.OverlayOpacity = IntPtr(*row.OverlayOpacity)
	}

	if slideType == domain.SlideTypeCustom {
		if extra := populatedReferences(row); len(extra) > 0 && logger != nil {
			logger.Warn("slides.decode.stale_reference", "slide_id", row.ID, "columns", extra)
		}
		record.Content = custom
		return record, nil
	}

	ref := ReferenceContent{Type: slideType}
	if col := referenceColumn(row, slideType); col != nil && *col != nil {
		ref.ID = **col
	}
	if hasCustomFields(custom) && logger != nil {
		logger.Warn("slides.decode.ambiguous_content", "slide_id", row.ID, "slide_type", slideType)
	}
	record.Content = ref
	return record, nil
}

func decodePlacement(row *Slide, logger interfaces.Logger) (Placement, error) {
	var placements []Placement
	if row.HeroSectionID != nil {
		placements = append(placements, SectionPlacement{SectionID: *row.HeroSectionID})
	}
	if row.ParentImportServiceID != nil {
		placements = append(placements, ServicePlacement{Kind: catalog.ServiceKindImport, ServiceID: *row.ParentImportServiceID})
	}
	if row.ParentContractingServiceID != nil {
		placements = append(placements, ServicePlacement{Kind: catalog.ServiceKindContracting, ServiceID: *row.ParentContractingServiceID})
	}
	switch len(placements) {
	case 0:
		return nil, fmt.Errorf("%w: %s", ErrPlacementRequired, row.ID)
	case 1:
		return placements[0], nil
	}
	if logger != nil {
		logger.Warn("slides.decode.ambiguous_placement", "slide_id", row.ID, "placements", len(placements))
	}
	return placements[0], nil
}

func hasCustomFields(c CustomContent) bool {
	return !c.Title.IsZero() || !c.Subtitle.IsZero() || c.BackgroundImageID != nil ||
		c.BackgroundColor != "" || c.OverlayOpacity != nil
}

func populatedReferences(row *Slide) []string {
	var cols []string
	for _, t := range domain.ReferenceTypes {
		if col := referenceColumn(row, t); col != nil && *col != nil {
			cols = append(cols, string(t)+"_id")
		}
	}
	return cols
}

func uuidPtr(id uuid.UUID) *uuid.UUID {
	return &id
}
