package slides

import (
	"errors"
	"net/url"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/goliatone/go-showcase/internal/catalog"
	"github.com/goliatone/go-showcase/internal/domain"
)

var (
	ErrPlacementAmbiguous = errors.New("slides: a slide belongs to exactly one section or parent service")
	ErrReferenceRequired  = errors.New("slides: reference slides need a reference id")
	ErrContentAmbiguous   = errors.New("slides: reference slides cannot carry custom title, subtitle, background or overlay")
	ErrReferenceOnCustom  = errors.New("slides: custom slides cannot carry a reference id")
)

var hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// SlideInput is the write-side shape accepted from admin clients. It is
// validated and converted into a Record before anything is stored.
type SlideInput struct {
	// ID is honoured on create only; zero asks the service for a new one.
	ID   uuid.UUID        `json:"id,omitempty"`
	Type domain.SlideType `json:"slide_type"`

	HeroSectionID              *uuid.UUID `json:"hero_section_id,omitempty"`
	ParentImportServiceID      *uuid.UUID `json:"parent_import_service_id,omitempty"`
	ParentContractingServiceID *uuid.UUID `json:"parent_contracting_service_id,omitempty"`

	ReferenceID *uuid.UUID `json:"reference_id,omitempty"`

	Title             domain.Localized `json:"title"`
	Subtitle          domain.Localized `json:"subtitle"`
	BackgroundImageID *uuid.UUID       `json:"background_image_id,omitempty"`
	BackgroundColor   string           `json:"background_color,omitempty"`
	OverlayOpacity    *int             `json:"overlay_opacity,omitempty"`

	CTAEnabled bool             `json:"cta_enabled"`
	CTAText    domain.Localized `json:"cta_text"`
	CTAHref    string           `json:"cta_href,omitempty"`

	IsActive *bool `json:"is_active,omitempty"`
	// SortOrder defaults to the end of the owner's list.
	SortOrder *int `json:"sort_order,omitempty"`
}

func (in SlideInput) Validate() error {
	if err := validation.ValidateStruct(&in,
		validation.Field(&in.Type, validation.Required, validation.By(knownSlideType)),
		validation.Field(&in.BackgroundColor, validation.When(in.BackgroundColor != "", validation.Match(hexColorPattern))),
		validation.Field(&in.OverlayOpacity, validation.When(in.OverlayOpacity != nil, validation.Min(0), validation.Max(100))),
		validation.Field(&in.CTAHref, validation.By(hrefRule)),
		validation.Field(&in.SortOrder, validation.When(in.SortOrder != nil, validation.Min(0))),
	); err != nil {
		return err
	}

	if countSet(in.HeroSectionID, in.ParentImportServiceID, in.ParentContractingServiceID) != 1 {
		return ErrPlacementAmbiguous
	}
	if normalizedType(in.Type) == domain.SlideTypeCustom {
		if in.ReferenceID != nil {
			return ErrReferenceOnCustom
		}
		return nil
	}
	if in.ReferenceID == nil || *in.ReferenceID == uuid.Nil {
		return ErrReferenceRequired
	}
	if !in.Title.IsZero() || !in.Subtitle.IsZero() || in.BackgroundImageID != nil ||
		strings.TrimSpace(in.BackgroundColor) != "" || in.OverlayOpacity != nil {
		return ErrContentAmbiguous
	}
	return nil
}

// placement assumes Validate passed.
func (in SlideInput) placement() Placement {
	switch {
	case in.HeroSectionID != nil:
		return SectionPlacement{SectionID: *in.HeroSectionID}
	case in.ParentImportServiceID != nil:
		return ServicePlacement{Kind: catalog.ServiceKindImport, ServiceID: *in.ParentImportServiceID}
	default:
		return ServicePlacement{Kind: catalog.ServiceKindContracting, ServiceID: *in.ParentContractingServiceID}
	}
}

func (in SlideInput) content() Content {
	t := normalizedType(in.Type)
	if t != domain.SlideTypeCustom {
		return ReferenceContent{Type: t, ID: *in.ReferenceID}
	}
	c := CustomContent{
		Title:           in.Title.Trim(),
		Subtitle:        in.Subtitle.Trim(),
		BackgroundColor: strings.TrimSpace(in.BackgroundColor),
	}
	if in.BackgroundImageID != nil {
		c.BackgroundImageID = uuidPtr(*in.BackgroundImageID)
	}
	if in.OverlayOpacity != nil {
		c.OverlayOpacity = IntPtr(*in.OverlayOpacity)
	}
	return c
}

func (in SlideInput) cta() CTA {
	return CTA{Enabled: in.CTAEnabled, Text: in.CTAText.Trim(), Href: strings.TrimSpace(in.CTAHref)}
}

// InputFromRecord converts r back into an input, for partial updates.
func InputFromRecord(r *Record) SlideInput {
	in := SlideInput{
		ID:         r.ID,
		Type:       r.Type(),
		CTAEnabled: r.CTA.Enabled,
		CTAText:    r.CTA.Text,
		CTAHref:    r.CTA.Href,
		IsActive:   &r.IsActive,
		SortOrder:  IntPtr(r.SortOrder),
	}
	switch p := r.Placement.(type) {
	case SectionPlacement:
		in.HeroSectionID = uuidPtr(p.SectionID)
	case ServicePlacement:
		if p.Kind == catalog.ServiceKindImport {
			in.ParentImportServiceID = uuidPtr(p.ServiceID)
		} else {
			in.ParentContractingServiceID = uuidPtr(p.ServiceID)
		}
	}
	switch c := r.Content.(type) {
	case ReferenceContent:
		in.ReferenceID = uuidPtr(c.ID)
	case CustomContent:
		in.Title, in.Subtitle = c.Title, c.Subtitle
		in.BackgroundImageID = c.BackgroundImageID
		in.BackgroundColor = c.BackgroundColor
		in.OverlayOpacity = c.OverlayOpacity
	}
	return in
}

// Retype switches in to t. When the variant changes, the content fields of
// the previous type are dropped so the new type starts from a clean slate.
func (in SlideInput) Retype(t domain.SlideType) SlideInput {
	if normalizedType(t) == normalizedType(in.Type) {
		in.Type = t
		return in
	}
	in.Type = t
	in.ReferenceID = nil
	in.Title, in.Subtitle = domain.Localized{}, domain.Localized{}
	in.BackgroundImageID = nil
	in.BackgroundColor = ""
	in.OverlayOpacity = nil
	return in
}

func knownSlideType(value any) error {
	t, _ := value.(domain.SlideType)
	if _, ok := domain.ParseSlideType(string(t)); !ok {
		return validation.NewError("validation_slide_type", "unknown slide type")
	}
	return nil
}

func hrefRule(value any) error {
	href, _ := value.(string)
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "/") || strings.HasPrefix(href, "#") {
		return nil
	}
	if u, err := url.Parse(href); err == nil {
		switch u.Scheme {
		case "http", "https":
			if u.Host != "" {
				return nil
			}
		case "mailto", "tel":
			if u.Opaque != "" {
				return nil
			}
		}
	}
	return validation.NewError("validation_href", "must be a path, an http(s) url, mailto or tel")
}

func normalizedType(t domain.SlideType) domain.SlideType {
	parsed, _ := domain.ParseSlideType(string(t))
	return parsed
}

func countSet(ids ...*uuid.UUID) int {
	n := 0
	for _, id := range ids {
		if id != nil && *id != uuid.Nil {
			n++
		}
	}
	return n
}
