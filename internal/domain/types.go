package domain

import "strings"

// SlideType discriminates hero slides. Every value except SlideTypeCustom
// names the content kind a slide points at.
type SlideType string

const (
	SlideTypeCustom             SlideType = "custom"
	SlideTypeArticle            SlideType = "article"
	SlideTypeProduct            SlideType = "product"
	SlideTypeMainService        SlideType = "main_service"
	SlideTypeImportService      SlideType = "import_service"
	SlideTypeContractingService SlideType = "contracting_service"
	SlideTypeProject            SlideType = "project"
)

// ReferenceTypes lists the non-custom slide types in display order.
var ReferenceTypes = []SlideType{
	SlideTypeArticle,
	SlideTypeProduct,
	SlideTypeMainService,
	SlideTypeImportService,
	SlideTypeContractingService,
	SlideTypeProject,
}

// ParseSlideType normalises input and reports whether it names a known type.
func ParseSlideType(value string) (SlideType, bool) {
	t := SlideType(strings.ToLower(strings.TrimSpace(value)))
	return t, t.Valid()
}

func (t SlideType) Valid() bool {
	if t == SlideTypeCustom {
		return true
	}
	return t.IsReference()
}

// IsReference reports whether slides of this type resolve a content entity.
func (t SlideType) IsReference() bool {
	switch t {
	case SlideTypeArticle, SlideTypeProduct, SlideTypeMainService,
		SlideTypeImportService, SlideTypeContractingService, SlideTypeProject:
		return true
	}
	return false
}

// IsService reports whether the type is one of the three service kinds.
func (t SlideType) IsService() bool {
	switch t {
	case SlideTypeMainService, SlideTypeImportService, SlideTypeContractingService:
		return true
	}
	return false
}

func (t SlideType) String() string { return string(t) }

// Locale codes supported by the site.
const (
	LocaleEnglish = "en"
	LocaleArabic  = "ar"
)

// Localized holds the English and Arabic variants of a piece of text.
type Localized struct {
	En string `json:"en"`
	Ar string `json:"ar"`
}

// In picks the variant for locale. Arabic falls back to English when empty and
// any other locale reads the English value.
func (l Localized) In(locale string) string {
	if strings.EqualFold(strings.TrimSpace(locale), LocaleArabic) {
		if strings.TrimSpace(l.Ar) != "" {
			return l.Ar
		}
	}
	return l.En
}

// Strict picks the variant for locale without falling back.
func (l Localized) Strict(locale string) string {
	if strings.EqualFold(strings.TrimSpace(locale), LocaleArabic) {
		return l.Ar
	}
	return l.En
}

func (l Localized) IsZero() bool {
	return strings.TrimSpace(l.En) == "" && strings.TrimSpace(l.Ar) == ""
}

// Trim returns a copy with surrounding whitespace removed from both variants.
func (l Localized) Trim() Localized {
	return Localized{En: strings.TrimSpace(l.En), Ar: strings.TrimSpace(l.Ar)}
}
