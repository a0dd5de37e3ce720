package render

import (
	"sort"
	"sync"

	"github.com/goliatone/go-showcase/internal/display"
	"github.com/goliatone/go-showcase/internal/domain"
	"github.com/goliatone/go-showcase/internal/i18n"
	"github.com/goliatone/go-showcase/internal/references"
)

// Badge kinds.
const (
	BadgeTag         = "tag"
	BadgeCategory    = "category"
	BadgeDate        = "date"
	BadgeProjectType = "project_type"
	BadgeYear        = "year"
	BadgeLocation    = "location"
)

type Badge struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

// Labels supplies localized label text.
type Labels interface {
	T(locale, key string, args ...any) string
}

// Variant renders the type-specific badge row of a slide. Missing metadata
// simply drops the badge.
type Variant interface {
	Type() domain.SlideType
	Badges(slide display.DisplaySlide, labels Labels) []Badge
}

// VariantFunc adapts a function to Variant.
type VariantFunc struct {
	SlideType domain.SlideType
	Fn        func(slide display.DisplaySlide, labels Labels) []Badge
}

func (v VariantFunc) Type() domain.SlideType { return v.SlideType }

func (v VariantFunc) Badges(slide display.DisplaySlide, labels Labels) []Badge {
	if v.Fn == nil {
		return nil
	}
	return v.Fn(slide, labels)
}

// Registry maps slide types to variants.
type Registry struct {
	mu       sync.RWMutex
	variants map[domain.SlideType]Variant
}

func NewRegistry(variants ...Variant) *Registry {
	r := &Registry{variants: make(map[domain.SlideType]Variant, len(variants))}
	for _, v := range variants {
		r.Register(v)
	}
	return r
}

// Register adds or replaces the variant for its type.
func (r *Registry) Register(v Variant) {
	if v == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.variants[v.Type()] = v
}

// Lookup falls back to the custom variant for unknown types.
func (r *Registry) Lookup(t domain.SlideType) Variant {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if v, ok := r.variants[t]; ok {
		return v
	}
	return customVariant
}

func (r *Registry) Types() []domain.SlideType {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.SlideType, 0, len(r.variants))
	for t := range r.variants {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// DefaultRegistry holds one variant per built-in slide type.
func DefaultRegistry() *Registry {
	return NewRegistry(
		customVariant,
		VariantFunc{SlideType: domain.SlideTypeArticle, Fn: articleBadges},
		VariantFunc{SlideType: domain.SlideTypeProduct, Fn: productBadges},
		VariantFunc{SlideType: domain.SlideTypeMainService, Fn: serviceBadges},
		VariantFunc{SlideType: domain.SlideTypeImportService, Fn: serviceBadges},
		VariantFunc{SlideType: domain.SlideTypeContractingService, Fn: serviceBadges},
		VariantFunc{SlideType: domain.SlideTypeProject, Fn: projectBadges},
	)
}

var customVariant = VariantFunc{SlideType: domain.SlideTypeCustom}

func articleBadges(slide display.DisplaySlide, labels Labels) []Badge {
	ref := slide.Reference
	if ref == nil {
		return nil
	}
	var badges badgeRow
	badges.add(BadgeCategory, ref.Category)
	if ref.PublishedAt != nil {
		badges.add(BadgeDate, i18n.FormatDate(*ref.PublishedAt, slide.Locale))
	}
	badges.add(BadgeTag, typeTag(slide, labels))
	return badges
}

func productBadges(slide display.DisplaySlide, labels Labels) []Badge {
	ref := slide.Reference
	if ref == nil {
		return nil
	}
	var badges badgeRow
	badges.add(BadgeCategory, ref.Category)
	badges.add(BadgeTag, typeTag(slide, labels))
	return badges
}

func serviceBadges(slide display.DisplaySlide, labels Labels) []Badge {
	if slide.Reference == nil {
		return nil
	}
	var badges badgeRow
	badges.add(BadgeTag, typeTag(slide, labels))
	return badges
}

func projectBadges(slide display.DisplaySlide, labels Labels) []Badge {
	ref := slide.Reference
	if ref == nil {
		return nil
	}
	var badges badgeRow
	badges.add(BadgeProjectType, ref.ProjectType)
	badges.add(BadgeYear, i18n.FormatYear(ref.Year))
	badges.add(BadgeLocation, ref.Location)
	badges.add(BadgeTag, typeTag(slide, labels))
	return badges
}

func typeTag(slide display.DisplaySlide, labels Labels) string {
	key := references.DescriptorFor(slide.Type).TagLabelKey
	if key == "" || labels == nil {
		return ""
	}
	return labels.T(slide.Locale, key)
}

type badgeRow []Badge

func (b *badgeRow) add(kind, text string) {
	if text == "" {
		return
	}
	*b = append(*b, Badge{Kind: kind, Text: text})
}
