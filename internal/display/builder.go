package display

import (
	"context"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/goliatone/go-showcase/internal/catalog"
	"github.com/goliatone/go-showcase/internal/domain"
	"github.com/goliatone/go-showcase/internal/i18n"
	"github.com/goliatone/go-showcase/internal/logging"
	"github.com/goliatone/go-showcase/internal/references"
	"github.com/goliatone/go-showcase/internal/slides"
	"github.com/goliatone/go-showcase/pkg/interfaces"
)

// ReferenceResolver is the slice of references.Resolver the builder uses.
type ReferenceResolver interface {
	Resolve(ctx context.Context, t domain.SlideType, id uuid.UUID) (*references.Reference, error)
	Href(locale string, ref *references.Reference) (string, error)
	Descriptor(t domain.SlideType) references.Descriptor
}

// Labels supplies localized default texts.
type Labels interface {
	T(locale, key string, args ...any) string
}

// SlideSource lists stored slides for a section or parent service.
type SlideSource interface {
	ListBySectionCode(ctx context.Context, code string) ([]*slides.Record, error)
	ListByService(ctx context.Context, kind catalog.ServiceKind, serviceID uuid.UUID) ([]*slides.Record, error)
}

// Builder merges stored slides with their resolved references.
type Builder struct {
	resolver      ReferenceResolver
	labels        Labels
	images        references.ImageResolver
	source        SlideSource
	defaultLocale string
	locales       map[string]struct{}
	logger        interfaces.Logger
}

type Option func(*Builder)

// WithImages resolves custom background image ids.
func WithImages(images references.ImageResolver) Option {
	return func(b *Builder) {
		b.images = images
	}
}

func WithSlideSource(source SlideSource) Option {
	return func(b *Builder) {
		b.source = source
	}
}

// WithLocales limits accepted locales; anything else falls back to the
// default locale.
func WithLocales(defaultLocale string, locales ...string) Option {
	return func(b *Builder) {
		if d := i18n.Normalize(defaultLocale); d != "" {
			b.defaultLocale = d
		}
		b.locales = make(map[string]struct{}, len(locales))
		for _, l := range locales {
			if n := i18n.Normalize(l); n != "" {
				b.locales[n] = struct{}{}
			}
		}
	}
}

func WithLogger(logger interfaces.Logger) Option {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

func NewBuilder(resolver ReferenceResolver, labels Labels, opts ...Option) *Builder {
	if labels == nil {
		labels = i18n.MustDefaultCatalog()
	}
	b := &Builder{
		resolver:      resolver,
		labels:        labels,
		defaultLocale: domain.LocaleEnglish,
		locales: map[string]struct{}{
			domain.LocaleEnglish: {},
			domain.LocaleArabic:  {},
		},
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Locale maps a requested locale onto a supported one.
func (b *Builder) Locale(requested string) string {
	locale := i18n.Normalize(requested)
	if _, ok := b.locales[locale]; ok {
		return locale
	}
	return b.defaultLocale
}

// Build resolves record for locale. Reference failures never surface: the
// slide degrades to its own fields.
func (b *Builder) Build(ctx context.Context, record *slides.Record, locale string) DisplaySlide {
	locale = b.Locale(locale)
	slideType := record.Type()
	descriptor := b.descriptor(slideType)

	out := DisplaySlide{
		ID:        record.ID,
		Type:      slideType,
		Locale:    locale,
		Direction: i18n.DirectionOf(locale),
		IsActive:  record.IsActive,
		SortOrder: record.SortOrder,
	}

	var ref *references.Reference
	var custom slides.CustomContent
	switch c := record.Content.(type) {
	case slides.ReferenceContent:
		ref = b.resolve(ctx, record.ID, c)
	case slides.CustomContent:
		custom = c
	}

	// Reference data wins over the slide's own fields.
	if ref != nil {
		out.Reference = b.localizeReference(ref, locale)
		out.Title = out.Reference.Title
		out.Subtitle = out.Reference.Description
		out.ImageURL = out.Reference.ImageURL
	} else {
		out.Title = custom.Title.In(locale)
		out.Subtitle = custom.Subtitle.In(locale)
	}
	if out.ImageURL == "" {
		out.ImageURL = b.backgroundURL(ctx, record.ID, custom.BackgroundImageID)
	}
	out.BackgroundColor = custom.BackgroundColor

	out.OverlayOpacity = descriptor.DefaultOverlay
	if custom.OverlayOpacity != nil {
		out.OverlayOpacity = *custom.OverlayOpacity
	}

	out.CTA = b.cta(record.CTA, descriptor, out.Reference, locale)
	return out
}

// BuildAll builds the active slides of records ordered by sort order, then id.
func (b *Builder) BuildAll(ctx context.Context, records []*slides.Record, locale string) []DisplaySlide {
	active := make([]*slides.Record, 0, len(records))
	for _, r := range records {
		if r != nil && r.IsActive {
			active = append(active, r)
		}
	}
	slices.SortStableFunc(active, func(a, c *slides.Record) int {
		if a.SortOrder != c.SortOrder {
			return a.SortOrder - c.SortOrder
		}
		return strings.Compare(a.ID.String(), c.ID.String())
	})
	out := make([]DisplaySlide, 0, len(active))
	for _, r := range active {
		out = append(out, b.Build(ctx, r, locale))
	}
	return out
}

// BuildSection builds the carousel for a hero section code.
func (b *Builder) BuildSection(ctx context.Context, code, locale string) ([]DisplaySlide, error) {
	if b.source == nil {
		return nil, ErrSourceRequired
	}
	records, err := b.source.ListBySectionCode(ctx, code)
	if err != nil {
		return nil, err
	}
	return b.BuildAll(ctx, records, locale), nil
}

// BuildServiceSlides builds the carousel shown on a parent service page.
func (b *Builder) BuildServiceSlides(ctx context.Context, kind catalog.ServiceKind, serviceID uuid.UUID, locale string) ([]DisplaySlide, error) {
	if b.source == nil {
		return nil, ErrSourceRequired
	}
	records, err := b.source.ListByService(ctx, kind, serviceID)
	if err != nil {
		return nil, err
	}
	return b.BuildAll(ctx, records, locale), nil
}

func (b *Builder) resolve(ctx context.Context, slideID uuid.UUID, c slides.ReferenceContent) *references.Reference {
	if b.resolver == nil {
		return nil
	}
	ref, err := b.resolver.Resolve(ctx, c.Type, c.ID)
	if err != nil {
		b.logger.Warn("display.reference.failed", "slide_id", slideID, "slide_type", c.Type, "reference_id", c.ID, "error", err)
		return nil
	}
	if ref == nil {
		b.logger.Debug("display.reference.unresolved", "slide_id", slideID, "slide_type", c.Type, "reference_id", c.ID)
	}
	return ref
}

func (b *Builder) localizeReference(ref *references.Reference, locale string) *Reference {
	out := &Reference{
		ID:          ref.ID,
		Title:       ref.Title.In(locale),
		Description: ref.Description.In(locale),
		Slug:        ref.Slug.In(locale),
		ImageURL:    ref.ImageURL,
		Category:    ref.Metadata.Category.In(locale),
		ProjectType: ref.Metadata.ProjectType.In(locale),
		Location:    ref.Metadata.Location.In(locale),
		Year:        ref.Metadata.Year,
	}
	if ref.Metadata.PublishedAt != nil {
		at := *ref.Metadata.PublishedAt
		out.PublishedAt = &at
	}
	href, err := b.resolver.Href(locale, ref)
	if err != nil {
		b.logger.Warn("display.reference.href_failed", "reference_id", ref.ID, "slide_type", ref.Type, "error", err)
	}
	out.Href = href
	return out
}

// cta applies the override and href rules. A resolved reference always
// supplies the href; the stored href only applies otherwise.
func (b *Builder) cta(stored slides.CTA, descriptor references.Descriptor, ref *Reference, locale string) CTA {
	text := ""
	if stored.Enabled {
		text = stored.Text.In(locale)
	}
	if text == "" {
		text = b.labels.T(locale, descriptor.CTALabelKey)
	}

	if ref != nil {
		return CTA{Visible: ref.Href != "", Text: text, Href: ref.Href}
	}
	href := strings.TrimSpace(stored.Href)
	return CTA{Visible: stored.Enabled && href != "", Text: text, Href: href}
}

func (b *Builder) backgroundURL(ctx context.Context, slideID uuid.UUID, imageID *uuid.UUID) string {
	if imageID == nil || b.images == nil {
		return ""
	}
	url, err := b.images.ResolveURL(ctx, *imageID)
	if err != nil {
		b.logger.Warn("display.background.failed", "slide_id", slideID, "image_id", *imageID, "error", err)
		return ""
	}
	return url
}

func (b *Builder) descriptor(t domain.SlideType) references.Descriptor {
	if b.resolver == nil {
		return references.DescriptorFor(t)
	}
	return b.resolver.Descriptor(t)
}
