package references

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-showcase/internal/domain"
)

// Route names understood by every PathBuilder.
const (
	RouteArticle     = "article"
	RouteProduct     = "product"
	RouteService     = "service"
	RouteImport      = "import"
	RouteContracting = "contracting"
	RouteProject     = "project"
)

// Reference is the display data pulled from the entity a slide points at.
// Each kind fills only the metadata fields that apply to it.
type Reference struct {
	Type        domain.SlideType
	ID          uuid.UUID
	Title       domain.Localized
	Description domain.Localized
	Slug        domain.Localized
	ImageURL    string
	Metadata    Metadata
}

type Metadata struct {
	Category    domain.Localized
	ProjectType domain.Localized
	Location    domain.Localized
	PublishedAt *time.Time
	Year        int
}

// Descriptor holds the per-type presentation defaults shared by the builder
// and the renderer.
type Descriptor struct {
	Type           domain.SlideType
	CTALabelKey    string
	TagLabelKey    string
	DefaultOverlay int
	Route          string
}

// Kind resolves one content type.
type Kind interface {
	Type() domain.SlideType
	Route() string
	Descriptor() Descriptor
	// Resolve returns nil without error when the entity is missing or deleted.
	Resolve(ctx context.Context, id uuid.UUID) (*Reference, error)
}

// ImageResolver turns an image id into a public URL. media.Service satisfies it.
type ImageResolver interface {
	ResolveURL(ctx context.Context, id uuid.UUID) (string, error)
}

var CustomDescriptor = Descriptor{
	Type:           domain.SlideTypeCustom,
	CTALabelKey:    "cta.custom",
	DefaultOverlay: 50,
}

var descriptors = map[domain.SlideType]Descriptor{
	domain.SlideTypeCustom: CustomDescriptor,
	domain.SlideTypeArticle: {
		Type: domain.SlideTypeArticle, CTALabelKey: "cta.article", TagLabelKey: "tag.article",
		DefaultOverlay: 60, Route: RouteArticle,
	},
	domain.SlideTypeProduct: {
		Type: domain.SlideTypeProduct, CTALabelKey: "cta.product", TagLabelKey: "tag.product",
		DefaultOverlay: 55, Route: RouteProduct,
	},
	domain.SlideTypeMainService: {
		Type: domain.SlideTypeMainService, CTALabelKey: "cta.service", TagLabelKey: "tag.main_service",
		DefaultOverlay: 55, Route: RouteService,
	},
	domain.SlideTypeImportService: {
		Type: domain.SlideTypeImportService, CTALabelKey: "cta.service", TagLabelKey: "tag.import_service",
		DefaultOverlay: 55, Route: RouteImport,
	},
	domain.SlideTypeContractingService: {
		Type: domain.SlideTypeContractingService, CTALabelKey: "cta.service", TagLabelKey: "tag.contracting_service",
		DefaultOverlay: 55, Route: RouteContracting,
	},
	domain.SlideTypeProject: {
		Type: domain.SlideTypeProject, CTALabelKey: "cta.project", TagLabelKey: "tag.project",
		DefaultOverlay: 50, Route: RouteProject,
	},
}

// DescriptorFor returns the built-in descriptor for t. Unknown types get the
// custom descriptor.
func DescriptorFor(t domain.SlideType) Descriptor {
	if d, ok := descriptors[t]; ok {
		return d
	}
	return CustomDescriptor
}
