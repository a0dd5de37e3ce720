package references

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/goliatone/go-showcase/internal/catalog"
	"github.com/goliatone/go-showcase/internal/domain"
)

// CatalogReader is the read side of the catalog the built-in kinds need.
type CatalogReader interface {
	GetCategory(ctx context.Context, id uuid.UUID) (*catalog.Category, error)
	GetProjectType(ctx context.Context, id uuid.UUID) (*catalog.ProjectType, error)
	GetArticle(ctx context.Context, id uuid.UUID) (*catalog.Article, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*catalog.Product, error)
	GetService(ctx context.Context, id uuid.UUID) (*catalog.Service, error)
	GetProject(ctx context.Context, id uuid.UUID) (*catalog.Project, error)
}

type baseKind struct {
	descriptor Descriptor
	catalog    CatalogReader
	images     ImageResolver
}

func (k baseKind) Type() domain.SlideType { return k.descriptor.Type }
func (k baseKind) Route() string          { return k.descriptor.Route }
func (k baseKind) Descriptor() Descriptor { return k.descriptor }

func (k baseKind) imageURL(ctx context.Context, id *uuid.UUID) (string, error) {
	if id == nil || k.images == nil {
		return "", nil
	}
	return k.images.ResolveURL(ctx, *id)
}

func (k baseKind) categoryName(ctx context.Context, id *uuid.UUID) (domain.Localized, error) {
	if id == nil {
		return domain.Localized{}, nil
	}
	category, err := k.catalog.GetCategory(ctx, *id)
	if err != nil {
		return domain.Localized{}, ignoreMissing(err)
	}
	return category.Name(), nil
}

// ignoreMissing turns a missing entity into a zero result.
func ignoreMissing(err error) error {
	if errors.Is(err, catalog.ErrNotFound) {
		return nil
	}
	return err
}

type articleKind struct{ baseKind }

func (k articleKind) Resolve(ctx context.Context, id uuid.UUID) (*Reference, error) {
	article, err := k.catalog.GetArticle(ctx, id)
	if err != nil {
		return nil, ignoreMissing(err)
	}
	image, err := k.imageURL(ctx, article.ImageID)
	if err != nil {
		return nil, err
	}
	category, err := k.categoryName(ctx, article.CategoryID)
	if err != nil {
		return nil, err
	}
	ref := &Reference{
		Type:        k.Type(),
		ID:          article.ID,
		Title:       article.Title(),
		Description: PlainText(article.Summary()),
		Slug:        article.Slug(),
		ImageURL:    image,
		Metadata:    Metadata{Category: category},
	}
	if article.PublishedAt != nil {
		at := *article.PublishedAt
		ref.Metadata.PublishedAt = &at
	}
	return ref, nil
}

type productKind struct{ baseKind }

func (k productKind) Resolve(ctx context.Context, id uuid.UUID) (*Reference, error) {
	product, err := k.catalog.GetProduct(ctx, id)
	if err != nil {
		return nil, ignoreMissing(err)
	}
	image, err := k.imageURL(ctx, product.ImageID)
	if err != nil {
		return nil, err
	}
	category, err := k.categoryName(ctx, product.CategoryID)
	if err != nil {
		return nil, err
	}
	return &Reference{
		Type:        k.Type(),
		ID:          product.ID,
		Title:       product.Title(),
		Description: PlainText(product.Description()),
		Slug:        product.Slug(),
		ImageURL:    image,
		Metadata:    Metadata{Category: category},
	}, nil
}

// serviceKind resolves one service listing. A service of a different kind
// counts as missing.
type serviceKind struct {
	baseKind
	kind catalog.ServiceKind
}

func (k serviceKind) Resolve(ctx context.Context, id uuid.UUID) (*Reference, error) {
	svc, err := k.catalog.GetService(ctx, id)
	if err != nil {
		return nil, ignoreMissing(err)
	}
	if svc.Kind != k.kind {
		return nil, nil
	}
	image, err := k.imageURL(ctx, svc.ImageID)
	if err != nil {
		return nil, err
	}
	return &Reference{
		Type:        k.Type(),
		ID:          svc.ID,
		Title:       svc.Title(),
		Description: PlainText(svc.Description()),
		Slug:        svc.Slug(),
		ImageURL:    image,
	}, nil
}

type projectKind struct{ baseKind }

func (k projectKind) Resolve(ctx context.Context, id uuid.UUID) (*Reference, error) {
	project, err := k.catalog.GetProject(ctx, id)
	if err != nil {
		return nil, ignoreMissing(err)
	}
	image, err := k.imageURL(ctx, project.ImageID)
	if err != nil {
		return nil, err
	}
	meta := Metadata{Location: project.Location(), Year: project.Year}
	if project.ProjectTypeID != nil {
		pt, err := k.catalog.GetProjectType(ctx, *project.ProjectTypeID)
		if err != nil {
			if err = ignoreMissing(err); err != nil {
				return nil, err
			}
		} else {
			meta.ProjectType = pt.Name()
		}
	}
	return &Reference{
		Type:        k.Type(),
		ID:          project.ID,
		Title:       project.Title(),
		Description: PlainText(project.Description()),
		Slug:        project.Slug(),
		ImageURL:    image,
		Metadata:    meta,
	}, nil
}

// BuiltinKinds returns the six catalog-backed kinds.
func BuiltinKinds(reader CatalogReader, images ImageResolver) []Kind {
	base := func(t domain.SlideType) baseKind {
		return baseKind{descriptor: DescriptorFor(t), catalog: reader, images: images}
	}
	return []Kind{
		articleKind{base(domain.SlideTypeArticle)},
		productKind{base(domain.SlideTypeProduct)},
		serviceKind{base(domain.SlideTypeMainService), catalog.ServiceKindMain},
		serviceKind{base(domain.SlideTypeImportService), catalog.ServiceKindImport},
		serviceKind{base(domain.SlideTypeContractingService), catalog.ServiceKindContracting},
		projectKind{base(domain.SlideTypeProject)},
	}
}
