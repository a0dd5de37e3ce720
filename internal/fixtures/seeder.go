package fixtures

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/google/uuid"

	"github.com/goliatone/go-showcase/internal/catalog"
	"github.com/goliatone/go-showcase/internal/domain"
	"github.com/goliatone/go-showcase/internal/identity"
	"github.com/goliatone/go-showcase/internal/logging"
	"github.com/goliatone/go-showcase/internal/media"
	"github.com/goliatone/go-showcase/internal/slides"
	"github.com/goliatone/go-showcase/pkg/interfaces"
)

var (
	ErrServiceRequired = errors.New("fixtures: catalog, media and slide services are required")
	ErrUnknownKey      = errors.New("fixtures: unknown fixture key")
)

// Entity kinds used to derive fixture ids.
const (
	KindImage       = "image"
	KindCategory    = "category"
	KindProjectType = "project_type"
	KindArticle     = "article"
	KindProduct     = "product"
	KindService     = "service"
	KindProject     = "project"
)

// Summary counts what a seed run created and what already existed.
type Summary struct {
	Created map[string]int
	Skipped int
}

func (s Summary) Total() int {
	total := 0
	for _, n := range s.Created {
		total += n
	}
	return total
}

// Seeder writes fixture documents through the services so every write is
// validated. Ids derive from fixture keys, so reseeding skips existing rows.
type Seeder struct {
	catalog catalog.CatalogService
	media   media.Service
	slides  slides.Service
	logger  interfaces.Logger
}

type Option func(*Seeder)

func WithLogger(logger interfaces.Logger) Option {
	return func(s *Seeder) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func NewSeeder(catalogSvc catalog.CatalogService, mediaSvc media.Service, slideSvc slides.Service, opts ...Option) (*Seeder, error) {
	if catalogSvc == nil || mediaSvc == nil || slideSvc == nil {
		return nil, ErrServiceRequired
	}
	s := &Seeder{catalog: catalogSvc, media: mediaSvc, slides: slideSvc, logger: logging.NoOp()}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// SeedFile parses and seeds the fixture at name in fsys.
func (s *Seeder) SeedFile(ctx context.Context, fsys fs.FS, name string) (Summary, error) {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Summary{}, fmt.Errorf("fixtures: read %s: %w", name, err)
	}
	doc, err := Parse(raw)
	if err != nil {
		return Summary{}, err
	}
	return s.Seed(ctx, doc)
}

// Seed writes doc in dependency order.
func (s *Seeder) Seed(ctx context.Context, doc *Document) (Summary, error) {
	run := &seedRun{Seeder: s, summary: Summary{Created: map[string]int{}}}
	if doc == nil {
		return run.summary, nil
	}
	steps := []func(context.Context, *Document) error{
		run.seedSections,
		run.seedImages,
		run.seedCategories,
		run.seedProjectTypes,
		run.seedArticles,
		run.seedProducts,
		run.seedServices,
		run.seedProjects,
		run.seedSlides,
	}
	for _, step := range steps {
		if err := step(ctx, doc); err != nil {
			return run.summary, err
		}
	}
	s.logger.Info("fixtures.seed.success", "created", run.summary.Total(), "skipped", run.summary.Skipped)
	return run.summary, nil
}

type seedRun struct {
	*Seeder
	summary Summary
}

// ensure creates an entity unless get finds it already.
func (r *seedRun) ensure(kind string, get func() error, notFound error, create func() error) error {
	err := get()
	switch {
	case err == nil:
		r.summary.Skipped++
		return nil
	case !errors.Is(err, notFound):
		return err
	}
	if err := create(); err != nil {
		return err
	}
	r.summary.Created[kind]++
	return nil
}

func (r *seedRun) seedSections(ctx context.Context, doc *Document) error {
	for _, sec := range doc.Sections {
		id := identity.HeroSectionUUID(sec.Code)
		name := sec.Name
		if name == "" {
			name = sec.Code
		}
		err := r.ensure("hero_section",
			func() error { _, err := r.slides.GetSection(ctx, id); return err },
			slides.ErrSectionNotFound,
			func() error {
				_, err := r.slides.CreateSection(ctx, slides.SectionInput{ID: id, Code: sec.Code, Name: name})
				return err
			})
		if err != nil {
			return fmt.Errorf("fixtures: section %s: %w", sec.Code, err)
		}
	}
	return nil
}

func (r *seedRun) seedImages(ctx context.Context, doc *Document) error {
	for _, img := range doc.Images {
		id := identity.EntityUUID(KindImage, img.Key)
		err := r.ensure(KindImage,
			func() error { _, err := r.media.Get(ctx, id); return err },
			media.ErrImageNotFound,
			func() error {
				_, err := r.media.Register(ctx, media.RegisterImageInput{
					ID: id, URL: img.URL, AltEn: img.AltEn, AltAr: img.AltAr, Width: img.Width, Height: img.Height,
				})
				return err
			})
		if err != nil {
			return fmt.Errorf("fixtures: image %s: %w", img.Key, err)
		}
	}
	return nil
}

func (r *seedRun) seedCategories(ctx context.Context, doc *Document) error {
	for _, c := range doc.Categories {
		id := identity.EntityUUID(KindCategory, c.Key)
		err := r.ensure(KindCategory,
			func() error { _, err := r.catalog.GetCategory(ctx, id); return err },
			catalog.ErrNotFound,
			func() error {
				_, err := r.catalog.CreateCategory(ctx, catalog.CategoryInput{ID: id, Slug: c.Slug, Name: c.Name})
				return err
			})
		if err != nil {
			return fmt.Errorf("fixtures: category %s: %w", c.Key, err)
		}
	}
	return nil
}

func (r *seedRun) seedProjectTypes(ctx context.Context, doc *Document) error {
	for _, pt := range doc.ProjectTypes {
		id := identity.EntityUUID(KindProjectType, pt.Key)
		err := r.ensure(KindProjectType,
			func() error { _, err := r.catalog.GetProjectType(ctx, id); return err },
			catalog.ErrNotFound,
			func() error {
				_, err := r.catalog.CreateProjectType(ctx, catalog.ProjectTypeInput{ID: id, Slug: pt.Slug, Name: pt.Name})
				return err
			})
		if err != nil {
			return fmt.Errorf("fixtures: project type %s: %w", pt.Key, err)
		}
	}
	return nil
}

func (r *seedRun) seedArticles(ctx context.Context, doc *Document) error {
	for _, a := range doc.Articles {
		id := identity.EntityUUID(KindArticle, a.Key)
		err := r.ensure(KindArticle,
			func() error { _, err := r.catalog.GetArticle(ctx, id); return err },
			catalog.ErrNotFound,
			func() error {
				_, err := r.catalog.CreateArticle(ctx, catalog.ArticleInput{
					ID:          id,
					Title:       a.Title,
					Slug:        a.Slug,
					Summary:     a.Summary,
					Body:        a.Body,
					CategoryID:  keyRef(KindCategory, a.Category),
					ImageID:     keyRef(KindImage, a.Image),
					PublishedAt: a.PublishedAt,
				})
				return err
			})
		if err != nil {
			return fmt.Errorf("fixtures: article %s: %w", a.Key, err)
		}
	}
	return nil
}

func (r *seedRun) seedProducts(ctx context.Context, doc *Document) error {
	for _, p := range doc.Products {
		id := identity.EntityUUID(KindProduct, p.Key)
		err := r.ensure(KindProduct,
			func() error { _, err := r.catalog.GetProduct(ctx, id); return err },
			catalog.ErrNotFound,
			func() error {
				_, err := r.catalog.CreateProduct(ctx, catalog.ProductInput{
					ID:          id,
					Title:       p.Title,
					Slug:        p.Slug,
					Description: p.Description,
					CategoryID:  keyRef(KindCategory, p.Category),
					ImageID:     keyRef(KindImage, p.Image),
				})
				return err
			})
		if err != nil {
			return fmt.Errorf("fixtures: product %s: %w", p.Key, err)
		}
	}
	return nil
}

func (r *seedRun) seedServices(ctx context.Context, doc *Document) error {
	for _, svc := range doc.Services {
		id := identity.EntityUUID(KindService, svc.Key)
		err := r.ensure(KindService,
			func() error { _, err := r.catalog.GetService(ctx, id); return err },
			catalog.ErrNotFound,
			func() error {
				_, err := r.catalog.CreateService(ctx, catalog.ServiceInput{
					ID:          id,
					Kind:        catalog.ServiceKind(svc.Kind),
					Title:       svc.Title,
					Slug:        svc.Slug,
					Description: svc.Description,
					ImageID:     keyRef(KindImage, svc.Image),
				})
				return err
			})
		if err != nil {
			return fmt.Errorf("fixtures: service %s: %w", svc.Key, err)
		}
	}
	return nil
}

func (r *seedRun) seedProjects(ctx context.Context, doc *Document) error {
	for _, p := range doc.Projects {
		id := identity.EntityUUID(KindProject, p.Key)
		err := r.ensure(KindProject,
			func() error { _, err := r.catalog.GetProject(ctx, id); return err },
			catalog.ErrNotFound,
			func() error {
				_, err := r.catalog.CreateProject(ctx, catalog.ProjectInput{
					ID:            id,
					Title:         p.Title,
					Slug:          p.Slug,
					Description:   p.Description,
					Location:      p.Location,
					Year:          p.Year,
					ProjectTypeID: keyRef(KindProjectType, p.ProjectType),
					ImageID:       keyRef(KindImage, p.Image),
				})
				return err
			})
		if err != nil {
			return fmt.Errorf("fixtures: project %s: %w", p.Key, err)
		}
	}
	return nil
}

func (r *seedRun) seedSlides(ctx context.Context, doc *Document) error {
	services := make(map[string]Service, len(doc.Services))
	for _, svc := range doc.Services {
		services[svc.Key] = svc
	}

	for i, sl := range doc.Slides {
		input, ownerID, err := slideInput(sl, services)
		if err != nil {
			return fmt.Errorf("fixtures: slide %d: %w", i, err)
		}
		key := sl.Key
		if key == "" {
			key = fmt.Sprintf("%d", i)
		}
		input.ID = identity.SlideUUID(ownerID, key)
		err = r.ensure("slide",
			func() error { _, err := r.slides.Get(ctx, input.ID); return err },
			slides.ErrSlideNotFound,
			func() error { _, err := r.slides.Create(ctx, input); return err })
		if err != nil {
			return fmt.Errorf("fixtures: slide %s: %w", key, err)
		}
	}
	return nil
}

func slideInput(sl Slide, services map[string]Service) (slides.SlideInput, uuid.UUID, error) {
	slideType, ok := domain.ParseSlideType(string(sl.Type))
	if !ok {
		return slides.SlideInput{}, uuid.Nil, fmt.Errorf("%w: %q", slides.ErrUnknownSlideType, sl.Type)
	}
	in := slides.SlideInput{
		Type:              slideType,
		Title:             sl.Title,
		Subtitle:          sl.Subtitle,
		BackgroundImageID: keyRef(KindImage, sl.BackgroundImage),
		BackgroundColor:   sl.BackgroundColor,
		OverlayOpacity:    sl.OverlayOpacity,
		IsActive:          sl.Active,
	}
	if sl.CTA != nil {
		in.CTAEnabled = sl.CTA.Enabled
		in.CTAText = sl.CTA.Text
		in.CTAHref = sl.CTA.Href
	}
	if slideType != domain.SlideTypeCustom {
		in.ReferenceID = keyRef(referenceKind(slideType), sl.Reference)
	}

	var ownerID uuid.UUID
	switch {
	case sl.Section != "":
		ownerID = identity.HeroSectionUUID(sl.Section)
		in.HeroSectionID = &ownerID
	case sl.Service != "":
		svc, ok := services[sl.Service]
		if !ok {
			return in, uuid.Nil, fmt.Errorf("%w: service %s", ErrUnknownKey, sl.Service)
		}
		ownerID = identity.EntityUUID(KindService, sl.Service)
		switch catalog.ServiceKind(strings.ToLower(svc.Kind)) {
		case catalog.ServiceKindImport:
			in.ParentImportServiceID = &ownerID
		case catalog.ServiceKindContracting:
			in.ParentContractingServiceID = &ownerID
		default:
			return in, uuid.Nil, fmt.Errorf("fixtures: service %s cannot own slides", sl.Service)
		}
	}
	return in, ownerID, nil
}

func referenceKind(t domain.SlideType) string {
	switch {
	case t == domain.SlideTypeArticle:
		return KindArticle
	case t == domain.SlideTypeProduct:
		return KindProduct
	case t == domain.SlideTypeProject:
		return KindProject
	case t.IsService():
		return KindService
	}
	return ""
}

func keyRef(kind, key string) *uuid.UUID {
	if strings.TrimSpace(key) == "" {
		return nil
	}
	id := identity.EntityUUID(kind, key)
	return &id
}
