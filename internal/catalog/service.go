package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-showcase/internal/domain"
	"github.com/goliatone/go-showcase/internal/logging"
	"github.com/goliatone/go-showcase/pkg/interfaces"
)

var (
	ErrRepositoryRequired = errors.New("catalog: repositories required")
	ErrNotFound           = errors.New("catalog: record not found")
	ErrSlugExists         = errors.New("catalog: slug already in use")
	ErrSlugRequired       = errors.New("catalog: slug could not be derived")
	ErrCategoryNotFound   = errors.New("catalog: category not found")
	ErrProjectTypeMissing = errors.New("catalog: project type not found")
)

// CatalogService manages the entities hero slides can point at.
type CatalogService interface {
	CreateCategory(ctx context.Context, input CategoryInput) (*Category, error)
	GetCategory(ctx context.Context, id uuid.UUID) (*Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*Category, error)
	ListCategories(ctx context.Context) ([]*Category, error)

	CreateProjectType(ctx context.Context, input ProjectTypeInput) (*ProjectType, error)
	GetProjectType(ctx context.Context, id uuid.UUID) (*ProjectType, error)
	ListProjectTypes(ctx context.Context) ([]*ProjectType, error)

	CreateArticle(ctx context.Context, input ArticleInput) (*Article, error)
	UpdateArticle(ctx context.Context, input ArticleInput) (*Article, error)
	GetArticle(ctx context.Context, id uuid.UUID) (*Article, error)
	GetArticleBySlug(ctx context.Context, locale, slug string) (*Article, error)
	ListArticles(ctx context.Context) ([]*Article, error)
	DeleteArticle(ctx context.Context, id uuid.UUID) error

	CreateProduct(ctx context.Context, input ProductInput) (*Product, error)
	UpdateProduct(ctx context.Context, input ProductInput) (*Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*Product, error)
	GetProductBySlug(ctx context.Context, locale, slug string) (*Product, error)
	ListProducts(ctx context.Context) ([]*Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error

	CreateService(ctx context.Context, input ServiceInput) (*Service, error)
	UpdateService(ctx context.Context, input ServiceInput) (*Service, error)
	GetService(ctx context.Context, id uuid.UUID) (*Service, error)
	GetServiceBySlug(ctx context.Context, kind ServiceKind, locale, slug string) (*Service, error)
	ListServices(ctx context.Context, kind ServiceKind) ([]*Service, error)
	DeleteService(ctx context.Context, id uuid.UUID) error

	CreateProject(ctx context.Context, input ProjectInput) (*Project, error)
	UpdateProject(ctx context.Context, input ProjectInput) (*Project, error)
	GetProject(ctx context.Context, id uuid.UUID) (*Project, error)
	GetProjectBySlug(ctx context.Context, locale, slug string) (*Project, error)
	ListProjects(ctx context.Context) ([]*Project, error)
	DeleteProject(ctx context.Context, id uuid.UUID) error
}

type ServiceOption func(*service)

func WithNow(now func() time.Time) ServiceOption {
	return func(s *service) {
		if now != nil {
			s.now = now
		}
	}
}

func WithIDGenerator(gen func() uuid.UUID) ServiceOption {
	return func(s *service) {
		if gen != nil {
			s.id = gen
		}
	}
}

func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

type service struct {
	repos  Repositories
	now    func() time.Time
	id     func() uuid.UUID
	logger interfaces.Logger
}

func NewService(repos Repositories, opts ...ServiceOption) CatalogService {
	if repos.Categories == nil || repos.ProjectTypes == nil || repos.Articles == nil ||
		repos.Products == nil || repos.Services == nil || repos.Projects == nil {
		panic(ErrRepositoryRequired)
	}
	s := &service{
		repos:  repos,
		now:    time.Now,
		id:     uuid.New,
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) CreateCategory(ctx context.Context, input CategoryInput) (*Category, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	name := input.Name.Trim()
	slugValue := NormalizeSlug(firstNonEmpty(input.Slug, name.En))
	if slugValue == "" {
		return nil, ErrSlugRequired
	}
	if err := ensureSlugFree(ctx, s.repos.Categories, "en", slugValue, uuid.Nil); err != nil {
		return nil, err
	}
	now := s.now().UTC()
	return s.repos.Categories.Create(ctx, &Category{
		ID:        s.idOr(input.ID),
		Slug:      slugValue,
		NameEn:    name.En,
		NameAr:    name.Ar,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (s *service) GetCategory(ctx context.Context, id uuid.UUID) (*Category, error) {
	return getLive(ctx, s.repos.Categories, id, "category")
}

func (s *service) GetCategoryBySlug(ctx context.Context, slug string) (*Category, error) {
	return getBySlug(ctx, s.repos.Categories, "en", slug, "category")
}

func (s *service) ListCategories(ctx context.Context) ([]*Category, error) {
	return s.repos.Categories.List(ctx, ListOptions{})
}

func (s *service) CreateProjectType(ctx context.Context, input ProjectTypeInput) (*ProjectType, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	name := input.Name.Trim()
	slugValue := NormalizeSlug(firstNonEmpty(input.Slug, name.En))
	if slugValue == "" {
		return nil, ErrSlugRequired
	}
	if err := ensureSlugFree(ctx, s.repos.ProjectTypes, "en", slugValue, uuid.Nil); err != nil {
		return nil, err
	}
	now := s.now().UTC()
	return s.repos.ProjectTypes.Create(ctx, &ProjectType{
		ID:        s.idOr(input.ID),
		Slug:      slugValue,
		NameEn:    name.En,
		NameAr:    name.Ar,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (s *service) GetProjectType(ctx context.Context, id uuid.UUID) (*ProjectType, error) {
	return getLive(ctx, s.repos.ProjectTypes, id, "project type")
}

func (s *service) ListProjectTypes(ctx context.Context) ([]*ProjectType, error) {
	return s.repos.ProjectTypes.List(ctx, ListOptions{})
}

func (s *service) CreateArticle(ctx context.Context, input ArticleInput) (*Article, error) {
	article, err := s.buildArticle(ctx, input, uuid.Nil)
	if err != nil {
		return nil, err
	}
	article.ID = s.idOr(input.ID)
	article.CreatedAt = article.UpdatedAt
	created, err := s.repos.Articles.Create(ctx, article)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("catalog.article.created", "article_id", created.ID, "slug", created.SlugEn)
	return created, nil
}

func (s *service) UpdateArticle(ctx context.Context, input ArticleInput) (*Article, error) {
	existing, err := s.GetArticle(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	article, err := s.buildArticle(ctx, input, existing.ID)
	if err != nil {
		return nil, err
	}
	article.ID = existing.ID
	article.CreatedAt = existing.CreatedAt
	return s.repos.Articles.Update(ctx, article)
}

func (s *service) buildArticle(ctx context.Context, input ArticleInput, self uuid.UUID) (*Article, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	title := input.Title.Trim()
	slugEn, slugAr := localizedSlugs(input.Slug.En, input.Slug.Ar, title.En, title.Ar)
	if slugEn == "" {
		return nil, ErrSlugRequired
	}
	if err := ensureLocalizedSlugsFree(ctx, s.repos.Articles, slugEn, slugAr, self); err != nil {
		return nil, err
	}
	if err := s.checkCategory(ctx, input.CategoryID); err != nil {
		return nil, err
	}
	summary, body := input.Summary.Trim(), input.Body.Trim()
	var published *time.Time
	if input.PublishedAt != nil {
		at := input.PublishedAt.UTC()
		published = &at
	}
	return &Article{
		TitleEn:     title.En,
		TitleAr:     title.Ar,
		SlugEn:      slugEn,
		SlugAr:      slugAr,
		SummaryEn:   summary.En,
		SummaryAr:   summary.Ar,
		BodyEn:      body.En,
		BodyAr:      body.Ar,
		CategoryID:  cloneUUID(input.CategoryID),
		ImageID:     cloneUUID(input.ImageID),
		PublishedAt: published,
		UpdatedAt:   s.now().UTC(),
	}, nil
}

func (s *service) GetArticle(ctx context.Context, id uuid.UUID) (*Article, error) {
	return getLive(ctx, s.repos.Articles, id, "article")
}

func (s *service) GetArticleBySlug(ctx context.Context, locale, slug string) (*Article, error) {
	return getBySlug(ctx, s.repos.Articles, locale, slug, "article")
}

func (s *service) ListArticles(ctx context.Context) ([]*Article, error) {
	return s.repos.Articles.List(ctx, ListOptions{})
}

func (s *service) DeleteArticle(ctx context.Context, id uuid.UUID) error {
	return softDelete(ctx, s.repos.Articles, id, "article", s.now().UTC())
}

func (s *service) CreateProduct(ctx context.Context, input ProductInput) (*Product, error) {
	product, err := s.buildProduct(ctx, input, uuid.Nil)
	if err != nil {
		return nil, err
	}
	product.ID = s.idOr(input.ID)
	product.CreatedAt = product.UpdatedAt
	return s.repos.Products.Create(ctx, product)
}

func (s *service) UpdateProduct(ctx context.Context, input ProductInput) (*Product, error) {
	existing, err := s.GetProduct(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	product, err := s.buildProduct(ctx, input, existing.ID)
	if err != nil {
		return nil, err
	}
	product.ID = existing.ID
	product.CreatedAt = existing.CreatedAt
	return s.repos.Products.Update(ctx, product)
}

func (s *service) buildProduct(ctx context.Context, input ProductInput, self uuid.UUID) (*Product, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	title := input.Title.Trim()
	slugEn, slugAr := localizedSlugs(input.Slug.En, input.Slug.Ar, title.En, title.Ar)
	if slugEn == "" {
		return nil, ErrSlugRequired
	}
	if err := ensureLocalizedSlugsFree(ctx, s.repos.Products, slugEn, slugAr, self); err != nil {
		return nil, err
	}
	if err := s.checkCategory(ctx, input.CategoryID); err != nil {
		return nil, err
	}
	desc := input.Description.Trim()
	return &Product{
		TitleEn:       title.En,
		TitleAr:       title.Ar,
		SlugEn:        slugEn,
		SlugAr:        slugAr,
		DescriptionEn: desc.En,
		DescriptionAr: desc.Ar,
		CategoryID:    cloneUUID(input.CategoryID),
		ImageID:       cloneUUID(input.ImageID),
		UpdatedAt:     s.now().UTC(),
	}, nil
}

func (s *service) GetProduct(ctx context.Context, id uuid.UUID) (*Product, error) {
	return getLive(ctx, s.repos.Products, id, "product")
}

func (s *service) GetProductBySlug(ctx context.Context, locale, slug string) (*Product, error) {
	return getBySlug(ctx, s.repos.Products, locale, slug, "product")
}

func (s *service) ListProducts(ctx context.Context) ([]*Product, error) {
	return s.repos.Products.List(ctx, ListOptions{})
}

func (s *service) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	return softDelete(ctx, s.repos.Products, id, "product", s.now().UTC())
}

func (s *service) CreateService(ctx context.Context, input ServiceInput) (*Service, error) {
	svc, err := s.buildService(ctx, input, uuid.Nil)
	if err != nil {
		return nil, err
	}
	svc.ID = s.idOr(input.ID)
	svc.CreatedAt = svc.UpdatedAt
	return s.repos.Services.Create(ctx, svc)
}

func (s *service) UpdateService(ctx context.Context, input ServiceInput) (*Service, error) {
	existing, err := s.GetService(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	svc, err := s.buildService(ctx, input, existing.ID)
	if err != nil {
		return nil, err
	}
	svc.ID = existing.ID
	svc.CreatedAt = existing.CreatedAt
	return s.repos.Services.Update(ctx, svc)
}

func (s *service) buildService(ctx context.Context, input ServiceInput, self uuid.UUID) (*Service, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	title := input.Title.Trim()
	slugEn, slugAr := localizedSlugs(input.Slug.En, input.Slug.Ar, title.En, title.Ar)
	if slugEn == "" {
		return nil, ErrSlugRequired
	}
	// Slugs are unique per listing: /services/x and /import/x may coexist.
	for _, pair := range [][2]string{{"en", slugEn}, {"ar", slugAr}} {
		if pair[1] == "" {
			continue
		}
		if existing, err := s.findServiceBySlug(ctx, input.Kind, pair[0], pair[1]); err == nil && existing.ID != self {
			return nil, fmt.Errorf("%w: %s", ErrSlugExists, pair[1])
		} else if err != nil && !errors.Is(err, ErrNotFound) {
			return nil, err
		}
	}
	desc := input.Description.Trim()
	return &Service{
		Kind:          input.Kind,
		TitleEn:       title.En,
		TitleAr:       title.Ar,
		SlugEn:        slugEn,
		SlugAr:        slugAr,
		DescriptionEn: desc.En,
		DescriptionAr: desc.Ar,
		ImageID:       cloneUUID(input.ImageID),
		UpdatedAt:     s.now().UTC(),
	}, nil
}

func (s *service) GetService(ctx context.Context, id uuid.UUID) (*Service, error) {
	return getLive(ctx, s.repos.Services, id, "service")
}

func (s *service) GetServiceBySlug(ctx context.Context, kind ServiceKind, locale, slug string) (*Service, error) {
	return s.findServiceBySlug(ctx, kind, locale, slug)
}

func (s *service) findServiceBySlug(ctx context.Context, kind ServiceKind, locale, slug string) (*Service, error) {
	services, err := s.ListServices(ctx, kind)
	if err != nil {
		return nil, err
	}
	for _, svc := range services {
		if svc.SlugFor(locale) == slug {
			return svc, nil
		}
	}
	return nil, fmt.Errorf("%w: service %s", ErrNotFound, slug)
}

// ListServices returns live services of kind, or every kind when kind is empty.
func (s *service) ListServices(ctx context.Context, kind ServiceKind) ([]*Service, error) {
	all, err := s.repos.Services.List(ctx, ListOptions{})
	if err != nil {
		return nil, err
	}
	if kind == "" {
		return all, nil
	}
	out := make([]*Service, 0, len(all))
	for _, svc := range all {
		if svc.Kind == kind {
			out = append(out, svc)
		}
	}
	return out, nil
}

func (s *service) DeleteService(ctx context.Context, id uuid.UUID) error {
	return softDelete(ctx, s.repos.Services, id, "service", s.now().UTC())
}

func (s *service) CreateProject(ctx context.Context, input ProjectInput) (*Project, error) {
	project, err := s.buildProject(ctx, input, uuid.Nil)
	if err != nil {
		return nil, err
	}
	project.ID = s.idOr(input.ID)
	project.CreatedAt = project.UpdatedAt
	return s.repos.Projects.Create(ctx, project)
}

func (s *service) UpdateProject(ctx context.Context, input ProjectInput) (*Project, error) {
	existing, err := s.GetProject(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	project, err := s.buildProject(ctx, input, existing.ID)
	if err != nil {
		return nil, err
	}
	project.ID = existing.ID
	project.CreatedAt = existing.CreatedAt
	return s.repos.Projects.Update(ctx, project)
}

func (s *service) buildProject(ctx context.Context, input ProjectInput, self uuid.UUID) (*Project, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	title := input.Title.Trim()
	slugEn, slugAr := localizedSlugs(input.Slug.En, input.Slug.Ar, title.En, title.Ar)
	if slugEn == "" {
		return nil, ErrSlugRequired
	}
	if err := ensureLocalizedSlugsFree(ctx, s.repos.Projects, slugEn, slugAr, self); err != nil {
		return nil, err
	}
	if input.ProjectTypeID != nil {
		if _, err := s.GetProjectType(ctx, *input.ProjectTypeID); err != nil {
			if errors.Is(err, ErrNotFound) {
				return nil, ErrProjectTypeMissing
			}
			return nil, err
		}
	}
	desc, location := input.Description.Trim(), input.Location.Trim()
	return &Project{
		TitleEn:       title.En,
		TitleAr:       title.Ar,
		SlugEn:        slugEn,
		SlugAr:        slugAr,
		DescriptionEn: desc.En,
		DescriptionAr: desc.Ar,
		LocationEn:    location.En,
		LocationAr:    location.Ar,
		Year:          input.Year,
		ProjectTypeID: cloneUUID(input.ProjectTypeID),
		ImageID:       cloneUUID(input.ImageID),
		UpdatedAt:     s.now().UTC(),
	}, nil
}

func (s *service) GetProject(ctx context.Context, id uuid.UUID) (*Project, error) {
	return getLive(ctx, s.repos.Projects, id, "project")
}

func (s *service) GetProjectBySlug(ctx context.Context, locale, slug string) (*Project, error) {
	return getBySlug(ctx, s.repos.Projects, locale, slug, "project")
}

func (s *service) ListProjects(ctx context.Context) ([]*Project, error) {
	return s.repos.Projects.List(ctx, ListOptions{})
}

func (s *service) DeleteProject(ctx context.Context, id uuid.UUID) error {
	return softDelete(ctx, s.repos.Projects, id, "project", s.now().UTC())
}

func (s *service) checkCategory(ctx context.Context, id *uuid.UUID) error {
	if id == nil {
		return nil
	}
	if _, err := s.GetCategory(ctx, *id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}
	return nil
}

func (s *service) idOr(id uuid.UUID) uuid.UUID {
	if id != uuid.Nil {
		return id
	}
	return s.id()
}

// getLive hides soft-deleted records behind ErrNotFound.
func getLive[T Record](ctx context.Context, repo Repository[T], id uuid.UUID, resource string) (T, error) {
	var zero T
	record, err := repo.GetByID(ctx, id)
	if err != nil {
		var nf *NotFoundError
		if errors.As(err, &nf) {
			return zero, fmt.Errorf("%w: %s %s", ErrNotFound, resource, id)
		}
		return zero, err
	}
	if record.IsDeleted() {
		return zero, fmt.Errorf("%w: %s %s", ErrNotFound, resource, id)
	}
	return record, nil
}

func getBySlug[T Record](ctx context.Context, repo Repository[T], locale, slug, resource string) (T, error) {
	record, err := repo.GetBySlug(ctx, locale, slug)
	if err != nil {
		var nf *NotFoundError
		if errors.As(err, &nf) {
			var zero T
			return zero, fmt.Errorf("%w: %s %s", ErrNotFound, resource, slug)
		}
	}
	return record, err
}

type deletable interface {
	Record
	markDeleted(at time.Time)
}

func softDelete[T deletable](ctx context.Context, repo Repository[T], id uuid.UUID, resource string, at time.Time) error {
	record, err := getLive(ctx, repo, id, resource)
	if err != nil {
		return err
	}
	record.markDeleted(at)
	_, err = repo.Update(ctx, record)
	return err
}

func ensureSlugFree[T Record](ctx context.Context, repo Repository[T], locale, slug string, self uuid.UUID) error {
	if slug == "" {
		return nil
	}
	existing, err := repo.GetBySlug(ctx, locale, slug)
	if err == nil {
		if existing.GetID() != self {
			return fmt.Errorf("%w: %s", ErrSlugExists, slug)
		}
		return nil
	}
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return nil
	}
	return err
}

func ensureLocalizedSlugsFree[T Record](ctx context.Context, repo Repository[T], slugEn, slugAr string, self uuid.UUID) error {
	if err := ensureSlugFree(ctx, repo, domain.LocaleEnglish, slugEn, self); err != nil {
		return err
	}
	return ensureSlugFree(ctx, repo, domain.LocaleArabic, slugAr, self)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
