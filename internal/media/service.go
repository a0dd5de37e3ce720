package media

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

var (
	ErrRepositoryRequired = errors.New("media: repository required")
	ErrImageNotFound      = errors.New("media: image not found")
)

// Service manages the image library and turns image ids into URLs.
type Service interface {
	Register(ctx context.Context, input RegisterImageInput) (*Image, error)
	Get(ctx context.Context, id uuid.UUID) (*Image, error)
	List(ctx context.Context) ([]*Image, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// ResolveURL returns "" without error for a nil id or a missing image.
	ResolveURL(ctx context.Context, id uuid.UUID) (string, error)
}

// RegisterImageInput describes an uploaded image. Storage of the binary is
// handled elsewhere; only its public location is recorded here.
type RegisterImageInput struct {
	ID       uuid.UUID
	URL      string
	AltEn    string
	AltAr    string
	MimeType string
	Width    int
	Height   int
}

func (in RegisterImageInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.URL, validation.Required, validation.By(urlOrPath)),
		validation.Field(&in.MimeType, validation.When(in.MimeType != "", validation.Match(mimePattern))),
		validation.Field(&in.Width, validation.Min(0)),
		validation.Field(&in.Height, validation.Min(0)),
	)
}

type ServiceOption func(*service)

// WithBaseURL prefixes relative image paths when resolving URLs.
func WithBaseURL(base string) ServiceOption {
	return func(s *service) {
		s.baseURL = strings.TrimRight(strings.TrimSpace(base), "/")
	}
}

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

type service struct {
	repo    ImageRepository
	baseURL string
	now     func() time.Time
	id      func() uuid.UUID
}

func NewService(repo ImageRepository, opts ...ServiceOption) Service {
	if repo == nil {
		panic(ErrRepositoryRequired)
	}
	s := &service{repo: repo, now: time.Now, id: uuid.New}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Register(ctx context.Context, input RegisterImageInput) (*Image, error) {
	input.URL = strings.TrimSpace(input.URL)
	if err := input.Validate(); err != nil {
		return nil, err
	}
	id := input.ID
	if id == uuid.Nil {
		id = s.id()
	}
	return s.repo.Create(ctx, &Image{
		ID:        id,
		URL:       input.URL,
		AltEn:     strings.TrimSpace(input.AltEn),
		AltAr:     strings.TrimSpace(input.AltAr),
		MimeType:  strings.TrimSpace(input.MimeType),
		Width:     input.Width,
		Height:    input.Height,
		CreatedAt: s.now().UTC(),
	})
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Image, error) {
	img, err := s.repo.GetByID(ctx, id)
	if err != nil {
		var nf *NotFoundError
		if errors.As(err, &nf) {
			return nil, ErrImageNotFound
		}
		return nil, err
	}
	return img, nil
}

func (s *service) List(ctx context.Context) ([]*Image, error) {
	return s.repo.List(ctx)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		var nf *NotFoundError
		if errors.As(err, &nf) {
			return ErrImageNotFound
		}
		return err
	}
	return nil
}

func (s *service) ResolveURL(ctx context.Context, id uuid.UUID) (string, error) {
	if id == uuid.Nil {
		return "", nil
	}
	img, err := s.Get(ctx, id)
	if errors.Is(err, ErrImageNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return s.absolute(img.URL), nil
}

func (s *service) absolute(u string) string {
	if s.baseURL == "" || isAbsolute(u) {
		return u
	}
	return s.baseURL + "/" + strings.TrimLeft(u, "/")
}

func isAbsolute(u string) bool {
	return strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://") || strings.HasPrefix(u, "//")
}

var errInvalidURL = errors.New("must be an absolute URL or a path starting with /")

func urlOrPath(value any) error {
	raw, _ := value.(string)
	if strings.HasPrefix(raw, "/") {
		return nil
	}
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return errInvalidURL
	}
	return nil
}
