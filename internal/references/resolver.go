package references

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/goliatone/go-showcase/internal/domain"
	"github.com/goliatone/go-showcase/internal/logging"
	"github.com/goliatone/go-showcase/pkg/interfaces"
)

// Resolver looks up the entity behind a slide and builds links to it.
type Resolver struct {
	registry *Registry
	paths    PathBuilder
	logger   interfaces.Logger
}

type ResolverOption func(*Resolver)

func WithPathBuilder(paths PathBuilder) ResolverOption {
	return func(r *Resolver) {
		if paths != nil {
			r.paths = paths
		}
	}
}

func WithLogger(logger interfaces.Logger) ResolverOption {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

func NewResolver(registry *Registry, opts ...ResolverOption) *Resolver {
	if registry == nil {
		registry = &Registry{kinds: map[domain.SlideType]Kind{}}
	}
	r := &Resolver{
		registry: registry,
		paths:    DefaultTemplatePaths(),
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Resolver) Registry() *Registry { return r.registry }

// Resolve returns nil without error for custom or unknown types, a nil id,
// and missing or deleted entities. Only storage failures are returned.
func (r *Resolver) Resolve(ctx context.Context, t domain.SlideType, id uuid.UUID) (*Reference, error) {
	if id == uuid.Nil || !t.IsReference() {
		return nil, nil
	}
	kind, ok := r.registry.Lookup(t)
	if !ok {
		r.logger.Debug("references.kind.unregistered", "slide_type", t)
		return nil, nil
	}
	ref, err := kind.Resolve(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("references: resolve %s %s: %w", t, id, err)
	}
	if ref == nil {
		r.logger.Debug("references.entity.missing", "slide_type", t, "id", id)
	}
	return ref, nil
}

// Href builds the localized link to ref. It returns "" when ref has no slug
// in any locale.
func (r *Resolver) Href(locale string, ref *Reference) (string, error) {
	if ref == nil {
		return "", nil
	}
	slug := ref.Slug.In(locale)
	if slug == "" {
		return "", nil
	}
	route := r.registry.Descriptor(ref.Type).Route
	if route == "" {
		return "", nil
	}
	return r.paths.Build(locale, route, slug)
}

// Descriptor returns the presentation defaults for t.
func (r *Resolver) Descriptor(t domain.SlideType) Descriptor {
	return r.registry.Descriptor(t)
}
