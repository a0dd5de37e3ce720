package references

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/goliatone/go-showcase/internal/domain"
)

var (
	ErrKindInvalid = errors.New("references: kind must declare a reference slide type")
	ErrKindExists  = errors.New("references: kind already registered")
)

// Registry maps slide types to the kinds that resolve them.
type Registry struct {
	mu    sync.RWMutex
	kinds map[domain.SlideType]Kind
}

func NewRegistry(kinds ...Kind) (*Registry, error) {
	r := &Registry{kinds: make(map[domain.SlideType]Kind, len(kinds))}
	for _, k := range kinds {
		if err := r.Register(k); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Registry) Register(kind Kind) error {
	if kind == nil || !kind.Type().IsReference() {
		return ErrKindInvalid
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.kinds[kind.Type()]; exists {
		return fmt.Errorf("%w: %s", ErrKindExists, kind.Type())
	}
	r.kinds[kind.Type()] = kind
	return nil
}

func (r *Registry) Lookup(t domain.SlideType) (Kind, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	k, ok := r.kinds[t]
	return k, ok
}

// Descriptor returns the registered descriptor for t, falling back to the
// built-in one.
func (r *Registry) Descriptor(t domain.SlideType) Descriptor {
	if k, ok := r.Lookup(t); ok {
		return k.Descriptor()
	}
	return DescriptorFor(t)
}

func (r *Registry) Types() []domain.SlideType {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.SlideType, 0, len(r.kinds))
	for t := range r.kinds {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
