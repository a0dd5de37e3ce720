package catalog

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
)

type memoryRepository[T Record] struct {
	mu       sync.RWMutex
	resource string
	items    map[uuid.UUID]T
	order    []uuid.UUID
	clone    func(T) T
}

func newMemoryRepository[T Record](resource string, clone func(T) T) *memoryRepository[T] {
	return &memoryRepository[T]{
		resource: resource,
		items:    make(map[uuid.UUID]T),
		clone:    clone,
	}
}

// NewMemoryRepositories returns in-memory stores for every catalog entity.
func NewMemoryRepositories() Repositories {
	return Repositories{
		Categories:   newMemoryRepository("category", cloneCategory),
		ProjectTypes: newMemoryRepository("project_type", cloneProjectType),
		Articles:     newMemoryRepository("article", cloneArticle),
		Products:     newMemoryRepository("product", cloneProduct),
		Services:     newMemoryRepository("service", cloneService),
		Projects:     newMemoryRepository("project", cloneProject),
	}
}

func (m *memoryRepository[T]) Create(_ context.Context, record T) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cloned := m.clone(record)
	id := cloned.GetID()
	if _, exists := m.items[id]; !exists {
		m.order = append(m.order, id)
	}
	m.items[id] = cloned
	return m.clone(cloned), nil
}

func (m *memoryRepository[T]) Update(_ context.Context, record T) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := record.GetID()
	if _, ok := m.items[id]; !ok {
		var zero T
		return zero, &NotFoundError{Resource: m.resource, Key: id.String()}
	}
	m.items[id] = m.clone(record)
	return m.clone(record), nil
}

func (m *memoryRepository[T]) GetByID(_ context.Context, id uuid.UUID) (T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.items[id]
	if !ok {
		var zero T
		return zero, &NotFoundError{Resource: m.resource, Key: id.String()}
	}
	return m.clone(record), nil
}

func (m *memoryRepository[T]) GetBySlug(_ context.Context, locale, slug string) (T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	slug = strings.TrimSpace(slug)
	for _, id := range m.order {
		record := m.items[id]
		if record.IsDeleted() || slug == "" {
			continue
		}
		if record.SlugFor(locale) == slug {
			return m.clone(record), nil
		}
	}
	var zero T
	return zero, &NotFoundError{Resource: m.resource, Key: slug}
}

func (m *memoryRepository[T]) List(_ context.Context, opts ListOptions) ([]T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]T, 0, len(m.items))
	for _, id := range m.order {
		record := m.items[id]
		if record.IsDeleted() && !opts.IncludeDeleted {
			continue
		}
		out = append(out, m.clone(record))
	}
	return out, nil
}
