package slides

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"
)

type memorySlideRepository struct {
	mu   sync.RWMutex
	byID map[uuid.UUID]*Slide
}

// NewMemorySlideRepository constructs an in-memory slide store.
func NewMemorySlideRepository() SlideRepository {
	return &memorySlideRepository{byID: make(map[uuid.UUID]*Slide)}
}

func (m *memorySlideRepository) Create(_ context.Context, slide *Slide) (*Slide, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cloned := cloneSlide(slide)
	m.byID[cloned.ID] = cloned
	return cloneSlide(cloned), nil
}

func (m *memorySlideRepository) Update(_ context.Context, slide *Slide) (*Slide, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byID[slide.ID]; !ok {
		return nil, &NotFoundError{Resource: "hero_slide", Key: slide.ID.String()}
	}
	m.byID[slide.ID] = cloneSlide(slide)
	return cloneSlide(slide), nil
}

func (m *memorySlideRepository) GetByID(_ context.Context, id uuid.UUID) (*Slide, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.byID[id]
	if !ok {
		return nil, &NotFoundError{Resource: "hero_slide", Key: id.String()}
	}
	return cloneSlide(record), nil
}

func (m *memorySlideRepository) ListByOwner(_ context.Context, owner Owner) ([]*Slide, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*Slide
	for _, record := range m.byID {
		if o, ok := rowOwner(record); ok && o == owner {
			out = append(out, cloneSlide(record))
		}
	}
	slices.SortFunc(out, func(a, b *Slide) int {
		if a.SortOrder != b.SortOrder {
			return a.SortOrder - b.SortOrder
		}
		return strings.Compare(a.ID.String(), b.ID.String())
	})
	return out, nil
}

func (m *memorySlideRepository) UpdateSortOrder(_ context.Context, slides []*Slide) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, s := range slides {
		if _, ok := m.byID[s.ID]; !ok {
			return &NotFoundError{Resource: "hero_slide", Key: s.ID.String()}
		}
	}
	for _, s := range slides {
		stored := m.byID[s.ID]
		stored.SortOrder = s.SortOrder
		stored.UpdatedAt = s.UpdatedAt
	}
	return nil
}

func (m *memorySlideRepository) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byID[id]; !ok {
		return &NotFoundError{Resource: "hero_slide", Key: id.String()}
	}
	delete(m.byID, id)
	return nil
}

type memorySectionRepository struct {
	mu     sync.RWMutex
	byID   map[uuid.UUID]*HeroSection
	byCode map[string]uuid.UUID
}

// NewMemorySectionRepository constructs an in-memory hero section store.
func NewMemorySectionRepository() HeroSectionRepository {
	return &memorySectionRepository{
		byID:   make(map[uuid.UUID]*HeroSection),
		byCode: make(map[string]uuid.UUID),
	}
}

func (m *memorySectionRepository) Create(_ context.Context, section *HeroSection) (*HeroSection, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cloned := cloneSection(section)
	m.byID[cloned.ID] = cloned
	m.byCode[cloned.Code] = cloned.ID
	return cloneSection(cloned), nil
}

func (m *memorySectionRepository) GetByID(_ context.Context, id uuid.UUID) (*HeroSection, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.byID[id]
	if !ok {
		return nil, &NotFoundError{Resource: "hero_section", Key: id.String()}
	}
	return cloneSection(record), nil
}

func (m *memorySectionRepository) GetByCode(_ context.Context, code string) (*HeroSection, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.byCode[code]
	if !ok {
		return nil, &NotFoundError{Resource: "hero_section", Key: code}
	}
	return cloneSection(m.byID[id]), nil
}

func (m *memorySectionRepository) List(_ context.Context) ([]*HeroSection, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*HeroSection, 0, len(m.byID))
	for _, record := range m.byID {
		out = append(out, cloneSection(record))
	}
	slices.SortFunc(out, func(a, b *HeroSection) int { return strings.Compare(a.Code, b.Code) })
	return out, nil
}
