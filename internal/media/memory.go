package media

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

type memoryImageRepository struct {
	mu   sync.RWMutex
	byID map[uuid.UUID]*Image
}

// NewMemoryImageRepository constructs an in-memory image repository.
func NewMemoryImageRepository() ImageRepository {
	return &memoryImageRepository{byID: make(map[uuid.UUID]*Image)}
}

func (m *memoryImageRepository) Create(_ context.Context, img *Image) (*Image, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cloned := cloneImage(img)
	m.byID[cloned.ID] = cloned
	return cloneImage(cloned), nil
}

func (m *memoryImageRepository) GetByID(_ context.Context, id uuid.UUID) (*Image, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	img, ok := m.byID[id]
	if !ok {
		return nil, &NotFoundError{Resource: "image", Key: id.String()}
	}
	return cloneImage(img), nil
}

func (m *memoryImageRepository) List(_ context.Context) ([]*Image, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Image, 0, len(m.byID))
	for _, img := range m.byID {
		out = append(out, cloneImage(img))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID.String() < out[j].ID.String()
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (m *memoryImageRepository) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byID[id]; !ok {
		return &NotFoundError{Resource: "image", Key: id.String()}
	}
	delete(m.byID, id)
	return nil
}
