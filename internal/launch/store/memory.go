package store

import (
	"context"
	"slices"
	"sync"

	"github.com/shandysiswandi/golaunch/internal/launch/entity"
	"github.com/shandysiswandi/golaunch/internal/pkg/pkgerror"
)

// InMemoryStore holds the dataset served by the dashboard. It accepts exactly
// one Load; afterwards the dataset is read-only.
type InMemoryStore struct {
	mu      sync.RWMutex
	dataset *entity.Dataset
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

func (s *InMemoryStore) Load(ctx context.Context, ds entity.Dataset) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dataset != nil {
		return pkgerror.NewBusiness("dataset already loaded", pkgerror.CodeConflict)
	}

	ds.Records = slices.Clip(slices.Clone(ds.Records))
	s.dataset = &ds

	return nil
}

// Dataset returns the loaded dataset. Records must be treated as read-only.
func (s *InMemoryStore) Dataset(ctx context.Context) (entity.Dataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.dataset == nil {
		return entity.Dataset{}, pkgerror.ErrNotFound
	}

	return *s.dataset, nil
}
