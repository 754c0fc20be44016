package cardsessions

import (
	"context"
	"sort"
	"sync"

	apperrors "github.com/0niSec/cephalon-seraph/internal/errors"
)

// InMemoryRepository keeps snapshots in process memory.
// Used when no Redis is configured; snapshots do not survive a restart.
type InMemoryRepository struct {
	mu        sync.RWMutex
	snapshots map[string]*Snapshot
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() Repository {
	return &InMemoryRepository{
		snapshots: make(map[string]*Snapshot),
	}
}

func (r *InMemoryRepository) Save(ctx context.Context, snapshot *Snapshot) error {
	if snapshot == nil {
		return apperrors.InvalidArgument("snapshot cannot be nil")
	}
	if snapshot.ID == "" {
		return apperrors.InvalidArgument("snapshot ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	snapCopy := *snapshot
	r.snapshots[snapshot.ID] = &snapCopy
	return nil
}

func (r *InMemoryRepository) Get(ctx context.Context, id string) (*Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot, exists := r.snapshots[id]
	if !exists {
		return nil, apperrors.NotFoundf("card session %s not found", id).WithMeta("session_id", id)
	}

	snapCopy := *snapshot
	return &snapCopy, nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.snapshots, id)
	return nil
}

func (r *InMemoryRepository) List(ctx context.Context) ([]*Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Snapshot, 0, len(r.snapshots))
	for _, snapshot := range r.snapshots {
		snapCopy := *snapshot
		out = append(out, &snapCopy)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
