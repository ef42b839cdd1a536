package persistence

import (
	"context"
	"sync"

	"github.com/macro-tracker/backend/internal/application/adapter"
	"github.com/macro-tracker/backend/internal/domain/entity"
	"github.com/macro-tracker/backend/internal/integration/persistence/model"
)

// goalsRepository implements the adapter.GoalsRepository interface.
type goalsRepository struct {
	mu    sync.Mutex
	blobs adapter.BlobStore
	goals entity.Goals
}

// Get returns the current goals.
func (r *goalsRepository) Get(_ context.Context) (entity.Goals, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.goals, nil
}

// Save replaces the goals and writes them. The old goals are kept if the write fails.
func (r *goalsRepository) Save(ctx context.Context, goals entity.Goals) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := saveBlob(ctx, r.blobs, adapter.GoalsKey, model.GoalsFromEntity(goals)); err != nil {
		return err
	}
	r.goals = goals
	return nil
}
