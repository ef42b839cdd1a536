package persistence

import (
	"context"
	"sync"

	"github.com/macro-tracker/backend/internal/application/adapter"
	"github.com/macro-tracker/backend/internal/domain/entity"
	domainerror "github.com/macro-tracker/backend/internal/domain/error"
	"github.com/macro-tracker/backend/internal/integration/persistence/model"
)

// foodRepository implements the adapter.FoodRepository interface.
type foodRepository struct {
	mu    sync.Mutex
	blobs adapter.BlobStore
	items []*entity.Food
}

// Create appends a food and writes the catalog. The append is undone if the write fails.
func (r *foodRepository) Create(ctx context.Context, food *entity.Food) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *food
	r.items = append(r.items, &stored)
	if err := r.persist(ctx); err != nil {
		r.items = r.items[:len(r.items)-1]
		return err
	}
	return nil
}

// FindByID retrieves a food by its ID.
func (r *foodRepository) FindByID(_ context.Context, id string) (*entity.Food, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, f := range r.items {
		if f.ID == id {
			found := *f
			return &found, nil
		}
	}
	return nil, domainerror.ErrFoodNotFound
}

// List returns a copy of the catalog in insertion order.
func (r *foodRepository) List(_ context.Context) ([]*entity.Food, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	foods := make([]*entity.Food, len(r.items))
	for i, f := range r.items {
		food := *f
		foods[i] = &food
	}
	return foods, nil
}

func (r *foodRepository) persist(ctx context.Context) error {
	records := make([]model.FoodRecord, len(r.items))
	for i, f := range r.items {
		records[i] = model.FoodFromEntity(f)
	}
	return saveBlob(ctx, r.blobs, adapter.FoodsKey, records)
}
