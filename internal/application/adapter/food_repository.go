package adapter

import (
	"context"

	"github.com/macro-tracker/backend/internal/domain/entity"
)

// FoodRepository defines the interface for catalog operations.
type FoodRepository interface {
	// Create appends a food to the catalog and persists the catalog.
	Create(ctx context.Context, food *entity.Food) error

	// FindByID retrieves a food by its ID.
	FindByID(ctx context.Context, id string) (*entity.Food, error)

	// List returns the catalog in insertion order.
	List(ctx context.Context) ([]*entity.Food, error)
}
