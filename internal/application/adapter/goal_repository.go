package adapter

import (
	"context"

	"github.com/macro-tracker/backend/internal/domain/entity"
)

// GoalsRepository defines the interface for the daily goals record.
type GoalsRepository interface {
	// Get returns the current goals.
	Get(ctx context.Context) (entity.Goals, error)

	// Save replaces the goals and persists them.
	Save(ctx context.Context, goals entity.Goals) error
}
