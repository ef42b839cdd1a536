// Package entry contains ledger use cases.
package entry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/macro-tracker/backend/internal/application/adapter"
	"github.com/macro-tracker/backend/internal/domain/entity"
	domainerror "github.com/macro-tracker/backend/internal/domain/error"
	"github.com/macro-tracker/backend/internal/infra/metrics"
)

// AddEntryInput represents the input for logging servings of a food.
type AddEntryInput struct {
	FoodID   string
	Servings float64
}

// AddEntryOutput represents the output of logging an entry.
type AddEntryOutput struct {
	Entry *entity.Entry
}

// AddEntryUseCase handles ledger entry creation logic.
type AddEntryUseCase struct {
	foodRepo  adapter.FoodRepository
	entryRepo adapter.EntryRepository
	clock     adapter.Clock
}

// NewAddEntryUseCase creates a new AddEntryUseCase instance.
func NewAddEntryUseCase(foodRepo adapter.FoodRepository, entryRepo adapter.EntryRepository, clock adapter.Clock) *AddEntryUseCase {
	return &AddEntryUseCase{
		foodRepo:  foodRepo,
		entryRepo: entryRepo,
		clock:     clock,
	}
}

// Execute scales the food's per-serving values by the servings and appends the entry.
// An unknown food is reported before invalid servings.
func (uc *AddEntryUseCase) Execute(ctx context.Context, input AddEntryInput) (*AddEntryOutput, error) {
	food, err := uc.foodRepo.FindByID(ctx, input.FoodID)
	if err != nil {
		if errors.Is(err, domainerror.ErrFoodNotFound) {
			return nil, domainerror.NewEntryError(
				domainerror.ErrCodeEntryFoodNotFound,
				"food not found",
				domainerror.ErrEntryFoodNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find food: %w", err)
	}

	if !(input.Servings > 0) || math.IsInf(input.Servings, 0) {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeInvalidServings,
			"servings must be greater than zero",
			domainerror.ErrInvalidServings,
		)
	}

	entry := entity.NewEntry(food, input.Servings, uc.clock.Now(), uc.clock.Location())

	if err := uc.entryRepo.Create(ctx, entry); err != nil {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeEntryPersistence,
			"failed to save entry",
			err,
		)
	}

	metrics.RecordEntryLogged()
	slog.Info("Entry logged",
		"entry_id", entry.ID,
		"food_id", entry.FoodID,
		"servings", entry.Servings,
		"date", entry.Date,
	)

	return &AddEntryOutput{
		Entry: entry,
	}, nil
}
