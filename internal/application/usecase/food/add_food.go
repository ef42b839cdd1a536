// Package food contains catalog use cases.
package food

import (
	"context"
	"log/slog"
	"math"
	"strings"

	"github.com/macro-tracker/backend/internal/application/adapter"
	"github.com/macro-tracker/backend/internal/domain/entity"
	domainerror "github.com/macro-tracker/backend/internal/domain/error"
	"github.com/macro-tracker/backend/internal/infra/metrics"
)

// AddFoodInput represents the input for adding a food to the catalog.
type AddFoodInput struct {
	Name    string
	Protein float64
	Carbs   float64
	Fats    float64
}

// AddFoodOutput represents the output of adding a food.
type AddFoodOutput struct {
	Food *entity.Food
}

// AddFoodUseCase handles food creation logic.
type AddFoodUseCase struct {
	foodRepo adapter.FoodRepository
}

// NewAddFoodUseCase creates a new AddFoodUseCase instance.
func NewAddFoodUseCase(foodRepo adapter.FoodRepository) *AddFoodUseCase {
	return &AddFoodUseCase{
		foodRepo: foodRepo,
	}
}

// Execute validates the input, derives calories and appends the food to the catalog.
func (uc *AddFoodUseCase) Execute(ctx context.Context, input AddFoodInput) (*AddFoodOutput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerror.NewFoodError(
			domainerror.ErrCodeFoodNameRequired,
			"food name is required",
			domainerror.ErrFoodNameRequired,
		)
	}

	for _, grams := range []float64{input.Protein, input.Carbs, input.Fats} {
		if !isNonNegative(grams) {
			return nil, domainerror.NewFoodError(
				domainerror.ErrCodeNegativeMacro,
				"protein, carbs and fats must be non-negative numbers",
				domainerror.ErrNegativeMacro,
			)
		}
	}

	food := entity.NewFood(input.Name, input.Protein, input.Carbs, input.Fats)

	if err := uc.foodRepo.Create(ctx, food); err != nil {
		return nil, domainerror.NewFoodError(
			domainerror.ErrCodeFoodPersistence,
			"failed to save food",
			err,
		)
	}

	metrics.RecordFoodAdded()
	slog.Info("Food added",
		"food_id", food.ID,
		"name", food.Name,
		"calories", food.Calories,
	)

	return &AddFoodOutput{
		Food: food,
	}, nil
}

func isNonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
