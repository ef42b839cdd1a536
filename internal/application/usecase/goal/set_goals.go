package goal

import (
	"context"
	"log/slog"

	"github.com/macro-tracker/backend/internal/application/adapter"
	"github.com/macro-tracker/backend/internal/domain/entity"
	domainerror "github.com/macro-tracker/backend/internal/domain/error"
)

// SetGoalsInput represents the input for replacing the goals.
type SetGoalsInput struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fats     float64
}

// SetGoalsOutput represents the output of replacing the goals.
type SetGoalsOutput struct {
	Goals entity.Goals
}

// SetGoalsUseCase handles wholesale goals replacement.
type SetGoalsUseCase struct {
	goalsRepo adapter.GoalsRepository
}

// NewSetGoalsUseCase creates a new SetGoalsUseCase instance.
func NewSetGoalsUseCase(goalsRepo adapter.GoalsRepository) *SetGoalsUseCase {
	return &SetGoalsUseCase{
		goalsRepo: goalsRepo,
	}
}

// Execute validates and stores the new goals.
func (uc *SetGoalsUseCase) Execute(ctx context.Context, input SetGoalsInput) (*SetGoalsOutput, error) {
	goals := entity.Goals{
		Calories: input.Calories,
		Protein:  input.Protein,
		Carbs:    input.Carbs,
		Fats:     input.Fats,
	}

	if !goals.Valid() {
		return nil, domainerror.NewGoalsError(
			domainerror.ErrCodeNegativeGoal,
			"goal values must be non-negative numbers",
			domainerror.ErrNegativeGoal,
		)
	}

	if err := uc.goalsRepo.Save(ctx, goals); err != nil {
		return nil, domainerror.NewGoalsError(
			domainerror.ErrCodeGoalsPersistence,
			"failed to save goals",
			err,
		)
	}

	slog.Info("Goals updated",
		"calories", goals.Calories,
		"protein", goals.Protein,
		"carbs", goals.Carbs,
		"fats", goals.Fats,
	)

	return &SetGoalsOutput{
		Goals: goals,
	}, nil
}
