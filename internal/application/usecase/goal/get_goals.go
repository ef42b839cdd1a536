// Package goal contains daily goals use cases.
package goal

import (
	"context"
	"fmt"

	"github.com/macro-tracker/backend/internal/application/adapter"
	"github.com/macro-tracker/backend/internal/domain/entity"
)

// GetGoalsOutput represents the output of reading the goals.
type GetGoalsOutput struct {
	Goals entity.Goals
}

// GetGoalsUseCase handles reading the current goals.
type GetGoalsUseCase struct {
	goalsRepo adapter.GoalsRepository
}

// NewGetGoalsUseCase creates a new GetGoalsUseCase instance.
func NewGetGoalsUseCase(goalsRepo adapter.GoalsRepository) *GetGoalsUseCase {
	return &GetGoalsUseCase{
		goalsRepo: goalsRepo,
	}
}

// Execute returns the current goals.
func (uc *GetGoalsUseCase) Execute(ctx context.Context) (*GetGoalsOutput, error) {
	goals, err := uc.goalsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get goals: %w", err)
	}

	return &GetGoalsOutput{
		Goals: goals,
	}, nil
}
