// Package dashboard contains the derived views over the ledger.
package dashboard

import (
	"context"
	"fmt"

	"github.com/macro-tracker/backend/internal/application/adapter"
	"github.com/macro-tracker/backend/internal/domain/aggregate"
	"github.com/macro-tracker/backend/internal/domain/entity"
)

// GetDailySummaryInput represents the input for the daily view.
type GetDailySummaryInput struct {
	Date string // YYYY-MM-DD, defaults to today
}

// MacroProgressSet holds one progress row per tracked value.
type MacroProgressSet struct {
	Calories aggregate.MacroProgress
	Protein  aggregate.MacroProgress
	Carbs    aggregate.MacroProgress
	Fats     aggregate.MacroProgress
}

// GetDailySummaryOutput represents the daily view.
type GetDailySummaryOutput struct {
	Date     string
	Totals   entity.MacroTotals
	Goals    entity.Goals
	Progress MacroProgressSet
	Split    aggregate.CalorieSplit
	Recent   []*entity.Entry
}

// GetDailySummaryUseCase recomputes the day's totals and progress from current state.
type GetDailySummaryUseCase struct {
	entryRepo adapter.EntryRepository
	goalsRepo adapter.GoalsRepository
	clock     adapter.Clock
}

// NewGetDailySummaryUseCase creates a new GetDailySummaryUseCase instance.
func NewGetDailySummaryUseCase(
	entryRepo adapter.EntryRepository,
	goalsRepo adapter.GoalsRepository,
	clock adapter.Clock,
) *GetDailySummaryUseCase {
	return &GetDailySummaryUseCase{
		entryRepo: entryRepo,
		goalsRepo: goalsRepo,
		clock:     clock,
	}
}

// Execute builds the daily view for the requested day.
func (uc *GetDailySummaryUseCase) Execute(ctx context.Context, input GetDailySummaryInput) (*GetDailySummaryOutput, error) {
	day, err := resolveDay(input.Date, uc.clock)
	if err != nil {
		return nil, err
	}

	entries, err := uc.entryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	goals, err := uc.goalsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get goals: %w", err)
	}

	totals := aggregate.DailyTotals(entries, day)

	return &GetDailySummaryOutput{
		Date:   day,
		Totals: totals,
		Goals:  goals,
		Progress: MacroProgressSet{
			Calories: aggregate.ProgressFor(totals.Calories, goals.Calories),
			Protein:  aggregate.ProgressFor(totals.Protein, goals.Protein),
			Carbs:    aggregate.ProgressFor(totals.Carbs, goals.Carbs),
			Fats:     aggregate.ProgressFor(totals.Fats, goals.Fats),
		},
		Split:  aggregate.SplitCalories(totals),
		Recent: aggregate.RecentEntries(entries, day),
	}, nil
}
