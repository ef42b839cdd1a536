package dashboard

import (
	"context"
	"fmt"

	"github.com/macro-tracker/backend/internal/application/adapter"
	"github.com/macro-tracker/backend/internal/domain/aggregate"
)

// GetTrendsOutput represents the per-day totals of the trend window.
type GetTrendsOutput struct {
	Days   int
	Trends []aggregate.DailyTotal
}

// GetTrendsUseCase handles the weekly trend view.
type GetTrendsUseCase struct {
	entryRepo adapter.EntryRepository
	days      int
}

// NewGetTrendsUseCase creates a new GetTrendsUseCase instance. A non-positive
// days falls back to aggregate.TrendDays.
func NewGetTrendsUseCase(entryRepo adapter.EntryRepository, days int) *GetTrendsUseCase {
	if days <= 0 {
		days = aggregate.TrendDays
	}
	return &GetTrendsUseCase{
		entryRepo: entryRepo,
		days:      days,
	}
}

// Execute groups the ledger by date and keeps the most recent days.
func (uc *GetTrendsUseCase) Execute(ctx context.Context) (*GetTrendsOutput, error) {
	entries, err := uc.entryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	return &GetTrendsOutput{
		Days:   uc.days,
		Trends: aggregate.GroupByDate(entries, uc.days),
	}, nil
}
