package entry

import (
	"context"
	"fmt"

	"github.com/macro-tracker/backend/internal/application/adapter"
	"github.com/macro-tracker/backend/internal/domain/aggregate"
	"github.com/macro-tracker/backend/internal/domain/entity"
	domainerror "github.com/macro-tracker/backend/internal/domain/error"
)

// ListEntriesInput represents the input for listing a day's entries.
type ListEntriesInput struct {
	Date string // YYYY-MM-DD, defaults to today
}

// ListEntriesOutput represents the output of listing entries.
type ListEntriesOutput struct {
	Date    string
	Entries []*entity.Entry
}

// ListEntriesUseCase handles the recent meals listing.
type ListEntriesUseCase struct {
	entryRepo adapter.EntryRepository
	clock     adapter.Clock
}

// NewListEntriesUseCase creates a new ListEntriesUseCase instance.
func NewListEntriesUseCase(entryRepo adapter.EntryRepository, clock adapter.Clock) *ListEntriesUseCase {
	return &ListEntriesUseCase{
		entryRepo: entryRepo,
		clock:     clock,
	}
}

// Execute returns the day's entries, newest first.
func (uc *ListEntriesUseCase) Execute(ctx context.Context, input ListEntriesInput) (*ListEntriesOutput, error) {
	day := entity.DayOf(uc.clock.Now(), uc.clock.Location())
	if input.Date != "" {
		parsed, err := entity.ParseDay(input.Date)
		if err != nil {
			return nil, domainerror.NewEntryError(
				domainerror.ErrCodeInvalidEntryDate,
				"date must be formatted as YYYY-MM-DD",
				domainerror.ErrInvalidDateFormat,
			)
		}
		day = parsed
	}

	entries, err := uc.entryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	return &ListEntriesOutput{
		Date:    day,
		Entries: aggregate.RecentEntries(entries, day),
	}, nil
}
