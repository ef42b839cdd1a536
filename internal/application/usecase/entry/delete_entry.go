package entry

import (
	"context"
	"log/slog"

	"github.com/macro-tracker/backend/internal/application/adapter"
	domainerror "github.com/macro-tracker/backend/internal/domain/error"
	"github.com/macro-tracker/backend/internal/infra/metrics"
)

// DeleteEntryInput represents the input for entry deletion.
type DeleteEntryInput struct {
	EntryID string
}

// DeleteEntryOutput represents the output of entry deletion.
type DeleteEntryOutput struct {
	Deleted bool
}

// DeleteEntryUseCase handles entry deletion logic.
type DeleteEntryUseCase struct {
	entryRepo adapter.EntryRepository
}

// NewDeleteEntryUseCase creates a new DeleteEntryUseCase instance.
func NewDeleteEntryUseCase(entryRepo adapter.EntryRepository) *DeleteEntryUseCase {
	return &DeleteEntryUseCase{
		entryRepo: entryRepo,
	}
}

// Execute removes the entry if it exists. Deleting an unknown entry succeeds
// with Deleted set to false.
func (uc *DeleteEntryUseCase) Execute(ctx context.Context, input DeleteEntryInput) (*DeleteEntryOutput, error) {
	deleted, err := uc.entryRepo.Delete(ctx, input.EntryID)
	if err != nil {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeEntryPersistence,
			"failed to delete entry",
			err,
		)
	}

	if deleted {
		metrics.RecordEntryDeleted()
		slog.Info("Entry deleted", "entry_id", input.EntryID)
	}

	return &DeleteEntryOutput{
		Deleted: deleted,
	}, nil
}
