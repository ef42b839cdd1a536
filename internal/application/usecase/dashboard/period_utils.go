package dashboard

import (
	"github.com/macro-tracker/backend/internal/application/adapter"
	"github.com/macro-tracker/backend/internal/domain/entity"
	domainerror "github.com/macro-tracker/backend/internal/domain/error"
)

// resolveDay returns date when set, otherwise the clock's current calendar day.
func resolveDay(date string, clock adapter.Clock) (string, error) {
	if date == "" {
		return entity.DayOf(clock.Now(), clock.Location()), nil
	}

	day, err := entity.ParseDay(date)
	if err != nil {
		return "", domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidDateFormat,
			"date must be formatted as YYYY-MM-DD",
			domainerror.ErrInvalidDateFormat,
		)
	}
	return day, nil
}
