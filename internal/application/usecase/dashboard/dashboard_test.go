package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macro-tracker/backend/internal/domain/aggregate"
	"github.com/macro-tracker/backend/internal/domain/entity"
	domainerror "github.com/macro-tracker/backend/internal/domain/error"
	"github.com/macro-tracker/backend/internal/integration/blobstore"
	"github.com/macro-tracker/backend/internal/integration/persistence"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

func (c fixedClock) Location() *time.Location { return time.UTC }

func seedStore(t *testing.T, days ...string) *persistence.TrackerStore {
	t.Helper()
	ctx := context.Background()

	store, err := persistence.Open(ctx, blobstore.NewMemoryStore(), entity.DefaultGoals())
	require.NoError(t, err)

	egg := entity.NewFood("Egg", 6, 0.6, 5)
	require.NoError(t, store.Foods().Create(ctx, egg))

	for i, day := range days {
		ts, err := time.Parse(entity.DayLayout, day)
		require.NoError(t, err)
		ts = ts.Add(time.Duration(8+i) * time.Hour)
		require.NoError(t, store.Entries().Create(ctx, entity.NewEntry(egg, 2, ts, time.UTC)))
	}
	return store
}

func TestGetDailySummary(t *testing.T) {
	ctx := context.Background()
	store := seedStore(t, "2024-03-10", "2024-03-10", "2024-03-09")
	clock := fixedClock{now: time.Date(2024, 3, 10, 20, 0, 0, 0, time.UTC)}
	uc := NewGetDailySummaryUseCase(store.Entries(), store.Goals(), clock)

	out, err := uc.Execute(ctx, GetDailySummaryInput{})
	require.NoError(t, err)

	assert.Equal(t, "2024-03-10", out.Date)
	assert.Equal(t, entity.MacroTotals{Protein: 24, Carbs: 2.4, Fats: 20, Calories: 285.6}, out.Totals)
	assert.Equal(t, entity.DefaultGoals(), out.Goals)

	assert.Equal(t, 16.0, out.Progress.Protein.Percent)
	assert.Equal(t, aggregate.ProgressUnder, out.Progress.Protein.Status)
	assert.Equal(t, 285.6, out.Progress.Calories.Current)

	assert.Equal(t, 34, out.Split.Protein.Percent)
	assert.Equal(t, 3, out.Split.Carbs.Percent)
	assert.Equal(t, 63, out.Split.Fats.Percent)

	require.Len(t, out.Recent, 2)
	assert.True(t, out.Recent[0].Timestamp.After(out.Recent[1].Timestamp))
}

func TestGetDailySummary_EmptyDay(t *testing.T) {
	store := seedStore(t, "2024-03-10")
	uc := NewGetDailySummaryUseCase(store.Entries(), store.Goals(), fixedClock{now: time.Now()})

	out, err := uc.Execute(context.Background(), GetDailySummaryInput{Date: "2020-01-01"})
	require.NoError(t, err)
	assert.True(t, out.Totals.IsZero())
	assert.Empty(t, out.Recent)
	assert.Equal(t, 0, out.Split.Protein.Percent)
}

func TestGetDailySummary_ZeroGoal(t *testing.T) {
	ctx := context.Background()
	store := seedStore(t, "2024-03-10")
	require.NoError(t, store.Goals().Save(ctx, entity.Goals{Calories: 0, Protein: 10, Carbs: 100, Fats: 5}))
	uc := NewGetDailySummaryUseCase(store.Entries(), store.Goals(), fixedClock{now: time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)})

	out, err := uc.Execute(ctx, GetDailySummaryInput{})
	require.NoError(t, err)
	assert.Equal(t, 0.0, out.Progress.Calories.Percent)
	assert.Equal(t, aggregate.ProgressUnset, out.Progress.Calories.Status)
	assert.Equal(t, 100.0, out.Progress.Protein.Percent)
	assert.Equal(t, aggregate.ProgressMet, out.Progress.Protein.Status)
	assert.Equal(t, aggregate.ProgressMet, out.Progress.Fats.Status)
}

func TestGetDailySummary_InvalidDate(t *testing.T) {
	store := seedStore(t)
	uc := NewGetDailySummaryUseCase(store.Entries(), store.Goals(), fixedClock{now: time.Now()})

	_, err := uc.Execute(context.Background(), GetDailySummaryInput{Date: "2024-13-01"})
	require.Error(t, err)
	assert.True(t, domainerror.IsValidation(err))

	var dashErr *domainerror.DashboardError
	require.True(t, errors.As(err, &dashErr))
	assert.Equal(t, domainerror.ErrCodeInvalidDateFormat, dashErr.Code)
}

func TestGetTrends(t *testing.T) {
	store := seedStore(t,
		"2024-03-01", "2024-03-02", "2024-03-03", "2024-03-04",
		"2024-03-05", "2024-03-06", "2024-03-07", "2024-03-08", "2024-03-08",
	)

	out, err := NewGetTrendsUseCase(store.Entries(), 0).Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, aggregate.TrendDays, out.Days)
	require.Len(t, out.Trends, 7)
	assert.Equal(t, "2024-03-02", out.Trends[0].Date)
	assert.Equal(t, "2024-03-08", out.Trends[6].Date)
	assert.Equal(t, 285.6, out.Trends[6].Calories)
	assert.Equal(t, 142.8, out.Trends[0].Calories)
}

func TestGetTrends_CustomWindow(t *testing.T) {
	store := seedStore(t, "2024-03-01", "2024-03-05", "2024-03-09")

	out, err := NewGetTrendsUseCase(store.Entries(), 2).Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, out.Trends, 2)
	assert.Equal(t, "2024-03-05", out.Trends[0].Date)
}
