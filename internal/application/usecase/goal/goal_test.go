package goal

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macro-tracker/backend/internal/application/adapter"
	"github.com/macro-tracker/backend/internal/domain/entity"
	domainerror "github.com/macro-tracker/backend/internal/domain/error"
	"github.com/macro-tracker/backend/internal/integration/blobstore"
	"github.com/macro-tracker/backend/internal/integration/persistence"
)

func newGoalsRepo(t *testing.T) adapter.GoalsRepository {
	t.Helper()
	store, err := persistence.Open(context.Background(), blobstore.NewMemoryStore(), entity.DefaultGoals())
	require.NoError(t, err)
	return store.Goals()
}

type failingGoalsRepo struct {
	adapter.GoalsRepository
}

func (failingGoalsRepo) Save(context.Context, entity.Goals) error {
	return errors.New("write failed")
}

func TestGetGoals_Defaults(t *testing.T) {
	uc := NewGetGoalsUseCase(newGoalsRepo(t))

	out, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entity.Goals{Calories: 2000, Protein: 150, Carbs: 200, Fats: 70}, out.Goals)
}

func TestSetGoals(t *testing.T) {
	ctx := context.Background()
	repo := newGoalsRepo(t)

	out, err := NewSetGoalsUseCase(repo).Execute(ctx, SetGoalsInput{Calories: 2500, Protein: 180, Carbs: 0, Fats: 80})
	require.NoError(t, err)
	assert.Equal(t, 2500.0, out.Goals.Calories)

	got, err := NewGetGoalsUseCase(repo).Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.Goals{Calories: 2500, Protein: 180, Carbs: 0, Fats: 80}, got.Goals)
}

func TestSetGoals_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		input SetGoalsInput
	}{
		{name: "negative calories", input: SetGoalsInput{Calories: -1, Protein: 1, Carbs: 1, Fats: 1}},
		{name: "negative fats", input: SetGoalsInput{Calories: 1, Protein: 1, Carbs: 1, Fats: -5}},
		{name: "not a number", input: SetGoalsInput{Calories: math.NaN()}},
		{name: "infinite", input: SetGoalsInput{Protein: math.Inf(1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			repo := newGoalsRepo(t)

			_, err := NewSetGoalsUseCase(repo).Execute(ctx, tt.input)
			require.Error(t, err)
			assert.True(t, domainerror.IsValidation(err))

			var goalsErr *domainerror.GoalsError
			require.True(t, errors.As(err, &goalsErr))
			assert.Equal(t, domainerror.ErrCodeNegativeGoal, goalsErr.Code)

			goals, err := repo.Get(ctx)
			require.NoError(t, err)
			assert.Equal(t, entity.DefaultGoals(), goals)
		})
	}
}

func TestSetGoals_PersistenceFailure(t *testing.T) {
	uc := NewSetGoalsUseCase(failingGoalsRepo{newGoalsRepo(t)})

	_, err := uc.Execute(context.Background(), SetGoalsInput{Calories: 1800})
	require.Error(t, err)

	var goalsErr *domainerror.GoalsError
	require.True(t, errors.As(err, &goalsErr))
	assert.Equal(t, domainerror.ErrCodeGoalsPersistence, goalsErr.Code)
}
