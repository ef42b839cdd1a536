package food

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macro-tracker/backend/internal/application/adapter"
	"github.com/macro-tracker/backend/internal/domain/entity"
	domainerror "github.com/macro-tracker/backend/internal/domain/error"
	"github.com/macro-tracker/backend/internal/integration/blobstore"
	"github.com/macro-tracker/backend/internal/integration/persistence"
)

func newFoodRepo(t *testing.T) adapter.FoodRepository {
	t.Helper()
	store, err := persistence.Open(context.Background(), blobstore.NewMemoryStore(), entity.DefaultGoals())
	require.NoError(t, err)
	return store.Foods()
}

// failingFoodRepo rejects every write.
type failingFoodRepo struct {
	adapter.FoodRepository
}

func (failingFoodRepo) Create(context.Context, *entity.Food) error {
	return errors.New("write failed")
}

func TestAddFood(t *testing.T) {
	ctx := context.Background()
	repo := newFoodRepo(t)
	uc := NewAddFoodUseCase(repo)

	out, err := uc.Execute(ctx, AddFoodInput{Name: "  Egg ", Protein: 6, Carbs: 0.6, Fats: 5})
	require.NoError(t, err)
	assert.Equal(t, "Egg", out.Food.Name)
	assert.Equal(t, 71.4, out.Food.Calories)
	assert.NotEmpty(t, out.Food.ID)

	foods, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, foods, 1)
	assert.Equal(t, out.Food.ID, foods[0].ID)
}

func TestAddFood_ZeroMacrosAllowed(t *testing.T) {
	uc := NewAddFoodUseCase(newFoodRepo(t))

	out, err := uc.Execute(context.Background(), AddFoodInput{Name: "Water"})
	require.NoError(t, err)
	assert.Equal(t, 0.0, out.Food.Calories)
}

func TestAddFood_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input AddFoodInput
		code  domainerror.FoodErrorCode
	}{
		{
			name:  "empty name",
			input: AddFoodInput{Name: "", Protein: 1},
			code:  domainerror.ErrCodeFoodNameRequired,
		},
		{
			name:  "whitespace name",
			input: AddFoodInput{Name: "   ", Protein: 1},
			code:  domainerror.ErrCodeFoodNameRequired,
		},
		{
			name:  "negative protein",
			input: AddFoodInput{Name: "X", Protein: -1},
			code:  domainerror.ErrCodeNegativeMacro,
		},
		{
			name:  "negative fats",
			input: AddFoodInput{Name: "X", Fats: -0.5},
			code:  domainerror.ErrCodeNegativeMacro,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFoodRepo(t)
			uc := NewAddFoodUseCase(repo)

			_, err := uc.Execute(context.Background(), tt.input)
			require.Error(t, err)
			assert.True(t, domainerror.IsValidation(err))

			var foodErr *domainerror.FoodError
			require.True(t, errors.As(err, &foodErr))
			assert.Equal(t, tt.code, foodErr.Code)

			foods, _ := repo.List(context.Background())
			assert.Empty(t, foods)
		})
	}
}

func TestAddFood_PersistenceFailure(t *testing.T) {
	uc := NewAddFoodUseCase(failingFoodRepo{newFoodRepo(t)})

	_, err := uc.Execute(context.Background(), AddFoodInput{Name: "Rice", Carbs: 28})
	require.Error(t, err)

	var foodErr *domainerror.FoodError
	require.True(t, errors.As(err, &foodErr))
	assert.Equal(t, domainerror.ErrCodeFoodPersistence, foodErr.Code)
}

func TestSearchFoods(t *testing.T) {
	ctx := context.Background()
	repo := newFoodRepo(t)
	add := NewAddFoodUseCase(repo)
	for _, name := range []string{"Chicken Breast", "Oats", "Chickpeas"} {
		_, err := add.Execute(ctx, AddFoodInput{Name: name, Protein: 1})
		require.NoError(t, err)
	}

	uc := NewSearchFoodsUseCase(repo)

	tests := []struct {
		term     string
		expected []string
	}{
		{term: "chick", expected: []string{"Chicken Breast", "Chickpeas"}},
		{term: "OATS", expected: []string{"Oats"}},
		{term: "", expected: []string{"Chicken Breast", "Oats", "Chickpeas"}},
		{term: "   ", expected: []string{"Chicken Breast", "Oats", "Chickpeas"}},
		{term: "tofu", expected: []string{}},
	}

	for _, tt := range tests {
		t.Run("term "+tt.term, func(t *testing.T) {
			out, err := uc.Execute(ctx, SearchFoodsInput{Term: tt.term})
			require.NoError(t, err)

			names := make([]string, 0, len(out.Foods))
			for _, f := range out.Foods {
				names = append(names, f.Name)
			}
			assert.Equal(t, tt.expected, names)
		})
	}
}

func TestImportFoods(t *testing.T) {
	ctx := context.Background()
	repo := newFoodRepo(t)
	uc := NewImportFoodsUseCase(NewAddFoodUseCase(repo))

	csvData := strings.Join([]string{
		"Fats,Name,Protein,Carbs",
		"5,Egg,6,0.6",
		"0.3,Chicken Breast,31,",
		"1,,2,3",
		"x,Bad,1,1",
		"-1,Negative,1,1",
		"6.9,Oats,16.9,66.3",
	}, "\n")

	out, err := uc.Execute(ctx, ImportFoodsInput{Source: "test", Reader: strings.NewReader(csvData)})
	require.NoError(t, err)

	require.Len(t, out.Imported, 3)
	assert.Equal(t, "Egg", out.Imported[0].Name)
	assert.Equal(t, 71.4, out.Imported[0].Calories)
	assert.Equal(t, 0.0, out.Imported[1].Carbs)
	assert.Equal(t, "Oats", out.Imported[2].Name)

	require.Len(t, out.Failed, 3)
	assert.Equal(t, 4, out.Failed[0].Line)
	assert.Equal(t, 5, out.Failed[1].Line)
	assert.Contains(t, out.Failed[1].Message, "invalid fats value")
	assert.Equal(t, 6, out.Failed[2].Line)

	foods, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, foods, 3)
}

func TestImportFoods_InvalidHeader(t *testing.T) {
	uc := NewImportFoodsUseCase(NewAddFoodUseCase(newFoodRepo(t)))

	tests := []struct {
		name string
		data string
	}{
		{name: "empty file", data: ""},
		{name: "missing columns", data: "name,protein\nEgg,6"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), ImportFoodsInput{Reader: strings.NewReader(tt.data)})
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerror.ErrInvalidImportFile))
			assert.True(t, domainerror.IsValidation(err))
		})
	}
}

func TestImportFoods_SkipExisting(t *testing.T) {
	ctx := context.Background()
	repo := newFoodRepo(t)
	add := NewAddFoodUseCase(repo)
	uc := NewImportFoodsUseCase(add)

	_, err := add.Execute(ctx, AddFoodInput{Name: "Egg", Protein: 6, Carbs: 0.6, Fats: 5})
	require.NoError(t, err)

	csvData := strings.Join([]string{
		"name,protein,carbs,fats",
		" EGG ,6,0.6,5",
		"Oats,16.9,66.3,6.9",
		"oats,16.9,66.3,6.9",
	}, "\n")

	out, err := uc.Execute(ctx, ImportFoodsInput{Reader: strings.NewReader(csvData), SkipExisting: true})
	require.NoError(t, err)

	require.Len(t, out.Imported, 1)
	assert.Equal(t, "Oats", out.Imported[0].Name)
	require.Len(t, out.Skipped, 2)
	assert.Equal(t, 2, out.Skipped[0].Line)
	assert.Equal(t, 4, out.Skipped[1].Line)
	assert.Empty(t, out.Failed)

	foods, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, foods, 2)
}

func TestImportFoods_WithoutSkipExistingAddsDuplicates(t *testing.T) {
	ctx := context.Background()
	repo := newFoodRepo(t)
	uc := NewImportFoodsUseCase(NewAddFoodUseCase(repo))

	for i := 0; i < 2; i++ {
		_, err := uc.Execute(ctx, ImportFoodsInput{Reader: strings.NewReader("name,protein,carbs,fats\nEgg,6,0.6,5")})
		require.NoError(t, err)
	}

	foods, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, foods, 2)
}
