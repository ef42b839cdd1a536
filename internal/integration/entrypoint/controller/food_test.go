package controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macro-tracker/backend/internal/application/adapter"
	"github.com/macro-tracker/backend/internal/application/usecase/food"
	"github.com/macro-tracker/backend/internal/domain/entity"
	domainerror "github.com/macro-tracker/backend/internal/domain/error"
	"github.com/macro-tracker/backend/internal/integration/blobstore"
	"github.com/macro-tracker/backend/internal/integration/persistence"
)

func newImportEngine(t *testing.T, maxImportSize int64) (*gin.Engine, adapter.FoodRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := persistence.Open(context.Background(), blobstore.NewMemoryStore(), entity.DefaultGoals())
	require.NoError(t, err)
	repo := store.Foods()

	add := food.NewAddFoodUseCase(repo)
	c := NewFoodController(add, food.NewSearchFoodsUseCase(repo), food.NewImportFoodsUseCase(add), maxImportSize)

	engine := gin.New()
	engine.POST("/foods/import", c.Import)
	return engine, repo
}

func postCSV(engine *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/foods/import", strings.NewReader(body))
	req.Header.Set("Content-Type", "text/csv")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestFoodController_Import(t *testing.T) {
	engine, repo := newImportEngine(t, 1024)

	rec := postCSV(engine, "name,protein,carbs,fats\nEgg,6,0.6,5\nOats,13,68,7")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"imported_count":2`)

	foods, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, foods, 2)
}

func TestFoodController_ImportTooLarge(t *testing.T) {
	engine, repo := newImportEngine(t, 64)

	var body strings.Builder
	body.WriteString("name,protein,carbs,fats\n")
	for body.Len() <= 64 {
		body.WriteString("Egg,6,0.6,5\n")
	}

	rec := postCSV(engine, body.String())

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Contains(t, rec.Body.String(), string(domainerror.ErrCodeImportTooLarge))

	foods, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, foods, "an oversized upload imports nothing")
}

func TestNewFoodController_DefaultImportLimit(t *testing.T) {
	c := NewFoodController(nil, nil, nil, 0)
	assert.Equal(t, int64(defaultMaxImportSize), c.maxImportSize)
}
