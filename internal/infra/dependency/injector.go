// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/macro-tracker/backend/config"
	"github.com/macro-tracker/backend/internal/application/adapter"
	"github.com/macro-tracker/backend/internal/application/usecase/dashboard"
	"github.com/macro-tracker/backend/internal/application/usecase/entry"
	"github.com/macro-tracker/backend/internal/application/usecase/food"
	"github.com/macro-tracker/backend/internal/application/usecase/goal"
	"github.com/macro-tracker/backend/internal/domain/entity"
	"github.com/macro-tracker/backend/internal/infra/server/router"
	"github.com/macro-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/macro-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/macro-tracker/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config            *config.Config
	Storage           *Storage
	Store             *persistence.TrackerStore
	Router            *router.Router
	ImportFoods       *food.ImportFoodsUseCase
	ImportRateLimiter *middleware.RateLimiter
}

// NewInjector loads the tracker state from storage and wires every use case,
// controller and route.
func NewInjector(ctx context.Context, cfg *config.Config, storage *Storage, clock adapter.Clock) (*Injector, error) {
	store, err := persistence.Open(ctx, storage.Blobs, configuredGoals(&cfg.Tracker))
	if err != nil {
		return nil, fmt.Errorf("failed to load tracker state: %w", err)
	}

	foodRepo := store.Foods()
	entryRepo := store.Entries()
	goalsRepo := store.Goals()

	// Create food use cases
	addFoodUseCase := food.NewAddFoodUseCase(foodRepo)
	searchFoodsUseCase := food.NewSearchFoodsUseCase(foodRepo)
	importFoodsUseCase := food.NewImportFoodsUseCase(addFoodUseCase)

	// Create entry use cases
	addEntryUseCase := entry.NewAddEntryUseCase(foodRepo, entryRepo, clock)
	deleteEntryUseCase := entry.NewDeleteEntryUseCase(entryRepo)
	listEntriesUseCase := entry.NewListEntriesUseCase(entryRepo, clock)

	// Create goal use cases
	getGoalsUseCase := goal.NewGetGoalsUseCase(goalsRepo)
	setGoalsUseCase := goal.NewSetGoalsUseCase(goalsRepo)

	// Create dashboard use cases
	dailySummaryUseCase := dashboard.NewGetDailySummaryUseCase(entryRepo, goalsRepo, clock)
	trendsUseCase := dashboard.NewGetTrendsUseCase(entryRepo, cfg.Tracker.TrendDays)

	// Create controllers
	healthController := controller.NewHealthController(storage.Driver, storage.HealthCheck)
	foodController := controller.NewFoodController(addFoodUseCase, searchFoodsUseCase, importFoodsUseCase, cfg.Import.MaxBytes)
	entryController := controller.NewEntryController(addEntryUseCase, deleteEntryUseCase, listEntriesUseCase)
	goalController := controller.NewGoalController(getGoalsUseCase, setGoalsUseCase)
	dashboardController := controller.NewDashboardController(dailySummaryUseCase, trendsUseCase)

	importRateLimiter := middleware.NewRateLimiter(cfg.RateLimit.ImportMaxAttempts, cfg.RateLimit.ImportWindow)

	r := router.NewRouter(
		healthController,
		foodController,
		entryController,
		goalController,
		dashboardController,
		importRateLimiter,
	)

	return &Injector{
		Config:            cfg,
		Storage:           storage,
		Store:             store,
		Router:            r,
		ImportFoods:       importFoodsUseCase,
		ImportRateLimiter: importRateLimiter,
	}, nil
}

// configuredGoals returns the goal defaults from configuration, or the built-in
// defaults when any configured value is negative or not a finite number.
func configuredGoals(cfg *config.TrackerConfig) entity.Goals {
	goals := entity.Goals{
		Calories: cfg.DefaultCalories,
		Protein:  cfg.DefaultProtein,
		Carbs:    cfg.DefaultCarbs,
		Fats:     cfg.DefaultFats,
	}
	if !goals.Valid() {
		slog.Warn("Configured goal defaults are invalid, using built-in defaults",
			"calories", cfg.DefaultCalories,
			"protein", cfg.DefaultProtein,
			"carbs", cfg.DefaultCarbs,
			"fats", cfg.DefaultFats,
		)
		return entity.DefaultGoals()
	}
	return goals
}
