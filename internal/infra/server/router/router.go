// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/macro-tracker/backend/internal/infra/metrics"
	"github.com/macro-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/macro-tracker/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	foodController      *controller.FoodController
	entryController     *controller.EntryController
	goalController      *controller.GoalController
	dashboardController *controller.DashboardController
	importRateLimiter   *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	foodController *controller.FoodController,
	entryController *controller.EntryController,
	goalController *controller.GoalController,
	dashboardController *controller.DashboardController,
	importRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:    healthController,
		foodController:      foodController,
		entryController:     entryController,
		goalController:      goalController,
		dashboardController: dashboardController,
		importRateLimiter:   importRateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	if environment == "test" {
		r.engine = gin.New()
		r.engine.Use(gin.Recovery())
	} else {
		// Default middleware (logger and recovery)
		r.engine = gin.Default()
	}
	r.engine.Use(metrics.Middleware())

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check and metrics endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
	r.engine.GET("/metrics", gin.WrapH(metrics.Handler()))
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		if r.foodController != nil {
			foods := v1.Group("/foods")
			{
				foods.GET("", r.foodController.List)
				foods.POST("", r.foodController.Create)

				importHandlers := []gin.HandlerFunc{r.foodController.Import}
				if r.importRateLimiter != nil {
					importHandlers = append([]gin.HandlerFunc{r.importRateLimiter.Middleware()}, importHandlers...)
				}
				foods.POST("/import", importHandlers...)
			}
		}

		if r.entryController != nil {
			entries := v1.Group("/entries")
			{
				entries.GET("", r.entryController.List)
				entries.POST("", r.entryController.Create)
				entries.DELETE("/:id", r.entryController.Delete)
			}
		}

		if r.goalController != nil {
			goals := v1.Group("/goals")
			{
				goals.GET("", r.goalController.Get)
				goals.PUT("", r.goalController.Set)
			}
		}

		if r.dashboardController != nil {
			dashboard := v1.Group("/dashboard")
			{
				dashboard.GET("/daily", r.dashboardController.GetDaily)
				dashboard.GET("/trends", r.dashboardController.GetTrends)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
