package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/macro-tracker/backend/internal/application/usecase/dashboard"
	domainerror "github.com/macro-tracker/backend/internal/domain/error"
	"github.com/macro-tracker/backend/internal/integration/entrypoint/dto"
)

// DashboardController handles the derived views.
type DashboardController struct {
	dailyUseCase  *dashboard.GetDailySummaryUseCase
	trendsUseCase *dashboard.GetTrendsUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	dailyUseCase *dashboard.GetDailySummaryUseCase,
	trendsUseCase *dashboard.GetTrendsUseCase,
) *DashboardController {
	return &DashboardController{
		dailyUseCase:  dailyUseCase,
		trendsUseCase: trendsUseCase,
	}
}

// GetDaily handles GET /dashboard/daily requests.
// Query parameters:
//   - date: YYYY-MM-DD (optional, defaults to today)
func (c *DashboardController) GetDaily(ctx *gin.Context) {
	output, err := c.dailyUseCase.Execute(ctx.Request.Context(), dashboard.GetDailySummaryInput{
		Date: ctx.Query("date"),
	})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDailySummaryResponse(output))
}

// GetTrends handles GET /dashboard/trends requests.
func (c *DashboardController) GetTrends(ctx *gin.Context) {
	output, err := c.trendsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTrendsResponse(output))
}

// handleDashboardError handles dashboard errors and returns appropriate HTTP responses.
func (c *DashboardController) handleDashboardError(ctx *gin.Context, err error) {
	var dashErr *domainerror.DashboardError
	if errors.As(err, &dashErr) {
		status := http.StatusInternalServerError
		if dashErr.Code == domainerror.ErrCodeInvalidDateFormat {
			status = http.StatusBadRequest
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: dashErr.Message,
			Code:  string(dashErr.Code),
		})
		return
	}

	slog.Error("Dashboard request failed", "error", err)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
		Code:  string(domainerror.ErrCodeDashboardInternalError),
	})
}
