package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/macro-tracker/backend/internal/application/usecase/goal"
	domainerror "github.com/macro-tracker/backend/internal/domain/error"
	"github.com/macro-tracker/backend/internal/integration/entrypoint/dto"
)

// GoalController handles daily goals endpoints.
type GoalController struct {
	getUseCase *goal.GetGoalsUseCase
	setUseCase *goal.SetGoalsUseCase
}

// NewGoalController creates a new goal controller instance.
func NewGoalController(getUseCase *goal.GetGoalsUseCase, setUseCase *goal.SetGoalsUseCase) *GoalController {
	return &GoalController{
		getUseCase: getUseCase,
		setUseCase: setUseCase,
	}
}

// Get handles GET /goals requests.
func (c *GoalController) Get(ctx *gin.Context) {
	output, err := c.getUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleGoalsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalsResponse(output.Goals))
}

// Set handles PUT /goals requests.
func (c *GoalController) Set(ctx *gin.Context) {
	var req dto.SetGoalsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingGoalsFields),
		})
		return
	}

	output, err := c.setUseCase.Execute(ctx.Request.Context(), goal.SetGoalsInput{
		Calories: *req.Calories,
		Protein:  *req.Protein,
		Carbs:    *req.Carbs,
		Fats:     *req.Fats,
	})
	if err != nil {
		c.handleGoalsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalsResponse(output.Goals))
}

// handleGoalsError handles goals errors and returns appropriate HTTP responses.
func (c *GoalController) handleGoalsError(ctx *gin.Context, err error) {
	var goalsErr *domainerror.GoalsError
	if errors.As(err, &goalsErr) {
		status := http.StatusInternalServerError
		switch goalsErr.Code {
		case domainerror.ErrCodeNegativeGoal, domainerror.ErrCodeMissingGoalsFields:
			status = http.StatusBadRequest
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: goalsErr.Message,
			Code:  string(goalsErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
