// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/macro-tracker/backend/internal/application/usecase/food"
	domainerror "github.com/macro-tracker/backend/internal/domain/error"
	"github.com/macro-tracker/backend/internal/integration/entrypoint/dto"
)

const defaultMaxImportSize = 1 << 20

// FoodController handles catalog endpoints.
type FoodController struct {
	addUseCase    *food.AddFoodUseCase
	searchUseCase *food.SearchFoodsUseCase
	importUseCase *food.ImportFoodsUseCase
	maxImportSize int64
}

// NewFoodController creates a new food controller instance.
func NewFoodController(
	addUseCase *food.AddFoodUseCase,
	searchUseCase *food.SearchFoodsUseCase,
	importUseCase *food.ImportFoodsUseCase,
	maxImportSize int64,
) *FoodController {
	if maxImportSize <= 0 {
		maxImportSize = defaultMaxImportSize
	}
	return &FoodController{
		addUseCase:    addUseCase,
		searchUseCase: searchUseCase,
		importUseCase: importUseCase,
		maxImportSize: maxImportSize,
	}
}

// List handles GET /foods requests. The optional q parameter filters by name.
func (c *FoodController) List(ctx *gin.Context) {
	output, err := c.searchUseCase.Execute(ctx.Request.Context(), food.SearchFoodsInput{
		Term: ctx.Query("q"),
	})
	if err != nil {
		c.handleFoodError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFoodListResponse(output.Foods))
}

// Create handles POST /foods requests.
func (c *FoodController) Create(ctx *gin.Context) {
	var req dto.CreateFoodRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingFoodFields),
		})
		return
	}

	output, err := c.addUseCase.Execute(ctx.Request.Context(), food.AddFoodInput{
		Name:    req.Name,
		Protein: *req.Protein,
		Carbs:   *req.Carbs,
		Fats:    *req.Fats,
	})
	if err != nil {
		c.handleFoodError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToFoodResponse(output.Food))
}

// Import handles POST /foods/import requests carrying a CSV body.
// The body is read in full before importing so an oversized upload adds nothing.
func (c *FoodController) Import(ctx *gin.Context) {
	body, err := io.ReadAll(http.MaxBytesReader(ctx.Writer, ctx.Request.Body, c.maxImportSize))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.handleFoodError(ctx, domainerror.NewFoodError(
				domainerror.ErrCodeImportTooLarge,
				"Import file exceeds the size limit",
				domainerror.ErrImportTooLarge,
			))
			return
		}
		c.handleFoodError(ctx, domainerror.NewFoodError(
			domainerror.ErrCodeInvalidImportFile,
			"Could not read import file",
			err,
		))
		return
	}

	output, err := c.importUseCase.Execute(ctx.Request.Context(), food.ImportFoodsInput{
		Source: "api",
		Reader: bytes.NewReader(body),
	})
	if err != nil {
		c.handleFoodError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToImportFoodsResponse(output))
}

// handleFoodError handles food errors and returns appropriate HTTP responses.
func (c *FoodController) handleFoodError(ctx *gin.Context, err error) {
	var foodErr *domainerror.FoodError
	if errors.As(err, &foodErr) {
		ctx.JSON(c.getStatusCodeForFoodError(foodErr.Code), dto.ErrorResponse{
			Error: foodErr.Message,
			Code:  string(foodErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForFoodError maps food error codes to HTTP status codes.
func (c *FoodController) getStatusCodeForFoodError(code domainerror.FoodErrorCode) int {
	switch code {
	case domainerror.ErrCodeFoodNameRequired,
		domainerror.ErrCodeNegativeMacro,
		domainerror.ErrCodeInvalidImportFile,
		domainerror.ErrCodeMissingFoodFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeImportTooLarge:
		return http.StatusRequestEntityTooLarge
	case domainerror.ErrCodeFoodNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeImportRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
