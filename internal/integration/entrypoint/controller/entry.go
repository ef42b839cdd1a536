package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/macro-tracker/backend/internal/application/usecase/entry"
	domainerror "github.com/macro-tracker/backend/internal/domain/error"
	"github.com/macro-tracker/backend/internal/integration/entrypoint/dto"
)

// EntryController handles ledger endpoints.
type EntryController struct {
	addUseCase    *entry.AddEntryUseCase
	deleteUseCase *entry.DeleteEntryUseCase
	listUseCase   *entry.ListEntriesUseCase
}

// NewEntryController creates a new entry controller instance.
func NewEntryController(
	addUseCase *entry.AddEntryUseCase,
	deleteUseCase *entry.DeleteEntryUseCase,
	listUseCase *entry.ListEntriesUseCase,
) *EntryController {
	return &EntryController{
		addUseCase:    addUseCase,
		deleteUseCase: deleteUseCase,
		listUseCase:   listUseCase,
	}
}

// List handles GET /entries requests. The optional date parameter selects the
// day, today by default.
func (c *EntryController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context(), entry.ListEntriesInput{
		Date: ctx.Query("date"),
	})
	if err != nil {
		c.handleEntryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.EntryListResponse{
		Date:    output.Date,
		Entries: dto.ToEntryResponses(output.Entries),
	})
}

// Create handles POST /entries requests.
func (c *EntryController) Create(ctx *gin.Context) {
	var req dto.CreateEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingEntryFields),
		})
		return
	}

	output, err := c.addUseCase.Execute(ctx.Request.Context(), entry.AddEntryInput{
		FoodID:   req.FoodID,
		Servings: *req.Servings,
	})
	if err != nil {
		c.handleEntryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToEntryResponse(output.Entry))
}

// Delete handles DELETE /entries/:id requests. Unknown ids also answer 204.
func (c *EntryController) Delete(ctx *gin.Context) {
	_, err := c.deleteUseCase.Execute(ctx.Request.Context(), entry.DeleteEntryInput{
		EntryID: ctx.Param("id"),
	})
	if err != nil {
		c.handleEntryError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleEntryError handles entry errors and returns appropriate HTTP responses.
func (c *EntryController) handleEntryError(ctx *gin.Context, err error) {
	var entryErr *domainerror.EntryError
	if errors.As(err, &entryErr) {
		ctx.JSON(c.getStatusCodeForEntryError(entryErr.Code), dto.ErrorResponse{
			Error: entryErr.Message,
			Code:  string(entryErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForEntryError maps entry error codes to HTTP status codes.
func (c *EntryController) getStatusCodeForEntryError(code domainerror.EntryErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidServings,
		domainerror.ErrCodeMissingEntryFields,
		domainerror.ErrCodeInvalidEntryDate:
		return http.StatusBadRequest
	case domainerror.ErrCodeEntryFoodNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
