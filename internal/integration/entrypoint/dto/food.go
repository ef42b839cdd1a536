package dto

import (
	"github.com/macro-tracker/backend/internal/application/usecase/food"
	"github.com/macro-tracker/backend/internal/domain/entity"
)

// CreateFoodRequest represents the request body for adding a food.
// Name is validated by the use case so that blank names map to their own code.
type CreateFoodRequest struct {
	Name    string   `json:"name"`
	Protein *float64 `json:"protein" binding:"required"`
	Carbs   *float64 `json:"carbs" binding:"required"`
	Fats    *float64 `json:"fats" binding:"required"`
}

// FoodResponse represents a single food in API responses.
type FoodResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
	Calories float64 `json:"calories"`
}

// FoodListResponse represents the response for searching foods.
type FoodListResponse struct {
	Foods []FoodResponse `json:"foods"`
}

// ImportRowErrorResponse describes a CSV row that was not imported.
type ImportRowErrorResponse struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

// ImportFoodsResponse represents the result of a CSV import.
type ImportFoodsResponse struct {
	ImportedCount int                      `json:"imported_count"`
	FailedCount   int                      `json:"failed_count"`
	Imported      []FoodResponse           `json:"imported"`
	Failed        []ImportRowErrorResponse `json:"failed"`
}

// ToFoodResponse converts a domain Food entity to a FoodResponse DTO.
func ToFoodResponse(f *entity.Food) FoodResponse {
	return FoodResponse{
		ID:       f.ID,
		Name:     f.Name,
		Protein:  f.Protein,
		Carbs:    f.Carbs,
		Fats:     f.Fats,
		Calories: f.Calories,
	}
}

// ToFoodListResponse converts a list of foods to a FoodListResponse DTO.
func ToFoodListResponse(foods []*entity.Food) FoodListResponse {
	items := make([]FoodResponse, len(foods))
	for i, f := range foods {
		items[i] = ToFoodResponse(f)
	}
	return FoodListResponse{Foods: items}
}

// ToImportFoodsResponse converts an import output to its response DTO.
func ToImportFoodsResponse(output *food.ImportFoodsOutput) ImportFoodsResponse {
	imported := make([]FoodResponse, len(output.Imported))
	for i, f := range output.Imported {
		imported[i] = ToFoodResponse(f)
	}

	failed := make([]ImportRowErrorResponse, len(output.Failed))
	for i, row := range output.Failed {
		failed[i] = ImportRowErrorResponse{
			Line:    row.Line,
			Message: row.Message,
		}
	}

	return ImportFoodsResponse{
		ImportedCount: len(imported),
		FailedCount:   len(failed),
		Imported:      imported,
		Failed:        failed,
	}
}
