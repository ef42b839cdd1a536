package dto

import (
	"time"

	"github.com/macro-tracker/backend/internal/domain/entity"
)

// CreateEntryRequest represents the request body for logging servings of a food.
type CreateEntryRequest struct {
	FoodID   string   `json:"food_id" binding:"required"`
	Servings *float64 `json:"servings" binding:"required"`
}

// EntryResponse represents a single ledger entry in API responses.
type EntryResponse struct {
	ID        string    `json:"id"`
	FoodID    string    `json:"food_id"`
	FoodName  string    `json:"food_name"`
	Servings  float64   `json:"servings"`
	Protein   float64   `json:"protein"`
	Carbs     float64   `json:"carbs"`
	Fats      float64   `json:"fats"`
	Calories  float64   `json:"calories"`
	Timestamp time.Time `json:"timestamp"`
	Date      string    `json:"date"`
}

// EntryListResponse represents the response for listing a day's entries.
type EntryListResponse struct {
	Date    string          `json:"date"`
	Entries []EntryResponse `json:"entries"`
}

// ToEntryResponse converts a domain Entry entity to an EntryResponse DTO.
func ToEntryResponse(e *entity.Entry) EntryResponse {
	return EntryResponse{
		ID:        e.ID,
		FoodID:    e.FoodID,
		FoodName:  e.FoodName,
		Servings:  e.Servings,
		Protein:   e.Protein,
		Carbs:     e.Carbs,
		Fats:      e.Fats,
		Calories:  e.Calories,
		Timestamp: e.Timestamp,
		Date:      e.Date,
	}
}

// ToEntryResponses converts a list of entries to DTOs.
func ToEntryResponses(entries []*entity.Entry) []EntryResponse {
	items := make([]EntryResponse, len(entries))
	for i, e := range entries {
		items[i] = ToEntryResponse(e)
	}
	return items
}
