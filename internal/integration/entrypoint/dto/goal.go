package dto

import "github.com/macro-tracker/backend/internal/domain/entity"

// SetGoalsRequest represents the request body for replacing the goals.
// Every value is required since goals are replaced wholesale.
type SetGoalsRequest struct {
	Calories *float64 `json:"calories" binding:"required"`
	Protein  *float64 `json:"protein" binding:"required"`
	Carbs    *float64 `json:"carbs" binding:"required"`
	Fats     *float64 `json:"fats" binding:"required"`
}

// GoalsResponse represents the daily goals in API responses.
type GoalsResponse struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

// ToGoalsResponse converts domain Goals to a GoalsResponse DTO.
func ToGoalsResponse(g entity.Goals) GoalsResponse {
	return GoalsResponse{
		Calories: g.Calories,
		Protein:  g.Protein,
		Carbs:    g.Carbs,
		Fats:     g.Fats,
	}
}
