// Package model defines the stored representations used by the persistence layer.
package model

import "github.com/macro-tracker/backend/internal/domain/entity"

// FoodRecord is one element of the foods blob.
type FoodRecord struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Protein  float64  `json:"protein"`
	Carbs    float64  `json:"carbs"`
	Fats     float64  `json:"fats"`
	Calories *float64 `json:"calories,omitempty"`
}

// ToEntity converts a FoodRecord to a domain Food entity.
// Records written without calories get them derived from their macros.
func (r *FoodRecord) ToEntity() *entity.Food {
	calories := entity.CaloriesFor(r.Protein, r.Carbs, r.Fats)
	if r.Calories != nil {
		calories = *r.Calories
	}

	return &entity.Food{
		ID:       r.ID,
		Name:     r.Name,
		Protein:  r.Protein,
		Carbs:    r.Carbs,
		Fats:     r.Fats,
		Calories: calories,
	}
}

// FoodFromEntity creates a FoodRecord from a domain Food entity.
func FoodFromEntity(food *entity.Food) FoodRecord {
	calories := food.Calories
	return FoodRecord{
		ID:       food.ID,
		Name:     food.Name,
		Protein:  food.Protein,
		Carbs:    food.Carbs,
		Fats:     food.Fats,
		Calories: &calories,
	}
}
