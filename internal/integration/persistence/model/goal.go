package model

import "github.com/macro-tracker/backend/internal/domain/entity"

// GoalsRecord is the goals blob.
type GoalsRecord struct {
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
	Calories float64 `json:"calories"`
}

// ToEntity converts a GoalsRecord to domain Goals.
func (r *GoalsRecord) ToEntity() entity.Goals {
	return entity.Goals{
		Calories: r.Calories,
		Protein:  r.Protein,
		Carbs:    r.Carbs,
		Fats:     r.Fats,
	}
}

// GoalsFromEntity creates a GoalsRecord from domain Goals.
func GoalsFromEntity(goals entity.Goals) GoalsRecord {
	return GoalsRecord{
		Protein:  goals.Protein,
		Carbs:    goals.Carbs,
		Fats:     goals.Fats,
		Calories: goals.Calories,
	}
}
