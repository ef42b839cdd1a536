package entity

import (
	"time"

	"github.com/google/uuid"
)

// Entry represents one logged consumption of a food.
// Macro fields are copied from the food at creation and never recomputed.
type Entry struct {
	ID        string
	FoodID    string // weak reference, the food may no longer exist
	FoodName  string
	Servings  float64
	Protein   float64
	Carbs     float64
	Fats      float64
	Calories  float64
	Timestamp time.Time
	Date      string
}

// NewEntry creates a new Entry for servings of food logged at now.
func NewEntry(food *Food, servings float64, now time.Time, loc *time.Location) *Entry {
	return &Entry{
		ID:        uuid.NewString(),
		FoodID:    food.ID,
		FoodName:  food.Name,
		Servings:  servings,
		Protein:   Scale(food.Protein, servings),
		Carbs:     Scale(food.Carbs, servings),
		Fats:      Scale(food.Fats, servings),
		Calories:  Scale(food.Calories, servings),
		Timestamp: now,
		Date:      DayOf(now, loc),
	}
}

// Totals returns the entry's macro totals.
func (e *Entry) Totals() MacroTotals {
	return MacroTotals{
		Protein:  e.Protein,
		Carbs:    e.Carbs,
		Fats:     e.Fats,
		Calories: e.Calories,
	}
}
