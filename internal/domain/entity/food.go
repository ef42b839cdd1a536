package entity

import (
	"strings"

	"github.com/google/uuid"
)

// Food represents a catalog item with macro grams per serving.
type Food struct {
	ID       string
	Name     string
	Protein  float64
	Carbs    float64
	Fats     float64
	Calories float64 // fixed at creation
}

// NewFood creates a new Food entity with a fresh id and derived calories.
func NewFood(name string, protein, carbs, fats float64) *Food {
	return &Food{
		ID:       uuid.NewString(),
		Name:     strings.TrimSpace(name),
		Protein:  protein,
		Carbs:    carbs,
		Fats:     fats,
		Calories: CaloriesFor(protein, carbs, fats),
	}
}

// PerServing returns the food's macro totals for a single serving.
func (f *Food) PerServing() MacroTotals {
	return MacroTotals{
		Protein:  f.Protein,
		Carbs:    f.Carbs,
		Fats:     f.Fats,
		Calories: f.Calories,
	}
}

// MatchesName reports whether term is a case-insensitive substring of the name.
func (f *Food) MatchesName(term string) bool {
	return strings.Contains(strings.ToLower(f.Name), strings.ToLower(term))
}

// SameName reports whether name refers to this food, ignoring case and
// surrounding whitespace.
func (f *Food) SameName(name string) bool {
	return strings.EqualFold(strings.TrimSpace(f.Name), strings.TrimSpace(name))
}
