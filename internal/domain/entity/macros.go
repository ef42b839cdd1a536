// Package entity defines the core business entities for the domain layer.
package entity

import "github.com/shopspring/decimal"

// Energy density per gram of each macronutrient, in kcal.
var (
	kcalPerGramProtein = decimal.NewFromInt(4)
	kcalPerGramCarbs   = decimal.NewFromInt(4)
	kcalPerGramFats    = decimal.NewFromInt(9)
)

// MacroTotals holds grams of each macro and the resulting calories.
type MacroTotals struct {
	Protein  float64
	Carbs    float64
	Fats     float64
	Calories float64
}

// IsZero reports whether every field is zero.
func (t MacroTotals) IsZero() bool {
	return t.Protein == 0 && t.Carbs == 0 && t.Fats == 0 && t.Calories == 0
}

// CaloriesFor returns 4*protein + 4*carbs + 9*fats computed in decimal arithmetic.
func CaloriesFor(protein, carbs, fats float64) float64 {
	return caloriesDecimal(protein, carbs, fats).InexactFloat64()
}

func caloriesDecimal(protein, carbs, fats float64) decimal.Decimal {
	return decimal.NewFromFloat(protein).Mul(kcalPerGramProtein).
		Add(decimal.NewFromFloat(carbs).Mul(kcalPerGramCarbs)).
		Add(decimal.NewFromFloat(fats).Mul(kcalPerGramFats))
}

// Scale multiplies a per-serving amount by a serving count.
func Scale(perServing, servings float64) float64 {
	return decimal.NewFromFloat(perServing).Mul(decimal.NewFromFloat(servings)).InexactFloat64()
}

// MacroSum accumulates MacroTotals without float drift.
// The zero value is an empty sum.
type MacroSum struct {
	protein  decimal.Decimal
	carbs    decimal.Decimal
	fats     decimal.Decimal
	calories decimal.Decimal
}

// Add adds t to the running sum.
func (s *MacroSum) Add(t MacroTotals) {
	s.protein = s.protein.Add(decimal.NewFromFloat(t.Protein))
	s.carbs = s.carbs.Add(decimal.NewFromFloat(t.Carbs))
	s.fats = s.fats.Add(decimal.NewFromFloat(t.Fats))
	s.calories = s.calories.Add(decimal.NewFromFloat(t.Calories))
}

// Totals returns the accumulated values.
func (s MacroSum) Totals() MacroTotals {
	return MacroTotals{
		Protein:  s.protein.InexactFloat64(),
		Carbs:    s.carbs.InexactFloat64(),
		Fats:     s.fats.InexactFloat64(),
		Calories: s.calories.InexactFloat64(),
	}
}
