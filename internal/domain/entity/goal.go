package entity

import "math"

// Goals represents the daily macro targets.
type Goals struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fats     float64
}

// DefaultGoals returns the targets used before the user saves any.
func DefaultGoals() Goals {
	return Goals{
		Calories: 2000,
		Protein:  150,
		Carbs:    200,
		Fats:     70,
	}
}

// Valid reports whether every target is a finite number of zero or more.
func (g Goals) Valid() bool {
	for _, v := range []float64{g.Calories, g.Protein, g.Carbs, g.Fats} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return false
		}
	}
	return true
}
