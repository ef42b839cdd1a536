// Package aggregate derives totals, trends and progress from the ledger.
// Every function is pure and never mutates its input.
package aggregate

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/macro-tracker/backend/internal/domain/entity"
)

// TrendDays is the default number of most recent days kept by GroupByDate.
const TrendDays = 7

// Progress thresholds, in percent of the goal.
const (
	metThreshold  = 100
	nearThreshold = 80
)

// DailyTotal is the sum of one calendar day's entries.
type DailyTotal struct {
	Date string
	entity.MacroTotals
}

// ProgressStatus classifies how close a total is to its goal.
type ProgressStatus string

const (
	ProgressUnset ProgressStatus = "unset"
	ProgressUnder ProgressStatus = "under"
	ProgressNear  ProgressStatus = "near"
	ProgressMet   ProgressStatus = "met"
)

// MacroProgress is one row of the daily progress view.
type MacroProgress struct {
	Current float64
	Goal    float64
	Percent float64
	Status  ProgressStatus
}

// MacroShare is one macro's contribution to the calorie split.
type MacroShare struct {
	Grams    float64
	Calories float64
	Percent  int
}

// CalorieSplit is the distribution of energy across the three macros.
type CalorieSplit struct {
	Protein MacroShare
	Carbs   MacroShare
	Fats    MacroShare
}

// DailyTotals sums the entries dated day. It returns zeros when none match.
func DailyTotals(entries []*entity.Entry, day string) entity.MacroTotals {
	var sum entity.MacroSum
	for _, e := range entries {
		if e.Date == day {
			sum.Add(e.Totals())
		}
	}
	return sum.Totals()
}

// GroupByDate sums entries per date and returns one row per distinct date in
// ascending order, keeping only the most recent days rows. A non-positive days
// uses TrendDays.
func GroupByDate(entries []*entity.Entry, days int) []DailyTotal {
	if days <= 0 {
		days = TrendDays
	}

	sums := make(map[string]*entity.MacroSum)
	for _, e := range entries {
		sum, ok := sums[e.Date]
		if !ok {
			sum = &entity.MacroSum{}
			sums[e.Date] = sum
		}
		sum.Add(e.Totals())
	}

	dates := make([]string, 0, len(sums))
	for date := range sums {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	if len(dates) > days {
		dates = dates[len(dates)-days:]
	}

	rows := make([]DailyTotal, len(dates))
	for i, date := range dates {
		rows[i] = DailyTotal{
			Date:        date,
			MacroTotals: sums[date].Totals(),
		}
	}
	return rows
}

// ProgressPercent returns min(current/goal*100, 100). A goal of zero or less
// yields 0 instead of dividing by zero, and the result is never negative.
func ProgressPercent(current, goal float64) float64 {
	if goal <= 0 || current <= 0 {
		return 0
	}
	return math.Min(current/goal*100, 100)
}

// ClassifyProgress reports met at 100% of the goal, near from 80% and under below.
// Goals of zero or less are unset.
func ClassifyProgress(current, goal float64) ProgressStatus {
	if goal <= 0 {
		return ProgressUnset
	}
	ratio := current / goal * 100
	switch {
	case ratio >= metThreshold:
		return ProgressMet
	case ratio >= nearThreshold:
		return ProgressNear
	default:
		return ProgressUnder
	}
}

// ProgressFor builds the progress row for current against goal.
func ProgressFor(current, goal float64) MacroProgress {
	return MacroProgress{
		Current: current,
		Goal:    goal,
		Percent: ProgressPercent(current, goal),
		Status:  ClassifyProgress(current, goal),
	}
}

// SplitCalories distributes the energy of totals across protein (4 kcal/g),
// carbs (4 kcal/g) and fats (9 kcal/g). Percentages are rounded to whole numbers
// and are all zero when there is no energy.
func SplitCalories(totals entity.MacroTotals) CalorieSplit {
	protein := decimal.NewFromFloat(totals.Protein).Mul(decimal.NewFromInt(4))
	carbs := decimal.NewFromFloat(totals.Carbs).Mul(decimal.NewFromInt(4))
	fats := decimal.NewFromFloat(totals.Fats).Mul(decimal.NewFromInt(9))
	total := protein.Add(carbs).Add(fats)

	share := func(grams float64, kcal decimal.Decimal) MacroShare {
		s := MacroShare{Grams: grams, Calories: kcal.InexactFloat64()}
		if total.IsPositive() {
			s.Percent = int(kcal.Div(total).Mul(decimal.NewFromInt(100)).Round(0).IntPart())
		}
		return s
	}

	return CalorieSplit{
		Protein: share(totals.Protein, protein),
		Carbs:   share(totals.Carbs, carbs),
		Fats:    share(totals.Fats, fats),
	}
}

// RecentEntries returns the entries dated day, newest first. Entries logged at
// the same instant are ordered by ID.
func RecentEntries(entries []*entity.Entry, day string) []*entity.Entry {
	recent := make([]*entity.Entry, 0, len(entries))
	for _, e := range entries {
		if e.Date == day {
			recent = append(recent, e)
		}
	}

	sort.SliceStable(recent, func(i, j int) bool {
		if !recent[i].Timestamp.Equal(recent[j].Timestamp) {
			return recent[i].Timestamp.After(recent[j].Timestamp)
		}
		return recent[i].ID < recent[j].ID
	})
	return recent
}
