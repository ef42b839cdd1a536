package dto

import (
	"github.com/macro-tracker/backend/internal/application/usecase/dashboard"
	"github.com/macro-tracker/backend/internal/domain/aggregate"
	"github.com/macro-tracker/backend/internal/domain/entity"
)

// MacroTotalsResponse represents summed macros.
type MacroTotalsResponse struct {
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
	Calories float64 `json:"calories"`
}

// ProgressResponse represents progress of one value against its goal.
type ProgressResponse struct {
	Current float64 `json:"current"`
	Goal    float64 `json:"goal"`
	Percent float64 `json:"percent"`
	Status  string  `json:"status"`
}

// ProgressSetResponse groups the progress rows of the daily view.
type ProgressSetResponse struct {
	Calories ProgressResponse `json:"calories"`
	Protein  ProgressResponse `json:"protein"`
	Carbs    ProgressResponse `json:"carbs"`
	Fats     ProgressResponse `json:"fats"`
}

// MacroShareResponse represents one slice of the calorie split.
type MacroShareResponse struct {
	Grams    float64 `json:"grams"`
	Calories float64 `json:"calories"`
	Percent  int     `json:"percent"`
}

// CalorieSplitResponse represents the calorie distribution across macros.
type CalorieSplitResponse struct {
	Protein MacroShareResponse `json:"protein"`
	Carbs   MacroShareResponse `json:"carbs"`
	Fats    MacroShareResponse `json:"fats"`
}

// DailySummaryResponse represents the response for the daily dashboard.
type DailySummaryResponse struct {
	Date     string               `json:"date"`
	Totals   MacroTotalsResponse  `json:"totals"`
	Goals    GoalsResponse        `json:"goals"`
	Progress ProgressSetResponse  `json:"progress"`
	Split    CalorieSplitResponse `json:"calorie_split"`
	Recent   []EntryResponse      `json:"recent_entries"`
}

// DailyTotalResponse represents one day of the trend chart.
type DailyTotalResponse struct {
	Date     string  `json:"date"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
	Calories float64 `json:"calories"`
}

// TrendsResponse represents the response for the trend chart.
type TrendsResponse struct {
	Days   int                  `json:"days"`
	Trends []DailyTotalResponse `json:"trends"`
}

// ToMacroTotalsResponse converts summed macros to their DTO.
func ToMacroTotalsResponse(t entity.MacroTotals) MacroTotalsResponse {
	return MacroTotalsResponse{
		Protein:  t.Protein,
		Carbs:    t.Carbs,
		Fats:     t.Fats,
		Calories: t.Calories,
	}
}

func toProgressResponse(p aggregate.MacroProgress) ProgressResponse {
	return ProgressResponse{
		Current: p.Current,
		Goal:    p.Goal,
		Percent: p.Percent,
		Status:  string(p.Status),
	}
}

func toMacroShareResponse(s aggregate.MacroShare) MacroShareResponse {
	return MacroShareResponse{
		Grams:    s.Grams,
		Calories: s.Calories,
		Percent:  s.Percent,
	}
}

// ToDailySummaryResponse converts a GetDailySummaryOutput to its response DTO.
func ToDailySummaryResponse(output *dashboard.GetDailySummaryOutput) DailySummaryResponse {
	return DailySummaryResponse{
		Date:   output.Date,
		Totals: ToMacroTotalsResponse(output.Totals),
		Goals:  ToGoalsResponse(output.Goals),
		Progress: ProgressSetResponse{
			Calories: toProgressResponse(output.Progress.Calories),
			Protein:  toProgressResponse(output.Progress.Protein),
			Carbs:    toProgressResponse(output.Progress.Carbs),
			Fats:     toProgressResponse(output.Progress.Fats),
		},
		Split: CalorieSplitResponse{
			Protein: toMacroShareResponse(output.Split.Protein),
			Carbs:   toMacroShareResponse(output.Split.Carbs),
			Fats:    toMacroShareResponse(output.Split.Fats),
		},
		Recent: ToEntryResponses(output.Recent),
	}
}

// ToTrendsResponse converts a GetTrendsOutput to its response DTO.
func ToTrendsResponse(output *dashboard.GetTrendsOutput) TrendsResponse {
	trends := make([]DailyTotalResponse, len(output.Trends))
	for i, row := range output.Trends {
		trends[i] = DailyTotalResponse{
			Date:     row.Date,
			Protein:  row.Protein,
			Carbs:    row.Carbs,
			Fats:     row.Fats,
			Calories: row.Calories,
		}
	}
	return TrendsResponse{
		Days:   output.Days,
		Trends: trends,
	}
}
