package model

import (
	"time"

	"github.com/macro-tracker/backend/internal/domain/entity"
)

// EntryRecord is one element of the entries blob. Timestamp is in epoch milliseconds.
type EntryRecord struct {
	ID        string  `json:"id"`
	FoodID    string  `json:"foodId"`
	FoodName  string  `json:"foodName"`
	Servings  float64 `json:"servings"`
	Protein   float64 `json:"protein"`
	Carbs     float64 `json:"carbs"`
	Fats      float64 `json:"fats"`
	Calories  float64 `json:"calories"`
	Timestamp int64   `json:"timestamp"`
	Date      string  `json:"date"`
}

// ToEntity converts an EntryRecord to a domain Entry entity.
func (r *EntryRecord) ToEntity() *entity.Entry {
	ts := time.UnixMilli(r.Timestamp)
	date := r.Date
	if date == "" {
		date = entity.DayOf(ts, time.UTC)
	}

	return &entity.Entry{
		ID:        r.ID,
		FoodID:    r.FoodID,
		FoodName:  r.FoodName,
		Servings:  r.Servings,
		Protein:   r.Protein,
		Carbs:     r.Carbs,
		Fats:      r.Fats,
		Calories:  r.Calories,
		Timestamp: ts,
		Date:      date,
	}
}

// EntryFromEntity creates an EntryRecord from a domain Entry entity.
func EntryFromEntity(entry *entity.Entry) EntryRecord {
	return EntryRecord{
		ID:        entry.ID,
		FoodID:    entry.FoodID,
		FoodName:  entry.FoodName,
		Servings:  entry.Servings,
		Protein:   entry.Protein,
		Carbs:     entry.Carbs,
		Fats:      entry.Fats,
		Calories:  entry.Calories,
		Timestamp: entry.Timestamp.UnixMilli(),
		Date:      entry.Date,
	}
}
