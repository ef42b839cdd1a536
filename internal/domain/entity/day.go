package entity

import "time"

// DayLayout is the calendar-day format used for entry dates.
// Lexicographic order of formatted days matches chronological order.
const DayLayout = "2006-01-02"

// DayOf returns the calendar day of t in loc.
func DayOf(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(DayLayout)
}

// ParseDay validates a YYYY-MM-DD string and returns it normalized.
func ParseDay(s string) (string, error) {
	d, err := time.Parse(DayLayout, s)
	if err != nil {
		return "", err
	}
	return d.Format(DayLayout), nil
}
