// Package adapters provides implementations of application adapter interfaces.
package adapters

import (
	"time"

	"github.com/macro-tracker/backend/internal/application/adapter"
)

// systemClock implements adapter.Clock with the wall clock.
type systemClock struct {
	loc *time.Location
}

// NewSystemClock creates a clock reporting calendar days in loc.
func NewSystemClock(loc *time.Location) adapter.Clock {
	if loc == nil {
		loc = time.Local
	}
	return &systemClock{loc: loc}
}

// Now returns the current instant.
func (c *systemClock) Now() time.Time {
	return time.Now()
}

// Location returns the tracker timezone.
func (c *systemClock) Location() *time.Location {
	return c.loc
}
