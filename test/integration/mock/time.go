package mock

import (
	"sync"
	"time"
)

// Time is a controllable clock. Once a current time is set it keeps ticking
// from that instant so consecutive entries still get increasing timestamps.
type Time struct {
	mu               sync.RWMutex
	currentStartTime time.Time
	updatedAt        time.Time
	location         *time.Location
}

func NewTime() *Time {
	return &Time{
		currentStartTime: time.Now(),
		updatedAt:        time.Now(),
		location:         time.UTC,
	}
}

func (t *Time) SetCurrentTime(currentTime time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.currentStartTime = currentTime
	t.updatedAt = time.Now()
}

func (t *Time) SetLocation(loc *time.Location) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.location = loc
}

func (t *Time) Now() time.Time {
	t.mu.RLock()
	defer t.mu.RUnlock()
	elapsed := time.Since(t.updatedAt)
	return t.currentStartTime.Add(elapsed).In(t.location)
}

func (t *Time) Location() *time.Location {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.location
}
