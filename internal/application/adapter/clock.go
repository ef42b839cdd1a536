package adapter

import "time"

// Clock provides the current instant and the tracker's calendar timezone.
type Clock interface {
	Now() time.Time
	Location() *time.Location
}
