// Package timing holds the wall-clock engines shared by every timer: the
// countdown that derives remaining seconds from a target timestamp, the
// stopwatch, and the clock formatting helpers.
package timing

import "time"

// Clock provides the current wall-clock time.
// Tests substitute a manual clock to drive countdowns deterministically.
type Clock interface {
	Now() time.Time
}

// SystemClock is the default Clock implementation using the standard library.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}
