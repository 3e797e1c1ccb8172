package timing

import "time"

// Stopwatch measures elapsed time across pauses and records laps.
type Stopwatch struct {
	start       time.Time
	accumulated time.Duration
	running     bool
	laps        []time.Duration
}

// Start resumes counting; the elapsed time already accumulated is kept.
func (s *Stopwatch) Start(now time.Time) {
	if s.running {
		return
	}
	s.start = now.Add(-s.accumulated)
	s.running = true
}

// Pause stops counting and keeps the elapsed time.
func (s *Stopwatch) Pause(now time.Time) {
	if !s.running {
		return
	}
	s.accumulated = now.Sub(s.start)
	s.running = false
}

// Toggle starts a paused stopwatch or pauses a running one.
func (s *Stopwatch) Toggle(now time.Time) {
	if s.running {
		s.Pause(now)
		return
	}
	s.Start(now)
}

// Reset clears elapsed time and laps and stops the stopwatch.
func (s *Stopwatch) Reset() {
	*s = Stopwatch{}
}

func (s *Stopwatch) Elapsed(now time.Time) time.Duration {
	if s.running {
		return now.Sub(s.start)
	}
	return s.accumulated
}

func (s *Stopwatch) Running() bool { return s.running }

// CanLap is false only for a fresh stopwatch that has never run.
func (s *Stopwatch) CanLap(now time.Time) bool {
	return s.running || s.Elapsed(now) > 0
}

// Lap records the current elapsed time; it reports false when laps are
// not available.
func (s *Stopwatch) Lap(now time.Time) bool {
	if !s.CanLap(now) {
		return false
	}
	s.laps = append([]time.Duration{s.Elapsed(now)}, s.laps...)
	return true
}

// Laps returns recorded laps, newest first.
func (s *Stopwatch) Laps() []time.Duration {
	return append([]time.Duration(nil), s.laps...)
}
