package models

// Task is a to-do item attached to a single interval of a session.
type Task struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	IsCompleted bool   `json:"isCompleted"`
}

// Interval is one timed phase of a session (e.g. "Work" or "Break").
type Interval struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	DurationSeconds int     `json:"durationSeconds"`
	SoundID         SoundID `json:"soundId"`
	Tasks           []Task  `json:"tasks,omitempty"`
}

// Session is a reusable template of intervals repeated for a number of cycles.
// A running session is a deep copy carrying its own task list.
type Session struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Intervals []Interval `json:"intervals"`
	Cycles    int        `json:"cycles"`
	// CreatedAt is Unix milliseconds.
	CreatedAt int64      `json:"createdAt"`
}

// StandaloneTask is a to-do item with its own optional countdown.
type StandaloneTask struct {
	ID               string  `json:"id"`
	Text             string  `json:"text"`
	IsCompleted      bool    `json:"isCompleted"`
	TotalSeconds     int     `json:"totalSeconds"`
	RemainingSeconds int     `json:"remainingSeconds"`
	IsRunning        bool    `json:"isRunning"`
	SoundID          SoundID `json:"soundId"`
	Priority         int     `json:"priority,omitempty"`
}

// TimerPreset is a named duration for the single preset timer.
type TimerPreset struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	DurationSeconds int    `json:"durationSeconds"`
}

// CycleDuration is the sum of all interval durations, in seconds.
func (s Session) CycleDuration() int {
	total := 0
	for _, iv := range s.Intervals {
		total += iv.DurationSeconds
	}
	return total
}

// TotalDuration is the cycle duration multiplied by the cycle count.
func (s Session) TotalDuration() int {
	return s.CycleDuration() * s.Cycles
}

// TaskCount returns the number of tasks across all intervals.
func (s Session) TaskCount() int {
	n := 0
	for _, iv := range s.Intervals {
		n += len(iv.Tasks)
	}
	return n
}

// Clone returns a deep copy; the copy shares no slices with s.
func (s Session) Clone() Session {
	out := s
	out.Intervals = make([]Interval, len(s.Intervals))
	for i, iv := range s.Intervals {
		out.Intervals[i] = iv.Clone()
	}
	return out
}

// Clone returns a deep copy of the interval and its tasks.
func (iv Interval) Clone() Interval {
	out := iv
	if iv.Tasks != nil {
		out.Tasks = append([]Task(nil), iv.Tasks...)
	}
	return out
}

// IntervalByID returns the index of the interval with the given id, or -1.
func (s Session) IntervalByID(id string) int {
	for i, iv := range s.Intervals {
		if iv.ID == id {
			return i
		}
	}
	return -1
}
