// Package session runs interval sessions: an ordered list of timed
// intervals repeated for a number of cycles, each interval carrying its own
// tasks.
package session

import (
	"errors"
	"time"

	"github.com/akyairhashvil/tasktimer/internal/models"
	"github.com/akyairhashvil/tasktimer/internal/sound"
	"github.com/akyairhashvil/tasktimer/internal/timing"
)

var (
	ErrEmptyName     = errors.New("session name is required")
	ErrNoIntervals   = errors.New("session has no intervals")
	ErrInvalidCycles = errors.New("cycles must be at least 1")
	ErrTaskNotFound  = errors.New("task not found")
)

// State is the lifecycle of a running session.
type State int

const (
	StateIdle State = iota
	StateRunning
	StatePaused
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateCompleted:
		return "completed"
	default:
		return "idle"
	}
}

// Options are chosen per launch.
type Options struct {
	SyncTasks         bool
	RepeatTasks       bool
	TaskBasedProgress bool
}

func DefaultOptions() Options {
	return Options{SyncTasks: true, RepeatTasks: true}
}

// Policy carries the user settings the runner consults. Callers push
// changes with UpdatePolicy; nothing is re-read during a tick.
type Policy struct {
	AutoCheck         bool
	SkipSound         bool
	SkipBackThreshold time.Duration
}

// PolicyFromSettings builds a Policy from stored settings.
func PolicyFromSettings(s models.Settings, skipBack time.Duration) Policy {
	return Policy{AutoCheck: s.AutoCheck, SkipSound: s.SkipSound, SkipBackThreshold: skipBack}
}

// EventType identifies what a tick changed.
type EventType int

const (
	EventIntervalEnded EventType = iota
	EventIntervalStarted
	EventCycleStarted
	EventCompleted
)

// Event reports a transition caused by Tick.
type Event struct {
	Type          EventType
	Cycle         int
	IntervalIndex int
	IntervalName  string
}

// Runner is one running instance of a session. It is not safe for
// concurrent use; drive it from a single event loop.
type Runner struct {
	session models.Session
	opts    Options
	policy  Policy
	clock   timing.Clock
	player  sound.Player

	state      State
	cycle      int
	index      int
	countdown  timing.Countdown
	generation uint64
}

// New starts running s at cycle 1, interval 0. s should be a launched copy
// (see Launch/Prepare); the runner mutates its task completion flags.
func New(s models.Session, opts Options, policy Policy, clock timing.Clock, player sound.Player) (*Runner, error) {
	if len(s.Intervals) == 0 {
		return nil, ErrNoIntervals
	}
	if s.Cycles < 1 {
		return nil, ErrInvalidCycles
	}
	if clock == nil {
		clock = timing.SystemClock
	}
	if player == nil {
		player = sound.Nop
	}
	r := &Runner{
		session: s.Clone(),
		opts:    opts,
		policy:  policy,
		clock:   clock,
		player:  player,
		state:   StateRunning,
		cycle:   1,
	}
	r.countdown.Arm(clock.Now(), r.current().DurationSeconds)
	r.generation++
	return r, nil
}

func (r *Runner) current() models.Interval {
	return r.session.Intervals[r.index]
}

func (r *Runner) atEnd() bool {
	return r.index == len(r.session.Intervals)-1 && r.cycle == r.session.Cycles
}

// Generation changes whenever the countdown target is replaced or dropped.
// A tick scheduled under an older generation is stale and must be ignored.
func (r *Runner) Generation() uint64 { return r.generation }

func (r *Runner) State() State { return r.state }

func (r *Runner) Options() Options { return r.opts }

func (r *Runner) Policy() Policy { return r.policy }

// Session returns a copy of the running session, including task state.
func (r *Runner) Session() models.Session { return r.session.Clone() }

// UpdatePolicy applies changed settings from the next operation onward.
func (r *Runner) UpdatePolicy(p Policy) { r.policy = p }

// Tick samples the countdown. When the current interval reaches zero it
// plays the interval's sound, auto-checks its tasks if enabled, and moves
// to the next interval, the next cycle, or completion.
func (r *Runner) Tick() []Event {
	if r.state != StateRunning {
		return nil
	}
	now := r.clock.Now()
	if _, expired := r.countdown.Sample(now); !expired {
		return nil
	}

	cur := r.current()
	r.player.Play(cur.SoundID.OrDefault())
	if r.policy.AutoCheck {
		r.setIntervalTasks(r.index, true)
	}
	events := []Event{{Type: EventIntervalEnded, Cycle: r.cycle, IntervalIndex: r.index, IntervalName: cur.Name}}
	return append(events, r.advance(now, true))
}

// advance moves to the following interval. fromExpiry enables the
// repeat-tasks reset on cycle rollover.
func (r *Runner) advance(now time.Time, fromExpiry bool) Event {
	switch {
	case r.index < len(r.session.Intervals)-1:
		r.index++
		r.restartCurrent(now)
		return Event{Type: EventIntervalStarted, Cycle: r.cycle, IntervalIndex: r.index, IntervalName: r.current().Name}
	case r.cycle < r.session.Cycles:
		r.cycle++
		r.index = 0
		if fromExpiry && r.opts.RepeatTasks {
			for i := range r.session.Intervals {
				r.setIntervalTasks(i, false)
			}
		}
		r.restartCurrent(now)
		return Event{Type: EventCycleStarted, Cycle: r.cycle, IntervalIndex: 0, IntervalName: r.current().Name}
	default:
		r.state = StateCompleted
		r.countdown.Disarm()
		r.countdown.Set(now, 0)
		r.generation++
		return Event{Type: EventCompleted, Cycle: r.cycle, IntervalIndex: r.index, IntervalName: r.current().Name}
	}
}

// restartCurrent sets the countdown to the full current interval, armed
// only while running.
func (r *Runner) restartCurrent(now time.Time) {
	seconds := r.current().DurationSeconds
	if r.state == StateRunning {
		r.countdown.Arm(now, seconds)
	} else {
		r.countdown.Disarm()
		r.countdown.Set(now, seconds)
	}
	r.generation++
}

func (r *Runner) setIntervalTasks(index int, done bool) {
	tasks := r.session.Intervals[index].Tasks
	for i := range tasks {
		tasks[i].IsCompleted = done
	}
}

func (r *Runner) live() bool {
	return r.state == StateRunning || r.state == StatePaused
}

// Pause freezes the remaining time. An expiry already due is processed
// first so it is never lost.
func (r *Runner) Pause() {
	if r.state != StateRunning {
		return
	}
	r.Tick()
	if r.state != StateRunning {
		return
	}
	remaining := r.countdown.Peek(r.clock.Now())
	r.countdown.Disarm()
	r.countdown.Set(r.clock.Now(), remaining)
	r.state = StatePaused
	r.generation++
}

// Resume continues from the frozen remaining time.
func (r *Runner) Resume() {
	if r.state != StatePaused {
		return
	}
	r.state = StateRunning
	r.countdown.Resume(r.clock.Now())
	r.generation++
}

func (r *Runner) TogglePause() {
	switch r.state {
	case StateRunning:
		r.Pause()
	case StatePaused:
		r.Resume()
	}
}

// Reset restores the current interval's full duration.
func (r *Runner) Reset() {
	if !r.live() {
		return
	}
	r.restartCurrent(r.clock.Now())
}

// SkipForward moves to the next interval without marking tasks. It does
// nothing at the final interval of the final cycle.
func (r *Runner) SkipForward() {
	if !r.live() || r.atEnd() {
		return
	}
	r.advance(r.clock.Now(), false)
	if r.policy.SkipSound {
		r.player.Play(r.current().SoundID.OrDefault())
	}
}

// SkipBackward restarts the current interval once more than the
// skip-back threshold has elapsed in it; otherwise it moves to the previous
// interval, wrapping into the previous cycle's last interval.
func (r *Runner) SkipBackward() {
	if !r.live() {
		return
	}
	now := r.clock.Now()
	cur := r.current()
	elapsed := time.Duration(cur.DurationSeconds-r.countdown.Peek(now)) * time.Second

	switch {
	case elapsed > r.policy.SkipBackThreshold:
		// restart the current interval
	case r.index > 0:
		r.index--
	case r.cycle > 1:
		r.cycle--
		r.index = len(r.session.Intervals) - 1
	default:
		return
	}
	r.restartCurrent(now)
	if r.policy.SkipSound {
		r.player.Play(r.current().SoundID.OrDefault())
	}
}

// Quit discards the running instance.
func (r *Runner) Quit() {
	if r.state == StateIdle {
		return
	}
	r.state = StateIdle
	r.countdown.Disarm()
	r.generation++
}

// ToggleTask flips a task's completion flag.
func (r *Runner) ToggleTask(intervalID, taskID string) error {
	idx := r.session.IntervalByID(intervalID)
	if idx < 0 {
		return ErrTaskNotFound
	}
	tasks := r.session.Intervals[idx].Tasks
	for i := range tasks {
		if tasks[i].ID == taskID {
			tasks[i].IsCompleted = !tasks[i].IsCompleted
			return nil
		}
	}
	return ErrTaskNotFound
}
