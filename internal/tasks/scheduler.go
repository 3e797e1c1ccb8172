// Package tasks schedules standalone to-do items, each with an optional
// countdown that keeps running in the background.
package tasks

import (
	"errors"
	"strings"
	"time"

	"github.com/akyairhashvil/tasktimer/internal/config"
	"github.com/akyairhashvil/tasktimer/internal/models"
	"github.com/akyairhashvil/tasktimer/internal/sound"
	"github.com/akyairhashvil/tasktimer/internal/timing"
	"github.com/akyairhashvil/tasktimer/internal/util"
)

var (
	ErrTaskNotFound  = errors.New("task not found")
	ErrTaskCompleted = errors.New("task is completed")
	ErrNoDuration    = errors.New("task has no duration")
	ErrEmptyText     = errors.New("task text is required")
)

// Policy carries the settings the scheduler consults on expiry.
type Policy struct {
	AutoCheck    bool
	DefaultSound models.SoundID
}

func PolicyFromSettings(s models.Settings) Policy {
	return Policy{AutoCheck: s.AutoCheck, DefaultSound: s.DefaultSound}
}

// EventType identifies what a poll changed.
type EventType int

const (
	EventTicked EventType = iota
	EventExpired
)

type Event struct {
	Type      EventType
	TaskID    string
	Text      string
	Remaining int
}

// Scheduler owns the task list and one countdown per running task. A
// countdown exists exactly while its task is running; every transition away
// from running deletes it.
type Scheduler struct {
	clock  timing.Clock
	player sound.Player
	policy Policy

	tasks  []models.StandaloneTask
	timers map[string]*timing.Countdown
}

func NewScheduler(clock timing.Clock, player sound.Player, policy Policy) *Scheduler {
	if clock == nil {
		clock = timing.SystemClock
	}
	if player == nil {
		player = sound.Nop
	}
	return &Scheduler{
		clock:  clock,
		player: player,
		policy: policy,
		timers: make(map[string]*timing.Countdown),
	}
}

// Restore replaces the task list with persisted tasks. Remaining time is
// clamped to [0, total]. Tasks that were running with time left are
// re-armed from their stored remaining seconds; running tasks with nothing
// left are stopped.
func (s *Scheduler) Restore(tasks []models.StandaloneTask) {
	s.tasks = append([]models.StandaloneTask(nil), tasks...)
	s.timers = make(map[string]*timing.Countdown)
	now := s.clock.Now()
	for i := range s.tasks {
		t := &s.tasks[i]
		if t.TotalSeconds < 0 {
			t.TotalSeconds = 0
		}
		t.RemainingSeconds = util.Clamp(t.RemainingSeconds, 0, t.TotalSeconds)
		if t.IsCompleted || t.RemainingSeconds <= 0 {
			t.IsRunning = false
		}
		if t.IsRunning {
			s.arm(now, t)
		}
	}
}

func (s *Scheduler) UpdatePolicy(p Policy) { s.policy = p }

// Tasks returns a copy of the list in display order.
func (s *Scheduler) Tasks() []models.StandaloneTask {
	return append([]models.StandaloneTask(nil), s.tasks...)
}

// Armed reports whether the task currently has a countdown.
func (s *Scheduler) Armed(id string) bool {
	_, ok := s.timers[id]
	return ok
}

// ArmedCount is the number of running countdowns.
func (s *Scheduler) ArmedCount() int { return len(s.timers) }

func (s *Scheduler) find(id string) (int, error) {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i, nil
		}
	}
	return -1, ErrTaskNotFound
}

func (s *Scheduler) arm(now time.Time, t *models.StandaloneTask) {
	c := timing.NewCountdown(t.RemainingSeconds)
	c.Resume(now)
	s.timers[t.ID] = &c
	t.IsRunning = true
}

func (s *Scheduler) disarm(t *models.StandaloneTask) {
	delete(s.timers, t.ID)
	t.IsRunning = false
}

// Add prepends a new task. An empty sound uses the default sound at expiry.
func (s *Scheduler) Add(text string, totalSeconds int, soundID models.SoundID) (models.StandaloneTask, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.StandaloneTask{}, ErrEmptyText
	}
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	t := models.StandaloneTask{
		ID:               util.NewID(),
		Text:             text,
		TotalSeconds:     totalSeconds,
		RemainingSeconds: totalSeconds,
		SoundID:          soundID,
	}
	s.tasks = append([]models.StandaloneTask{t}, s.tasks...)
	return t, nil
}

// ToggleRunning starts or pauses a task's countdown.
func (s *Scheduler) ToggleRunning(id string) error {
	i, err := s.find(id)
	if err != nil {
		return err
	}
	t := &s.tasks[i]
	if t.IsRunning {
		if c, ok := s.timers[id]; ok {
			t.RemainingSeconds = c.Peek(s.clock.Now())
		}
		s.disarm(t)
		return nil
	}
	if t.IsCompleted {
		return ErrTaskCompleted
	}
	if t.RemainingSeconds <= 0 {
		return ErrNoDuration
	}
	s.arm(s.clock.Now(), t)
	return nil
}

// ToggleStatus completes an open task or reopens a completed one. Completing
// stops its countdown; reopening restores the full duration, stopped.
func (s *Scheduler) ToggleStatus(id string) error {
	i, err := s.find(id)
	if err != nil {
		return err
	}
	t := &s.tasks[i]
	s.disarm(t)
	if t.IsCompleted {
		t.IsCompleted = false
		t.RemainingSeconds = t.TotalSeconds
		return nil
	}
	t.IsCompleted = true
	t.RemainingSeconds = 0
	return nil
}

// SetPriority sets 1..5 stars; choosing the current value clears it.
func (s *Scheduler) SetPriority(id string, stars int) error {
	i, err := s.find(id)
	if err != nil {
		return err
	}
	stars = util.Clamp(stars, 0, config.MaxPriority)
	if s.tasks[i].Priority == stars {
		stars = 0
	}
	s.tasks[i].Priority = stars
	return nil
}

// SetSound picks the cue played when the task's countdown ends.
func (s *Scheduler) SetSound(id string, soundID models.SoundID) error {
	i, err := s.find(id)
	if err != nil {
		return err
	}
	s.tasks[i].SoundID = soundID
	return nil
}

// Move shifts a task one place up (delta -1) or down (delta +1).
func (s *Scheduler) Move(id string, delta int) (bool, error) {
	i, err := s.find(id)
	if err != nil {
		return false, err
	}
	return util.SwapNeighbor(s.tasks, i, delta), nil
}

// Rename replaces a task's text.
func (s *Scheduler) Rename(id, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyText
	}
	i, err := s.find(id)
	if err != nil {
		return err
	}
	s.tasks[i].Text = text
	return nil
}

// Delete removes a task and its countdown.
func (s *Scheduler) Delete(id string) error {
	i, err := s.find(id)
	if err != nil {
		return err
	}
	delete(s.timers, id)
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	return nil
}

// Progress is completed/total, or 0 with no tasks.
func (s *Scheduler) Progress() float64 {
	if len(s.tasks) == 0 {
		return 0
	}
	done := 0
	for _, t := range s.tasks {
		if t.IsCompleted {
			done++
		}
	}
	return float64(done) / float64(len(s.tasks))
}

// Poll samples every running countdown. changed reports whether any task's
// displayed state moved, so callers know when to persist.
func (s *Scheduler) Poll() (events []Event, changed bool) {
	if len(s.timers) == 0 {
		return nil, false
	}
	now := s.clock.Now()
	for i := range s.tasks {
		t := &s.tasks[i]
		c, ok := s.timers[t.ID]
		if !ok {
			continue
		}
		remaining, expired := c.Sample(now)
		if expired {
			s.expire(t)
			events = append(events, Event{Type: EventExpired, TaskID: t.ID, Text: t.Text})
			changed = true
			continue
		}
		if remaining != t.RemainingSeconds {
			t.RemainingSeconds = remaining
			events = append(events, Event{Type: EventTicked, TaskID: t.ID, Text: t.Text, Remaining: remaining})
			changed = true
		}
	}
	return events, changed
}

func (s *Scheduler) expire(t *models.StandaloneTask) {
	id := t.SoundID
	if id == "" || !id.Valid() {
		id = s.policy.DefaultSound.OrDefault()
	}
	s.player.Play(id)
	s.disarm(t)
	t.RemainingSeconds = 0
	if s.policy.AutoCheck {
		t.IsCompleted = true
	}
}
