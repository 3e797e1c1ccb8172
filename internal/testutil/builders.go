package testutil

import (
	"fmt"

	"github.com/akyairhashvil/tasktimer/internal/models"
)

// SessionBuilder provides fluent API for creating test sessions.
type SessionBuilder struct {
	session models.Session
}

func NewSession() *SessionBuilder {
	return &SessionBuilder{
		session: models.Session{
			ID:     "session-1",
			Name:   "Test Session",
			Cycles: 1,
		},
	}
}

func (b *SessionBuilder) WithName(name string) *SessionBuilder {
	b.session.Name = name
	return b
}

func (b *SessionBuilder) WithCycles(n int) *SessionBuilder {
	b.session.Cycles = n
	return b
}

// WithInterval appends an interval with id "iv<N>" and the given tasks.
func (b *SessionBuilder) WithInterval(name string, seconds int, sound models.SoundID, tasks ...string) *SessionBuilder {
	idx := len(b.session.Intervals)
	iv := models.Interval{
		ID:              fmt.Sprintf("iv%d", idx),
		Name:            name,
		DurationSeconds: seconds,
		SoundID:         sound,
	}
	for i, text := range tasks {
		iv.Tasks = append(iv.Tasks, models.Task{ID: fmt.Sprintf("iv%d-t%d", idx, i), Text: text})
	}
	b.session.Intervals = append(b.session.Intervals, iv)
	return b
}

func (b *SessionBuilder) Build() models.Session {
	return b.session.Clone()
}

// StandaloneTaskBuilder provides fluent API for creating test tasks.
type StandaloneTaskBuilder struct {
	task models.StandaloneTask
}

func NewStandaloneTask(id string) *StandaloneTaskBuilder {
	return &StandaloneTaskBuilder{
		task: models.StandaloneTask{
			ID:      id,
			Text:    "Test Task " + id,
			SoundID: models.DefaultSoundID,
		},
	}
}

func (b *StandaloneTaskBuilder) WithText(text string) *StandaloneTaskBuilder {
	b.task.Text = text
	return b
}

// WithDuration sets both total and remaining seconds.
func (b *StandaloneTaskBuilder) WithDuration(seconds int) *StandaloneTaskBuilder {
	b.task.TotalSeconds = seconds
	b.task.RemainingSeconds = seconds
	return b
}

func (b *StandaloneTaskBuilder) WithRemaining(seconds int) *StandaloneTaskBuilder {
	b.task.RemainingSeconds = seconds
	return b
}

func (b *StandaloneTaskBuilder) Running() *StandaloneTaskBuilder {
	b.task.IsRunning = true
	return b
}

func (b *StandaloneTaskBuilder) Completed() *StandaloneTaskBuilder {
	b.task.IsCompleted = true
	b.task.IsRunning = false
	return b
}

func (b *StandaloneTaskBuilder) WithSound(id models.SoundID) *StandaloneTaskBuilder {
	b.task.SoundID = id
	return b
}

func (b *StandaloneTaskBuilder) WithPriority(p int) *StandaloneTaskBuilder {
	b.task.Priority = p
	return b
}

func (b *StandaloneTaskBuilder) Build() models.StandaloneTask {
	return b.task
}
