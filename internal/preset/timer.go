package preset

import (
	"github.com/akyairhashvil/tasktimer/internal/models"
	"github.com/akyairhashvil/tasktimer/internal/sound"
	"github.com/akyairhashvil/tasktimer/internal/timing"
)

// Timer is the single free-standing countdown.
type Timer struct {
	clock  timing.Clock
	player sound.Player
	sound  models.SoundID

	countdown  timing.Countdown
	label      string
	started    bool
	finished   bool
	generation uint64
}

func NewTimer(clock timing.Clock, player sound.Player, defaultSound models.SoundID) *Timer {
	if clock == nil {
		clock = timing.SystemClock
	}
	if player == nil {
		player = sound.Nop
	}
	return &Timer{clock: clock, player: player, sound: defaultSound}
}

// SetSound changes the cue played at zero.
func (t *Timer) SetSound(id models.SoundID) { t.sound = id }

// StartManual runs a countdown of seconds.
func (t *Timer) StartManual(seconds int) error {
	if seconds <= 0 {
		return ErrZeroDuration
	}
	t.start(seconds, "")
	return nil
}

// Use runs a saved preset.
func (t *Timer) Use(p models.TimerPreset) error {
	if p.DurationSeconds <= 0 {
		return ErrZeroDuration
	}
	t.start(p.DurationSeconds, p.Name)
	return nil
}

func (t *Timer) start(seconds int, label string) {
	t.countdown.Arm(t.clock.Now(), seconds)
	t.label = label
	t.started = true
	t.finished = false
	t.generation++
}

// TogglePause pauses a running countdown or resumes a paused one.
func (t *Timer) TogglePause() {
	if !t.started {
		return
	}
	if t.countdown.Armed() {
		remaining := t.countdown.Peek(t.clock.Now())
		t.countdown.Disarm()
		t.countdown.Set(t.clock.Now(), remaining)
	} else if t.countdown.Remaining() > 0 {
		t.countdown.Resume(t.clock.Now())
	}
	t.generation++
}

// Reset drops back to zero, inactive.
func (t *Timer) Reset() {
	t.countdown = timing.Countdown{}
	t.label = ""
	t.started = false
	t.finished = false
	t.generation++
}

// Tick samples the countdown and reports whether it just finished. The cue
// plays once, on that tick.
func (t *Timer) Tick() bool {
	if !t.countdown.Armed() {
		return false
	}
	_, expired := t.countdown.Sample(t.clock.Now())
	if !expired {
		return false
	}
	t.player.Play(t.sound.OrDefault())
	t.started = false
	t.finished = true
	t.generation++
	return true
}

func (t *Timer) Remaining() int { return t.countdown.Remaining() }

// Active is true while counting down.
func (t *Timer) Active() bool { return t.countdown.Armed() }

// Paused is true for a started countdown that is not counting.
func (t *Timer) Paused() bool { return t.started && !t.countdown.Armed() }

// Finished is true after the countdown reached zero, until the next start
// or reset.
func (t *Timer) Finished() bool { return t.finished }

// Label is the preset name, empty for manual durations.
func (t *Timer) Label() string { return t.label }

func (t *Timer) Generation() uint64 { return t.generation }
