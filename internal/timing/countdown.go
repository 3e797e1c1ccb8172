package timing

import (
	"math"
	"time"
)

// EndFor returns the target timestamp for a countdown of seconds starting now.
func EndFor(now time.Time, seconds int) time.Time {
	return now.Add(time.Duration(seconds) * time.Second)
}

// RemainingSeconds is max(0, round((end-now)/1s)).
func RemainingSeconds(end, now time.Time) int {
	secs := math.Round(end.Sub(now).Seconds())
	if secs <= 0 {
		return 0
	}
	return int(secs)
}

// Countdown tracks remaining whole seconds against a wall-clock target.
// While armed, Remaining is only ever recomputed from the target, so a late
// or missed sample never accumulates drift. The zero value is disarmed with
// nothing remaining.
type Countdown struct {
	end       time.Time
	armed     bool
	remaining int
}

// NewCountdown returns a disarmed countdown holding seconds.
func NewCountdown(seconds int) Countdown {
	if seconds < 0 {
		seconds = 0
	}
	return Countdown{remaining: seconds}
}

// Arm sets remaining to seconds and starts counting toward now+seconds.
func (c *Countdown) Arm(now time.Time, seconds int) {
	if seconds < 0 {
		seconds = 0
	}
	c.remaining = seconds
	c.end = EndFor(now, seconds)
	c.armed = true
}

// Resume arms the countdown from its current remaining value.
func (c *Countdown) Resume(now time.Time) {
	c.Arm(now, c.remaining)
}

// Disarm freezes remaining at its last sampled value and drops the target.
func (c *Countdown) Disarm() {
	c.armed = false
	c.end = time.Time{}
}

// Set replaces the remaining value. An armed countdown is re-armed so the
// new value counts down from now; a disarmed one stays disarmed.
func (c *Countdown) Set(now time.Time, seconds int) {
	if c.armed {
		c.Arm(now, seconds)
		return
	}
	if seconds < 0 {
		seconds = 0
	}
	c.remaining = seconds
}

// Sample recomputes remaining from the target. expired is true exactly once,
// on the sample where remaining first reaches zero; the countdown disarms
// itself at that point so later samples cannot fire again.
func (c *Countdown) Sample(now time.Time) (remaining int, expired bool) {
	if !c.armed {
		return c.remaining, false
	}
	c.remaining = RemainingSeconds(c.end, now)
	if c.remaining == 0 {
		c.Disarm()
		return 0, true
	}
	return c.remaining, false
}

// Peek returns what Sample would report without changing state.
func (c Countdown) Peek(now time.Time) int {
	if !c.armed {
		return c.remaining
	}
	return RemainingSeconds(c.end, now)
}

func (c Countdown) Remaining() int { return c.remaining }

func (c Countdown) Armed() bool { return c.armed }

// EndsAt returns the target and whether one is set.
func (c Countdown) EndsAt() (time.Time, bool) {
	return c.end, c.armed
}
