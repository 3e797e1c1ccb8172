package session

import (
	"errors"
	"testing"
	"time"

	"github.com/akyairhashvil/tasktimer/internal/mocks"
	"github.com/akyairhashvil/tasktimer/internal/models"
	"github.com/akyairhashvil/tasktimer/internal/sound"
	"github.com/akyairhashvil/tasktimer/internal/testutil"
	"github.com/golang/mock/gomock"
)

func pomodoro() models.Session {
	return testutil.NewSession().
		WithCycles(2).
		WithInterval("Work", 3, models.SoundBell, "draft", "review").
		WithInterval("Break", 2, models.SoundSuccess, "stretch").
		Build()
}

func defaultPolicy() Policy {
	return Policy{AutoCheck: true, SkipBackThreshold: 2 * time.Second}
}

func newRunner(t *testing.T, s models.Session, opts Options, policy Policy, player sound.Player) (*Runner, *testutil.FakeClock) {
	t.Helper()
	clock := testutil.NewFakeClock()
	r, err := New(s, opts, policy, clock, player)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return r, clock
}

func completedCount(r *Runner) int {
	return r.Snapshot().CompletedTasks
}

func TestNewRejectsInvalidSessions(t *testing.T) {
	clock := testutil.NewFakeClock()
	if _, err := New(models.Session{Cycles: 1}, DefaultOptions(), defaultPolicy(), clock, nil); !errors.Is(err, ErrNoIntervals) {
		t.Fatalf("err = %v, want ErrNoIntervals", err)
	}
	s := pomodoro()
	s.Cycles = 0
	if _, err := New(s, DefaultOptions(), defaultPolicy(), clock, nil); !errors.Is(err, ErrInvalidCycles) {
		t.Fatalf("err = %v, want ErrInvalidCycles", err)
	}
}

func TestRunnerStartsAtFirstInterval(t *testing.T) {
	r, _ := newRunner(t, pomodoro(), DefaultOptions(), defaultPolicy(), nil)
	snap := r.Snapshot()
	if snap.State != StateRunning || snap.Cycle != 1 || snap.IntervalIndex != 0 || snap.TimeLeft != 3 {
		t.Fatalf("unexpected start snapshot %+v", snap)
	}
	if snap.NextInterval == nil || snap.NextInterval.Name != "Break" {
		t.Fatalf("NextInterval = %+v", snap.NextInterval)
	}
}

func TestRunnerFullCycleAdvancement(t *testing.T) {
	ctrl := gomock.NewController(t)
	player := mocks.NewMockPlayer(ctrl)
	gomock.InOrder(
		player.EXPECT().Play(models.SoundBell),
		player.EXPECT().Play(models.SoundSuccess),
		player.EXPECT().Play(models.SoundBell),
		player.EXPECT().Play(models.SoundSuccess),
	)
	r, clock := newRunner(t, pomodoro(), DefaultOptions(), defaultPolicy(), player)

	clock.AdvanceSeconds(3)
	events := r.Tick()
	if len(events) != 2 || events[0].Type != EventIntervalEnded || events[1].Type != EventIntervalStarted {
		t.Fatalf("unexpected events %+v", events)
	}
	snap := r.Snapshot()
	if snap.IntervalIndex != 1 || snap.TimeLeft != 2 {
		t.Fatalf("expected Break with 2s, got %+v", snap)
	}
	if completedCount(r) != 2 {
		t.Fatalf("auto-check should complete the Work tasks, got %d", completedCount(r))
	}

	clock.AdvanceSeconds(2)
	events = r.Tick()
	if len(events) != 2 || events[1].Type != EventCycleStarted || events[1].Cycle != 2 {
		t.Fatalf("unexpected events %+v", events)
	}
	if completedCount(r) != 0 {
		t.Fatalf("repeat tasks should reset completion on a new cycle, got %d", completedCount(r))
	}

	clock.AdvanceSeconds(3)
	r.Tick()
	clock.AdvanceSeconds(2)
	events = r.Tick()
	if len(events) != 2 || events[1].Type != EventCompleted {
		t.Fatalf("unexpected final events %+v", events)
	}
	snap = r.Snapshot()
	if snap.State != StateCompleted || snap.Progress != 1 || snap.TotalRemaining != 0 {
		t.Fatalf("unexpected completed snapshot %+v", snap)
	}
	if snap.CompletedTasks != 3 {
		t.Fatalf("CompletedTasks = %d, want 3", snap.CompletedTasks)
	}
	if snap.NextInterval != nil {
		t.Fatalf("completed session has no next interval")
	}

	clock.AdvanceSeconds(30)
	if events := r.Tick(); events != nil {
		t.Fatalf("completed runner must not tick, got %+v", events)
	}
}

func TestRunnerExpiryFiresExactlyOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	player := mocks.NewMockPlayer(ctrl)
	player.EXPECT().Play(models.SoundBell).Times(1)

	r, clock := newRunner(t, pomodoro(), DefaultOptions(), defaultPolicy(), player)
	clock.AdvanceSeconds(3)
	for i := 0; i < 5; i++ {
		r.Tick()
		clock.Advance(100 * time.Millisecond)
	}
	if r.Snapshot().IntervalIndex != 1 {
		t.Fatalf("expected to be in Break")
	}
}

func TestRunnerNoDriftWithSparseTicks(t *testing.T) {
	s := testutil.NewSession().WithInterval("Long", 100, models.SoundBell).Build()
	r, clock := newRunner(t, s, DefaultOptions(), defaultPolicy(), nil)

	for i := 0; i < 10; i++ {
		clock.Advance(1700 * time.Millisecond)
		r.Tick()
	}
	// 17s of wall time, regardless of tick cadence.
	if got := r.Snapshot().TimeLeft; got != 83 {
		t.Fatalf("TimeLeft = %d, want 83", got)
	}
}

func TestRunnerAutoCheckDisabled(t *testing.T) {
	policy := defaultPolicy()
	policy.AutoCheck = false
	r, clock := newRunner(t, pomodoro(), DefaultOptions(), policy, nil)
	clock.AdvanceSeconds(3)
	r.Tick()
	if completedCount(r) != 0 {
		t.Fatalf("tasks must stay open when auto-check is off")
	}

	r.UpdatePolicy(defaultPolicy())
	clock.AdvanceSeconds(2)
	r.Tick()
	// The Break task was auto-checked, then the new cycle reset everything.
	if completedCount(r) != 0 {
		t.Fatalf("expected reset on cycle rollover, got %d", completedCount(r))
	}
}

func TestRunnerRepeatTasksOff(t *testing.T) {
	opts := DefaultOptions()
	opts.RepeatTasks = false
	r, clock := newRunner(t, pomodoro(), opts, defaultPolicy(), nil)
	clock.AdvanceSeconds(3)
	r.Tick()
	clock.AdvanceSeconds(2)
	r.Tick()
	if r.Snapshot().Cycle != 2 {
		t.Fatalf("expected cycle 2")
	}
	if completedCount(r) != 3 {
		t.Fatalf("completion should carry over when repeat is off, got %d", completedCount(r))
	}
}

func TestRunnerPauseResume(t *testing.T) {
	s := testutil.NewSession().WithInterval("Work", 10, models.SoundBell).Build()
	r, clock := newRunner(t, s, DefaultOptions(), defaultPolicy(), nil)

	clock.AdvanceSeconds(3)
	gen := r.Generation()
	r.TogglePause()
	if r.State() != StatePaused || r.Generation() == gen {
		t.Fatalf("pause should change state and generation")
	}
	clock.AdvanceSeconds(100)
	if events := r.Tick(); events != nil {
		t.Fatalf("paused runner must not tick")
	}
	if got := r.Snapshot().TimeLeft; got != 7 {
		t.Fatalf("paused TimeLeft = %d, want 7", got)
	}

	r.TogglePause()
	if r.State() != StateRunning {
		t.Fatalf("expected running after resume")
	}
	clock.AdvanceSeconds(6)
	r.Tick()
	if got := r.Snapshot().TimeLeft; got != 1 {
		t.Fatalf("TimeLeft = %d, want 1", got)
	}
	clock.AdvanceSeconds(1)
	if events := r.Tick(); len(events) == 0 {
		t.Fatalf("expected expiry after resume")
	}
}

func TestRunnerTickWithoutExpiryKeepsGeneration(t *testing.T) {
	r, clock := newRunner(t, pomodoro(), DefaultOptions(), defaultPolicy(), nil)
	gen := r.Generation()
	clock.AdvanceSeconds(1)
	r.Tick()
	if r.Generation() != gen {
		t.Fatalf("a plain tick must not change the generation")
	}
}

func TestRunnerReset(t *testing.T) {
	s := testutil.NewSession().WithInterval("Work", 10, models.SoundBell).Build()
	r, clock := newRunner(t, s, DefaultOptions(), defaultPolicy(), nil)
	clock.AdvanceSeconds(4)
	r.Tick()
	r.Reset()
	if got := r.Snapshot().TimeLeft; got != 10 {
		t.Fatalf("TimeLeft after reset = %d", got)
	}
	clock.AdvanceSeconds(2)
	r.Tick()
	if got := r.Snapshot().TimeLeft; got != 8 {
		t.Fatalf("reset should re-arm while running, TimeLeft = %d", got)
	}

	r.Pause()
	r.Reset()
	clock.AdvanceSeconds(5)
	r.Tick()
	if r.State() != StatePaused || r.Snapshot().TimeLeft != 10 {
		t.Fatalf("reset while paused should stay paused at full duration")
	}
}

func TestRunnerSkipForward(t *testing.T) {
	ctrl := gomock.NewController(t)
	player := mocks.NewMockPlayer(ctrl)
	r, clock := newRunner(t, pomodoro(), DefaultOptions(), defaultPolicy(), player)

	clock.AdvanceSeconds(1)
	r.SkipForward()
	snap := r.Snapshot()
	if snap.IntervalIndex != 1 || snap.TimeLeft != 2 {
		t.Fatalf("unexpected snapshot after skip %+v", snap)
	}
	if snap.CompletedTasks != 0 {
		t.Fatalf("skip must not mark tasks complete")
	}

	policy := defaultPolicy()
	policy.SkipSound = true
	r.UpdatePolicy(policy)
	player.EXPECT().Play(models.SoundBell)
	r.SkipForward()
	if snap := r.Snapshot(); snap.Cycle != 2 || snap.IntervalIndex != 0 {
		t.Fatalf("expected cycle 2 interval 0, got %+v", snap)
	}

	player.EXPECT().Play(models.SoundSuccess)
	r.SkipForward()
	gen := r.Generation()
	r.SkipForward()
	if r.Generation() != gen || r.Snapshot().IntervalIndex != 1 || r.State() != StateRunning {
		t.Fatalf("skip at the final interval must be a no-op")
	}
}

func TestRunnerSkipForwardWhilePaused(t *testing.T) {
	r, clock := newRunner(t, pomodoro(), DefaultOptions(), defaultPolicy(), nil)
	r.Pause()
	r.SkipForward()
	clock.AdvanceSeconds(10)
	r.Tick()
	snap := r.Snapshot()
	if snap.State != StatePaused || snap.IntervalIndex != 1 || snap.TimeLeft != 2 {
		t.Fatalf("paused skip should land paused at full duration, got %+v", snap)
	}
}

func TestRunnerSkipBackward(t *testing.T) {
	ctrl := gomock.NewController(t)
	player := mocks.NewMockPlayer(ctrl)
	s := testutil.NewSession().
		WithCycles(2).
		WithInterval("Work", 10, models.SoundBell).
		WithInterval("Break", 5, models.SoundSuccess).
		Build()
	policy := defaultPolicy()
	policy.SkipSound = true
	r, clock := newRunner(t, s, DefaultOptions(), policy, player)

	// At the very first interval with little elapsed nothing happens.
	clock.AdvanceSeconds(1)
	gen := r.Generation()
	r.SkipBackward()
	if r.Generation() != gen || r.Snapshot().IntervalIndex != 0 {
		t.Fatalf("skip back at cycle 1 interval 0 must be a no-op")
	}

	// More than the threshold elapsed: restart the current interval.
	clock.AdvanceSeconds(2)
	player.EXPECT().Play(models.SoundBell)
	r.SkipBackward()
	if snap := r.Snapshot(); snap.IntervalIndex != 0 || snap.TimeLeft != 10 {
		t.Fatalf("expected restart of Work, got %+v", snap)
	}

	player.EXPECT().Play(models.SoundSuccess)
	r.SkipForward()
	clock.AdvanceSeconds(2)
	player.EXPECT().Play(models.SoundBell)
	r.SkipBackward()
	if snap := r.Snapshot(); snap.IntervalIndex != 0 || snap.TimeLeft != 10 {
		t.Fatalf("exactly the threshold should go back, got %+v", snap)
	}

	player.EXPECT().Play(models.SoundSuccess)
	r.SkipForward()
	player.EXPECT().Play(models.SoundBell)
	r.SkipForward()
	if r.Snapshot().Cycle != 2 {
		t.Fatalf("expected cycle 2")
	}
	player.EXPECT().Play(models.SoundSuccess)
	r.SkipBackward()
	if snap := r.Snapshot(); snap.Cycle != 1 || snap.IntervalIndex != 1 || snap.TimeLeft != 5 {
		t.Fatalf("expected previous cycle's last interval, got %+v", snap)
	}
}

func TestRunnerZeroDurationIntervalExpiresImmediately(t *testing.T) {
	s := testutil.NewSession().
		WithInterval("Instant", 0, models.SoundWarning).
		WithInterval("Work", 5, models.SoundBell).
		Build()
	r, _ := newRunner(t, s, DefaultOptions(), defaultPolicy(), nil)
	events := r.Tick()
	if len(events) != 2 || r.Snapshot().IntervalIndex != 1 {
		t.Fatalf("zero-length interval should expire on the first tick, events %+v", events)
	}
}

func TestRunnerQuit(t *testing.T) {
	r, clock := newRunner(t, pomodoro(), DefaultOptions(), defaultPolicy(), nil)
	r.Quit()
	if r.State() != StateIdle {
		t.Fatalf("expected idle after quit")
	}
	clock.AdvanceSeconds(10)
	if r.Tick() != nil {
		t.Fatalf("quit runner must not tick")
	}
	r.Resume()
	r.SkipForward()
	if r.State() != StateIdle || r.Snapshot().IntervalIndex != 0 {
		t.Fatalf("operations after quit must be ignored")
	}
}

func TestRunnerToggleTask(t *testing.T) {
	r, _ := newRunner(t, pomodoro(), DefaultOptions(), defaultPolicy(), nil)
	if err := r.ToggleTask("iv1", "iv1-t0"); err != nil {
		t.Fatalf("ToggleTask failed: %v", err)
	}
	if completedCount(r) != 1 {
		t.Fatalf("expected one completed task")
	}
	if err := r.ToggleTask("iv1", "iv1-t0"); err != nil || completedCount(r) != 0 {
		t.Fatalf("second toggle should reopen the task")
	}
	if err := r.ToggleTask("iv1", "nope"); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("err = %v, want ErrTaskNotFound", err)
	}
	if err := r.ToggleTask("nope", "iv1-t0"); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("err = %v, want ErrTaskNotFound", err)
	}
}

func TestRunnerDoesNotMutateInput(t *testing.T) {
	s := pomodoro()
	r, clock := newRunner(t, s, DefaultOptions(), defaultPolicy(), nil)
	clock.AdvanceSeconds(3)
	r.Tick()
	for _, iv := range s.Intervals {
		for _, task := range iv.Tasks {
			if task.IsCompleted {
				t.Fatalf("runner changed the caller's session")
			}
		}
	}
}
