package tasks

import (
	"errors"
	"testing"

	"github.com/akyairhashvil/tasktimer/internal/mocks"
	"github.com/akyairhashvil/tasktimer/internal/models"
	"github.com/akyairhashvil/tasktimer/internal/sound"
	"github.com/akyairhashvil/tasktimer/internal/testutil"
	"github.com/golang/mock/gomock"
)

func newScheduler(t *testing.T, player sound.Player, policy Policy) (*Scheduler, *testutil.FakeClock) {
	t.Helper()
	clock := testutil.NewFakeClock()
	return NewScheduler(clock, player, policy), clock
}

func autoCheck() Policy {
	return Policy{AutoCheck: true, DefaultSound: models.SoundBell}
}

func mustAdd(t *testing.T, s *Scheduler, text string, seconds int) string {
	t.Helper()
	task, err := s.Add(text, seconds, "")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	return task.ID
}

func taskByID(t *testing.T, s *Scheduler, id string) models.StandaloneTask {
	t.Helper()
	for _, task := range s.Tasks() {
		if task.ID == id {
			return task
		}
	}
	t.Fatalf("task %s not found", id)
	return models.StandaloneTask{}
}

func TestAddPrepends(t *testing.T) {
	s, _ := newScheduler(t, nil, autoCheck())
	first := mustAdd(t, s, "first", 60)
	second := mustAdd(t, s, "second", 0)
	list := s.Tasks()
	if list[0].ID != second || list[1].ID != first {
		t.Fatalf("new tasks should be prepended")
	}
	if list[1].RemainingSeconds != 60 || list[0].Priority != 0 || list[0].IsRunning {
		t.Fatalf("unexpected new task %+v", list[1])
	}
	if _, err := s.Add("   ", 10, ""); !errors.Is(err, ErrEmptyText) {
		t.Fatalf("err = %v, want ErrEmptyText", err)
	}
}

func TestExpiryWithAutoCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	player := mocks.NewMockPlayer(ctrl)
	player.EXPECT().Play(models.SoundBell).Times(1)

	s, clock := newScheduler(t, player, autoCheck())
	id := mustAdd(t, s, "tea", 3)
	if err := s.ToggleRunning(id); err != nil {
		t.Fatalf("ToggleRunning failed: %v", err)
	}
	if !s.Armed(id) {
		t.Fatalf("running task should be armed")
	}

	clock.AdvanceSeconds(1)
	events, changed := s.Poll()
	if !changed || len(events) != 1 || events[0].Type != EventTicked || events[0].Remaining != 2 {
		t.Fatalf("unexpected poll %+v changed=%v", events, changed)
	}

	clock.AdvanceSeconds(5)
	events, _ = s.Poll()
	if len(events) != 1 || events[0].Type != EventExpired {
		t.Fatalf("expected expiry event, got %+v", events)
	}
	for i := 0; i < 3; i++ {
		clock.AdvanceSeconds(1)
		if ev, _ := s.Poll(); len(ev) != 0 {
			t.Fatalf("expired task must not fire again")
		}
	}

	task := taskByID(t, s, id)
	if !task.IsCompleted || task.IsRunning || task.RemainingSeconds != 0 {
		t.Fatalf("unexpected expired task %+v", task)
	}
	if s.Armed(id) || s.ArmedCount() != 0 {
		t.Fatalf("expired task must be disarmed")
	}
}

func TestExpiryWithoutAutoCheck(t *testing.T) {
	var played []models.SoundID
	player := sound.PlayerFunc(func(id models.SoundID) { played = append(played, id) })
	s, clock := newScheduler(t, player, Policy{DefaultSound: models.SoundDigital})

	id := mustAdd(t, s, "plain", 1)
	withSound, _ := s.Add("custom", 1, models.SoundWarning)
	_ = s.ToggleRunning(id)
	_ = s.ToggleRunning(withSound.ID)
	clock.AdvanceSeconds(1)
	s.Poll()

	task := taskByID(t, s, id)
	if task.IsCompleted || task.IsRunning || task.RemainingSeconds != 0 {
		t.Fatalf("unexpected expired task %+v", task)
	}
	if len(played) != 2 {
		t.Fatalf("expected two cues, got %v", played)
	}
	// Display order puts the newer "custom" task first.
	if played[0] != models.SoundWarning || played[1] != models.SoundDigital {
		t.Fatalf("unexpected cues %v", played)
	}
	if err := s.ToggleRunning(id); !errors.Is(err, ErrNoDuration) {
		t.Fatalf("restarting an exhausted task: err = %v, want ErrNoDuration", err)
	}
}

func TestToggleRunningPausesAtCurrentValue(t *testing.T) {
	s, clock := newScheduler(t, nil, autoCheck())
	id := mustAdd(t, s, "focus", 60)
	_ = s.ToggleRunning(id)
	clock.AdvanceSeconds(20)
	if err := s.ToggleRunning(id); err != nil {
		t.Fatalf("pause failed: %v", err)
	}
	task := taskByID(t, s, id)
	if task.IsRunning || task.RemainingSeconds != 40 || s.Armed(id) {
		t.Fatalf("unexpected paused task %+v", task)
	}
	clock.AdvanceSeconds(100)
	if _, changed := s.Poll(); changed {
		t.Fatalf("paused task must not change")
	}
	_ = s.ToggleRunning(id)
	clock.AdvanceSeconds(10)
	s.Poll()
	if got := taskByID(t, s, id).RemainingSeconds; got != 30 {
		t.Fatalf("RemainingSeconds = %d, want 30", got)
	}
}

func TestToggleStatus(t *testing.T) {
	s, clock := newScheduler(t, nil, autoCheck())
	id := mustAdd(t, s, "write", 60)
	_ = s.ToggleRunning(id)
	clock.AdvanceSeconds(10)
	s.Poll()

	if err := s.ToggleStatus(id); err != nil {
		t.Fatalf("ToggleStatus failed: %v", err)
	}
	task := taskByID(t, s, id)
	if !task.IsCompleted || task.IsRunning || task.RemainingSeconds != 0 || s.Armed(id) {
		t.Fatalf("completing should stop and zero the task, got %+v", task)
	}
	if err := s.ToggleRunning(id); !errors.Is(err, ErrTaskCompleted) {
		t.Fatalf("err = %v, want ErrTaskCompleted", err)
	}

	_ = s.ToggleStatus(id)
	task = taskByID(t, s, id)
	if task.IsCompleted || task.IsRunning || task.RemainingSeconds != 60 {
		t.Fatalf("reopening should restore the full duration stopped, got %+v", task)
	}
}

func TestSetPriorityTogglesOff(t *testing.T) {
	s, _ := newScheduler(t, nil, autoCheck())
	id := mustAdd(t, s, "ship", 0)
	_ = s.SetPriority(id, 3)
	if taskByID(t, s, id).Priority != 3 {
		t.Fatalf("expected priority 3")
	}
	_ = s.SetPriority(id, 3)
	if taskByID(t, s, id).Priority != 0 {
		t.Fatalf("same value should clear priority")
	}
	_ = s.SetPriority(id, 9)
	if taskByID(t, s, id).Priority != 5 {
		t.Fatalf("priority should clamp to 5")
	}
	if err := s.SetPriority("missing", 1); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("err = %v, want ErrTaskNotFound", err)
	}
}

func TestMoveRenameDelete(t *testing.T) {
	s, _ := newScheduler(t, nil, autoCheck())
	a := mustAdd(t, s, "a", 10)
	b := mustAdd(t, s, "b", 10) // list: b, a
	if moved, _ := s.Move(b, -1); moved {
		t.Fatalf("top task cannot move up")
	}
	if moved, _ := s.Move(b, 1); !moved || s.Tasks()[1].ID != b {
		t.Fatalf("Move down failed")
	}
	if err := s.Rename(a, "  renamed "); err != nil || taskByID(t, s, a).Text != "renamed" {
		t.Fatalf("Rename failed: %v", err)
	}
	_ = s.ToggleRunning(a)
	if err := s.Delete(a); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if s.Armed(a) || len(s.Tasks()) != 1 {
		t.Fatalf("Delete must drop the task and its countdown")
	}
	if err := s.Delete(a); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("err = %v, want ErrTaskNotFound", err)
	}
}

func TestRestoreRearmsRunningTasks(t *testing.T) {
	ctrl := gomock.NewController(t)
	player := mocks.NewMockPlayer(ctrl)
	player.EXPECT().Play(models.SoundBell).Times(1)

	s, clock := newScheduler(t, player, autoCheck())
	s.Restore([]models.StandaloneTask{
		testutil.NewStandaloneTask("running").WithDuration(60).WithRemaining(45).Running().Build(),
		testutil.NewStandaloneTask("stalled").WithDuration(60).WithRemaining(0).Running().Build(),
		testutil.NewStandaloneTask("idle").WithDuration(60).Build(),
	})
	if !s.Armed("running") || s.Armed("stalled") || s.Armed("idle") {
		t.Fatalf("only running tasks with time left should be re-armed")
	}
	if taskByID(t, s, "stalled").IsRunning {
		t.Fatalf("a running task with nothing left should be stopped")
	}

	if events, _ := s.Poll(); len(events) != 0 {
		t.Fatalf("restored task must not expire immediately, got %+v", events)
	}
	for i := 0; i < 44; i++ {
		clock.AdvanceSeconds(1)
		for _, ev := range mustPoll(s) {
			if ev.Type == EventExpired {
				t.Fatalf("task expired early, after %ds", i+1)
			}
		}
	}
	if got := taskByID(t, s, "running").RemainingSeconds; got != 1 {
		t.Fatalf("RemainingSeconds after 44s = %d, want 1", got)
	}

	clock.AdvanceSeconds(1)
	events := mustPoll(s)
	if len(events) != 1 || events[0].Type != EventExpired || events[0].TaskID != "running" {
		t.Fatalf("expected one expiry at 45s, got %+v", events)
	}
	clock.AdvanceSeconds(10)
	if events := mustPoll(s); len(events) != 0 {
		t.Fatalf("expired task must not fire again, got %+v", events)
	}
}

func mustPoll(s *Scheduler) []Event {
	events, _ := s.Poll()
	return events
}

func TestRestoreClampsRemaining(t *testing.T) {
	s, _ := newScheduler(t, nil, autoCheck())
	s.Restore([]models.StandaloneTask{
		testutil.NewStandaloneTask("over").WithDuration(60).WithRemaining(500).Running().Build(),
		testutil.NewStandaloneTask("negative").WithDuration(60).WithRemaining(-7).Build(),
		testutil.NewStandaloneTask("untimed").WithRemaining(30).Build(),
	})
	if got := taskByID(t, s, "over"); got.RemainingSeconds != 60 || !s.Armed("over") {
		t.Fatalf("over-long remaining should clamp to total and stay armed, got %+v", got)
	}
	if got := taskByID(t, s, "negative").RemainingSeconds; got != 0 {
		t.Fatalf("negative remaining = %d, want 0", got)
	}
	if got := taskByID(t, s, "untimed").RemainingSeconds; got != 0 {
		t.Fatalf("untimed task remaining = %d, want 0", got)
	}
}

func TestProgress(t *testing.T) {
	s, _ := newScheduler(t, nil, autoCheck())
	if s.Progress() != 0 {
		t.Fatalf("empty list progress should be 0")
	}
	a := mustAdd(t, s, "a", 0)
	mustAdd(t, s, "b", 0)
	_ = s.ToggleStatus(a)
	if s.Progress() != 0.5 {
		t.Fatalf("Progress = %v, want 0.5", s.Progress())
	}
}
