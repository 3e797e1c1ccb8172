package timing

import (
	"testing"
	"time"

	"github.com/akyairhashvil/tasktimer/internal/testutil"
)

func TestStopwatchAccumulatesAcrossPauses(t *testing.T) {
	clock := testutil.NewFakeClock()
	var sw Stopwatch

	sw.Start(clock.Now())
	clock.Advance(1500 * time.Millisecond)
	sw.Pause(clock.Now())
	clock.AdvanceSeconds(30)
	if got := sw.Elapsed(clock.Now()); got != 1500*time.Millisecond {
		t.Fatalf("paused Elapsed = %v", got)
	}

	sw.Toggle(clock.Now())
	clock.Advance(500 * time.Millisecond)
	if got := sw.Elapsed(clock.Now()); got != 2*time.Second {
		t.Fatalf("Elapsed = %v, want 2s", got)
	}
}

func TestStopwatchLaps(t *testing.T) {
	clock := testutil.NewFakeClock()
	var sw Stopwatch
	if sw.Lap(clock.Now()) {
		t.Fatalf("lap should be unavailable before the first start")
	}

	sw.Start(clock.Now())
	clock.AdvanceSeconds(1)
	sw.Lap(clock.Now())
	clock.AdvanceSeconds(2)
	sw.Lap(clock.Now())

	laps := sw.Laps()
	if len(laps) != 2 || laps[0] != 3*time.Second || laps[1] != time.Second {
		t.Fatalf("laps = %v, want newest first [3s 1s]", laps)
	}

	sw.Pause(clock.Now())
	if !sw.CanLap(clock.Now()) {
		t.Fatalf("paused stopwatch with elapsed time should allow laps")
	}

	sw.Reset()
	if sw.Running() || sw.Elapsed(clock.Now()) != 0 || len(sw.Laps()) != 0 {
		t.Fatalf("Reset should clear everything")
	}
}
