package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestSessionDurations(t *testing.T) {
	s := Session{
		Cycles: 3,
		Intervals: []Interval{
			{ID: "a", DurationSeconds: 1500},
			{ID: "b", DurationSeconds: 300},
		},
	}
	if got := s.CycleDuration(); got != 1800 {
		t.Fatalf("CycleDuration = %d, want 1800", got)
	}
	if got := s.TotalDuration(); got != 5400 {
		t.Fatalf("TotalDuration = %d, want 5400", got)
	}
	if s.IntervalByID("b") != 1 || s.IntervalByID("zzz") != -1 {
		t.Fatalf("IntervalByID lookup mismatch")
	}
}

func TestSessionCloneIsIndependent(t *testing.T) {
	s := Session{
		ID:     "s1",
		Cycles: 1,
		Intervals: []Interval{
			{ID: "a", Tasks: []Task{{ID: "t1", Text: "write"}}},
		},
	}
	c := s.Clone()
	c.Intervals[0].Tasks[0].IsCompleted = true
	c.Intervals[0].Name = "changed"
	if s.Intervals[0].Tasks[0].IsCompleted {
		t.Fatalf("clone shares task storage with original")
	}
	if s.Intervals[0].Name == "changed" {
		t.Fatalf("clone shares interval storage with original")
	}
	if s.TaskCount() != 1 {
		t.Fatalf("TaskCount = %d, want 1", s.TaskCount())
	}
}

func TestSoundCatalog(t *testing.T) {
	if !DefaultSoundID.Valid() {
		t.Fatalf("default sound must be in the catalog")
	}
	if SoundID("kazoo").Valid() {
		t.Fatalf("unknown sound reported valid")
	}
	if SoundID("kazoo").OrDefault() != SoundBell {
		t.Fatalf("OrDefault should fall back to bell")
	}
	if SoundDigital.Name() != "Triple Beep" {
		t.Fatalf("unexpected name %q", SoundDigital.Name())
	}
	if NextSound(SoundBell, -1) != SoundWarning {
		t.Fatalf("NextSound should wrap backwards")
	}
	if NextSound(SoundWarning, 1) != SoundBell {
		t.Fatalf("NextSound should wrap forwards")
	}
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if !s.AutoCheck || s.SkipSound || s.PriorityEnabled || s.DefaultSound != SoundBell {
		t.Fatalf("unexpected defaults: %+v", s)
	}
}

func TestStandaloneTaskJSONKeys(t *testing.T) {
	raw, err := json.Marshal(StandaloneTask{ID: "x", Text: "t", TotalSeconds: 60, RemainingSeconds: 30, IsRunning: true, SoundID: SoundBell})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, key := range []string{`"isCompleted"`, `"totalSeconds"`, `"remainingSeconds"`, `"isRunning"`, `"soundId"`} {
		if !strings.Contains(string(raw), key) {
			t.Fatalf("missing key %s in %s", key, raw)
		}
	}
}
