package templates

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/akyairhashvil/tasktimer/internal/models"
	"github.com/akyairhashvil/tasktimer/internal/session"
	"github.com/akyairhashvil/tasktimer/internal/testutil"
)

func TestEncodeDecode(t *testing.T) {
	in := testutil.NewSession().
		WithName("Pomodoro").
		WithCycles(4).
		WithInterval("Work", 1500, models.SoundBell, "write", "review").
		WithInterval("Break", 330, models.SoundSuccess).
		Build()

	var buf bytes.Buffer
	if err := Encode(&buf, []models.Session{in}); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	text := buf.String()
	if !strings.Contains(text, "duration: 25m") || !strings.Contains(text, "duration: 5m30s") {
		t.Fatalf("durations should be human readable:\n%s", text)
	}

	out, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected one session, got %d", len(out))
	}
	got := out[0]
	if got.Name != "Pomodoro" || got.Cycles != 4 || got.TotalDuration() != in.TotalDuration() {
		t.Fatalf("unexpected session %+v", got)
	}
	if got.ID == in.ID || got.Intervals[0].ID == in.Intervals[0].ID {
		t.Fatalf("imported sessions need fresh ids")
	}
	if len(got.Intervals[0].Tasks) != 2 || got.Intervals[1].SoundID != models.SoundSuccess {
		t.Fatalf("unexpected intervals %+v", got.Intervals)
	}
}

func TestDecodeDefaultsAndClamps(t *testing.T) {
	doc := `
sessions:
  - name: Sprint
    cycles: 500
    intervals:
      - name: Go
        duration: "01:00:00"
`
	out, err := Decode(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	s := out[0]
	if s.Cycles != 99 || s.Intervals[0].DurationSeconds != 3600 || s.Intervals[0].SoundID != models.DefaultSoundID {
		t.Fatalf("unexpected session %+v", s)
	}
}

func TestDecodeErrors(t *testing.T) {
	cases := map[string]struct {
		doc  string
		want error
	}{
		"empty name": {
			doc:  "sessions:\n  - name: ''\n    intervals:\n      - name: a\n        duration: 1m\n",
			want: session.ErrEmptyName,
		},
		"no intervals": {
			doc:  "sessions:\n  - name: x\n",
			want: session.ErrNoIntervals,
		},
		"unknown sound": {
			doc:  "sessions:\n  - name: x\n    intervals:\n      - name: a\n        duration: 1m\n        sound: kazoo\n",
			want: ErrUnknownSound,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Decode(strings.NewReader(tc.doc)); !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
		})
	}
	if _, err := Decode(strings.NewReader("sessions: [")); err == nil {
		t.Fatalf("expected a parse error")
	}
	if out, err := Decode(strings.NewReader("")); err != nil || len(out) != 0 {
		t.Fatalf("empty input should decode to nothing, got %v %v", out, err)
	}
}
