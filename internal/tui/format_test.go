package tui

import (
	"strings"
	"testing"
)

func TestParseTaskInput(t *testing.T) {
	cases := []struct {
		in   string
		text string
		secs int
	}{
		{"write report 25m", "write report", 1500},
		{"call bob 1:30", "call bob", 90},
		{"read chapter 3", "read chapter 3", 0},
		{"stretch", "stretch", 0},
		{"  tidy desk  ", "tidy desk", 0},
	}
	for _, tc := range cases {
		text, secs := parseTaskInput(tc.in)
		if text != tc.text || secs != tc.secs {
			t.Fatalf("parseTaskInput(%q) = %q, %d; want %q, %d", tc.in, text, secs, tc.text, tc.secs)
		}
	}
}

func TestFormatStars(t *testing.T) {
	if got := FormatStars(0); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
	if got := FormatStars(2); got != "★★☆☆☆" {
		t.Fatalf("unexpected stars %q", got)
	}
}

func TestTruncateLabel(t *testing.T) {
	if got := truncateLabel("short", 10); got != "short" {
		t.Fatalf("unexpected %q", got)
	}
	got := truncateLabel("a rather long task name", 10)
	if !strings.HasSuffix(got, "...") || len(got) > 10 {
		t.Fatalf("unexpected truncation %q", got)
	}
}

func TestHelpFollowsSessionMode(t *testing.T) {
	m, _, _, _ := newTestModel(t, nil)
	help := m.keys.HelpFor(m)
	if !strings.Contains(help, "new") || strings.Contains(help, "pause") {
		t.Fatalf("unexpected list help %q", help)
	}
	m.sess.template = pomodoro()
	m, _ = m.launch(m.sess.template)
	help = m.keys.HelpFor(m)
	if !strings.Contains(help, "pause") || strings.Contains(help, "quit") {
		t.Fatalf("unexpected runner help %q", help)
	}
}
