package timing

import (
	"errors"
	"testing"
	"time"
)

func TestFormatClock(t *testing.T) {
	cases := map[int]string{
		0:     "00:00:00",
		59:    "00:00:59",
		1500:  "00:25:00",
		3661:  "01:01:01",
		-4:    "00:00:00",
		36000: "10:00:00",
	}
	for in, want := range cases {
		if got := FormatClock(in); got != want {
			t.Fatalf("FormatClock(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatStopwatch(t *testing.T) {
	if got := FormatStopwatch(61*time.Second + 230*time.Millisecond); got != "01:01.23" {
		t.Fatalf("got %q", got)
	}
	if got := FormatStopwatch(time.Hour + 5*time.Second); got != "01:00:05.00" {
		t.Fatalf("got %q", got)
	}
}

func TestFormatShort(t *testing.T) {
	cases := map[int]string{
		45:   "45s",
		1500: "25m",
		90:   "1m 30s",
		5400: "1h 30m",
		7200: "2h",
	}
	for in, want := range cases {
		if got := FormatShort(in); got != want {
			t.Fatalf("FormatShort(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestParseClock(t *testing.T) {
	cases := map[string]int{
		"01:30:00": 5400,
		"5:00":     300,
		"90":       90,
		"25m":      1500,
		"1h30m":    5400,
		" 10s ":    10,
	}
	for in, want := range cases {
		got, err := ParseClock(in)
		if err != nil {
			t.Fatalf("ParseClock(%q) error: %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseClock(%q) = %d, want %d", in, got, want)
		}
	}
	for _, bad := range []string{"", "abc", "1:2:3:4", "-5", "1:xx"} {
		if _, err := ParseClock(bad); !errors.Is(err, ErrInvalidDuration) {
			t.Fatalf("ParseClock(%q) err = %v, want ErrInvalidDuration", bad, err)
		}
	}
	if ParseHMS(1, 2, 3) != 3723 {
		t.Fatalf("ParseHMS mismatch")
	}
}
