package timing

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDuration is returned by ParseClock for unrecognised input.
var ErrInvalidDuration = errors.New("invalid duration")

// FormatClock renders whole seconds as zero-padded HH:MM:SS.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// FormatStopwatch renders MM:SS.cc, prefixed with HH: once an hour passes.
func FormatStopwatch(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := d.Milliseconds()
	h := total / 3_600_000
	m := (total % 3_600_000) / 60_000
	s := (total % 60_000) / 1000
	cs := (total % 1000) / 10
	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d.%02d", h, m, s, cs)
	}
	return fmt.Sprintf("%02d:%02d.%02d", m, s, cs)
}

// FormatShort renders a duration compactly (e.g. "25m", "1h 30m", "45s").
func FormatShort(seconds int) string {
	d := time.Duration(seconds) * time.Second
	if d < time.Minute {
		return fmt.Sprintf("%ds", seconds)
	}
	if d < time.Hour {
		if seconds%60 != 0 {
			return fmt.Sprintf("%dm %ds", seconds/60, seconds%60)
		}
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
	hours := int(d.Hours())
	mins := int(d.Minutes()) % 60
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}

// ParseHMS converts hours, minutes and seconds to total seconds.
func ParseHMS(h, m, s int) int {
	return h*3600 + m*60 + s
}

// ParseClock accepts "HH:MM:SS", "MM:SS", a plain number of seconds, or a
// Go duration such as "25m" or "1h30m".
func ParseClock(input string) (int, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, ErrInvalidDuration
	}
	if strings.Contains(input, ":") {
		parts := strings.Split(input, ":")
		if len(parts) > 3 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, input)
		}
		vals := make([]int, 3)
		offset := 3 - len(parts)
		for i, p := range parts {
			n, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil || n < 0 {
				return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, input)
			}
			vals[offset+i] = n
		}
		return ParseHMS(vals[0], vals[1], vals[2]), nil
	}
	if n, err := strconv.Atoi(input); err == nil {
		if n < 0 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, input)
		}
		return n, nil
	}
	d, err := time.ParseDuration(input)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, input)
	}
	return int(d / time.Second), nil
}
