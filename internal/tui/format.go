package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/tasktimer/internal/config"
	"github.com/akyairhashvil/tasktimer/internal/timing"
	"github.com/charmbracelet/x/ansi"
)

func truncateLabel(text string, max int) string {
	if max <= 0 {
		return ""
	}
	if ansi.StringWidth(text) <= max {
		return text
	}
	return ansi.Truncate(text, max, config.TruncationSuffix)
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

func cursor(selected bool) string {
	if selected {
		return CurrentTheme.Focused.Render("> ")
	}
	return "  "
}

// FormatStars renders a 0..5 priority as filled and empty stars.
func FormatStars(n int) string {
	if n <= 0 {
		return ""
	}
	if n > config.MaxPriority {
		n = config.MaxPriority
	}
	return strings.Repeat("★", n) + strings.Repeat("☆", config.MaxPriority-n)
}

func formatPercent(p float64) string {
	return fmt.Sprintf("%3.0f%%", p*100)
}

// parseTaskInput splits "write report 25m" into its text and duration. A
// last word that is not a duration, or is a bare number, stays part of the
// text.
func parseTaskInput(input string) (string, int) {
	input = strings.TrimSpace(input)
	i := strings.LastIndexByte(input, ' ')
	if i < 0 {
		return input, 0
	}
	last := input[i+1:]
	if strings.Trim(last, "0123456789") == "" {
		return input, 0
	}
	secs, err := timing.ParseClock(last)
	if err != nil {
		return input, 0
	}
	return strings.TrimSpace(input[:i]), secs
}

// splitNameDuration parses "name duration" for presets. The duration is
// required.
func splitNameDuration(input string) (string, int, error) {
	input = strings.TrimSpace(input)
	i := strings.LastIndexByte(input, ' ')
	if i < 0 {
		secs, err := timing.ParseClock(input)
		return "", secs, err
	}
	secs, err := timing.ParseClock(input[i+1:])
	if err != nil {
		return "", 0, err
	}
	return strings.TrimSpace(input[:i]), secs, nil
}
