package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Tick messages carry the generation they were scheduled for. A handler
// drops any message whose generation no longer matches its source, so an
// old chain dies out as soon as the source is reconfigured.
type (
	taskPollMsg       struct{}
	sessionTickMsg    struct{ gen uint64 }
	presetTickMsg     struct{ gen uint64 }
	stopwatchFrameMsg struct{ gen uint64 }
)

func taskPollCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return taskPollMsg{} })
}

func sessionTickCmd(d time.Duration, gen uint64) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return sessionTickMsg{gen: gen} })
}

func presetTickCmd(d time.Duration, gen uint64) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return presetTickMsg{gen: gen} })
}

func stopwatchFrameCmd(d time.Duration, gen uint64) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return stopwatchFrameMsg{gen: gen} })
}
