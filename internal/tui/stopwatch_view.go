package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/tasktimer/internal/config"
	"github.com/akyairhashvil/tasktimer/internal/timing"
	tea "github.com/charmbracelet/bubbletea"
)

func (m MainModel) handleStopwatchFrame(msg stopwatchFrameMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.swGen || !m.stopwatch.Running() {
		return m, nil
	}
	return m, stopwatchFrameCmd(config.StopwatchFrameInterval, m.swGen)
}

func (m MainModel) handleStopwatchToggle(string) (MainModel, tea.Cmd, bool) {
	m.stopwatch.Toggle(m.clock.Now())
	m.swGen++
	if !m.stopwatch.Running() {
		return m, nil, true
	}
	return m, stopwatchFrameCmd(config.StopwatchFrameInterval, m.swGen), true
}

func (m MainModel) handleStopwatchLap(string) (MainModel, tea.Cmd, bool) {
	m.stopwatch.Lap(m.clock.Now())
	return m, nil, true
}

func (m MainModel) handleStopwatchReset(string) (MainModel, tea.Cmd, bool) {
	m.stopwatch.Reset()
	m.swGen++
	return m, nil, true
}

func (m MainModel) renderStopwatch() string {
	var b strings.Builder
	now := m.clock.Now()
	b.WriteString(CurrentTheme.Header.Render("Stopwatch") + "\n\n")
	b.WriteString(CurrentTheme.Timer.Render(timing.FormatStopwatch(m.stopwatch.Elapsed(now))))
	if !m.stopwatch.Running() && m.stopwatch.Elapsed(now) > 0 {
		b.WriteString(CurrentTheme.Dim.Render("  [paused]"))
	}
	b.WriteString("\n\n")
	laps := m.stopwatch.Laps()
	for i, lap := range laps {
		if i >= config.MaxVisibleLaps {
			b.WriteString(CurrentTheme.Dim.Render(fmt.Sprintf("  ... %d more", len(laps)-i)) + "\n")
			break
		}
		b.WriteString(fmt.Sprintf("  Lap %-3d %s\n", len(laps)-i, timing.FormatStopwatch(lap)))
	}
	return b.String()
}
