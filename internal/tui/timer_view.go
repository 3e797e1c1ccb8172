package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/tasktimer/internal/config"
	"github.com/akyairhashvil/tasktimer/internal/models"
	"github.com/akyairhashvil/tasktimer/internal/preset"
	"github.com/akyairhashvil/tasktimer/internal/timing"
	tea "github.com/charmbracelet/bubbletea"
)

func (m MainModel) handlePresetTick(msg presetTickMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.timer.Generation() {
		return m, nil
	}
	if m.timer.Tick() {
		m.Message = "Timer Finished"
		return m, nil
	}
	if !m.timer.Active() {
		return m, nil
	}
	return m, presetTickCmd(config.PresetPollInterval, m.timer.Generation())
}

// timerOp applies op and schedules a tick for a countdown it (re)started.
func (m MainModel) timerOp(op func() error) (MainModel, tea.Cmd) {
	before := m.timer.Generation()
	if err := op(); err != nil {
		m.err = err
		return m, nil
	}
	if m.timer.Generation() == before || !m.timer.Active() {
		return m, nil
	}
	return m, presetTickCmd(config.PresetPollInterval, m.timer.Generation())
}

func (m MainModel) selectedPreset() (models.TimerPreset, bool) {
	if m.presetCursor < 0 || m.presetCursor >= len(m.presets) {
		return models.TimerPreset{}, false
	}
	return m.presets[m.presetCursor], true
}

func (m MainModel) handlePresetCursor(key string) (MainModel, tea.Cmd, bool) {
	m.presetCursor = clampCursor(m.presetCursor+keyDelta(key), len(m.presets))
	return m, nil, true
}

func (m MainModel) handleUsePreset(string) (MainModel, tea.Cmd, bool) {
	p, ok := m.selectedPreset()
	if !ok {
		return m, nil, true
	}
	next, cmd := m.timerOp(func() error { return m.timer.Use(p) })
	return next, cmd, true
}

func (m MainModel) handleManualTimer(string) (MainModel, tea.Cmd, bool) {
	return m.startInput(inputManualTimer, "HH:MM:SS or 10m", ""), nil, true
}

func (m MainModel) submitManualTimer(value string) (MainModel, tea.Cmd) {
	secs, err := timing.ParseClock(value)
	if err != nil {
		m.err = err
		return m, nil
	}
	return m.timerOp(func() error { return m.timer.StartManual(secs) })
}

func (m MainModel) handleSavePreset(string) (MainModel, tea.Cmd, bool) {
	return m.startInput(inputSavePreset, "Name and duration, e.g. Tea 3m", ""), nil, true
}

func (m MainModel) submitSavePreset(value string) MainModel {
	name, secs, err := splitNameDuration(value)
	if err != nil {
		m.err = err
		return m
	}
	p, err := preset.NewPreset(name, secs)
	if err != nil {
		m.err = err
		return m
	}
	m.presets = preset.Add(m.presets, p)
	m.presetCursor = len(m.presets) - 1
	return m.savePresets()
}

func (m MainModel) handleDeletePreset(string) (MainModel, tea.Cmd, bool) {
	p, ok := m.selectedPreset()
	if !ok {
		return m, nil, true
	}
	m.presets = preset.Delete(m.presets, p.ID)
	m.presetCursor = clampCursor(m.presetCursor, len(m.presets))
	return m.savePresets(), nil, true
}

func (m MainModel) handleTimerPause(string) (MainModel, tea.Cmd, bool) {
	next, cmd := m.timerOp(func() error { m.timer.TogglePause(); return nil })
	return next, cmd, true
}

func (m MainModel) handleTimerReset(string) (MainModel, tea.Cmd, bool) {
	m.timer.Reset()
	return m, nil, true
}

func (m MainModel) renderTimer() string {
	var b strings.Builder
	b.WriteString(CurrentTheme.Header.Render("Timer") + "\n\n")

	switch {
	case m.timer.Finished():
		b.WriteString(CurrentTheme.Running.Render("Timer Finished") + "\n\n")
	case m.timer.Active() || m.timer.Paused():
		label := m.timer.Label()
		if label != "" {
			label += "  "
		}
		status := ""
		if m.timer.Paused() {
			status = CurrentTheme.Dim.Render("  [paused]")
		}
		b.WriteString(label + CurrentTheme.Timer.Render(timing.FormatClock(m.timer.Remaining())) + status + "\n\n")
	default:
		b.WriteString(CurrentTheme.Dim.Render("Pick a preset or press m for a manual duration.") + "\n\n")
	}

	if len(m.presets) == 0 {
		b.WriteString(CurrentTheme.Dim.Render("No presets saved.") + "\n")
		return b.String()
	}
	width := m.titleWidth()
	for i, p := range m.presets {
		selected := i == m.presetCursor
		style := CurrentTheme.Task
		if selected {
			style = CurrentTheme.Focused
		}
		line := fmt.Sprintf("%-*s %s", width, truncateLabel(p.Name, width), timing.FormatClock(p.DurationSeconds))
		b.WriteString(cursor(selected) + style.Render(line) + "\n")
	}
	return b.String()
}
