package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/tasktimer/internal/models"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	settingAutoCheck = iota
	settingSkipSound
	settingDefaultSound
	settingPriority
	settingCount
)

func (m MainModel) handleSettingsCursor(key string) (MainModel, tea.Cmd, bool) {
	m.settingsCursor = clampCursor(m.settingsCursor+keyDelta(key), settingCount)
	return m, nil, true
}

// handleSettingsChange toggles the selected flag, or steps the default
// sound and previews it.
func (m MainModel) handleSettingsChange(key string) (MainModel, tea.Cmd, bool) {
	switch m.settingsCursor {
	case settingAutoCheck:
		m.settings.AutoCheck = !m.settings.AutoCheck
	case settingSkipSound:
		m.settings.SkipSound = !m.settings.SkipSound
	case settingPriority:
		m.settings.PriorityEnabled = !m.settings.PriorityEnabled
	case settingDefaultSound:
		step := 1
		if key == "left" || key == "h" {
			step = -1
		}
		m.settings.DefaultSound = models.NextSound(m.settings.DefaultSound, step)
		m.player.Play(m.settings.DefaultSound)
	}
	return m.saveSettings(), nil, true
}

func (m MainModel) renderSettings() string {
	rows := []string{
		fmt.Sprintf("Auto-check tasks when a timer ends   %s", onOff(m.settings.AutoCheck)),
		fmt.Sprintf("Play sound when skipping intervals   %s", onOff(m.settings.SkipSound)),
		fmt.Sprintf("Default sound                        < %s >", m.settings.DefaultSound.Name()),
		fmt.Sprintf("Task priorities                      %s", onOff(m.settings.PriorityEnabled)),
	}
	var b strings.Builder
	b.WriteString(CurrentTheme.Header.Render("Settings") + "\n\n")
	for i, row := range rows {
		style := CurrentTheme.Task
		if i == m.settingsCursor {
			style = CurrentTheme.Focused
		}
		b.WriteString(cursor(i == m.settingsCursor) + style.Render(row) + "\n")
	}
	return b.String()
}
