package tui

import (
	"strings"

	"github.com/akyairhashvil/tasktimer/internal/config"
	"github.com/charmbracelet/lipgloss"
)

func (m MainModel) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	var body string
	switch m.view {
	case ViewTasks:
		body = m.renderTasks()
	case ViewStopwatch:
		body = m.renderStopwatch()
	case ViewTimer:
		body = m.renderTimer()
	case ViewSettings:
		body = m.renderSettings()
	default:
		body = m.renderSessions()
	}

	sections := []string{m.renderTabs(), body}
	if m.inputFor != inputNone {
		sections = append(sections, CurrentTheme.Input.Render(m.textInput.View()))
	}
	sections = append(sections, m.renderFooter())
	return CurrentTheme.Base.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m MainModel) renderTabs() string {
	tabs := make([]string, 0, len(viewTitles))
	for i, title := range viewTitles {
		style := CurrentTheme.Tab
		if View(i) == m.view {
			style = CurrentTheme.ActiveTab
		}
		tabs = append(tabs, style.Render(title))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	if m.runner != nil && m.view != ViewSessions {
		snap := m.runner.Snapshot()
		row += CurrentTheme.Dim.Render("  " + snap.Interval.Name + " " + snap.State.String())
	}
	return row + "\n"
}

func (m MainModel) renderFooter() string {
	var b strings.Builder
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(CurrentTheme.Error.Render("Error: "+m.err.Error()) + "\n")
	} else if m.Message != "" {
		b.WriteString(CurrentTheme.Running.Render(m.Message) + "\n")
	}
	if m.inputFor != inputNone {
		b.WriteString(CurrentTheme.Dim.Render("[enter] confirm  [esc] cancel"))
		return b.String()
	}
	help := m.keys.HelpFor(m)
	if m.width > 4 {
		help = lipgloss.NewStyle().Width(m.width - 4).Render(help)
	}
	b.WriteString(CurrentTheme.Dim.Render(help))
	return b.String()
}

// titleWidth is the column width for names in lists.
func (m MainModel) titleWidth() int {
	w := m.width/2 - 8
	if w < config.MinTitleWidth {
		w = config.MinTitleWidth
	}
	if w > 48 {
		w = 48
	}
	return w
}

func keyDelta(key string) int {
	switch key {
	case "up", "k", "K", "shift+up":
		return -1
	case "down", "j", "J", "shift+down":
		return 1
	}
	return 0
}

// clampCursor keeps a list cursor inside [0, n); an empty list pins it to 0.
func clampCursor(i, n int) int {
	if n <= 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// windowStart is the first row shown when a list scrolls to keep sel
// visible.
func windowStart(n, sel int) int {
	if n <= config.MaxVisibleTasks || sel < config.MaxVisibleTasks {
		return 0
	}
	start := sel - config.MaxVisibleTasks + 1
	if start > n-config.MaxVisibleTasks {
		start = n - config.MaxVisibleTasks
	}
	return start
}

func visibleWindow[T any](items []T, sel int) []T {
	start := windowStart(len(items), sel)
	end := start + config.MaxVisibleTasks
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
