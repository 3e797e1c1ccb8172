package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/tasktimer/internal/config"
	"github.com/akyairhashvil/tasktimer/internal/models"
	"github.com/akyairhashvil/tasktimer/internal/session"
	"github.com/akyairhashvil/tasktimer/internal/timing"
	"github.com/akyairhashvil/tasktimer/internal/util"
	tea "github.com/charmbracelet/bubbletea"
)

func (m MainModel) handleNewSession(string) (MainModel, tea.Cmd, bool) {
	m.sess.draft = session.NewSession("")
	m.sess.isNew = true
	m.sess.intervalCursor = 0
	m.sess.mode = modeEdit
	return m.startInput(inputSessionName, "Session name", ""), nil, true
}

func (m MainModel) handleEditSession(string) (MainModel, tea.Cmd, bool) {
	s, ok := m.selectedSession()
	if !ok {
		return m, nil, true
	}
	m.sess.draft = s.Clone()
	m.sess.isNew = false
	m.sess.intervalCursor = 0
	m.sess.mode = modeEdit
	return m, nil, true
}

func (m MainModel) draftInterval() (*models.Interval, bool) {
	ivs := m.sess.draft.Intervals
	if m.sess.intervalCursor < 0 || m.sess.intervalCursor >= len(ivs) {
		return nil, false
	}
	return &m.sess.draft.Intervals[m.sess.intervalCursor], true
}

func (m MainModel) handleEditorKey(key string) (MainModel, tea.Cmd, bool) {
	d := &m.sess.draft
	iv, ok := m.draftInterval()
	switch key {
	case "n":
		return m.startInput(inputSessionName, "Session name", d.Name), nil, true
	case "+", "=":
		d.Cycles = session.ClampCycles(d.Cycles + 1)
	case "-":
		d.Cycles = session.ClampCycles(d.Cycles - 1)
	case "a":
		session.AddInterval(d)
		m.sess.intervalCursor = len(d.Intervals) - 1
	case "d":
		if ok && !session.RemoveInterval(d, iv.ID) {
			m.Message = "A session needs at least one interval"
		}
		m.sess.intervalCursor = clampCursor(m.sess.intervalCursor, len(d.Intervals))
	case "c":
		if ok {
			if _, dup := session.DuplicateInterval(d, iv.ID); dup {
				m.sess.intervalCursor++
			}
		}
	case "K", "J":
		if ok && session.MoveInterval(d, iv.ID, keyDelta(key)) {
			m.sess.intervalCursor += keyDelta(key)
		}
	case "]", "[":
		if ok {
			step := config.AddedIntervalSeconds
			if key == "[" {
				step = -step
			}
			iv.DurationSeconds = util.Clamp(iv.DurationSeconds+step, 0, 24*3600-1)
		}
	case "s":
		if ok {
			iv.SoundID = models.NextSound(iv.SoundID, 1)
			m.player.Play(iv.SoundID)
		}
	case "r":
		if ok {
			return m.startInput(inputIntervalName, "Interval name", iv.Name), nil, true
		}
	case "t":
		if ok {
			return m.startInput(inputIntervalDuration, "HH:MM:SS or 25m", timing.FormatClock(iv.DurationSeconds)), nil, true
		}
	case "T":
		if ok {
			return m.startInput(inputTemplateTask, "Task for "+iv.Name, ""), nil, true
		}
	case "X":
		if ok && len(iv.Tasks) > 0 {
			iv.Tasks = iv.Tasks[:len(iv.Tasks)-1]
		}
	default:
		return m, nil, false
	}
	return m, nil, true
}

func (m MainModel) submitIntervalName(value string) MainModel {
	if iv, ok := m.draftInterval(); ok {
		iv.Name = strings.TrimSpace(value)
	}
	return m
}

func (m MainModel) submitIntervalDuration(value string) MainModel {
	secs, err := timing.ParseClock(value)
	if err != nil {
		m.err = err
		return m
	}
	if iv, ok := m.draftInterval(); ok {
		iv.DurationSeconds = secs
	}
	return m
}

func (m MainModel) submitTemplateTask(value string) MainModel {
	if iv, ok := m.draftInterval(); ok {
		session.AddTemplateTask(&m.sess.draft, iv.ID, value)
	}
	return m
}

func (m MainModel) handleSaveSession(string) (MainModel, tea.Cmd, bool) {
	draft := session.Normalize(m.sess.draft)
	if err := session.Validate(draft); err != nil {
		m.err = err
		return m, nil, true
	}
	m.sessions = session.Upsert(m.sessions, draft)
	for i := range m.sessions {
		if m.sessions[i].ID == draft.ID {
			m.sess.cursor = i
		}
	}
	m.sess.mode = modeList
	m.Message = fmt.Sprintf("Saved %q", draft.Name)
	return m.saveSessions(), nil, true
}

func (m MainModel) handleCancelEdit(string) (MainModel, tea.Cmd, bool) {
	m.sess.draft = models.Session{}
	m.sess.mode = modeList
	return m, nil, true
}

func (m MainModel) renderEditor() string {
	d := m.sess.draft
	var b strings.Builder
	title := "Edit Session"
	if m.sess.isNew {
		title = "New Session"
	}
	name := d.Name
	if strings.TrimSpace(name) == "" {
		name = CurrentTheme.Dim.Render("(unnamed)")
	}
	b.WriteString(CurrentTheme.Header.Render(title) + "\n\n")
	b.WriteString(fmt.Sprintf("Name: %s   Cycles: %d   Total: %s\n\n",
		name, d.Cycles, timing.FormatClock(d.TotalDuration())))

	compact := m.width > 0 && m.width < config.CompactModeThreshold
	width := m.titleWidth()
	for i, iv := range d.Intervals {
		selected := i == m.sess.intervalCursor
		style := CurrentTheme.Task
		if selected {
			style = CurrentTheme.Focused
		}
		line := fmt.Sprintf("%-*s %s", width, truncateLabel(iv.Name, width), timing.FormatClock(iv.DurationSeconds))
		if !compact {
			line += fmt.Sprintf("  %s  %d tasks", iv.SoundID.Name(), len(iv.Tasks))
		}
		b.WriteString(cursor(selected) + style.Render(line) + "\n")
		if selected && !compact {
			for _, t := range iv.Tasks {
				b.WriteString("    - " + truncateLabel(t.Text, width) + "\n")
			}
		}
	}
	return b.String()
}
