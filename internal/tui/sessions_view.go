package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/tasktimer/internal/models"
	"github.com/akyairhashvil/tasktimer/internal/session"
	"github.com/akyairhashvil/tasktimer/internal/timing"
	tea "github.com/charmbracelet/bubbletea"
)

func (m MainModel) selectedSession() (models.Session, bool) {
	if m.sess.cursor < 0 || m.sess.cursor >= len(m.sessions) {
		return models.Session{}, false
	}
	return m.sessions[m.sess.cursor], true
}

// List

func (m MainModel) handleSessionCursor(key string) (MainModel, tea.Cmd, bool) {
	switch m.sess.mode {
	case modeList:
		m.sess.cursor = clampCursor(m.sess.cursor+keyDelta(key), len(m.sessions))
	case modePrepare, modeEdit:
		n := len(m.templateIntervals())
		m.sess.intervalCursor = clampCursor(m.sess.intervalCursor+keyDelta(key), n)
	case modeActive:
		if m.runner == nil {
			return m, nil, true
		}
		n := len(m.runner.Snapshot().Tasks)
		m.sess.taskCursor = clampCursor(m.sess.taskCursor+keyDelta(key), n)
	default:
		return m, nil, false
	}
	return m, nil, true
}

func (m MainModel) templateIntervals() []models.Interval {
	if m.sess.mode == modeEdit {
		return m.sess.draft.Intervals
	}
	return m.sess.template.Intervals
}

func (m MainModel) handleOpenSession(string) (MainModel, tea.Cmd, bool) {
	s, ok := m.selectedSession()
	if !ok {
		return m, nil, true
	}
	m.sess.template = s.Clone()
	m.sess.mode = modePrompt
	return m, nil, true
}

func (m MainModel) handleDeleteSession(string) (MainModel, tea.Cmd, bool) {
	s, ok := m.selectedSession()
	if !ok {
		return m, nil, true
	}
	m.sessions = session.Delete(m.sessions, s.ID)
	m.sess.cursor = clampCursor(m.sess.cursor, len(m.sessions))
	m.Message = fmt.Sprintf("Deleted %q", s.Name)
	return m.saveSessions(), nil, true
}

// Prompt and preparation

func (m MainModel) handlePrepare(string) (MainModel, tea.Cmd, bool) {
	m.sess.plan = session.PlanFromTemplate(m.sess.template)
	m.sess.opts = session.DefaultOptions()
	m.sess.intervalCursor = 0
	m.sess.mode = modePrepare
	return m, nil, true
}

func (m MainModel) handleStartNow(string) (MainModel, tea.Cmd, bool) {
	m.sess.opts = session.DefaultOptions()
	next, cmd := m.launch(session.Launch(m.sess.template))
	return next, cmd, true
}

func (m MainModel) handleLaunchPrepared(string) (MainModel, tea.Cmd, bool) {
	next, cmd := m.launch(session.Prepare(m.sess.template, m.sess.plan))
	return next, cmd, true
}

func (m MainModel) handleBackToList(string) (MainModel, tea.Cmd, bool) {
	m.sess.mode = modeList
	m.sess.plan = nil
	return m, nil, true
}

func (m MainModel) currentPlanInterval() (models.Interval, bool) {
	ivs := m.templateIntervals()
	if m.sess.intervalCursor < 0 || m.sess.intervalCursor >= len(ivs) {
		return models.Interval{}, false
	}
	return ivs[m.sess.intervalCursor], true
}

func (m MainModel) handlePlanAdd(string) (MainModel, tea.Cmd, bool) {
	iv, ok := m.currentPlanInterval()
	if !ok {
		return m, nil, true
	}
	return m.startInput(inputPlanTask, "Task for "+iv.Name, ""), nil, true
}

func (m MainModel) submitPlanTask(value string) MainModel {
	iv, ok := m.currentPlanInterval()
	if ok {
		m.sess.plan.Add(iv.ID, value)
	}
	return m
}

func (m MainModel) handlePlanRemove(string) (MainModel, tea.Cmd, bool) {
	iv, ok := m.currentPlanInterval()
	if ok {
		m.sess.plan.Remove(iv.ID, len(m.sess.plan[iv.ID])-1)
	}
	return m, nil, true
}

func (m MainModel) handleToggleOption(key string) (MainModel, tea.Cmd, bool) {
	switch key {
	case "o":
		m.sess.opts.SyncTasks = !m.sess.opts.SyncTasks
	case "r":
		m.sess.opts.RepeatTasks = !m.sess.opts.RepeatTasks
	case "p":
		m.sess.opts.TaskBasedProgress = !m.sess.opts.TaskBasedProgress
	}
	return m, nil, true
}

func (m MainModel) launch(s models.Session) (MainModel, tea.Cmd) {
	r, err := session.New(s, m.sess.opts, m.sessionPolicy(), m.clock, m.player)
	if err != nil {
		m.err = err
		return m, nil
	}
	m.runner = r
	m.sess.mode = modeActive
	m.sess.plan = nil
	m.sess.taskCursor = 0
	return m, sessionTickCmd(m.cfg.SessionPollInterval, r.Generation())
}

// Active runner

func (m MainModel) handleSessionTick(msg sessionTickMsg) (tea.Model, tea.Cmd) {
	if m.runner == nil || msg.gen != m.runner.Generation() {
		return m, nil
	}
	for _, ev := range m.runner.Tick() {
		switch ev.Type {
		case session.EventIntervalStarted:
			m.Message = ev.IntervalName + " started"
		case session.EventCycleStarted:
			m.Message = fmt.Sprintf("Cycle %d started", ev.Cycle)
		case session.EventCompleted:
			m.Message = "Session complete"
		}
	}
	if m.runner.State() != session.StateRunning {
		return m, nil
	}
	return m, sessionTickCmd(m.cfg.SessionPollInterval, m.runner.Generation())
}

// runnerOp applies op and starts a new tick chain when op reconfigured a
// running countdown.
func (m MainModel) runnerOp(op func(r *session.Runner)) (MainModel, tea.Cmd, bool) {
	if m.runner == nil {
		return m, nil, false
	}
	before := m.runner.Generation()
	op(m.runner)
	if m.runner.Generation() == before || m.runner.State() != session.StateRunning {
		return m, nil, true
	}
	return m, sessionTickCmd(m.cfg.SessionPollInterval, m.runner.Generation()), true
}

func (m MainModel) handleRunnerPause(string) (MainModel, tea.Cmd, bool) {
	return m.runnerOp((*session.Runner).TogglePause)
}

func (m MainModel) handleRunnerSkip(key string) (MainModel, tea.Cmd, bool) {
	if key == "b" || key == "left" {
		return m.runnerOp((*session.Runner).SkipBackward)
	}
	return m.runnerOp((*session.Runner).SkipForward)
}

func (m MainModel) handleRunnerReset(string) (MainModel, tea.Cmd, bool) {
	return m.runnerOp((*session.Runner).Reset)
}

func (m MainModel) handleRunnerQuit(string) (MainModel, tea.Cmd, bool) {
	if m.runner != nil {
		m.runner.Quit()
	}
	m.runner = nil
	m.sess.mode = modeList
	return m, nil, true
}

func (m MainModel) handleRunnerTask(string) (MainModel, tea.Cmd, bool) {
	if m.runner == nil {
		return m, nil, true
	}
	tasks := m.runner.Snapshot().Tasks
	if m.sess.taskCursor < 0 || m.sess.taskCursor >= len(tasks) {
		return m, nil, true
	}
	tv := tasks[m.sess.taskCursor]
	if err := m.runner.ToggleTask(tv.IntervalID, tv.Task.ID); err != nil {
		m.err = err
	}
	return m, nil, true
}

// Rendering

func (m MainModel) renderSessions() string {
	switch m.sess.mode {
	case modePrompt:
		return m.renderPrompt()
	case modePrepare:
		return m.renderPrepare()
	case modeActive:
		if m.runner != nil {
			return m.renderRunner()
		}
	case modeEdit:
		return m.renderEditor()
	}
	return m.renderSessionList()
}

func (m MainModel) renderSessionList() string {
	var b strings.Builder
	b.WriteString(CurrentTheme.Header.Render("Sessions") + "\n\n")
	if len(m.sessions) == 0 {
		b.WriteString(CurrentTheme.Dim.Render("No sessions yet. Press n to create one.") + "\n")
		return b.String()
	}
	nameWidth := m.titleWidth()
	for i, s := range m.sessions {
		name := truncateLabel(s.Name, nameWidth)
		line := fmt.Sprintf("%-*s  %d intervals  x%d  %s",
			nameWidth, name, len(s.Intervals), s.Cycles, timing.FormatShort(s.TotalDuration()))
		style := CurrentTheme.Task
		if i == m.sess.cursor {
			style = CurrentTheme.Focused
		}
		b.WriteString(cursor(i == m.sess.cursor) + style.Render(line) + "\n")
	}
	return b.String()
}

func (m MainModel) renderPrompt() string {
	var b strings.Builder
	b.WriteString(CurrentTheme.Header.Render("Start "+m.sess.template.Name) + "\n\n")
	b.WriteString("Assign tasks to intervals before starting?\n\n")
	b.WriteString(CurrentTheme.Dim.Render("[y] prepare tasks  [s] start now  [esc] cancel") + "\n")
	return b.String()
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func (m MainModel) renderPrepare() string {
	var b strings.Builder
	t := m.sess.template
	b.WriteString(CurrentTheme.Header.Render("Prepare "+t.Name) + "\n\n")
	progressMode := "time"
	if m.sess.opts.TaskBasedProgress {
		progressMode = "tasks"
	}
	b.WriteString(CurrentTheme.Dim.Render(fmt.Sprintf("[o] sync tasks: %s  [r] repeat tasks: %s  [p] progress: %s",
		onOff(m.sess.opts.SyncTasks), onOff(m.sess.opts.RepeatTasks), progressMode)) + "\n\n")
	for i, iv := range t.Intervals {
		header := fmt.Sprintf("%s (%s)", iv.Name, timing.FormatClock(iv.DurationSeconds))
		style := CurrentTheme.Task
		if i == m.sess.intervalCursor {
			style = CurrentTheme.Focused
		}
		b.WriteString(cursor(i == m.sess.intervalCursor) + style.Render(header) + "\n")
		for _, text := range m.sess.plan[iv.ID] {
			b.WriteString("    - " + truncateLabel(text, m.titleWidth()) + "\n")
		}
	}
	return b.String()
}

func (m MainModel) renderRunner() string {
	snap := m.runner.Snapshot()
	name := m.runner.Session().Name
	var b strings.Builder

	b.WriteString(CurrentTheme.Header.Render(name))
	b.WriteString(CurrentTheme.Dim.Render(fmt.Sprintf("  cycle %d/%d  interval %d/%d",
		snap.Cycle, snap.Cycles, snap.IntervalIndex+1, snap.IntervalCount)) + "\n\n")

	if snap.State == session.StateCompleted {
		b.WriteString(CurrentTheme.Running.Render("Session Complete") + "\n\n")
	} else {
		status := ""
		if snap.State == session.StatePaused {
			status = CurrentTheme.Dim.Render("  [paused]")
		}
		b.WriteString(CurrentTheme.Task.Render(snap.Interval.Name) + "  " +
			CurrentTheme.Timer.Render(timing.FormatClock(snap.TimeLeft)) + status + "\n\n")
	}

	label := "time"
	if snap.TaskProgress {
		label = fmt.Sprintf("tasks %d/%d", snap.CompletedTasks, snap.TotalTasks)
	}
	b.WriteString(m.progress.ViewAs(snap.Progress) + "  " + CurrentTheme.Dim.Render(label) + "\n")
	b.WriteString(CurrentTheme.Dim.Render(fmt.Sprintf("elapsed %s  remaining %s",
		timing.FormatClock(snap.TotalElapsed), timing.FormatClock(snap.TotalRemaining))) + "\n")
	if snap.NextInterval != nil {
		b.WriteString(CurrentTheme.Dim.Render(fmt.Sprintf("next: %s (%s)",
			snap.NextInterval.Name, timing.FormatClock(snap.NextInterval.DurationSeconds))) + "\n")
	}

	if len(snap.Tasks) > 0 {
		b.WriteString("\n")
		width := m.titleWidth()
		for i, tv := range visibleWindow(snap.Tasks, m.sess.taskCursor) {
			idx := i + windowStart(len(snap.Tasks), m.sess.taskCursor)
			style := CurrentTheme.Task
			switch {
			case tv.Task.IsCompleted:
				style = CurrentTheme.Completed
			case tv.Highlighted:
				style = CurrentTheme.Highlight
			}
			line := fmt.Sprintf("%s %s", checkbox(tv.Task.IsCompleted), truncateLabel(tv.Task.Text, width))
			b.WriteString(cursor(idx == m.sess.taskCursor) + style.Render(line) +
				CurrentTheme.Dim.Render("  "+tv.IntervalName) + "\n")
		}
	}
	return b.String()
}
