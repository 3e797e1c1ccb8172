package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/akyairhashvil/tasktimer/internal/models"
	"github.com/akyairhashvil/tasktimer/internal/tasks"
	"github.com/akyairhashvil/tasktimer/internal/timing"
	tea "github.com/charmbracelet/bubbletea"
)

func (m MainModel) handleTaskPoll() (tea.Model, tea.Cmd) {
	events, changed := m.sched.Poll()
	for _, ev := range events {
		if ev.Type == tasks.EventExpired {
			m.Message = fmt.Sprintf("Time's up: %s", ev.Text)
		}
	}
	if changed {
		m = m.saveTasks()
	}
	return m, taskPollCmd(m.cfg.TaskPollInterval)
}

func (m MainModel) selectedTask() (models.StandaloneTask, bool) {
	list := m.sched.Tasks()
	if m.taskCursor < 0 || m.taskCursor >= len(list) {
		return models.StandaloneTask{}, false
	}
	return list[m.taskCursor], true
}

func (m MainModel) handleTaskCursor(key string) (MainModel, tea.Cmd, bool) {
	m.taskCursor = clampCursor(m.taskCursor+keyDelta(key), len(m.sched.Tasks()))
	return m, nil, true
}

func (m MainModel) handleAddTask(string) (MainModel, tea.Cmd, bool) {
	return m.startInput(inputNewTask, "Task text, optionally ending in a duration (25m)", ""), nil, true
}

func (m MainModel) submitNewTask(value string) MainModel {
	text, secs := parseTaskInput(value)
	if _, err := m.sched.Add(text, secs, ""); err != nil {
		m.err = err
		return m
	}
	m.taskCursor = 0
	return m.saveTasks()
}

func (m MainModel) handleRenameTask(string) (MainModel, tea.Cmd, bool) {
	t, ok := m.selectedTask()
	if !ok {
		return m, nil, true
	}
	return m.startInput(inputRenameTask, "Task text", t.Text), nil, true
}

func (m MainModel) submitRenameTask(value string) MainModel {
	t, ok := m.selectedTask()
	if !ok {
		return m
	}
	if err := m.sched.Rename(t.ID, value); err != nil {
		m.err = err
		return m
	}
	return m.saveTasks()
}

// taskOp runs op on the selected task and persists on success.
func (m MainModel) taskOp(op func(id string) error) (MainModel, tea.Cmd, bool) {
	t, ok := m.selectedTask()
	if !ok {
		return m, nil, true
	}
	if err := op(t.ID); err != nil {
		m.err = err
		return m, nil, true
	}
	return m.saveTasks(), nil, true
}

func (m MainModel) handleToggleTaskRunning(string) (MainModel, tea.Cmd, bool) {
	return m.taskOp(m.sched.ToggleRunning)
}

func (m MainModel) handleToggleTaskStatus(string) (MainModel, tea.Cmd, bool) {
	return m.taskOp(m.sched.ToggleStatus)
}

func (m MainModel) handleDeleteTask(string) (MainModel, tea.Cmd, bool) {
	next, cmd, handled := m.taskOp(m.sched.Delete)
	next.taskCursor = clampCursor(next.taskCursor, len(next.sched.Tasks()))
	return next, cmd, handled
}

func (m MainModel) handleMoveTask(key string) (MainModel, tea.Cmd, bool) {
	t, ok := m.selectedTask()
	if !ok {
		return m, nil, true
	}
	moved, err := m.sched.Move(t.ID, keyDelta(key))
	if err != nil {
		m.err = err
		return m, nil, true
	}
	if !moved {
		return m, nil, true
	}
	m.taskCursor += keyDelta(key)
	return m.saveTasks(), nil, true
}

func (m MainModel) handleTaskPriority(key string) (MainModel, tea.Cmd, bool) {
	stars, err := strconv.Atoi(key)
	if err != nil {
		return m, nil, false
	}
	return m.taskOp(func(id string) error { return m.sched.SetPriority(id, stars) })
}

func (m MainModel) handleTaskSound(string) (MainModel, tea.Cmd, bool) {
	t, ok := m.selectedTask()
	if !ok {
		return m, nil, true
	}
	next := models.NextSound(t.SoundID.OrDefault(), 1)
	m.player.Play(next)
	return m.taskOp(func(id string) error { return m.sched.SetSound(id, next) })
}

func (m MainModel) renderTasks() string {
	var b strings.Builder
	list := m.sched.Tasks()
	b.WriteString(CurrentTheme.Header.Render("Tasks"))
	if len(list) > 0 {
		b.WriteString(CurrentTheme.Dim.Render("  " + formatPercent(m.sched.Progress()) + " done"))
	}
	b.WriteString("\n\n")
	if len(list) == 0 {
		b.WriteString(CurrentTheme.Dim.Render("No tasks. Press a to add one.") + "\n")
		return b.String()
	}
	width := m.titleWidth()
	start := windowStart(len(list), m.taskCursor)
	for i, t := range visibleWindow(list, m.taskCursor) {
		idx := start + i
		style := CurrentTheme.Task
		switch {
		case t.IsCompleted:
			style = CurrentTheme.Completed
		case t.IsRunning:
			style = CurrentTheme.Running
		}
		line := fmt.Sprintf("%s %-*s", checkbox(t.IsCompleted), width, truncateLabel(t.Text, width))
		if t.TotalSeconds > 0 {
			line += "  " + timing.FormatClock(t.RemainingSeconds)
		}
		row := cursor(idx == m.taskCursor) + style.Render(line)
		if m.settings.PriorityEnabled && t.Priority > 0 {
			row += " " + CurrentTheme.Priority.Render(FormatStars(t.Priority))
		}
		b.WriteString(row + "\n")
	}
	return b.String()
}
