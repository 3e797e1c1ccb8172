package tui

import (
	"strconv"

	"github.com/akyairhashvil/tasktimer/internal/session"
	tea "github.com/charmbracelet/bubbletea"
)

func modeIs(modes ...sessionMode) func(MainModel) bool {
	return func(m MainModel) bool {
		for _, mode := range modes {
			if m.sess.mode == mode {
				return true
			}
		}
		return false
	}
}

func runnerLive(m MainModel) bool {
	return m.sess.mode == modeActive && m.runner != nil && m.runner.State() != session.StateCompleted
}

func runnerDone(m MainModel) bool {
	return m.sess.mode == modeActive && (m.runner == nil || m.runner.State() == session.StateCompleted)
}

func priorityEnabled(m MainModel) bool { return m.settings.PriorityEnabled }

type bindingSet struct {
	r     *HandlerRegistry
	views []View
	when  func(MainModel) bool
	prio  int
}

func (s bindingSet) add(desc string, h KeyHandler, keys ...string) {
	for _, k := range keys {
		s.r.Register(KeyBinding{Key: k, Handler: h, Description: desc, Views: s.views, When: s.when, Priority: s.prio})
	}
}

func newKeyRegistry() *HandlerRegistry {
	r := NewHandlerRegistry()
	registerGlobalKeys(r)
	registerSessionKeys(r)
	registerTaskKeys(r)
	registerStopwatchKeys(r)
	registerTimerKeys(r)
	registerSettingsKeys(r)
	return r
}

func registerGlobalKeys(r *HandlerRegistry) {
	g := bindingSet{r: r}
	g.add("view", func(m MainModel, key string) (MainModel, tea.Cmd, bool) {
		if key == "shift+tab" {
			return m.switchView(-1), nil, true
		}
		return m.switchView(1), nil, true
	}, "tab", "shift+tab")
	g.add("", func(m MainModel, key string) (MainModel, tea.Cmd, bool) {
		n, _ := strconv.Atoi(key)
		m.view = View(n - 1)
		return m, nil, true
	}, "1", "2", "3", "4", "5")

	quit := bindingSet{r: r, when: func(m MainModel) bool {
		return m.view != ViewSessions || m.sess.mode == modeList
	}}
	quit.add("quit", func(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
		return m, tea.Quit, true
	}, "q")
}

func registerSessionKeys(r *HandlerRegistry) {
	views := []View{ViewSessions}
	bindingSet{r: r, views: views, when: modeIs(modeList, modePrepare, modeEdit, modeActive), prio: 5}.
		add("", MainModel.handleSessionCursor, "up", "k", "down", "j")

	list := bindingSet{r: r, views: views, when: modeIs(modeList), prio: 10}
	list.add("start", MainModel.handleOpenSession, "enter")
	list.add("new", MainModel.handleNewSession, "n")
	list.add("edit", MainModel.handleEditSession, "e")
	list.add("delete", MainModel.handleDeleteSession, "d")

	prompt := bindingSet{r: r, views: views, when: modeIs(modePrompt), prio: 10}
	prompt.add("prepare tasks", MainModel.handlePrepare, "y", "enter")
	prompt.add("start now", MainModel.handleStartNow, "s")
	prompt.add("cancel", MainModel.handleBackToList, "esc")

	prep := bindingSet{r: r, views: views, when: modeIs(modePrepare), prio: 10}
	prep.add("add task", MainModel.handlePlanAdd, "a")
	prep.add("remove task", MainModel.handlePlanRemove, "x")
	prep.add("sync", MainModel.handleToggleOption, "o")
	prep.add("repeat", MainModel.handleToggleOption, "r")
	prep.add("progress", MainModel.handleToggleOption, "p")
	prep.add("start", MainModel.handleLaunchPrepared, "enter")
	prep.add("cancel", MainModel.handleBackToList, "esc")

	live := bindingSet{r: r, views: views, when: runnerLive, prio: 10}
	live.add("pause", MainModel.handleRunnerPause, " ")
	live.add("skip", MainModel.handleRunnerSkip, "n", "right")
	live.add("back", MainModel.handleRunnerSkip, "b", "left")
	live.add("reset", MainModel.handleRunnerReset, "r")
	live.add("toggle task", MainModel.handleRunnerTask, "x")
	live.add("stop", MainModel.handleRunnerQuit, "q", "esc")

	done := bindingSet{r: r, views: views, when: runnerDone, prio: 10}
	done.add("toggle task", MainModel.handleRunnerTask, "x")
	done.add("close", MainModel.handleRunnerQuit, "enter", "q", "esc")

	edit := bindingSet{r: r, views: views, when: modeIs(modeEdit), prio: 10}
	editKey := func(m MainModel, key string) (MainModel, tea.Cmd, bool) { return m.handleEditorKey(key) }
	edit.add("name", editKey, "n")
	edit.add("cycles", editKey, "+", "=", "-")
	edit.add("add", editKey, "a")
	edit.add("delete", editKey, "d")
	edit.add("duplicate", editKey, "c")
	edit.add("move", editKey, "K", "J")
	edit.add("duration", editKey, "]", "[", "t")
	edit.add("rename", editKey, "r")
	edit.add("sound", editKey, "s")
	edit.add("task", editKey, "T")
	edit.add("drop task", editKey, "X")
	edit.add("save", MainModel.handleSaveSession, "ctrl+s")
	edit.add("cancel", MainModel.handleCancelEdit, "esc")
}

func registerTaskKeys(r *HandlerRegistry) {
	t := bindingSet{r: r, views: []View{ViewTasks}, prio: 5}
	t.add("", MainModel.handleTaskCursor, "up", "k", "down", "j")
	t.add("add", MainModel.handleAddTask, "a")
	t.add("run", MainModel.handleToggleTaskRunning, " ")
	t.add("done", MainModel.handleToggleTaskStatus, "x", "enter")
	t.add("rename", MainModel.handleRenameTask, "e")
	t.add("move", MainModel.handleMoveTask, "K", "J")
	t.add("sound", MainModel.handleTaskSound, "s")
	t.add("delete", MainModel.handleDeleteTask, "d")

	p := bindingSet{r: r, views: []View{ViewTasks}, when: priorityEnabled, prio: 10}
	p.add("priority", MainModel.handleTaskPriority, "1", "2", "3", "4", "5")
}

func registerStopwatchKeys(r *HandlerRegistry) {
	s := bindingSet{r: r, views: []View{ViewStopwatch}, prio: 5}
	s.add("start/pause", MainModel.handleStopwatchToggle, " ")
	s.add("lap", MainModel.handleStopwatchLap, "l")
	s.add("reset", MainModel.handleStopwatchReset, "r")
}

func registerTimerKeys(r *HandlerRegistry) {
	t := bindingSet{r: r, views: []View{ViewTimer}, prio: 5}
	t.add("", MainModel.handlePresetCursor, "up", "k", "down", "j")
	t.add("use", MainModel.handleUsePreset, "enter")
	t.add("manual", MainModel.handleManualTimer, "m")
	t.add("save preset", MainModel.handleSavePreset, "s")
	t.add("delete", MainModel.handleDeletePreset, "d")
	t.add("pause", MainModel.handleTimerPause, " ")
	t.add("reset", MainModel.handleTimerReset, "r")
}

func registerSettingsKeys(r *HandlerRegistry) {
	s := bindingSet{r: r, views: []View{ViewSettings}, prio: 5}
	s.add("", MainModel.handleSettingsCursor, "up", "k", "down", "j")
	s.add("change", MainModel.handleSettingsChange, " ", "enter", "left", "right", "h", "l")
}
