package tui

import (
	"context"
	"fmt"

	"github.com/akyairhashvil/tasktimer/internal/config"
	"github.com/akyairhashvil/tasktimer/internal/database"
	"github.com/akyairhashvil/tasktimer/internal/models"
	"github.com/akyairhashvil/tasktimer/internal/preset"
	"github.com/akyairhashvil/tasktimer/internal/session"
	"github.com/akyairhashvil/tasktimer/internal/sound"
	"github.com/akyairhashvil/tasktimer/internal/tasks"
	"github.com/akyairhashvil/tasktimer/internal/timing"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type View int

const (
	ViewSessions View = iota
	ViewTasks
	ViewStopwatch
	ViewTimer
	ViewSettings
)

var viewTitles = []string{"Sessions", "Tasks", "Stopwatch", "Timer", "Settings"}

func (v View) String() string {
	if int(v) < len(viewTitles) {
		return viewTitles[v]
	}
	return "?"
}

type sessionMode int

const (
	modeList sessionMode = iota
	modePrompt
	modePrepare
	modeActive
	modeEdit
)

type sessionsState struct {
	mode   sessionMode
	cursor int

	// launch
	template       models.Session
	plan           session.Plan
	opts           session.Options
	intervalCursor int
	taskCursor     int

	// editor
	draft models.Session
	isNew bool
}

type inputPurpose int

const (
	inputNone inputPurpose = iota
	inputNewTask
	inputRenameTask
	inputPlanTask
	inputSessionName
	inputIntervalName
	inputIntervalDuration
	inputTemplateTask
	inputManualTimer
	inputSavePreset
)

// Deps are the collaborators the model works against.
type Deps struct {
	Repo   *database.Repository
	Clock  timing.Clock
	Player sound.Player
	Config *config.Config
}

type MainModel struct {
	repo   *database.Repository
	clock  timing.Clock
	player sound.Player
	cfg    *config.Config
	keys   *HandlerRegistry

	view     View
	settings models.Settings

	sessions []models.Session
	sess     sessionsState
	runner   *session.Runner
	progress progress.Model

	sched      *tasks.Scheduler
	taskCursor int

	stopwatch *timing.Stopwatch
	swGen     uint64

	timer        *preset.Timer
	presets      []models.TimerPreset
	presetCursor int

	settingsCursor int

	textInput textinput.Model
	inputFor  inputPurpose

	width, height int
	Message       string
	err           error
}

// NewMainModel loads persisted state and restores running task timers.
func NewMainModel(ctx context.Context, deps Deps) (MainModel, error) {
	if deps.Clock == nil {
		deps.Clock = timing.SystemClock
	}
	if deps.Player == nil {
		deps.Player = sound.Nop
	}
	if deps.Config == nil {
		deps.Config = config.DefaultConfig("")
	}

	settings, err := deps.Repo.LoadSettings(ctx)
	if err != nil {
		return MainModel{}, fmt.Errorf("load settings: %w", err)
	}
	sessions, err := deps.Repo.LoadSessions(ctx)
	if err != nil {
		return MainModel{}, fmt.Errorf("load sessions: %w", err)
	}
	saved, err := deps.Repo.LoadTasks(ctx)
	if err != nil {
		return MainModel{}, fmt.Errorf("load tasks: %w", err)
	}
	presets, err := deps.Repo.LoadPresets(ctx)
	if err != nil {
		return MainModel{}, fmt.Errorf("load presets: %w", err)
	}

	sched := tasks.NewScheduler(deps.Clock, deps.Player, tasks.PolicyFromSettings(settings))
	sched.Restore(saved)

	ti := textinput.New()
	ti.CharLimit = config.MaxTitleLength
	ti.Width = 40

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = config.ProgressBarWidth

	SetTheme(deps.Config.Theme)

	m := MainModel{
		repo:      deps.Repo,
		clock:     deps.Clock,
		player:    deps.Player,
		cfg:       deps.Config,
		keys:      newKeyRegistry(),
		settings:  settings,
		sessions:  sessions,
		sess:      sessionsState{opts: session.DefaultOptions()},
		progress:  prog,
		sched:     sched,
		stopwatch: &timing.Stopwatch{},
		timer:     preset.NewTimer(deps.Clock, deps.Player, settings.DefaultSound),
		presets:   presets,
		textInput: ti,
	}
	// Restore may have stopped exhausted tasks.
	m = m.saveTasks()
	return m, nil
}

func (m MainModel) Init() tea.Cmd {
	return taskPollCmd(m.cfg.TaskPollInterval)
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg), nil
	case taskPollMsg:
		return m.handleTaskPoll()
	case sessionTickMsg:
		return m.handleSessionTick(msg)
	case presetTickMsg:
		return m.handlePresetTick(msg)
	case stopwatchFrameMsg:
		return m.handleStopwatchFrame(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	if m.inputFor != inputNone {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m MainModel) handleWindowSize(msg tea.WindowSizeMsg) MainModel {
	m.width = msg.Width
	m.height = msg.Height
	w := msg.Width - 10
	if w > config.ProgressBarWidth {
		w = config.ProgressBarWidth
	}
	if w < 10 {
		w = 10
	}
	m.progress.Width = w
	return m
}

func (m MainModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if m.inputFor != inputNone {
		return m.handleInputKey(msg)
	}
	m.Message = ""
	m.err = nil
	if next, cmd, handled := m.keys.Handle(m, msg.String()); handled {
		return next, cmd
	}
	return m, nil
}

func (m MainModel) startInput(purpose inputPurpose, placeholder, value string) MainModel {
	m.inputFor = purpose
	m.textInput.Placeholder = placeholder
	m.textInput.SetValue(value)
	m.textInput.CursorEnd()
	m.textInput.Focus()
	return m
}

func (m MainModel) stopInput() MainModel {
	m.inputFor = inputNone
	m.textInput.Blur()
	m.textInput.SetValue("")
	return m
}

func (m MainModel) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		return m.stopInput(), nil
	case tea.KeyEnter:
		value := m.textInput.Value()
		purpose := m.inputFor
		m = m.stopInput()
		return m.submitInput(purpose, value)
	}
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m MainModel) submitInput(purpose inputPurpose, value string) (MainModel, tea.Cmd) {
	switch purpose {
	case inputNewTask:
		return m.submitNewTask(value), nil
	case inputRenameTask:
		return m.submitRenameTask(value), nil
	case inputPlanTask:
		return m.submitPlanTask(value), nil
	case inputSessionName:
		m.sess.draft.Name = value
		return m, nil
	case inputIntervalName:
		return m.submitIntervalName(value), nil
	case inputIntervalDuration:
		return m.submitIntervalDuration(value), nil
	case inputTemplateTask:
		return m.submitTemplateTask(value), nil
	case inputManualTimer:
		return m.submitManualTimer(value)
	case inputSavePreset:
		return m.submitSavePreset(value), nil
	}
	return m, nil
}

func (m MainModel) switchView(delta int) MainModel {
	n := len(viewTitles)
	m.view = View((int(m.view) + delta + n) % n)
	return m
}
