package config

import "time"

// Poll cadences. Each timer surface samples its wall-clock target at this
// rate; displayed values are always recomputed from the target, never
// decremented.
const (
	TaskPollInterval       = 500 * time.Millisecond
	SessionPollInterval    = 200 * time.Millisecond
	PresetPollInterval     = 200 * time.Millisecond
	StopwatchFrameInterval = 16 * time.Millisecond
)

// SkipBackThreshold is how far into an interval a skip-back restarts the
// interval instead of moving to the previous one.
const SkipBackThreshold = 2 * time.Second

// Session editor bounds and defaults.
const (
	MinCycles              = 1
	MaxCycles              = 99
	DefaultIntervalName    = "Work"
	DefaultIntervalSeconds = 1500
	AddedIntervalSeconds   = 60
	MaxPriority            = 5
)

// Storage keys. The names match the blobs written by earlier releases so
// existing data keeps loading.
const (
	KeySessions        = "task-timer-sessions"
	KeyStandaloneTasks = "task-timer-standalone-tasks"
	KeyPresets         = "task-timer-presets"
	KeyAutoCheck       = "task-timer-auto-check"
	KeySkipSound       = "task-timer-skip-sound-enabled"
	KeyDefaultSound    = "task-timer-default-sound"
	KeyPriorityEnabled = "task-timer-priority-enabled"
)

// Database/application settings.
const (
	AppName        = "tasktimer"
	DBFileName     = "tasktimer.db"
	LogFileName    = "tasktimer.log"
	ConfigFileName = "config.yaml"
	EnvPrefix      = "TASKTIMER"
)
