package config

// Layout constants.
const (
	// CompactModeThreshold triggers compact rendering below this width.
	CompactModeThreshold = 60

	// ProgressBarWidth is the width of the session progress bar.
	ProgressBarWidth = 40

	// MinTitleWidth is the minimum width for task and interval names.
	MinTitleWidth = 10
)

// Display limits.
const (
	// MaxVisibleTasks limits rows shown in a task list before scrolling.
	MaxVisibleTasks = 15

	// MaxVisibleLaps limits stopwatch laps shown.
	MaxVisibleLaps = 10

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "..."
)

// Input constraints.
const (
	// MaxTitleLength is the maximum task, interval or preset name length.
	MaxTitleLength = 100
)
