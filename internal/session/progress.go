package session

import "github.com/akyairhashvil/tasktimer/internal/models"

// TaskView is a task in the aggregated list, tagged with its interval.
type TaskView struct {
	models.Task
	IntervalID   string
	IntervalName string
	// Highlighted marks tasks of the current interval when tasks are synced.
	Highlighted bool
}

// Snapshot is the read-only view of a runner at the last sample.
type Snapshot struct {
	State         State
	Cycle         int
	Cycles        int
	IntervalIndex int
	IntervalCount int
	Interval      models.Interval
	NextInterval  *models.Interval
	TimeLeft      int

	TotalDuration  int
	TotalElapsed   int
	TotalRemaining int

	// Progress is in [0,1]. TaskProgress reports whether it was derived from
	// task completion rather than elapsed time.
	Progress     float64
	TaskProgress bool

	CompletedTasks int
	TotalTasks     int
	Tasks          []TaskView
}

// Snapshot computes progress and the aggregated task list.
func (r *Runner) Snapshot() Snapshot {
	cur := r.current()
	timeLeft := r.countdown.Remaining()
	snap := Snapshot{
		State:         r.state,
		Cycle:         r.cycle,
		Cycles:        r.session.Cycles,
		IntervalIndex: r.index,
		IntervalCount: len(r.session.Intervals),
		Interval:      cur.Clone(),
		TimeLeft:      timeLeft,
	}
	if next, ok := r.peekNext(); ok {
		snap.NextInterval = &next
	}

	cycleDuration := r.session.CycleDuration()
	total := cycleDuration * r.session.Cycles
	elapsed := (r.cycle-1)*cycleDuration + (cur.DurationSeconds - timeLeft)
	for _, iv := range r.session.Intervals[:r.index] {
		elapsed += iv.DurationSeconds
	}
	if r.state == StateCompleted || elapsed > total {
		elapsed = total
	}
	if elapsed < 0 {
		elapsed = 0
	}
	snap.TotalDuration = total
	snap.TotalElapsed = elapsed
	snap.TotalRemaining = total - elapsed

	snap.Tasks = r.aggregatedTasks()
	snap.TotalTasks = len(snap.Tasks)
	for _, t := range snap.Tasks {
		if t.IsCompleted {
			snap.CompletedTasks++
		}
	}

	switch {
	case r.opts.TaskBasedProgress && snap.TotalTasks > 0:
		snap.TaskProgress = true
		snap.Progress = float64(snap.CompletedTasks) / float64(snap.TotalTasks)
	case total > 0:
		snap.Progress = float64(elapsed) / float64(total)
	case r.state == StateCompleted:
		snap.Progress = 1
	}
	return snap
}

func (r *Runner) aggregatedTasks() []TaskView {
	cur := r.current()
	var out []TaskView
	for _, iv := range r.session.Intervals {
		for _, t := range iv.Tasks {
			out = append(out, TaskView{
				Task:         t,
				IntervalID:   iv.ID,
				IntervalName: iv.Name,
				Highlighted:  r.opts.SyncTasks && iv.ID == cur.ID,
			})
		}
	}
	return out
}

// peekNext returns the interval a skip forward would land on.
func (r *Runner) peekNext() (models.Interval, bool) {
	if r.atEnd() || r.state == StateCompleted || r.state == StateIdle {
		return models.Interval{}, false
	}
	if r.index < len(r.session.Intervals)-1 {
		return r.session.Intervals[r.index+1].Clone(), true
	}
	return r.session.Intervals[0].Clone(), true
}
