package tasks

import (
	"sync"
	"time"

	"github.com/akyairhashvil/tasktimer/internal/models"
	"github.com/akyairhashvil/tasktimer/internal/util"
)

// PersistFunc stores the task list after it changes.
type PersistFunc func(tasks []models.StandaloneTask) error

// BackgroundRunner polls a Scheduler on its own goroutine, for use outside
// the TUI event loop. Every access to the scheduler goes through the
// runner's mutex.
type BackgroundRunner struct {
	mu       sync.Mutex
	sched    *Scheduler
	interval time.Duration
	persist  PersistFunc
	events   []chan Event
	stopCh   chan struct{}
	doneCh   chan struct{}
	running  bool
}

// NewBackgroundRunner wraps sched. persist may be nil.
func NewBackgroundRunner(sched *Scheduler, interval time.Duration, persist PersistFunc) *BackgroundRunner {
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}
	return &BackgroundRunner{sched: sched, interval: interval, persist: persist}
}

// Subscribe registers a new observer channel. Events are dropped for
// observers whose buffer is full.
func (r *BackgroundRunner) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	r.mu.Lock()
	r.events = append(r.events, ch)
	r.mu.Unlock()
	return ch
}

// Start launches the polling loop.
func (r *BackgroundRunner) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.running {
		return
	}
	r.running = true
	r.stopCh = make(chan struct{})
	r.doneCh = make(chan struct{})
	go r.run(r.stopCh, r.doneCh)
}

// Stop terminates the loop, waits for it to exit, and closes observers.
func (r *BackgroundRunner) Stop() {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return
	}
	close(r.stopCh)
	done := r.doneCh
	r.running = false
	r.mu.Unlock()

	<-done

	r.mu.Lock()
	events := r.events
	r.events = nil
	r.mu.Unlock()
	for _, ch := range events {
		close(ch)
	}
}

func (r *BackgroundRunner) run(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			r.Step()
		}
	}
}

// Step performs one poll, persisting and emitting on change.
func (r *BackgroundRunner) Step() {
	r.mu.Lock()
	defer r.mu.Unlock()

	events, changed := r.sched.Poll()
	if changed {
		r.persistLocked()
	}
	for _, ev := range events {
		r.emitLocked(ev)
	}
}

// Do runs fn with exclusive access to the scheduler and persists afterwards.
func (r *BackgroundRunner) Do(fn func(s *Scheduler) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := fn(r.sched); err != nil {
		return err
	}
	r.persistLocked()
	return nil
}

// Tasks returns a snapshot of the scheduler's list.
func (r *BackgroundRunner) Tasks() []models.StandaloneTask {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sched.Tasks()
}

func (r *BackgroundRunner) persistLocked() {
	if r.persist == nil {
		return
	}
	util.LogError("persist tasks", r.persist(r.sched.Tasks()))
}

func (r *BackgroundRunner) emitLocked(ev Event) {
	for _, ch := range r.events {
		select {
		case ch <- ev:
		default:
		}
	}
}
