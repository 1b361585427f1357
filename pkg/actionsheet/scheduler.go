package actionsheet

import (
	"sort"
	"sync"
	"time"

	"go.uber.org/atomic"
)

// Scheduler runs cosmetic work later. The Controller schedules fire-and-forget
// tasks through it and never waits on them.
type Scheduler interface {
	Schedule(delay time.Duration, task func())
}

// NopScheduler drops every task.
type NopScheduler struct{}

func (NopScheduler) Schedule(time.Duration, func()) {}

// ImmediateScheduler runs every task inline, ignoring the delay.
type ImmediateScheduler struct{}

func (ImmediateScheduler) Schedule(_ time.Duration, task func()) {
	task()
}

type queuedTask struct {
	due  time.Time
	seq  uint64
	task func()
}

// MainQueue holds delayed tasks until the UI loop drains them, so tasks
// always run on the loop's goroutine. Schedule is safe from any goroutine.
type MainQueue struct {
	mu      sync.Mutex
	tasks   []queuedTask
	seq     uint64
	now     func() time.Time
	stopped *atomic.Bool
}

// NewMainQueue creates an empty queue reading the wall clock.
func NewMainQueue() *MainQueue {
	return NewMainQueueWithClock(time.Now)
}

// NewMainQueueWithClock creates an empty queue reading the given clock.
func NewMainQueueWithClock(now func() time.Time) *MainQueue {
	return &MainQueue{
		now:     now,
		stopped: atomic.NewBool(false),
	}
}

func (q *MainQueue) Schedule(delay time.Duration, task func()) {
	if q.stopped.Load() {
		return
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	q.seq++
	q.tasks = append(q.tasks, queuedTask{due: q.now().Add(delay), seq: q.seq, task: task})
}

// Drain runs every task that is due, in due order, and returns how many ran.
// Call it once per frame from the UI loop.
func (q *MainQueue) Drain() int {
	if q.stopped.Load() {
		return 0
	}

	now := q.now()

	q.mu.Lock()
	var due, pending []queuedTask
	for _, t := range q.tasks {
		if !t.due.After(now) {
			due = append(due, t)
		} else {
			pending = append(pending, t)
		}
	}
	q.tasks = pending
	q.mu.Unlock()

	sort.Slice(due, func(i, j int) bool {
		if due[i].due.Equal(due[j].due) {
			return due[i].seq < due[j].seq
		}
		return due[i].due.Before(due[j].due)
	})

	for _, t := range due {
		t.task()
	}
	return len(due)
}

// Len returns the number of queued tasks.
func (q *MainQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tasks)
}

// Stop drops queued tasks and ignores later ones.
func (q *MainQueue) Stop() {
	q.stopped.Store(true)

	q.mu.Lock()
	q.tasks = nil
	q.mu.Unlock()
}
