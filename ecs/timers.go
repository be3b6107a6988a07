package ecs

import (
	"cmp"
	"slices"
	"time"
)

type TimerID uint64

type timerTask struct {
	id        TimerID
	due       time.Duration
	interval  time.Duration
	fn        func()
	cancelled bool
}

// Timers is a cooperative scheduler. Callbacks run on the caller's goroutine
// from inside Advance, so they never overlap with systems. Time only moves
// when Advance is called; the game feeds it wall-clock deltas.
type Timers struct {
	now    time.Duration
	nextID TimerID
	tasks  []*timerTask
}

// Now returns the total time advanced so far.
func (t *Timers) Now() time.Duration {
	return t.now
}

// Every schedules fn to run once per interval. An interval task that falls
// more than one interval behind drops the backlog instead of bursting.
func (t *Timers) Every(interval time.Duration, fn func()) TimerID {
	if interval <= 0 || fn == nil {
		return 0
	}
	return t.schedule(interval, interval, fn)
}

// After schedules fn to run once when delay has elapsed.
func (t *Timers) After(delay time.Duration, fn func()) TimerID {
	if fn == nil {
		return 0
	}
	if delay < 0 {
		delay = 0
	}
	return t.schedule(delay, 0, fn)
}

func (t *Timers) schedule(delay, interval time.Duration, fn func()) TimerID {
	t.nextID++
	t.tasks = append(t.tasks, &timerTask{
		id:       t.nextID,
		due:      t.now + delay,
		interval: interval,
		fn:       fn,
	})
	return t.nextID
}

// Cancel removes a pending task. Returns false if it already ran or never existed.
func (t *Timers) Cancel(id TimerID) bool {
	for _, task := range t.tasks {
		if task.id == id && !task.cancelled {
			task.cancelled = true
			return true
		}
	}
	return false
}

// Pending returns the number of scheduled tasks.
func (t *Timers) Pending() int {
	n := 0
	for _, task := range t.tasks {
		if !task.cancelled {
			n++
		}
	}
	return n
}

// Advance moves time forward by dt and runs every task that came due, in
// due order. Tasks scheduled by a callback wait for the next Advance.
func (t *Timers) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	t.now += dt

	var due []*timerTask
	for _, task := range t.tasks {
		if !task.cancelled && task.due <= t.now {
			due = append(due, task)
		}
	}
	slices.SortStableFunc(due, func(a, b *timerTask) int {
		if c := cmp.Compare(a.due, b.due); c != 0 {
			return c
		}
		return cmp.Compare(a.id, b.id)
	})

	for _, task := range due {
		if task.cancelled {
			continue
		}
		if task.interval > 0 {
			task.due += task.interval
			if task.due <= t.now {
				task.due = t.now + task.interval
			}
		} else {
			task.cancelled = true
		}
		task.fn()
	}

	t.tasks = slices.DeleteFunc(t.tasks, func(task *timerTask) bool {
		return task.cancelled
	})
}
