// Package sched provides a cooperative task scheduler with cancel handles.
//
// Timers, intervals and animation-frame callbacks are registered against a
// Loop and run to completion one at a time when the owner advances the loop.
// Nothing here starts goroutines; the platform drives the loop from its own
// tick so that every callback runs on the UI goroutine.
package sched

import (
	"sort"
	"time"
)

// Scheduler is the subset of Loop that effects depend on.
type Scheduler interface {
	// AfterFunc runs fn once, d after now.
	AfterFunc(d time.Duration, fn func()) Handle
	// Every runs fn every period, first after one period.
	Every(period time.Duration, fn func()) Handle
	// RequestFrame runs fn on the next animation frame.
	RequestFrame(fn func()) Handle
}

type taskKind uint8

const (
	kindTimer taskKind = iota
	kindInterval
	kindFrame
)

type task struct {
	id       uint64
	kind     taskKind
	due      time.Duration
	period   time.Duration
	fn       func()
	canceled bool
}

// Handle identifies a scheduled task. The zero Handle is valid and
// refers to nothing.
type Handle struct {
	t *task
}

// Cancel stops the task from running again. Calling it more than once,
// or on a task that already ran, is a no-op.
func (h Handle) Cancel() {
	if h.t != nil {
		h.t.canceled = true
	}
}

// Active reports whether the task may still run.
func (h Handle) Active() bool {
	return h.t != nil && !h.t.canceled
}

// Loop is a virtual-clock scheduler. It is not safe for concurrent use.
type Loop struct {
	now    time.Duration
	nextID uint64
	timers []*task
	frames []*task
	frame  uint64
}

// NewLoop creates an empty loop at time zero.
func NewLoop() *Loop {
	return &Loop{}
}

// Now returns the loop's virtual time.
func (l *Loop) Now() time.Duration {
	return l.now
}

// Frames returns how many animation frames have been run.
func (l *Loop) Frames() uint64 {
	return l.frame
}

// AfterFunc implements Scheduler.
func (l *Loop) AfterFunc(d time.Duration, fn func()) Handle {
	return l.addTimer(kindTimer, d, 0, fn)
}

// Every implements Scheduler.
func (l *Loop) Every(period time.Duration, fn func()) Handle {
	if period <= 0 {
		period = time.Millisecond
	}
	return l.addTimer(kindInterval, period, period, fn)
}

// RequestFrame implements Scheduler.
func (l *Loop) RequestFrame(fn func()) Handle {
	l.nextID++
	t := &task{id: l.nextID, kind: kindFrame, fn: fn}
	l.frames = append(l.frames, t)
	return Handle{t: t}
}

func (l *Loop) addTimer(kind taskKind, d, period time.Duration, fn func()) Handle {
	if d < 0 {
		d = 0
	}
	l.nextID++
	t := &task{id: l.nextID, kind: kind, due: l.now + d, period: period, fn: fn}
	l.timers = append(l.timers, t)
	return Handle{t: t}
}

// Advance moves the clock forward by d and runs every timer that falls
// due, in due-time order. Timers scheduled by callbacks run in the same
// call if they fall due within the window.
func (l *Loop) Advance(d time.Duration) {
	if d < 0 {
		d = 0
	}
	target := l.now + d
	for {
		t := l.nextDue(target)
		if t == nil {
			break
		}
		l.now = t.due
		switch t.kind {
		case kindInterval:
			t.due += t.period
		default:
			t.canceled = true
		}
		t.fn()
	}
	l.now = target
	l.compact()
}

// nextDue returns the earliest live timer due at or before target.
func (l *Loop) nextDue(target time.Duration) *task {
	var best *task
	for _, t := range l.timers {
		if t.canceled || t.due > target {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && t.id < best.id) {
			best = t
		}
	}
	return best
}

func (l *Loop) compact() {
	live := l.timers[:0]
	for _, t := range l.timers {
		if !t.canceled {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(l.timers); i++ {
		l.timers[i] = nil
	}
	l.timers = live
	sort.SliceStable(l.timers, func(i, j int) bool { return l.timers[i].due < l.timers[j].due })
}

// Frame runs one animation frame: every frame callback requested before
// this call, in request order. Callbacks requested during the frame are
// deferred to the next one.
func (l *Loop) Frame() {
	l.frame++
	batch := l.frames
	l.frames = nil
	for _, t := range batch {
		if t.canceled {
			continue
		}
		t.canceled = true
		t.fn()
	}
}

// Pending returns the number of live timers and frame callbacks.
func (l *Loop) Pending() int {
	n := 0
	for _, t := range l.timers {
		if !t.canceled {
			n++
		}
	}
	for _, t := range l.frames {
		if !t.canceled {
			n++
		}
	}
	return n
}

// PendingFrames returns the number of live frame callbacks.
func (l *Loop) PendingFrames() int {
	n := 0
	for _, t := range l.frames {
		if !t.canceled {
			n++
		}
	}
	return n
}
