package core

import (
	"sort"
	"time"
)

// Clock is a monotonic millisecond source.
type Clock interface {
	NowMs() float64
}

// WallClock reads the monotonic component of time.Now relative to its creation.
type WallClock struct {
	start time.Time
}

// NewWallClock returns a clock anchored at the current instant.
func NewWallClock() *WallClock {
	return &WallClock{start: time.Now()}
}

// NowMs returns the milliseconds elapsed since the clock was created.
func (c *WallClock) NowMs() float64 {
	return float64(time.Since(c.start)) / float64(time.Millisecond)
}

// ManualClock is advanced explicitly. Tools and tests use it to replay frames
// with synthetic timing.
type ManualClock struct {
	now float64
}

// NowMs returns the current manual time.
func (c *ManualClock) NowMs() float64 { return c.now }

// Advance moves the clock forward by ms milliseconds.
func (c *ManualClock) Advance(ms float64) {
	if ms > 0 {
		c.now += ms
	}
}

// Set jumps the clock to an absolute time.
func (c *ManualClock) Set(ms float64) { c.now = ms }

// FrameTimer turns successive clock readings into per-frame deltas in seconds,
// clamped so a suspended tab does not produce one enormous step.
type FrameTimer struct {
	maxDelta float64
	last     float64
	started  bool
}

// NewFrameTimer constructs a FrameTimer clamping deltas to maxDelta seconds.
func NewFrameTimer(maxDelta float64) *FrameTimer {
	if maxDelta <= 0 {
		maxDelta = 0.1
	}
	return &FrameTimer{maxDelta: maxDelta}
}

// Delta returns the seconds elapsed since the previous call. The first call
// reports zero.
func (f *FrameTimer) Delta(nowMs float64) float64 {
	if !f.started {
		f.started = true
		f.last = nowMs
		return 0
	}
	dt := (nowMs - f.last) * 0.001
	f.last = nowMs
	if dt < 0 {
		return 0
	}
	if dt > f.maxDelta {
		return f.maxDelta
	}
	return dt
}

// Reset forgets the previous reading.
func (f *FrameTimer) Reset() {
	f.started = false
	f.last = 0
}

// TimerID identifies a scheduled callback. The zero value never refers to a
// live timer.
type TimerID uint64

type timer struct {
	id  TimerID
	due float64
	fn  func(now float64)
}

// Timers is a deferred-callback queue polled by the frame loop. Nothing runs
// on another goroutine: a callback fires during the first Fire call whose time
// reaches its due time.
type Timers struct {
	next     TimerID
	pending  []timer
	firing   []timer
	canceled map[TimerID]bool
}

// NewTimers returns an empty queue.
func NewTimers() *Timers {
	return &Timers{}
}

// Schedule registers fn to run delayMs after now.
func (t *Timers) Schedule(now, delayMs float64, fn func(now float64)) TimerID {
	if delayMs < 0 {
		delayMs = 0
	}
	t.next++
	t.pending = append(t.pending, timer{id: t.next, due: now + delayMs, fn: fn})
	return t.next
}

// Cancel drops a pending timer. Unknown or already fired ids are ignored.
func (t *Timers) Cancel(id TimerID) bool {
	for i, tm := range t.pending {
		if tm.id == id {
			t.pending = append(t.pending[:i], t.pending[i+1:]...)
			return true
		}
	}
	for _, tm := range t.firing {
		if tm.id == id && !t.canceled[id] {
			t.markCanceled(id)
			return true
		}
	}
	return false
}

func (t *Timers) markCanceled(id TimerID) {
	if t.canceled == nil {
		t.canceled = make(map[TimerID]bool)
	}
	t.canceled[id] = true
}

// CancelAll drops every pending timer.
func (t *Timers) CancelAll() {
	t.pending = t.pending[:0]
	for _, tm := range t.firing {
		t.markCanceled(tm.id)
	}
}

// Pending reports how many timers are waiting to fire.
func (t *Timers) Pending() int { return len(t.pending) }

// Fire runs every timer due at or before now, earliest first. Callbacks may
// schedule or cancel timers; newly scheduled ones wait for the next call.
func (t *Timers) Fire(now float64) int {
	if len(t.pending) == 0 {
		return 0
	}
	var due []timer
	kept := t.pending[:0]
	for _, tm := range t.pending {
		if tm.due <= now {
			due = append(due, tm)
			continue
		}
		kept = append(kept, tm)
	}
	t.pending = kept
	sort.SliceStable(due, func(i, j int) bool { return due[i].due < due[j].due })

	t.firing = due
	fired := 0
	for _, tm := range due {
		if t.canceled[tm.id] {
			continue
		}
		tm.fn(now)
		fired++
	}
	t.firing = nil
	t.canceled = nil
	return fired
}
