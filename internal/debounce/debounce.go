// Package debounce coalesces bursts of persistence triggers into a
// single deferred call. Callers fire and forget; the wrapped function
// runs once after the interval elapses without another trigger.
package debounce

import (
	"sync"
	"time"
)

type Trigger struct {
	mu       sync.Mutex
	interval time.Duration
	fn       func()
	timer    *time.Timer
	pending  bool
}

// New wraps fn with a debounce interval. An interval <= 0 makes every
// Fire call fn synchronously, which short-lived hosts rely on.
func New(interval time.Duration, fn func()) *Trigger {
	return &Trigger{interval: interval, fn: fn}
}

func (t *Trigger) Fire() {
	if t == nil || t.fn == nil {
		return
	}
	t.mu.Lock()
	if t.interval <= 0 {
		t.mu.Unlock()
		t.fn()
		return
	}
	t.pending = true
	if t.timer == nil {
		t.timer = time.AfterFunc(t.interval, t.run)
	} else {
		t.timer.Reset(t.interval)
	}
	t.mu.Unlock()
}

// Flush runs the wrapped function immediately if a trigger is pending.
func (t *Trigger) Flush() {
	if t == nil || t.fn == nil {
		return
	}
	t.mu.Lock()
	if !t.pending {
		t.mu.Unlock()
		return
	}
	t.pending = false
	if t.timer != nil {
		t.timer.Stop()
	}
	t.mu.Unlock()
	t.fn()
}

// Stop drops any pending trigger without running it.
func (t *Trigger) Stop() {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pending = false
	if t.timer != nil {
		t.timer.Stop()
	}
}

func (t *Trigger) run() {
	t.mu.Lock()
	if !t.pending {
		t.mu.Unlock()
		return
	}
	t.pending = false
	t.mu.Unlock()
	t.fn()
}
