package utils

import (
	"sync"
	"time"
)

// DefaultDebounce is the quiescence window for search re-queries.
const DefaultDebounce = 250 * time.Millisecond

// Debouncer coalesces rapid triggers into one call: each Trigger
// cancels the pending one and restarts the timer, so the function runs
// once the triggers go quiet for the whole window. One Debouncer owns
// one timer; this is the only timing policy in the storefront core.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
}

func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Debouncer{delay: delay}
}

// Trigger schedules fn after the quiescence window, cancelling any
// previously scheduled call.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop cancels any pending call.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
