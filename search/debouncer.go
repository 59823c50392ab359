package search

import (
	"strings"
	"sync"
	"time"
)

const (
	DefaultDelay          = 300 * time.Millisecond
	DefaultMinQueryLength = 2
)

// Debouncer delays a query until input has been quiet for the configured
// delay. Each Input call cancels the pending timer, so only the last query
// of a burst fires. Queries shorter than the minimum length never fire.
type Debouncer struct {
	delay  time.Duration
	minLen int
	fire   func(query string)

	mu         sync.Mutex
	timer      *time.Timer
	generation uint64
	stopped    bool
}

// NewDebouncer returns a debouncer that calls fire on its own goroutine.
func NewDebouncer(delay time.Duration, minLen int, fire func(query string)) *Debouncer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	if minLen < 1 {
		minLen = DefaultMinQueryLength
	}
	return &Debouncer{delay: delay, minLen: minLen, fire: fire}
}

// Input records a keystroke.
func (d *Debouncer) Input(query string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	d.generation++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}

	query = strings.TrimSpace(query)
	if len([]rune(query)) < d.minLen {
		return
	}

	gen := d.generation
	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		// a later keystroke may have raced the timer
		if gen != d.generation || d.stopped {
			d.mu.Unlock()
			return
		}
		d.timer = nil
		d.mu.Unlock()

		d.fire(query)
	})
}

// Cancel drops any pending query without stopping the debouncer.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.generation++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Stop cancels the pending query and ignores all further input.
func (d *Debouncer) Stop() {
	d.Cancel()

	d.mu.Lock()
	d.stopped = true
	d.mu.Unlock()
}

// Pending reports whether a query is waiting to fire.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}
