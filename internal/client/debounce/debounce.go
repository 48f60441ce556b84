// Package debounce coalesces bursts of query input into a single commit
// after a quiet period.
package debounce

import (
	"sync"
	"time"
)

// DefaultQuiet is used when New is given a non-positive quiet period.
const DefaultQuiet = 300 * time.Millisecond

// Debouncer tracks the raw (pre-debounce) input and the last committed value
// of one search box.
//
// Every Push re-arms the timer; when no Push arrives for the quiet period the
// latest raw value is committed exactly once. After Stop returns no commit is
// delivered, including one whose timer had already fired.
//
// onCommit runs on a timer goroutine (or the Flush caller) and must not call
// Stop or Flush.
type Debouncer struct {
	quiet    time.Duration
	onCommit func(string)

	// commitMu is held while onCommit runs so Stop can wait it out.
	commitMu sync.Mutex

	mu        sync.Mutex
	timer     *time.Timer
	gen       uint64
	raw       string
	committed string
	pending   bool
	stopped   bool
}

func New(quiet time.Duration, onCommit func(string)) *Debouncer {
	if quiet <= 0 {
		quiet = DefaultQuiet
	}
	return &Debouncer{quiet: quiet, onCommit: onCommit}
}

// Push records a new raw value and restarts the quiet period. Pushes after
// Stop are ignored.
func (d *Debouncer) Push(raw string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	d.raw = raw
	d.pending = true
	d.gen++
	gen := d.gen

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.quiet, func() { d.fire(gen) })
}

func (d *Debouncer) fire(gen uint64) {
	d.commitMu.Lock()
	defer d.commitMu.Unlock()

	d.mu.Lock()
	if d.stopped || !d.pending || gen != d.gen {
		d.mu.Unlock()
		return
	}
	value := d.takeLocked()
	d.mu.Unlock()

	d.onCommit(value)
}

// Flush commits a pending value immediately. It reports false when nothing
// was pending.
func (d *Debouncer) Flush() bool {
	d.commitMu.Lock()
	defer d.commitMu.Unlock()

	d.mu.Lock()
	if d.stopped || !d.pending {
		d.mu.Unlock()
		return false
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	value := d.takeLocked()
	d.mu.Unlock()

	d.onCommit(value)
	return true
}

func (d *Debouncer) takeLocked() string {
	d.pending = false
	d.committed = d.raw
	return d.raw
}

// Stop cancels any pending commit and waits for a commit already in
// progress to return.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	d.stopped = true
	d.pending = false
	if d.timer != nil {
		d.timer.Stop()
	}
	d.mu.Unlock()

	// wait for an in-flight onCommit
	d.commitMu.Lock()
	d.commitMu.Unlock()
}

// Raw returns the latest pushed value.
func (d *Debouncer) Raw() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.raw
}

// Committed returns the last value handed to onCommit.
func (d *Debouncer) Committed() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.committed
}

// Pending reports whether a quiet period is currently open.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}

func (d *Debouncer) Quiet() time.Duration {
	return d.quiet
}
