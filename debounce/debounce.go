// Package debounce coalesces bursts of notifications into a single action
// that fires once no further notification arrived for a quiescence window.
//
// The Debouncer holds no timer. The caller passes the current time into
// Notify and Poll and uses Timeout to decide how long it may block waiting
// for the next event.
package debounce

import "time"

// Debouncer tracks a burst of notifications and reports once it settled.
type Debouncer struct {
	window   time.Duration
	deadline time.Time
	pending  bool
	notified int // notifications since the last fire
}

// New returns an idle Debouncer. A non-positive window fires on the first Poll
// after a notification.
func New(window time.Duration) *Debouncer {
	if window < 0 {
		window = 0
	}
	return &Debouncer{window: window}
}

// Window returns the quiescence window.
func (d *Debouncer) Window() time.Duration { return d.window }

// Notify records a notification at now and restarts the quiescence window.
func (d *Debouncer) Notify(now time.Time) {
	d.deadline = now.Add(d.window)
	d.pending = true
	d.notified++
}

// Poll reports whether the quiescence window of a pending burst has elapsed
// at now. It returns true exactly once per burst and resets to idle.
func (d *Debouncer) Poll(now time.Time) bool {
	if !d.pending || now.Before(d.deadline) {
		return false
	}
	d.Reset()
	return true
}

// Pending reports whether a burst is waiting for its deadline.
func (d *Debouncer) Pending() bool { return d.pending }

// Deadline returns the time the pending burst settles. Zero when idle.
func (d *Debouncer) Deadline() time.Time {
	if !d.pending {
		return time.Time{}
	}
	return d.deadline
}

// Coalesced returns the number of notifications in the pending burst.
func (d *Debouncer) Coalesced() int { return d.notified }

// Timeout returns how long a caller may wait for further events before it has
// to Poll again. It is negative when idle (wait indefinitely) and 0 when the
// deadline already passed.
func (d *Debouncer) Timeout(now time.Time) time.Duration {
	if !d.pending {
		return -1
	}
	if left := d.deadline.Sub(now); left > 0 {
		return left
	}
	return 0
}

// Reset drops a pending burst.
func (d *Debouncer) Reset() {
	d.pending = false
	d.deadline = time.Time{}
	d.notified = 0
}
