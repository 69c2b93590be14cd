// Package debounce turns raw rising edges from the score buttons into
// pending triggers that the foreground loop consumes exactly once.
//
// OnEdge is written to be called from an interrupt handler: it never blocks,
// never allocates and only touches the timestamp and trigger of its own line.
package debounce

import (
	"sync/atomic"
	"time"
)

// DefaultWindow is the minimum spacing between two accepted presses of the same button.
const DefaultWindow = 250 * time.Millisecond

// Debouncer holds per-line trigger flags and last-accepted timestamps.
//
// Timestamps are monotonic offsets from the debouncer's epoch. Every line
// starts with its timestamp at the epoch, so presses in the first window
// after start-up are treated as power-on noise.
type Debouncer struct {
	window  int64
	epoch   time.Time
	last    [NumLines]atomic.Int64
	pending [NumLines]atomic.Bool
	wake    chan struct{}
}

// New creates a Debouncer. A zero window accepts every edge that moves time forward.
func New(window time.Duration) *Debouncer {
	return &Debouncer{
		window: int64(window),
		epoch:  time.Now(),
		wake:   make(chan struct{}, 1),
	}
}

// Window returns the configured debounce window.
func (d *Debouncer) Window() time.Duration {
	return time.Duration(d.window)
}

// Now returns the debouncer's monotonic clock.
func (d *Debouncer) Now() time.Duration {
	return time.Since(d.epoch)
}

// Edge records a rising edge on line at the current time.
func (d *Debouncer) Edge(line Line) {
	d.OnEdge(line, d.Now())
}

// OnEdge records a rising edge on line observed at now. Edges closer than the
// window to the last accepted edge on the same line are dropped. Unknown
// lines are ignored.
func (d *Debouncer) OnEdge(line Line, now time.Duration) {
	if line >= NumLines {
		return
	}
	if int64(now)-d.last[line].Load() <= d.window {
		return
	}
	d.last[line].Store(int64(now))
	d.pending[line].Store(true)

	select {
	case d.wake <- struct{}{}:
	default:
	}
}

// Take reports whether line had a pending trigger and clears it atomically.
func (d *Debouncer) Take(line Line) bool {
	if line >= NumLines {
		return false
	}
	return d.pending[line].Swap(false)
}

// Pending reports whether line has a trigger waiting, without consuming it.
func (d *Debouncer) Pending(line Line) bool {
	if line >= NumLines {
		return false
	}
	return d.pending[line].Load()
}

// Wake is signalled after a trigger is set. Signals coalesce: one receive may
// cover several triggers, so receivers must scan every line.
func (d *Debouncer) Wake() <-chan struct{} {
	return d.wake
}
