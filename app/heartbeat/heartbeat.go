// Package heartbeat blinks a status LED so a running board is visibly alive.
package heartbeat

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/Black-And-White-Club/pingpong-scoreboard/app/shared/attr"
)

// LED is a single on/off output. machine.Pin satisfies it on the board.
type LED interface {
	Set(on bool)
}

// Heartbeat toggles an LED with a fixed on/off rhythm.
type Heartbeat struct {
	logger *slog.Logger
	led    LED
	on     time.Duration
	off    time.Duration
}

func New(logger *slog.Logger, led LED, on, off time.Duration) *Heartbeat {
	return &Heartbeat{
		logger: logger,
		led:    led,
		on:     on,
		off:    off,
	}
}

// Run blinks until ctx is cancelled and leaves the LED off.
func (h *Heartbeat) Run(ctx context.Context) error {
	h.logger.InfoContext(ctx, "Heartbeat started",
		attr.Duration("on", h.on),
		attr.Duration("off", h.off),
	)
	defer h.led.Set(false)

	for {
		h.led.Set(true)
		if !sleep(ctx, h.on) {
			return nil
		}
		h.led.Set(false)
		if !sleep(ctx, h.off) {
			return nil
		}
	}
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// LogLED stands in for the on-board LED when there is no hardware.
type LogLED struct {
	logger *slog.Logger
	on     atomic.Bool
	blinks atomic.Int64
}

func NewLogLED(logger *slog.Logger) *LogLED {
	return &LogLED{logger: logger}
}

func (l *LogLED) Set(on bool) {
	if l.on.Swap(on) == on {
		return
	}
	if on {
		l.blinks.Add(1)
	}
	l.logger.Debug("Heartbeat LED", attr.Bool("on", on))
}

// On reports the current LED state.
func (l *LogLED) On() bool {
	return l.on.Load()
}

// Blinks counts off-to-on transitions.
func (l *LogLED) Blinks() int64 {
	return l.blinks.Load()
}
