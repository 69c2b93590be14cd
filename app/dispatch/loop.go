// Package dispatch runs the foreground loop that turns pending button
// triggers into score updates.
package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Black-And-White-Club/pingpong-scoreboard/app/debounce"
	"github.com/Black-And-White-Club/pingpong-scoreboard/app/metrics"
	"github.com/Black-And-White-Club/pingpong-scoreboard/app/shared/attr"
)

// DefaultPollInterval bounds how long a trigger can wait if a wake signal is missed.
const DefaultPollInterval = 10 * time.Millisecond

// Loop consumes triggers in fixed scan order. Only one Loop may run per source.
type Loop struct {
	logger  *slog.Logger
	source  TriggerSource
	updater Updater
	metrics metrics.ScoreboardMetrics
	poll    time.Duration
}

func NewLoop(logger *slog.Logger, source TriggerSource, updater Updater, m metrics.ScoreboardMetrics, poll time.Duration) *Loop {
	if m == nil {
		m = metrics.NoOp{}
	}
	if poll <= 0 {
		poll = DefaultPollInterval
	}
	return &Loop{
		logger:  logger,
		source:  source,
		updater: updater,
		metrics: m,
		poll:    poll,
	}
}

// Run scans for triggers until ctx is cancelled, in which case it returns nil.
// The first failed update stops the loop and is returned.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.poll)
	defer ticker.Stop()

	l.logger.InfoContext(ctx, "Event loop started", attr.Duration("poll_interval", l.poll))

	for {
		if ctx.Err() != nil {
			l.logger.InfoContext(ctx, "Event loop stopped")
			return nil
		}
		if err := l.pass(ctx); err != nil {
			l.logger.ErrorContext(ctx, "Event loop failed", attr.Error(err))
			return err
		}

		select {
		case <-ctx.Done():
		case <-l.source.Wake():
		case <-ticker.C:
		}
	}
}

// pass handles every line that is pending right now.
func (l *Loop) pass(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in event loop: %v", r)
		}
	}()

	for _, line := range debounce.ScanOrder {
		if !l.source.Take(line) {
			continue
		}
		l.metrics.RecordTrigger(line.String())
		l.logger.DebugContext(ctx, "Trigger taken", attr.Line(line.String()))

		if err := l.updater.Update(ctx, line.Player(), line.Delta()); err != nil {
			return fmt.Errorf("update for %s: %w", line, err)
		}
	}
	return nil
}
