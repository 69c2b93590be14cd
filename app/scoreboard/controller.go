// Package scoreboard owns the score ledger and keeps every display in step
// with it.
package scoreboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Black-And-White-Club/pingpong-scoreboard/app/display"
	"github.com/Black-And-White-Club/pingpong-scoreboard/app/ledger"
	"github.com/Black-And-White-Club/pingpong-scoreboard/app/metrics"
	"github.com/Black-And-White-Club/pingpong-scoreboard/app/scoreevents"
	"github.com/Black-And-White-Club/pingpong-scoreboard/app/shared/attr"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// EventPublisher receives notifications about the game. Publishing is best effort.
type EventPublisher interface {
	PublishGameStarted(ctx context.Context, payload scoreevents.GameStartedPayloadV1) error
	PublishScoreUpdated(ctx context.Context, payload scoreevents.ScoreUpdatedPayloadV1) error
}

// Screen is one display plus the label printed in its header.
type Screen struct {
	Surface display.Surface
	Label   string
}

// Controller applies score changes and redraws the displays. It must be
// driven from a single goroutine.
type Controller struct {
	logger    *slog.Logger
	tracer    trace.Tracer
	metrics   metrics.ScoreboardMetrics
	publisher EventPublisher
	ledger    *ledger.Ledger
	screens   []Screen
	gameID    uuid.UUID
	ready     atomic.Bool

	mu   sync.RWMutex
	text [2]string
}

// NewController creates a controller for a fresh game. publisher may be nil.
func NewController(
	logger *slog.Logger,
	tracer trace.Tracer,
	m metrics.ScoreboardMetrics,
	publisher EventPublisher,
	l *ledger.Ledger,
	screens []Screen,
) (*Controller, error) {
	if len(screens) == 0 {
		return nil, errors.New("scoreboard needs at least one screen")
	}
	for i, s := range screens {
		if s.Surface == nil {
			return nil, fmt.Errorf("screen %d has no surface", i)
		}
	}
	if m == nil {
		m = metrics.NoOp{}
	}
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("noop")
	}

	scores := l.Snapshot()
	c := &Controller{
		logger:    logger,
		tracer:    tracer,
		metrics:   m,
		publisher: publisher,
		ledger:    l,
		screens:   screens,
		gameID:    uuid.New(),
	}
	c.text = [2]string{ledger.FormatScore(scores.Player1), ledger.FormatScore(scores.Player2)}
	return c, nil
}

func (c *Controller) GameID() uuid.UUID {
	return c.gameID
}

// Ready reports whether the start-up draw completed.
func (c *Controller) Ready() bool {
	return c.ready.Load()
}

func (c *Controller) Scores() ledger.Scores {
	return c.ledger.Snapshot()
}

// Text returns the formatted score of each player as last drawn.
func (c *Controller) Text() [2]string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.text
}

// Surfaces returns the display names in drawing order.
func (c *Controller) Surfaces() []string {
	names := make([]string, 0, len(c.screens))
	for _, s := range c.screens {
		names = append(names, s.Surface.Name())
	}
	return names
}

// DrawScreens paints header and body on every display and flushes them.
// Call once at start-up.
func (c *Controller) DrawScreens(ctx context.Context) (err error) {
	ctx, span := c.tracer.Start(ctx, "scoreboard.DrawScreens",
		trace.WithAttributes(attribute.String("game_id", c.gameID.String())))
	defer func() { endSpan(span, err) }()

	text := c.Text()
	body := BodyText(text[0], text[1])

	var errs []error
	for _, s := range c.screens {
		if err := c.drawScreen(s, body); err != nil {
			c.logger.WarnContext(ctx, "Display draw failed", attr.Surface(s.Surface.Name()), attr.Error(err))
			c.metrics.RecordSurfaceError(s.Surface.Name())
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		c.logger.ErrorContext(ctx, "Failed to draw screens", attr.Error(err))
		return err
	}

	c.ready.Store(true)
	c.logger.InfoContext(ctx, "Screens drawn",
		attr.GameID(c.gameID.String()),
		attr.String("body", body),
	)

	if c.publisher != nil {
		payload := scoreevents.GameStartedPayloadV1{
			GameID:    c.gameID,
			Surfaces:  c.Surfaces(),
			StartedAt: time.Now().UTC(),
		}
		if err := c.publisher.PublishGameStarted(ctx, payload); err != nil {
			c.logger.WarnContext(ctx, "Failed to publish game started", attr.Error(err))
		}
	}
	return nil
}

// Update applies one button press and redraws the body of every display.
// Display failures are returned after every display has been attempted.
func (c *Controller) Update(ctx context.Context, p ledger.Player, d ledger.Delta) (err error) {
	if !p.Valid() || !d.Valid() {
		return fmt.Errorf("invalid score update: player %d delta %d", uint8(p), int8(d))
	}

	ctx, span := c.tracer.Start(ctx, "scoreboard.Update",
		trace.WithAttributes(
			attribute.String("game_id", c.gameID.String()),
			attribute.Int("player", int(p)),
			attribute.Int("delta", int(d)),
		))
	defer func() { endSpan(span, err) }()

	score := c.ledger.Apply(p, d)
	c.mu.Lock()
	c.text[int(p)-1] = ledger.FormatScore(score)
	text := c.text
	c.mu.Unlock()

	c.metrics.RecordUpdate(int(p), int(d))
	span.SetAttributes(attribute.Int("score", score))

	body := BodyText(text[0], text[1])
	var errs []error
	for _, s := range c.screens {
		if err := c.redrawBody(s, body); err != nil {
			c.logger.WarnContext(ctx, "Display redraw failed", attr.Surface(s.Surface.Name()), attr.Error(err))
			c.metrics.RecordSurfaceError(s.Surface.Name())
			errs = append(errs, err)
		}
	}

	c.logger.DebugContext(ctx, "Score applied",
		attr.Player(p),
		attr.Delta(d),
		attr.Int("score", score),
		attr.String("body", body),
	)

	if err := errors.Join(errs...); err != nil {
		c.logger.ErrorContext(ctx, "Failed to redraw scores", attr.Player(p), attr.Error(err))
		return err
	}

	if c.publisher != nil {
		scores := c.ledger.Snapshot()
		payload := scoreevents.ScoreUpdatedPayloadV1{
			GameID:        c.gameID,
			Player:        int(p),
			Delta:         int(d),
			Score:         score,
			Player1Score:  scores.Player1,
			Player2Score:  scores.Player2,
			FormattedText: body,
			UpdatedAt:     time.Now().UTC(),
		}
		if err := c.publisher.PublishScoreUpdated(ctx, payload); err != nil {
			c.logger.WarnContext(ctx, "Failed to publish score update", attr.Player(p), attr.Error(err))
		}
	}
	return nil
}

func (c *Controller) drawScreen(s Screen, body string) error {
	surf := s.Surface
	if err := surf.DrawRect(HeaderRect.X, HeaderRect.Y, HeaderRect.W, HeaderRect.H, false); err != nil {
		return &SurfaceError{Surface: surf.Name(), Op: "draw header", Err: err}
	}
	if err := surf.DrawText(s.Label, headerTextX, headerTextY); err != nil {
		return &SurfaceError{Surface: surf.Name(), Op: "draw header", Err: err}
	}
	if err := drawBody(surf, body); err != nil {
		return err
	}
	if err := surf.Flush(); err != nil {
		return &SurfaceError{Surface: surf.Name(), Op: "flush", Err: err}
	}
	return nil
}

func (c *Controller) redrawBody(s Screen, body string) error {
	surf := s.Surface
	if err := surf.ClearRect(BodyRect.X, BodyRect.Y, BodyRect.W, BodyRect.H); err != nil {
		return &SurfaceError{Surface: surf.Name(), Op: "clear body", Err: err}
	}
	if err := drawBody(surf, body); err != nil {
		return err
	}
	if err := surf.Flush(); err != nil {
		return &SurfaceError{Surface: surf.Name(), Op: "flush", Err: err}
	}
	return nil
}

func drawBody(surf display.Surface, body string) error {
	if err := surf.DrawRect(BodyRect.X, BodyRect.Y, BodyRect.W, BodyRect.H, false); err != nil {
		return &SurfaceError{Surface: surf.Name(), Op: "draw body", Err: err}
	}
	if err := surf.DrawText(caption, captionX, captionY); err != nil {
		return &SurfaceError{Surface: surf.Name(), Op: "draw body", Err: err}
	}
	if err := surf.DrawText(body, scoresX, scoresY); err != nil {
		return &SurfaceError{Surface: surf.Name(), Op: "draw scores", Err: err}
	}
	return nil
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
