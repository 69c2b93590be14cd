package scoreevents

import (
	"encoding/json"
	"log/slog"

	"github.com/Black-And-White-Club/pingpong-scoreboard/app/metrics"
	"github.com/Black-And-White-Club/pingpong-scoreboard/app/shared/attr"
	"github.com/ThreeDotsLabs/watermill/message"
)

// Handlers defines the watermill handlers for scoreboard events.
type Handlers interface {
	HandleGameStarted(msg *message.Message) error
	HandleScoreUpdated(msg *message.Message) error
}

// ScoreEventHandlers keeps the audit log and the score gauges in step with the board.
type ScoreEventHandlers struct {
	logger  *slog.Logger
	metrics metrics.ScoreboardMetrics
}

func NewScoreEventHandlers(logger *slog.Logger, m metrics.ScoreboardMetrics) *ScoreEventHandlers {
	if m == nil {
		m = metrics.NoOp{}
	}
	return &ScoreEventHandlers{logger: logger, metrics: m}
}

// HandleGameStarted resets the gauges for a new game.
func (h *ScoreEventHandlers) HandleGameStarted(msg *message.Message) error {
	ctx := msg.Context()

	var payload GameStartedPayloadV1
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		// Redelivery cannot fix a bad payload.
		h.logger.ErrorContext(ctx, "Dropping malformed game started event",
			attr.String("message_id", msg.UUID),
			attr.Error(err),
		)
		return nil
	}

	h.metrics.SetScore(1, 0)
	h.metrics.SetScore(2, 0)
	h.logger.InfoContext(ctx, "Game started",
		attr.GameID(payload.GameID.String()),
		slog.Any("surfaces", payload.Surfaces),
	)
	return nil
}

// HandleScoreUpdated records the new scores.
func (h *ScoreEventHandlers) HandleScoreUpdated(msg *message.Message) error {
	ctx := msg.Context()

	var payload ScoreUpdatedPayloadV1
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		h.logger.ErrorContext(ctx, "Dropping malformed score updated event",
			attr.String("message_id", msg.UUID),
			attr.Error(err),
		)
		return nil
	}
	if payload.Player != 1 && payload.Player != 2 {
		h.logger.WarnContext(ctx, "Dropping score event for unknown player",
			attr.String("message_id", msg.UUID),
			attr.Int("player", payload.Player),
		)
		return nil
	}

	h.metrics.SetScore(1, payload.Player1Score)
	h.metrics.SetScore(2, payload.Player2Score)

	h.logger.InfoContext(ctx, "Score updated",
		attr.GameID(payload.GameID.String()),
		attr.Player(payload.Player),
		attr.Delta(payload.Delta),
		attr.Int("score", payload.Score),
		attr.String("board", payload.FormattedText),
	)
	return nil
}
