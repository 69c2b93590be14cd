package scoreevents

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/Black-And-White-Club/pingpong-scoreboard/app/shared/attr"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// NewBus creates the in-process Pub/Sub used between the scoreboard and its
// observers. Publishing never waits for subscribers.
func NewBus(logger *slog.Logger) *gochannel.GoChannel {
	return gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 64},
		watermill.NewSlogLogger(logger),
	)
}

// EventPublisher turns scoreboard payloads into watermill messages.
type EventPublisher struct {
	publisher message.Publisher
	logger    *slog.Logger
}

func NewEventPublisher(publisher message.Publisher, logger *slog.Logger) *EventPublisher {
	return &EventPublisher{publisher: publisher, logger: logger}
}

func (p *EventPublisher) PublishGameStarted(ctx context.Context, payload GameStartedPayloadV1) error {
	return p.publish(ctx, GameStartedV1, payload.GameID.String(), payload)
}

func (p *EventPublisher) PublishScoreUpdated(ctx context.Context, payload ScoreUpdatedPayloadV1) error {
	return p.publish(ctx, ScoreUpdatedV1, payload.GameID.String(), payload)
}

func (p *EventPublisher) publish(ctx context.Context, topic, correlationID string, payload any) error {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", topic, err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payloadBytes)
	msg.Metadata.Set(middleware.CorrelationIDMetadataKey, correlationID)
	msg.Metadata.Set("topic", topic)
	msg.SetContext(ctx)

	if err := p.publisher.Publish(topic, msg); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", topic, err)
	}

	p.logger.DebugContext(ctx, "Published event",
		attr.String("topic", topic),
		attr.String("message_id", msg.UUID),
		attr.String("correlation_id", correlationID),
	)
	return nil
}
