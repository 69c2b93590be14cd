package scoreevents

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Black-And-White-Club/pingpong-scoreboard/app/shared/testutils"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
)

func TestEventPublisher_PublishScoreUpdated(t *testing.T) {
	fake := &testutils.FakePublisher{}
	p := NewEventPublisher(fake, testutils.NoOpLogger())

	payload := ScoreUpdatedPayloadV1{
		GameID:        uuid.New(),
		Player:        1,
		Delta:         1,
		Score:         1,
		Player1Score:  1,
		FormattedText: "01   00",
		UpdatedAt:     time.Date(2026, 4, 10, 12, 0, 0, 0, time.UTC),
	}
	if err := p.PublishScoreUpdated(context.Background(), payload); err != nil {
		t.Fatalf("PublishScoreUpdated: %v", err)
	}

	msgs := fake.Messages(ScoreUpdatedV1)
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(msgs))
	}
	msg := msgs[0]
	if got := msg.Metadata.Get(middleware.CorrelationIDMetadataKey); got != payload.GameID.String() {
		t.Fatalf("correlation id = %q, want game id", got)
	}
	if got := msg.Metadata.Get("topic"); got != ScoreUpdatedV1 {
		t.Fatalf("topic metadata = %q", got)
	}

	var decoded ScoreUpdatedPayloadV1
	if err := json.Unmarshal(msg.Payload, &decoded); err != nil {
		t.Fatalf("payload is not JSON: %v", err)
	}
	if diff := cmp.Diff(payload, decoded); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}
}

func TestEventPublisher_PublishGameStarted(t *testing.T) {
	fake := &testutils.FakePublisher{}
	p := NewEventPublisher(fake, testutils.NoOpLogger())

	id := uuid.New()
	if err := p.PublishGameStarted(context.Background(), GameStartedPayloadV1{GameID: id, Surfaces: []string{"oled1", "oled2"}}); err != nil {
		t.Fatalf("PublishGameStarted: %v", err)
	}
	if n := len(fake.Messages(GameStartedV1)); n != 1 {
		t.Fatalf("expected 1 message, got %d", n)
	}
}

func TestEventPublisher_PublishError(t *testing.T) {
	boom := errors.New("bus closed")
	fake := &testutils.FakePublisher{
		PublishFunc: func(string, ...*message.Message) error { return boom },
	}
	p := NewEventPublisher(fake, testutils.NoOpLogger())

	err := p.PublishScoreUpdated(context.Background(), ScoreUpdatedPayloadV1{GameID: uuid.New(), Player: 2})
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped publish error, got %v", err)
	}
}
