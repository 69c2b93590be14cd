// Package scoreevents carries score changes from the scoreboard to anything
// that wants to observe them, over a watermill Pub/Sub.
package scoreevents

import (
	"time"

	"github.com/google/uuid"
)

const (
	// GameStartedV1 is published once the screens have been drawn at start-up.
	GameStartedV1 = "scoreboard.game.started.v1"
	// ScoreUpdatedV1 is published after every applied score change.
	ScoreUpdatedV1 = "scoreboard.score.updated.v1"
)

// GameStartedPayloadV1 announces a fresh game.
type GameStartedPayloadV1 struct {
	GameID    uuid.UUID `json:"game_id"`
	Surfaces  []string  `json:"surfaces"`
	StartedAt time.Time `json:"started_at"`
}

// ScoreUpdatedPayloadV1 describes one applied button press.
type ScoreUpdatedPayloadV1 struct {
	GameID        uuid.UUID `json:"game_id"`
	Player        int       `json:"player"`
	Delta         int       `json:"delta"`
	Score         int       `json:"score"`
	Player1Score  int       `json:"player1_score"`
	Player2Score  int       `json:"player2_score"`
	FormattedText string    `json:"formatted_text"`
	UpdatedAt     time.Time `json:"updated_at"`
}
