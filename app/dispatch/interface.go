//go:generate mockgen -source=interface.go -destination=mocks/mock_interface.go -package=mocks
package dispatch

import (
	"context"

	"github.com/Black-And-White-Club/pingpong-scoreboard/app/debounce"
	"github.com/Black-And-White-Club/pingpong-scoreboard/app/ledger"
)

// Updater applies one logical press. scoreboard.Controller implements it.
type Updater interface {
	Update(ctx context.Context, p ledger.Player, d ledger.Delta) error
}

// TriggerSource hands out pending triggers. debounce.Debouncer implements it.
type TriggerSource interface {
	Take(line debounce.Line) bool
	Wake() <-chan struct{}
}
