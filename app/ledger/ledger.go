// Package ledger holds the authoritative score state for a two-player game.
package ledger

import (
	"fmt"
	"sync"
)

// Player identifies one side of the table.
type Player uint8

const (
	Player1 Player = 1
	Player2 Player = 2
)

// Players lists both players in display order.
var Players = [2]Player{Player1, Player2}

func (p Player) Valid() bool {
	return p == Player1 || p == Player2
}

func (p Player) String() string {
	return fmt.Sprintf("P%d", uint8(p))
}

func (p Player) index() int {
	if !p.Valid() {
		panic(fmt.Sprintf("ledger: invalid player %d", uint8(p)))
	}
	return int(p) - 1
}

// Delta is the change requested by one button press.
type Delta int8

const (
	Decrement Delta = -1
	Increment Delta = 1
)

func (d Delta) Valid() bool {
	return d == Decrement || d == Increment
}

func (d Delta) String() string {
	switch d {
	case Increment:
		return "+1"
	case Decrement:
		return "-1"
	default:
		return fmt.Sprintf("invalid(%d)", int8(d))
	}
}

// Scores is a point-in-time copy of the ledger.
type Scores struct {
	Player1 int
	Player2 int
}

// Of returns the score of p in the snapshot.
func (s Scores) Of(p Player) int {
	if p == Player2 {
		return s.Player2
	}
	return s.Player1
}

// Ledger keeps both scores. Scores never go below zero.
//
// Writes come from the foreground loop only; the lock exists so that
// observers on other goroutines (health, metrics) can take snapshots.
type Ledger struct {
	mu     sync.RWMutex
	scores [2]int
}

func New() *Ledger {
	return &Ledger{}
}

// Apply adds delta to the player's score and returns the new score.
// A decrement at zero leaves the score at zero. Invalid players or deltas
// panic: the input mapping rejects them before the loop starts.
func (l *Ledger) Apply(p Player, d Delta) int {
	i := p.index()
	if !d.Valid() {
		panic(fmt.Sprintf("ledger: invalid delta %d", int8(d)))
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	switch d {
	case Increment:
		l.scores[i]++
	case Decrement:
		if l.scores[i] > 0 {
			l.scores[i]--
		}
	}
	return l.scores[i]
}

func (l *Ledger) Score(p Player) int {
	i := p.index()
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.scores[i]
}

func (l *Ledger) Snapshot() Scores {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return Scores{Player1: l.scores[0], Player2: l.scores[1]}
}
