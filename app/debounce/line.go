package debounce

import (
	"fmt"

	"github.com/Black-And-White-Club/pingpong-scoreboard/app/ledger"
)

// Line is one logical button input. The numeric order is the dispatcher's
// scan order.
type Line uint8

const (
	LineP1Decrement Line = iota
	LineP1Increment
	LineP2Decrement
	LineP2Increment

	NumLines = 4
)

// ScanOrder is the fixed priority among lines that are pending together.
var ScanOrder = [NumLines]Line{LineP1Decrement, LineP1Increment, LineP2Decrement, LineP2Increment}

// LineFor returns the line carrying (p, d), or false if no such line exists.
func LineFor(p ledger.Player, d ledger.Delta) (Line, bool) {
	if !p.Valid() || !d.Valid() {
		return 0, false
	}
	l := Line((int(p) - 1) * 2)
	if d == ledger.Increment {
		l++
	}
	return l, true
}

func (l Line) Valid() bool {
	return l < NumLines
}

func (l Line) Player() ledger.Player {
	if l >= LineP2Decrement {
		return ledger.Player2
	}
	return ledger.Player1
}

func (l Line) Delta() ledger.Delta {
	if l%2 == 1 {
		return ledger.Increment
	}
	return ledger.Decrement
}

func (l Line) String() string {
	if !l.Valid() {
		return fmt.Sprintf("line(%d)", uint8(l))
	}
	op := "sub"
	if l.Delta() == ledger.Increment {
		op = "add"
	}
	return fmt.Sprintf("p%d_%s", uint8(l.Player()), op)
}
