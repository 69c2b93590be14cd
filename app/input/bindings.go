// Package input maps physical buttons and simulator keys onto debounced lines.
package input

import (
	"fmt"

	"github.com/Black-And-White-Club/pingpong-scoreboard/app/debounce"
	"github.com/Black-And-White-Club/pingpong-scoreboard/app/ledger"
	"github.com/Black-And-White-Club/pingpong-scoreboard/config"
)

// EdgeSink receives rising edges. debounce.Debouncer implements it.
type EdgeSink interface {
	Edge(line debounce.Line)
}

// Binding ties one configured input to the line it feeds.
type Binding struct {
	Name string
	Line debounce.Line
	Pin  int
	Key  rune
}

// Bindings resolves the configured inputs. Every line must be bound exactly once.
func Bindings(inputs []config.InputConfig) ([]Binding, error) {
	var bound [debounce.NumLines]bool
	out := make([]Binding, 0, len(inputs))

	for _, in := range inputs {
		if in.Player < 1 || in.Player > 2 || in.Delta < -1 || in.Delta > 1 {
			return nil, &config.MappingError{Input: in.Name, Reason: fmt.Sprintf("no line for player %d delta %d", in.Player, in.Delta)}
		}
		line, ok := debounce.LineFor(ledger.Player(in.Player), ledger.Delta(in.Delta))
		if !ok {
			return nil, &config.MappingError{Input: in.Name, Reason: fmt.Sprintf("no line for player %d delta %d", in.Player, in.Delta)}
		}
		if bound[line] {
			return nil, &config.MappingError{Input: in.Name, Reason: fmt.Sprintf("line %s bound twice", line)}
		}
		bound[line] = true

		b := Binding{Name: in.Name, Line: line, Pin: in.Pin}
		if in.Key != "" {
			b.Key = []rune(in.Key)[0]
		}
		out = append(out, b)
	}

	for line, ok := range bound {
		if !ok {
			return nil, &config.MappingError{Input: debounce.Line(line).String(), Reason: "not bound to any input"}
		}
	}
	return out, nil
}

// ByPin indexes bindings by GPIO pin number.
func ByPin(bindings []Binding) map[int]debounce.Line {
	m := make(map[int]debounce.Line, len(bindings))
	for _, b := range bindings {
		m[b.Pin] = b.Line
	}
	return m
}

// ByKey indexes bindings by keyboard rune. Bindings without a key are skipped.
func ByKey(bindings []Binding) map[rune]debounce.Line {
	m := make(map[rune]debounce.Line, len(bindings))
	for _, b := range bindings {
		if b.Key != 0 {
			m[b.Key] = b.Line
		}
	}
	return m
}
