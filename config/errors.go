package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// MappingError indicates that an input line is bound to something that does not exist.
type MappingError struct {
	Input  string
	Reason string
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("invalid input mapping %q: %s", e.Input, e.Reason)
}

// IsMappingError checks if an error is caused by a malformed input mapping
func IsMappingError(err error) bool {
	var me *MappingError
	return errors.As(err, &me)
}

// ValidationError collects every problem found in a config.
type ValidationError struct {
	Problems []error
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Problems))
	for _, p := range e.Problems {
		msgs = append(msgs, p.Error())
	}
	return "invalid config: " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Unwrap() []error {
	return e.Problems
}

// Validate fails fast on anything that would otherwise surface as a runtime fault.
func (c *Config) Validate() error {
	var problems []error

	if c.Scoreboard.DebounceWindow < 0 {
		problems = append(problems, fmt.Errorf("scoreboard.debounce_window must not be negative"))
	}
	if c.Scoreboard.PollInterval <= 0 {
		problems = append(problems, fmt.Errorf("scoreboard.poll_interval must be positive"))
	}
	if c.Heartbeat.On <= 0 || c.Heartbeat.Off <= 0 {
		problems = append(problems, fmt.Errorf("heartbeat on/off durations must be positive"))
	}
	if c.Tracing.SampleRate < 0 || c.Tracing.SampleRate > 1 {
		problems = append(problems, fmt.Errorf("tracing.sample_rate must be within [0, 1], got %v", c.Tracing.SampleRate))
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		problems = append(problems, fmt.Errorf("log.format must be text or json, got %q", c.Log.Format))
	}

	problems = append(problems, c.validateInputs()...)
	problems = append(problems, c.validateDisplays()...)

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

func (c *Config) validateInputs() []error {
	var problems []error
	if len(c.Inputs) != 4 {
		problems = append(problems, &MappingError{Input: "inputs", Reason: fmt.Sprintf("expected 4 inputs, got %d", len(c.Inputs))})
	}

	type binding struct{ player, delta int }
	seenBinding := make(map[binding]string)
	seenPin := make(map[int]string)
	seenKey := make(map[string]string)

	for i, in := range c.Inputs {
		name := in.Name
		if name == "" {
			name = fmt.Sprintf("inputs[%d]", i)
		}
		if in.Player != 1 && in.Player != 2 {
			problems = append(problems, &MappingError{Input: name, Reason: fmt.Sprintf("player must be 1 or 2, got %d", in.Player)})
			continue
		}
		if in.Delta != 1 && in.Delta != -1 {
			problems = append(problems, &MappingError{Input: name, Reason: fmt.Sprintf("delta must be 1 or -1, got %d", in.Delta)})
			continue
		}
		b := binding{in.Player, in.Delta}
		if other, ok := seenBinding[b]; ok {
			problems = append(problems, &MappingError{Input: name, Reason: fmt.Sprintf("duplicates player %d delta %+d already bound by %q", in.Player, in.Delta, other)})
		}
		seenBinding[b] = name

		if other, ok := seenPin[in.Pin]; ok {
			problems = append(problems, &MappingError{Input: name, Reason: fmt.Sprintf("pin %d already used by %q", in.Pin, other)})
		}
		seenPin[in.Pin] = name
		if in.Pin == c.Heartbeat.Pin {
			problems = append(problems, &MappingError{Input: name, Reason: fmt.Sprintf("pin %d is the heartbeat LED", in.Pin)})
		}

		if in.Key != "" {
			if utf8.RuneCountInString(in.Key) != 1 {
				problems = append(problems, &MappingError{Input: name, Reason: fmt.Sprintf("key must be a single character, got %q", in.Key)})
			} else if other, ok := seenKey[in.Key]; ok {
				problems = append(problems, &MappingError{Input: name, Reason: fmt.Sprintf("key %q already used by %q", in.Key, other)})
			}
			seenKey[in.Key] = name
		}
	}
	return problems
}

func (c *Config) validateDisplays() []error {
	var problems []error
	if len(c.Displays) == 0 {
		problems = append(problems, fmt.Errorf("at least one display is required"))
	}
	seen := make(map[string]bool)
	for _, d := range c.Displays {
		if seen[d.Name] {
			problems = append(problems, fmt.Errorf("display %q declared twice", d.Name))
		}
		seen[d.Name] = true
		if d.Width < DefaultDisplayWidth || d.Height < DefaultDisplayHeight {
			problems = append(problems, fmt.Errorf("display %q is %dx%d, need at least %dx%d", d.Name, d.Width, d.Height, DefaultDisplayWidth, DefaultDisplayHeight))
		}
	}
	return problems
}
