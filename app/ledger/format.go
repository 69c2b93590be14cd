package ledger

import (
	"fmt"
	"strconv"
)

// FormatScore renders a score for the display: at least two digits, zero padded.
// Scores of 100 or more keep every digit ("100") rather than wrapping or
// clamping, so the panel never shows a wrong number.
func FormatScore(n int) string {
	if n < 0 {
		n = 0
	}
	return fmt.Sprintf("%02d", n)
}

// ParseScore is the inverse of FormatScore.
func ParseScore(s string) (int, error) {
	if len(s) < 2 {
		return 0, fmt.Errorf("score text %q shorter than two digits", s)
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("score text %q is not decimal", s)
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("parse score %q: %w", s, err)
	}
	return n, nil
}
