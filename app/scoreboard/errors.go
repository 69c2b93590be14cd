package scoreboard

import (
	"errors"
	"fmt"
)

// SurfaceError reports a display that failed to draw or flush. It stops the
// event loop.
type SurfaceError struct {
	Surface string
	Op      string
	Err     error
}

func (e *SurfaceError) Error() string {
	return fmt.Sprintf("surface %s: %s: %v", e.Surface, e.Op, e.Err)
}

func (e *SurfaceError) Unwrap() error {
	return e.Err
}

// IsSurfaceError checks if err carries a SurfaceError
func IsSurfaceError(err error) bool {
	var se *SurfaceError
	return errors.As(err, &se)
}
