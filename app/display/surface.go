//go:generate mockgen -source=surface.go -destination=mocks/mock_surface.go -package=mocks

// Package display adapts monochrome display drivers to the drawing
// operations the scoreboard needs.
package display

// Surface is one addressable display. Coordinates are pixels from the top
// left corner; drawing goes to an off-screen buffer until Flush.
type Surface interface {
	Name() string
	// DrawRect draws the outline of a rectangle, or a solid one when filled is set.
	DrawRect(x, y, w, h int16, filled bool) error
	// ClearRect switches every pixel of the rectangle off.
	ClearRect(x, y, w, h int16) error
	// DrawText writes s with its top-left corner at (x, y).
	DrawText(s string, x, y int16) error
	// Flush pushes the buffer to the panel.
	Flush() error
}
