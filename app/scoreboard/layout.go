package scoreboard

// Rect is a pixel rectangle on a 128x64 panel.
type Rect struct {
	X, Y, W, H int16
}

// Screen layout. The header never changes after start-up; only the body is
// redrawn when a score moves.
var (
	HeaderRect = Rect{X: 0, Y: 0, W: 128, H: 24}
	BodyRect   = Rect{X: 0, Y: 25, W: 128, H: 39}
)

const (
	caption   = "P1 - P2"
	scoresGap = "   "
)

const (
	headerTextX int16 = 30
	headerTextY int16 = 8
	captionX    int16 = 32
	captionY    int16 = 32
	scoresX     int16 = 32
	scoresY     int16 = 48
)

// BodyText is the score line shown in the body, e.g. "03   11".
func BodyText(p1, p2 string) string {
	return p1 + scoresGap + p2
}
