package display

import (
	"image/color"
	"sync"
)

// Framebuffer is an in-memory monochrome display. It satisfies
// drivers.Displayer so a Panel can draw on it exactly as on the OLED.
type Framebuffer struct {
	mu      sync.Mutex
	width   int16
	height  int16
	pixels  []bool
	shown   []bool
	flushes int
	failure error

	onDisplay func(*Framebuffer)
}

func NewFramebuffer(width, height int16) *Framebuffer {
	n := int(width) * int(height)
	return &Framebuffer{
		width:  width,
		height: height,
		pixels: make([]bool, n),
		shown:  make([]bool, n),
	}
}

func (f *Framebuffer) Size() (x, y int16) {
	return f.width, f.height
}

// SetPixel lights the pixel for any non-black colour. Out of range writes are ignored.
func (f *Framebuffer) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return
	}
	f.mu.Lock()
	f.pixels[int(y)*int(f.width)+int(x)] = c.R != 0 || c.G != 0 || c.B != 0
	f.mu.Unlock()
}

// Display copies the draw buffer to the visible buffer.
func (f *Framebuffer) Display() error {
	f.mu.Lock()
	if f.failure != nil {
		err := f.failure
		f.mu.Unlock()
		return err
	}
	copy(f.shown, f.pixels)
	f.flushes++
	hook := f.onDisplay
	f.mu.Unlock()

	if hook != nil {
		hook(f)
	}
	return nil
}

// Fail makes every following Display return err. A nil err heals the panel.
func (f *Framebuffer) Fail(err error) {
	f.mu.Lock()
	f.failure = err
	f.mu.Unlock()
}

// OnDisplay registers a hook run after every successful Display.
func (f *Framebuffer) OnDisplay(hook func(*Framebuffer)) {
	f.mu.Lock()
	f.onDisplay = hook
	f.mu.Unlock()
}

// Pixel reports the draw buffer, including changes not yet displayed.
func (f *Framebuffer) Pixel(x, y int16) bool {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return false
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pixels[int(y)*int(f.width)+int(x)]
}

// Shown reports what the panel showed at the last Display.
func (f *Framebuffer) Shown(x, y int16) bool {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return false
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.shown[int(y)*int(f.width)+int(x)]
}

// Frame returns a copy of the visible buffer, row major.
func (f *Framebuffer) Frame() []bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]bool, len(f.shown))
	copy(out, f.shown)
	return out
}

func (f *Framebuffer) Flushes() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.flushes
}
