package display

import (
	"fmt"
	"strings"
	"sync"
)

// Terminal renders framebuffers as text, two pixel rows per line.
type Terminal struct {
	mu     sync.Mutex
	frames []*Framebuffer
	names  []string
}

func NewTerminal() *Terminal {
	return &Terminal{}
}

// Add appends fb to the rendered panels, labelled with name.
func (t *Terminal) Add(name string, fb *Framebuffer) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.frames = append(t.frames, fb)
	t.names = append(t.names, name)
}

// Render returns the last displayed contents of every panel in the order added.
func (t *Terminal) Render() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	var b strings.Builder
	for i, fb := range t.frames {
		fmt.Fprintf(&b, "[%s]\n", t.names[i])
		writeFrame(&b, fb)
	}
	return b.String()
}

func writeFrame(b *strings.Builder, fb *Framebuffer) {
	width, height := fb.Size()
	frame := fb.Frame()
	at := func(x, y int16) bool {
		if y >= height {
			return false
		}
		return frame[int(y)*int(width)+int(x)]
	}
	for y := int16(0); y < height; y += 2 {
		for x := int16(0); x < width; x++ {
			top, bottom := at(x, y), at(x, y+1)
			switch {
			case top && bottom:
				b.WriteRune('█')
			case top:
				b.WriteRune('▀')
			case bottom:
				b.WriteRune('▄')
			default:
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
}
