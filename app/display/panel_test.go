package display

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func litIn(fb *Framebuffer, x0, y0, x1, y1 int16) int {
	n := 0
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if fb.Pixel(x, y) {
				n++
			}
		}
	}
	return n
}

func TestPanel_DrawRectOutline(t *testing.T) {
	fb := NewFramebuffer(128, 64)
	p := NewPanel("oled1", fb)

	require.NoError(t, p.DrawRect(0, 0, 128, 24, false))

	assert.True(t, fb.Pixel(0, 0))
	assert.True(t, fb.Pixel(127, 0))
	assert.True(t, fb.Pixel(0, 23))
	assert.True(t, fb.Pixel(127, 23))
	assert.False(t, fb.Pixel(64, 12), "outline must not fill the interior")
	assert.False(t, fb.Pixel(0, 24), "outline must stay inside its height")
}

func TestPanel_DrawRectFilledAndClear(t *testing.T) {
	fb := NewFramebuffer(128, 64)
	p := NewPanel("oled1", fb)

	require.NoError(t, p.DrawRect(10, 10, 20, 10, true))
	assert.Equal(t, 200, litIn(fb, 0, 0, 127, 63))

	require.NoError(t, p.ClearRect(10, 10, 10, 10))
	assert.Equal(t, 100, litIn(fb, 0, 0, 127, 63))
	assert.False(t, fb.Pixel(15, 15))
	assert.True(t, fb.Pixel(25, 15))
}

func TestPanel_EmptyRectIsAnError(t *testing.T) {
	p := NewPanel("oled1", NewFramebuffer(128, 64))
	assert.Error(t, p.DrawRect(0, 0, 0, 10, false))
	assert.Error(t, p.ClearRect(0, 0, 10, 0))
}

func TestPanel_DrawTextStaysNearOrigin(t *testing.T) {
	fb := NewFramebuffer(128, 64)
	p := NewPanel("oled1", fb)

	require.NoError(t, p.DrawText("88", 32, 48))

	assert.Positive(t, litIn(fb, 32, 44, 60, 60))
	assert.Zero(t, litIn(fb, 0, 0, 127, 40), "text drawn above its line")
	assert.Zero(t, litIn(fb, 0, 0, 31, 63), "text drawn left of its origin")
}

func TestPanel_FlushShowsBuffer(t *testing.T) {
	fb := NewFramebuffer(128, 64)
	p := NewPanel("oled1", fb)

	require.NoError(t, p.DrawRect(0, 0, 4, 4, true))
	assert.False(t, fb.Shown(1, 1), "nothing visible before flush")

	require.NoError(t, p.Flush())
	assert.True(t, fb.Shown(1, 1))
	assert.Equal(t, 1, fb.Flushes())
}

func TestPanel_FlushErrorIsWrapped(t *testing.T) {
	fb := NewFramebuffer(128, 64)
	p := NewPanel("oled2", fb)
	boom := errors.New("i2c: nack")
	fb.Fail(boom)

	err := p.Flush()
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "oled2")
	assert.Zero(t, fb.Flushes())

	fb.Fail(nil)
	assert.NoError(t, p.Flush())
}

func TestPanel_NameAndSize(t *testing.T) {
	p := NewPanel("left", NewFramebuffer(128, 64))
	w, h := p.Size()
	assert.Equal(t, "left", p.Name())
	assert.Equal(t, int16(128), w)
	assert.Equal(t, int16(64), h)
}
