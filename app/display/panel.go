package display

import (
	"fmt"
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinydraw"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var (
	On  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Off = color.RGBA{}
)

// textBaseline converts a top-left text position into the baseline
// tinyfont draws from.
const textBaseline = 7

// Panel implements Surface on top of any TinyGo display driver, such as
// ssd1306.Device or a Framebuffer.
type Panel struct {
	name string
	dev  drivers.Displayer
	font tinyfont.Fonter
}

func NewPanel(name string, dev drivers.Displayer) *Panel {
	return &Panel{
		name: name,
		dev:  dev,
		font: &proggy.TinySZ8pt7b,
	}
}

func (p *Panel) Name() string {
	return p.name
}

// Size reports the panel resolution.
func (p *Panel) Size() (int16, int16) {
	return p.dev.Size()
}

func (p *Panel) DrawRect(x, y, w, h int16, filled bool) error {
	var err error
	if filled {
		err = tinydraw.FilledRectangle(p.dev, x, y, w, h, On)
	} else {
		err = tinydraw.Rectangle(p.dev, x, y, w, h, On)
	}
	if err != nil {
		return fmt.Errorf("draw rect %dx%d at (%d,%d): %w", w, h, x, y, err)
	}
	return nil
}

func (p *Panel) ClearRect(x, y, w, h int16) error {
	if err := tinydraw.FilledRectangle(p.dev, x, y, w, h, Off); err != nil {
		return fmt.Errorf("clear rect %dx%d at (%d,%d): %w", w, h, x, y, err)
	}
	return nil
}

func (p *Panel) DrawText(s string, x, y int16) error {
	tinyfont.WriteLine(p.dev, p.font, x, y+textBaseline, s, On)
	return nil
}

func (p *Panel) Flush() error {
	if err := p.dev.Display(); err != nil {
		return fmt.Errorf("flush %s: %w", p.name, err)
	}
	return nil
}
