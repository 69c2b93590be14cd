package display

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFramebuffer_OutOfRangeIgnored(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	fb.SetPixel(-1, 0, On)
	fb.SetPixel(4, 0, On)
	fb.SetPixel(0, 4, On)
	if fb.Pixel(-1, 0) || fb.Pixel(4, 0) || fb.Shown(0, 9) {
		t.Fatal("out of range pixels must read as off")
	}
	if err := fb.Display(); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(make([]bool, 16), fb.Frame()); diff != "" {
		t.Fatalf("frame mismatch (-want +got):\n%s", diff)
	}
}

func TestFramebuffer_OnDisplayHook(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	calls := 0
	fb.OnDisplay(func(*Framebuffer) { calls++ })
	_ = fb.Display()
	_ = fb.Display()
	if calls != 2 {
		t.Fatalf("hook called %d times, want 2", calls)
	}
}

func TestTerminal_Render(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	fb.SetPixel(0, 0, On)
	fb.SetPixel(1, 1, On)
	fb.SetPixel(2, 0, On)
	fb.SetPixel(2, 1, On)
	fb.SetPixel(3, 3, On)

	term := NewTerminal()
	term.Add("oled1", fb)

	if got := term.Render(); got != "[oled1]\n    \n    \n" {
		t.Fatalf("undisplayed pixels rendered: %q", got)
	}
	if err := fb.Display(); err != nil {
		t.Fatal(err)
	}

	want := "[oled1]\n" +
		"▀▄█ \n" +
		"   ▄\n"
	if diff := cmp.Diff(want, term.Render()); diff != "" {
		t.Fatalf("render mismatch (-want +got):\n%s", diff)
	}
}

func TestTerminal_RenderOrder(t *testing.T) {
	term := NewTerminal()
	term.Add("b", NewFramebuffer(1, 2))
	term.Add("a", NewFramebuffer(1, 2))
	if diff := cmp.Diff("[b]\n \n[a]\n \n", term.Render()); diff != "" {
		t.Fatalf("render mismatch (-want +got):\n%s", diff)
	}
}
