package suzy

import "testing"

func TestFramebuffer_DecodesNibbles(t *testing.T) {
	e, ram := newTestEngine()
	const base = 0x2000

	// Row 0: first byte high nibble = 0xA (col0), low nibble = 0x3 (col1).
	ram[base] = 0xA3

	img := e.Framebuffer(base)

	if got := img.ColorIndexAt(0, 0); got != 0xA {
		t.Errorf("pixel (0,0) = %#x, want 0xA", got)
	}
	if got := img.ColorIndexAt(1, 0); got != 0x3 {
		t.Errorf("pixel (1,0) = %#x, want 0x3", got)
	}

	bounds := img.Bounds()
	if bounds.Dx() != ScreenWidth || bounds.Dy() != ScreenHeight {
		t.Errorf("image bounds = %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), ScreenWidth, ScreenHeight)
	}
}

func TestFramebuffer_SecondRowUsesStride80(t *testing.T) {
	e, ram := newTestEngine()
	const base = 0x3000
	ram[base+80] = 0xF0 // row 1, col 0 = 0xF

	img := e.Framebuffer(base)
	if got := img.ColorIndexAt(0, 1); got != 0xF {
		t.Errorf("pixel (0,1) = %#x, want 0xF", got)
	}
}
