package suzy

import (
	"image"
	"image/color"
)

// grayRamp is a 16-entry palette mapping a 4-bit pen index directly to a
// grayscale intensity (0..15 scaled to 0..255). It has no relationship to
// any cartridge-supplied pen-to-RGB table -- a host wiring up a real
// display controller is expected to supply its own palette and read the
// nibble buffer directly rather than use this helper.
var grayRamp = func() color.Palette {
	p := make(color.Palette, 16)
	for i := range p {
		v := uint8(i * 0x11)
		p[i] = color.Gray{Y: v}
	}
	return p
}()

// Framebuffer decodes the 4-bit-nibble video region starting at base
// (typically VIDBAS) into a 160x102 paletted image using a fixed grayscale
// ramp. It performs no RAM mutation and does not consume any part of the
// cycle budget PaintSprites reports; it exists purely so a host without its
// own display controller wired up yet can inspect a frame.
func (e *Engine) Framebuffer(base uint16) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, ScreenWidth, ScreenHeight), grayRamp)

	for row := 0; row < ScreenHeight; row++ {
		rowBase := base + uint16(row)*80
		for col := 0; col < ScreenWidth; col++ {
			pen := readNibble(e.ram, rowBase, col)
			img.SetColorIndex(col, row, pen)
		}
	}

	return img
}
