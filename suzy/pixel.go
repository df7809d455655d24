package suzy

// Sprite types, as packed into the low 3 bits of SPRCTL0.
const (
	spriteBackgroundShadow    = 0
	spriteBackgroundNoCollide = 1
	spriteNonCollide          = 2
	spriteBoundary            = 3
	spriteNormal              = 4
	spriteBoundaryShadow      = 5
	spriteShadow              = 6
	spriteXorShadow           = 7
)

// pixelPolicy describes one of the eight pixel-compositor behaviors: when
// to write the framebuffer, whether that write XORs instead of replaces,
// and when the pixel participates in collision detection.
type pixelPolicy struct {
	writeIf    func(pen uint8) bool
	xorWrite   bool
	collideIf  func(pen uint8) bool
}

var pixelPolicies = [8]pixelPolicy{
	spriteBackgroundShadow: {
		writeIf:   func(pen uint8) bool { return true },
		collideIf: func(pen uint8) bool { return pen != 0x0E },
	},
	spriteBackgroundNoCollide: {
		writeIf:   func(pen uint8) bool { return true },
		collideIf: func(pen uint8) bool { return false },
	},
	spriteNonCollide: {
		writeIf:   func(pen uint8) bool { return pen != 0 },
		collideIf: func(pen uint8) bool { return false },
	},
	spriteBoundary: {
		writeIf:   func(pen uint8) bool { return pen != 0 && pen != 0x0F },
		collideIf: func(pen uint8) bool { return pen != 0 },
	},
	spriteNormal: {
		writeIf:   func(pen uint8) bool { return pen != 0 },
		collideIf: func(pen uint8) bool { return pen != 0 },
	},
	spriteBoundaryShadow: {
		writeIf:   func(pen uint8) bool { return pen != 0 && pen != 0x0E && pen != 0x0F },
		collideIf: func(pen uint8) bool { return pen != 0 && pen != 0x0E },
	},
	spriteShadow: {
		writeIf:   func(pen uint8) bool { return pen != 0 },
		collideIf: func(pen uint8) bool { return pen != 0 && pen != 0x0E },
	},
	spriteXorShadow: {
		writeIf:   func(pen uint8) bool { return pen != 0 },
		xorWrite:  true,
		collideIf: func(pen uint8) bool { return pen != 0 && pen != 0x0E },
	},
}

// nibbleAddr returns the byte address and whether hoff lands in the high
// (even column) or low (odd column) nibble of that byte, for a row base.
func nibbleAddr(base uint16, hoff int) (addr uint16, high bool) {
	return base + uint16(hoff/2), hoff%2 == 0
}

func readNibble(ram RAM, base uint16, hoff int) uint8 {
	addr, high := nibbleAddr(base, hoff)
	b := ram.ReadByte(addr)
	if high {
		return b >> 4
	}
	return b & 0x0F
}

func writeNibble(ram RAM, base uint16, hoff int, v uint8) {
	addr, high := nibbleAddr(base, hoff)
	b := ram.ReadByte(addr)
	if high {
		b = (b & 0x0F) | (v << 4)
	} else {
		b = (b & 0xF0) | (v & 0x0F)
	}
	ram.WriteByte(addr, b)
}

// compositePixel applies the active sprite type's policy at screen column
// hoff on the current line, updating the framebuffer, the collision
// buffer, and the "any pixel drawn" and running-collision accumulators.
func (e *Engine) compositePixel(hoff int, pen uint8) {
	if hoff < 0 || hoff >= ScreenWidth {
		return
	}

	policy := pixelPolicies[e.spriteType]

	if policy.writeIf(pen) {
		if policy.xorWrite {
			cur := readNibble(e.ram, e.curLineVideoBase, hoff)
			e.cyclesUsed += sprRdWrCyc
			writeNibble(e.ram, e.curLineVideoBase, hoff, cur^pen)
		} else {
			writeNibble(e.ram, e.curLineVideoBase, hoff, pen)
		}
		e.cyclesUsed += 2 * sprRdWrCyc
		e.anyPixelDrawn = true
	}

	collisionsEnabled := !e.collideDisable && !e.noCollide
	if collisionsEnabled && policy.collideIf(pen) {
		existing := readNibble(e.ram, e.curLineCollBase, hoff)
		e.cyclesUsed += sprRdWrCyc
		if existing > e.collision {
			e.collision = existing
		}
		writeNibble(e.ram, e.curLineCollBase, hoff, e.collNum)
		e.cyclesUsed += 2 * sprRdWrCyc
	}
}
