package suzy

// Quadrant indices: SE, NE, NW, SW. Flip tables remap a quadrant index
// under vertical/horizontal mirroring for a superclip fast-reject path;
// the renderer does not use them (see SetSuperclip).
const (
	quadSE = 0
	quadNE = 1
	quadNW = 2
	quadSW = 3
)

var vQuadFlip = [4]uint8{1, 0, 3, 2}
var hQuadFlip = [4]uint8{3, 2, 1, 0}

// initialQuadrant derives the first quadrant to render from SPRCTL1's
// start-left/start-up bits.
func initialQuadrant(startLeft, startUp bool) uint8 {
	switch {
	case !startLeft && !startUp:
		return quadSE
	case startLeft && !startUp:
		return quadSW
	case startLeft && startUp:
		return quadNW
	default: // !startLeft && startUp
		return quadNE
	}
}

// PaintSprites walks the SCB chain starting at SCBNEXT, rendering every
// non-skipped sprite into RAM, and returns the number of cycles consumed.
// It is a no-op returning 0 unless both SUZYBUSEN and SPRGO are set.
func (e *Engine) PaintSprites() int {
	if !e.suzyBusEnable || !e.spriteGo {
		return 0
	}

	e.cyclesUsed = 0
	e.sprCount = 0

	for {
		if uint8(e.scbnext>>8) == 0 {
			e.spriteGo = false
			break
		}

		e.sprCount++
		if e.sprCount > maxSCBChain {
			e.halted = true
			return 0
		}

		e.paintOneSprite()
	}

	return e.cyclesUsed
}

// paintOneSprite reads one SCB header, optionally renders its four
// quadrants, and advances SCBNEXT to the next block in the chain.
func (e *Engine) paintOneSprite() {
	e.scbadr = e.scbnext
	e.tmpadr = e.scbnext

	ctl0 := e.ram.ReadByte(e.tmpadr)
	ctl1 := e.ram.ReadByte(e.tmpadr + 1)
	coll := e.ram.ReadByte(e.tmpadr + 2)
	e.Poke(regSPRCTL0, ctl0)
	e.Poke(regSPRCTL1, ctl1)
	e.Poke(regSPRCOLL, coll)

	nextLo := e.ram.ReadByte(e.tmpadr + 3)
	nextHi := e.ram.ReadByte(e.tmpadr + 4)
	e.scbnext = uint16(nextLo) | uint16(nextHi)<<8
	e.tmpadr += 5
	e.cyclesUsed += 5 * sprRdWrCyc

	e.collision = 0
	e.anyPixelDrawn = false

	if e.skipSprite {
		return
	}

	e.sprdoff = uint16(e.ram.ReadByte(e.tmpadr)) | uint16(e.ram.ReadByte(e.tmpadr+1))<<8
	e.tmpadr += 2
	e.hposstrt = uint16(e.ram.ReadByte(e.tmpadr)) | uint16(e.ram.ReadByte(e.tmpadr+1))<<8
	e.tmpadr += 2
	e.vposstrt = uint16(e.ram.ReadByte(e.tmpadr)) | uint16(e.ram.ReadByte(e.tmpadr+1))<<8
	e.tmpadr += 2
	e.cyclesUsed += 6 * sprRdWrCyc

	e.readReloadBlock()

	if !e.reloadPalette {
		for i := 0; i < 8; i++ {
			b := e.ram.ReadByte(e.tmpadr)
			e.tmpadr++
			e.pens[2*i] = b >> 4
			e.pens[2*i+1] = b & 0x0F
		}
		e.cyclesUsed += 8 * sprRdWrCyc
	}

	e.sprdline = e.sprdoff
	e.renderQuadrants()

	if e.collideEligible() && !e.collideDisable && !e.noCollide {
		collAddr := e.scbadr + e.colloff
		e.ram.WriteByte(collAddr, e.collision)
		e.cyclesUsed += sprRdWrCyc

		if e.everOn {
			b := e.ram.ReadByte(collAddr)
			if !e.anyPixelDrawn {
				b |= 0x80
			} else {
				b &^= 0x80
			}
			e.ram.WriteByte(collAddr, b)
			e.cyclesUsed += 2 * sprRdWrCyc
		}
	}
}

// collideEligible reports whether the sprite's type ever participates in
// collision bookkeeping at all (independent of the collide-disable and
// no-collide flags, which paintOneSprite and compositePixel check
// separately).
func (e *Engine) collideEligible() bool {
	switch e.spriteType {
	case spriteNormal, spriteBoundary, spriteShadow, spriteBoundaryShadow, spriteXorShadow:
		return true
	default:
		return false
	}
}

// readReloadBlock reads the HSIZ/VSIZ/STRETCH/TILT fields present
// according to SPRCTL1's reload-depth field (0..3).
func (e *Engine) readReloadBlock() {
	if e.reloadDepth == 0 {
		return
	}

	e.sprhsiz = uint16(e.ram.ReadByte(e.tmpadr)) | uint16(e.ram.ReadByte(e.tmpadr+1))<<8
	e.sprvsiz = uint16(e.ram.ReadByte(e.tmpadr+2)) | uint16(e.ram.ReadByte(e.tmpadr+3))<<8
	e.tmpadr += 4
	e.cyclesUsed += 4 * sprRdWrCyc

	if e.reloadDepth >= 2 {
		e.stretch = uint16(e.ram.ReadByte(e.tmpadr)) | uint16(e.ram.ReadByte(e.tmpadr+1))<<8
		e.tmpadr += 2
		e.cyclesUsed += 2 * sprRdWrCyc
	}
	if e.reloadDepth >= 3 {
		e.tilt = uint16(e.ram.ReadByte(e.tmpadr)) | uint16(e.ram.ReadByte(e.tmpadr+1))<<8
		e.tmpadr += 2
		e.cyclesUsed += 2 * sprRdWrCyc
	}
}

// renderQuadrants runs the four-quadrant loop for the sprite whose header
// was just read, applying the first-quadrant anchor trick that closes the
// one-pixel seam between adjacent quadrants.
func (e *Engine) renderQuadrants() {
	start := initialQuadrant(e.startLeft, e.startUp)

	for loop := 0; loop < 4; loop++ {
		quad := (start + uint8(loop)) % 4

		hsign := int16(1)
		if quad == quadNW || quad == quadSW {
			hsign = -1
		}
		vsign := int16(1)
		if quad == quadNE || quad == quadNW {
			vsign = -1
		}
		if e.vflip {
			vsign = -vsign
		}
		if e.hflip {
			hsign = -hsign
		}

		if loop == 0 {
			e.hquadoff = int8(hsign)
			e.vquadoff = int8(vsign)
		}

		if !e.renderOneQuadrant(hsign, vsign) {
			break
		}
	}
}

// renderOneQuadrant renders source lines of the current quadrant until
// the line decoder reports end-of-quadrant or end-of-sprite. Returns
// false when the sprite has ended (the caller must stop the outer loop).
func (e *Engine) renderOneQuadrant(hsign, vsign int16) bool {
	voff := int(int16(e.vposstrt)) - int(int16(e.voff))
	e.tiltacum = 0
	if vsign > 0 {
		e.vsizacum = e.vsizoff
	} else {
		e.vsizacum = 0
	}
	hquadoff := int16(0)
	if hsign != int16(e.hquadoff) {
		hquadoff = hsign
	}
	vquadoffAdj := 0
	if vsign != int16(e.vquadoff) {
		vquadoffAdj = int(vsign)
	}
	voff += vquadoffAdj

	for {
		lineStart := e.sprdline

		e.tmpadr = lineStart
		offset := e.lineInit(0)
		if offset == 0 {
			return false
		}
		if offset == 1 {
			e.sprdline = lineStart + uint16(offset)
			return true
		}
		e.sprdline = lineStart + uint16(offset)

		e.vsizacum += e.sprvsiz
		pixelHeight := uint8(e.vsizacum >> 8)
		e.vsizacum &= 0x00FF

		for dl := uint8(0); dl < pixelHeight; dl++ {
			if vsign > 0 && voff >= ScreenHeight {
				break
			}
			if vsign < 0 && voff < 0 {
				break
			}

			if voff >= 0 && voff < ScreenHeight {
				// Each destination row stretched from this source line
				// re-decodes the same bitstream from scratch.
				e.tmpadr = lineStart
				e.lineInit(voff)
				e.renderOneLine(voff, hsign, hquadoff)
			}

			voff += int(vsign)
			if e.vStretch {
				e.sprhsiz += e.stretch
			}
		}

		if e.vStretch {
			e.sprvsiz += e.stretch * uint16(pixelHeight)
		}
	}
}

// renderOneLine decodes and composites the pixels of one destination
// scanline (whose decoder was already primed by the caller), applying
// tilt and per-pixel horizontal stretch.
func (e *Engine) renderOneLine(voff int, hsign, hquadoff int16) {
	e.tiltacum += e.tilt
	e.hposstrt = uint16(int16(e.hposstrt) + int16(e.tiltacum>>8))
	e.tiltacum &= 0x00FF

	hoff := int(int16(e.hposstrt)) - int(int16(e.hoff)) + int(hquadoff)

	if hsign > 0 {
		e.hsizacum = e.hsizoff
	} else {
		e.hsizacum = 0
	}

	wasOnScreen := false
	for {
		pen, status := e.lineGetPixel()
		if status == pixelLineEnd {
			return
		}

		e.hsizacum += e.sprhsiz
		pixelWidth := uint8(e.hsizacum >> 8)
		e.hsizacum &= 0x00FF

		onScreen := hoff >= 0 && hoff < ScreenWidth
		if onScreen {
			wasOnScreen = true
		} else if wasOnScreen {
			return
		}

		for w := uint8(0); w < pixelWidth; w++ {
			e.compositePixel(hoff, pen)
			hoff += int(hsign)
		}
	}
}
