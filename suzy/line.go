package suzy

// Sentinel packet kinds produced by lineGetPixel.
const (
	pixelOK uint8 = iota
	pixelLineEnd
)

// lineInit points the decoder at a new source line: voff selects which
// destination scanline's RAM base addresses to compute (clamped to 0 for
// out-of-range values, a preserved hardware quirk), reads the line's
// leading offset byte, and primes the packet bit budget.
//
// Returns the raw offset byte: 0 means end of sprite, 1 means end of
// quadrant, anything else is the byte length to the next line.
func (e *Engine) lineInit(voff int) uint8 {
	if voff > 101 || voff < 0 {
		voff = 0
	}

	lineBase := e.vidbas + uint16(voff)*80
	collBase := e.collbas + uint16(voff)*80
	e.curLineVideoBase = lineBase
	e.curLineCollBase = collBase

	offset := e.ram.ReadByte(e.tmpadr)
	e.tmpadr++

	e.dec = decoder{
		packetBitsLeft: (int32(offset) - 1) * 8,
		pixelBits:      e.pixelBits,
		literalMode:    e.literalFlag,
	}

	if offset > 1 && e.literalFlag {
		e.dec.state = lineStateAbsLiteral
		e.dec.repeat = uint8((int32(offset) - 1) * 8 / int32(e.pixelBits))
	}

	return offset
}

// lineGetBits returns the next n bits (1..24) from the bitstream, MSB
// first, refilling 24 bits from RAM three bytes at a time when the valid
// window runs low. If the packet budget has at most n bits remaining --
// note the "<=", not "<" -- it returns 0 without consuming anything; this
// mirrors a real hardware quirk that some games' sprite data depends on.
func (e *Engine) lineGetBits(n uint8) uint32 {
	d := &e.dec
	if d.packetBitsLeft <= int32(n) {
		return 0
	}

	if d.validBits < n {
		b0 := uint32(e.ram.ReadByte(e.tmpadr))
		b1 := uint32(e.ram.ReadByte(e.tmpadr + 1))
		b2 := uint32(e.ram.ReadByte(e.tmpadr + 2))
		e.tmpadr += 3
		e.cyclesUsed += 3 * sprRdWrCyc
		d.shiftReg |= (b0<<16 | b1<<8 | b2) << (8 - d.validBits)
		d.validBits += 24
	}

	result := d.shiftReg >> (32 - uint32(n))
	d.shiftReg <<= n
	d.validBits -= n
	d.packetBitsLeft -= int32(n)
	return result
}

// lineGetPixel drives the packet state machine and returns the next pen
// index together with pixelLineEnd once the line (or sprite data, in
// absolute-literal mode) is exhausted.
func (e *Engine) lineGetPixel() (pen uint8, status uint8) {
	d := &e.dec

	if d.repeat == 0 {
		if d.state == lineStateAbsLiteral {
			return 0, pixelLineEnd
		}

		tag := e.lineGetBits(1)
		count := uint8(e.lineGetBits(4))
		if tag == 1 {
			d.state = lineStateLiteral
			d.repeat = count + 1
		} else {
			if count == 0 {
				return 0, pixelLineEnd
			}
			d.state = lineStatePacked
			d.repeat = count + 1
			d.curPixel = e.pens[e.lineGetBits(d.pixelBits)]
		}
	}

	d.repeat--

	switch d.state {
	case lineStateAbsLiteral:
		v := uint8(e.lineGetBits(d.pixelBits))
		if d.repeat == 0 && v == 0 {
			return 0, pixelLineEnd
		}
		return e.pens[v], pixelOK
	case lineStateLiteral:
		d.curPixel = e.pens[e.lineGetBits(d.pixelBits)]
		return d.curPixel, pixelOK
	default: // lineStatePacked
		return d.curPixel, pixelOK
	}
}
