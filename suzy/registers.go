package suzy

// Register addresses within the 256-byte window. Pairs are named with an L
// (low byte) / H (high byte) suffix; writing the L half of a pair also
// clears the H half, a quirk games rely on and reads of the H half do not
// trigger.
const (
	regTMPADRL = 0x00
	regTMPADRH = 0x01
	regTILTACUML = 0x02
	regTILTACUMH = 0x03
	regHOFFL = 0x04
	regHOFFH = 0x05
	regVOFFL = 0x06
	regVOFFH = 0x07
	regVIDBASL = 0x08
	regVIDBASH = 0x09
	regCOLLBASL = 0x0A
	regCOLLBASH = 0x0B
	regVIDADRL = 0x0C
	regVIDADRH = 0x0D
	regCOLLADRL = 0x0E
	regCOLLADRH = 0x0F
	regSCBNEXTL = 0x10
	regSCBNEXTH = 0x11
	regSPRDLINEL = 0x12
	regSPRDLINEH = 0x13
	regHPOSSTRTL = 0x14
	regHPOSSTRTH = 0x15
	regVPOSSTRTL = 0x16
	regVPOSSTRTH = 0x17
	regSPRHSIZL = 0x18
	regSPRHSIZH = 0x19
	regSPRVSIZL = 0x1A
	regSPRVSIZH = 0x1B
	regSTRETCHL = 0x1C
	regSTRETCHH = 0x1D
	regTILTL = 0x1E
	regTILTH = 0x1F
	regSPRDOFFL = 0x20
	regSPRDOFFH = 0x21
	regSPRVPOSL = 0x22
	regSPRVPOSH = 0x23
	regCOLLOFFL = 0x24
	regCOLLOFFH = 0x25
	regVSIZACUML = 0x26
	regVSIZACUMH = 0x27
	regHSIZACUML = 0x28
	regHSIZACUMH = 0x29
	regHSIZOFFL = 0x2A
	regHSIZOFFH = 0x2B
	regVSIZOFFL = 0x2C
	regVSIZOFFH = 0x2D
	regSCBADRL = 0x2E
	regSCBADRH = 0x2F
	regPROCADRL = 0x30
	regPROCADRH = 0x31

	regMATHD = 0x52
	regMATHC = 0x54
	regMATHB = 0x56
	regMATHA = 0x57

	regMATHP = 0x60
	regMATHN = 0x61
	regMATHH = 0x63
	regMATHG = 0x64
	regMATHF = 0x66
	regMATHE = 0x67
	regMATHM = 0x6C
	regMATHL = 0x6D
	regMATHK = 0x6E
	regMATHJ = 0x6F

	regSPRCTL0  = 0x80
	regSPRCTL1  = 0x81
	regSPRCOLL  = 0x82
	regSPRINIT  = 0x83

	regSUZYHREV = 0x88
	regSUZYBUSEN = 0x90
	regSPRGO    = 0x91
	regSPRSYS   = 0x92

	regJOYSTICK  = 0xB0
	regSWITCHES  = 0xB1
	regRCART0    = 0xB2
	regRCART1    = 0xB3
	regLEDS      = 0xB4
	regPPORTSTAT = 0xB8
	regPPORTDATA = 0xB9
	regHOWIE     = 0xBA
)

func readLowPair(p *uint16) uint8  { return uint8(*p) }
func readHighPair(p *uint16) uint8 { return uint8(*p >> 8) }
func writeLowPair(p *uint16, v uint8) { *p = uint16(v) }
func writeHighPair(p *uint16, v uint8) { *p = (*p & 0x00FF) | uint16(v)<<8 }

// pairFor returns a pointer to the 16-bit field addressed by a's even
// low-byte address, or nil if a does not name a register pair.
func (e *Engine) pairFor(evenAddr uint8) *uint16 {
	switch evenAddr {
	case regTMPADRL:
		return &e.tmpadr
	case regTILTACUML:
		return &e.tiltacum
	case regHOFFL:
		return &e.hoff
	case regVOFFL:
		return &e.voff
	case regVIDBASL:
		return &e.vidbas
	case regCOLLBASL:
		return &e.collbas
	case regVIDADRL:
		return &e.vidadr
	case regCOLLADRL:
		return &e.colladr
	case regSCBNEXTL:
		return &e.scbnext
	case regSPRDLINEL:
		return &e.sprdline
	case regHPOSSTRTL:
		return &e.hposstrt
	case regVPOSSTRTL:
		return &e.vposstrt
	case regSPRHSIZL:
		return &e.sprhsiz
	case regSPRVSIZL:
		return &e.sprvsiz
	case regSTRETCHL:
		return &e.stretch
	case regTILTL:
		return &e.tilt
	case regSPRDOFFL:
		return &e.sprdoff
	case regSPRVPOSL:
		return &e.sprvpos
	case regCOLLOFFL:
		return &e.colloff
	case regVSIZACUML:
		return &e.vsizacum
	case regHSIZACUML:
		return &e.hsizacum
	case regHSIZOFFL:
		return &e.hsizoff
	case regVSIZOFFL:
		return &e.vsizoff
	case regSCBADRL:
		return &e.scbadr
	case regPROCADRL:
		return &e.procadr
	default:
		return nil
	}
}

// Peek reads one register. Only the low 8 bits of addr are significant.
// Unmapped addresses and write-only registers read 0xFF and 0 respectively,
// per the hardware's memory-mapped I/O contract.
func (e *Engine) Peek(addr uint32) uint8 {
	a := uint8(addr)

	if p := e.pairFor(a &^ 1); p != nil {
		if a&1 == 0 {
			return readLowPair(p)
		}
		return readHighPair(p)
	}

	switch a {
	// Byte significance runs opposite to write-address order: the
	// alphabetically-first letter of each group (A, E, J, N) is the most
	// significant byte and sits at the highest address, the last letter
	// (D, H, M, P) is least significant and sits at the lowest address --
	// the address written last is always the one that triggers the op.
	case regMATHA:
		return uint8(e.mathABCD >> 24)
	case regMATHB:
		return uint8(e.mathABCD >> 16)
	case regMATHC:
		return uint8(e.mathABCD >> 8)
	case regMATHD:
		return uint8(e.mathABCD)
	case regMATHE:
		return uint8(e.mathEFGH >> 24)
	case regMATHF:
		return uint8(e.mathEFGH >> 16)
	case regMATHG:
		return uint8(e.mathEFGH >> 8)
	case regMATHH:
		return uint8(e.mathEFGH)
	case regMATHJ:
		return uint8(e.mathJKLM >> 24)
	case regMATHK:
		return uint8(e.mathJKLM >> 16)
	case regMATHL:
		return uint8(e.mathJKLM >> 8)
	case regMATHM:
		return uint8(e.mathJKLM)
	case regMATHN:
		return uint8(e.mathNP >> 8)
	case regMATHP:
		return uint8(e.mathNP)

	case regSUZYHREV:
		return 0x01

	case regSPRSYS:
		return e.readSprSys()

	case regJOYSTICK:
		return e.readJoystick()
	case regSWITCHES:
		return e.switches
	case regRCART0:
		if e.cart != nil {
			return e.cart.PeekBank0()
		}
		return 0xFF
	case regRCART1:
		if e.cart != nil {
			return e.cart.PeekBank1()
		}
		return 0xFF

	case regSPRCTL0, regSPRCTL1, regSPRCOLL, regSPRINIT, regSUZYBUSEN, regSPRGO,
		regLEDS, regPPORTSTAT, regPPORTDATA, regHOWIE:
		// Write-only on real hardware; reads are defined by this core
		// to return 0 rather than floating-bus garbage.
		return 0

	default:
		return 0xFF
	}
}

// Poke writes one register, applying the paired low/high auto-zero rule
// and triggering any attached side effect (math operand latching, engine
// control bits).
func (e *Engine) Poke(addr uint32, data uint8) {
	a := uint8(addr)

	if p := e.pairFor(a &^ 1); p != nil {
		if a&1 == 0 {
			writeLowPair(p, data)
		} else {
			writeHighPair(p, data)
		}
		return
	}

	switch a {
	// D is written first (lowest address) and is the LSB of ABCD; A is
	// written last (highest address, MSB) and is what actually kicks the
	// multiply off. Writing D forces a recompute of C's sign even when a
	// caller skips rewriting C -- the "stun-runner" quirk. Writing B
	// likewise clears A.
	case regMATHD:
		e.mathABCD = (e.mathABCD &^ 0x000000FF) | uint32(data)
		e.Poke(regMATHC, 0)
	case regMATHC:
		e.mathABCD = (e.mathABCD &^ 0x0000FF00) | uint32(data)<<8
		e.pokeMathC()
	case regMATHB:
		e.mathABCD = (e.mathABCD &^ 0xFFFF0000) | uint32(data)<<16
	case regMATHA:
		e.mathABCD = (e.mathABCD &^ 0xFF000000) | uint32(data)<<24
		e.pokeMathA()
		e.doMultiply()

	case regMATHH:
		e.mathEFGH = (e.mathEFGH &^ 0x000000FF) | uint32(data)
	case regMATHG:
		e.mathEFGH = (e.mathEFGH &^ 0x0000FF00) | uint32(data)<<8
	case regMATHF:
		e.mathEFGH = (e.mathEFGH &^ 0x00FF0000) | uint32(data)<<16
	case regMATHE:
		e.mathEFGH = (e.mathEFGH &^ 0xFF000000) | uint32(data)<<24
		e.doDivide()

	case regMATHM:
		e.mathJKLM = (e.mathJKLM &^ 0x0000FFFF) | uint32(data)
		e.mathBit = false
	case regMATHL:
		e.mathJKLM = (e.mathJKLM &^ 0x0000FF00) | uint32(data)<<8
	case regMATHK:
		e.mathJKLM = (e.mathJKLM &^ 0x00FF0000) | uint32(data)<<16
	case regMATHJ:
		e.mathJKLM = (e.mathJKLM &^ 0xFF000000) | uint32(data)<<24

	case regMATHP:
		e.mathNP = (e.mathNP & 0xFF00) | uint16(data)
	case regMATHN:
		e.mathNP = (e.mathNP & 0x00FF) | uint16(data)<<8

	case regSPRCTL0:
		e.spriteType = data & 0x07
		e.vflip = data&0x20 != 0
		e.hflip = data&0x10 != 0
		e.pixelBits = ((data >> 6) & 0x03) + 1
	case regSPRCTL1:
		e.startLeft = data&0x01 != 0
		e.startUp = data&0x02 != 0
		e.skipSprite = data&0x04 != 0
		e.reloadPalette = data&0x08 != 0
		e.reloadDepth = (data >> 4) & 0x03
		e.sizeFlag = data&0x40 != 0
		e.literalFlag = data&0x80 != 0
	case regSPRCOLL:
		e.collNum = data & 0x0F
		e.collideDisable = data&0x20 != 0
	case regSPRINIT:
		e.spriteInit = true

	case regSUZYBUSEN:
		e.suzyBusEnable = data&0x01 != 0

	case regSPRGO:
		e.spriteGo = data&0x01 != 0
		e.everOn = data&0x04 != 0

	case regSPRSYS:
		e.stopOnCurrent = data&0x02 != 0
		if data&0x04 != 0 {
			e.unsafeAccess = false
		}
		e.leftHand = data&0x08 != 0
		e.vStretch = data&0x10 != 0
		e.noCollide = data&0x20 != 0
		e.accumulate = data&0x40 != 0
		e.signedMath = data&0x80 != 0

	case regJOYSTICK:
		e.joystick = data

	case regRCART0:
		if e.cart != nil {
			e.cart.PokeBank0(data)
		}
	case regRCART1:
		if e.cart != nil {
			e.cart.PokeBank1(data)
		}

	case regSWITCHES, regSUZYHREV, regLEDS, regPPORTSTAT, regPPORTDATA, regHOWIE:
		// Read-only or unmodeled; writes are no-ops.

	default:
		// Unmapped: silently ignored.
	}
}

// readSprSys assembles the SPRSYS status byte from live engine flags.
// Bit 0 is status (done-time). The read layout differs from the write
// layout -- the register is a status/control overlay: for example bit 7
// reads as Mathbit but is the signed-math enable on write.
func (e *Engine) readSprSys() uint8 {
	var v uint8
	if e.suzyDoneTime == nil || e.suzyDoneTime() == 0 {
		v |= 0x01
	}
	if e.mathBit {
		v |= 0x80
	}
	if e.accumulate {
		v |= 0x02
	}
	if e.vStretch {
		v |= 0x04
	}
	if e.leftHand {
		v |= 0x08
	}
	if e.stopOnCurrent {
		v |= 0x10
	}
	if e.noCollide {
		v |= 0x20
	}
	if e.unsafeAccess {
		v |= 0x40
	}
	return v
}

// readJoystick applies the axis swap unless the SPRSYS left-hand bit is set.
func (e *Engine) readJoystick() uint8 {
	v := e.joystick
	if !e.leftHand {
		// Swap up/down (bits 0,1) and left/right (bits 2,3); buttons in
		// the high nibble are untouched.
		v = (v & 0xF0) |
			((v & 0x01) << 1) | ((v & 0x02) >> 1) |
			((v & 0x04) << 1) | ((v & 0x08) >> 1)
	}
	return v
}
