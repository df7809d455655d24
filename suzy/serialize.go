package suzy

import (
	"encoding/binary"
	"errors"
	"hash/crc32"
)

const serializeVersion = 1

// SerializeSize is the total bytes needed for Engine serialization:
// version(1) + 25 uint16 registers(50) + math regs (ABCD,EFGH,JKLM: 4*3=12,
// NP: 2) + signs(3) + mathBit(1) + control/status flags (20 bools +
// spriteType, pixelBits, reloadDepth, collNum = 24) + pens(16) +
// joystick(1) + switches(1) + hquadoff/vquadoff(2) + superclipActive(1) +
// decoder state (shiftReg 4 + validBits 1 + packetBitsLeft 4 + state 1 +
// repeat 1 + curPixel 1 + literalMode 1 + pixelBits 1 = 14) + crc32(4)
const SerializeSize = 1 + 50 + 12 + 2 + 3 + 1 + 24 + 16 + 1 + 1 + 2 + 1 + 14 + 4

// boolByte converts a bool to a uint8 (0 or 1).
func boolByte(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// Serialize writes the engine's persistable state to buf, which must be
// at least SerializeSize bytes. This covers only the engine's own fields
// -- outer save-state framing (magic, format version, ROM identity) is a
// host concern this package does not implement.
func (e *Engine) Serialize(buf []byte) error {
	if len(buf) < SerializeSize {
		return errors.New("suzy: serialize buffer too small")
	}

	offset := 0
	buf[offset] = serializeVersion
	offset++

	for _, r := range e.regs16() {
		binary.LittleEndian.PutUint16(buf[offset:], *r)
		offset += 2
	}

	binary.LittleEndian.PutUint32(buf[offset:], e.mathABCD)
	offset += 4
	binary.LittleEndian.PutUint32(buf[offset:], e.mathEFGH)
	offset += 4
	binary.LittleEndian.PutUint32(buf[offset:], e.mathJKLM)
	offset += 4
	binary.LittleEndian.PutUint16(buf[offset:], e.mathNP)
	offset += 2

	buf[offset] = uint8(e.signAB)
	offset++
	buf[offset] = uint8(e.signCD)
	offset++
	buf[offset] = uint8(e.signEFGH)
	offset++
	buf[offset] = boolByte(e.mathBit)
	offset++

	offset = e.serializeFlags(buf, offset)

	copy(buf[offset:], e.pens[:])
	offset += len(e.pens)

	buf[offset] = e.joystick
	offset++
	buf[offset] = e.switches
	offset++
	buf[offset] = uint8(e.hquadoff)
	offset++
	buf[offset] = uint8(e.vquadoff)
	offset++
	buf[offset] = boolByte(e.superclipActive)
	offset++

	offset = e.serializeDecoder(buf, offset)

	crc := crc32.ChecksumIEEE(buf[1:offset])
	binary.LittleEndian.PutUint32(buf[offset:], crc)
	offset += 4

	return nil
}

// Deserialize restores engine state from buf, previously produced by
// Serialize. A version newer than this build understands, or a payload
// whose checksum does not match, is rejected without mutating the engine.
func (e *Engine) Deserialize(buf []byte) error {
	if len(buf) < SerializeSize {
		return errors.New("suzy: deserialize buffer too small")
	}
	if buf[0] > serializeVersion {
		return errors.New("suzy: unsupported state version")
	}

	crcOffset := SerializeSize - 4
	expected := binary.LittleEndian.Uint32(buf[crcOffset:])
	actual := crc32.ChecksumIEEE(buf[1:crcOffset])
	if expected != actual {
		return errors.New("suzy: state checksum mismatch")
	}

	offset := 1
	for _, r := range e.regs16() {
		*r = binary.LittleEndian.Uint16(buf[offset:])
		offset += 2
	}

	e.mathABCD = binary.LittleEndian.Uint32(buf[offset:])
	offset += 4
	e.mathEFGH = binary.LittleEndian.Uint32(buf[offset:])
	offset += 4
	e.mathJKLM = binary.LittleEndian.Uint32(buf[offset:])
	offset += 4
	e.mathNP = binary.LittleEndian.Uint16(buf[offset:])
	offset += 2

	e.signAB = int8(buf[offset])
	offset++
	e.signCD = int8(buf[offset])
	offset++
	e.signEFGH = int8(buf[offset])
	offset++
	e.mathBit = buf[offset] != 0
	offset++

	offset = e.deserializeFlags(buf, offset)

	copy(e.pens[:], buf[offset:offset+len(e.pens)])
	offset += len(e.pens)

	e.joystick = buf[offset]
	offset++
	e.switches = buf[offset]
	offset++
	e.hquadoff = int8(buf[offset])
	offset++
	e.vquadoff = int8(buf[offset])
	offset++
	e.superclipActive = buf[offset] != 0
	offset++

	e.deserializeDecoder(buf, offset)

	return nil
}

// regs16 lists the pointers to every 16-bit register field, in a fixed
// order shared by Serialize and Deserialize.
func (e *Engine) regs16() [25]*uint16 {
	return [25]*uint16{
		&e.tmpadr, &e.tiltacum, &e.hoff, &e.voff, &e.vidbas, &e.collbas,
		&e.vidadr, &e.colladr, &e.scbnext, &e.sprdline, &e.hposstrt,
		&e.vposstrt, &e.sprhsiz, &e.sprvsiz, &e.stretch, &e.tilt,
		&e.sprdoff, &e.sprvpos, &e.colloff, &e.vsizacum, &e.hsizacum,
		&e.hsizoff, &e.vsizoff, &e.scbadr, &e.procadr,
	}
}

func (e *Engine) serializeFlags(buf []byte, offset int) int {
	flags := []bool{
		e.vflip, e.hflip, e.startLeft, e.startUp, e.skipSprite,
		e.reloadPalette, e.sizeFlag, e.literalFlag, e.collideDisable,
		e.signedMath, e.accumulate, e.leftHand, e.vStretch, e.stopOnCurrent,
		e.noCollide, e.unsafeAccess, e.suzyBusEnable, e.spriteGo, e.everOn,
		e.spriteInit,
	}
	for _, f := range flags {
		buf[offset] = boolByte(f)
		offset++
	}
	buf[offset] = e.spriteType
	offset++
	buf[offset] = e.pixelBits
	offset++
	buf[offset] = e.reloadDepth
	offset++
	buf[offset] = e.collNum
	offset++
	return offset
}

func (e *Engine) deserializeFlags(buf []byte, offset int) int {
	flags := []*bool{
		&e.vflip, &e.hflip, &e.startLeft, &e.startUp, &e.skipSprite,
		&e.reloadPalette, &e.sizeFlag, &e.literalFlag, &e.collideDisable,
		&e.signedMath, &e.accumulate, &e.leftHand, &e.vStretch, &e.stopOnCurrent,
		&e.noCollide, &e.unsafeAccess, &e.suzyBusEnable, &e.spriteGo, &e.everOn,
		&e.spriteInit,
	}
	for _, f := range flags {
		*f = buf[offset] != 0
		offset++
	}
	e.spriteType = buf[offset]
	offset++
	e.pixelBits = buf[offset]
	offset++
	e.reloadDepth = buf[offset]
	offset++
	e.collNum = buf[offset]
	offset++
	return offset
}

func (e *Engine) serializeDecoder(buf []byte, offset int) int {
	binary.LittleEndian.PutUint32(buf[offset:], e.dec.shiftReg)
	offset += 4
	buf[offset] = e.dec.validBits
	offset++
	binary.LittleEndian.PutUint32(buf[offset:], uint32(e.dec.packetBitsLeft))
	offset += 4
	buf[offset] = uint8(e.dec.state)
	offset++
	buf[offset] = e.dec.repeat
	offset++
	buf[offset] = e.dec.curPixel
	offset++
	buf[offset] = boolByte(e.dec.literalMode)
	offset++
	buf[offset] = e.dec.pixelBits
	offset++
	return offset
}

func (e *Engine) deserializeDecoder(buf []byte, offset int) int {
	e.dec.shiftReg = binary.LittleEndian.Uint32(buf[offset:])
	offset += 4
	e.dec.validBits = buf[offset]
	offset++
	e.dec.packetBitsLeft = int32(binary.LittleEndian.Uint32(buf[offset:]))
	offset += 4
	e.dec.state = lineState(buf[offset])
	offset++
	e.dec.repeat = buf[offset]
	offset++
	e.dec.curPixel = buf[offset]
	offset++
	e.dec.literalMode = buf[offset] != 0
	offset++
	e.dec.pixelBits = buf[offset]
	offset++
	return offset
}
