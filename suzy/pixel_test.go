package suzy

import "testing"

func TestNibbleAddr(t *testing.T) {
	addr, high := nibbleAddr(0x1000, 0)
	if addr != 0x1000 || !high {
		t.Errorf("nibbleAddr(base,0) = (%#x,%v), want (0x1000,true)", addr, high)
	}
	addr, high = nibbleAddr(0x1000, 1)
	if addr != 0x1000 || high {
		t.Errorf("nibbleAddr(base,1) = (%#x,%v), want (0x1000,false)", addr, high)
	}
	addr, high = nibbleAddr(0x1000, 2)
	if addr != 0x1001 || !high {
		t.Errorf("nibbleAddr(base,2) = (%#x,%v), want (0x1001,true)", addr, high)
	}
}

func TestWriteReadNibble_RoundTrip(t *testing.T) {
	_, ram := newTestEngine()
	writeNibble(ram, 0x4000, 0, 0xA)
	writeNibble(ram, 0x4000, 1, 0x3)

	if got := readNibble(ram, 0x4000, 0); got != 0xA {
		t.Errorf("readNibble(0) = %#x, want 0xA", got)
	}
	if got := readNibble(ram, 0x4000, 1); got != 0x3 {
		t.Errorf("readNibble(1) = %#x, want 0x3", got)
	}
	if ram[0x4000] != 0xA3 {
		t.Errorf("packed byte = %#x, want 0xA3", ram[0x4000])
	}
}

func TestCompositePixel_NormalSpriteSkipsZeroPen(t *testing.T) {
	e, ram := newTestEngine()
	e.spriteType = spriteNormal
	e.curLineVideoBase = 0x5000
	ram[0x5000] = 0xFF // pre-existing pixel data

	e.compositePixel(0, 0)
	if got := readNibble(ram, 0x5000, 0); got != 0xF {
		t.Errorf("pen=0 on a normal sprite should not write: got %#x, want unchanged 0xF", got)
	}

	e.compositePixel(0, 7)
	if got := readNibble(ram, 0x5000, 0); got != 7 {
		t.Errorf("pen=7 on a normal sprite should write: got %#x, want 7", got)
	}
}

func TestCompositePixel_XorShadowXors(t *testing.T) {
	e, ram := newTestEngine()
	e.spriteType = spriteXorShadow
	e.curLineVideoBase = 0x6000
	writeNibble(ram, 0x6000, 0, 0x5)

	e.compositePixel(0, 0x3)
	if got := readNibble(ram, 0x6000, 0); got != (0x5 ^ 0x3) {
		t.Errorf("xor-shadow write = %#x, want %#x", got, 0x5^0x3)
	}
}

func TestCompositePixel_OutOfBoundsIsNoop(t *testing.T) {
	e, ram := newTestEngine()
	e.spriteType = spriteNormal
	e.curLineVideoBase = 0x7000
	before := e.cyclesUsed

	e.compositePixel(-1, 5)
	e.compositePixel(ScreenWidth, 5)

	if e.cyclesUsed != before {
		t.Errorf("out-of-bounds compositePixel charged cycles: %d", e.cyclesUsed-before)
	}
	if ram[0x7000] != 0 {
		t.Errorf("out-of-bounds compositePixel wrote to RAM")
	}
}

func TestCompositePixel_CollisionTracksHighestValue(t *testing.T) {
	e, ram := newTestEngine()
	e.spriteType = spriteNormal
	e.curLineVideoBase = 0x8000
	e.curLineCollBase = 0x8100
	e.collNum = 9

	writeNibble(ram, 0x8100, 0, 3)
	e.compositePixel(0, 1)

	if e.collision != 3 {
		t.Errorf("collision = %d, want 3 (existing collision nibble)", e.collision)
	}
	if got := readNibble(ram, 0x8100, 0); got != 9 {
		t.Errorf("collision buffer = %d, want collNum 9 written", got)
	}
}

func TestCompositePixel_NoCollideDisablesTracking(t *testing.T) {
	e, ram := newTestEngine()
	e.spriteType = spriteNormal
	e.curLineVideoBase = 0x9000
	e.curLineCollBase = 0x9100
	e.noCollide = true
	e.collNum = 5

	e.compositePixel(0, 1)

	if ram[0x9100] != 0 {
		t.Errorf("collision buffer written despite noCollide")
	}
}
