package suzy

import "testing"

func TestMath_SignedMultiply_NegativeResult(t *testing.T) {
	e, _ := newTestEngine()
	e.Poke(regSPRSYS, 0x80) // bit7 set => signed math

	e.Poke(regMATHD, 0x05) // CD = 5
	e.Poke(regMATHC, 0x00)

	e.Poke(regMATHB, 0xFD) // AB = 0xFFFD = -3 (two's complement)
	e.Poke(regMATHA, 0xFF) // triggers the multiply

	var wantSigned int32 = -15
	want := uint32(wantSigned)
	if e.mathEFGH != want {
		t.Errorf("EFGH = %#x, want %#x (5 * -3)", e.mathEFGH, want)
	}
}

func TestMath_SignQuirk_0x8000IsPositive(t *testing.T) {
	e, _ := newTestEngine()
	e.Poke(regSPRSYS, 0x80) // signed math

	e.Poke(regMATHD, 0x00)
	e.Poke(regMATHC, 0x80) // CD = 0x8000, the documented "treated as positive" case

	if e.signCD != 1 {
		t.Errorf("signCD = %d, want 1 for CD=0x8000", e.signCD)
	}
	if uint16(e.mathABCD) != 0x8000 {
		t.Errorf("CD half mutated: got %#x, want unchanged 0x8000", uint16(e.mathABCD))
	}
}

func TestMath_Accumulate(t *testing.T) {
	e, _ := newTestEngine()
	e.Poke(regSPRSYS, 0x40) // unsigned (bit7 clear), accumulate (bit6)
	e.mathJKLM = 100

	e.Poke(regMATHD, 0x0A) // CD = 10
	e.Poke(regMATHC, 0x00)
	e.Poke(regMATHB, 0x03) // AB = 3
	e.Poke(regMATHA, 0x00)

	if e.mathEFGH != 30 {
		t.Errorf("EFGH = %d, want 30", e.mathEFGH)
	}
	if e.mathJKLM != 130 {
		t.Errorf("JKLM = %d, want 130 (100 + 30 accumulated)", e.mathJKLM)
	}
}

func TestMath_MATHD_ForcesSignRecompute(t *testing.T) {
	// The "stun-runner" quirk: writing D alone always re-triggers a CD
	// sign computation via an implied Poke(MATHC, 0) -- which, as on real
	// hardware, also clobbers whatever C held, even if the caller never
	// meant to touch it.
	e, _ := newTestEngine()
	e.Poke(regSPRSYS, 0x80) // signed math
	e.Poke(regMATHD, 0x00)
	e.Poke(regMATHC, 0x80) // CD = 0x8000 -> positive

	e.Poke(regMATHD, 0x01) // implied Poke(MATHC, 0) wipes the 0x80 high byte

	if got := uint16(e.mathABCD); got != 0x0001 {
		t.Errorf("CD after MATHD-only rewrite = %#x, want 0x0001 (C clobbered by the quirk)", got)
	}
	if e.signCD != 1 {
		t.Errorf("signCD after MATHD-only rewrite = %d, want 1", e.signCD)
	}
}

func TestMath_MATHM_ClearsMathBit(t *testing.T) {
	e, _ := newTestEngine()
	e.mathBit = true
	e.Poke(regMATHM, 0x00)
	if e.mathBit {
		t.Errorf("mathBit still set after MATHM write")
	}
}

func TestLeadingZeros16(t *testing.T) {
	cases := []struct {
		v    uint16
		want int
	}{
		{0x0000, 16},
		{0x0001, 15},
		{0x8000, 0},
		{0x00FF, 8},
	}
	for _, c := range cases {
		if got := leadingZeros16(c.v); got != c.want {
			t.Errorf("leadingZeros16(%#x) = %d, want %d", c.v, got, c.want)
		}
	}
}
