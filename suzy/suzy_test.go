package suzy

import "testing"

// testRAM is a flat 64 KiB byte-addressable RAM backing used across the
// package's tests.
type testRAM [65536]byte

func (r *testRAM) ReadByte(addr uint16) uint8       { return r[addr] }
func (r *testRAM) WriteByte(addr uint16, val uint8) { r[addr] = val }

// testCart is a minimal Cart stub recording the last poke to each bank.
type testCart struct {
	bank0, bank1 uint8
}

func (c *testCart) PokeBank0(data uint8) { c.bank0 = data }
func (c *testCart) PokeBank1(data uint8) { c.bank1 = data }
func (c *testCart) PeekBank0() uint8     { return c.bank0 }
func (c *testCart) PeekBank1() uint8     { return c.bank1 }

func newTestEngine() (*Engine, *testRAM) {
	ram := &testRAM{}
	e := NewEngine(ram, &testCart{})
	return e, ram
}

func TestReset_PowerOnState(t *testing.T) {
	e, _ := newTestEngine()

	if e.hsizoff != 0x007F || e.vsizoff != 0x007F {
		t.Errorf("size offsets: got hsizoff=%#x vsizoff=%#x, want 0x007F each", e.hsizoff, e.vsizoff)
	}
	if e.mathABCD != 0xFFFFFFFF || e.mathEFGH != 0xFFFFFFFF || e.mathJKLM != 0xFFFFFFFF {
		t.Errorf("math registers not all-ones after reset")
	}
	if e.mathNP != 0xFFFF {
		t.Errorf("NP register not all-ones after reset: got %#x", e.mathNP)
	}
	for i, p := range e.pens {
		if p != uint8(i) {
			t.Errorf("pen %d: got %d, want identity mapping", i, p)
		}
	}
	if e.Halted() {
		t.Errorf("engine halted immediately after reset")
	}
}

func TestPeek_UnmappedAddress_ReturnsFF(t *testing.T) {
	e, _ := newTestEngine()
	if got := e.Peek(0x40); got != 0xFF {
		t.Errorf("Peek(unmapped) = %#x, want 0xFF", got)
	}
}

func TestPeek_WriteOnlyRegister_ReturnsZero(t *testing.T) {
	e, _ := newTestEngine()
	e.Poke(regSPRCTL0, 0xFF)
	if got := e.Peek(regSPRCTL0); got != 0 {
		t.Errorf("Peek(SPRCTL0) = %#x, want 0", got)
	}
}

func TestSuzyHrev(t *testing.T) {
	e, _ := newTestEngine()
	if got := e.Peek(regSUZYHREV); got != 0x01 {
		t.Errorf("Peek(SUZYHREV) = %#x, want 0x01", got)
	}
}

func TestCart_Delegation(t *testing.T) {
	e, _ := newTestEngine()
	e.Poke(regRCART0, 0x42)
	e.Poke(regRCART1, 0x99)
	if got := e.Peek(regRCART0); got != 0x42 {
		t.Errorf("Peek(RCART0) = %#x, want 0x42", got)
	}
	if got := e.Peek(regRCART1); got != 0x99 {
		t.Errorf("Peek(RCART1) = %#x, want 0x99", got)
	}
}
