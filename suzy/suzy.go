// Package suzy emulates the sprite/math coprocessor of an 8-bit handheld
// game console: a 256-byte memory-mapped register window driving a
// fixed-point multiply/divide unit and a linked-list sprite rasterizer
// that reads and writes a shared 64 KiB RAM.
//
// The CPU that issues register pokes, the display controller that
// consumes the framebuffer the rasterizer writes into, and the outer
// scheduler that paces everything are all external collaborators; this
// package only knows about the RAM it is given and the two host hooks
// described by RAM and Cart below.
package suzy

// RAM is the shared memory the engine reads sprite data and control blocks
// from, and writes pixels and collisions into. Implementations are not
// required to be safe for concurrent use; the engine never calls RAM from
// more than one goroutine at a time.
type RAM interface {
	ReadByte(addr uint16) uint8
	WriteByte(addr uint16, val uint8)
}

// Cart is the cartridge-port delegate. The engine itself has no notion of
// bank switching; RCART0/RCART1 register traffic is simply forwarded here.
type Cart interface {
	PokeBank0(data uint8)
	PokeBank1(data uint8)
	PeekBank0() uint8
	PeekBank1() uint8
}

// Screen geometry, fixed by the hardware this core emulates.
const (
	ScreenWidth  = 160
	ScreenHeight = 102
	frameBytes   = ScreenWidth * ScreenHeight / 2 // 4-bit nibble per pixel
)

// SPR_RDWR_CYC is the per-byte RAM access cost used in cycle accounting;
// a bitstream refill costs three of these (it pulls 3 bytes at a time).
const sprRdWrCyc = 5

// maxSCBChain bounds how many Sprite Control Blocks PaintSprites will walk
// in one call before concluding the chain is corrupt (self-referential or
// cyclic) and raising the halt signal instead of looping forever.
const maxSCBChain = 4096

// lineState tags what lineGetPixel is currently decoding.
type lineState uint8

const (
	lineStatePacked lineState = iota
	lineStateLiteral
	lineStateAbsLiteral
	lineStateEnd
	lineStateError
)

// decoder holds the sprite-data bitstream reader's working state. It is
// kept as an explicit value rather than scattered fields so it can be
// inspected and serialized as a unit.
type decoder struct {
	shiftReg       uint32
	validBits      uint8
	packetBitsLeft int32
	state          lineState
	repeat         uint8
	curPixel       uint8
	literalMode    bool
	pixelBits      uint8
}

// Engine is one instance of the coprocessor. Zero value is not usable;
// construct with NewEngine.
type Engine struct {
	ram  RAM
	cart Cart

	// halted is set by the engine itself (runaway SCB guard) or may be
	// observed/cleared by the host between PaintSprites calls.
	halted bool

	// suzyDoneTime, when non-nil, lets a host report how many cycles
	// remain before the engine would "naturally" finish, surfaced on
	// bit 0 of a SPRSYS read. A nil hook reads as always-done (0).
	suzyDoneTime func() uint16

	regs [256]uint8

	// 16-bit register pairs, each a plain uint16. Peek and Poke reach
	// them through pairFor and the byte-view helpers in registers.go,
	// where writing the low byte also clears the high byte.
	tmpadr, scbnext, sprdline                 uint16
	hposstrt, vposstrt, sprhsiz, sprvsiz       uint16
	stretch, tilt, sprdoff, sprvpos, colloff   uint16
	vsizacum, hsizacum, hsizoff, vsizoff       uint16
	scbadr, procadr, tiltacum, hoff, voff      uint16
	vidbas, collbas, vidadr, colladr           uint16

	// Math unit.
	mathABCD, mathEFGH, mathJKLM uint32
	mathNP                      uint16
	signAB, signCD, signEFGH    int8
	mathBit                     bool // sticky divide-by-zero flag (Mathbit)

	// Control/status flags, unpacked from SPRCTL0/SPRCTL1/SPRCOLL/SPRSYS.
	spriteType                           uint8
	vflip, hflip                         bool
	pixelBits                            uint8
	startLeft, startUp                   bool
	skipSprite, reloadPalette            bool
	reloadDepth                          uint8
	sizeFlag, literalFlag                bool
	collNum                              uint8
	collideDisable                       bool
	signedMath, accumulate               bool
	leftHand, vStretch, stopOnCurrent    bool
	noCollide                            bool
	unsafeAccess                         bool
	suzyBusEnable                        bool
	spriteGo, everOn                     bool
	spriteInit                           bool

	pens [16]uint8

	joystick, switches uint8

	// Per-SCB render working state.
	hquadoff, vquadoff                 int8
	superclipActive                    bool
	dec                                decoder
	curLineVideoBase, curLineCollBase  uint16
	collision                          uint8
	anyPixelDrawn                      bool

	sprCount int

	// cyclesUsed accumulates the current PaintSprites invocation's RAM
	// access cost; zeroed on entry, returned to the caller on exit.
	cyclesUsed int
}

// NewEngine constructs an Engine wired to the given RAM and cartridge
// delegate and resets it to power-on state.
func NewEngine(ram RAM, cart Cart) *Engine {
	e := &Engine{ram: ram, cart: cart}
	e.Reset()
	return e
}

// SetSuzyDoneTimeHook installs the host callback used to populate SPRSYS
// bit 0 on read. Passing nil makes the engine read as always-done.
func (e *Engine) SetSuzyDoneTimeHook(hook func() uint16) {
	e.suzyDoneTime = hook
}

// SetSuperclip sets the superclip flag, which Serialize and Deserialize
// persist. The quadrant renderer does not read it: no off-screen-origin
// fast-reject path is implemented, so every quadrant is rendered the same
// way whatever the flag says.
func (e *Engine) SetSuperclip(active bool) {
	e.superclipActive = active
}

// Halted reports whether the runaway-SCB guard has raised the halt signal.
func (e *Engine) Halted() bool {
	return e.halted
}

// ClearHalt lets a host resume the machine after inspecting a halt caused
// by a corrupt SCB chain (e.g. after resetting the chain in RAM).
func (e *Engine) ClearHalt() {
	e.halted = false
}

// Reset restores power-on state: all 16-bit registers zero except the
// size-offset pair, math registers all-ones, signs positive, and an
// identity pen mapping.
func (e *Engine) Reset() {
	*e = Engine{ram: e.ram, cart: e.cart, suzyDoneTime: e.suzyDoneTime}

	e.hsizoff = 0x007F
	e.vsizoff = 0x007F

	e.mathABCD = 0xFFFFFFFF
	e.mathEFGH = 0xFFFFFFFF
	e.mathJKLM = 0xFFFFFFFF
	e.mathNP = 0xFFFF
	e.signAB, e.signCD, e.signEFGH = 1, 1, 1

	for i := range e.pens {
		e.pens[i] = uint8(i)
	}
}
