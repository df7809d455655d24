// Command suzydump loads a flat 64 KiB RAM image, runs one PaintSprites
// pass starting from a given SCB address, and writes the resulting
// framebuffer out as a PNG for inspection.
package main

import (
	"flag"
	"image/png"
	"log"
	"os"
	"strconv"

	"github.com/user-none/go-chip-suzy/suzy"
)

type flatRAM [65536]byte

func (r *flatRAM) ReadByte(addr uint16) uint8       { return r[addr] }
func (r *flatRAM) WriteByte(addr uint16, val uint8) { r[addr] = val }

type noCart struct{}

func (noCart) PokeBank0(uint8)  {}
func (noCart) PokeBank1(uint8)  {}
func (noCart) PeekBank0() uint8 { return 0xFF }
func (noCart) PeekBank1() uint8 { return 0xFF }

func main() {
	ramPath := flag.String("ram", "", "path to a flat 64KiB RAM image")
	scbAddr := flag.String("scb", "0x0000", "address of the first SCB in the chain")
	vidbas := flag.String("vidbas", "0x0000", "video base address to render from")
	out := flag.String("out", "frame.png", "PNG output path")
	flag.Parse()

	if *ramPath == "" {
		log.Fatal("missing -ram")
	}

	data, err := os.ReadFile(*ramPath)
	if err != nil {
		log.Fatal(err)
	}

	var ram flatRAM
	copy(ram[:], data)

	scb, err := strconv.ParseUint(*scbAddr, 0, 16)
	if err != nil {
		log.Fatal(err)
	}
	base, err := strconv.ParseUint(*vidbas, 0, 16)
	if err != nil {
		log.Fatal(err)
	}

	e := suzy.NewEngine(&ram, noCart{})
	e.Poke(0x90, 0x01) // SUZYBUSEN
	e.Poke(0x10, uint8(scb))
	e.Poke(0x11, uint8(scb>>8))
	e.Poke(0x91, 0x01) // SPRGO

	cycles := e.PaintSprites()
	if e.Halted() {
		log.Printf("engine halted mid-chain (runaway SCB guard)")
	}
	log.Printf("painted sprite chain in %d cycles", cycles)

	f, err := os.Create(*out)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	if err := png.Encode(f, e.Framebuffer(uint16(base))); err != nil {
		log.Fatal(err)
	}
}
