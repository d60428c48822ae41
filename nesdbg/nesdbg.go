// nesdbg loads a flat 64k binary image, powers on a 2A03 behind it and
// drops into an interactive monitor. The image must either be a full
// 64k with valid vectors, or a smaller blob combined with --load_addr
// and --start_pc to place it and point the reset vector at it.
//
// Pipe a script on stdin for non interactive use:
//
//	nesdbg --load_addr=0x8000 --start_pc=0x8000 prog.bin < script
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/jquinn/2a03/cpu"
	"github.com/jquinn/2a03/monitor"
)

var (
	loadAddr = flag.Int("load_addr", 0x0000, "Address to load the image at")
	startPC  = flag.Int("start_pc", -1, "Reset vector override. Defaults to the image's own vector")
)

// flatMemory is a flat 64k bank with no mirroring or MMIO. PowerOn
// restores the loaded image so the monitor's reset command replays
// from a clean state.
type flatMemory struct {
	addr  [65536]uint8
	image [65536]uint8
}

func (f *flatMemory) Read(addr uint16) uint8       { return f.addr[addr] }
func (f *flatMemory) Write(addr uint16, val uint8) { f.addr[addr] = val }
func (f *flatMemory) PowerOn()                     { f.addr = f.image }

func main() {
	flag.Parse()
	if len(flag.Args()) != 1 {
		log.Fatalf("Invalid command: %s [--load_addr=XXXX] [--start_pc=XXXX] <filename>", os.Args[0])
	}
	if *loadAddr < 0 || *loadAddr > 65535 {
		log.Fatal("--load_addr out of range. Must be between 0-65535")
	}
	if *startPC < -1 || *startPC > 65535 {
		log.Fatal("--start_pc out of range. Must be between 0-65535")
	}

	fn := flag.Args()[0]
	b, err := os.ReadFile(fn)
	if err != nil {
		log.Fatalf("Can't open %s - %v", fn, err)
	}
	if l := *loadAddr + len(b); l > 65536 {
		log.Fatalf("Length %d at offset %d exceeds 64k", len(b), *loadAddr)
	}

	f := &flatMemory{}
	copy(f.image[*loadAddr:], b)
	if *startPC >= 0 {
		f.image[cpu.RESET_VECTOR] = uint8(*startPC & 0xFF)
		f.image[cpu.RESET_VECTOR+1] = uint8((*startPC >> 8) & 0xFF)
	}

	m, err := monitor.New(f)
	if err != nil {
		log.Fatalf("Can't initialize CPU - %v", err)
	}

	fmt.Printf("Loaded %d bytes from %s at 0x%.4X\n", len(b), fn, *loadAddr)
	m.RunCommands(os.Stdin, os.Stdout, true)
}
