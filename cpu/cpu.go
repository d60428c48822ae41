// Package cpu implements a 2A03 CPU, the 6502 derivative at the heart
// of the NES. The core is cycle stepped: decode expands each opcode into
// a queue of single cycle micro operations and RunCycle executes exactly
// one of them per call, so memory accesses, interrupt polling and DMA
// stalls all land on the clock cycle where the real chip performs them.
// The 2A03 has no BCD mode, so the D flag is storage only.
package cpu

import (
	"fmt"

	"github.com/jquinn/2a03/io"
	"github.com/jquinn/2a03/irq"
	"github.com/jquinn/2a03/memory"
)

const (
	// NMI_VECTOR is the NMI vector address.
	NMI_VECTOR = uint16(0xFFFA)

	// RESET_VECTOR is the reset vector address.
	RESET_VECTOR = uint16(0xFFFC)

	// IRQ_VECTOR is the IRQ and BRK vector address.
	IRQ_VECTOR = uint16(0xFFFE)

	P_NEGATIVE  = uint8(0x80)
	P_OVERFLOW  = uint8(0x40)
	P_S1        = uint8(0x20) // Always on
	P_B         = uint8(0x10) // Only set during BRK
	P_DECIMAL   = uint8(0x08) // Storage only on the 2A03
	P_INTERRUPT = uint8(0x04)
	P_ZERO      = uint8(0x02)
	P_CARRY     = uint8(0x01)

	// OAMDATA is the PPU OAM data port, the fallback destination for
	// DMA bytes when no dedicated port is attached.
	OAMDATA = uint16(0x2004)

	// dmaCycles is the length of an OAM DMA transfer started on an even
	// cycle. A transfer started on an odd cycle takes one cycle more.
	dmaCycles = 513
)

// HaltOpcode is returned when the CPU has latched up due to a halt
// opcode (KIL). Only a reset or power cycle recovers it.
type HaltOpcode struct {
	Opcode uint8
}

func (e HaltOpcode) Error() string {
	return fmt.Sprintf("HALT(0x%.2X) executed", e.Opcode)
}

// InvalidCPUState is returned when the CPU has wedged into an internally
// inconsistent state, such as a micro op queue overflow. Any error of
// this type is a bug in the decode tables. Only a reset or power cycle
// recovers it.
type InvalidCPUState struct {
	Reason string
}

func (e InvalidCPUState) Error() string {
	return fmt.Sprintf("invalid CPU state: %s", e.Reason)
}

// CPU holds the registers and all per cycle bookkeeping for one 2A03.
type CPU struct {
	A  uint8
	X  uint8
	Y  uint8
	S  uint8
	P  uint8
	PC uint16

	// mdr is the memory data register, the value of the most recent
	// data read. Data effects operate on it.
	mdr uint8

	// addr and ptr are the internal address latches. Indirect modes
	// read a pointer through ptr into addr; everything else assembles
	// the effective address directly in addr.
	addr uint16
	ptr  uint16

	// carry holds the carry out of the last address low byte add until
	// a fixup cycle consumes it. Branches store 0xFF here when a
	// backward target crosses a page, so the high byte fix is a plain
	// wrapping add in every case.
	carry uint8

	// inst is the opcode currently executing, latched at fetch.
	inst uint8

	q opQueue

	ram memory.Bank

	irqLine irq.Sender
	nmiLine irq.Sender

	// Lines driven directly via SetIRQLine/SetNMILine, OR'd with the
	// attached senders.
	manualIRQ bool
	manualNMI bool

	// Interrupt detector state. nmiEdge latches a rising edge on the
	// NMI line until service begins; irqLevel mirrors the IRQ line as
	// of the last sample. irqReady is the poll result the next fetch
	// acts on.
	nmiPrev  bool
	nmiEdge  bool
	irqLevel bool
	irqReady bool

	// OAM DMA state. dmaRemaining counts down the stall; bytes go to
	// oam when attached, OAMDATA otherwise.
	dmaRemaining int
	dmaLow       uint8
	dmaHigh      uint8
	oam          io.Port8

	cycleEven bool

	halted     bool
	haltOpcode uint8

	haveErr error
}

// New returns a 2A03 ready for PowerOn, wired to the given memory bank.
func New(ram memory.Bank) (*CPU, error) {
	if ram == nil {
		return nil, InvalidCPUState{Reason: "no memory bank attached"}
	}
	c := &CPU{ram: ram}
	c.PowerOn()
	return c, nil
}

// AttachIRQ connects a sender to the IRQ line. The line is the OR of the
// sender and SetIRQLine; pass nil to detach.
func (c *CPU) AttachIRQ(s irq.Sender) {
	c.irqLine = s
}

// AttachNMI connects a sender to the NMI line.
func (c *CPU) AttachNMI(s irq.Sender) {
	c.nmiLine = s
}

// AttachOAM connects a port to receive OAM DMA bytes. Without one, DMA
// writes go to the OAMDATA register through the memory bank.
func (c *CPU) AttachOAM(p io.Port8) {
	c.oam = p
}

// SetIRQLine drives the IRQ line directly. Level sensitive: the line
// must stay high until the handler acknowledges the source.
func (c *CPU) SetIRQLine(high bool) {
	c.manualIRQ = high
}

// SetNMILine drives the NMI line directly. Edge sensitive: a low to high
// transition arms the detector.
func (c *CPU) SetNMILine(high bool) {
	c.manualNMI = high
}

// PowerOn performs a power on sequence: registers to their documented
// power up state, memory powered on, PC loaded from the reset vector and
// the first fetch queued.
func (c *CPU) PowerOn() {
	c.A = 0x00
	c.X = 0x00
	c.Y = 0x00
	c.S = 0xFD
	c.P = P_S1 | P_INTERRUPT
	c.ram.PowerOn()
	c.restart()
}

// Reset performs a warm reset. Registers other than S and P survive; S
// drops by 3 as the aborted interrupt sequence decrements it without
// writing, and I is set. Any halt or latched error is cleared.
func (c *CPU) Reset() {
	c.S -= 3
	c.P |= P_INTERRUPT
	c.restart()
}

func (c *CPU) restart() {
	c.PC = memory.ReadAddr(c.ram, RESET_VECTOR)
	c.q.clear()
	c.mdr = 0
	c.addr = 0
	c.ptr = 0
	c.carry = 0
	c.inst = 0
	c.nmiPrev = false
	c.nmiEdge = false
	c.irqLevel = false
	c.irqReady = false
	c.dmaRemaining = 0
	c.cycleEven = true
	c.halted = false
	c.haltOpcode = 0
	c.haveErr = nil
	// Prologue: one queued fetch gets the first real instruction going.
	c.q.append(microOp{mem: memFetch, data: dataNop, incPC: pcInc})
}

// StartDMA begins a 513 cycle OAM DMA transfer (514 if started on an odd
// cycle) copying the 256 byte page hi:00-hi:FF. The CPU makes no
// instruction progress until it completes. Modeled after a write to the
// OAMDMA register at $4014.
func (c *CPU) StartDMA(hi uint8) {
	c.dmaRemaining = dmaCycles
	if !c.cycleEven {
		c.dmaRemaining++
	}
	c.dmaLow = 0x00
	c.dmaHigh = hi
}

// DMARemaining returns the number of DMA stall cycles left, zero when no
// transfer is in progress.
func (c *CPU) DMARemaining() int {
	return c.dmaRemaining
}

// RunCycle executes one clock cycle. The returned bool is true on any
// cycle that completed an instruction (i.e. fetched and decoded the next
// one), so callers can count instruction boundaries. Errors latch: once
// a HaltOpcode or InvalidCPUState is returned every subsequent call
// returns it until Reset or PowerOn.
func (c *CPU) RunCycle() (bool, error) {
	if c.haveErr != nil {
		return false, c.haveErr
	}
	if c.halted {
		c.haveErr = HaltOpcode{Opcode: c.haltOpcode}
		return false, c.haveErr
	}

	if c.dmaRemaining > 0 {
		c.dmaCycle()
		c.cycleEven = !c.cycleEven
		return false, nil
	}

	// Poll the detectors at the end of the second-to-last cycle of the
	// instruction. BRK never yields here; a pending IRQ can only hijack
	// its vector, not interleave between BRK and its handler.
	if c.q.canPoll() && c.inst != 0x00 {
		c.irqReady = (c.irqReady || c.irqLevel) && (c.P&P_INTERRUPT) == 0
	}

	op, ok := c.q.popFront()
	if !ok {
		c.haveErr = c.q.err
		return false, c.haveErr
	}

	// The fetch handler may override the PC increment when it decides
	// to service an interrupt instead of decoding an opcode.
	incPC := op.incPC
	var done bool
	c.runMem(op, &incPC, &done)
	if c.q.err == nil {
		c.runData(op, &incPC, &done)
	}
	if incPC {
		c.PC++
	}

	if c.q.err != nil {
		c.haveErr = c.q.err
		return false, c.haveErr
	}

	c.sampleLines()
	c.cycleEven = !c.cycleEven
	return done, nil
}

// addCycle queues one cycle of work. Decode templates are written as
// runs of these.
func (c *CPU) addCycle(mem memEffect, data dataEffect, incPC bool) {
	c.q.append(microOp{mem: mem, data: data, incPC: incPC})
}

// sampleLines updates the interrupt detectors at the end of the cycle.
// NMI is edge sensitive (a rising edge stays latched until serviced),
// IRQ is level sensitive.
func (c *CPU) sampleLines() {
	nmi := c.manualNMI
	if c.nmiLine != nil && c.nmiLine.Raised() {
		nmi = true
	}
	if nmi && !c.nmiPrev {
		c.nmiEdge = true
	}
	c.nmiPrev = nmi

	irqNow := c.manualIRQ
	if c.irqLine != nil && c.irqLine.Raised() {
		irqNow = true
	}
	c.irqLevel = irqNow
}

// dmaCycle performs one cycle of an OAM DMA transfer. The first cycle
// (plus the alignment cycle on odd starts) is an idle read; after that
// reads and writes alternate, reads on even remaining counts.
func (c *CPU) dmaCycle() {
	switch {
	case c.dmaRemaining >= dmaCycles:
		// Stall cycle(s) before the transfer proper.
	case c.dmaRemaining%2 == 0:
		c.mdr = c.ram.Read(uint16(c.dmaHigh)<<8 | uint16(c.dmaLow))
		c.dmaLow++
	default:
		if c.oam != nil {
			c.oam.Write(c.mdr)
		} else {
			c.ram.Write(OAMDATA, c.mdr)
		}
	}
	c.dmaRemaining--
}
