// Package irq defines the basic interface for working with the 2A03
// interrupt lines. Components which generate interrupts (the PPU's
// vblank NMI, the APU frame counter IRQ, mapper IRQs) implement Sender
// and are attached to the CPU, which samples them once per clock cycle.
// Edge versus level behavior is the CPU's concern; senders only report
// the current state of their line.
package irq

type Sender interface {
	// Raised indicates whether the interrupt line is currently held high.
	Raised() bool
}
