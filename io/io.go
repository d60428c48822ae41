// Package io defines the basic interface for 8 bit ports on a 2A03
// system. The only consumer in the core is the OAM DMA engine, which
// presents one byte per write cycle on the attached port. When no port
// is attached the CPU falls back to the memory mapped OAMDATA register.
package io

// Port8 defines an 8 bit output port.
type Port8 interface {
	// Write presents val on the port for the current cycle.
	Write(val uint8)
}
