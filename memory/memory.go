// Package memory defines the basic interface for working with a 2A03
// memory map. Address decoding, RAM mirroring, MMIO registers and
// cartridge banking all differ per board so the CPU only ever sees
// this interface. The contract is total: every address resolves to
// some byte (open bus included) and writes to ROM are simply no-ops.
package memory

type Bank interface {
	// Read returns the data byte stored at addr.
	Read(addr uint16) uint8
	// Write updates addr with the new value. Unmapped or read only
	// addresses are a no-op without any error.
	Write(addr uint16, val uint8)
	// PowerOn performs power on reset of the memory. This is
	// implementation specific as to whether it's randomized or preset
	// to all zeros.
	PowerOn()
}

// ReadAddr reads the little endian 16 bit value stored at addr. Used for
// the reset vector at power on; the interrupt vectors are read a byte at
// a time by the CPU itself.
func ReadAddr(b Bank, addr uint16) uint16 {
	return uint16(b.Read(addr)) | uint16(b.Read(addr+1))<<8
}
