package cpu

// This file implements the memory half of each cycle: the single bus
// access a micro operation performs, plus the fetch/decode step and the
// interrupt vector selection that rides along with it.

const stackStart = uint16(0x0100)

func (c *CPU) push(val uint8) {
	c.ram.Write(stackStart|uint16(c.S), val)
}

func (c *CPU) pull() uint8 {
	return c.ram.Read(stackStart | uint16(c.S))
}

// ptr1 returns the address one past ptr with the page held fixed. The
// 6502 never carries into the high byte when reading the second byte of
// a pointer, which is both the zero page indirection wrap and the JMP
// ($xxFF) bug.
func ptr1(ptr uint16) uint16 {
	return ptr&0xFF00 | uint16(uint8(ptr)+1)
}

// runMem performs the memory access for the given micro op. The fetch
// case may rewrite incPC since interrupt service must not advance the PC
// past the opcode it preempted.
func (c *CPU) runMem(op microOp, incPC, done *bool) {
	switch op.mem {
	case memNop:
	case memFetch:
		c.fetch(incPC, done)

	case memReadPCDiscard:
		c.ram.Read(c.PC)
	case memReadPCMDR:
		c.mdr = c.ram.Read(c.PC)
	case memReadPCPCH:
		c.PC = uint16(c.ram.Read(c.PC))<<8 | c.PC&0x00FF
	case memReadPCZPAddr:
		c.addr = uint16(c.ram.Read(c.PC))
	case memReadPCAddrL:
		c.addr = uint16(c.ram.Read(c.PC))
	case memReadPCAddrH:
		c.addr = uint16(c.ram.Read(c.PC))<<8 | c.addr&0x00FF
	case memReadPCZPPtr:
		c.ptr = uint16(c.ram.Read(c.PC))
	case memReadPCPtrL:
		c.ptr = uint16(c.ram.Read(c.PC))
	case memReadPCPtrH:
		c.ptr = uint16(c.ram.Read(c.PC))<<8 | c.ptr&0x00FF
	case memReadAddrMDR:
		c.mdr = c.ram.Read(c.addr)
	case memReadPtrMDR:
		c.mdr = c.ram.Read(c.ptr)
	case memReadPtrAddrL:
		c.addr = uint16(c.ram.Read(c.ptr))
	case memReadPtr1AddrH:
		c.addr = uint16(c.ram.Read(ptr1(c.ptr)))<<8 | c.addr&0x00FF
	case memReadPtr1PCH:
		c.PC = uint16(c.ram.Read(ptr1(c.ptr)))<<8 | c.PC&0x00FF

	case memWriteMDRAddr:
		c.ram.Write(c.addr, c.mdr)
	case memWriteAAddr:
		c.ram.Write(c.addr, c.A)
	case memWriteXAddr:
		c.ram.Write(c.addr, c.X)
	case memWriteYAddr:
		c.ram.Write(c.addr, c.Y)
	case memWriteAXAddr:
		c.ram.Write(c.addr, c.A&c.X)

	case memPushPCL:
		c.push(uint8(c.PC & 0x00FF))
	case memPushPCH:
		c.push(uint8(c.PC >> 8))
	case memPushA:
		c.push(c.A)
	case memPushP:
		c.push(c.P&^P_B | P_S1)
	case memPushPB:
		c.push(c.P | P_B | P_S1)
	case memBRK:
		// BRK pushes status with B set, then picks its vector.
		c.push(c.P | P_B | P_S1)
		c.vectorCycles()
	case memIRQ:
		// IRQ pushes status with B clear, then picks its vector.
		c.push(c.P&^P_B | P_S1)
		c.vectorCycles()

	case memPullPCL:
		c.PC = c.PC&0xFF00 | uint16(c.pull())
	case memPullPCH:
		c.PC = uint16(c.pull())<<8 | c.PC&0x00FF
	case memPullA:
		c.A = c.pull()
		c.setNZ(c.A)
	case memPullP:
		c.P = c.pull()&^P_B | P_S1

	case memNMIPCL:
		c.PC = c.PC&0xFF00 | uint16(c.ram.Read(NMI_VECTOR))
	case memNMIPCH:
		c.PC = uint16(c.ram.Read(NMI_VECTOR+1))<<8 | c.PC&0x00FF
	case memIRQPCL:
		c.PC = c.PC&0xFF00 | uint16(c.ram.Read(IRQ_VECTOR))
	case memIRQPCH:
		c.PC = uint16(c.ram.Read(IRQ_VECTOR+1))<<8 | c.PC&0x00FF

	default:
		c.q.fail("unknown memory micro op")
	}
}

// vectorCycles queues the vector read and fetch cycles that finish a BRK
// or IRQ sequence. This runs during the status push cycle, which is the
// last moment an NMI edge can hijack the vector. Either way the pushed
// status bytes above are already on the stack unchanged.
func (c *CPU) vectorCycles() {
	if c.nmiEdge {
		c.nmiEdge = false
		c.addCycle(memNMIPCL, dataSEI, pcHold)
		c.addCycle(memNMIPCH, dataNop, pcHold)
	} else {
		c.addCycle(memIRQPCL, dataSEI, pcHold)
		c.addCycle(memIRQPCH, dataNop, pcHold)
	}
	c.irqReady = false
	c.addCycle(memFetch, dataNop, pcInc)
}

// fetch reads and decodes the next opcode, or begins interrupt service
// instead when a detector fired. It runs on the final cycle of every
// instruction, so it also reports the instruction boundary.
func (c *CPU) fetch(incPC, done *bool) {
	*done = true

	if c.nmiEdge {
		c.nmiEdge = false
		c.irqReady = false
		// Interrupts load BRK into the instruction register and hold
		// the PC on the preempted opcode.
		c.inst = 0x00
		*incPC = false
		c.addCycle(memReadPCDiscard, dataNop, pcHold)
		c.addCycle(memPushPCH, dataDecS, pcHold)
		c.addCycle(memPushPCL, dataDecS, pcHold)
		c.addCycle(memPushP, dataDecS, pcHold)
		c.addCycle(memNMIPCL, dataSEI, pcHold)
		c.addCycle(memNMIPCH, dataNop, pcHold)
		c.addCycle(memFetch, dataNop, pcInc)
		return
	}
	if c.irqReady {
		c.irqReady = false
		c.inst = 0x00
		*incPC = false
		c.addCycle(memReadPCDiscard, dataNop, pcHold)
		c.addCycle(memPushPCH, dataDecS, pcHold)
		c.addCycle(memPushPCL, dataDecS, pcHold)
		c.addCycle(memIRQ, dataDecS, pcHold)
		return
	}

	// An untaken branch resolves into a fetch mid cycle with the PC
	// action still set to hold; a real decode always advances past the
	// opcode, so force the increment here.
	*incPC = true
	c.inst = c.ram.Read(c.PC)
	c.decodeInst(c.inst)
}
