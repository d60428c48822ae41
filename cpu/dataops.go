package cpu

// This file implements the datapath half of each cycle: ALU operations,
// register moves, flag updates, the indexed addressing fixups and branch
// resolution. Data effects run after the cycle's memory access, so an
// effect that consumes the MDR sees the value read this cycle.

// setNZ sets the negative and zero flags from val.
func (c *CPU) setNZ(val uint8) {
	c.P = c.P&^(P_NEGATIVE|P_ZERO) | val&P_NEGATIVE
	if val == 0 {
		c.P |= P_ZERO
	}
}

func (c *CPU) setFlag(flag uint8, on bool) {
	if on {
		c.P |= flag
	} else {
		c.P &^= flag
	}
}

// adc adds val and the carry into A, setting NVZC. Subtraction passes
// the one's complement of the operand; the 2A03 has no decimal mode so
// this is the whole ALU add path.
func (c *CPU) adc(val uint8) {
	sum := uint16(c.A) + uint16(val) + uint16(c.P&P_CARRY)
	res := uint8(sum)
	c.setFlag(P_CARRY, sum > 0xFF)
	c.setFlag(P_OVERFLOW, (c.A^res)&(val^res)&0x80 != 0)
	c.A = res
	c.setNZ(res)
}

// compare performs reg - val, discarding the result and keeping NZC.
func (c *CPU) compare(reg, val uint8) {
	c.setFlag(P_CARRY, reg >= val)
	c.setNZ(reg - val)
}

func (c *CPU) asl(val uint8) uint8 {
	c.setFlag(P_CARRY, val&0x80 != 0)
	val <<= 1
	c.setNZ(val)
	return val
}

func (c *CPU) lsr(val uint8) uint8 {
	c.setFlag(P_CARRY, val&0x01 != 0)
	val >>= 1
	c.setNZ(val)
	return val
}

func (c *CPU) rol(val uint8) uint8 {
	res := val<<1 | c.P&P_CARRY
	c.setFlag(P_CARRY, val&0x80 != 0)
	c.setNZ(res)
	return res
}

func (c *CPU) ror(val uint8) uint8 {
	res := val>>1 | c.P&P_CARRY<<7
	c.setFlag(P_CARRY, val&0x01 != 0)
	c.setNZ(res)
	return res
}

// runData performs the datapath action for the given micro op. The op
// itself is passed through so the conditional fixup can reissue the
// cycle's memory access on the corrected address.
func (c *CPU) runData(op microOp, incPC, done *bool) {
	switch op.data {
	case dataNop:

	case dataIncS:
		c.S++
	case dataIncX:
		c.X++
		c.setNZ(c.X)
	case dataIncY:
		c.Y++
		c.setNZ(c.Y)
	case dataIncMDR:
		c.mdr++
		c.setNZ(c.mdr)
	case dataDecS:
		c.S--
	case dataDecX:
		c.X--
		c.setNZ(c.X)
	case dataDecY:
		c.Y--
		c.setNZ(c.Y)
	case dataDecMDR:
		c.mdr--
		c.setNZ(c.mdr)

	case dataMovAX:
		c.X = c.A
		c.setNZ(c.X)
	case dataMovAY:
		c.Y = c.A
		c.setNZ(c.Y)
	case dataMovSX:
		c.X = c.S
		c.setNZ(c.X)
	case dataMovXA:
		c.A = c.X
		c.setNZ(c.A)
	case dataMovXS:
		// TXS sets no flags.
		c.S = c.X
	case dataMovYA:
		c.A = c.Y
		c.setNZ(c.A)
	case dataMovMDRPCL:
		c.PC = c.PC&0xFF00 | uint16(c.mdr)
	case dataMovMDRA:
		c.A = c.mdr
		c.setNZ(c.A)
	case dataMovMDRX:
		c.X = c.mdr
		c.setNZ(c.X)
	case dataMovMDRY:
		c.Y = c.mdr
		c.setNZ(c.Y)
	case dataMovMDRAX:
		c.A = c.mdr
		c.X = c.mdr
		c.setNZ(c.mdr)

	case dataCLC:
		c.P &^= P_CARRY
	case dataCLD:
		c.P &^= P_DECIMAL
	case dataCLI:
		c.P &^= P_INTERRUPT
	case dataCLV:
		c.P &^= P_OVERFLOW
	case dataSEC:
		c.P |= P_CARRY
	case dataSED:
		c.P |= P_DECIMAL
	case dataSEI:
		c.P |= P_INTERRUPT

	case dataCmpMDRA:
		c.compare(c.A, c.mdr)
	case dataCmpMDRX:
		c.compare(c.X, c.mdr)
	case dataCmpMDRY:
		c.compare(c.Y, c.mdr)

	case dataASLMDR:
		c.mdr = c.asl(c.mdr)
	case dataASLA:
		c.A = c.asl(c.A)
	case dataLSRMDR:
		c.mdr = c.lsr(c.mdr)
	case dataLSRA:
		c.A = c.lsr(c.A)
	case dataROLMDR:
		c.mdr = c.rol(c.mdr)
	case dataROLA:
		c.A = c.rol(c.A)
	case dataRORMDR:
		c.mdr = c.ror(c.mdr)
	case dataRORA:
		c.A = c.ror(c.A)

	case dataEORMDRA:
		c.A ^= c.mdr
		c.setNZ(c.A)
	case dataANDMDRA:
		c.A &= c.mdr
		c.setNZ(c.A)
	case dataORAMDRA:
		c.A |= c.mdr
		c.setNZ(c.A)
	case dataADCMDRA:
		c.adc(c.mdr)
	case dataSBCMDRA:
		c.adc(^c.mdr)
	case dataBITMDRA:
		c.setFlag(P_ZERO, c.A&c.mdr == 0)
		c.setFlag(P_NEGATIVE, c.mdr&0x80 != 0)
		c.setFlag(P_OVERFLOW, c.mdr&0x40 != 0)

	case dataSLOMDR:
		c.setFlag(P_CARRY, c.mdr&0x80 != 0)
		c.mdr <<= 1
		c.A |= c.mdr
		c.setNZ(c.A)
	case dataRLAMDR:
		c.mdr = c.rol(c.mdr)
		c.A &= c.mdr
		c.setNZ(c.A)
	case dataSREMDR:
		c.setFlag(P_CARRY, c.mdr&0x01 != 0)
		c.mdr >>= 1
		c.A ^= c.mdr
		c.setNZ(c.A)
	case dataRRAMDR:
		c.mdr = c.ror(c.mdr)
		c.adc(c.mdr)
	case dataDCPMDR:
		c.mdr--
		c.compare(c.A, c.mdr)
	case dataISCMDR:
		c.mdr++
		c.adc(^c.mdr)
	case dataANC:
		c.A &= c.mdr
		c.setNZ(c.A)
		c.setFlag(P_CARRY, c.A&0x80 != 0)
	case dataALR:
		c.A &= c.mdr
		c.A = c.lsr(c.A)
	case dataARR:
		res := (c.A&c.mdr)>>1 | c.P&P_CARRY<<7
		c.A = res
		c.setNZ(res)
		c.setFlag(P_CARRY, res&0x40 != 0)
		c.setFlag(P_OVERFLOW, (res>>6^res>>5)&0x01 != 0)
	case dataAXS:
		ax := c.A & c.X
		c.setFlag(P_CARRY, ax >= c.mdr)
		c.X = ax - c.mdr
		c.setNZ(c.X)

	case dataAddAddrLX:
		res := uint16(c.addr&0x00FF) + uint16(c.X)
		c.carry = uint8(res >> 8)
		c.addr = c.addr&0xFF00 | res&0x00FF
	case dataAddAddrLY:
		res := uint16(c.addr&0x00FF) + uint16(c.Y)
		c.carry = uint8(res >> 8)
		c.addr = c.addr&0xFF00 | res&0x00FF
	case dataAddPtrLX:
		// Zero page pointers wrap within the page.
		c.ptr = c.ptr&0xFF00 | uint16(uint8(c.ptr)+c.X)

	case dataFixAAddrH:
		// Reads only pay the page cross penalty when it happens: the
		// access this cycle used the unfixed address, so correct the
		// high byte and reissue it ahead of everything queued.
		if c.carry != 0 {
			c.addr = uint16(uint8(c.addr>>8)+c.carry)<<8 | c.addr&0x00FF
			c.carry = 0
			c.q.pushFront(microOp{mem: op.mem, data: dataNop, incPC: pcHold})
		}
	case dataFixAddrH:
		// Writes and read-modify-writes always take the fixup cycle;
		// the template already includes it.
		c.addr = uint16(uint8(c.addr>>8)+c.carry)<<8 | c.addr&0x00FF
		c.carry = 0
	case dataFixPCH:
		c.PC = uint16(uint8(c.PC>>8)+c.carry)<<8 | c.PC&0x00FF
		c.carry = 0

	case dataBranch:
		c.branch(incPC, done)

	default:
		c.q.fail("unknown data micro op")
	}
}

// branch resolves a conditional branch during its second cycle. Untaken
// branches fetch immediately; taken branches spend a cycle updating PCL
// and one more when the target crosses a page. The offset is sign
// extended before the add so a backward page cross leaves 0xFF in the
// carry latch, which fixes the high byte by wrapping.
func (c *CPU) branch(incPC, done *bool) {
	flag := c.inst >> 6
	cond := c.inst>>5&0x01 == 0x01
	var set bool
	switch flag {
	case 0:
		set = c.P&P_NEGATIVE != 0
	case 1:
		set = c.P&P_OVERFLOW != 0
	case 2:
		set = c.P&P_CARRY != 0
	case 3:
		set = c.P&P_ZERO != 0
	}

	res := uint16(c.PC&0x00FF) + uint16(int16(int8(c.mdr)))
	c.carry = uint8(res >> 8)

	if set != cond {
		c.fetch(incPC, done)
		return
	}
	c.PC = c.PC&0xFF00 | res&0x00FF
	if c.carry != 0 {
		c.addCycle(memNop, dataFixPCH, pcHold)
	}
	c.addCycle(memFetch, dataNop, pcInc)
}
