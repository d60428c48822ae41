package cpu

// Decode expands the opcode in the instruction register into the queue
// of cycles that execute it. Most opcodes share one of a handful of
// addressing mode templates with a single data or memory effect swapped
// in; the control flow instructions get their sequences spelled out.
//
// Every opcode value decodes to something. The undocumented opcodes
// with stable behavior run for real, the unstable address-high ANDing
// group (SHA, SHX, SHY, TAS, XAA, LAS) runs with correct timing but no
// effect, and the jam opcodes latch the CPU until reset.

func (c *CPU) decodeInst(inst uint8) {
	switch inst {
	case 0x00: // BRK
		c.addCycle(memReadPCDiscard, dataNop, pcInc)
		c.addCycle(memPushPCH, dataDecS, pcHold)
		c.addCycle(memPushPCL, dataDecS, pcHold)
		c.addCycle(memBRK, dataDecS, pcHold)
	case 0x01: // ORA (zp,X)
		c.decodeIzpx(dataORAMDRA)
	case 0x03: // SLO (zp,X)
		c.decodeRWIzpx(dataSLOMDR)
	case 0x04, 0x44, 0x64: // NOP zp
		c.decodeZP(dataNop)
	case 0x05: // ORA zp
		c.decodeZP(dataORAMDRA)
	case 0x06: // ASL zp
		c.decodeRWZP(dataASLMDR)
	case 0x07: // SLO zp
		c.decodeRWZP(dataSLOMDR)
	case 0x08: // PHP
		c.decodePush(memPushPB)
	case 0x09: // ORA #imm
		c.decodeImm(dataORAMDRA)
	case 0x0A: // ASL A
		c.decodeImplied(dataASLA)
	case 0x0B, 0x2B: // ANC #imm
		c.decodeImm(dataANC)
	case 0x0C: // NOP abs
		c.decodeAbs(dataNop)
	case 0x0D: // ORA abs
		c.decodeAbs(dataORAMDRA)
	case 0x0E: // ASL abs
		c.decodeRWAbs(dataASLMDR)
	case 0x0F: // SLO abs
		c.decodeRWAbs(dataSLOMDR)
	case 0x10, 0x30, 0x50, 0x70, 0x90, 0xB0, 0xD0, 0xF0:
		// BPL, BMI, BVC, BVS, BCC, BCS, BNE, BEQ. The branch effect
		// resolves which one from the instruction register.
		c.addCycle(memReadPCMDR, dataNop, pcInc)
		c.addCycle(memNop, dataBranch, pcHold)
	case 0x11: // ORA (zp),Y
		c.decodeIzpy(dataORAMDRA)
	case 0x13: // SLO (zp),Y
		c.decodeRWIzpy(dataSLOMDR)
	case 0x14, 0x34, 0x54, 0x74, 0xD4, 0xF4: // NOP zp,X
		c.decodeZPX(dataNop)
	case 0x15: // ORA zp,X
		c.decodeZPX(dataORAMDRA)
	case 0x16: // ASL zp,X
		c.decodeRWZPX(dataASLMDR)
	case 0x17: // SLO zp,X
		c.decodeRWZPX(dataSLOMDR)
	case 0x18: // CLC
		c.decodeImplied(dataCLC)
	case 0x19: // ORA abs,Y
		c.decodeAby(dataORAMDRA)
	case 0x1A, 0x3A, 0x5A, 0x7A, 0xDA, 0xFA: // NOP
		c.decodeImplied(dataNop)
	case 0x1B: // SLO abs,Y
		c.decodeRWAby(dataSLOMDR)
	case 0x1C, 0x3C, 0x5C, 0x7C, 0xDC, 0xFC: // NOP abs,X
		c.decodeAbx(dataNop)
	case 0x1D: // ORA abs,X
		c.decodeAbx(dataORAMDRA)
	case 0x1E: // ASL abs,X
		c.decodeRWAbx(dataASLMDR)
	case 0x1F: // SLO abs,X
		c.decodeRWAbx(dataSLOMDR)
	case 0x20: // JSR
		c.addCycle(memReadPCMDR, dataNop, pcInc)
		c.addCycle(memNop, dataNop, pcHold)
		c.addCycle(memPushPCH, dataDecS, pcHold)
		c.addCycle(memPushPCL, dataDecS, pcHold)
		c.addCycle(memReadPCPCH, dataMovMDRPCL, pcHold)
		c.addCycle(memFetch, dataNop, pcInc)
	case 0x21: // AND (zp,X)
		c.decodeIzpx(dataANDMDRA)
	case 0x23: // RLA (zp,X)
		c.decodeRWIzpx(dataRLAMDR)
	case 0x24: // BIT zp
		c.decodeZP(dataBITMDRA)
	case 0x25: // AND zp
		c.decodeZP(dataANDMDRA)
	case 0x26: // ROL zp
		c.decodeRWZP(dataROLMDR)
	case 0x27: // RLA zp
		c.decodeRWZP(dataRLAMDR)
	case 0x28: // PLP
		c.decodePull(memPullP)
	case 0x29: // AND #imm
		c.decodeImm(dataANDMDRA)
	case 0x2A: // ROL A
		c.decodeImplied(dataROLA)
	case 0x2C: // BIT abs
		c.decodeAbs(dataBITMDRA)
	case 0x2D: // AND abs
		c.decodeAbs(dataANDMDRA)
	case 0x2E: // ROL abs
		c.decodeRWAbs(dataROLMDR)
	case 0x2F: // RLA abs
		c.decodeRWAbs(dataRLAMDR)
	case 0x31: // AND (zp),Y
		c.decodeIzpy(dataANDMDRA)
	case 0x33: // RLA (zp),Y
		c.decodeRWIzpy(dataRLAMDR)
	case 0x35: // AND zp,X
		c.decodeZPX(dataANDMDRA)
	case 0x36: // ROL zp,X
		c.decodeRWZPX(dataROLMDR)
	case 0x37: // RLA zp,X
		c.decodeRWZPX(dataRLAMDR)
	case 0x38: // SEC
		c.decodeImplied(dataSEC)
	case 0x39: // AND abs,Y
		c.decodeAby(dataANDMDRA)
	case 0x3B: // RLA abs,Y
		c.decodeRWAby(dataRLAMDR)
	case 0x3D: // AND abs,X
		c.decodeAbx(dataANDMDRA)
	case 0x3E: // ROL abs,X
		c.decodeRWAbx(dataROLMDR)
	case 0x3F: // RLA abs,X
		c.decodeRWAbx(dataRLAMDR)
	case 0x40: // RTI
		c.addCycle(memReadPCDiscard, dataNop, pcHold)
		c.addCycle(memNop, dataIncS, pcHold)
		c.addCycle(memPullP, dataIncS, pcHold)
		c.addCycle(memPullPCL, dataIncS, pcHold)
		c.addCycle(memPullPCH, dataNop, pcHold)
		c.addCycle(memFetch, dataNop, pcInc)
	case 0x41: // EOR (zp,X)
		c.decodeIzpx(dataEORMDRA)
	case 0x43: // SRE (zp,X)
		c.decodeRWIzpx(dataSREMDR)
	case 0x45: // EOR zp
		c.decodeZP(dataEORMDRA)
	case 0x46: // LSR zp
		c.decodeRWZP(dataLSRMDR)
	case 0x47: // SRE zp
		c.decodeRWZP(dataSREMDR)
	case 0x48: // PHA
		c.decodePush(memPushA)
	case 0x49: // EOR #imm
		c.decodeImm(dataEORMDRA)
	case 0x4A: // LSR A
		c.decodeImplied(dataLSRA)
	case 0x4B: // ALR #imm
		c.decodeImm(dataALR)
	case 0x4C: // JMP abs
		c.addCycle(memReadPCMDR, dataNop, pcInc)
		c.addCycle(memReadPCPCH, dataMovMDRPCL, pcHold)
		c.addCycle(memFetch, dataNop, pcInc)
	case 0x4D: // EOR abs
		c.decodeAbs(dataEORMDRA)
	case 0x4E: // LSR abs
		c.decodeRWAbs(dataLSRMDR)
	case 0x4F: // SRE abs
		c.decodeRWAbs(dataSREMDR)
	case 0x51: // EOR (zp),Y
		c.decodeIzpy(dataEORMDRA)
	case 0x53: // SRE (zp),Y
		c.decodeRWIzpy(dataSREMDR)
	case 0x55: // EOR zp,X
		c.decodeZPX(dataEORMDRA)
	case 0x56: // LSR zp,X
		c.decodeRWZPX(dataLSRMDR)
	case 0x57: // SRE zp,X
		c.decodeRWZPX(dataSREMDR)
	case 0x58: // CLI
		c.decodeImplied(dataCLI)
	case 0x59: // EOR abs,Y
		c.decodeAby(dataEORMDRA)
	case 0x5B: // SRE abs,Y
		c.decodeRWAby(dataSREMDR)
	case 0x5D: // EOR abs,X
		c.decodeAbx(dataEORMDRA)
	case 0x5E: // LSR abs,X
		c.decodeRWAbx(dataLSRMDR)
	case 0x5F: // SRE abs,X
		c.decodeRWAbx(dataSREMDR)
	case 0x60: // RTS
		c.addCycle(memReadPCDiscard, dataNop, pcHold)
		c.addCycle(memNop, dataIncS, pcHold)
		c.addCycle(memPullPCL, dataIncS, pcHold)
		c.addCycle(memPullPCH, dataNop, pcHold)
		c.addCycle(memNop, dataNop, pcInc)
		c.addCycle(memFetch, dataNop, pcInc)
	case 0x61: // ADC (zp,X)
		c.decodeIzpx(dataADCMDRA)
	case 0x63: // RRA (zp,X)
		c.decodeRWIzpx(dataRRAMDR)
	case 0x65: // ADC zp
		c.decodeZP(dataADCMDRA)
	case 0x66: // ROR zp
		c.decodeRWZP(dataRORMDR)
	case 0x67: // RRA zp
		c.decodeRWZP(dataRRAMDR)
	case 0x68: // PLA
		c.decodePull(memPullA)
	case 0x69: // ADC #imm
		c.decodeImm(dataADCMDRA)
	case 0x6A: // ROR A
		c.decodeImplied(dataRORA)
	case 0x6B: // ARR #imm
		c.decodeImm(dataARR)
	case 0x6C: // JMP (abs)
		c.addCycle(memReadPCPtrL, dataNop, pcInc)
		c.addCycle(memReadPCPtrH, dataNop, pcInc)
		c.addCycle(memReadPtrMDR, dataNop, pcHold)
		c.addCycle(memReadPtr1PCH, dataMovMDRPCL, pcHold)
		c.addCycle(memFetch, dataNop, pcInc)
	case 0x6D: // ADC abs
		c.decodeAbs(dataADCMDRA)
	case 0x6E: // ROR abs
		c.decodeRWAbs(dataRORMDR)
	case 0x6F: // RRA abs
		c.decodeRWAbs(dataRRAMDR)
	case 0x71: // ADC (zp),Y
		c.decodeIzpy(dataADCMDRA)
	case 0x73: // RRA (zp),Y
		c.decodeRWIzpy(dataRRAMDR)
	case 0x75: // ADC zp,X
		c.decodeZPX(dataADCMDRA)
	case 0x76: // ROR zp,X
		c.decodeRWZPX(dataRORMDR)
	case 0x77: // RRA zp,X
		c.decodeRWZPX(dataRRAMDR)
	case 0x78: // SEI
		c.decodeImplied(dataSEI)
	case 0x79: // ADC abs,Y
		c.decodeAby(dataADCMDRA)
	case 0x7B: // RRA abs,Y
		c.decodeRWAby(dataRRAMDR)
	case 0x7D: // ADC abs,X
		c.decodeAbx(dataADCMDRA)
	case 0x7E: // ROR abs,X
		c.decodeRWAbx(dataRORMDR)
	case 0x7F: // RRA abs,X
		c.decodeRWAbx(dataRRAMDR)
	case 0x80, 0x82, 0x89, 0xC2, 0xE2: // NOP #imm
		c.decodeImm(dataNop)
	case 0x81: // STA (zp,X)
		c.decodeWIzpx(memWriteAAddr)
	case 0x83: // SAX (zp,X)
		c.decodeWIzpx(memWriteAXAddr)
	case 0x84: // STY zp
		c.decodeWZP(memWriteYAddr)
	case 0x85: // STA zp
		c.decodeWZP(memWriteAAddr)
	case 0x86: // STX zp
		c.decodeWZP(memWriteXAddr)
	case 0x87: // SAX zp
		c.decodeWZP(memWriteAXAddr)
	case 0x88: // DEY
		c.decodeImplied(dataDecY)
	case 0x8A: // TXA
		c.decodeImplied(dataMovXA)
	case 0x8B: // XAA #imm, unstable
		c.decodeImm(dataNop)
	case 0x8C: // STY abs
		c.decodeWAbs(memWriteYAddr)
	case 0x8D: // STA abs
		c.decodeWAbs(memWriteAAddr)
	case 0x8E: // STX abs
		c.decodeWAbs(memWriteXAddr)
	case 0x8F: // SAX abs
		c.decodeWAbs(memWriteAXAddr)
	case 0x91: // STA (zp),Y
		c.decodeWIzpy(memWriteAAddr)
	case 0x93: // SHA (zp),Y, unstable
		c.decodeWIzpy(memNop)
	case 0x94: // STY zp,X
		c.decodeWZPX(memWriteYAddr)
	case 0x95: // STA zp,X
		c.decodeWZPX(memWriteAAddr)
	case 0x96: // STX zp,Y
		c.decodeWZPY(memWriteXAddr)
	case 0x97: // SAX zp,Y
		c.decodeWZPY(memWriteAXAddr)
	case 0x98: // TYA
		c.decodeImplied(dataMovYA)
	case 0x99: // STA abs,Y
		c.decodeWAby(memWriteAAddr)
	case 0x9A: // TXS
		c.decodeImplied(dataMovXS)
	case 0x9B: // TAS abs,Y, unstable
		c.decodeWAby(memNop)
	case 0x9C: // SHY abs,X, unstable
		c.decodeWAbx(memNop)
	case 0x9D: // STA abs,X
		c.decodeWAbx(memWriteAAddr)
	case 0x9E: // SHX abs,Y, unstable
		c.decodeWAby(memNop)
	case 0x9F: // SHA abs,Y, unstable
		c.decodeWAby(memNop)
	case 0xA0: // LDY #imm
		c.decodeImm(dataMovMDRY)
	case 0xA1: // LDA (zp,X)
		c.decodeIzpx(dataMovMDRA)
	case 0xA2: // LDX #imm
		c.decodeImm(dataMovMDRX)
	case 0xA3: // LAX (zp,X)
		c.decodeIzpx(dataMovMDRAX)
	case 0xA4: // LDY zp
		c.decodeZP(dataMovMDRY)
	case 0xA5: // LDA zp
		c.decodeZP(dataMovMDRA)
	case 0xA6: // LDX zp
		c.decodeZP(dataMovMDRX)
	case 0xA7: // LAX zp
		c.decodeZP(dataMovMDRAX)
	case 0xA8: // TAY
		c.decodeImplied(dataMovAY)
	case 0xA9: // LDA #imm
		c.decodeImm(dataMovMDRA)
	case 0xAA: // TAX
		c.decodeImplied(dataMovAX)
	case 0xAB: // LAX #imm
		c.decodeImm(dataMovMDRAX)
	case 0xAC: // LDY abs
		c.decodeAbs(dataMovMDRY)
	case 0xAD: // LDA abs
		c.decodeAbs(dataMovMDRA)
	case 0xAE: // LDX abs
		c.decodeAbs(dataMovMDRX)
	case 0xAF: // LAX abs
		c.decodeAbs(dataMovMDRAX)
	case 0xB1: // LDA (zp),Y
		c.decodeIzpy(dataMovMDRA)
	case 0xB3: // LAX (zp),Y
		c.decodeIzpy(dataMovMDRAX)
	case 0xB4: // LDY zp,X
		c.decodeZPX(dataMovMDRY)
	case 0xB5: // LDA zp,X
		c.decodeZPX(dataMovMDRA)
	case 0xB6: // LDX zp,Y
		c.decodeZPY(dataMovMDRX)
	case 0xB7: // LAX zp,Y
		c.decodeZPY(dataMovMDRAX)
	case 0xB8: // CLV
		c.decodeImplied(dataCLV)
	case 0xB9: // LDA abs,Y
		c.decodeAby(dataMovMDRA)
	case 0xBA: // TSX
		c.decodeImplied(dataMovSX)
	case 0xBB: // LAS abs,Y, unstable
		c.decodeAby(dataNop)
	case 0xBC: // LDY abs,X
		c.decodeAbx(dataMovMDRY)
	case 0xBD: // LDA abs,X
		c.decodeAbx(dataMovMDRA)
	case 0xBE: // LDX abs,Y
		c.decodeAby(dataMovMDRX)
	case 0xBF: // LAX abs,Y
		c.decodeAby(dataMovMDRAX)
	case 0xC0: // CPY #imm
		c.decodeImm(dataCmpMDRY)
	case 0xC1: // CMP (zp,X)
		c.decodeIzpx(dataCmpMDRA)
	case 0xC3: // DCP (zp,X)
		c.decodeRWIzpx(dataDCPMDR)
	case 0xC4: // CPY zp
		c.decodeZP(dataCmpMDRY)
	case 0xC5: // CMP zp
		c.decodeZP(dataCmpMDRA)
	case 0xC6: // DEC zp
		c.decodeRWZP(dataDecMDR)
	case 0xC7: // DCP zp
		c.decodeRWZP(dataDCPMDR)
	case 0xC8: // INY
		c.decodeImplied(dataIncY)
	case 0xC9: // CMP #imm
		c.decodeImm(dataCmpMDRA)
	case 0xCA: // DEX
		c.decodeImplied(dataDecX)
	case 0xCB: // AXS #imm
		c.decodeImm(dataAXS)
	case 0xCC: // CPY abs
		c.decodeAbs(dataCmpMDRY)
	case 0xCD: // CMP abs
		c.decodeAbs(dataCmpMDRA)
	case 0xCE: // DEC abs
		c.decodeRWAbs(dataDecMDR)
	case 0xCF: // DCP abs
		c.decodeRWAbs(dataDCPMDR)
	case 0xD1: // CMP (zp),Y
		c.decodeIzpy(dataCmpMDRA)
	case 0xD3: // DCP (zp),Y
		c.decodeRWIzpy(dataDCPMDR)
	case 0xD5: // CMP zp,X
		c.decodeZPX(dataCmpMDRA)
	case 0xD6: // DEC zp,X
		c.decodeRWZPX(dataDecMDR)
	case 0xD7: // DCP zp,X
		c.decodeRWZPX(dataDCPMDR)
	case 0xD8: // CLD
		c.decodeImplied(dataCLD)
	case 0xD9: // CMP abs,Y
		c.decodeAby(dataCmpMDRA)
	case 0xDB: // DCP abs,Y
		c.decodeRWAby(dataDCPMDR)
	case 0xDD: // CMP abs,X
		c.decodeAbx(dataCmpMDRA)
	case 0xDE: // DEC abs,X
		c.decodeRWAbx(dataDecMDR)
	case 0xDF: // DCP abs,X
		c.decodeRWAbx(dataDCPMDR)
	case 0xE0: // CPX #imm
		c.decodeImm(dataCmpMDRX)
	case 0xE1: // SBC (zp,X)
		c.decodeIzpx(dataSBCMDRA)
	case 0xE3: // ISC (zp,X)
		c.decodeRWIzpx(dataISCMDR)
	case 0xE4: // CPX zp
		c.decodeZP(dataCmpMDRX)
	case 0xE5: // SBC zp
		c.decodeZP(dataSBCMDRA)
	case 0xE6: // INC zp
		c.decodeRWZP(dataIncMDR)
	case 0xE7: // ISC zp
		c.decodeRWZP(dataISCMDR)
	case 0xE8: // INX
		c.decodeImplied(dataIncX)
	case 0xE9, 0xEB: // SBC #imm
		c.decodeImm(dataSBCMDRA)
	case 0xEA: // NOP
		c.decodeImplied(dataNop)
	case 0xEC: // CPX abs
		c.decodeAbs(dataCmpMDRX)
	case 0xED: // SBC abs
		c.decodeAbs(dataSBCMDRA)
	case 0xEE: // INC abs
		c.decodeRWAbs(dataIncMDR)
	case 0xEF: // ISC abs
		c.decodeRWAbs(dataISCMDR)
	case 0xF1: // SBC (zp),Y
		c.decodeIzpy(dataSBCMDRA)
	case 0xF3: // ISC (zp),Y
		c.decodeRWIzpy(dataISCMDR)
	case 0xF5: // SBC zp,X
		c.decodeZPX(dataSBCMDRA)
	case 0xF6: // INC zp,X
		c.decodeRWZPX(dataIncMDR)
	case 0xF7: // ISC zp,X
		c.decodeRWZPX(dataISCMDR)
	case 0xF8: // SED
		c.decodeImplied(dataSED)
	case 0xF9: // SBC abs,Y
		c.decodeAby(dataSBCMDRA)
	case 0xFB: // ISC abs,Y
		c.decodeRWAby(dataISCMDR)
	case 0xFD: // SBC abs,X
		c.decodeAbx(dataSBCMDRA)
	case 0xFE: // INC abs,X
		c.decodeRWAbx(dataIncMDR)
	case 0xFF: // ISC abs,X
		c.decodeRWAbx(dataISCMDR)
	default:
		// 0x02 0x12 0x22 0x32 0x42 0x52 0x62 0x72 0x92 0xB2 0xD2 0xF2
		// jam the CPU until a reset.
		c.halted = true
		c.haltOpcode = inst
	}
}

// Addressing mode templates. Each takes the one effect that varies and
// queues the remaining cycles of the instruction, ending in the fetch of
// the next one.

func (c *CPU) decodeImm(d dataEffect) {
	c.addCycle(memReadPCMDR, dataNop, pcInc)
	c.addCycle(memFetch, d, pcInc)
}

func (c *CPU) decodeZP(d dataEffect) {
	c.addCycle(memReadPCZPAddr, dataNop, pcInc)
	c.addCycle(memReadAddrMDR, dataNop, pcHold)
	c.addCycle(memFetch, d, pcInc)
}

func (c *CPU) decodeZPX(d dataEffect) {
	c.addCycle(memReadPCZPAddr, dataNop, pcInc)
	c.addCycle(memReadAddrMDR, dataAddAddrLX, pcHold)
	c.addCycle(memReadAddrMDR, dataNop, pcHold)
	c.addCycle(memFetch, d, pcInc)
}

func (c *CPU) decodeZPY(d dataEffect) {
	c.addCycle(memReadPCZPAddr, dataNop, pcInc)
	c.addCycle(memReadAddrMDR, dataAddAddrLY, pcHold)
	c.addCycle(memReadAddrMDR, dataNop, pcHold)
	c.addCycle(memFetch, d, pcInc)
}

func (c *CPU) decodeAbs(d dataEffect) {
	c.addCycle(memReadPCAddrL, dataNop, pcInc)
	c.addCycle(memReadPCAddrH, dataNop, pcInc)
	c.addCycle(memReadAddrMDR, dataNop, pcHold)
	c.addCycle(memFetch, d, pcInc)
}

func (c *CPU) decodeAbx(d dataEffect) {
	c.addCycle(memReadPCAddrL, dataNop, pcInc)
	c.addCycle(memReadPCAddrH, dataAddAddrLX, pcInc)
	c.addCycle(memReadAddrMDR, dataFixAAddrH, pcHold)
	c.addCycle(memFetch, d, pcInc)
}

func (c *CPU) decodeAby(d dataEffect) {
	c.addCycle(memReadPCAddrL, dataNop, pcInc)
	c.addCycle(memReadPCAddrH, dataAddAddrLY, pcInc)
	c.addCycle(memReadAddrMDR, dataFixAAddrH, pcHold)
	c.addCycle(memFetch, d, pcInc)
}

func (c *CPU) decodeIzpx(d dataEffect) {
	c.addCycle(memReadPCZPPtr, dataNop, pcInc)
	c.addCycle(memReadPtrAddrL, dataAddPtrLX, pcHold)
	c.addCycle(memReadPtrAddrL, dataNop, pcHold)
	c.addCycle(memReadPtr1AddrH, dataNop, pcHold)
	c.addCycle(memReadAddrMDR, dataNop, pcHold)
	c.addCycle(memFetch, d, pcInc)
}

func (c *CPU) decodeIzpy(d dataEffect) {
	c.addCycle(memReadPCZPPtr, dataNop, pcInc)
	c.addCycle(memReadPtrAddrL, dataNop, pcHold)
	c.addCycle(memReadPtr1AddrH, dataAddAddrLY, pcHold)
	c.addCycle(memReadAddrMDR, dataFixAAddrH, pcHold)
	c.addCycle(memFetch, d, pcInc)
}

func (c *CPU) decodeImplied(d dataEffect) {
	c.addCycle(memReadPCDiscard, dataNop, pcHold)
	c.addCycle(memFetch, d, pcInc)
}

// Read-modify-write templates. The effect runs during the first write
// cycle, so the old value goes back to memory before the new one.

func (c *CPU) decodeRWZP(d dataEffect) {
	c.addCycle(memReadPCZPAddr, dataNop, pcInc)
	c.addCycle(memReadAddrMDR, dataNop, pcHold)
	c.addCycle(memWriteMDRAddr, d, pcHold)
	c.addCycle(memWriteMDRAddr, dataNop, pcHold)
	c.addCycle(memFetch, dataNop, pcInc)
}

func (c *CPU) decodeRWZPX(d dataEffect) {
	c.addCycle(memReadPCZPAddr, dataNop, pcInc)
	c.addCycle(memReadAddrMDR, dataAddAddrLX, pcHold)
	c.addCycle(memReadAddrMDR, dataNop, pcHold)
	c.addCycle(memWriteMDRAddr, d, pcHold)
	c.addCycle(memWriteMDRAddr, dataNop, pcHold)
	c.addCycle(memFetch, dataNop, pcInc)
}

func (c *CPU) decodeRWAbs(d dataEffect) {
	c.addCycle(memReadPCAddrL, dataNop, pcInc)
	c.addCycle(memReadPCAddrH, dataNop, pcInc)
	c.addCycle(memReadAddrMDR, dataNop, pcHold)
	c.addCycle(memWriteMDRAddr, d, pcHold)
	c.addCycle(memWriteMDRAddr, dataNop, pcHold)
	c.addCycle(memFetch, dataNop, pcInc)
}

func (c *CPU) decodeRWAbx(d dataEffect) {
	c.addCycle(memReadPCAddrL, dataNop, pcInc)
	c.addCycle(memReadPCAddrH, dataAddAddrLX, pcInc)
	c.addCycle(memReadAddrMDR, dataFixAddrH, pcHold)
	c.addCycle(memReadAddrMDR, dataNop, pcHold)
	c.addCycle(memWriteMDRAddr, d, pcHold)
	c.addCycle(memWriteMDRAddr, dataNop, pcHold)
	c.addCycle(memFetch, dataNop, pcInc)
}

func (c *CPU) decodeRWAby(d dataEffect) {
	c.addCycle(memReadPCAddrL, dataNop, pcInc)
	c.addCycle(memReadPCAddrH, dataAddAddrLY, pcInc)
	c.addCycle(memReadAddrMDR, dataFixAddrH, pcHold)
	c.addCycle(memReadAddrMDR, dataNop, pcHold)
	c.addCycle(memWriteMDRAddr, d, pcHold)
	c.addCycle(memWriteMDRAddr, dataNop, pcHold)
	c.addCycle(memFetch, dataNop, pcInc)
}

func (c *CPU) decodeRWIzpx(d dataEffect) {
	c.addCycle(memReadPCZPPtr, dataNop, pcInc)
	c.addCycle(memReadPtrAddrL, dataAddPtrLX, pcHold)
	c.addCycle(memReadPtrAddrL, dataNop, pcHold)
	c.addCycle(memReadPtr1AddrH, dataNop, pcHold)
	c.addCycle(memReadAddrMDR, dataNop, pcHold)
	c.addCycle(memWriteMDRAddr, d, pcHold)
	c.addCycle(memWriteMDRAddr, dataNop, pcHold)
	c.addCycle(memFetch, dataNop, pcInc)
}

func (c *CPU) decodeRWIzpy(d dataEffect) {
	c.addCycle(memReadPCZPPtr, dataNop, pcInc)
	c.addCycle(memReadPtrAddrL, dataNop, pcHold)
	c.addCycle(memReadPtr1AddrH, dataAddAddrLY, pcHold)
	c.addCycle(memReadAddrMDR, dataFixAddrH, pcHold)
	c.addCycle(memReadAddrMDR, dataNop, pcHold)
	c.addCycle(memWriteMDRAddr, d, pcHold)
	c.addCycle(memWriteMDRAddr, dataNop, pcHold)
	c.addCycle(memFetch, dataNop, pcInc)
}

// Store templates take the write effect instead, since the cycle that
// varies is a memory access.

func (c *CPU) decodeWZP(m memEffect) {
	c.addCycle(memReadPCZPAddr, dataNop, pcInc)
	c.addCycle(m, dataNop, pcHold)
	c.addCycle(memFetch, dataNop, pcInc)
}

func (c *CPU) decodeWZPX(m memEffect) {
	c.addCycle(memReadPCZPAddr, dataNop, pcInc)
	c.addCycle(memReadAddrMDR, dataAddAddrLX, pcHold)
	c.addCycle(m, dataNop, pcHold)
	c.addCycle(memFetch, dataNop, pcInc)
}

func (c *CPU) decodeWZPY(m memEffect) {
	c.addCycle(memReadPCZPAddr, dataNop, pcInc)
	c.addCycle(memReadAddrMDR, dataAddAddrLY, pcHold)
	c.addCycle(m, dataNop, pcHold)
	c.addCycle(memFetch, dataNop, pcInc)
}

func (c *CPU) decodeWAbs(m memEffect) {
	c.addCycle(memReadPCAddrL, dataNop, pcInc)
	c.addCycle(memReadPCAddrH, dataNop, pcInc)
	c.addCycle(m, dataNop, pcHold)
	c.addCycle(memFetch, dataNop, pcInc)
}

func (c *CPU) decodeWAbx(m memEffect) {
	c.addCycle(memReadPCAddrL, dataNop, pcInc)
	c.addCycle(memReadPCAddrH, dataAddAddrLX, pcInc)
	c.addCycle(memReadAddrMDR, dataFixAddrH, pcHold)
	c.addCycle(m, dataNop, pcHold)
	c.addCycle(memFetch, dataNop, pcInc)
}

func (c *CPU) decodeWAby(m memEffect) {
	c.addCycle(memReadPCAddrL, dataNop, pcInc)
	c.addCycle(memReadPCAddrH, dataAddAddrLY, pcInc)
	c.addCycle(memReadAddrMDR, dataFixAddrH, pcHold)
	c.addCycle(m, dataNop, pcHold)
	c.addCycle(memFetch, dataNop, pcInc)
}

func (c *CPU) decodeWIzpx(m memEffect) {
	c.addCycle(memReadPCZPPtr, dataNop, pcInc)
	c.addCycle(memReadPtrAddrL, dataAddPtrLX, pcHold)
	c.addCycle(memReadPtrAddrL, dataNop, pcHold)
	c.addCycle(memReadPtr1AddrH, dataNop, pcHold)
	c.addCycle(m, dataNop, pcHold)
	c.addCycle(memFetch, dataNop, pcInc)
}

func (c *CPU) decodeWIzpy(m memEffect) {
	c.addCycle(memReadPCZPPtr, dataNop, pcInc)
	c.addCycle(memReadPtrAddrL, dataNop, pcHold)
	c.addCycle(memReadPtr1AddrH, dataAddAddrLY, pcHold)
	c.addCycle(memReadAddrMDR, dataFixAddrH, pcHold)
	c.addCycle(m, dataNop, pcHold)
	c.addCycle(memFetch, dataNop, pcInc)
}

func (c *CPU) decodePush(m memEffect) {
	c.addCycle(memReadPCDiscard, dataNop, pcHold)
	c.addCycle(m, dataDecS, pcHold)
	c.addCycle(memFetch, dataNop, pcInc)
}

func (c *CPU) decodePull(m memEffect) {
	c.addCycle(memReadPCDiscard, dataNop, pcHold)
	c.addCycle(memNop, dataIncS, pcHold)
	c.addCycle(m, dataNop, pcHold)
	c.addCycle(memFetch, dataNop, pcInc)
}
