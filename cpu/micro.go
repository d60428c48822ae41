package cpu

// Micro operations are an abstraction; strictly speaking they do not
// exist in the 2A03. Each clock cycle the real chip performs one memory
// access and one datapath action in parallel, sequenced by a cycle
// counter and random control logic. Modeling that directly buys no
// accuracy, so each cycle is instead described by a memEffect, a
// dataEffect and whether the PC advances afterwards.

// memEffect enumerates the memory actions a cycle can perform: fetching,
// reading, writing and stack operations. Reading from an interrupt
// vector is also classified as a memory action.
type memEffect uint8

const (
	memNop memEffect = iota
	memFetch

	memReadPCDiscard
	memReadPCMDR
	memReadPCPCH
	memReadPCZPAddr
	memReadPCAddrL
	memReadPCAddrH
	memReadPCZPPtr
	memReadPCPtrL
	memReadPCPtrH
	memReadAddrMDR
	memReadPtrMDR
	memReadPtrAddrL
	memReadPtr1AddrH
	memReadPtr1PCH

	memWriteMDRAddr
	memWriteAAddr
	memWriteXAddr
	memWriteYAddr
	memWriteAXAddr

	memPushPCL
	memPushPCH
	memPushA
	memPushP
	memPushPB
	memBRK
	memIRQ

	memPullPCL
	memPullPCH
	memPullA
	memPullP

	memNMIPCL
	memNMIPCH
	memIRQPCL
	memIRQPCH
)

// dataEffect enumerates the register file actions: arithmetic, logic,
// flag updates, movement, the address fixups and branch resolution.
type dataEffect uint8

const (
	dataNop dataEffect = iota

	dataIncS
	dataIncX
	dataIncY
	dataIncMDR

	dataDecS
	dataDecX
	dataDecY
	dataDecMDR

	dataMovAX
	dataMovAY
	dataMovSX
	dataMovXA
	dataMovXS
	dataMovYA
	dataMovMDRPCL
	dataMovMDRA
	dataMovMDRX
	dataMovMDRY
	dataMovMDRAX

	dataCLC
	dataCLD
	dataCLI
	dataCLV
	dataSEC
	dataSED
	dataSEI

	dataCmpMDRA
	dataCmpMDRX
	dataCmpMDRY

	dataASLMDR
	dataASLA
	dataLSRMDR
	dataLSRA
	dataROLMDR
	dataROLA
	dataRORMDR
	dataRORA

	dataEORMDRA
	dataANDMDRA
	dataORAMDRA
	dataADCMDRA
	dataSBCMDRA
	dataBITMDRA

	dataSLOMDR
	dataRLAMDR
	dataSREMDR
	dataRRAMDR
	dataDCPMDR
	dataISCMDR
	dataANC
	dataALR
	dataARR
	dataAXS

	dataAddAddrLX
	dataAddAddrLY
	dataAddPtrLX

	dataFixAAddrH
	dataFixAddrH
	dataFixPCH

	dataBranch
)

// PC action names, to keep decode templates readable.
const (
	pcInc  = true
	pcHold = false
)

// microOp is one cycle's worth of work. Values are produced by decode,
// consumed exactly once by RunCycle and then discarded.
type microOp struct {
	mem   memEffect
	data  dataEffect
	incPC bool
}

// queueCap is sized to the longest decoded sequence (the read-modify-write
// indirect shapes and the NMI service sequence need 8 and 7 outstanding
// cycles respectively). No instruction shape can exceed it.
const queueCap = 8

// opQueue is a fixed capacity ring buffer of pending micro operations.
// Overflow and underflow are invariant violations in the decode tables,
// not runtime conditions; rather than corrupt unrelated slots they latch
// an error which the executor surfaces on the next cycle.
type opQueue struct {
	ops   [queueCap]microOp
	front int
	size  int
	err   error
}

func (q *opQueue) fail(reason string) {
	if q.err == nil {
		q.err = InvalidCPUState{Reason: reason}
	}
}

// append adds a cycle to the back of the queue.
func (q *opQueue) append(op microOp) {
	if q.size >= queueCap {
		q.fail("micro op queue overflow")
		return
	}
	q.ops[(q.front+q.size)%queueCap] = op
	q.size++
}

// pushFront inserts a cycle at the front of the queue, ahead of
// everything already decoded. Only the page cross fixup uses this: the
// corrected read must happen before the rest of the instruction.
func (q *opQueue) pushFront(op microOp) {
	if q.size >= queueCap {
		q.fail("micro op queue overflow")
		return
	}
	q.front = (q.front + queueCap - 1) % queueCap
	q.ops[q.front] = op
	q.size++
}

// popFront removes and returns the next cycle to execute.
func (q *opQueue) popFront() (microOp, bool) {
	if q.size == 0 {
		q.fail("pop from empty micro op queue")
		return microOp{}, false
	}
	op := q.ops[q.front]
	q.front = (q.front + 1) % queueCap
	q.size--
	return op, true
}

// canPoll reports whether this is the cycle to poll the interrupt
// detectors. Polling happens at the end of the second-to-last cycle of
// an instruction; since a fetch always ends a sequence, that is when
// exactly two operations remain.
func (q *opQueue) canPoll() bool {
	return q.size == 2
}

// clear empties the queue, abandoning whatever was in flight.
func (q *opQueue) clear() {
	q.front = 0
	q.size = 0
	q.err = nil
}
