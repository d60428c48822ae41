package cpu

import (
	"errors"
	"testing"
)

func TestQueueOrdering(t *testing.T) {
	q := &opQueue{}
	for i := 0; i < 3; i++ {
		q.append(microOp{mem: memEffect(i)})
	}
	// A front insert runs before everything already queued.
	q.pushFront(microOp{mem: memEffect(99)})
	want := []memEffect{99, 0, 1, 2}
	for i, w := range want {
		op, ok := q.popFront()
		if !ok {
			t.Fatalf("Unexpected empty queue at %d", i)
		}
		if op.mem != w {
			t.Errorf("Pop %d got %d want %d", i, op.mem, w)
		}
	}
	if q.size != 0 || q.err != nil {
		t.Errorf("Queue not clean after drain: size %d err %v", q.size, q.err)
	}
}

func TestQueueWrap(t *testing.T) {
	q := &opQueue{}
	// Cycle through more than the capacity so front wraps the ring.
	for round := 0; round < 3; round++ {
		for i := 0; i < queueCap; i++ {
			q.append(microOp{mem: memEffect(i)})
		}
		for i := 0; i < queueCap; i++ {
			op, ok := q.popFront()
			if !ok || op.mem != memEffect(i) {
				t.Fatalf("Round %d pop %d got %d ok %t", round, i, op.mem, ok)
			}
		}
	}
}

func TestQueueCanPoll(t *testing.T) {
	q := &opQueue{}
	for i := 0; i < 4; i++ {
		q.append(microOp{})
	}
	polls := []bool{false, false, true, false}
	for _, want := range polls {
		if got := q.canPoll(); got != want {
			t.Errorf("Size %d canPoll got %t want %t", q.size, got, want)
		}
		q.popFront()
	}
}

func TestQueueErrorLatching(t *testing.T) {
	q := &opQueue{}
	for i := 0; i < queueCap; i++ {
		q.append(microOp{})
	}
	q.append(microOp{})
	var state InvalidCPUState
	if !errors.As(q.err, &state) {
		t.Fatalf("Overflow didn't latch an error, got %v", q.err)
	}
	first := q.err
	// Later failures never overwrite the first cause.
	q.pushFront(microOp{})
	if q.err != first {
		t.Errorf("Latched error replaced: %v", q.err)
	}
	q.clear()
	if q.err != nil || q.size != 0 {
		t.Errorf("Clear didn't reset the queue: size %d err %v", q.size, q.err)
	}
	if _, ok := q.popFront(); ok {
		t.Errorf("Pop from empty queue succeeded")
	}
	if !errors.As(q.err, &state) {
		t.Errorf("Underflow didn't latch an error, got %v", q.err)
	}
}
