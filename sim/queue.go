// Implements the ReadyQueue, which holds the processes eligible for the next
// Round-Robin slice. Positions are enqueued on arrival and on quantum expiry.

package sim

import (
	"fmt"
	"strings"
)

// ReadyQueue is a FIFO of process positions.
// A position is never present twice: inQueue guards membership.
type ReadyQueue struct {
	queue   []int  // FIFO of process positions
	inQueue []bool // inQueue[pos] is true while pos is queued
}

// NewReadyQueue returns an empty queue for a set of n processes.
func NewReadyQueue(n int) *ReadyQueue {
	return &ReadyQueue{
		queue:   make([]int, 0, n),
		inQueue: make([]bool, n),
	}
}

// Enqueue adds pos at the tail. Panics if pos is already queued.
func (rq *ReadyQueue) Enqueue(pos int) {
	if rq.inQueue[pos] {
		panic(fmt.Sprintf("Enqueue: position %d is already queued", pos))
	}
	rq.inQueue[pos] = true
	rq.queue = append(rq.queue, pos)
}

// Dequeue removes and returns the head. ok is false when empty.
func (rq *ReadyQueue) Dequeue() (pos int, ok bool) {
	if len(rq.queue) == 0 {
		return 0, false
	}
	pos = rq.queue[0]
	rq.queue = rq.queue[1:]
	rq.inQueue[pos] = false
	return pos, true
}

// Peek returns the head without removing it. ok is false when empty.
func (rq *ReadyQueue) Peek() (pos int, ok bool) {
	if len(rq.queue) == 0 {
		return 0, false
	}
	return rq.queue[0], true
}

// Contains reports whether pos is queued.
func (rq *ReadyQueue) Contains(pos int) bool {
	return rq.inQueue[pos]
}

// Len returns the number of queued positions.
func (rq *ReadyQueue) Len() int {
	return len(rq.queue)
}

func (rq *ReadyQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, pos := range rq.queue {
		sb.WriteString(fmt.Sprint(pos))
		if i < len(rq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
