package sim

import "container/heap"

// PriorityQueue is a binary min-heap ordered by a caller-supplied comparator.
// SJF and SRTF share it; they differ only in the comparator they pass.
// See canonical Golang example here: https://pkg.go.dev/container/heap#example-package-PriorityQueue
type PriorityQueue[T any] struct {
	store heapStore[T]
}

// NewPriorityQueue returns an empty queue pre-sized for capacity items.
// less must be a strict total order for deterministic selection.
func NewPriorityQueue[T any](capacity int, less func(a, b T) bool) *PriorityQueue[T] {
	if less == nil {
		panic("NewPriorityQueue: less must not be nil")
	}
	return &PriorityQueue[T]{store: heapStore[T]{items: make([]T, 0, capacity), less: less}}
}

// Push inserts an item.
func (pq *PriorityQueue[T]) Push(item T) {
	heap.Push(&pq.store, item)
}

// Pop removes and returns the minimum item. ok is false when empty.
func (pq *PriorityQueue[T]) Pop() (item T, ok bool) {
	if pq.store.Len() == 0 {
		return item, false
	}
	return heap.Pop(&pq.store).(T), true
}

// Peek returns the minimum item without removing it. ok is false when empty.
func (pq *PriorityQueue[T]) Peek() (item T, ok bool) {
	if pq.store.Len() == 0 {
		return item, false
	}
	return pq.store.items[0], true
}

// Len returns the number of queued items.
func (pq *PriorityQueue[T]) Len() int {
	return pq.store.Len()
}

// heapStore implements heap.Interface over a comparator.
type heapStore[T any] struct {
	items []T
	less  func(a, b T) bool
}

func (h *heapStore[T]) Len() int           { return len(h.items) }
func (h *heapStore[T]) Less(i, j int) bool { return h.less(h.items[i], h.items[j]) }
func (h *heapStore[T]) Swap(i, j int)      { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *heapStore[T]) Push(x any) {
	h.items = append(h.items, x.(T))
}

func (h *heapStore[T]) Pop() any {
	old := h.items
	n := len(old)
	item := old[n-1]
	var zero T
	old[n-1] = zero
	h.items = old[0 : n-1]
	return item
}

// ByKeyArrivalID builds a comparator over process positions:
// key ascending, then arrival ascending, then ID ascending.
// The comparator closes over ps; no package state is involved.
func ByKeyArrivalID(ps *ProcessSet, key func(pos int) int64) func(a, b int) bool {
	return func(a, b int) bool {
		if ka, kb := key(a), key(b); ka != kb {
			return ka < kb
		}
		pa, pb := ps.At(a), ps.At(b)
		if pa.Arrival != pb.Arrival {
			return pa.Arrival < pb.Arrival
		}
		return pa.ID < pb.ID
	}
}

// ShortestBurstFirst orders positions by (burst, arrival, id). Used by SJF.
func ShortestBurstFirst(ps *ProcessSet) func(a, b int) bool {
	return ByKeyArrivalID(ps, func(pos int) int64 { return ps.At(pos).Burst })
}

// ShortestRemainingFirst orders positions by (remaining, arrival, id). Used by SRTF.
// remaining is read at comparison time, so callers must re-insert a position
// after changing its remaining time.
func ShortestRemainingFirst(ps *ProcessSet, remaining []int64) func(a, b int) bool {
	return ByKeyArrivalID(ps, func(pos int) int64 { return remaining[pos] })
}
