package pq

import "container/heap"

// fibonacciEntry is one (element, priority) pair tracked by the backing
// heap.
type fibonacciEntry[E any] struct {
	elem     E
	priority float64
}

// fibonacciHeap is the container/heap.Interface implementation backing
// FibonacciQueue, following the pack's min-heap-of-entries convention.
type fibonacciHeap[E any] []fibonacciEntry[E]

func (h fibonacciHeap[E]) Len() int            { return len(h) }
func (h fibonacciHeap[E]) Less(i, j int) bool   { return h[i].priority < h[j].priority }
func (h fibonacciHeap[E]) Swap(i, j int)        { h[i], h[j] = h[j], h[i] }
func (h *fibonacciHeap[E]) Push(x interface{})  { *h = append(*h, x.(fibonacciEntry[E])) }
func (h *fibonacciHeap[E]) Pop() interface{} {
	old := *h
	n := len(old)
	entry := old[n-1]
	*h = old[:n-1]
	return entry
}

// FibonacciQueue is a min-priority queue with O(1) top, and O(log n) push
// and pop (§4.7). It is backed by a container/heap binary heap, not a
// true Fibonacci heap, so push is not O(1) amortized: nothing in the retrieved examples implements
// decrease-key, and this heuristic-comparison workload never needs it,
// since entries are never updated in place, only pushed and popped.
type FibonacciQueue[E any] struct {
	h fibonacciHeap[E]
}

// NewFibonacciQueue returns an empty FibonacciQueue.
func NewFibonacciQueue[E any]() *FibonacciQueue[E] {
	return &FibonacciQueue[E]{h: fibonacciHeap[E]{}}
}

func (q *FibonacciQueue[E]) Size() int  { return len(q.h) }
func (q *FibonacciQueue[E]) Empty() bool { return len(q.h) == 0 }
func (q *FibonacciQueue[E]) Clear()      { q.h = fibonacciHeap[E]{} }

// Push inserts elem with the given priority.
func (q *FibonacciQueue[E]) Push(elem E, priority float64) {
	heap.Push(&q.h, fibonacciEntry[E]{elem: elem, priority: priority})
}

// Top returns the minimum-priority element without removing it.
func (q *FibonacciQueue[E]) Top() E { return q.h[0].elem }

// MinPriority returns the minimum priority currently queued.
func (q *FibonacciQueue[E]) MinPriority() float64 { return q.h[0].priority }

// Pop removes and returns the minimum-priority element.
func (q *FibonacciQueue[E]) Pop() E {
	entry := heap.Pop(&q.h).(fibonacciEntry[E])
	return entry.elem
}
