// Package heap provides a generic binary-heap-backed priority queue.
//
// A Heap owns one contiguous slice of elements arranged in the implicit
// binary-tree encoding (node i has children 2i+1 and 2i+2) and one comparison
// function fixed at construction. The element at index 0 is always the
// highest-priority element under that comparison; the rest of the slice is
// heap-shaped, not sorted.
//
// Heaps are not safe for concurrent use. A Heap assumes a single logical
// owner; mutating one from multiple goroutines without external
// synchronization may corrupt the heap invariant, with no detection and no
// recovery.
package heap

import (
	"iter"
	"reflect"
	"slices"

	"golang.org/x/exp/constraints"
)

// Heap is a dynamically sized priority queue over a total order.
// The zero value is not usable; construct with NewMin, NewMax or New.
type Heap[T any] struct {
	items []T
	cmp   func(a, b T) int
}

// NewMin returns a min-heap over an ordered element type: Pop yields elements
// in ascending order. The initial items, if any, are copied (never aliased)
// and heapified in O(n).
func NewMin[T constraints.Ordered](items ...T) *Heap[T] {
	return newHeap(orderedCompare[T], items)
}

// NewMax returns a max-heap over an ordered element type: Pop yields elements
// in descending order. The initial items, if any, are copied and heapified in
// O(n).
func NewMax[T constraints.Ordered](items ...T) *Heap[T] {
	return newHeap(func(a, b T) int {
		return orderedCompare(b, a)
	}, items)
}

// New returns a heap ordered by cmp, which must describe a total order:
// negative if a outranks b, zero on ties, positive otherwise. Whatever cmp
// ranks lowest surfaces at the top. cmp must not be nil. The initial items,
// if any, are copied and heapified in O(n).
func New[T any](cmp func(a, b T) int, items ...T) *Heap[T] {
	if cmp == nil {
		panic("heap: nil comparator")
	}
	return newHeap(cmp, items)
}

func newHeap[T any](cmp func(a, b T) int, items []T) *Heap[T] {
	h := &Heap[T]{
		// Copy: variadic call sites may pass a caller-owned slice.
		items: append([]T(nil), items...),
		cmp:   cmp,
	}
	h.heapify()
	return h
}

func orderedCompare[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return +1
	}
	return 0
}

// Len returns the number of elements currently in the heap.
func (h *Heap[T]) Len() int { return len(h.items) }

// IsEmpty reports whether the heap holds no elements.
func (h *Heap[T]) IsEmpty() bool { return len(h.items) == 0 }

// Clear removes all elements in O(1). The comparator is retained, as is the
// backing capacity.
func (h *Heap[T]) Clear() {
	clear(h.items)
	h.items = h.items[:0]
}

// Push adds v to the heap and returns the new size. O(log n).
func (h *Heap[T]) Push(v T) int {
	h.items = append(h.items, v)
	h.up(len(h.items) - 1)
	return len(h.items)
}

// Pop removes and returns the top element. The second return value is false
// if the heap is empty; an empty heap is an absence, not an error. O(log n).
func (h *Heap[T]) Pop() (T, bool) {
	var zero T
	n := len(h.items)
	if n == 0 {
		return zero, false
	}
	top := h.items[0]
	h.items[0] = h.items[n-1]
	h.items[n-1] = zero // release the reference
	h.items = h.items[:n-1]
	h.down(0, n-1)
	return top, true
}

// Peek returns the top element without removing it, or false if the heap is
// empty. O(1).
func (h *Heap[T]) Peek() (T, bool) {
	if len(h.items) == 0 {
		var zero T
		return zero, false
	}
	return h.items[0], true
}

// Replace swaps v directly into the top slot and returns the previous top.
// If the heap is empty, v is pushed and the second return value is false.
// Cheaper than a Pop followed by a Push: the last element never moves.
// O(log n).
func (h *Heap[T]) Replace(v T) (T, bool) {
	if len(h.items) == 0 {
		var zero T
		h.Push(v)
		return zero, false
	}
	top := h.items[0]
	h.items[0] = v
	h.down(0, len(h.items))
	return top, true
}

// PushPop returns the higher-priority of v and the current top, leaving the
// size unchanged. If the heap is empty or v outranks the top, v is returned
// untouched and the heap is not mutated; otherwise the top is replaced by v
// and returned. O(log n).
func (h *Heap[T]) PushPop(v T) T {
	if len(h.items) == 0 || h.cmp(v, h.items[0]) < 0 {
		return v
	}
	top := h.items[0]
	h.items[0] = v
	h.down(0, len(h.items))
	return top
}

// Remove deletes the first element equal to v, scanning in internal heap
// order, and reports whether one was found. Equality is value equality
// (reflect.DeepEqual), not comparator equality. O(n) for the scan.
func (h *Heap[T]) Remove(v T) bool {
	return h.RemoveFunc(func(x T) bool { return reflect.DeepEqual(x, v) })
}

// RemoveFunc deletes the first element for which match returns true,
// scanning in internal heap order, and reports whether one was found.
func (h *Heap[T]) RemoveFunc(match func(T) bool) bool {
	for i, x := range h.items {
		if match(x) {
			h.removeAt(i)
			return true
		}
	}
	return false
}

// removeAt drops index i by moving the last element into its place. The
// moved-in element may violate the heap property in either direction, so a
// single parent comparison picks the one corrective pass to run; up and down
// are mutually exclusive here.
func (h *Heap[T]) removeAt(i int) {
	var zero T
	n := len(h.items) - 1
	if i == n {
		h.items[n] = zero
		h.items = h.items[:n]
		return
	}
	h.items[i] = h.items[n]
	h.items[n] = zero
	h.items = h.items[:n]
	if i > 0 && h.cmp(h.items[i], h.items[parent(i)]) < 0 {
		h.up(i)
	} else {
		h.down(i, n)
	}
}

// Contains reports whether some element equals v under value equality
// (reflect.DeepEqual). O(n).
func (h *Heap[T]) Contains(v T) bool {
	return h.ContainsFunc(func(x T) bool { return reflect.DeepEqual(x, v) })
}

// ContainsFunc reports whether match returns true for some element. O(n).
func (h *Heap[T]) ContainsFunc(match func(T) bool) bool {
	for _, x := range h.items {
		if match(x) {
			return true
		}
	}
	return false
}

// ToSlice returns a copy of the elements in internal heap order. Only index 0
// is guaranteed to be the top element; the rest is not sorted.
func (h *Heap[T]) ToSlice() []T {
	return slices.Clone(h.items)
}

// ToSortedSlice returns the elements in full comparator order (ascending for
// a min heap, descending for a max heap) without mutating the heap: both the
// size and the internal arrangement are unchanged afterward. O(n log n).
func (h *Heap[T]) ToSortedSlice() []T {
	scratch := Heap[T]{items: slices.Clone(h.items), cmp: h.cmp}
	out := make([]T, 0, len(h.items))
	for len(scratch.items) > 0 {
		v, _ := scratch.Pop()
		out = append(out, v)
	}
	return out
}

// Merge appends every element of other, in other's internal heap order, and
// re-heapifies once in O(n+m) rather than pushing m times. other is not
// mutated and need not share this heap's comparator; the result obeys this
// heap's comparator only.
func (h *Heap[T]) Merge(other *Heap[T]) {
	if other == nil || len(other.items) == 0 {
		return
	}
	h.items = append(h.items, other.items...)
	h.heapify()
}

// All returns a snapshot iterator over the elements in internal heap order.
// The snapshot is taken when All is called, so mutating the heap during
// iteration is safe and does not affect the sequence.
func (h *Heap[T]) All() iter.Seq[T] {
	snapshot := slices.Clone(h.items)
	return func(yield func(T) bool) {
		for _, v := range snapshot {
			if !yield(v) {
				return
			}
		}
	}
}

func parent(i int) int { return (i - 1) / 2 }
func left(i int) int   { return 2*i + 1 }
func right(i int) int  { return left(i) + 1 }

// heapify establishes the heap property over the whole slice in O(n),
// sinking each internal node from the last parent down to the root.
func (h *Heap[T]) heapify() {
	n := len(h.items)
	for i := n/2 - 1; i >= 0; i-- {
		h.down(i, n)
	}
}

// up bubbles the element at j toward the root until its parent no longer
// ranks strictly below it.
func (h *Heap[T]) up(j int) {
	for j > 0 {
		i := parent(j)
		if h.cmp(h.items[j], h.items[i]) >= 0 {
			break
		}
		h.items[i], h.items[j] = h.items[j], h.items[i]
		j = i
	}
}

// down sinks the element at i within items[:n], swapping with the
// higher-priority child while that child outranks it.
func (h *Heap[T]) down(i, n int) {
	for {
		j := left(i)
		if j >= n || j < 0 { // j < 0 after int overflow
			break
		}
		if r := right(i); r < n && h.cmp(h.items[r], h.items[j]) < 0 {
			j = r
		}
		if h.cmp(h.items[j], h.items[i]) >= 0 {
			break
		}
		h.items[i], h.items[j] = h.items[j], h.items[i]
		i = j
	}
}
