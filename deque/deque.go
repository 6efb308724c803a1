// Package deque provides a generic double-ended queue backed by a growable
// ring buffer. All operations are O(1) amortized except ToSlice, which copies.
//
// Deques are not safe for concurrent use.
package deque

import (
	"iter"
)

// minCapacity is the buffer size allocated on the first push.
const minCapacity = 8

// Deque is a double-ended queue. The zero value is ready to use.
type Deque[T any] struct {
	buf  []T
	head int // index of the front element
	n    int // number of elements
}

// New returns a deque holding the given items, front to back. The items are
// copied, never aliased.
func New[T any](items ...T) *Deque[T] {
	d := &Deque[T]{}
	for _, v := range items {
		d.PushBack(v)
	}
	return d
}

// Len returns the number of elements in the deque.
func (d *Deque[T]) Len() int { return d.n }

// IsEmpty reports whether the deque holds no elements.
func (d *Deque[T]) IsEmpty() bool { return d.n == 0 }

// PushFront adds v at the front.
func (d *Deque[T]) PushFront(v T) {
	d.growIfFull()
	d.head = d.wrap(d.head - 1)
	d.buf[d.head] = v
	d.n++
}

// PushBack adds v at the back.
func (d *Deque[T]) PushBack(v T) {
	d.growIfFull()
	d.buf[d.wrap(d.head+d.n)] = v
	d.n++
}

// PopFront removes and returns the front element, or false if the deque is
// empty.
func (d *Deque[T]) PopFront() (T, bool) {
	var zero T
	if d.n == 0 {
		return zero, false
	}
	v := d.buf[d.head]
	d.buf[d.head] = zero // release the reference
	d.head = d.wrap(d.head + 1)
	d.n--
	return v, true
}

// PopBack removes and returns the back element, or false if the deque is
// empty.
func (d *Deque[T]) PopBack() (T, bool) {
	var zero T
	if d.n == 0 {
		return zero, false
	}
	i := d.wrap(d.head + d.n - 1)
	v := d.buf[i]
	d.buf[i] = zero
	d.n--
	return v, true
}

// Front returns the front element without removing it, or false if the deque
// is empty.
func (d *Deque[T]) Front() (T, bool) {
	if d.n == 0 {
		var zero T
		return zero, false
	}
	return d.buf[d.head], true
}

// Back returns the back element without removing it, or false if the deque is
// empty.
func (d *Deque[T]) Back() (T, bool) {
	if d.n == 0 {
		var zero T
		return zero, false
	}
	return d.buf[d.wrap(d.head+d.n-1)], true
}

// Clear empties the deque in O(1) by dropping the buffer, so no references
// are pinned.
func (d *Deque[T]) Clear() {
	d.buf = nil
	d.head = 0
	d.n = 0
}

// ToSlice returns a copy of the elements, front to back. O(n).
func (d *Deque[T]) ToSlice() []T {
	out := make([]T, d.n)
	for i := 0; i < d.n; i++ {
		out[i] = d.buf[d.wrap(d.head+i)]
	}
	return out
}

// All returns a snapshot iterator over the elements, front to back. The
// snapshot is taken when All is called, so mutating the deque during
// iteration is safe.
func (d *Deque[T]) All() iter.Seq[T] {
	snapshot := d.ToSlice()
	return func(yield func(T) bool) {
		for _, v := range snapshot {
			if !yield(v) {
				return
			}
		}
	}
}

func (d *Deque[T]) wrap(i int) int {
	n := len(d.buf)
	if i < 0 {
		return i + n
	}
	if i >= n {
		return i - n
	}
	return i
}

// growIfFull doubles the buffer when no slot is free, unwinding the ring so
// the front lands at index 0.
func (d *Deque[T]) growIfFull() {
	if d.n < len(d.buf) {
		return
	}
	capacity := len(d.buf) * 2
	if capacity == 0 {
		capacity = minCapacity
	}
	buf := make([]T, capacity)
	for i := 0; i < d.n; i++ {
		buf[i] = d.buf[d.wrap(d.head+i)]
	}
	d.buf = buf
	d.head = 0
}
