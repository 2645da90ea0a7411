// SPDX-License-Identifier: Unlicense OR MIT

// Package ring implements the growable, bounded ring buffer backing
// the input queue. Slots are reused in place rather than reallocated,
// so steady-state captures and drains allocate nothing.
package ring

// Buffer is a ring of T-typed slots. The zero value is an empty
// buffer with no backing storage.
//
// Push hands out a pointer into the backing array for the caller to
// populate; Pop hands out a pointer to the oldest populated slot.
// Both pointers are valid until the slot is reused by a later Push,
// which is safe under the single-threaded capture/drain protocol the
// buffer is designed for.
type Buffer[T any] struct {
	// MaxLen bounds the logical length. Zero means unbounded. A push
	// with MaxLen entries already buffered evicts the oldest entry
	// before writing.
	MaxLen int

	slots []T
	// head is the write cursor, tail the read cursor.
	head, tail int
	len        int
}

// Len reports the number of buffered entries.
func (b *Buffer[T]) Len() int {
	return b.len
}

// Cap reports the physical size of the backing storage. It never
// shrinks; Clear resets the cursors but keeps the slots for reuse.
func (b *Buffer[T]) Cap() int {
	return len(b.slots)
}

// Push returns the next free slot, zeroed, for the caller to fill in.
//
// Physical growth is lazy: only when the ring has fully wrapped does
// Push splice a single fresh slot in at the write cursor, keeping the
// positions of every unconsumed entry intact.
func (b *Buffer[T]) Push() *T {
	if b.MaxLen > 0 && b.len == b.MaxLen {
		b.Pop()
	}
	var zero T
	if b.len == len(b.slots) {
		b.slots = append(b.slots, zero)
		copy(b.slots[b.head+1:], b.slots[b.head:])
		b.slots[b.head] = zero
		if b.len > 0 && b.tail >= b.head {
			b.tail++
		}
	}
	s := &b.slots[b.head]
	*s = zero
	b.head++
	if b.head == len(b.slots) {
		b.head = 0
	}
	b.len++
	return s
}

// Pop removes and returns the oldest entry, or nil and false if the
// buffer is empty.
func (b *Buffer[T]) Pop() (*T, bool) {
	if b.len == 0 {
		return nil, false
	}
	s := &b.slots[b.tail]
	b.tail++
	if b.tail == len(b.slots) {
		b.tail = 0
	}
	b.len--
	return s, true
}

// Last returns the most recently pushed entry without removing it, or
// nil and false if the buffer is empty.
func (b *Buffer[T]) Last() (*T, bool) {
	if b.len == 0 {
		return nil, false
	}
	i := b.head - 1
	if i < 0 {
		i = len(b.slots) - 1
	}
	return &b.slots[i], true
}

// Clear empties the buffer. The backing storage is kept for reuse.
func (b *Buffer[T]) Clear() {
	b.head, b.tail, b.len = 0, 0, 0
}
