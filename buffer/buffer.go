// Package buffer provides the fixed-capacity, cursor-addressed element
// buffers that codecs transcode between. A buffer holds elements of a
// single type (bytes on the encoded side, runes on the character side)
// and maintains the invariant 0 <= read <= write <= cap: elements in
// [read, write) are valid and unconsumed.
//
// Buffers never grow and never perform I/O. A codec step only advances
// the cursors; draining, compacting, and refilling are the caller's job.
package buffer

import "fmt"

// Elem is the set of element types a Buffer can hold.
type Elem interface {
	~byte | ~rune
}

// Buffer is a fixed-capacity container with a read and a write cursor.
// The zero value is unusable; use New or From.
type Buffer[T Elem] struct {
	elems []T
	read  int
	write int
}

// New creates an empty buffer with the given capacity.
// Panics if capacity is negative.
func New[T Elem](capacity int) *Buffer[T] {
	if capacity < 0 {
		panic(fmt.Sprintf("buffer: negative capacity %d", capacity))
	}
	return &Buffer[T]{elems: make([]T, capacity)}
}

// From creates a full buffer holding a copy of elems: capacity and the
// write cursor equal len(elems), the read cursor is zero.
func From[T Elem](elems []T) *Buffer[T] {
	b := &Buffer[T]{elems: make([]T, len(elems))}
	copy(b.elems, elems)
	b.write = len(elems)
	return b
}

// Cap returns the buffer's fixed capacity.
func (b *Buffer[T]) Cap() int { return len(b.elems) }

// Len returns the number of valid, unconsumed elements.
func (b *Buffer[T]) Len() int { return b.write - b.read }

// Free returns the room left for writing.
func (b *Buffer[T]) Free() int { return len(b.elems) - b.write }

// Unread returns the valid window [read, write). The slice aliases the
// buffer's storage and is invalidated by Discard, Compact, and Reset.
func (b *Buffer[T]) Unread() []T { return b.elems[b.read:b.write] }

// Discard advances the read cursor by n, consuming n elements.
// Panics if n exceeds Len.
func (b *Buffer[T]) Discard(n int) {
	if n < 0 || n > b.Len() {
		panic(fmt.Sprintf("buffer: Discard(%d) with %d unread", n, b.Len()))
	}
	b.read += n
}

// Push appends a single element, reporting whether there was room.
func (b *Buffer[T]) Push(v T) bool {
	if b.write == len(b.elems) {
		return false
	}
	b.elems[b.write] = v
	b.write++
	return true
}

// Write appends as much of p as fits and returns the count written.
func (b *Buffer[T]) Write(p []T) int {
	n := copy(b.elems[b.write:], p)
	b.write += n
	return n
}

// Compact moves the valid window to the front of the buffer, making
// consumed space available for writing again.
func (b *Buffer[T]) Compact() {
	if b.read == 0 {
		return
	}
	copy(b.elems, b.elems[b.read:b.write])
	b.write -= b.read
	b.read = 0
}

// Reset empties the buffer, returning both cursors to zero.
func (b *Buffer[T]) Reset() {
	b.read = 0
	b.write = 0
}

// Drain consumes and returns a copy of the valid window. The buffer is
// compacted afterwards so its full capacity is writable again.
func (b *Buffer[T]) Drain() []T {
	out := make([]T, b.Len())
	copy(out, b.Unread())
	b.Reset()
	return out
}
