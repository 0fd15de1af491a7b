package internal

import "fmt"

// Stack is a growable push/pop buffer used as scratch space while parsing
// and as the output sink while stringifying.
//
// Regions returned by Push and Pop alias the backing storage and are only
// valid until the next Push, which may move the storage.
type Stack[T any] struct {
	buf  []T
	top  int
	base int
}

// NewStack creates an empty stack. No storage is allocated until the first
// Push, which allocates base slots.
func NewStack[T any](base int) *Stack[T] {
	if base <= 0 {
		base = 1
	}
	return &Stack[T]{base: base}
}

// Push reserves n slots on top of the stack and returns them.
func (s *Stack[T]) Push(n int) []T {
	if n <= 0 {
		panic(fmt.Sprintf("stack: push of %d slots", n))
	}
	if s.top+n >= len(s.buf) {
		s.grow(n)
	}
	region := s.buf[s.top : s.top+n : s.top+n]
	s.top += n
	return region
}

// grow enlarges the storage by factors of 1.5 until n more slots fit with
// at least one spare slot left after the top.
func (s *Stack[T]) grow(n int) {
	size := len(s.buf)
	if size == 0 {
		size = s.base
	}
	for s.top+n >= size {
		size += size >> 1
		if size < 2 {
			size = 2
		}
	}
	buf := make([]T, size)
	copy(buf, s.buf[:s.top])
	s.buf = buf
}

// PushValue pushes a single element.
func (s *Stack[T]) PushValue(v T) {
	s.Push(1)[0] = v
}

// PushSlice pushes a copy of vs. Empty input is a no-op.
func (s *Stack[T]) PushSlice(vs []T) {
	if len(vs) == 0 {
		return
	}
	copy(s.Push(len(vs)), vs)
}

// Pop removes n slots from the top and returns them.
func (s *Stack[T]) Pop(n int) []T {
	if n < 0 || n > s.top {
		panic(fmt.Sprintf("stack: pop of %d slots with %d held", n, s.top))
	}
	s.top -= n
	return s.buf[s.top : s.top+n : s.top+n]
}

// Len returns the number of slots held.
func (s *Stack[T]) Len() int {
	return s.top
}

// Cap returns the size of the backing storage.
func (s *Stack[T]) Cap() int {
	return len(s.buf)
}

// Mark returns the current top, for use with Rollback.
func (s *Stack[T]) Mark() int {
	return s.top
}

// Rollback truncates the stack back to mark. Dropped slots are zeroed so a
// reused stack does not keep them reachable.
func (s *Stack[T]) Rollback(mark int) {
	if mark < 0 || mark > s.top {
		panic(fmt.Sprintf("stack: rollback to %d with %d held", mark, s.top))
	}
	clear(s.buf[mark:s.top])
	s.top = mark
}

// Reset empties the stack, keeping its storage.
func (s *Stack[T]) Reset() {
	s.Rollback(0)
}

// Bytes returns the held slots. The slot just past the end is always part
// of the storage once anything has been pushed.
func (s *Stack[T]) Bytes() []T {
	return s.buf[:s.top]
}

// Spare returns the storage slot just past the top.
func (s *Stack[T]) Spare() *T {
	if s.top >= len(s.buf) {
		s.grow(1)
	}
	return &s.buf[s.top]
}
