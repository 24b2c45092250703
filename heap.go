// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package svec

import "slices"

// Heap is the heap engine: a pass-through to a growable slice.
// Push and insert never reject; exhausting memory is a runtime failure
// outside this package's error model.
type Heap[T any] struct {
	buf []T
}

func (h *Heap[T]) size() int     { return len(h.buf) }
func (h *Heap[T]) capacity() int { return cap(h.buf) }
func (h *Heap[T]) inline() bool  { return false }
func (h *Heap[T]) full() bool    { return false }

// view hides the spare capacity so appending to it cannot reach a slot
// a later push will write.
func (h *Heap[T]) view() []T { return h.buf[:len(h.buf):len(h.buf)] }

func (h *Heap[T]) tryPush(v T) bool {
	h.buf = append(h.buf, v)
	return true
}

func (h *Heap[T]) pop() (T, bool) {
	return popSlice(&h.buf)
}

func (h *Heap[T]) tryInsert(i int, v T) bool {
	checkInsert(i, len(h.buf))
	h.buf = slices.Insert(h.buf, i, v)
	return true
}

func (h *Heap[T]) remove(i int) (T, bool) {
	return removeSlice(&h.buf, i)
}

func (h *Heap[T]) truncate(n int) {
	truncateSlice(&h.buf, n)
}

func (h *Heap[T]) clone() Heap[T] {
	return Heap[T]{buf: slices.Clone(h.buf)}
}

// popSlice, removeSlice and truncateSlice zero the vacated tail so the
// backing array keeps no reference to a value that was moved out.

func popSlice[T any](s *[]T) (T, bool) {
	var zero T
	n := len(*s)
	if n == 0 {
		return zero, false
	}
	v := (*s)[n-1]
	(*s)[n-1] = zero
	*s = (*s)[:n-1]
	return v, true
}

func removeSlice[T any](s *[]T, i int) (T, bool) {
	var zero T
	if i < 0 || i >= len(*s) {
		return zero, false
	}
	v := (*s)[i]
	*s = slices.Delete(*s, i, i+1)
	return v, true
}

func truncateSlice[T any](s *[]T, n int) {
	if n < 0 {
		n = 0
	}
	if n >= len(*s) {
		return
	}
	clear((*s)[n:])
	*s = (*s)[:n]
}
