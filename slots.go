// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package svec

import "unsafe"

// slots is a fixed block of N storage slots with a live count.
//
// Slots [0, n) hold live values. Slots [n, N) hold the zero value of T and
// are never exposed: every view is cut at n with a full slice expression,
// so appending through a view reallocates instead of writing into them.
// Zero value: all slots unset, n = 0.
type slots[T any, A Array[T]] struct {
	buf A
	n   int
}

// capacity returns N.
func (b *slots[T, A]) capacity() int {
	return len(b.buf)
}

// raw returns a typed view over all N slots, including the unset tail.
// Only the methods in this file may call it.
func (b *slots[T, A]) raw() []T {
	return unsafe.Slice((*T)(unsafe.Pointer(&b.buf)), len(b.buf))
}

// live returns the typed view of [0, n). The view is rebuilt on every
// call and must not be kept across a push or pop.
func (b *slots[T, A]) live() []T {
	if b.n < 0 || b.n > len(b.buf) {
		panic("svec: slot length exceeds capacity")
	}
	return b.raw()[:b.n:b.n]
}

func (b *slots[T, A]) full() bool {
	return b.n == len(b.buf)
}

// push writes v into slot n. Reports false when all N slots are live.
func (b *slots[T, A]) push(v T) bool {
	if b.full() {
		return false
	}
	b.raw()[b.n] = v
	b.n++
	return true
}

// pop moves the last live value out and resets its slot.
func (b *slots[T, A]) pop() (T, bool) {
	var zero T
	if b.n == 0 {
		return zero, false
	}
	s := b.raw()
	b.n--
	v := s[b.n]
	s[b.n] = zero
	return v, true
}

// insert shifts [i, n) one slot toward the end and writes v at i.
// The capacity check comes before the index check.
func (b *slots[T, A]) insert(i int, v T) bool {
	if b.full() {
		return false
	}
	checkInsert(i, b.n)
	s := b.raw()
	copy(s[i+1:b.n+1], s[i:b.n])
	s[i] = v
	b.n++
	return true
}

// remove moves the value at i out and shifts [i+1, n) one slot toward
// the start. Any i outside [0, n) reports absence.
func (b *slots[T, A]) remove(i int) (T, bool) {
	var zero T
	if i < 0 || i >= b.n {
		return zero, false
	}
	s := b.raw()
	v := s[i]
	copy(s[i:b.n-1], s[i+1:b.n])
	b.n--
	s[b.n] = zero
	return v, true
}

// truncate drops every live value at or beyond k.
func (b *slots[T, A]) truncate(k int) {
	if k < 0 {
		k = 0
	}
	if k >= b.n {
		return
	}
	clear(b.raw()[k:b.n])
	b.n = k
}

func (b *slots[T, A]) reset() {
	b.truncate(0)
}

// moveTo moves every live value into a new heap slice with room for at
// least capacity values, then resets the block.
func (b *slots[T, A]) moveTo(capacity int) []T {
	if capacity < b.n {
		capacity = b.n
	}
	out := make([]T, b.n, capacity)
	copy(out, b.live())
	b.reset()
	return out
}
