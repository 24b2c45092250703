// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package svec

import "iter"

// IntoIter is the owning iterator of a [Vec]. It holds the engine by value
// and yields each value exactly once, from the front or from the back.
// A yielded slot is cleared in the same step as its cursor moves, so the
// iterator never keeps a value it has handed out.
type IntoIter[T, S any, E Engine[T, S]] struct {
	s     S
	front int
	back  int
}

// IntoIter moves the engine out of v into a new owning iterator and
// leaves v empty. A hybrid v that had spilled is left as an empty inline
// container.
func (v *Vec[T, S, E]) IntoIter() *IntoIter[T, S, E] {
	it := &IntoIter[T, S, E]{s: v.s, back: v.Len()}
	var zero S
	v.s = zero
	return it
}

func (it *IntoIter[T, S, E]) view() []T {
	return E(&it.s).view()
}

// Len returns the exact number of values not yet yielded.
func (it *IntoIter[T, S, E]) Len() int {
	return it.back - it.front
}

// Next yields the frontmost remaining value.
func (it *IntoIter[T, S, E]) Next() (T, bool) {
	var zero T
	if it.front == it.back {
		return zero, false
	}
	s := it.view()
	x := s[it.front]
	s[it.front] = zero
	it.front++
	return x, true
}

// NextBack yields the backmost remaining value.
func (it *IntoIter[T, S, E]) NextBack() (T, bool) {
	var zero T
	if it.front == it.back {
		return zero, false
	}
	s := it.view()
	it.back--
	x := s[it.back]
	s[it.back] = zero
	return x, true
}

// Seq returns a single-use sequence yielding the remaining values from
// the front. Stopping early leaves the rest in the iterator.
func (it *IntoIter[T, S, E]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			x, ok := it.Next()
			if !ok || !yield(x) {
				return
			}
		}
	}
}

// Discard drops every remaining value.
func (it *IntoIter[T, S, E]) Discard() {
	if it.front < it.back {
		clear(it.view()[it.front:it.back])
	}
	it.front = it.back
}
