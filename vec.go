// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package svec

import (
	"fmt"
	"iter"

	"code.hybscloud.com/kont"
)

// Vec is a sequence whose storage strategy is chosen by the engine type
// argument: [Fixed], [Heap] or [Hybrid]. Callers see the same API for
// every backend; use the [FixedVec], [HeapVec], [HybridVec] or
// [StorageVec] aliases rather than spelling out E.
//
// The zero value is an empty container ready for use. A Vec is owned by
// one goroutine at a time; wrap it in a lock for shared access.
type Vec[T, S any, E Engine[T, S]] struct {
	s S
}

// New returns an empty Vec on engine S.
//
//	v := svec.New[int, svec.Fixed[int, [4]int]]()
func New[T, S any, E Engine[T, S]]() *Vec[T, S, E] {
	return &Vec[T, S, E]{}
}

// NewFixed returns an empty fixed-capacity Vec with N = len(A).
func NewFixed[T any, A Array[T]]() *FixedVec[T, A] {
	return &FixedVec[T, A]{}
}

// NewHeap returns an empty heap-backed Vec.
func NewHeap[T any]() *HeapVec[T] {
	return &HeapVec[T]{}
}

// NewHybrid returns an empty hybrid Vec that spills after len(A) values.
func NewHybrid[T any, A Array[T]]() *HybridVec[T, A] {
	return &HybridVec[T, A]{}
}

// NewStorage returns an empty [StorageVec], whose engine is chosen by
// build tags.
func NewStorage[T any, A Array[T]]() *StorageVec[T, A] {
	return &StorageVec[T, A]{}
}

// Collect builds a Vec on engine S from seq with [Vec.Extend] semantics.
func Collect[T, S any, E Engine[T, S]](seq iter.Seq[T]) *Vec[T, S, E] {
	v := New[T, S, E]()
	v.Extend(seq)
	return v
}

func (v *Vec[T, S, E]) engine() E {
	return E(&v.s)
}

// Len returns the number of live values.
func (v *Vec[T, S, E]) Len() int {
	return v.engine().size()
}

// IsEmpty reports whether Len is zero.
func (v *Vec[T, S, E]) IsEmpty() bool {
	return v.engine().size() == 0
}

// Cap returns N while the values live inline, and the heap buffer's
// capacity otherwise.
func (v *Vec[T, S, E]) Cap() int {
	return v.engine().capacity()
}

// Inline reports whether the values live in the inline slot block.
// Always true for Fixed, always false for Heap, and true for Hybrid
// until it spills.
func (v *Vec[T, S, E]) Inline() bool {
	return v.engine().inline()
}

// TryPush appends x. On capacity overflow it returns Left(x) and leaves
// the container unchanged; otherwise Right.
func (v *Vec[T, S, E]) TryPush(x T) kont.Either[T, struct{}] {
	if !v.engine().tryPush(x) {
		return kont.Left[T, struct{}](x)
	}
	return kont.Right[T](struct{}{})
}

// Push appends x. Capacity overflow is fatal: Push panics rather than
// drop x or allocate. Use [Vec.TryPush] to handle it.
func (v *Vec[T, S, E]) Push(x T) {
	if !v.engine().tryPush(x) {
		panic(panicPushOverflow)
	}
}

// Pop moves the last value out.
func (v *Vec[T, S, E]) Pop() (T, bool) {
	return v.engine().pop()
}

// TryInsert inserts x at index i, shifting later values toward the end.
// A full container returns Left(x) whatever i is. Otherwise i must be in
// [0, Len()]; any other index panics.
func (v *Vec[T, S, E]) TryInsert(i int, x T) kont.Either[T, struct{}] {
	if !v.engine().tryInsert(i, x) {
		return kont.Left[T, struct{}](x)
	}
	return kont.Right[T](struct{}{})
}

// Insert inserts x at index i and panics on capacity overflow or when i
// is outside [0, Len()].
func (v *Vec[T, S, E]) Insert(i int, x T) {
	if !v.engine().tryInsert(i, x) {
		panic(panicInsertOverflow)
	}
}

// Remove moves the value at index i out, shifting later values toward
// the start. Every i in [0, Len()) succeeds, the last one included; any
// other index reports false.
func (v *Vec[T, S, E]) Remove(i int) (T, bool) {
	return v.engine().remove(i)
}

// Get returns the value at index i.
func (v *Vec[T, S, E]) Get(i int) (T, bool) {
	s := v.engine().view()
	if i < 0 || i >= len(s) {
		var zero T
		return zero, false
	}
	return s[i], true
}

// Slice returns a read-write view of the live values. The view is only
// valid until the next length change; after a hybrid spill it no longer
// refers to the container's storage at all.
func (v *Vec[T, S, E]) Slice() []T {
	return v.engine().view()
}

// Truncate drops every value at index n and beyond. It does nothing if
// n >= Len().
func (v *Vec[T, S, E]) Truncate(n int) {
	v.engine().truncate(n)
}

// Clear drops every value. A spilled hybrid stays spilled.
func (v *Vec[T, S, E]) Clear() {
	v.engine().truncate(0)
}

// Clone returns an independent copy with the same values in the same
// order. Values are copied with assignment.
func (v *Vec[T, S, E]) Clone() *Vec[T, S, E] {
	return &Vec[T, S, E]{s: v.engine().clone()}
}

// Extend pushes every value of seq in order, with [Vec.Push] semantics.
func (v *Vec[T, S, E]) Extend(seq iter.Seq[T]) {
	for x := range seq {
		v.Push(x)
	}
}

// TryExtend pushes values of seq in order until one is rejected. It
// returns the number pushed and, on rejection, a [*CapacityError] holding
// the rejected value. Values after the rejected one are not consumed.
func (v *Vec[T, S, E]) TryExtend(seq iter.Seq[T]) (int, error) {
	n := 0
	for x := range seq {
		if !v.engine().tryPush(x) {
			return n, &CapacityError[T]{Value: x, Index: -1, Cap: v.Cap()}
		}
		n++
	}
	return n, nil
}

// All yields index-value pairs in order without consuming the container.
// The container must not change length during iteration.
func (v *Vec[T, S, E]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, x := range v.engine().view() {
			if !yield(i, x) {
				return
			}
		}
	}
}

// Values yields the values in order without consuming the container.
func (v *Vec[T, S, E]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range v.engine().view() {
			if !yield(x) {
				return
			}
		}
	}
}

// Backward yields index-value pairs from the last to the first.
func (v *Vec[T, S, E]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		s := v.engine().view()
		for i := len(s) - 1; i >= 0; i-- {
			if !yield(i, s[i]) {
				return
			}
		}
	}
}

// Format implements fmt.Formatter by formatting the live values as a slice.
func (v *Vec[T, S, E]) Format(state fmt.State, verb rune) {
	fmt.Fprintf(state, fmt.FormatString(state, verb), v.engine().view())
}

// editor methods, used by effect dispatch.

func (v *Vec[T, S, E]) tryPush(x T) bool          { return v.engine().tryPush(x) }
func (v *Vec[T, S, E]) pop() (T, bool)            { return v.engine().pop() }
func (v *Vec[T, S, E]) tryInsert(i int, x T) bool { return v.engine().tryInsert(i, x) }
func (v *Vec[T, S, E]) remove(i int) (T, bool)    { return v.engine().remove(i) }
