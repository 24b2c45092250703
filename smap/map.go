// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package smap

import (
	"fmt"
	"iter"

	"code.hybscloud.com/svec"
)

const panicInsertOverflow = "smap: capacity overflow on insert"

// Map is an associative container on engine S. The zero value is an
// empty map ready for use.
type Map[K comparable, V, S any, E Engine[K, V, S]] struct {
	s S
}

// New returns an empty Map on engine S.
//
//	m := smap.New[string, int, smap.Linear[string, int, [8]smap.Entry[string, int]]]()
func New[K comparable, V, S any, E Engine[K, V, S]]() *Map[K, V, S, E] {
	return &Map[K, V, S, E]{}
}

// Collect builds a Map on engine S from seq with [Map.Extend] semantics.
func Collect[K comparable, V, S any, E Engine[K, V, S]](seq iter.Seq2[K, V]) *Map[K, V, S, E] {
	m := New[K, V, S, E]()
	m.Extend(seq)
	return m
}

func (m *Map[K, V, S, E]) engine() E {
	return E(&m.s)
}

// Len returns the number of entries.
func (m *Map[K, V, S, E]) Len() int {
	return m.engine().size()
}

// IsEmpty reports whether Len is zero.
func (m *Map[K, V, S, E]) IsEmpty() bool {
	return m.engine().size() == 0
}

// Get returns the value stored under k.
func (m *Map[K, V, S, E]) Get(k K) (V, bool) {
	return m.engine().lookup(k)
}

// ContainsKey reports whether k is present.
func (m *Map[K, V, S, E]) ContainsKey(k K) bool {
	_, ok := m.engine().lookup(k)
	return ok
}

// Update calls f with a pointer to the value stored under k and reports
// whether k was present. The pointer is valid only during the call.
func (m *Map[K, V, S, E]) Update(k K, f func(v *V)) bool {
	return m.engine().update(k, f)
}

// TryInsert stores v under k. If k was present it returns the previous
// value and true. A new key that does not fit leaves the map unchanged
// and returns a [*svec.CapacityError] carrying the rejected entry.
func (m *Map[K, V, S, E]) TryInsert(k K, v V) (V, bool, error) {
	old, replaced, ok := m.engine().tryInsert(k, v)
	if !ok {
		return old, false, &svec.CapacityError[Entry[K, V]]{
			Value: Entry[K, V]{Key: k, Value: v},
			Index: -1,
			Cap:   m.engine().capacity(),
		}
	}
	return old, replaced, nil
}

// Insert is [Map.TryInsert] with overflow made fatal.
func (m *Map[K, V, S, E]) Insert(k K, v V) (V, bool) {
	old, replaced, ok := m.engine().tryInsert(k, v)
	if !ok {
		panic(panicInsertOverflow)
	}
	return old, replaced
}

// Remove deletes k and returns its value.
func (m *Map[K, V, S, E]) Remove(k K) (V, bool) {
	e, ok := m.engine().remove(k)
	return e.Value, ok
}

// RemoveEntry deletes k and returns the stored key-value pair.
func (m *Map[K, V, S, E]) RemoveEntry(k K) (Entry[K, V], bool) {
	return m.engine().remove(k)
}

// All yields every key-value pair. The map must not change during
// iteration.
func (m *Map[K, V, S, E]) All() iter.Seq2[K, V] {
	return m.engine().entries()
}

// Keys yields every key.
func (m *Map[K, V, S, E]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.engine().entries() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values yields every value.
func (m *Map[K, V, S, E]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.engine().entries() {
			if !yield(v) {
				return
			}
		}
	}
}

// UpdateAll calls f once per entry with a pointer to its value.
func (m *Map[K, V, S, E]) UpdateAll(f func(k K, v *V)) {
	m.engine().updateAll(f)
}

// Drain moves every entry out of m, which is left empty. The returned
// sequence is single-use; entries not consumed are dropped.
func (m *Map[K, V, S, E]) Drain() iter.Seq[Entry[K, V]] {
	return m.engine().drain()
}

// Extend inserts every pair of seq with [Map.Insert] semantics. A later
// pair with a repeated key replaces the earlier value.
func (m *Map[K, V, S, E]) Extend(seq iter.Seq2[K, V]) {
	for k, v := range seq {
		m.Insert(k, v)
	}
}

// Clone returns an independent copy. Values are copied with assignment.
func (m *Map[K, V, S, E]) Clone() *Map[K, V, S, E] {
	return &Map[K, V, S, E]{s: m.engine().clone()}
}

// Format implements fmt.Formatter, printing entries as map[k:v ...] in
// iteration order.
func (m *Map[K, V, S, E]) Format(state fmt.State, verb rune) {
	fmt.Fprint(state, "map[")
	first := true
	for k, v := range m.engine().entries() {
		if !first {
			fmt.Fprint(state, " ")
		}
		first = false
		fmt.Fprintf(state, fmt.FormatString(state, verb)+":"+fmt.FormatString(state, verb), k, v)
	}
	fmt.Fprint(state, "]")
}
