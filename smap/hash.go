// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package smap

import (
	"iter"
	"maps"
)

// Hash is the heap engine: a Go map. Its zero value is ready for use.
type Hash[K comparable, V any] struct {
	m map[K]V
}

func (h *Hash[K, V]) size() int     { return len(h.m) }
func (h *Hash[K, V]) capacity() int { return -1 }

func (h *Hash[K, V]) lookup(k K) (V, bool) {
	v, ok := h.m[k]
	return v, ok
}

func (h *Hash[K, V]) update(k K, f func(*V)) bool {
	v, ok := h.m[k]
	if !ok {
		return false
	}
	f(&v)
	h.m[k] = v
	return true
}

func (h *Hash[K, V]) tryInsert(k K, v V) (old V, replaced, ok bool) {
	if h.m == nil {
		h.m = make(map[K]V)
	}
	old, replaced = h.m[k]
	h.m[k] = v
	return old, replaced, true
}

func (h *Hash[K, V]) remove(k K) (Entry[K, V], bool) {
	v, ok := h.m[k]
	if !ok {
		return Entry[K, V]{}, false
	}
	delete(h.m, k)
	return Entry[K, V]{Key: k, Value: v}, true
}

func (h *Hash[K, V]) entries() iter.Seq2[K, V] {
	return maps.All(h.m)
}

func (h *Hash[K, V]) updateAll(f func(K, *V)) {
	for k, v := range h.m {
		f(k, &v)
		h.m[k] = v
	}
}

func (h *Hash[K, V]) drain() iter.Seq[Entry[K, V]] {
	m := h.m
	h.m = nil
	return func(yield func(Entry[K, V]) bool) {
		for k, v := range m {
			delete(m, k)
			if !yield(Entry[K, V]{Key: k, Value: v}) {
				return
			}
		}
	}
}

func (h *Hash[K, V]) clone() Hash[K, V] {
	return Hash[K, V]{m: maps.Clone(h.m)}
}
