// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package smap

import (
	"iter"

	"code.hybscloud.com/svec"
)

// Linear is the fixed-capacity engine. Entries live in an inline
// [svec.FixedVec] in insertion order and keys are found by linear scan,
// which beats hashing for the handful of entries it is meant for.
type Linear[K comparable, V any, A svec.Array[Entry[K, V]]] struct {
	v svec.FixedVec[Entry[K, V], A]
}

func (l *Linear[K, V, A]) size() int     { return l.v.Len() }
func (l *Linear[K, V, A]) capacity() int { return l.v.Cap() }

func (l *Linear[K, V, A]) index(k K) int {
	for i, e := range l.v.Slice() {
		if e.Key == k {
			return i
		}
	}
	return -1
}

func (l *Linear[K, V, A]) lookup(k K) (V, bool) {
	if i := l.index(k); i >= 0 {
		return l.v.Slice()[i].Value, true
	}
	var zero V
	return zero, false
}

func (l *Linear[K, V, A]) update(k K, f func(*V)) bool {
	i := l.index(k)
	if i < 0 {
		return false
	}
	f(&l.v.Slice()[i].Value)
	return true
}

func (l *Linear[K, V, A]) tryInsert(k K, v V) (old V, replaced, ok bool) {
	if i := l.index(k); i >= 0 {
		e := &l.v.Slice()[i]
		old, e.Value = e.Value, v
		return old, true, true
	}
	return old, false, l.v.TryPush(Entry[K, V]{Key: k, Value: v}).IsRight()
}

// remove keeps the remaining entries in insertion order.
func (l *Linear[K, V, A]) remove(k K) (Entry[K, V], bool) {
	i := l.index(k)
	if i < 0 {
		return Entry[K, V]{}, false
	}
	return l.v.Remove(i)
}

func (l *Linear[K, V, A]) entries() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, e := range l.v.Values() {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

func (l *Linear[K, V, A]) updateAll(f func(K, *V)) {
	s := l.v.Slice()
	for i := range s {
		f(s[i].Key, &s[i].Value)
	}
}

func (l *Linear[K, V, A]) drain() iter.Seq[Entry[K, V]] {
	return l.v.IntoIter().Seq()
}

func (l *Linear[K, V, A]) clone() Linear[K, V, A] {
	return Linear[K, V, A]{v: *l.v.Clone()}
}
