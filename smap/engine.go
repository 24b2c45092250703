// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package smap

import (
	"iter"

	"code.hybscloud.com/svec"
)

// Entry is a key-value pair.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// Engine is the capability set shared by the map backends, F-bounded on
// the pointer type in the same way as [svec.Engine].
type Engine[K comparable, V, S any] interface {
	*S

	size() int
	lookup(k K) (V, bool)
	// update calls f with the slot holding k's value, if any.
	update(k K, f func(*V)) bool
	// tryInsert stores v under k. replaced reports whether k was present,
	// with old its previous value; ok is false only if a new key did not fit.
	tryInsert(k K, v V) (old V, replaced, ok bool)
	remove(k K) (Entry[K, V], bool)
	entries() iter.Seq2[K, V]
	updateAll(f func(K, *V))
	// drain moves every entry out and leaves the engine empty.
	drain() iter.Seq[Entry[K, V]]
	capacity() int
	clone() S
}

// HashMap is a map backed by a Go map.
type HashMap[K comparable, V any] = Map[K, V, Hash[K, V], *Hash[K, V]]

// FixedMap is a map stored in N inline slots, N = len(A).
type FixedMap[K comparable, V any, A svec.Array[Entry[K, V]]] = Map[K, V, Linear[K, V, A], *Linear[K, V, A]]
