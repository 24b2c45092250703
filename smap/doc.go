// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package smap provides a small associative container whose storage is
// chosen at compile time, the map counterpart of [svec.Vec].
//
// A [Map] is parameterized by an engine. [Hash] keeps entries in a Go
// map and grows without bound. [Linear] keeps entries in an inline
// [svec.FixedVec] of N slots, looks keys up by linear scan, and rejects
// the N+1-th distinct key. [StorageMap] picks one of them from build tags
// in the same way [svec.StorageVec] does:
//
//	go build                   // StorageMap is FixedMap
//	go build -tags svec_heap   // StorageMap is HashMap
//	go build -tags svec_hybrid // StorageMap is HashMap
//
// Replacing the value of a key already present never needs capacity, so
// only inserting a new key can overflow. [Map.TryInsert] reports the
// rejected pair as a [*svec.CapacityError] of [Entry]; [Map.Insert]
// panics instead.
//
// Iteration order is unspecified for Hash and insertion order for Linear.
package smap
