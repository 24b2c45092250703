// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !svec_heap && !svec_hybrid

package smap

import "code.hybscloud.com/svec"

// StorageMap is the build-selected map type. Without tags it is
// [FixedMap] with N = len(A).
type StorageMap[K comparable, V any, A svec.Array[Entry[K, V]]] = FixedMap[K, V, A]

// Backend names the engine StorageMap is built on.
const Backend = "linear"
