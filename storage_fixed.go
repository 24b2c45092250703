// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !svec_heap && !svec_hybrid

package svec

// StorageVec is the build-selected sequence type. Without build tags it is
// [FixedVec]: N inline slots and no heap use. Build with -tags svec_heap
// for [HeapVec] or -tags svec_hybrid for [HybridVec].
type StorageVec[T any, A Array[T]] = FixedVec[T, A]

// Backend names the engine StorageVec is built on.
const Backend = "fixed"
