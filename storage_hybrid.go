// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build svec_hybrid

package svec

// StorageVec is the build-selected sequence type. With -tags svec_hybrid
// it is [HybridVec], which takes precedence over svec_heap.
type StorageVec[T any, A Array[T]] = HybridVec[T, A]

// Backend names the engine StorageVec is built on.
const Backend = "hybrid"
