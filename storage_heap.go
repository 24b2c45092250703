// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build svec_heap && !svec_hybrid

package svec

// StorageVec is the build-selected sequence type. With -tags svec_heap it
// is [HeapVec]; A is kept so callers compile unchanged under every tag.
type StorageVec[T any, A Array[T]] = HeapVec[T]

// Backend names the engine StorageVec is built on.
const Backend = "heap"
