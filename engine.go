// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package svec

// Engine is the capability set shared by the storage backends.
//
// It is F-bounded on the pointer type: E is *S, so a Vec stores the engine
// S by value and calls through E without interface boxing. The backend is
// fixed by the type argument and every call is monomorphized.
//
// The method set is unexported; [Fixed], [Heap] and [Hybrid] are the only
// implementations.
type Engine[T, S any] interface {
	*S

	size() int
	capacity() int
	inline() bool
	// full reports whether the next push would be rejected.
	full() bool
	tryPush(v T) bool
	pop() (T, bool)
	tryInsert(i int, v T) bool
	remove(i int) (T, bool)
	view() []T
	truncate(n int)
	clone() S
}

// FixedVec is a sequence stored in N inline slots that never allocates.
// Pushing past N is rejected by the try family and fatal otherwise.
type FixedVec[T any, A Array[T]] = Vec[T, Fixed[T, A], *Fixed[T, A]]

// HeapVec is a sequence stored in a growable heap buffer.
type HeapVec[T any] = Vec[T, Heap[T], *Heap[T]]

// HybridVec is a sequence stored inline up to N values that moves to a
// heap buffer the first time it needs slot N+1.
type HybridVec[T any, A Array[T]] = Vec[T, Hybrid[T, A], *Hybrid[T, A]]
