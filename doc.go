// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package svec provides a sequence container whose storage is chosen at
// compile time: N inline slots that never allocate, a growable heap
// buffer, or a hybrid that starts inline and spills to the heap once.
//
// # Architecture
//
//   - Storage: [Fixed], [Heap] and [Hybrid] engines behind the F-bounded [Engine] constraint.
//     The engine is a type argument of [Vec], so every call is monomorphized.
//   - Inline capacity: the length of an array type argument, e.g. [8]T for N = 8. See [Array].
//   - Build selection: [StorageVec] is [FixedVec] by default, [HeapVec] with -tags svec_heap,
//     and [HybridVec] with -tags svec_hybrid.
//   - Overflow: [Vec.TryPush] and [Vec.TryInsert] return the rejected value as
//     [code.hybscloud.com/kont.Either] Left. [Vec.Push] and [Vec.Insert] panic instead.
//
// # API Topologies
//
//   - Sequence: [Vec.Push], [Vec.Pop], [Vec.Insert], [Vec.Remove], [Vec.Slice], [Vec.Clone], [Vec.Extend].
//   - Owning iteration: [Vec.IntoIter] yields each value once from either end ([IntoIter.Next], [IntoIter.NextBack]).
//   - Hand-off: [IntoIter.SendTo] and [Vec.ExtendFrom] move values through [code.hybscloud.com/lfq] queues,
//     reporting [code.hybscloud.com/iox.ErrWouldBlock] on backpressure.
//   - Edit programs: [Push], [Pop], [Insert], [Remove] and [Length] are
//     [code.hybscloud.com/kont] effects run by [Exec], [ExecError], [Run], or stepped with [Step] and [Advance].
//     [Reify] and [Reflect] move a program between the Cont and Expr forms.
//   - Maps: package [code.hybscloud.com/svec/smap] applies the same engine selection to key-value storage.
//
// # Views
//
// A slice from [Vec.Slice] is valid until the next length change. A hybrid
// spill moves every value to a new buffer, so a view taken before a Push or
// Insert on a [HybridVec] must not be used after it.
//
// # Example
//
//	var v svec.FixedVec[int, [4]int]
//	for i := 1; i <= 4; i++ {
//		v.Push(i)
//	}
//	if r := v.TryPush(5); r.IsLeft() {
//		x, _ := r.GetLeft() // x == 5, v.Len() == 4
//	}
//	last, _ := v.Remove(v.Len() - 1) // last == 4
package svec
