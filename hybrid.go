// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package svec

// Hybrid is the hybrid engine. It starts inline and behaves like [Fixed]
// until a push or insert needs slot N+1; at that instant it spills: all
// live values move into a fresh heap buffer and the engine behaves like
// [Heap] from then on. The transition happens once and is never undone,
// even if the length later drops to N or below.
//
// A spill invalidates every slice previously returned for this engine.
// Do not hold a view across Push or Insert on a hybrid container.
type Hybrid[T any, A Array[T]] struct {
	slots   slots[T, A]
	heap    Heap[T]
	spilled bool
}

func (h *Hybrid[T, A]) size() int {
	if h.spilled {
		return h.heap.size()
	}
	return h.slots.n
}

func (h *Hybrid[T, A]) capacity() int {
	if h.spilled {
		return h.heap.capacity()
	}
	return h.slots.capacity()
}

func (h *Hybrid[T, A]) inline() bool { return !h.spilled }
func (h *Hybrid[T, A]) full() bool   { return false }

func (h *Hybrid[T, A]) view() []T {
	if h.spilled {
		return h.heap.view()
	}
	return h.slots.live()
}

// spill moves the inline values to the heap. The buffer has room for
// the pending value and then some: max(2N, N+1).
func (h *Hybrid[T, A]) spill() {
	n := h.slots.capacity()
	h.heap = Heap[T]{buf: h.slots.moveTo(max(2*n, n+1))}
	h.spilled = true
	spillCount.Add(1)
}

func (h *Hybrid[T, A]) tryPush(v T) bool {
	if !h.spilled {
		if h.slots.push(v) {
			return true
		}
		h.spill()
	}
	return h.heap.tryPush(v)
}

func (h *Hybrid[T, A]) pop() (T, bool) {
	if h.spilled {
		return h.heap.pop()
	}
	return h.slots.pop()
}

func (h *Hybrid[T, A]) tryInsert(i int, v T) bool {
	if !h.spilled {
		if !h.slots.full() {
			return h.slots.insert(i, v)
		}
		// Reject a bad index before the one-way transition.
		checkInsert(i, h.slots.n)
		h.spill()
	}
	return h.heap.tryInsert(i, v)
}

func (h *Hybrid[T, A]) remove(i int) (T, bool) {
	if h.spilled {
		return h.heap.remove(i)
	}
	return h.slots.remove(i)
}

func (h *Hybrid[T, A]) truncate(n int) {
	if h.spilled {
		h.heap.truncate(n)
		return
	}
	h.slots.truncate(n)
}

// clone keeps the mode: a spilled engine clones to a spilled engine.
func (h *Hybrid[T, A]) clone() Hybrid[T, A] {
	if h.spilled {
		return Hybrid[T, A]{heap: h.heap.clone(), spilled: true}
	}
	return Hybrid[T, A]{slots: h.slots}
}
