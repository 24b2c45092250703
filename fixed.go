// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package svec

// Fixed is the fixed-capacity engine: a single slot block of N = len(A)
// slots. It never allocates; a push or insert into a full block is
// rejected and leaves the state unchanged.
type Fixed[T any, A Array[T]] struct {
	slots slots[T, A]
}

func (f *Fixed[T, A]) size() int     { return f.slots.n }
func (f *Fixed[T, A]) capacity() int { return f.slots.capacity() }
func (f *Fixed[T, A]) inline() bool  { return true }
func (f *Fixed[T, A]) full() bool    { return f.slots.full() }
func (f *Fixed[T, A]) view() []T     { return f.slots.live() }

func (f *Fixed[T, A]) tryPush(v T) bool {
	return f.slots.push(v)
}

func (f *Fixed[T, A]) pop() (T, bool) {
	return f.slots.pop()
}

func (f *Fixed[T, A]) tryInsert(i int, v T) bool {
	return f.slots.insert(i, v)
}

func (f *Fixed[T, A]) remove(i int) (T, bool) {
	return f.slots.remove(i)
}

func (f *Fixed[T, A]) truncate(n int) {
	f.slots.truncate(n)
}

// clone copies the block by value. Unset slots hold the zero value, so the
// copy carries exactly the n live values.
func (f *Fixed[T, A]) clone() Fixed[T, A] {
	return *f
}
