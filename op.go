// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package svec

import (
	"code.hybscloud.com/kont"
)

// editor is the view of a Vec that edit operations dispatch on.
type editor[T any] interface {
	Len() int
	Cap() int
	tryPush(x T) bool
	pop() (T, bool)
	tryInsert(i int, x T) bool
	remove(i int) (T, bool)
}

// editDispatcher is the structural interface for element-typed edits.
// DispatchEdit never panics on overflow: it returns a *CapacityError[T]
// and leaves the container unchanged.
type editDispatcher[T any] interface {
	DispatchEdit(ed editor[T]) (kont.Resumed, error)
}

// lengthDispatcher is the structural interface for edits that do not
// depend on the element type.
type lengthDispatcher interface {
	DispatchLength(ed interface{ Len() int }) kont.Resumed
}

// dispatchEdit runs op against ed. ok is false if op is not an edit for
// element type T.
func dispatchEdit[T any](ed editor[T], op kont.Operation) (v kont.Resumed, ok bool, err error) {
	switch o := op.(type) {
	case editDispatcher[T]:
		v, err = o.DispatchEdit(ed)
		return v, true, err
	case lengthDispatcher:
		return o.DispatchLength(ed), true, nil
	}
	return nil, false, nil
}

// Push is the effect operation for appending a value.
// Perform(Push[T]{Value: v}) appends v to the container.
type Push[T any] struct {
	kont.Phantom[struct{}]
	Value T
}

// DispatchEdit handles Push. A full container rejects the value.
func (p Push[T]) DispatchEdit(ed editor[T]) (kont.Resumed, error) {
	if !ed.tryPush(p.Value) {
		return nil, &CapacityError[T]{Value: p.Value, Index: -1, Cap: ed.Cap()}
	}
	return struct{}{}, nil
}

// Pop is the effect operation for removing the last value.
// It resumes with Right(value), or Left when the container is empty.
type Pop[T any] struct {
	kont.Phantom[kont.Either[struct{}, T]]
}

// DispatchEdit handles Pop.
func (Pop[T]) DispatchEdit(ed editor[T]) (kont.Resumed, error) {
	x, ok := ed.pop()
	if !ok {
		return kont.Left[struct{}, T](struct{}{}), nil
	}
	return kont.Right[struct{}](x), nil
}

// Insert is the effect operation for inserting a value at Index.
type Insert[T any] struct {
	kont.Phantom[struct{}]
	Index int
	Value T
}

// DispatchEdit handles Insert. A full container rejects the value; an
// index outside [0, Len()] panics as it does for Vec.Insert.
func (p Insert[T]) DispatchEdit(ed editor[T]) (kont.Resumed, error) {
	if !ed.tryInsert(p.Index, p.Value) {
		return nil, &CapacityError[T]{Value: p.Value, Index: p.Index, Cap: ed.Cap()}
	}
	return struct{}{}, nil
}

// Remove is the effect operation for removing the value at Index.
// It resumes with Right(value), or Left when Index is out of range.
type Remove[T any] struct {
	kont.Phantom[kont.Either[struct{}, T]]
	Index int
}

// DispatchEdit handles Remove.
func (r Remove[T]) DispatchEdit(ed editor[T]) (kont.Resumed, error) {
	x, ok := ed.remove(r.Index)
	if !ok {
		return kont.Left[struct{}, T](struct{}{}), nil
	}
	return kont.Right[struct{}](x), nil
}

// Length is the effect operation for reading the current length.
type Length struct {
	kont.Phantom[int]
}

// DispatchLength handles Length.
func (Length) DispatchLength(ed interface{ Len() int }) kont.Resumed {
	return ed.Len()
}
