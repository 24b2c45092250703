// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package svec

import (
	"code.hybscloud.com/kont"
)

// PushThen appends a value and then continues with next.
// Fuses Perform(Push[T]{Value: v}) + Then.
func PushThen[T, B any](v T, next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(kont.Perform(Push[T]{Value: v}), next)
}

// InsertThen inserts a value at i and then continues with next.
// Fuses Perform(Insert[T]{Index: i, Value: v}) + Then.
func InsertThen[T, B any](i int, v T, next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(kont.Perform(Insert[T]{Index: i, Value: v}), next)
}

// PopBind pops the last value and passes it to f; ok is false when the
// container was empty.
// Fuses Perform(Pop[T]{}) + Bind.
func PopBind[T, B any](f func(v T, ok bool) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(Pop[T]{}), func(e kont.Either[struct{}, T]) kont.Eff[B] {
		v, ok := e.GetRight()
		return f(v, ok)
	})
}

// RemoveBind removes the value at i and passes it to f; ok is false when
// i was out of range.
// Fuses Perform(Remove[T]{Index: i}) + Bind.
func RemoveBind[T, B any](i int, f func(v T, ok bool) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(Remove[T]{Index: i}), func(e kont.Either[struct{}, T]) kont.Eff[B] {
		v, ok := e.GetRight()
		return f(v, ok)
	})
}

// LenBind reads the current length and passes it to f.
// Fuses Perform(Length{}) + Bind.
func LenBind[B any](f func(n int) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(Length{}), f)
}
