// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package svec

import (
	"code.hybscloud.com/kont"
)

// Boxed once so building a program does not allocate for them.
var (
	exprReturnFrame kont.Frame  = kont.ReturnFrame{}
	exprLength      kont.Erased = Length{}
)

// identityResume passes the handler's answer through unchanged.
func identityResume(v kont.Erased) kont.Erased { return v }

// exprThen suspends on op and then continues with next.
func exprThen[B any](op kont.Erased, next kont.Expr[B]) kont.Expr[B] {
	tf := kont.AcquireThenFrame()
	tf.Second = kont.Expr[kont.Erased]{Value: kont.Erased(next.Value), Frame: next.Frame}
	tf.Next = exprReturnFrame
	ef := kont.AcquireEffectFrame()
	ef.Operation = op
	ef.Resume = identityResume
	ef.Next = tf
	return kont.ExprSuspend[B](ef)
}

// ExprPushThen appends a value and then continues with next.
// Fuses ExprPerform(Push[T]{Value: v}) + ExprThen.
func ExprPushThen[T, B any](v T, next kont.Expr[B]) kont.Expr[B] {
	return exprThen(Push[T]{Value: v}, next)
}

// ExprInsertThen inserts a value at i and then continues with next.
// Fuses ExprPerform(Insert[T]{Index: i, Value: v}) + ExprThen.
func ExprInsertThen[T, B any](i int, v T, next kont.Expr[B]) kont.Expr[B] {
	return exprThen(Insert[T]{Index: i, Value: v}, next)
}

func takeBindUnwind[T, B any](data, _, _ kont.Erased, current kont.Erased) (kont.Erased, kont.Frame) {
	f := data.(func(T, bool) kont.Expr[B])
	v, ok := current.(kont.Either[struct{}, T]).GetRight()
	result := f(v, ok)
	return kont.Erased(result.Value), result.Frame
}

// exprTakeBind suspends on a Pop or Remove and passes the outcome to f.
func exprTakeBind[T, B any](op kont.Erased, f func(T, bool) kont.Expr[B]) kont.Expr[B] {
	bf := kont.AcquireUnwindFrame()
	bf.Data1 = f
	bf.Unwind = takeBindUnwind[T, B]
	ef := kont.AcquireEffectFrame()
	ef.Operation = op
	ef.Resume = identityResume
	ef.Next = bf
	return kont.ExprSuspend[B](ef)
}

// ExprPopBind pops the last value and passes it to f.
// Fuses ExprPerform(Pop[T]{}) + ExprBind.
func ExprPopBind[T, B any](f func(v T, ok bool) kont.Expr[B]) kont.Expr[B] {
	return exprTakeBind(Pop[T]{}, f)
}

// ExprRemoveBind removes the value at i and passes it to f.
// Fuses ExprPerform(Remove[T]{Index: i}) + ExprBind.
func ExprRemoveBind[T, B any](i int, f func(v T, ok bool) kont.Expr[B]) kont.Expr[B] {
	return exprTakeBind(Remove[T]{Index: i}, f)
}

func lenBindUnwind[B any](data, _, _ kont.Erased, current kont.Erased) (kont.Erased, kont.Frame) {
	f := data.(func(int) kont.Expr[B])
	result := f(current.(int))
	return kont.Erased(result.Value), result.Frame
}

// ExprLenBind reads the current length and passes it to f.
// Fuses ExprPerform(Length{}) + ExprBind.
func ExprLenBind[B any](f func(n int) kont.Expr[B]) kont.Expr[B] {
	bf := kont.AcquireUnwindFrame()
	bf.Data1 = f
	bf.Unwind = lenBindUnwind[B]
	ef := kont.AcquireEffectFrame()
	ef.Operation = exprLength
	ef.Resume = identityResume
	ef.Next = bf
	return kont.ExprSuspend[B](ef)
}
