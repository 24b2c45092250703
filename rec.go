// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package svec

import (
	"code.hybscloud.com/kont"
)

// Loop runs a recursive edit program (Cont-world).
// step returns Left(nextState) to continue or Right(result) to finish.
func Loop[S, A any](initial S, step func(S) kont.Eff[kont.Either[S, A]]) kont.Eff[A] {
	return kont.Bind(step(initial), func(e kont.Either[S, A]) kont.Eff[A] {
		if next, ok := e.GetLeft(); ok {
			return Loop(next, step)
		}
		result, _ := e.GetRight()
		return kont.Pure(result)
	})
}

// ExprLoop is the Expr-world form of [Loop]. A step that finishes
// without performing an edit is unrolled directly.
func ExprLoop[S, A any](initial S, step func(S) kont.Expr[kont.Either[S, A]]) kont.Expr[A] {
	m := step(initial)
	if _, ok := m.Frame.(kont.ReturnFrame); ok {
		if next, ok := m.Value.GetLeft(); ok {
			return ExprLoop(next, step)
		}
		result, _ := m.Value.GetRight()
		return kont.ExprReturn(result)
	}
	bf := kont.AcquireBindFrame()
	bf.F = func(a kont.Erased) kont.Expr[kont.Erased] {
		e := a.(kont.Either[S, A])
		if next, ok := e.GetLeft(); ok {
			r := ExprLoop(next, step)
			return kont.Expr[kont.Erased]{Value: kont.Erased(r.Value), Frame: r.Frame}
		}
		result, _ := e.GetRight()
		return kont.Expr[kont.Erased]{Value: kont.Erased(result), Frame: exprReturnFrame}
	}
	bf.Next = exprReturnFrame
	var zero A
	return kont.Expr[A]{Value: zero, Frame: kont.ChainFrames(m.Frame, bf)}
}

// PushAll pushes every value of vs in order and returns how many were
// pushed. Under ExecError a rejected value stops the program with
// Left(*CapacityError[T]) and the values before it stay pushed.
func PushAll[T any](vs []T) kont.Eff[int] {
	return Loop(0, func(i int) kont.Eff[kont.Either[int, int]] {
		if i == len(vs) {
			return kont.Pure(kont.Right[int, int](i))
		}
		return PushThen(vs[i], kont.Pure(kont.Left[int, int](i+1)))
	})
}

// PopAll pops until the container is empty and returns the values in
// pop order, last pushed first.
func PopAll[T any]() kont.Eff[[]T] {
	return Loop([]T(nil), func(acc []T) kont.Eff[kont.Either[[]T, []T]] {
		return PopBind(func(v T, ok bool) kont.Eff[kont.Either[[]T, []T]] {
			if !ok {
				return kont.Pure(kont.Right[[]T, []T](acc))
			}
			return kont.Pure(kont.Left[[]T, []T](append(acc, v)))
		})
	})
}
