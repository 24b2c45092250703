// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package svec

import (
	"code.hybscloud.com/kont"
)

// Run creates an empty container on engine S, runs the Cont-world edit
// program against it, and returns the result with the container.
// Overflow is fatal as in [Exec].
//
//	n, v := svec.Run[int, svec.Hybrid[int, [2]int]](svec.PushThen(1, svec.LenBind(kont.Pure[int])))
func Run[T, S, R any, E Engine[T, S]](protocol kont.Eff[R]) (R, *Vec[T, S, E]) {
	v := New[T, S, E]()
	return Exec(v, protocol), v
}

// RunExpr is the Expr-world form of [Run].
func RunExpr[T, S, R any, E Engine[T, S]](protocol kont.Expr[R]) (R, *Vec[T, S, E]) {
	v := New[T, S, E]()
	return ExecExpr(v, protocol), v
}
