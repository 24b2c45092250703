// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package svec

import (
	"code.hybscloud.com/kont"
)

// Reify converts a Cont-world edit program to Expr-world, so programs
// built with [PushAll], [PopAll] or [Loop] can be run with [ExecExpr] or
// [RunExpr], or stepped one edit at a time with [Step] and [Advance].
func Reify[A any](m kont.Eff[A]) kont.Expr[A] {
	return kont.Reify(m)
}

// Reflect converts an Expr-world edit program to Cont-world for
// [Exec], [ExecError] or [Run].
func Reflect[A any](m kont.Expr[A]) kont.Eff[A] {
	return kont.Reflect(m)
}
