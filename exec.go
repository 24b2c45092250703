// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package svec

import (
	"errors"

	"code.hybscloud.com/kont"
)

// editHandler implements kont.Handler for edit effects.
// Capacity overflow is fatal, as it is for Vec.Push and Vec.Insert.
// Value type: passed to evalFrames on the stack, avoiding heap allocation.
type editHandler[T, R any] struct {
	ed editor[T]
}

// Dispatch implements kont.Handler via structural interface assertion.
func (h editHandler[T, R]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	v, ok, err := dispatchEdit(h.ed, op)
	if !ok {
		panic("svec: unhandled effect in editHandler")
	}
	if err != nil {
		var ce *CapacityError[T]
		if errors.As(err, &ce) {
			panic(ce.fatal())
		}
		panic(err)
	}
	return v, true
}

// Exec runs a Cont-world edit program against v and returns its result.
// A rejected push or insert panics with the same message as the
// corresponding Vec method; use [ExecError] to handle it.
func Exec[T, R, S any, E Engine[T, S]](v *Vec[T, S, E], protocol kont.Eff[R]) R {
	h := editHandler[T, R]{ed: v}
	return kont.Handle(protocol, h)
}

// ExecExpr runs an Expr-world edit program against v and returns its
// result. Overflow is fatal as in [Exec].
func ExecExpr[T, R, S any, E Engine[T, S]](v *Vec[T, S, E], protocol kont.Expr[R]) R {
	h := editHandler[T, R]{ed: v}
	return kont.HandleExpr(protocol, h)
}
