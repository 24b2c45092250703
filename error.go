// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package svec

import (
	"errors"
	"fmt"

	"code.hybscloud.com/kont"
)

// ErrCapacityOverflow reports that a value did not fit in a fixed-capacity
// container. The container is unchanged.
var ErrCapacityOverflow = errors.New("svec: capacity overflow")

const (
	panicPushOverflow   = "svec: capacity overflow on push"
	panicInsertOverflow = "svec: capacity overflow on insert"
	panicInsertIndex    = "svec: insert index out of range"
)

// CapacityError carries the value a fixed-capacity container rejected.
// It unwraps to [ErrCapacityOverflow].
type CapacityError[T any] struct {
	Value T
	// Index is the requested insert position, or -1 for a push.
	Index int
	Cap   int
}

func (e *CapacityError[T]) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("svec: capacity overflow on push (cap %d)", e.Cap)
	}
	return fmt.Sprintf("svec: capacity overflow on insert at %d (cap %d)", e.Index, e.Cap)
}

func (e *CapacityError[T]) Unwrap() error {
	return ErrCapacityOverflow
}

// fatal returns the panic message of the non-try operation that failed.
func (e *CapacityError[T]) fatal() string {
	if e.Index < 0 {
		return panicPushOverflow
	}
	return panicInsertOverflow
}

// checkInsert panics unless i is a valid insert position for length n.
func checkInsert(i, n int) {
	if i < 0 || i > n {
		panic(panicInsertIndex)
	}
}

// editErrorHandler handles both edit and error effects.
// Capacity overflow short-circuits to Left like a Throw.
type editErrorHandler[T, R any] struct {
	ed     editor[T]
	errCtx *kont.ErrorContext[error]
}

// Dispatch implements kont.Handler for the composed Edit+Error handler.
// Dispatch order: Edit → Error.
func (h editErrorHandler[T, R]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	if v, ok, err := dispatchEdit(h.ed, op); ok {
		if err != nil {
			return kont.Left[error, R](err), false
		}
		return v, true
	}
	if eop, ok := op.(interface {
		DispatchError(ctx *kont.ErrorContext[error]) (kont.Resumed, bool)
	}); ok {
		v, _ := eop.DispatchError(h.errCtx)
		if h.errCtx.HasErr {
			return kont.Left[error, R](h.errCtx.Err), false
		}
		return v, true
	}
	panic("svec: unhandled effect in editErrorHandler")
}

// ExecError runs an edit program against v with error handling.
// Returns Right(result) on success. A rejected push or insert returns
// Left(*CapacityError[T]) and a kont Throw returns Left(thrown); edits
// performed before the failure stay applied.
func ExecError[T, R, S any, E Engine[T, S]](v *Vec[T, S, E], protocol kont.Eff[R]) kont.Either[error, R] {
	wrapped := kont.Map[kont.Resumed, R, kont.Either[error, R]](protocol, func(r R) kont.Either[error, R] {
		return kont.Right[error, R](r)
	})
	var errCtx kont.ErrorContext[error]
	h := editErrorHandler[T, R]{ed: v, errCtx: &errCtx}
	return kont.Handle(wrapped, h)
}

// ExecErrorExpr is the Expr-world form of [ExecError].
func ExecErrorExpr[T, R, S any, E Engine[T, S]](v *Vec[T, S, E], protocol kont.Expr[R]) kont.Either[error, R] {
	wrapped := kont.ExprMap(protocol, func(r R) kont.Either[error, R] {
		return kont.Right[error, R](r)
	})
	var errCtx kont.ErrorContext[error]
	h := editErrorHandler[T, R]{ed: v, errCtx: &errCtx}
	return kont.HandleExpr(wrapped, h)
}
