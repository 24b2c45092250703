// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package svec

import (
	"code.hybscloud.com/kont"
)

// Step evaluates an edit program until the first effect suspension.
// Returns (result, nil) on completion, or (zero, suspension) if pending.
func Step[R any](protocol kont.Expr[R]) (R, *kont.Suspension[R]) {
	return kont.StepExpr(protocol)
}

// Advance applies the suspended edit to v.
//
// On success (nil error), the suspension is consumed and the program
// advances to the next edit or completion.
// On a rejected push or insert, Advance returns the *CapacityError and
// leaves both v and the suspension untouched; the caller may make room
// and retry with the same suspension.
func Advance[T, R, S any, E Engine[T, S]](v *Vec[T, S, E], susp *kont.Suspension[R]) (R, *kont.Suspension[R], error) {
	x, ok, err := dispatchEdit[T](v, susp.Op())
	if !ok {
		panic("svec: unhandled effect in Advance")
	}
	if err != nil {
		var zero R
		return zero, susp, err
	}
	result, next := susp.Resume(x)
	return result, next, nil
}
