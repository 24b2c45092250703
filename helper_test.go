// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package svec_test

import (
	"slices"
	"testing"

	"code.hybscloud.com/kont"
	"code.hybscloud.com/svec"
)

// execExpr drives a program to completion on v via Step+Advance loop.
// Used by stepping tests to exercise the one-edit-at-a-time path.
// Fails the test on a capacity rejection.
func execExpr[T, R, S any, E svec.Engine[T, S]](t *testing.T, v *svec.Vec[T, S, E], protocol kont.Expr[R]) R {
	t.Helper()
	result, susp := svec.Step[R](protocol)
	for susp != nil {
		var err error
		result, susp, err = svec.Advance(v, susp)
		if err != nil {
			t.Fatalf("Advance: %v", err)
		}
	}
	return result
}

// wantSeq fails the test unless v holds exactly want, in order.
func wantSeq[T comparable, S any, E svec.Engine[T, S]](t *testing.T, v *svec.Vec[T, S, E], want ...T) {
	t.Helper()
	if v.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", v.Len(), len(want))
	}
	if got := v.Slice(); !slices.Equal(got, want) {
		t.Fatalf("Slice() = %v, want %v", got, want)
	}
}

// expectPanic fails the test unless f panics with msg.
func expectPanic(t *testing.T, msg string, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected panic %q", msg)
		}
		got, ok := r.(string)
		if !ok || got != msg {
			t.Fatalf("unexpected panic: %v", r)
		}
	}()
	f()
}
