// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package svec_test

import (
	"testing"

	"code.hybscloud.com/kont"
	"code.hybscloud.com/svec"
)

func TestExprInsertRemove(t *testing.T) {
	var v svec.FixedVec[string, [4]string]
	v.Push("a")
	v.Push("c")
	program := svec.ExprInsertThen(1, "b",
		svec.ExprRemoveBind(0, func(s string, ok bool) kont.Expr[string] {
			if !ok {
				return kont.ExprReturn("")
			}
			return kont.ExprReturn(s)
		}),
	)
	if got := svec.ExecExpr(&v, program); got != "a" {
		t.Fatalf("removed %q, want %q", got, "a")
	}
	wantSeq(t, &v, "b", "c")
}

func TestExprRemoveLastIndex(t *testing.T) {
	var v svec.HeapVec[int]
	v.Push(1)
	v.Push(2)
	program := svec.ExprLenBind(func(n int) kont.Expr[int] {
		return svec.ExprRemoveBind(n-1, func(x int, ok bool) kont.Expr[int] {
			if !ok {
				return kont.ExprReturn(-1)
			}
			return kont.ExprReturn(x)
		})
	})
	if got := svec.ExecExpr(&v, program); got != 2 {
		t.Fatalf("removed %d, want 2", got)
	}
	wantSeq(t, &v, 1)
}

func TestExprPopEmpty(t *testing.T) {
	var v svec.HybridVec[int, [2]int]
	program := svec.ExprPopBind(func(_ int, ok bool) kont.Expr[bool] {
		return kont.ExprReturn(ok)
	})
	if svec.ExecExpr(&v, program) {
		t.Fatal("Pop on empty container reported a value")
	}
}

func TestExprOverflowPanics(t *testing.T) {
	var v svec.FixedVec[int, [1]int]
	v.Push(1)
	expectPanic(t, "svec: capacity overflow on push", func() {
		svec.ExecExpr(&v, svec.ExprPushThen(2, kont.ExprReturn(struct{}{})))
	})
}

func TestExprDispatchUnhandledPanics(t *testing.T) {
	type bogus struct{ kont.Phantom[int] }

	var v svec.HeapVec[int]
	expectPanic(t, "svec: unhandled effect in editHandler", func() {
		svec.ExecExpr(&v, kont.ExprPerform(bogus{}))
	})
}
