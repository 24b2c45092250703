// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package svec_test

import (
	"testing"

	"code.hybscloud.com/svec"
)

func TestHeapNeverRejects(t *testing.T) {
	var v svec.HeapVec[int]
	for i := range 1000 {
		if r := v.TryPush(i); !r.IsRight() {
			t.Fatalf("TryPush(%d) rejected", i)
		}
	}
	if r := v.TryInsert(500, -1); !r.IsRight() {
		t.Fatal("TryInsert rejected")
	}
	if v.Len() != 1001 {
		t.Fatalf("Len() = %d, want 1001", v.Len())
	}
	if x, _ := v.Get(500); x != -1 {
		t.Fatalf("Get(500) = %d, want -1", x)
	}
	if x, _ := v.Get(501); x != 500 {
		t.Fatalf("Get(501) = %d, want 500", x)
	}
}

func TestHeapPopReleasesValue(t *testing.T) {
	var v svec.HeapVec[*int]
	x := new(int)
	v.Push(x)
	v.Push(x)
	v.Pop()
	// The vacated slot must not keep the popped pointer.
	if full := v.Slice()[:2]; full[1] != nil {
		t.Fatal("popped slot still holds its value")
	}
}
