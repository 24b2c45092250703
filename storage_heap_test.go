// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build svec_heap && !svec_hybrid

package svec_test

import (
	"testing"

	"code.hybscloud.com/svec"
)

func TestStorageVecHeap(t *testing.T) {
	if svec.Backend != "heap" {
		t.Fatalf("Backend = %q, want heap", svec.Backend)
	}
	v := svec.NewStorage[int, [2]int]()
	for i := range 10 {
		if !v.TryPush(i).IsRight() {
			t.Fatalf("TryPush(%d) rejected", i)
		}
	}
	if v.Inline() {
		t.Fatal("heap StorageVec reports inline storage")
	}
}
