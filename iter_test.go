// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package svec_test

import (
	"slices"
	"testing"

	"code.hybscloud.com/svec"
)

func checkIntoIterBothEnds[S any, E svec.Engine[int, S]](t *testing.T) {
	v := svec.New[int, S, E]()
	v.Extend(slices.Values([]int{1, 2, 3, 4, 5}))
	it := v.IntoIter()
	if !v.IsEmpty() {
		t.Fatalf("source Len() = %d after IntoIter, want 0", v.Len())
	}
	if it.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", it.Len())
	}

	var front, back []int
	for it.Len() > 0 {
		x, ok := it.Next()
		if !ok {
			t.Fatal("Next() ended early")
		}
		front = append(front, x)
		if x, ok = it.NextBack(); ok {
			back = append(back, x)
		}
	}
	if !slices.Equal(front, []int{1, 2, 3}) || !slices.Equal(back, []int{5, 4}) {
		t.Fatalf("front %v back %v", front, back)
	}
	if _, ok := it.Next(); ok {
		t.Fatal("Next() after exhaustion reported a value")
	}
	if _, ok := it.NextBack(); ok {
		t.Fatal("NextBack() after exhaustion reported a value")
	}
	if it.Len() != 0 {
		t.Fatalf("Len() = %d after exhaustion", it.Len())
	}
}

func checkIntoIterReverse[S any, E svec.Engine[int, S]](t *testing.T) {
	v := svec.New[int, S, E]()
	v.Extend(slices.Values([]int{1, 2, 3}))
	it := v.IntoIter()
	var got []int
	for {
		x, ok := it.NextBack()
		if !ok {
			break
		}
		got = append(got, x)
	}
	if !slices.Equal(got, []int{3, 2, 1}) {
		t.Fatalf("reverse order %v", got)
	}
}

func checkSourceReusable[S any, E svec.Engine[int, S]](t *testing.T) {
	v := svec.New[int, S, E]()
	v.Extend(slices.Values([]int{1, 2}))
	it := v.IntoIter()
	v.Push(7)
	wantSeq(t, v, 7)
	if got := slices.Collect(it.Seq()); !slices.Equal(got, []int{1, 2}) {
		t.Fatalf("iterator saw %v after source reuse", got)
	}
}

func TestIntoIterFixed(t *testing.T) {
	t.Run("BothEnds", checkIntoIterBothEnds[svec.Fixed[int, [8]int]])
	t.Run("Reverse", checkIntoIterReverse[svec.Fixed[int, [8]int]])
	t.Run("SourceReusable", checkSourceReusable[svec.Fixed[int, [8]int]])
}

func TestIntoIterHeap(t *testing.T) {
	t.Run("BothEnds", checkIntoIterBothEnds[svec.Heap[int]])
	t.Run("Reverse", checkIntoIterReverse[svec.Heap[int]])
	t.Run("SourceReusable", checkSourceReusable[svec.Heap[int]])
}

func TestIntoIterHybrid(t *testing.T) {
	t.Run("BothEnds", checkIntoIterBothEnds[svec.Hybrid[int, [2]int]])
	t.Run("Reverse", checkIntoIterReverse[svec.Hybrid[int, [2]int]])
	t.Run("SourceReusable", checkSourceReusable[svec.Hybrid[int, [2]int]])
}

func TestIntoIterSeqStopsEarly(t *testing.T) {
	var v svec.FixedVec[int, [4]int]
	v.Extend(slices.Values([]int{1, 2, 3, 4}))
	it := v.IntoIter()
	for x := range it.Seq() {
		if x == 2 {
			break
		}
	}
	if it.Len() != 2 {
		t.Fatalf("Len() = %d after early stop, want 2", it.Len())
	}
	if x, _ := it.Next(); x != 3 {
		t.Fatalf("Next() = %d, want 3", x)
	}
}

func TestIntoIterDiscard(t *testing.T) {
	var v svec.HeapVec[string]
	v.Extend(slices.Values([]string{"a", "b", "c"}))
	it := v.IntoIter()
	it.Next()
	it.Discard()
	if it.Len() != 0 {
		t.Fatalf("Len() = %d after Discard", it.Len())
	}
	if _, ok := it.NextBack(); ok {
		t.Fatal("NextBack() after Discard reported a value")
	}
}
