// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package svec_test

import (
	"errors"
	"slices"
	"testing"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
	"code.hybscloud.com/svec"
)

// drain dequeues everything currently in q.
func drain[T any](q *lfq.SPSC[T]) []T {
	var out []T
	for {
		x, err := q.Dequeue()
		if err != nil {
			return out
		}
		out = append(out, x)
	}
}

func TestSendToBackpressure(t *testing.T) {
	skipRace(t)
	var q lfq.SPSC[int]
	q.Init(4)

	var v svec.HeapVec[int]
	for i := range 20 {
		v.Push(i)
	}
	it := v.IntoIter()

	var got []int
	for it.Len() > 0 {
		n, err := it.SendTo(&q)
		if it.Len() > 0 && !errors.Is(err, iox.ErrWouldBlock) {
			t.Fatalf("SendTo err = %v with %d left, want ErrWouldBlock", err, it.Len())
		}
		if n == 0 {
			t.Fatal("SendTo made no progress on an empty queue")
		}
		got = append(got, drain(&q)...)
	}
	want := make([]int, 20)
	for i := range want {
		want[i] = i
	}
	if !slices.Equal(got, want) {
		t.Fatalf("received %v", got)
	}
}

func TestSendToKeepsRejectedValue(t *testing.T) {
	skipRace(t)
	var q lfq.SPSC[string]
	q.Init(4)

	var v svec.FixedVec[string, [16]string]
	for _, s := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i"} {
		v.Push(s)
	}
	it := v.IntoIter()
	n, err := it.SendTo(&q)
	if !errors.Is(err, iox.ErrWouldBlock) {
		t.Fatalf("SendTo err = %v, want ErrWouldBlock", err)
	}
	if n+it.Len() != 9 {
		t.Fatalf("enqueued %d with %d left, want a total of 9", n, it.Len())
	}
	sent := drain(&q)
	next, ok := it.Next()
	if !ok || next != string(rune('a'+len(sent))) {
		t.Fatalf("next value after hand-off = %q, want the first unsent value", next)
	}
}

func TestSendAll(t *testing.T) {
	skipRace(t)
	var q lfq.SPSC[int]
	q.Init(4)

	var v svec.HybridVec[int, [4]int]
	for i := range 64 {
		v.Push(i)
	}
	it := v.IntoIter()

	done := make(chan []int)
	go func() {
		var bo iox.Backoff
		var got []int
		for len(got) < 64 {
			x, err := q.Dequeue()
			if err != nil {
				bo.Wait()
				continue
			}
			bo.Reset()
			got = append(got, x)
		}
		done <- got
	}()

	n, err := it.SendAll(&q)
	if err != nil || n != 64 {
		t.Fatalf("SendAll = (%d, %v), want (64, nil)", n, err)
	}
	got := <-done
	for i, x := range got {
		if x != i {
			t.Fatalf("value %d = %d", i, x)
		}
	}
}

func TestExtendFromDrains(t *testing.T) {
	skipRace(t)
	var q lfq.SPSC[int]
	q.Init(4)
	for i := 1; i <= 3; i++ {
		x := i
		if err := q.Enqueue(&x); err != nil {
			t.Fatalf("Enqueue: %v", err)
		}
	}
	var v svec.HeapVec[int]
	n, err := v.ExtendFrom(&q)
	if err != nil || n != 3 {
		t.Fatalf("ExtendFrom = (%d, %v), want (3, nil)", n, err)
	}
	wantSeq(t, &v, 1, 2, 3)
}

func TestExtendFromStopsWhenFull(t *testing.T) {
	skipRace(t)
	var q lfq.SPSC[int]
	q.Init(4)
	for i := 1; i <= 3; i++ {
		x := i
		if err := q.Enqueue(&x); err != nil {
			t.Fatalf("Enqueue: %v", err)
		}
	}
	var v svec.FixedVec[int, [2]int]
	n, err := v.ExtendFrom(&q)
	if !errors.Is(err, svec.ErrCapacityOverflow) || n != 2 {
		t.Fatalf("ExtendFrom = (%d, %v), want (2, ErrCapacityOverflow)", n, err)
	}
	wantSeq(t, &v, 1, 2)
	// The value that did not fit is still queued.
	if rest := drain(&q); !slices.Equal(rest, []int{3}) {
		t.Fatalf("left in queue %v, want [3]", rest)
	}
}
