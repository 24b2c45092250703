// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package svec

import (
	"errors"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// SendTo enqueues the remaining values from the front onto q until q is
// full or the iterator is exhausted, and returns how many were enqueued.
//
// Non-blocking: returns iox.ErrWouldBlock when q is full. The value that
// did not fit stays in the iterator, so a later SendTo or Next yields it;
// no value is both enqueued and kept.
func (it *IntoIter[T, S, E]) SendTo(q *lfq.SPSC[T]) (int, error) {
	var zero T
	n := 0
	for it.front < it.back {
		s := it.view()
		if err := q.Enqueue(&s[it.front]); err != nil {
			return n, err
		}
		s[it.front] = zero
		it.front++
		n++
	}
	return n, nil
}

// SendAll enqueues every remaining value onto q, waiting past
// iox.ErrWouldBlock with adaptive backoff (iox.Backoff) until a consumer
// makes room. q's consumer must run on another goroutine. Returns the
// number of values enqueued, or the first error other than
// iox.ErrWouldBlock.
func (it *IntoIter[T, S, E]) SendAll(q *lfq.SPSC[T]) (int, error) {
	var bo iox.Backoff
	total := 0
	for {
		n, err := it.SendTo(q)
		total += n
		if err == nil {
			return total, nil
		}
		if !errors.Is(err, iox.ErrWouldBlock) {
			return total, err
		}
		if n > 0 {
			bo.Reset()
		}
		bo.Wait()
	}
}

// ExtendFrom dequeues values from q and pushes them until q is drained
// or v is full, and returns how many were moved.
//
// A drained queue (iox.ErrWouldBlock) is not an error. A full container
// returns ErrCapacityOverflow before dequeuing, so no value is taken from
// q that v cannot store.
func (v *Vec[T, S, E]) ExtendFrom(q *lfq.SPSC[T]) (int, error) {
	n := 0
	for {
		if v.engine().full() {
			return n, ErrCapacityOverflow
		}
		x, err := q.Dequeue()
		if err != nil {
			if errors.Is(err, iox.ErrWouldBlock) {
				return n, nil
			}
			return n, err
		}
		v.engine().tryPush(x)
		n++
	}
}
