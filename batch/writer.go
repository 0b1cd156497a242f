// Package batch — staged, all-or-nothing appends into a split tail.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Tail.Extend admits elements one at a time and can leave a partial
// append behind when the producer overruns the reservation. Writer is
// the atomic alternative for multi-chunk composition: chunks are staged
// in a FIFO first, and Flush admits the whole staged total in a single
// check before any element is copied.

package batch

import (
	"github.com/eapache/queue"

	"github.com/momentics/splitvec/api"
	"github.com/momentics/splitvec/pool"
	"github.com/momentics/splitvec/split"
)

// Writer accumulates chunks destined for one split tail.
// Staged chunks are held by reference, not copied; callers must not
// mutate a chunk between Stage and Flush. Single-goroutine use.
type Writer[T any] struct {
	chunks *queue.Queue
	total  int
}

// NewWriter creates an empty writer.
func NewWriter[T any]() *Writer[T] {
	return &Writer[T]{chunks: queue.New()}
}

// NewWriterPool returns a pool of reusable writers for hot paths.
func NewWriterPool[T any]() *pool.SyncPool[*Writer[T]] {
	return pool.NewSyncPool(func() *Writer[T] {
		return NewWriter[T]()
	})
}

// Stage queues a chunk for the next Flush.
func (w *Writer[T]) Stage(chunk []T) {
	if len(chunk) == 0 {
		return
	}
	w.chunks.Add(chunk)
	w.total += len(chunk)
}

// Chunks reports how many staged chunks are pending.
func (w *Writer[T]) Chunks() int {
	return w.chunks.Length()
}

// Total reports the staged element count.
func (w *Writer[T]) Total() int {
	return w.total
}

// Flush appends every staged chunk to the tail, in staging order, and
// empties the writer. Admission is atomic across the whole batch: if
// the staged total exceeds the tail's remaining capacity, Flush panics
// with ErrCodeCapacityExceeded before any element is copied and the
// staged chunks stay queued.
func (w *Writer[T]) Flush(t *split.Tail[T]) {
	if w.total > t.Remaining() {
		panic(api.NewError(api.ErrCodeCapacityExceeded, api.ErrCapacityExceeded.Error()).
			WithContext("staged", w.total).
			WithContext("remaining", t.Remaining()))
	}
	for w.chunks.Length() > 0 {
		t.AppendSlice(w.chunks.Remove().([]T))
	}
	w.total = 0
}

// Reset drops all staged chunks without writing them.
func (w *Writer[T]) Reset() {
	for w.chunks.Length() > 0 {
		w.chunks.Remove()
	}
	w.total = 0
}
