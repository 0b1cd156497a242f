// File: split/tail.go
// Author: momentics <momentics@gmail.com>
//
// Bounded append-only write view. All elements live in the vector; the
// Tail only remembers where its region begins and where it must stop.

package split

import (
	"iter"

	"github.com/momentics/splitvec/api"
)

// Tail is the write view produced by Split: an append handle over the
// vector's post-split region, capped at a pre-declared maximum length.
//
// Invariant: start <= vec.Len() <= maxLen. The visible range is always
// vec[start:vec.Len()] — only the elements appended since the split.
type Tail[T any] struct {
	start  int
	maxLen int
	vec    api.Vector[T]
}

// Start returns the vector index where the writable region begins.
func (t *Tail[T]) Start() int {
	return t.start
}

// Len returns the number of elements appended through this Tail.
func (t *Tail[T]) Len() int {
	return t.vec.Len() - t.start
}

// Remaining returns how many more elements may be appended. It is
// derived from the live vector length on every call, never cached.
func (t *Tail[T]) Remaining() int {
	return t.maxLen - t.vec.Len()
}

// Push appends one element. Never reallocates: the slot was reserved at
// split time. Panics with ErrCodeCapacityExceeded when Remaining() == 0.
func (t *Tail[T]) Push(item T) {
	if t.Remaining() == 0 {
		panic(t.capacityError(1))
	}
	t.vec.Push(item)
}

// AppendSlice appends all elements of items. Admission is atomic: the
// capacity check happens before any element is copied, so an oversized
// batch panics with ErrCodeCapacityExceeded and leaves the vector
// untouched.
func (t *Tail[T]) AppendSlice(items []T) {
	if len(items) > t.Remaining() {
		panic(t.capacityError(len(items)))
	}
	t.vec.AppendSlice(items)
}

// Extend appends elements drawn from seq one at a time. Capacity is
// checked per element, not up front — the producer's length is unknown —
// so an overlong sequence panics with ErrCodeCapacityExceeded after the
// elements that did fit have already been appended. Callers needing
// all-or-nothing admission should materialize the sequence and use
// AppendSlice, or stage it through a batch.Writer.
func (t *Tail[T]) Extend(seq iter.Seq[T]) {
	for item := range seq {
		if t.Remaining() == 0 {
			panic(t.capacityError(1))
		}
		t.vec.Push(item)
	}
}

// View returns the elements appended so far, in place. The slice's
// capacity is clipped to its length.
func (t *Tail[T]) View() []T {
	n := t.vec.Len()
	return t.vec.Data()[t.start:n:n]
}

// MutableView is View without the capacity clip, for callers that patch
// already-appended elements in place.
func (t *Tail[T]) MutableView() []T {
	return t.vec.Data()[t.start:t.vec.Len()]
}

func (t *Tail[T]) capacityError(want int) *api.Error {
	return api.NewError(api.ErrCodeCapacityExceeded, api.ErrCapacityExceeded.Error()).
		WithContext("want", want).
		WithContext("remaining", t.Remaining()).
		WithContext("max_len", t.maxLen)
}
