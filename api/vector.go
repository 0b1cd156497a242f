// Package api
// Author: momentics <momentics@gmail.com>
//
// Growable-vector contract for split-view construction.
//
// Vectors may be heap slices, mmap regions, or pooled storage.
// All view operations are zero-copy; elements live in the vector only.

package api

// Vector describes a contiguous, owned, growable sequence of elements.
//
// The contract deliberately mirrors what a split view needs and nothing
// more: length, capacity, a single up-front reservation point, raw
// appends, and a stable full view of the backing storage. The address of
// Data()'s first element must not change until the next Reserve call (or
// an append past capacity).
type Vector[T any] interface {
	// Len returns the number of initialized elements.
	Len() int

	// Cap returns the number of elements the current allocation can hold.
	Cap() int

	// Reserve guarantees space for at least n more elements. It may
	// reallocate (moving the backing storage) at most once per call and
	// must preserve element values. For n > 0 the resulting allocation
	// must be non-empty even when Len() == 0.
	Reserve(n int)

	// Push appends one element, growing the allocation if needed.
	Push(item T)

	// AppendSlice appends all elements of items, growing if needed.
	AppendSlice(items []T)

	// Data returns the initialized elements [0, Len()) in place, without
	// copying. The slice is valid until the next reallocation.
	Data() []T
}
