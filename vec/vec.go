// File: vec/vec.go
// Author: momentics <momentics@gmail.com>
//
// Slice-backed api.Vector. All mutating methods use a pointer receiver;
// the value itself is the slice header, nothing else is stored.

package vec

import "slices"

// Vec is a growable vector over a plain Go slice.
type Vec[T any] []T

// New returns an empty vector holding the given elements.
func New[T any](items ...T) *Vec[T] {
	v := Vec[T](items)
	return &v
}

// WithCapacity returns an empty vector with room for n elements.
func WithCapacity[T any](n int) *Vec[T] {
	v := make(Vec[T], 0, n)
	return &v
}

// From wraps an existing slice without copying. The vector takes
// ownership; the caller must not use s afterwards.
func From[T any](s []T) *Vec[T] {
	v := Vec[T](s)
	return &v
}

// Len returns the number of initialized elements.
func (v Vec[T]) Len() int {
	return len(v)
}

// Cap returns the capacity of the current allocation.
func (v Vec[T]) Cap() int {
	return cap(v)
}

// Reserve increases the capacity, if necessary, to guarantee space for
// another n elements. At most one reallocation occurs per call.
func (v *Vec[T]) Reserve(n int) {
	*v = slices.Grow(*v, n)
}

// Push appends one element, growing the allocation if needed.
func (v *Vec[T]) Push(item T) {
	*v = append(*v, item)
}

// AppendSlice appends all elements of items, growing if needed.
func (v *Vec[T]) AppendSlice(items []T) {
	*v = append(*v, items...)
}

// Data returns the initialized elements in place, without copying.
func (v Vec[T]) Data() []T {
	return v
}

// Truncate shortens the vector to n elements, retaining capacity.
func (v *Vec[T]) Truncate(n int) {
	*v = (*v)[:n]
}

// Reset empties the vector, retaining capacity for reuse.
func (v *Vec[T]) Reset() {
	*v = (*v)[:0]
}
