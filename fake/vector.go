// Package fake
// Author: momentics <momentics@gmail.com>
//
// Instrumented fake vector for contract testing.

package fake

import "slices"

// Vector is an api.Vector implementation that counts contract-relevant
// events: reservations, backing-array moves, and appends. FailReserve
// turns Reserve into a no-op to simulate a collaborator breaking the
// reservation contract.
type Vector[T any] struct {
	data []T

	Reserves    int
	Moves       int
	Pushes      int
	BulkAppends int
	FailReserve bool
}

// NewVector creates a fake vector holding the given elements.
func NewVector[T any](items ...T) *Vector[T] {
	return &Vector[T]{data: items}
}

// Len returns the number of initialized elements.
func (v *Vector[T]) Len() int {
	return len(v.data)
}

// Cap returns the capacity of the current allocation.
func (v *Vector[T]) Cap() int {
	return cap(v.data)
}

// Reserve grows the allocation unless FailReserve is set.
func (v *Vector[T]) Reserve(n int) {
	v.Reserves++
	if v.FailReserve {
		return
	}
	before := cap(v.data)
	v.data = slices.Grow(v.data, n)
	if cap(v.data) != before {
		v.Moves++
	}
}

// Push appends one element.
func (v *Vector[T]) Push(item T) {
	v.Pushes++
	before := cap(v.data)
	v.data = append(v.data, item)
	if cap(v.data) != before {
		v.Moves++
	}
}

// AppendSlice appends all elements of items.
func (v *Vector[T]) AppendSlice(items []T) {
	v.BulkAppends++
	before := cap(v.data)
	v.data = append(v.data, items...)
	if cap(v.data) != before {
		v.Moves++
	}
}

// Data returns the initialized elements in place.
func (v *Vector[T]) Data() []T {
	return v.data
}
