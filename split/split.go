// File: split/split.go
// Author: momentics <momentics@gmail.com>
//
// Reserve-and-split controller. Performs the single up-front reservation
// and hands out the two range-restricted views.

package split

import "github.com/momentics/splitvec/api"

// Split reserves room for capacity more elements in v, then returns a
// read view over the current elements and a Tail bounded at
// v.Len()+capacity. The reservation is the only point where the backing
// storage may move; every Tail operation afterwards is reallocation-free.
//
// The read view covers exactly [0, v.Len()) at the moment of the split.
// Its capacity is clipped to its length, so the view can never be grown
// into the Tail's region.
//
// Panics with ErrCodeDegenerateAllocation if the vector's allocation is
// still empty after the reservation (capacity 0 on an empty vector), and
// with ErrCodeReservationShortfall if the vector violates its Reserve
// contract.
func Split[T any](v api.Vector[T], capacity int) ([]T, *Tail[T]) {
	return SplitAt(v, v.Len(), capacity)
}

// SplitAt is the general variant of Split: the read view covers [0, pos)
// instead of the whole vector. The Tail always starts at the current
// length, so the two ranges stay disjoint for any pos <= v.Len().
//
// Panics with ErrCodeInvalidSplitPoint if pos > v.Len().
func SplitAt[T any](v api.Vector[T], pos, capacity int) ([]T, *Tail[T]) {
	n := v.Len()
	if pos < 0 || pos > n {
		panic(api.NewError(api.ErrCodeInvalidSplitPoint, api.ErrInvalidSplitPoint.Error()).
			WithContext("pos", pos).
			WithContext("len", n))
	}
	if capacity < 0 {
		panic(api.NewError(api.ErrCodeInvalidArgument, api.ErrInvalidArgument.Error()).
			WithContext("capacity", capacity))
	}

	// Reserve asks for the full capacity, not just the shortfall:
	// Reserve(k) only guarantees k free slots, so reserving the
	// difference could leave free < capacity after a minimal grow.
	if v.Cap()-n < capacity {
		v.Reserve(capacity)
	}
	if v.Cap()-n < capacity {
		// Collaborator contract breach, not a caller mistake.
		panic(api.NewError(api.ErrCodeReservationShortfall, api.ErrReservationShortfall.Error()).
			WithContext("cap", v.Cap()).
			WithContext("len", n).
			WithContext("capacity", capacity))
	}

	// The read view needs a well-defined storage address even at len 0.
	if v.Cap() == 0 {
		panic(api.NewError(api.ErrCodeDegenerateAllocation, api.ErrDegenerateAllocation.Error()))
	}

	// Captured after the reservation, so the view never observes a stale
	// backing array. The full slice expression pins cap == len.
	read := v.Data()[:pos:pos]

	return read, &Tail[T]{
		start:  n,
		maxLen: n + capacity,
		vec:    v,
	}
}
