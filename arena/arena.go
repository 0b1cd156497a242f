// File: arena/arena.go
// Author: momentics <momentics@gmail.com>
//
// Growable byte vector over an anonymous memory mapping. Implements
// api.Vector[byte]. Single-owner, not goroutine-safe.

package arena

import (
	"os"

	"github.com/momentics/splitvec/api"
)

// Arena is a contiguous byte vector backed by an anonymous mapping.
// Len counts initialized bytes; Cap is the mapped size.
type Arena struct {
	data []byte // whole mapped region, len(data) == mapped size
	n    int    // initialized prefix
}

// New maps a region of at least initial bytes (rounded up to whole
// pages) and returns an empty arena over it.
func New(initial int) (*Arena, error) {
	if initial < 0 {
		return nil, api.NewError(api.ErrCodeInvalidArgument, api.ErrInvalidArgument.Error()).
			WithContext("initial", initial)
	}
	size := roundPage(initial)
	if size == 0 {
		size = os.Getpagesize()
	}
	data, err := mapRegion(size)
	if err != nil {
		return nil, err
	}
	return &Arena{data: data}, nil
}

// Len returns the number of initialized bytes.
func (a *Arena) Len() int {
	return a.n
}

// Cap returns the mapped size in bytes.
func (a *Arena) Cap() int {
	return len(a.data)
}

// Reserve guarantees space for at least n more bytes, remapping the
// region at most once. Elements are preserved; the region address may
// change only here. Mapping failure is a fatal resource error.
func (a *Arena) Reserve(n int) {
	if n <= 0 {
		return
	}
	need := a.n + n
	if need <= len(a.data) {
		return
	}
	next := roundPage(max(need, 2*len(a.data)))
	grown, err := growRegion(a.data, next)
	if err != nil {
		panic(api.NewError(api.ErrCodeInternal, "arena remap failed").
			WithContext("size", next).
			WithContext("err", err.Error()))
	}
	a.data = grown
}

// Push appends one byte, growing the mapping if needed.
func (a *Arena) Push(item byte) {
	if a.n == len(a.data) {
		a.Reserve(1)
	}
	a.data[a.n] = item
	a.n++
}

// AppendSlice appends all bytes of items, growing if needed.
func (a *Arena) AppendSlice(items []byte) {
	if free := len(a.data) - a.n; free < len(items) {
		a.Reserve(len(items))
	}
	copy(a.data[a.n:], items)
	a.n += len(items)
}

// Data returns the initialized bytes in place. Valid until the next
// remap.
func (a *Arena) Data() []byte {
	return a.data[:a.n]
}

// Truncate shortens the arena to n bytes, retaining the mapping.
func (a *Arena) Truncate(n int) {
	if n < 0 || n > a.n {
		panic(api.NewError(api.ErrCodeInvalidArgument, api.ErrInvalidArgument.Error()).
			WithContext("n", n).
			WithContext("len", a.n))
	}
	a.n = n
}

// Close releases the mapping. The arena must not be used afterwards.
func (a *Arena) Close() error {
	if a.data == nil {
		return nil
	}
	err := unmapRegion(a.data)
	a.data = nil
	a.n = 0
	return err
}

func roundPage(n int) int {
	page := os.Getpagesize()
	return (n + page - 1) / page * page
}
