// Package pool
// Author: momentics <momentics@gmail.com>
//
// Vector recycling for splitvec.
// VecPool keeps spent vectors on a FIFO free list so repeated split
// sessions reuse allocations instead of growing fresh ones; SyncPool is
// a generic sync.Pool wrapper for transient objects.
// See vecpool.go and objpool.go for implementation details.
package pool
