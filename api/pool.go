// File: api/pool.go
// Author: momentics <momentics@gmail.com>
//
// Defines abstract pooling APIs: vector recycling across split sessions.

package api

// Pool abstracts vector recycling across split sessions.
type Pool[T any] interface {
	// Get returns an empty vector with at least the given free capacity.
	Get(capacity int) Vector[T]

	// Put returns a vector to the pool; it must not be used afterwards.
	Put(v Vector[T])

	// Stats exposes allocation/reuse accounting for observability.
	Stats() PoolStats
}

// PoolStats aggregates vector allocation and reuse counters.
type PoolStats struct {
	TotalAlloc int64
	TotalFree  int64
	InUse      int64
	Recycled   int64
}
