// File: pool/vecpool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// FIFO free-list pool of vec.Vec vectors with allocation accounting.

package pool

import (
	"sync"

	"github.com/eapache/queue"
	"go.uber.org/zap"

	"github.com/momentics/splitvec/api"
	"github.com/momentics/splitvec/control"
	"github.com/momentics/splitvec/vec"
)

// Option customizes pool construction.
type Option func(*config)

type config struct {
	maxRetained int
	minCapacity int
	log         *zap.Logger
}

// WithMaxRetained caps how many spent vectors the free list keeps.
func WithMaxRetained(n int) Option {
	return func(c *config) {
		c.maxRetained = n
	}
}

// WithMinCapacity sets the smallest capacity handed out by Get.
func WithMinCapacity(n int) Option {
	return func(c *config) {
		c.minCapacity = n
	}
}

// WithLogger attaches a logger; allocation and recycling events are
// reported at debug level.
func WithLogger(log *zap.Logger) Option {
	return func(c *config) {
		c.log = log
	}
}

// VecPool recycles *vec.Vec[T] instances across split sessions.
// Goroutine-safe; the vectors it hands out are not.
type VecPool[T any] struct {
	mu    sync.Mutex
	free  *queue.Queue
	cfg   config
	stats api.PoolStats
}

// NewVecPool creates a pool with the given options.
func NewVecPool[T any](opts ...Option) *VecPool[T] {
	cfg := config{
		maxRetained: 64,
		minCapacity: 64,
		log:         zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &VecPool[T]{
		free: queue.New(),
		cfg:  cfg,
	}
}

// Get returns an empty vector with at least the given free capacity,
// reusing a retained one when possible.
func (p *VecPool[T]) Get(capacity int) api.Vector[T] {
	if capacity < p.cfg.minCapacity {
		capacity = p.cfg.minCapacity
	}

	p.mu.Lock()
	var v *vec.Vec[T]
	if p.free.Length() > 0 {
		v = p.free.Remove().(*vec.Vec[T])
		p.stats.Recycled++
	}
	p.stats.InUse++
	if v == nil {
		p.stats.TotalAlloc++
	}
	p.mu.Unlock()

	if v == nil {
		p.cfg.log.Debug("vecpool alloc", zap.Int("capacity", capacity))
		return vec.WithCapacity[T](capacity)
	}
	if v.Cap() < capacity {
		v.Reserve(capacity)
	}
	p.cfg.log.Debug("vecpool reuse", zap.Int("capacity", v.Cap()))
	return v
}

// Put returns a vector to the pool. Vectors from other implementations
// are dropped rather than retained.
func (p *VecPool[T]) Put(v api.Vector[T]) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stats.TotalFree++
	if p.stats.InUse > 0 {
		p.stats.InUse--
	}

	tv, ok := v.(*vec.Vec[T])
	if !ok || p.free.Length() >= p.cfg.maxRetained {
		return
	}
	tv.Reset()
	p.free.Add(tv)
}

// Stats exposes allocation/reuse accounting.
func (p *VecPool[T]) Stats() api.PoolStats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stats
}

// Retained reports how many vectors sit on the free list.
func (p *VecPool[T]) Retained() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.free.Length()
}

// Instrument registers a stats probe under the given name and mirrors
// counters into the metrics registry on every snapshot.
func (p *VecPool[T]) Instrument(dp *control.DebugProbes, mr *control.MetricsRegistry, name string) {
	dp.RegisterProbe(name, func() any {
		s := p.Stats()
		if mr != nil {
			mr.Set(name+".total_alloc", s.TotalAlloc)
			mr.Set(name+".in_use", s.InUse)
			mr.Set(name+".recycled", s.Recycled)
		}
		return s
	})
}
