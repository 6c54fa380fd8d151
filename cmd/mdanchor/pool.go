package main

import (
	"runtime"
	"sync"
)

// ConverterPool hands out converters to batch workers.
// Converters are created lazily on first acquire by the factory.
type ConverterPool struct {
	size    int
	factory func() CLIConverter
	sem     chan CLIConverter
	mu      sync.Mutex
	created int
	closed  bool
}

// NewConverterPool creates a pool with capacity for n converters.
// Converters are created when acquired, not at pool creation.
func NewConverterPool(n int, factory func() CLIConverter) *ConverterPool {
	if n < 1 {
		n = 1
	}

	return &ConverterPool{
		size:    n,
		factory: factory,
		sem:     make(chan CLIConverter, n),
	}
}

// Compile-time check that ConverterPool implements Pool.
var _ Pool = (*ConverterPool)(nil)

// Acquire gets a converter from the pool, creating one if needed.
// Blocks if all converters are in use.
func (p *ConverterPool) Acquire() CLIConverter {
	select {
	case c := <-p.sem:
		return c
	default:
	}

	p.mu.Lock()
	if p.created < p.size {
		p.created++
		p.mu.Unlock()
		return p.factory()
	}
	p.mu.Unlock()

	return <-p.sem
}

// Release returns a converter to the pool.
func (p *ConverterPool) Release(c CLIConverter) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.closed && c != nil {
		p.sem <- c
	}
}

// Close stops accepting released converters.
func (p *ConverterPool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	p.closed = true
	close(p.sem)
}

// Size returns the pool capacity.
func (p *ConverterPool) Size() int {
	return p.size
}

// resolvePoolSize determines the worker count.
// Priority: explicit flag > GOMAXPROCS-based calculation.
func resolvePoolSize(flagWorkers int) int {
	if flagWorkers > 0 {
		return flagWorkers
	}

	// GOMAXPROCS is adjusted by automaxprocs for containers.
	n := runtime.GOMAXPROCS(0) / 2
	if n < 1 {
		return 1
	}
	if n > 8 {
		return 8
	}
	return n
}
