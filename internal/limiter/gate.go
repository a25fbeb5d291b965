package limiter

import (
	"context"

	"golang.org/x/sync/semaphore"
)

// Gate is a bounded admission gate shared by the callers of one service
// class. Acquire blocks when the gate is saturated; work is never dropped.
type Gate struct {
	sem  *semaphore.Weighted
	size int
}

// NewGate creates a gate admitting at most size concurrent holders.
func NewGate(size int) *Gate {
	if size < 1 {
		size = 1
	}
	return &Gate{
		sem:  semaphore.NewWeighted(int64(size)),
		size: size,
	}
}

// Acquire blocks until a slot is free or the context is cancelled.
func (g *Gate) Acquire(ctx context.Context) error {
	return g.sem.Acquire(ctx, 1)
}

// Release frees a previously acquired slot.
func (g *Gate) Release() {
	g.sem.Release(1)
}

// Size returns the gate's admission ceiling.
func (g *Gate) Size() int {
	return g.size
}
