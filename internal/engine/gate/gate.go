// Package gate bounds how many external commands run simultaneously.
package gate

import (
	"context"
	"sync"

	"go.trai.ch/shipit/internal/core/domain"
	"golang.org/x/sync/semaphore"
)

// Gate is a counting semaphore admitting external commands. Waiters are
// served in FIFO order and at most Capacity commands are in flight; a
// command's completion frees its slot immediately.
type Gate struct {
	mu       sync.RWMutex
	sem      *semaphore.Weighted
	capacity int
}

// New creates a Gate with the given in-flight cap. A non-positive capacity
// falls back to the default.
func New(capacity int) *Gate {
	if capacity <= 0 {
		capacity = domain.DefaultGateCapacity
	}
	return &Gate{
		sem:      semaphore.NewWeighted(int64(capacity)),
		capacity: capacity,
	}
}

// SetCapacity replaces the semaphore with one of the given capacity. It must
// be called before any command is admitted.
func (g *Gate) SetCapacity(capacity int) {
	if capacity <= 0 {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.sem = semaphore.NewWeighted(int64(capacity))
	g.capacity = capacity
}

// Capacity returns the configured in-flight cap.
func (g *Gate) Capacity() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.capacity
}

// Do runs fn while holding a slot, blocking until one is free.
func (g *Gate) Do(ctx context.Context, fn func() error) error {
	g.mu.RLock()
	sem := g.sem
	g.mu.RUnlock()

	if err := sem.Acquire(ctx, 1); err != nil {
		return err
	}
	defer sem.Release(1)
	return fn()
}
