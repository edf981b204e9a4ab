package booking

import (
	"context"
	"sync"
)

// SubmitGuard excludes overlapping booking submissions for the same key.
// Acquire returns false when a submission is already in flight; Release frees
// the key once the submission has a definite outcome. Implementations with a
// TTL (see the cache package) additionally guarantee that a stuck submission
// cannot keep the submit action disabled forever.
type SubmitGuard interface {
	Acquire(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
}

// MemoryGuard is the in-process SubmitGuard used for single-replica
// deployments and tests.
type MemoryGuard struct {
	mu       sync.Mutex
	inFlight map[string]bool
}

func NewMemoryGuard() *MemoryGuard {
	return &MemoryGuard{inFlight: make(map[string]bool)}
}

func (g *MemoryGuard) Acquire(_ context.Context, key string) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.inFlight[key] {
		return false, nil
	}
	g.inFlight[key] = true
	return true, nil
}

func (g *MemoryGuard) Release(_ context.Context, key string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.inFlight, key)
	return nil
}
