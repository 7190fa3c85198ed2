// Package conversion holds the shared USD rate published by the rates pipeline
// and the helper that converts user amounts with it.
package conversion

import (
	"context"
	"math"
	"sync/atomic"
)

// Store is a single-slot holder for the last published USD rate.
// Get returns 0 when nothing has been published.
type Store interface {
	Set(ctx context.Context, rate float64) error
	Get(ctx context.Context) (float64, error)
}

var _ Store = (*MemoryStore)(nil)

// MemoryStore keeps the rate in process memory.
type MemoryStore struct {
	bits atomic.Uint64
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Set replaces the stored rate.
func (s *MemoryStore) Set(_ context.Context, rate float64) error {
	s.bits.Store(math.Float64bits(rate))
	return nil
}

// Get returns the stored rate.
func (s *MemoryStore) Get(_ context.Context) (float64, error) {
	return math.Float64frombits(s.bits.Load()), nil
}
