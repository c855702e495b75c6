// Package cache provides the process-wide TTL cache used by the fetch
// layers. It is injected as a dependency so tests can substitute Noop.
package cache

import (
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/ristretto"
)

// Store caches computed values by key with a per-entry TTL. Only successful
// computations are cached; a compute error is returned to the caller and
// the next call recomputes.
type Store interface {
	GetOrCompute(key string, ttl time.Duration, compute func() (any, error)) (any, error)
}

// Key builds a canonical cache key from the call arguments.
func Key(parts ...any) string {
	strs := make([]string, len(parts))
	for i, p := range parts {
		strs[i] = fmt.Sprintf("%v", p)
	}
	return strings.Join(strs, "|")
}

// GetOrCompute is a typed convenience wrapper around Store.GetOrCompute.
func GetOrCompute[T any](s Store, key string, ttl time.Duration, compute func() (T, error)) (T, error) {
	v, err := s.GetOrCompute(key, ttl, func() (any, error) {
		return compute()
	})
	if err != nil {
		var zero T
		return zero, err
	}
	typed, ok := v.(T)
	if !ok {
		// A key collision across mismatched types; recompute directly.
		return compute()
	}
	return typed, nil
}

const (
	defaultNumCounters = 1e5
	defaultMaxCost     = 1 << 26
	defaultBufferItems = 64
)

// Memory is a ristretto-backed Store. Cache writes are idempotent (same
// key always maps to the same value within a TTL window), so concurrent
// computes for the same key are harmless.
type Memory struct {
	cache *ristretto.Cache
}

// NewMemory creates a Memory store with default sizing.
func NewMemory() (*Memory, error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: defaultNumCounters,
		MaxCost:     defaultMaxCost,
		BufferItems: defaultBufferItems,
	})
	if err != nil {
		return nil, fmt.Errorf("create cache: %w", err)
	}
	return &Memory{cache: c}, nil
}

// GetOrCompute returns the cached value for key if present, otherwise runs
// compute and caches its result for ttl.
func (m *Memory) GetOrCompute(key string, ttl time.Duration, compute func() (any, error)) (any, error) {
	if v, ok := m.cache.Get(key); ok {
		return v, nil
	}
	v, err := compute()
	if err != nil {
		return nil, err
	}
	m.cache.SetWithTTL(key, v, 1, ttl)
	m.cache.Wait()
	return v, nil
}

// Close releases the cache resources.
func (m *Memory) Close() {
	m.cache.Close()
}

// Noop always recomputes. Used in tests and as a safe zero-config default.
type Noop struct{}

func (Noop) GetOrCompute(_ string, _ time.Duration, compute func() (any, error)) (any, error) {
	return compute()
}
