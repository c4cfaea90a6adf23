package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	appErrors "github.com/noah-isme/sma-adp-views/pkg/errors"
)

type memoryEntry struct {
	payload   []byte
	expiresAt time.Time
}

// MemoryCacheRepository is an in-process, size bounded alternative to CacheRepository.
// Values are stored JSON encoded so readers never share memory with writers.
type MemoryCacheRepository struct {
	cache *lru.Cache[string, memoryEntry]
	now   func() time.Time
}

// NewMemoryCacheRepository constructs an LRU backed cache holding at most size entries.
func NewMemoryCacheRepository(size int) (*MemoryCacheRepository, error) {
	if size <= 0 {
		size = 1024
	}
	cache, err := lru.New[string, memoryEntry](size)
	if err != nil {
		return nil, fmt.Errorf("init lru cache: %w", err)
	}
	return &MemoryCacheRepository{cache: cache, now: time.Now}, nil
}

// Get retrieves and unmarshals the cached value into the provided destination.
func (r *MemoryCacheRepository) Get(_ context.Context, key string, dest interface{}) error {
	entry, ok := r.cache.Get(key)
	if !ok {
		return appErrors.ErrCacheMiss
	}
	if !entry.expiresAt.IsZero() && r.now().After(entry.expiresAt) {
		r.cache.Remove(key)
		return appErrors.ErrCacheMiss
	}
	if err := json.Unmarshal(entry.payload, dest); err != nil {
		return fmt.Errorf("unmarshal cache value for %s: %w", key, err)
	}
	return nil
}

// Set marshals the provided value and stores it with the given TTL. A zero TTL never expires.
func (r *MemoryCacheRepository) Set(_ context.Context, key string, value interface{}, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal cache value for %s: %w", key, err)
	}
	entry := memoryEntry{payload: payload}
	if ttl > 0 {
		entry.expiresAt = r.now().Add(ttl)
	}
	r.cache.Add(key, entry)
	return nil
}

// DeleteByPattern removes entries whose key matches the glob pattern.
func (r *MemoryCacheRepository) DeleteByPattern(_ context.Context, pattern string) error {
	for _, key := range r.cache.Keys() {
		matched, err := path.Match(pattern, key)
		if err != nil {
			return fmt.Errorf("match pattern %s: %w", pattern, err)
		}
		if matched {
			r.cache.Remove(key)
		}
	}
	return nil
}

// Len reports the number of cached entries, including expired ones not yet evicted.
func (r *MemoryCacheRepository) Len() int {
	return r.cache.Len()
}

// Close purges the cache.
func (r *MemoryCacheRepository) Close() error {
	r.cache.Purge()
	return nil
}
