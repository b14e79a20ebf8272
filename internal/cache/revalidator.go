// Package cache invalidates rendered-page cache entries after mutations, so
// stale listings (the profile page, an event detail page) get re-rendered on
// the next request.
package cache

import (
	"context"
	"sync"

	"github.com/redis/go-redis/v9"
)

// Revalidator invalidates the cached render of a path
type Revalidator interface {
	Revalidate(ctx context.Context, path string) error
}

const keyPrefix = "page:"

// RedisRevalidator implements Revalidator against a shared Redis instance
type RedisRevalidator struct {
	client *redis.Client
}

// NewRedisRevalidator creates a new RedisRevalidator
func NewRedisRevalidator(client *redis.Client) *RedisRevalidator {
	return &RedisRevalidator{client: client}
}

// Revalidate drops the cached render for path
func (r *RedisRevalidator) Revalidate(ctx context.Context, path string) error {
	return r.client.Del(ctx, keyPrefix+path).Err()
}

// MockRevalidator records revalidated paths for tests
type MockRevalidator struct {
	mu    sync.Mutex
	Paths []string
}

// NewMockRevalidator creates a new MockRevalidator
func NewMockRevalidator() *MockRevalidator {
	return &MockRevalidator{}
}

// Revalidate records the path
func (r *MockRevalidator) Revalidate(ctx context.Context, path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Paths = append(r.Paths, path)
	return nil
}
