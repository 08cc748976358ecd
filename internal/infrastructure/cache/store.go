package cache

import (
	"context"
	"time"
)

// Store is a small JSON-value cache used for read-through caching of
// dashboard aggregates. Get reports a miss with (false, nil).
type Store interface {
	Get(ctx context.Context, key string, target interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
