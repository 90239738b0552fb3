package http

import (
	"sync"
	"time"

	"droncakes/internal/core/domain/model/kernel"

	gocache "github.com/patrickmn/go-cache"
)

const DefaultIdempotencyTTL = 10 * time.Minute

// IdempotencyCache remembers the id of the order created for each
// Idempotency-Key so a retried POST does not book a second drone.
type IdempotencyCache struct {
	mu    sync.Mutex
	cache *gocache.Cache
}

func NewIdempotencyCache(ttl time.Duration) *IdempotencyCache {
	if ttl <= 0 {
		ttl = DefaultIdempotencyTTL
	}
	return &IdempotencyCache{cache: gocache.New(ttl, 2*ttl)}
}

// Do returns the order id stored under key, or runs create and stores the id
// it returns. Calls with the same key are serialized. Failed creations are not stored.
func (c *IdempotencyCache) Do(key string, create func() (kernel.ID, error)) (kernel.ID, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if value, found := c.cache.Get(key); found {
		if id, ok := value.(kernel.ID); ok {
			return id, true, nil
		}
	}

	id, err := create()
	if err != nil {
		return 0, false, err
	}

	c.cache.SetDefault(key, id)

	return id, false, nil
}

// Flush forgets every key. Used when the store is reset.
func (c *IdempotencyCache) Flush() {
	c.cache.Flush()
}
