package kvstore

import (
	"context"
	"sync"

	basecache "github.com/riskibarqy/turma-roster/internal/platform/cache"
)

// Cached is a read-through decorator. Reads go through the cache with
// single-flight loading; writes reach the backend first and then drop the
// affected keys. Writes exclude in-flight loads so a load that raced a write
// never repopulates the cache with the old value.
type Cached struct {
	next  Store
	cache *basecache.Store
	mu    sync.RWMutex
}

var _ Store = (*Cached)(nil)

type cachedValue struct {
	value string
	ok    bool
}

const cachePrefix = "kv:"

// NewCached wraps next. The result implements Batcher only when next does.
func NewCached(next Store, cache *basecache.Store) Store {
	c := &Cached{next: next, cache: cache}
	if batcher, ok := next.(Batcher); ok {
		return cachedBatcher{Cached: c, batcher: batcher}
	}
	return c
}

func (c *Cached) Get(ctx context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, ErrEmptyKey
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	v, err := c.cache.GetOrLoad(ctx, cachePrefix+key, func(ctx context.Context) (any, error) {
		value, ok, err := c.next.Get(ctx, key)
		if err != nil {
			return nil, err
		}
		return cachedValue{value: value, ok: ok}, nil
	})
	if err != nil {
		return "", false, err
	}

	cached, _ := v.(cachedValue)
	return cached.value, cached.ok, nil
}

func (c *Cached) Set(ctx context.Context, key, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.next.Set(ctx, key, value); err != nil {
		return err
	}
	c.cache.Delete(ctx, cachePrefix+key)

	return nil
}

func (c *Cached) Remove(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.next.Remove(ctx, key); err != nil {
		return err
	}
	c.cache.Delete(ctx, cachePrefix+key)

	return nil
}

// Keys is never cached: it is only used for diagnostics.
func (c *Cached) Keys(ctx context.Context) ([]string, error) {
	return c.next.Keys(ctx)
}

type cachedBatcher struct {
	*Cached
	batcher Batcher
}

var _ Batcher = cachedBatcher{}

func (c cachedBatcher) Apply(ctx context.Context, ops ...Op) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.batcher.Apply(ctx, ops...); err != nil {
		return err
	}

	keys := make([]string, 0, len(ops))
	for _, op := range ops {
		keys = append(keys, cachePrefix+op.Key)
	}
	c.cache.Delete(ctx, keys...)

	return nil
}
