package cms

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Triaksa-Space/anchorpoint-web/pkg/logger"
	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

const cacheKeyPrefix = "cms:listing:"

// Store holds listing snapshots by key.
type Store interface {
	Get(ctx context.Context, key string) (Listing, bool, error)
	Set(ctx context.Context, key string, listing Listing, ttl time.Duration) error
}

// MemoryStore keeps snapshots in process.
type MemoryStore struct {
	cache *gocache.Cache
}

// NewMemoryStore creates an in-process store that purges expired entries
// every cleanupInterval.
func NewMemoryStore(cleanupInterval time.Duration) *MemoryStore {
	return &MemoryStore{cache: gocache.New(gocache.NoExpiration, cleanupInterval)}
}

func (s *MemoryStore) Get(_ context.Context, key string) (Listing, bool, error) {
	v, ok := s.cache.Get(key)
	if !ok {
		return Listing{}, false, nil
	}
	listing, ok := v.(Listing)
	return listing, ok, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, listing Listing, ttl time.Duration) error {
	s.cache.Set(key, listing, ttl)
	return nil
}

// RedisStore shares snapshots between site instances.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore wraps an already connected client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, key string) (Listing, bool, error) {
	raw, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return Listing{}, false, nil
	}
	if err != nil {
		return Listing{}, false, fmt.Errorf("redis get %s: %w", key, err)
	}
	var listing Listing
	if err := json.Unmarshal(raw, &listing); err != nil {
		return Listing{}, false, fmt.Errorf("decode cached listing %s: %w", key, err)
	}
	return listing, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, listing Listing, ttl time.Duration) error {
	raw, err := json.Marshal(listing)
	if err != nil {
		return fmt.Errorf("encode listing %s: %w", key, err)
	}
	if err := s.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// CachedLister serves snapshots from a Store for ttl after a successful fetch.
// Failures are never stored. Concurrent misses for one entity type share a
// single upstream call.
type CachedLister struct {
	next  Lister
	store Store
	ttl   time.Duration
	group singleflight.Group
	log   logger.Logger
}

// NewCachedLister returns next unchanged when ttl is not positive.
func NewCachedLister(next Lister, store Store, ttl time.Duration, log logger.Logger) Lister {
	if ttl <= 0 || store == nil {
		return next
	}
	if log == nil {
		log = logger.Get()
	}
	return &CachedLister{
		next:  next,
		store: store,
		ttl:   ttl,
		log:   log.WithComponent("cms.cache"),
	}
}

func (c *CachedLister) ListAll(ctx context.Context, entityType string) (Listing, error) {
	key := cacheKeyPrefix + entityType

	if listing, ok, err := c.store.Get(ctx, key); err != nil {
		c.log.Warn("Cache read failed, going upstream", logger.EntityType(entityType), logger.Err(err))
	} else if ok {
		return listing, nil
	}

	ch := c.group.DoChan(key, func() (interface{}, error) {
		// Detached so one caller leaving does not fail the others sharing the call.
		fetchCtx := context.WithoutCancel(ctx)
		listing, err := c.next.ListAll(fetchCtx, entityType)
		if err != nil {
			return Listing{}, err
		}
		if err := c.store.Set(fetchCtx, key, listing, c.ttl); err != nil {
			c.log.Warn("Cache write failed", logger.EntityType(entityType), logger.Err(err))
		}
		return listing, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return Listing{}, res.Err
		}
		return res.Val.(Listing), nil
	case <-ctx.Done():
		return Listing{}, fetchFailed(entityType, CauseTransport, 0, ctx.Err())
	}
}
