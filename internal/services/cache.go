package services

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// CacheStore memoizes fetch results within a freshness window. A miss is not
// an error; Get simply reports false.
type CacheStore interface {
	Get(key string, dest interface{}) bool
	Set(key string, value interface{}, ttl time.Duration)
}

// MemoryCache is the default store: a flat map with lazy expiry on read, no
// eviction and no size bound. The key corpus is small and bounded by the
// process lifetime, so that is acceptable here.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	logger  *logrus.Logger
	Clock   func() time.Time
}

type memoryEntry struct {
	data     []byte
	storedAt time.Time
	ttl      time.Duration
}

// NewMemoryCache creates an in-memory cache store
func NewMemoryCache(logger *logrus.Logger) *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]memoryEntry),
		logger:  logger,
		Clock:   time.Now,
	}
}

func (c *MemoryCache) Get(key string, dest interface{}) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return false
	}
	if c.Clock().Sub(entry.storedAt) >= entry.ttl {
		delete(c.entries, key)
		return false
	}
	if err := json.Unmarshal(entry.data, dest); err != nil {
		c.logger.WithError(err).WithField("key", key).Warn("Failed to unmarshal cached value")
		delete(c.entries, key)
		return false
	}
	return true
}

func (c *MemoryCache) Set(key string, value interface{}, ttl time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		c.logger.WithError(err).WithField("key", key).Warn("Failed to marshal cache value")
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = memoryEntry{data: data, storedAt: c.Clock(), ttl: ttl}
}

// Len returns the number of stored entries, expired or not
func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// RedisCache is an optional store backed by Redis, for deployments that run
// more than one instance behind a balancer. Selected by setting REDIS_URL.
type RedisCache struct {
	client *redis.Client
	logger *logrus.Logger
}

// NewRedisCache creates a Redis-backed cache store
func NewRedisCache(client *redis.Client, logger *logrus.Logger) *RedisCache {
	return &RedisCache{client: client, logger: logger}
}

func (c *RedisCache) Get(key string, dest interface{}) bool {
	data, err := c.client.Get(context.Background(), key).Result()
	if err != nil {
		if err != redis.Nil {
			c.logger.WithError(err).WithField("key", key).Warn("Redis get failed")
		}
		return false
	}
	if err := json.Unmarshal([]byte(data), dest); err != nil {
		c.logger.WithError(err).WithField("key", key).Warn("Failed to unmarshal cached value")
		return false
	}
	return true
}

func (c *RedisCache) Set(key string, value interface{}, ttl time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		c.logger.WithError(err).WithField("key", key).Warn("Failed to marshal cache value")
		return
	}
	if err := c.client.Set(context.Background(), key, data, ttl).Err(); err != nil {
		c.logger.WithError(err).WithField("key", key).Warn("Redis set failed")
	}
}
