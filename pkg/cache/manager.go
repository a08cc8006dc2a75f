package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Sternrassler/queue-metrics/pkg/queue"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

var (
	// ErrCacheMiss indicates the requested key was not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrInvalidEntry indicates the cache entry is invalid or corrupted
	ErrInvalidEntry = errors.New("invalid cache entry")
)

// DefaultTTL is the retention used when NewManager gets a non-positive TTL.
const DefaultTTL = time.Hour

// Manager handles caching operations with Redis backend.
type Manager struct {
	redis *redis.Client
	ttl   time.Duration
	retry RetryConfig
}

// NewManager creates a new cache manager with Redis backend. ttl is how
// long saved summaries are retained.
func NewManager(redisClient *redis.Client, ttl time.Duration) *Manager {
	if redisClient == nil {
		panic("redis client cannot be nil")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{
		redis: redisClient,
		ttl:   ttl,
		retry: DefaultRetryConfig(),
	}
}

// SetRetryConfig replaces the retry policy for transient Redis errors.
func (m *Manager) SetRetryConfig(config RetryConfig) {
	m.retry = config
}

// Ping checks the Redis connection, retrying transient failures.
func (m *Manager) Ping(ctx context.Context) error {
	err := retryWithBackoff(ctx, "ping", m.retry, func() error {
		return m.redis.Ping(ctx).Err()
	})
	if err != nil {
		CacheErrors.WithLabelValues("ping").Inc()
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

// Get retrieves a cache entry by key.
// Returns ErrCacheMiss if the key doesn't exist or entry is expired.
func (m *Manager) Get(ctx context.Context, key ScenarioKey) (*Entry, error) {
	cacheKey := key.String()

	var data []byte
	err := retryWithBackoff(ctx, "get", m.retry, func() error {
		var err error
		data, err = m.redis.Get(ctx, cacheKey).Bytes()
		return err
	})
	if err != nil {
		if errors.Is(err, redis.Nil) {
			CacheMisses.Inc()
			return nil, ErrCacheMiss
		}
		CacheErrors.WithLabelValues("get").Inc()
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		CacheErrors.WithLabelValues("get").Inc()
		return nil, fmt.Errorf("%w: %v", ErrInvalidEntry, err)
	}

	if entry.IsExpired() {
		_ = m.Delete(ctx, key)
		CacheMisses.Inc()
		return nil, ErrCacheMiss
	}

	CacheHits.Inc()
	log.Debug().Str("key", cacheKey).Msg("Cache hit")

	return &entry, nil
}

// Set stores a cache entry with TTL based on the entry's Expires field.
// The entry will be automatically removed from Redis when it expires.
func (m *Manager) Set(ctx context.Context, key ScenarioKey, entry *Entry) error {
	if entry == nil {
		return fmt.Errorf("cache entry cannot be nil")
	}

	cacheKey := key.String()

	ttl := entry.TTL()
	if ttl <= 0 {
		// Already expired, don't cache
		return nil
	}

	data, err := json.Marshal(entry)
	if err != nil {
		CacheErrors.WithLabelValues("set").Inc()
		return fmt.Errorf("marshal cache entry: %w", err)
	}

	err = retryWithBackoff(ctx, "set", m.retry, func() error {
		return m.redis.Set(ctx, cacheKey, data, ttl).Err()
	})
	if err != nil {
		CacheErrors.WithLabelValues("set").Inc()
		return fmt.Errorf("redis set: %w", err)
	}

	log.Debug().Str("key", cacheKey).Dur("ttl", ttl).Msg("Cached summary")

	return nil
}

// Delete removes a cache entry.
func (m *Manager) Delete(ctx context.Context, key ScenarioKey) error {
	cacheKey := key.String()

	err := retryWithBackoff(ctx, "delete", m.retry, func() error {
		return m.redis.Del(ctx, cacheKey).Err()
	})
	if err != nil {
		CacheErrors.WithLabelValues("delete").Inc()
		return fmt.Errorf("redis del: %w", err)
	}

	return nil
}

// Touch extends the expiry of an existing cache entry.
func (m *Manager) Touch(ctx context.Context, key ScenarioKey, newExpires time.Time) error {
	entry, err := m.Get(ctx, key)
	if err != nil {
		return err
	}

	entry.Expires = newExpires

	return m.Set(ctx, key, entry)
}

// Lookup returns the cached summary of a scenario.
func (m *Manager) Lookup(ctx context.Context, s queue.Scenario) (queue.Summary, error) {
	entry, err := m.Get(ctx, KeyFor(s))
	if err != nil {
		return queue.Summary{}, err
	}
	return entry.Summary, nil
}

// Save caches the summary of a scenario for the manager's TTL.
func (m *Manager) Save(ctx context.Context, s queue.Scenario, summary queue.Summary) error {
	now := time.Now()
	return m.Set(ctx, KeyFor(s), &Entry{
		Summary:  summary,
		Expires:  now.Add(m.ttl),
		CachedAt: now,
	})
}
