package middleware

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/0niSec/cephalon-seraph/internal/discord/core"
	"github.com/redis/go-redis/v9"
)

// RateLimitConfig caps slash commands per user in a fixed window. Card clicks
// and autocomplete are never counted.
type RateLimitConfig struct {
	// MaxRequests of zero or less disables the limit
	MaxRequests int
	Window      time.Duration
	// Store defaults to an in-process counter
	Store RateLimitStore
}

// RateLimitStore counts hits per key
type RateLimitStore interface {
	// Increment counts a hit and returns the hits so far in the key's window
	Increment(ctx context.Context, key string, window time.Duration) (int, error)
}

// RateLimitMiddleware answers over-limit commands with a private notice
func RateLimitMiddleware(config *RateLimitConfig) core.Middleware {
	store := config.Store
	if store == nil {
		store = NewMemoryRateLimitStore()
	}
	notice := fmt.Sprintf("⏱️ You're doing that too fast! Please wait %v before trying again.", config.Window)

	return func(next core.Handler) core.Handler {
		return core.HandlerFunc(func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
			if !ctx.IsCommand() || config.MaxRequests <= 0 {
				return next.Handle(ctx)
			}

			count, err := store.Increment(ctx.Context, ctx.UserID, config.Window)
			switch {
			case err != nil:
				// Fail open
				log.Printf("[RateLimit] Failed to count request for %s: %v", ctx.UserID, err)
			case count > config.MaxRequests:
				return &core.HandlerResult{Response: core.NewEphemeralResponse(notice)}, nil
			}
			return next.Handle(ctx)
		})
	}
}

// MemoryRateLimitStore keeps windows in process
type MemoryRateLimitStore struct {
	mu      sync.Mutex
	windows map[string]window
	now     func() time.Time
}

type window struct {
	hits int
	ends time.Time
}

func NewMemoryRateLimitStore() *MemoryRateLimitStore {
	return &MemoryRateLimitStore{
		windows: make(map[string]window),
		now:     time.Now,
	}
}

// Increment also drops every finished window so idle users do not pile up
func (s *MemoryRateLimitStore) Increment(_ context.Context, key string, length time.Duration) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for k, w := range s.windows {
		if now.After(w.ends) {
			delete(s.windows, k)
		}
	}

	w, ok := s.windows[key]
	if !ok {
		w.ends = now.Add(length)
	}
	w.hits++
	s.windows[key] = w
	return w.hits, nil
}

// RedisRateLimitStore shares windows between bot replicas
type RedisRateLimitStore struct {
	client redis.UniversalClient
}

func NewRedisRateLimitStore(client redis.UniversalClient) *RedisRateLimitStore {
	return &RedisRateLimitStore{client: client}
}

// Increment uses INCR and starts the window with EXPIRE on the first hit
func (s *RedisRateLimitStore) Increment(ctx context.Context, key string, length time.Duration) (int, error) {
	redisKey := "ratelimit:" + key

	hits, err := s.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment %s: %w", redisKey, err)
	}
	if hits == 1 {
		if err := s.client.Expire(ctx, redisKey, length).Err(); err != nil {
			return 0, fmt.Errorf("failed to set expiry on %s: %w", redisKey, err)
		}
	}
	return int(hits), nil
}
