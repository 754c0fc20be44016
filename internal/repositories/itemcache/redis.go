package itemcache

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/0niSec/cephalon-seraph/internal/domain/item"
	apperrors "github.com/0niSec/cephalon-seraph/internal/errors"
	"github.com/redis/go-redis/v9"
)

type redisRepo struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewRedis creates a Redis item cache whose entries live for ttl
func NewRedis(client redis.UniversalClient, ttl time.Duration) Repository {
	if client == nil {
		panic("redis client is required")
	}
	return &redisRepo{client: client, ttl: ttl}
}

func cacheKey(name string) string {
	return "item:" + strings.ToLower(strings.TrimSpace(name))
}

func (r *redisRepo) Get(ctx context.Context, name string) (*item.Record, error) {
	jsonData, err := r.client.Get(ctx, cacheKey(name)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.NotFoundf("item %q not cached", name)
		}
		return nil, apperrors.Wrapf(err, "failed to read cached item %q", name)
	}

	var rec item.Record
	if err := json.Unmarshal(jsonData, &rec); err != nil {
		return nil, apperrors.Wrapf(err, "failed to unmarshal cached item %q", name)
	}
	return &rec, nil
}

func (r *redisRepo) Set(ctx context.Context, name string, record *item.Record) error {
	if record == nil {
		return apperrors.InvalidArgument("record cannot be nil")
	}

	jsonData, err := json.Marshal(record)
	if err != nil {
		return apperrors.Wrapf(err, "failed to marshal item %q", name)
	}

	if err := r.client.Set(ctx, cacheKey(name), string(jsonData), r.ttl).Err(); err != nil {
		return apperrors.Wrapf(err, "failed to cache item %q", name)
	}
	return nil
}
