package cardsessions

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sort"
	"time"

	"github.com/0niSec/cephalon-seraph/internal/card"
	"github.com/0niSec/cephalon-seraph/internal/domain/item"
	apperrors "github.com/0niSec/cephalon-seraph/internal/errors"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "card_session:"
	indexKey  = "card_sessions"

	// DefaultRetention bounds how long a snapshot outlives a crashed process
	DefaultRetention = 24 * time.Hour
)

// Data is the serialized form of a snapshot in Redis
type Data struct {
	ID           string       `json:"id"`
	Instance     string       `json:"instance,omitempty"`
	ChannelID    string       `json:"channel_id"`
	MessageID    string       `json:"message_id"`
	Record       *item.Record `json:"record"`
	View         string       `json:"view"`
	Page         int          `json:"page"`
	ComponentKey string       `json:"component_key,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	ExpiresAt    time.Time    `json:"expires_at"`
}

type redisRepo struct {
	client    redis.UniversalClient
	retention time.Duration
}

// RedisConfig holds the Redis repository dependencies
type RedisConfig struct {
	Client    redis.UniversalClient
	Retention time.Duration
}

// NewRedis creates a Redis-backed snapshot repository with the default retention
func NewRedis(client redis.UniversalClient) Repository {
	return NewRedisRepository(&RedisConfig{Client: client, Retention: DefaultRetention})
}

// NewRedisRepository creates a Redis-backed snapshot repository
func NewRedisRepository(cfg *RedisConfig) Repository {
	if cfg == nil || cfg.Client == nil {
		panic("redis client is required")
	}
	retention := cfg.Retention
	if retention <= 0 {
		retention = DefaultRetention
	}
	return &redisRepo{client: cfg.Client, retention: retention}
}

func snapshotKey(id string) string {
	return keyPrefix + id
}

func (r *redisRepo) Save(ctx context.Context, snapshot *Snapshot) error {
	if snapshot == nil {
		return apperrors.InvalidArgument("snapshot cannot be nil")
	}
	if snapshot.ID == "" {
		return apperrors.InvalidArgument("snapshot ID is required")
	}

	jsonData, err := json.Marshal(toData(snapshot))
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal card session")
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, snapshotKey(snapshot.ID), string(jsonData), r.retention)
	pipe.SAdd(ctx, indexKey, snapshot.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return apperrors.Wrapf(err, "failed to save card session %s", snapshot.ID)
	}
	return nil
}

func (r *redisRepo) Get(ctx context.Context, id string) (*Snapshot, error) {
	jsonData, err := r.client.Get(ctx, snapshotKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.NotFoundf("card session %s not found", id).WithMeta("session_id", id)
		}
		return nil, apperrors.Wrapf(err, "failed to get card session %s", id)
	}

	var data Data
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, apperrors.Wrapf(err, "failed to unmarshal card session %s", id)
	}
	return fromData(&data), nil
}

func (r *redisRepo) Delete(ctx context.Context, id string) error {
	pipe := r.client.Pipeline()
	pipe.Del(ctx, snapshotKey(id))
	pipe.SRem(ctx, indexKey, id)
	if _, err := pipe.Exec(ctx); err != nil {
		return apperrors.Wrapf(err, "failed to delete card session %s", id)
	}
	return nil
}

// List returns every indexed snapshot. Index entries whose snapshot has
// lapsed are pruned, and values that do not decode are skipped.
func (r *redisRepo) List(ctx context.Context) ([]*Snapshot, error) {
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list card sessions")
	}
	if len(ids) == 0 {
		return nil, nil
	}
	sort.Strings(ids)

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = snapshotKey(id)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to load card sessions")
	}

	snapshots := make([]*Snapshot, 0, len(values))
	var lapsed []interface{}
	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			lapsed = append(lapsed, ids[i])
			continue
		}
		var data Data
		if err := json.Unmarshal([]byte(raw), &data); err != nil {
			log.Printf("[CardSessions] Skipping card session %s: %v", ids[i], err)
			continue
		}
		snapshots = append(snapshots, fromData(&data))
	}

	if len(lapsed) > 0 {
		if err := r.client.SRem(ctx, indexKey, lapsed...).Err(); err != nil {
			log.Printf("[CardSessions] Failed to prune %d lapsed card sessions: %v", len(lapsed), err)
		}
	}
	return snapshots, nil
}

func toData(s *Snapshot) *Data {
	return &Data{
		ID:           s.ID,
		Instance:     s.Instance,
		ChannelID:    s.ChannelID,
		MessageID:    s.MessageID,
		Record:       s.Record,
		View:         s.View.String(),
		Page:         s.Page,
		ComponentKey: s.ComponentKey,
		CreatedAt:    s.CreatedAt,
		ExpiresAt:    s.ExpiresAt,
	}
}

func fromData(d *Data) *Snapshot {
	view, ok := card.ParseViewKind(d.View)
	if !ok {
		view = card.BasicInfo
	}
	return &Snapshot{
		ID:           d.ID,
		Instance:     d.Instance,
		ChannelID:    d.ChannelID,
		MessageID:    d.MessageID,
		Record:       d.Record,
		View:         view,
		Page:         d.Page,
		ComponentKey: d.ComponentKey,
		CreatedAt:    d.CreatedAt,
		ExpiresAt:    d.ExpiresAt,
	}
}

