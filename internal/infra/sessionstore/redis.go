package sessionstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"tidybook/internal/domain/booking"
	"tidybook/internal/infra"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "tidybook:draft:"

// Redis stores draft sessions as JSON blobs with a TTL, for deployments
// that want drafts to survive a process restart within the session window.
type Redis struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{rdb: client, ttl: ttl}
}

func (r *Redis) Get(ctx context.Context, id uuid.UUID) (*booking.Draft, error) {
	raw, err := r.rdb.Get(ctx, redisKeyPrefix+id.String()).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, infra.WrapRepoErr("draft session not found", nil, infra.KindNotFound)
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get draft session", err)
	}

	var draft booking.Draft
	if err := json.Unmarshal(raw, &draft); err != nil {
		return nil, infra.WrapRepoErr("failed to decode draft session", err, infra.KindBadData)
	}
	return &draft, nil
}

func (r *Redis) Put(ctx context.Context, id uuid.UUID, draft *booking.Draft) error {
	raw, err := json.Marshal(draft)
	if err != nil {
		return infra.WrapRepoErr("failed to encode draft session", err, infra.KindBadData)
	}

	if err := r.rdb.Set(ctx, redisKeyPrefix+id.String(), raw, r.ttl).Err(); err != nil {
		return infra.WrapRepoErr("failed to store draft session", err)
	}
	return nil
}

func (r *Redis) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := r.rdb.Del(ctx, redisKeyPrefix+id.String()).Result()
	if err != nil {
		return infra.WrapRepoErr("failed to delete draft session", err)
	}
	if deleted == 0 {
		return infra.WrapRepoErr("draft session not found", nil, infra.KindNotFound)
	}
	return nil
}
