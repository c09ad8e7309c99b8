package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	cacheKeyPrefix  = "farmacia:catalog:"
	cacheIndexKey   = cacheKeyPrefix + "keys"
	cacheVersionKey = cacheKeyPrefix + "version"
)

// CacheRepository stores serialized list responses in redis. Every key it
// writes is tracked in an index set so Invalidate can drop them together.
// Invalidate also bumps a version counter; Set watches it and skips the
// write when it moved.
type CacheRepository struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewCacheRepository(rdb *redis.Client, ttl time.Duration) *CacheRepository {
	return &CacheRepository{rdb: rdb, ttl: ttl}
}

func (r *CacheRepository) Get(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := r.rdb.Get(ctx, cacheKeyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (r *CacheRepository) Version(ctx context.Context) (int64, error) {
	v, err := r.rdb.Get(ctx, cacheVersionKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return v, err
}

func (r *CacheRepository) Set(ctx context.Context, key string, value any, version int64) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	err = r.rdb.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, cacheVersionKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != version {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, cacheKeyPrefix+key, raw, r.ttl)
			pipe.SAdd(ctx, cacheIndexKey, cacheKeyPrefix+key)
			return nil
		})
		return err
	}, cacheVersionKey)
	if errors.Is(err, redis.TxFailedErr) {
		// invalidated between the check and the write
		return nil
	}
	return err
}

func (r *CacheRepository) Invalidate(ctx context.Context) error {
	if err := r.rdb.Incr(ctx, cacheVersionKey).Err(); err != nil {
		return err
	}
	keys, err := r.rdb.SMembers(ctx, cacheIndexKey).Result()
	if err != nil {
		return err
	}
	return r.rdb.Del(ctx, append(keys, cacheIndexKey)...).Err()
}
