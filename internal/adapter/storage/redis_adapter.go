package storage

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dkaya/relief-ledger/internal/core/domain"
)

const (
	snapshotKeyPrefix = "district:"
	snapshotKeySuffix = ":inventory"
	resolveKeyPrefix  = "resolve:"

	resolveGuardTTL = 24 * time.Hour
	snapshotTTL     = 5 * time.Minute
)

// RedisAdapter keeps the read-path inventory snapshots and the resolve
// idempotency guards. The database stays authoritative; everything here can
// be rebuilt from it.
type RedisAdapter struct {
	client *redis.Client
}

func NewRedisAdapter(client *redis.Client) *RedisAdapter {
	return &RedisAdapter{client: client}
}

func resolveGuardKey(requestID int64) string {
	return resolveKeyPrefix + strconv.FormatInt(requestID, 10)
}

func snapshotKey(districtID int64) string {
	return snapshotKeyPrefix + strconv.FormatInt(districtID, 10) + snapshotKeySuffix
}

func (r *RedisAdapter) AcquireResolveGuard(ctx context.Context, requestID int64) (bool, error) {
	return r.client.SetNX(ctx, resolveGuardKey(requestID), 1, resolveGuardTTL).Result()
}

func (r *RedisAdapter) ReleaseResolveGuard(ctx context.Context, requestID int64) error {
	return r.client.Del(ctx, resolveGuardKey(requestID)).Err()
}

func (r *RedisAdapter) SetInventorySnapshot(ctx context.Context, districtID int64, inventory domain.Inventory) error {
	key := snapshotKey(districtID)

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, key)
	if len(inventory) > 0 {
		fields := make(map[string]interface{}, len(inventory))
		for item, stock := range inventory {
			fields[item] = stock
		}
		pipe.HSet(ctx, key, fields)
		pipe.Expire(ctx, key, snapshotTTL)
	}

	_, err := pipe.Exec(ctx)
	return err
}

func (r *RedisAdapter) GetInventorySnapshot(ctx context.Context, districtID int64) (domain.Inventory, bool, error) {
	fields, err := r.client.HGetAll(ctx, snapshotKey(districtID)).Result()
	if err != nil {
		return nil, false, err
	}
	if len(fields) == 0 {
		return nil, false, nil
	}

	inv := make(domain.Inventory, len(fields))
	for item, raw := range fields {
		stock, err := strconv.Atoi(raw)
		if err != nil {
			return nil, false, fmt.Errorf("corrupt snapshot field %q: %w", item, err)
		}
		inv[item] = stock
	}
	return inv, true, nil
}
