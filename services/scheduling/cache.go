package scheduling

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"bookwell/models"

	"github.com/go-redis/redis/v8"
)

// SlotCache caches generated day slots keyed by (provider, date, duration).
// Invalidate drops every cached duration variant for a provider-date pair.
type SlotCache interface {
	GetDaySlots(ctx context.Context, providerID, date string, durationMinutes int) ([]models.Slot, bool, error)
	SetDaySlots(ctx context.Context, providerID, date string, durationMinutes int, slots []models.Slot) error
	Invalidate(ctx context.Context, providerID, date string) error
}

// RedisSlotCache stores slot lists as JSON with a TTL, and keeps a redis
// set per (provider, date) holding the exact keys written, so invalidation
// deletes precise keys instead of scanning the keyspace with a pattern.
type RedisSlotCache struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewRedisSlotCache constructs a slot cache with the given TTL (300s when zero).
func NewRedisSlotCache(client *redis.Client, ttl time.Duration) *RedisSlotCache {
	if ttl <= 0 {
		ttl = 300 * time.Second
	}
	return &RedisSlotCache{Client: client, TTL: ttl}
}

func slotKey(providerID, date string, durationMinutes int) string {
	return fmt.Sprintf("slots:%s:%s:%d", providerID, date, durationMinutes)
}

func slotIndexKey(providerID, date string) string {
	return fmt.Sprintf("slots:index:%s:%s", providerID, date)
}

func (c *RedisSlotCache) GetDaySlots(ctx context.Context, providerID, date string, durationMinutes int) ([]models.Slot, bool, error) {
	raw, err := c.Client.Get(ctx, slotKey(providerID, date, durationMinutes)).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("slot cache read failed: %w", err)
	}

	var slots []models.Slot
	if err := json.Unmarshal([]byte(raw), &slots); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached slots: %w", err)
	}
	return slots, true, nil
}

func (c *RedisSlotCache) SetDaySlots(ctx context.Context, providerID, date string, durationMinutes int, slots []models.Slot) error {
	data, err := json.Marshal(slots)
	if err != nil {
		return fmt.Errorf("failed to encode slots: %w", err)
	}

	key := slotKey(providerID, date, durationMinutes)
	index := slotIndexKey(providerID, date)

	pipe := c.Client.TxPipeline()
	pipe.Set(ctx, key, data, c.TTL)
	pipe.SAdd(ctx, index, key)
	// The index outlives its members slightly so invalidation still sees them.
	pipe.Expire(ctx, index, c.TTL+time.Minute)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("slot cache write failed: %w", err)
	}
	return nil
}

func (c *RedisSlotCache) Invalidate(ctx context.Context, providerID, date string) error {
	index := slotIndexKey(providerID, date)
	keys, err := c.Client.SMembers(ctx, index).Result()
	if err != nil && err != redis.Nil {
		return fmt.Errorf("slot cache index read failed: %w", err)
	}
	keys = append(keys, index)
	if err := c.Client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("slot cache invalidation failed: %w", err)
	}
	return nil
}
