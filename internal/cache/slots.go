package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/lanavaja/barberia-api/internal/domain/schedule"
)

const slotTTL = 60 * time.Second

// SlotCache keeps availability listings in redis for a short TTL. Booking
// writes bust the barber/date entry, so stale reads stay bounded to the
// TTL even if an invalidation is missed. A nil *SlotCache is a no-op.
type SlotCache struct {
	rdb    *redis.Client
	logger *zap.Logger
}

func NewSlotCache(rdb *redis.Client, logger *zap.Logger) *SlotCache {
	if rdb == nil {
		return nil
	}
	return &SlotCache{rdb: rdb, logger: logger}
}

func dayKey(barberID uint, date schedule.Date) string {
	return fmt.Sprintf("slots:%d:%s", barberID, date)
}

func (c *SlotCache) Get(
	ctx context.Context,
	barberID uint,
	date schedule.Date,
	serviceID uint,
) ([]schedule.ClockTime, bool) {

	if c == nil {
		return nil, false
	}

	raw, err := c.rdb.HGet(ctx, dayKey(barberID, date), fmt.Sprint(serviceID)).Result()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("slot cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var slots []schedule.ClockTime
	if err := json.Unmarshal([]byte(raw), &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (c *SlotCache) Set(
	ctx context.Context,
	barberID uint,
	date schedule.Date,
	serviceID uint,
	slots []schedule.ClockTime,
) {

	if c == nil {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}

	key := dayKey(barberID, date)
	pipe := c.rdb.Pipeline()
	pipe.HSet(ctx, key, fmt.Sprint(serviceID), raw)
	pipe.Expire(ctx, key, slotTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		c.logger.Warn("slot cache write failed", zap.Error(err))
	}
}

// InvalidateDay drops every cached service listing for a barber's day.
func (c *SlotCache) InvalidateDay(ctx context.Context, barberID uint, date schedule.Date) {
	if c == nil {
		return
	}
	if err := c.rdb.Del(ctx, dayKey(barberID, date)).Err(); err != nil {
		c.logger.Warn("slot cache invalidation failed", zap.Error(err))
	}
}

// InvalidateBarber drops every cached day for a barber (schedule rewrite).
func (c *SlotCache) InvalidateBarber(ctx context.Context, barberID uint) {
	if c == nil {
		return
	}
	c.invalidatePattern(ctx, fmt.Sprintf("slots:%d:*", barberID))
}

// InvalidateAll drops every cached listing for every barber. Shop-wide
// closure changes affect all of them at once.
func (c *SlotCache) InvalidateAll(ctx context.Context) {
	if c == nil {
		return
	}
	c.invalidatePattern(ctx, "slots:*")
}

func (c *SlotCache) invalidatePattern(ctx context.Context, pattern string) {
	iter := c.rdb.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			c.logger.Warn("slot cache invalidation failed", zap.Error(err))
		}
	}
	if err := iter.Err(); err != nil {
		c.logger.Warn("slot cache scan failed", zap.Error(err))
	}
}
