package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lanavaja/barberia-api/internal/domain/schedule"
)

// A nil cache must behave as "no cache": misses on read, no-ops on write
// and invalidation. Use cases are wired with nil in tests and when redis
// is unconfigured, so every method has to tolerate it.
func TestNilSlotCacheIsNoOp(t *testing.T) {
	ctx := context.Background()
	var c *SlotCache

	slots, ok := c.Get(ctx, 1, schedule.NewDate(2025, 3, 10), 5)
	assert.False(t, ok)
	assert.Nil(t, slots)

	c.Set(ctx, 1, schedule.NewDate(2025, 3, 10), 5, []schedule.ClockTime{0})
	c.InvalidateDay(ctx, 1, schedule.NewDate(2025, 3, 10))
	c.InvalidateBarber(ctx, 1)
	c.InvalidateAll(ctx)
}

func TestNewSlotCacheWithoutClient(t *testing.T) {
	assert.Nil(t, NewSlotCache(nil, nil))
}
