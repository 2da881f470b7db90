package appointment

import (
	"context"

	"github.com/lanavaja/barberia-api/internal/cache"
	domain "github.com/lanavaja/barberia-api/internal/domain/appointment"
	"github.com/lanavaja/barberia-api/internal/domain/schedule"
	"github.com/lanavaja/barberia-api/internal/metrics"
)

// ======================================================
// INPUT
// ======================================================

type AvailabilityInput struct {
	BarberID  uint
	ServiceID uint
	Date      schedule.Date

	// Today is the current calendar date in the shop's timezone, injected
	// by the caller so the reaper cutoff is testable.
	Today schedule.Date
}

// ======================================================
// USE CASE
// ======================================================

type GetAvailability struct {
	repo   domain.Repository
	reaper *ReapExpired
	cache  *cache.SlotCache
}

func NewGetAvailability(
	repo domain.Repository,
	reaper *ReapExpired,
	cache *cache.SlotCache,
) *GetAvailability {
	return &GetAvailability{
		repo:   repo,
		reaper: reaper,
		cache:  cache,
	}
}

// Execute lists bookable start times, ascending. A closed shop, a
// non-working day or a window too short for the service all yield an
// empty list rather than an error.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in AvailabilityInput,
) ([]schedule.ClockTime, error) {

	// Stale open appointments must not block slots.
	uc.reaper.Execute(ctx, in.Today)

	metrics.SlotQueries.Inc()

	if slots, ok := uc.cache.Get(ctx, in.BarberID, in.Date, in.ServiceID); ok {
		metrics.SlotCacheHits.Inc()
		return slots, nil
	}

	av, err := uc.repo.GetBarberAvailability(ctx, in.BarberID)
	if err != nil {
		return nil, err
	}

	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}

	shop, err := uc.repo.GetShopSettings(ctx)
	if err != nil {
		return nil, err
	}

	existing, err := uc.repo.ListActiveIntervals(ctx, in.BarberID, in.Date)
	if err != nil {
		return nil, err
	}

	slots := domain.GenerateSlots(
		in.Date,
		av.Schedule(),
		svc.DurationMin,
		existing,
		shop.BlockedDates,
	)

	uc.cache.Set(ctx, in.BarberID, in.Date, in.ServiceID, slots)

	return slots, nil
}
