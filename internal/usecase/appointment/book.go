package appointment

import (
	"context"

	"github.com/lanavaja/barberia-api/internal/audit"
	"github.com/lanavaja/barberia-api/internal/cache"
	domain "github.com/lanavaja/barberia-api/internal/domain/appointment"
	"github.com/lanavaja/barberia-api/internal/domain/schedule"
	"github.com/lanavaja/barberia-api/internal/httperr"
	"github.com/lanavaja/barberia-api/internal/metrics"
	"github.com/lanavaja/barberia-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type BookInput struct {
	ClientID  uint
	BarberID  uint
	ServiceID uint

	Date      schedule.Date
	StartTime schedule.ClockTime
	EndTime   schedule.ClockTime
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.SlotCache
}

func NewBookAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache *cache.SlotCache,
) *BookAppointment {
	return &BookAppointment{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

// Execute runs the booking gates in order; the first failure wins. The
// final persist re-checks the interval against concurrent writers, so at
// most one of two racing requests for overlapping times succeeds.
func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookInput,
) (*models.Appointment, error) {

	if in.StartTime >= in.EndTime {
		return nil, uc.reject(httperr.ErrRule("invalid_time_range"))
	}

	// 1. Barber
	av, err := uc.repo.GetBarberAvailability(ctx, in.BarberID)
	if err != nil {
		return nil, uc.reject(err)
	}

	// 2. Shop-wide closure overrides everything
	shop, err := uc.repo.GetShopSettings(ctx)
	if err != nil {
		return nil, err
	}
	if shop.BlockedDates.Contains(in.Date) {
		return nil, uc.reject(httperr.ErrRule("shop_closed"))
	}

	// 3. Working day (weekly schedule + the barber's own days off)
	sched := av.Schedule()
	if !sched.IsWorkingDay(in.Date) {
		return nil, uc.reject(httperr.ErrRule("barber_not_working_this_day"))
	}

	// 4. Working window
	open, close, _ := sched.WorkingWindow(in.Date)
	if in.StartTime < open || in.EndTime > close {
		return nil, uc.reject(httperr.ErrRule("outside_working_hours"))
	}

	// 5. Conflicts against active appointments
	existing, err := uc.repo.ListActiveIntervals(ctx, in.BarberID, in.Date)
	if err != nil {
		return nil, err
	}
	if domain.Overlaps(in.StartTime, in.EndTime, existing) {
		return nil, uc.reject(httperr.ErrRule("slot_unavailable"))
	}

	// 6. Service; the price is captured now and never re-read
	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, uc.reject(err)
	}
	if in.StartTime.MinutesUntil(in.EndTime) != svc.DurationMin {
		return nil, uc.reject(httperr.ErrRule("invalid_duration"))
	}

	// 7. Persist (atomic with respect to concurrent bookings)
	ap := &models.Appointment{
		ClientID:  in.ClientID,
		BarberID:  in.BarberID,
		ServiceID: svc.ID,
		Date:      in.Date,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
		Price:     svc.Price,
		Status:    string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, uc.reject(err)
	}

	metrics.BookingsCreated.Inc()
	uc.cache.InvalidateDay(ctx, in.BarberID, in.Date)

	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.ClientID,
		Action:   "appointment_booked",
		Entity:   "appointment",
		EntityID: ap.ID.String(),
		Metadata: map[string]any{
			"barber_id": in.BarberID,
			"date":      in.Date.String(),
			"start":     in.StartTime.String(),
			"end":       in.EndTime.String(),
		},
	})

	return ap, nil
}

func (uc *BookAppointment) reject(err error) error {
	if be, ok := httperr.AsBusiness(err); ok {
		metrics.BookingsRejected.WithLabelValues(be.Code).Inc()
	}
	return err
}
