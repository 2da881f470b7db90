package schedule

import (
	"context"

	"github.com/lanavaja/barberia-api/internal/audit"
	"github.com/lanavaja/barberia-api/internal/cache"
	domain "github.com/lanavaja/barberia-api/internal/domain/appointment"
	sched "github.com/lanavaja/barberia-api/internal/domain/schedule"
	"github.com/lanavaja/barberia-api/internal/httperr"
	"github.com/lanavaja/barberia-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type SaveAvailabilityInput struct {
	BarberID     uint
	Week         sched.WeeklySchedule
	BlockedDates sched.DateSet

	Actor domain.Actor
}

// ======================================================
// USE CASE
// ======================================================

// SaveAvailability replaces a barber's whole schedule. Barbers write
// their own; admins may act on any barber's behalf.
type SaveAvailability struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.SlotCache
}

func NewSaveAvailability(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache *cache.SlotCache,
) *SaveAvailability {
	return &SaveAvailability{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

func (uc *SaveAvailability) Execute(
	ctx context.Context,
	in SaveAvailabilityInput,
) (*models.BarberAvailability, error) {

	switch in.Actor.Role {
	case domain.RoleAdmin:
	case domain.RoleBarber:
		if in.Actor.UserID != in.BarberID {
			return nil, httperr.ErrAuth("forbidden")
		}
	default:
		return nil, httperr.ErrAuth("forbidden")
	}

	if err := in.Week.Validate(); err != nil {
		return nil, httperr.ErrRule("invalid_schedule")
	}

	if in.Week == nil {
		in.Week = sched.WeeklySchedule{}
	}
	if in.BlockedDates == nil {
		in.BlockedDates = sched.DateSet{}
	}

	av := &models.BarberAvailability{
		BarberID:     in.BarberID,
		Week:         in.Week,
		BlockedDates: in.BlockedDates,
	}

	if err := uc.repo.SaveBarberAvailability(ctx, av); err != nil {
		return nil, err
	}

	// Any cached slot listing for this barber may now be wrong.
	uc.cache.InvalidateBarber(ctx, in.BarberID)

	uc.audit.Dispatch(audit.Event{
		ActorID: &in.Actor.UserID,
		Action:  "availability_updated",
		Entity:  "barber_availability",
		Metadata: map[string]any{
			"barber_id": in.BarberID,
		},
	})

	return av, nil
}
