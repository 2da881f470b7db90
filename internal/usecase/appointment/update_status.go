package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lanavaja/barberia-api/internal/audit"
	"github.com/lanavaja/barberia-api/internal/cache"
	domain "github.com/lanavaja/barberia-api/internal/domain/appointment"
	"github.com/lanavaja/barberia-api/internal/httperr"
	"github.com/lanavaja/barberia-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type UpdateStatusInput struct {
	AppointmentID uuid.UUID
	NewStatus     domain.Status
	Actor         domain.Actor
	Now           time.Time
}

// ======================================================
// USE CASE
// ======================================================

type UpdateStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.SlotCache
}

func NewUpdateStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache *cache.SlotCache,
) *UpdateStatus {
	return &UpdateStatus{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

// Execute validates the transition edge against the authorization matrix
// and persists only the status and its timestamp; price, notes and timing
// are untouched.
func (uc *UpdateStatus) Execute(
	ctx context.Context,
	in UpdateStatusInput,
) (*models.Appointment, error) {

	if !in.NewStatus.Valid() {
		return nil, httperr.ErrRule("invalid_status")
	}

	ap, err := uc.repo.GetAppointmentFor(ctx, in.AppointmentID, in.Actor)
	if err != nil {
		return nil, err
	}

	from := domain.Status(ap.Status)
	if !domain.CanTransition(in.Actor.Role, from, in.NewStatus) {
		return nil, httperr.ErrAuth("forbidden")
	}

	now := in.Now
	if now.IsZero() {
		now = time.Now()
	}

	ap.Status = string(in.NewStatus)
	switch in.NewStatus {
	case domain.StatusCancelled:
		ap.CancelledAt = &now
	case domain.StatusCompleted:
		ap.CompletedAt = &now
	}

	if err := uc.repo.UpdateStatus(ctx, ap); err != nil {
		return nil, err
	}

	// Leaving an active status frees the barber's time again.
	if !in.NewStatus.Active() {
		uc.cache.InvalidateDay(ctx, ap.BarberID, ap.Date)
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.Actor.UserID,
		Action:   "appointment_status_changed",
		Entity:   "appointment",
		EntityID: ap.ID.String(),
		Metadata: map[string]any{
			"from": string(from),
			"to":   string(in.NewStatus),
			"role": string(in.Actor.Role),
		},
	})

	return ap, nil
}
