package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/lanavaja/barberia-api/internal/audit"
	domain "github.com/lanavaja/barberia-api/internal/domain/appointment"
	"github.com/lanavaja/barberia-api/internal/httperr"
)

// PurgeAppointment hard-deletes a row. This lives outside the lifecycle
// machine: cancellation is a status, purging is an admin-only cleanup.
type PurgeAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewPurgeAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *PurgeAppointment {
	return &PurgeAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *PurgeAppointment) Execute(
	ctx context.Context,
	id uuid.UUID,
	actor domain.Actor,
) error {

	if actor.Role != domain.RoleAdmin {
		return httperr.ErrAuth("forbidden")
	}

	if err := uc.repo.DeleteAppointment(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &actor.UserID,
		Action:   "appointment_purged",
		Entity:   "appointment",
		EntityID: id.String(),
	})

	return nil
}
