package appointment

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/lanavaja/barberia-api/internal/domain/appointment"
	"github.com/lanavaja/barberia-api/internal/httperr"
	"github.com/lanavaja/barberia-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type UpdateNotesInput struct {
	AppointmentID uuid.UUID
	Actor         domain.Actor
	Patch         models.AppointmentNotes
}

// ======================================================
// USE CASE
// ======================================================

// UpdateNotes merge-patches the post-completion notes: fields present in
// the patch overwrite, everything else is preserved.
type UpdateNotes struct {
	repo domain.Repository
}

func NewUpdateNotes(repo domain.Repository) *UpdateNotes {
	return &UpdateNotes{repo: repo}
}

func (uc *UpdateNotes) Execute(
	ctx context.Context,
	in UpdateNotesInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentFor(ctx, in.AppointmentID, in.Actor)
	if err != nil {
		return nil, err
	}

	if domain.Status(ap.Status) != domain.StatusCompleted {
		return nil, httperr.ErrRule("appointment_not_completed")
	}

	if in.Patch.Rating != nil && !domain.ValidRating(*in.Patch.Rating) {
		return nil, httperr.ErrRule("invalid_rating")
	}

	ap.Notes = ap.Notes.Merge(in.Patch)

	if err := uc.repo.UpdateNotes(ctx, ap); err != nil {
		return nil, err
	}
	return ap, nil
}
