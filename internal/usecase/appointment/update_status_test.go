package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/lanavaja/barberia-api/internal/domain/appointment"
	"github.com/lanavaja/barberia-api/internal/httperr"
	"github.com/lanavaja/barberia-api/internal/models"
)

func seedAppointment(t *testing.T, repo *fakeRepo, status domain.Status) uuid.UUID {
	t.Helper()
	rating := 4.0
	ap := &models.Appointment{
		ID:        uuid.New(),
		ClientID:  clientID,
		BarberID:  barberID,
		ServiceID: serviceID,
		Date:      monday(),
		StartTime: clock(t, "10:00"),
		EndTime:   clock(t, "10:30"),
		Price:     150,
		Status:    string(status),
		Notes:     models.AppointmentNotes{Rating: &rating},
	}
	repo.appointments[ap.ID] = ap
	return ap.ID
}

func TestUpdateStatusClientCancels(t *testing.T) {
	repo := newFakeRepo()
	id := seedAppointment(t, repo, domain.StatusBooked)
	uc := NewUpdateStatus(repo, nil, nil)

	ap, err := uc.Execute(context.Background(), UpdateStatusInput{
		AppointmentID: id,
		NewStatus:     domain.StatusCancelled,
		Actor:         domain.Actor{UserID: clientID, Role: domain.RoleClient},
		Now:           time.Now(),
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCancelled), ap.Status)
	assert.NotNil(t, ap.CancelledAt)
	assert.Equal(t, string(domain.StatusCancelled), repo.appointments[id].Status)
}

func TestUpdateStatusClientCannotAdvance(t *testing.T) {
	for _, from := range []domain.Status{domain.StatusBooked, domain.StatusInProgress} {
		repo := newFakeRepo()
		id := seedAppointment(t, repo, from)
		uc := NewUpdateStatus(repo, nil, nil)

		for _, to := range []domain.Status{domain.StatusInProgress, domain.StatusCompleted} {
			_, err := uc.Execute(context.Background(), UpdateStatusInput{
				AppointmentID: id,
				NewStatus:     to,
				Actor:         domain.Actor{UserID: clientID, Role: domain.RoleClient},
			})
			assert.True(t, httperr.IsBusiness(err, "forbidden"), "%s -> %s: %v", from, to, err)
		}
	}
}

func TestUpdateStatusBarberFlow(t *testing.T) {
	repo := newFakeRepo()
	id := seedAppointment(t, repo, domain.StatusBooked)
	uc := NewUpdateStatus(repo, nil, nil)
	barber := domain.Actor{UserID: barberID, Role: domain.RoleBarber}

	ap, err := uc.Execute(context.Background(), UpdateStatusInput{
		AppointmentID: id, NewStatus: domain.StatusInProgress, Actor: barber,
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusInProgress), ap.Status)

	ap, err = uc.Execute(context.Background(), UpdateStatusInput{
		AppointmentID: id, NewStatus: domain.StatusCompleted, Actor: barber,
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), ap.Status)
	assert.NotNil(t, ap.CompletedAt)
}

func TestUpdateStatusTerminalStatesAreImmutable(t *testing.T) {
	actors := []domain.Actor{
		{UserID: clientID, Role: domain.RoleClient},
		{UserID: barberID, Role: domain.RoleBarber},
		{UserID: 99, Role: domain.RoleAdmin},
	}

	for _, terminal := range []domain.Status{domain.StatusCompleted, domain.StatusCancelled} {
		for _, actor := range actors {
			repo := newFakeRepo()
			id := seedAppointment(t, repo, terminal)
			uc := NewUpdateStatus(repo, nil, nil)

			for _, to := range []domain.Status{domain.StatusBooked, domain.StatusInProgress, domain.StatusCompleted, domain.StatusCancelled} {
				if to == terminal {
					continue
				}
				_, err := uc.Execute(context.Background(), UpdateStatusInput{
					AppointmentID: id, NewStatus: to, Actor: actor,
				})
				assert.True(t, httperr.IsBusiness(err, "forbidden"),
					"%s: %s -> %s as %s: %v", actor.Role, terminal, to, actor.Role, err)
			}
		}
	}
}

func TestUpdateStatusScopedLookup(t *testing.T) {
	repo := newFakeRepo()
	id := seedAppointment(t, repo, domain.StatusBooked)
	uc := NewUpdateStatus(repo, nil, nil)

	// Another barber must not even learn the appointment exists.
	_, err := uc.Execute(context.Background(), UpdateStatusInput{
		AppointmentID: id,
		NewStatus:     domain.StatusCancelled,
		Actor:         domain.Actor{UserID: 77, Role: domain.RoleBarber},
	})
	assert.True(t, httperr.IsBusiness(err, "not_found_or_unauthorized"), "%v", err)

	_, err = uc.Execute(context.Background(), UpdateStatusInput{
		AppointmentID: uuid.New(),
		NewStatus:     domain.StatusCancelled,
		Actor:         domain.Actor{UserID: 99, Role: domain.RoleAdmin},
	})
	assert.True(t, httperr.IsBusiness(err, "not_found_or_unauthorized"), "%v", err)
}

func TestUpdateStatusLeavesOtherFieldsAlone(t *testing.T) {
	repo := newFakeRepo()
	id := seedAppointment(t, repo, domain.StatusBooked)
	uc := NewUpdateStatus(repo, nil, nil)

	_, err := uc.Execute(context.Background(), UpdateStatusInput{
		AppointmentID: id,
		NewStatus:     domain.StatusCancelled,
		Actor:         domain.Actor{UserID: clientID, Role: domain.RoleClient},
	})
	require.NoError(t, err)

	stored := repo.appointments[id]
	assert.Equal(t, 150.0, stored.Price)
	assert.Equal(t, "10:00:00", stored.StartTime.String())
	assert.Equal(t, "10:30:00", stored.EndTime.String())
	require.NotNil(t, stored.Notes.Rating)
	assert.Equal(t, 4.0, *stored.Notes.Rating)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	repo := newFakeRepo()
	id := seedAppointment(t, repo, domain.StatusBooked)
	uc := NewUpdateStatus(repo, nil, nil)

	_, err := uc.Execute(context.Background(), UpdateStatusInput{
		AppointmentID: id,
		NewStatus:     domain.Status("scheduled"),
		Actor:         domain.Actor{UserID: 99, Role: domain.RoleAdmin},
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_status"), "%v", err)
}
