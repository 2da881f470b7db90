package appointment

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domain "github.com/lanavaja/barberia-api/internal/domain/appointment"
	"github.com/lanavaja/barberia-api/internal/domain/schedule"
	"github.com/lanavaja/barberia-api/internal/httperr"
	"github.com/lanavaja/barberia-api/internal/models"
)

func noplog() *zap.Logger { return zap.NewNop() }

// fakeRepo is an in-memory domain.Repository with the same conflict and
// scoping semantics as the gorm implementation. The mutex plays the part
// of the store's locking transaction: the conflict scan and the insert in
// CreateAppointment are one critical section.
type fakeRepo struct {
	mu sync.Mutex

	availability map[uint]*models.BarberAvailability
	settings     *models.ShopSettings
	services     map[uint]*models.Service
	appointments map[uuid.UUID]*models.Appointment
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		availability: map[uint]*models.BarberAvailability{},
		settings:     &models.ShopSettings{ID: models.ShopSettingsID},
		services:     map[uint]*models.Service{},
		appointments: map[uuid.UUID]*models.Appointment{},
	}
}

func (f *fakeRepo) GetBarberAvailability(_ context.Context, barberID uint) (*models.BarberAvailability, error) {
	av, ok := f.availability[barberID]
	if !ok {
		return nil, httperr.ErrNotFound("barber_not_found")
	}
	return av, nil
}

func (f *fakeRepo) SaveBarberAvailability(_ context.Context, av *models.BarberAvailability) error {
	f.availability[av.BarberID] = av
	return nil
}

func (f *fakeRepo) GetShopSettings(_ context.Context) (*models.ShopSettings, error) {
	return f.settings, nil
}

func (f *fakeRepo) UpsertShopSettings(_ context.Context, s *models.ShopSettings) error {
	s.ID = models.ShopSettingsID
	f.settings = s
	return nil
}

func (f *fakeRepo) GetService(_ context.Context, id uint) (*models.Service, error) {
	svc, ok := f.services[id]
	if !ok {
		return nil, httperr.ErrNotFound("service_not_found")
	}
	return svc, nil
}

func (f *fakeRepo) activeIntervalsLocked(barberID uint, date schedule.Date) []domain.Interval {
	var out []domain.Interval
	for _, ap := range f.appointments {
		if ap.BarberID == barberID && ap.Date.Equal(date) && domain.Status(ap.Status).Active() {
			out = append(out, domain.Interval{Start: ap.StartTime, End: ap.EndTime})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out
}

func (f *fakeRepo) ListActiveIntervals(_ context.Context, barberID uint, date schedule.Date) ([]domain.Interval, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.activeIntervalsLocked(barberID, date), nil
}

func (f *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	existing := f.activeIntervalsLocked(ap.BarberID, ap.Date)
	if domain.Overlaps(ap.StartTime, ap.EndTime, existing) {
		return httperr.ErrRule("slot_unavailable")
	}

	if ap.ID == uuid.Nil {
		ap.ID = uuid.New()
	}
	stored := *ap
	f.appointments[ap.ID] = &stored
	return nil
}

func (f *fakeRepo) GetAppointmentFor(_ context.Context, id uuid.UUID, actor domain.Actor) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	ap, ok := f.appointments[id]
	if ok {
		switch actor.Role {
		case domain.RoleBarber:
			ok = ap.BarberID == actor.UserID
		case domain.RoleClient:
			ok = ap.ClientID == actor.UserID
		case domain.RoleAdmin:
		default:
			ok = false
		}
	}
	if !ok {
		return nil, httperr.ErrAuth("not_found_or_unauthorized")
	}
	cp := *ap
	return &cp, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, ap *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	stored, ok := f.appointments[ap.ID]
	if !ok {
		return httperr.ErrNotFound("appointment_not_found")
	}
	stored.Status = ap.Status
	stored.CancelledAt = ap.CancelledAt
	stored.CompletedAt = ap.CompletedAt
	return nil
}

func (f *fakeRepo) UpdateNotes(_ context.Context, ap *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	stored, ok := f.appointments[ap.ID]
	if !ok {
		return httperr.ErrNotFound("appointment_not_found")
	}
	stored.Notes = ap.Notes
	return nil
}

func (f *fakeRepo) DeleteAppointment(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.appointments[id]; !ok {
		return httperr.ErrNotFound("appointment_not_found")
	}
	delete(f.appointments, id)
	return nil
}

func (f *fakeRepo) ReapExpired(_ context.Context, before schedule.Date) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var n int64
	now := time.Now()
	for _, ap := range f.appointments {
		if ap.Date.Before(before) && domain.Status(ap.Status).Active() {
			ap.Status = string(domain.StatusCancelled)
			ap.CancelledAt = &now
			n++
		}
	}
	return n, nil
}

func (f *fakeRepo) ListForBarberOnDate(_ context.Context, barberID uint, date schedule.Date) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.BarberID == barberID && ap.Date.Equal(date) {
			out = append(out, *ap)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime < out[j].StartTime })
	return out, nil
}

func (f *fakeRepo) ListForClient(_ context.Context, clientID uint) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.ClientID == clientID {
			out = append(out, *ap)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[j].Date.Before(out[i].Date)
		}
		return out[j].StartTime < out[i].StartTime
	})
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)
