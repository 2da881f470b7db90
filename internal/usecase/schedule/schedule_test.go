package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/lanavaja/barberia-api/internal/domain/appointment"
	sched "github.com/lanavaja/barberia-api/internal/domain/schedule"
	"github.com/lanavaja/barberia-api/internal/httperr"
	"github.com/lanavaja/barberia-api/internal/models"
)

// fakeStore stubs just the repository methods these use cases touch.
type fakeStore struct {
	domain.Repository

	availability map[uint]*models.BarberAvailability
	settings     *models.ShopSettings
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		availability: map[uint]*models.BarberAvailability{},
		settings:     &models.ShopSettings{ID: models.ShopSettingsID},
	}
}

func (f *fakeStore) SaveBarberAvailability(_ context.Context, av *models.BarberAvailability) error {
	f.availability[av.BarberID] = av
	return nil
}

func (f *fakeStore) GetShopSettings(_ context.Context) (*models.ShopSettings, error) {
	return f.settings, nil
}

func (f *fakeStore) UpsertShopSettings(_ context.Context, s *models.ShopSettings) error {
	s.ID = models.ShopSettingsID
	f.settings = s
	return nil
}

func clock(t *testing.T, s string) sched.ClockTime {
	t.Helper()
	c, err := sched.ParseClock(s)
	require.NoError(t, err)
	return c
}

func TestSaveAvailabilityReplacesWholesale(t *testing.T) {
	store := newFakeStore()
	store.availability[1] = &models.BarberAvailability{
		BarberID: 1,
		Week: sched.WeeklySchedule{
			"monday":  {Enabled: true, Open: clock(t, "09:00"), Close: clock(t, "17:00")},
			"tuesday": {Enabled: true, Open: clock(t, "09:00"), Close: clock(t, "17:00")},
		},
		BlockedDates: sched.DateSet{sched.NewDate(2025, 12, 24)},
	}

	uc := NewSaveAvailability(store, nil, nil)
	_, err := uc.Execute(context.Background(), SaveAvailabilityInput{
		BarberID: 1,
		Week: sched.WeeklySchedule{
			"wednesday": {Enabled: true, Open: clock(t, "10:00"), Close: clock(t, "14:00")},
		},
		Actor: domain.Actor{UserID: 1, Role: domain.RoleBarber},
	})
	require.NoError(t, err)

	saved := store.availability[1]
	assert.Len(t, saved.Week, 1, "old weekday entries are gone, not merged")
	assert.Empty(t, saved.BlockedDates, "omitted blocked dates clear the old set")
}

func TestSaveAvailabilityValidatesWindows(t *testing.T) {
	uc := NewSaveAvailability(newFakeStore(), nil, nil)

	_, err := uc.Execute(context.Background(), SaveAvailabilityInput{
		BarberID: 1,
		Week: sched.WeeklySchedule{
			"monday": {Enabled: true, Open: clock(t, "17:00"), Close: clock(t, "09:00")},
		},
		Actor: domain.Actor{UserID: 1, Role: domain.RoleBarber},
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_schedule"), "%v", err)
}

func TestSaveAvailabilityAuthorization(t *testing.T) {
	store := newFakeStore()
	uc := NewSaveAvailability(store, nil, nil)

	// A barber cannot rewrite a colleague's schedule.
	_, err := uc.Execute(context.Background(), SaveAvailabilityInput{
		BarberID: 2,
		Actor:    domain.Actor{UserID: 1, Role: domain.RoleBarber},
	})
	assert.True(t, httperr.IsBusiness(err, "forbidden"), "%v", err)

	_, err = uc.Execute(context.Background(), SaveAvailabilityInput{
		BarberID: 2,
		Actor:    domain.Actor{UserID: 1, Role: domain.RoleClient},
	})
	assert.True(t, httperr.IsBusiness(err, "forbidden"), "%v", err)

	// An admin may act on any barber's behalf.
	_, err = uc.Execute(context.Background(), SaveAvailabilityInput{
		BarberID: 2,
		Actor:    domain.Actor{UserID: 9, Role: domain.RoleAdmin},
	})
	assert.NoError(t, err)
	assert.Contains(t, store.availability, uint(2))
}

func TestUpdateShopSettings(t *testing.T) {
	store := newFakeStore()
	uc := NewUpdateShopSettings(store, nil, nil)

	closed := sched.DateSet{sched.NewDate(2025, 12, 25)}
	s, err := uc.Execute(context.Background(), UpdateShopSettingsInput{
		BlockedDates: closed,
		Actor:        domain.Actor{UserID: 9, Role: domain.RoleAdmin},
	})
	require.NoError(t, err)
	assert.Equal(t, models.ShopSettingsID, s.ID, "singleton id is fixed")
	assert.True(t, store.settings.BlockedDates.Contains(sched.NewDate(2025, 12, 25)))

	_, err = uc.Execute(context.Background(), UpdateShopSettingsInput{
		Actor: domain.Actor{UserID: 1, Role: domain.RoleBarber},
	})
	assert.True(t, httperr.IsBusiness(err, "forbidden"), "%v", err)
}
