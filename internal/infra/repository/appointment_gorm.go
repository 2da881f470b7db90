package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/lanavaja/barberia-api/internal/domain/appointment"
	"github.com/lanavaja/barberia-api/internal/domain/schedule"
	"github.com/lanavaja/barberia-api/internal/httperr"
	"github.com/lanavaja/barberia-api/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Barber availability
// --------------------------------------------------

func (r *AppointmentGormRepository) GetBarberAvailability(
	ctx context.Context,
	barberID uint,
) (*models.BarberAvailability, error) {

	var av models.BarberAvailability
	if err := r.db.WithContext(ctx).
		Where("barber_id = ?", barberID).
		First(&av).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("barber_not_found")
		}
		return nil, err
	}
	return &av, nil
}

// SaveBarberAvailability replaces the whole row; there is no field-level
// merge below the availability / blocked_dates keys.
func (r *AppointmentGormRepository) SaveBarberAvailability(
	ctx context.Context,
	av *models.BarberAvailability,
) error {
	return r.db.WithContext(ctx).Save(av).Error
}

// --------------------------------------------------
// Shop settings
// --------------------------------------------------

// GetShopSettings returns the singleton row, or an empty settings record
// when nothing has been saved yet (no closures, no display hours).
func (r *AppointmentGormRepository) GetShopSettings(
	ctx context.Context,
) (*models.ShopSettings, error) {

	var s models.ShopSettings
	err := r.db.WithContext(ctx).First(&s, models.ShopSettingsID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.ShopSettings{ID: models.ShopSettingsID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *AppointmentGormRepository) UpsertShopSettings(
	ctx context.Context,
	s *models.ShopSettings,
) error {
	s.ID = models.ShopSettingsID
	return r.db.WithContext(ctx).Save(s).Error
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("service_not_found")
		}
		return nil, err
	}
	return &svc, nil
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

func (r *AppointmentGormRepository) ListActiveIntervals(
	ctx context.Context,
	barberID uint,
	date schedule.Date,
) ([]domain.Interval, error) {

	var rows []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("start_time", "end_time").
		Where(
			"barber_id = ? AND date = ? AND status IN ?",
			barberID, date, domain.ActiveStatuses,
		).
		Order("start_time ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	intervals := make([]domain.Interval, 0, len(rows))
	for _, ap := range rows {
		intervals = append(intervals, domain.Interval{
			Start: ap.StartTime,
			End:   ap.EndTime,
		})
	}
	return intervals, nil
}

// CreateAppointment serializes concurrent writers for the same barber and
// date: conflicting rows are locked FOR UPDATE before the insert, and the
// exclusion constraint backstops anything racing past the lock. Either
// way the loser surfaces as slot_unavailable.
func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var conflicts []models.Appointment
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			Where(
				"barber_id = ? AND date = ? AND status IN ? AND start_time < ? AND end_time > ?",
				ap.BarberID, ap.Date, domain.ActiveStatuses, ap.EndTime, ap.StartTime,
			).
			Find(&conflicts).Error; err != nil {
			return err
		}

		if len(conflicts) > 0 {
			return httperr.ErrRule("slot_unavailable")
		}

		return tx.Create(ap).Error
	})

	if err != nil && httperr.IsExclusionConflict(err) {
		return httperr.ErrRule("slot_unavailable")
	}
	return err
}

// --------------------------------------------------
// Appointment (lifecycle / notes)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointmentFor(
	ctx context.Context,
	id uuid.UUID,
	actor domain.Actor,
) (*models.Appointment, error) {

	q := r.db.WithContext(ctx).Where("id = ?", id)

	switch actor.Role {
	case domain.RoleBarber:
		q = q.Where("barber_id = ?", actor.UserID)
	case domain.RoleClient:
		q = q.Where("client_id = ?", actor.UserID)
	case domain.RoleAdmin:
		// unrestricted
	default:
		return nil, httperr.ErrAuth("not_found_or_unauthorized")
	}

	var ap models.Appointment
	if err := q.First(&ap).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Deliberately the same answer for "doesn't exist" and "not
			// yours".
			return nil, httperr.ErrAuth("not_found_or_unauthorized")
		}
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateStatus(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).
		Model(ap).
		Select("status", "cancelled_at", "completed_at", "updated_at").
		Updates(map[string]any{
			"status":       ap.Status,
			"cancelled_at": ap.CancelledAt,
			"completed_at": ap.CompletedAt,
			"updated_at":   time.Now(),
		}).Error
}

func (r *AppointmentGormRepository) UpdateNotes(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).
		Model(ap).
		Select("notes", "updated_at").
		Updates(map[string]any{
			"notes":      ap.Notes,
			"updated_at": time.Now(),
		}).Error
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	id uuid.UUID,
) error {
	res := r.db.WithContext(ctx).Delete(&models.Appointment{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrNotFound("appointment_not_found")
	}
	return nil
}

// --------------------------------------------------
// Maintenance / listings
// --------------------------------------------------

func (r *AppointmentGormRepository) ReapExpired(
	ctx context.Context,
	before schedule.Date,
) (int64, error) {

	now := time.Now()
	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("date < ? AND status IN ?", before, domain.ActiveStatuses).
		Updates(map[string]any{
			"status":       string(domain.StatusCancelled),
			"cancelled_at": &now,
			"updated_at":   now,
		})

	return res.RowsAffected, res.Error
}

func (r *AppointmentGormRepository) ListForBarberOnDate(
	ctx context.Context,
	barberID uint,
	date schedule.Date,
) ([]models.Appointment, error) {

	var rows []models.Appointment
	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Where("barber_id = ? AND date = ?", barberID, date).
		Order("start_time ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *AppointmentGormRepository) ListForClient(
	ctx context.Context,
	clientID uint,
) ([]models.Appointment, error) {

	var rows []models.Appointment
	err := r.db.WithContext(ctx).
		Preload("Barber").
		Preload("Service").
		Where("client_id = ?", clientID).
		Order("date DESC, start_time DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
