package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/lanavaja/barberia-api/internal/domain/schedule"
	"github.com/lanavaja/barberia-api/internal/models"
)

// Repository is the narrow store contract the engine consumes. Lookup
// misses come back as httperr business errors; everything else (timeouts,
// connection failures) propagates unmodified as transient.
type Repository interface {
	// -------- Barber availability --------
	GetBarberAvailability(
		ctx context.Context,
		barberID uint,
	) (*models.BarberAvailability, error)

	SaveBarberAvailability(
		ctx context.Context,
		av *models.BarberAvailability,
	) error

	// -------- Shop settings (single row) --------
	GetShopSettings(
		ctx context.Context,
	) (*models.ShopSettings, error)

	UpsertShopSettings(
		ctx context.Context,
		s *models.ShopSettings,
	) error

	// -------- Service --------
	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// -------- Appointment (create / conflict) --------

	// ListActiveIntervals returns the booked [start, end) intervals of the
	// barber's Reservado/EnProceso appointments on the date, ascending.
	ListActiveIntervals(
		ctx context.Context,
		barberID uint,
		date schedule.Date,
	) ([]Interval, error)

	// CreateAppointment re-checks the interval against concurrent writers
	// and persists atomically; the losing side of a race gets
	// slot_unavailable.
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (lifecycle / notes) --------

	// GetAppointmentFor scopes the lookup by actor: barbers and clients
	// only see their own rows. A miss is not_found_or_unauthorized.
	GetAppointmentFor(
		ctx context.Context,
		id uuid.UUID,
		actor Actor,
	) (*models.Appointment, error)

	// UpdateStatus persists status and lifecycle timestamps only.
	UpdateStatus(
		ctx context.Context,
		ap *models.Appointment,
	) error

	UpdateNotes(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		id uuid.UUID,
	) error

	// -------- Maintenance / listings --------

	// ReapExpired cancels every Reservado/EnProceso appointment dated
	// before the given date, in bulk. Returns the number of rows touched.
	ReapExpired(
		ctx context.Context,
		before schedule.Date,
	) (int64, error)

	ListForBarberOnDate(
		ctx context.Context,
		barberID uint,
		date schedule.Date,
	) ([]models.Appointment, error)

	ListForClient(
		ctx context.Context,
		clientID uint,
	) ([]models.Appointment, error)
}
