package models

import (
	"time"

	"github.com/lanavaja/barberia-api/internal/domain/schedule"
)

// BarberAvailability is a barber's weekly schedule plus one-off days off.
// It is created all-disabled when the barber account is created and is
// replaced wholesale on every save.
type BarberAvailability struct {
	BarberID uint `gorm:"primaryKey" json:"barber_id"`

	Week         schedule.WeeklySchedule `gorm:"serializer:json" json:"availability"`
	BlockedDates schedule.DateSet        `gorm:"serializer:json" json:"blocked_dates"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *BarberAvailability) Schedule() schedule.Availability {
	return schedule.Availability{Week: b.Week, Blocked: b.BlockedDates}
}

// DefaultAvailability is the implicit schedule for a new barber: every
// weekday present but disabled.
func DefaultAvailability(barberID uint) *BarberAvailability {
	week := schedule.WeeklySchedule{}
	for d := time.Sunday; d <= time.Saturday; d++ {
		week[schedule.WeekdayName(d)] = schedule.WeekdaySchedule{}
	}
	return &BarberAvailability{
		BarberID:     barberID,
		Week:         week,
		BlockedDates: schedule.DateSet{},
	}
}
