package models

import (
	"time"

	"github.com/lanavaja/barberia-api/internal/domain/schedule"
)

// ShopSettingsID is the fixed id of the single settings row.
const ShopSettingsID uint = 1

// ShopSettings holds shop-wide display hours and closure dates. Blocked
// dates here close the shop for every barber regardless of their own
// schedule.
type ShopSettings struct {
	ID uint `gorm:"primaryKey" json:"id"`

	WorkingHours schedule.WeeklySchedule `gorm:"serializer:json" json:"working_hours"`
	BlockedDates schedule.DateSet        `gorm:"serializer:json" json:"blocked_dates"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
