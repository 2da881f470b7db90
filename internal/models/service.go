package models

import "time"

// Service is a bookable service (corte, barba, ...). Appointments capture
// the price at booking time, so deleting a service never cascades.
type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"size:255" json:"description"`
	DurationMin int     `gorm:"not null" json:"duration_minutes"`
	Price       float64 `gorm:"type:numeric(12,2)" json:"price"`
	Active      bool    `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
