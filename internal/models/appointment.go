package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lanavaja/barberia-api/internal/domain/schedule"
)

// AppointmentNotes holds the post-completion fields both parties may edit.
// Writes are merge-patches: a field present in the patch overwrites the
// stored one, absent fields are preserved.
type AppointmentNotes struct {
	Rating        *float64        `json:"rating,omitempty"`
	ReviewComment *string         `json:"review_comment,omitempty"`
	Chat          json.RawMessage `json:"chat,omitempty"`
}

func (n AppointmentNotes) Merge(patch AppointmentNotes) AppointmentNotes {
	out := n
	if patch.Rating != nil {
		out.Rating = patch.Rating
	}
	if patch.ReviewComment != nil {
		out.ReviewComment = patch.ReviewComment
	}
	if patch.Chat != nil {
		out.Chat = patch.Chat
	}
	return out
}

type Appointment struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	ClientID uint `gorm:"index" json:"client_id"`
	Client   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	BarberID uint `gorm:"index:idx_appointments_barber_date" json:"barber_id"`
	Barber   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barber"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	Date      schedule.Date      `gorm:"type:date;index:idx_appointments_barber_date" json:"appointment_date"`
	StartTime schedule.ClockTime `gorm:"type:time" json:"start_time"`
	EndTime   schedule.ClockTime `gorm:"type:time" json:"end_time"`

	// Captured from the service at booking time, never re-read.
	Price float64 `gorm:"type:numeric(12,2)" json:"price"`

	Status string `gorm:"size:20;default:'Reservado'" json:"status"`

	Notes AppointmentNotes `gorm:"serializer:json" json:"notes"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
