package dto

import (
	"github.com/google/uuid"

	"github.com/lanavaja/barberia-api/internal/domain/schedule"
)

type BarberAppointmentDTO struct {
	ID          uuid.UUID          `json:"id"`
	Date        schedule.Date      `json:"appointment_date"`
	StartTime   schedule.ClockTime `json:"start_time"`
	EndTime     schedule.ClockTime `json:"end_time"`
	Status      string             `json:"status"`
	Price       float64            `json:"price"`
	ClientName  string             `json:"client_name"`
	ServiceName string             `json:"service_name"`
}
