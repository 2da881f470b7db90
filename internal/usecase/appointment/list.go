package appointment

import (
	"context"

	domain "github.com/lanavaja/barberia-api/internal/domain/appointment"
	"github.com/lanavaja/barberia-api/internal/domain/schedule"
	"github.com/lanavaja/barberia-api/internal/dto"
	"github.com/lanavaja/barberia-api/internal/models"
)

// ListBarberDay is a barber's agenda for one date. The reaper runs first
// so no stale open row shows up as still booked.
type ListBarberDay struct {
	repo   domain.Repository
	reaper *ReapExpired
}

func NewListBarberDay(repo domain.Repository, reaper *ReapExpired) *ListBarberDay {
	return &ListBarberDay{repo: repo, reaper: reaper}
}

func (uc *ListBarberDay) Execute(
	ctx context.Context,
	barberID uint,
	date schedule.Date,
	today schedule.Date,
) ([]dto.BarberAppointmentDTO, error) {

	uc.reaper.Execute(ctx, today)

	rows, err := uc.repo.ListForBarberOnDate(ctx, barberID, date)
	if err != nil {
		return nil, err
	}

	out := make([]dto.BarberAppointmentDTO, 0, len(rows))
	for _, ap := range rows {
		out = append(out, dto.BarberAppointmentDTO{
			ID:          ap.ID,
			Date:        ap.Date,
			StartTime:   ap.StartTime,
			EndTime:     ap.EndTime,
			Status:      ap.Status,
			Price:       ap.Price,
			ClientName:  ap.Client.Name,
			ServiceName: ap.Service.Name,
		})
	}
	return out, nil
}

// ListClientAppointments is a client's own history, newest first.
type ListClientAppointments struct {
	repo   domain.Repository
	reaper *ReapExpired
}

func NewListClientAppointments(repo domain.Repository, reaper *ReapExpired) *ListClientAppointments {
	return &ListClientAppointments{repo: repo, reaper: reaper}
}

func (uc *ListClientAppointments) Execute(
	ctx context.Context,
	clientID uint,
	today schedule.Date,
) ([]models.Appointment, error) {

	uc.reaper.Execute(ctx, today)

	return uc.repo.ListForClient(ctx, clientID)
}
