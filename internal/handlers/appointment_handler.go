package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/lanavaja/barberia-api/internal/config"
	domain "github.com/lanavaja/barberia-api/internal/domain/appointment"
	"github.com/lanavaja/barberia-api/internal/domain/schedule"
	"github.com/lanavaja/barberia-api/internal/httperr"
	"github.com/lanavaja/barberia-api/internal/httpresp"
	"github.com/lanavaja/barberia-api/internal/middleware"
	"github.com/lanavaja/barberia-api/internal/models"
	"github.com/lanavaja/barberia-api/internal/timezone"
	ucAppointment "github.com/lanavaja/barberia-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	config *config.Config

	bookUC         *ucAppointment.BookAppointment
	updateStatusUC *ucAppointment.UpdateStatus
	updateNotesUC  *ucAppointment.UpdateNotes
	listBarberUC   *ucAppointment.ListBarberDay
	listClientUC   *ucAppointment.ListClientAppointments
	purgeUC        *ucAppointment.PurgeAppointment
}

func NewAppointmentHandler(
	cfg *config.Config,
	bookUC *ucAppointment.BookAppointment,
	updateStatusUC *ucAppointment.UpdateStatus,
	updateNotesUC *ucAppointment.UpdateNotes,
	listBarberUC *ucAppointment.ListBarberDay,
	listClientUC *ucAppointment.ListClientAppointments,
	purgeUC *ucAppointment.PurgeAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		config:         cfg,
		bookUC:         bookUC,
		updateStatusUC: updateStatusUC,
		updateNotesUC:  updateNotesUC,
		listBarberUC:   listBarberUC,
		listClientUC:   listClientUC,
		purgeUC:        purgeUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookAppointmentRequest struct {
	BarberID  uint   `json:"barber_id" binding:"required"`
	ServiceID uint   `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"`       // YYYY-MM-DD
	StartTime string `json:"start_time" binding:"required"` // HH:MM
	EndTime   string `json:"end_time" binding:"required"`   // HH:MM
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// ERROR MAPPING
// ======================================================

var businessMessages = map[string]string{
	"barber_not_found":            "Barbero no encontrado.",
	"service_not_found":           "Servicio no encontrado.",
	"appointment_not_found":       "Cita no encontrada.",
	"not_found_or_unauthorized":   "Cita no encontrada.",
	"shop_closed":                 "La barbería está cerrada ese día.",
	"barber_not_working_this_day": "El barbero no trabaja ese día.",
	"outside_working_hours":       "Fuera del horario de atención.",
	"slot_unavailable":            "El horario ya no está disponible.",
	"invalid_time_range":          "Rango de horario inválido.",
	"invalid_duration":            "La duración no corresponde al servicio.",
	"invalid_status":              "Estado inválido.",
	"invalid_rating":              "Calificación inválida.",
	"appointment_not_completed":   "La cita aún no está completada.",
	"invalid_schedule":            "Horario semanal inválido.",
	"forbidden":                   "No tienes permiso para esta acción.",
}

// writeError maps a use-case error onto the response: business errors by
// family, transient store failures as 503, everything else as 500.
func writeError(c *gin.Context, err error) {
	if be, ok := httperr.AsBusiness(err); ok {
		msg := businessMessages[be.Code]
		if msg == "" {
			msg = "Operación rechazada."
		}
		httperr.FromBusiness(c, err, msg)
		return
	}

	if httperr.IsTransient(err) {
		httperr.Unavailable(c, "store_unavailable", "Servicio temporalmente no disponible.")
		return
	}

	httperr.Internal(c, "internal_error", "Error interno.")
}

// ======================================================
// BOOK
// ======================================================

func (h *AppointmentHandler) Book(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(uint)

	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	date, err := schedule.ParseDate(req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Fecha inválida.")
		return
	}

	start, err := schedule.ParseClock(req.StartTime)
	if err != nil {
		httperr.BadRequest(c, "invalid_start_time", "Hora inválida.")
		return
	}

	end, err := schedule.ParseClock(req.EndTime)
	if err != nil {
		httperr.BadRequest(c, "invalid_end_time", "Hora inválida.")
		return
	}

	ap, err := h.bookUC.Execute(c.Request.Context(), ucAppointment.BookInput{
		ClientID:  clientID,
		BarberID:  req.BarberID,
		ServiceID: req.ServiceID,
		Date:      date,
		StartTime: start,
		EndTime:   end,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// STATUS
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	ap, err := h.updateStatusUC.Execute(c.Request.Context(), ucAppointment.UpdateStatusInput{
		AppointmentID: id,
		NewStatus:     domain.Status(req.Status),
		Actor:         middleware.Actor(c),
		Now:           timezone.NowIn(h.config.Timezone),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// NOTES
// ======================================================

func (h *AppointmentHandler) UpdateNotes(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var patch models.AppointmentNotes
	if err := c.ShouldBindJSON(&patch); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	ap, err := h.updateNotesUC.Execute(c.Request.Context(), ucAppointment.UpdateNotesInput{
		AppointmentID: id,
		Actor:         middleware.Actor(c),
		Patch:         patch,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// LISTS
// ======================================================

// MyAgenda is the authenticated barber's day view.
func (h *AppointmentHandler) MyAgenda(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	date, ok := parseDateQuery(c, "date")
	if !ok {
		return
	}

	out, err := h.listBarberUC.Execute(
		c.Request.Context(),
		barberID,
		date,
		timezone.TodayIn(h.config.Timezone),
	)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, out)
}

// BarberAgenda is the same view for admins, for any barber.
func (h *AppointmentHandler) BarberAgenda(c *gin.Context) {
	barberID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	date, ok := parseDateQuery(c, "date")
	if !ok {
		return
	}

	out, err := h.listBarberUC.Execute(
		c.Request.Context(),
		barberID,
		date,
		timezone.TodayIn(h.config.Timezone),
	)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, out)
}

// MyAppointments is the authenticated client's history, newest first.
func (h *AppointmentHandler) MyAppointments(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(uint)

	out, err := h.listClientUC.Execute(
		c.Request.Context(),
		clientID,
		timezone.TodayIn(h.config.Timezone),
	)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, out)
}

// ======================================================
// PURGE (admin)
// ======================================================

func (h *AppointmentHandler) Purge(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.purgeUC.Execute(c.Request.Context(), id, middleware.Actor(c)); err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"deleted": true})
}
