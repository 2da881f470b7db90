package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lanavaja/barberia-api/internal/domain/schedule"
	"github.com/lanavaja/barberia-api/internal/httperr"
	"github.com/lanavaja/barberia-api/internal/httpresp"
	"github.com/lanavaja/barberia-api/internal/middleware"
	"github.com/lanavaja/barberia-api/internal/models"
	ucSchedule "github.com/lanavaja/barberia-api/internal/usecase/schedule"
)

// ======================================================
// HANDLER
// ======================================================

type ScheduleHandler struct {
	db     *gorm.DB
	saveUC *ucSchedule.SaveAvailability
}

func NewScheduleHandler(db *gorm.DB, saveUC *ucSchedule.SaveAvailability) *ScheduleHandler {
	return &ScheduleHandler{db: db, saveUC: saveUC}
}

// ======================================================
// REQUESTS
// ======================================================

type SaveAvailabilityRequest struct {
	Week         schedule.WeeklySchedule `json:"availability"`
	BlockedDates schedule.DateSet        `json:"blocked_dates"`
}

// ======================================================
// GET
// ======================================================

func (h *ScheduleHandler) MyAvailability(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)
	h.get(c, barberID)
}

func (h *ScheduleHandler) BarberAvailability(c *gin.Context) {
	barberID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	h.get(c, barberID)
}

func (h *ScheduleHandler) get(c *gin.Context, barberID uint) {
	var av models.BarberAvailability
	if err := h.db.First(&av, "barber_id = ?", barberID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "barber_not_found", "Barbero no encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_availability", "Error al consultar el horario.")
		return
	}

	httpresp.OK(c, av)
}

// ======================================================
// PUT
// ======================================================

func (h *ScheduleHandler) UpdateMyAvailability(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)
	h.update(c, barberID)
}

func (h *ScheduleHandler) UpdateBarberAvailability(c *gin.Context) {
	barberID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	h.update(c, barberID)
}

func (h *ScheduleHandler) update(c *gin.Context, barberID uint) {
	var req SaveAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	av, err := h.saveUC.Execute(c.Request.Context(), ucSchedule.SaveAvailabilityInput{
		BarberID:     barberID,
		Week:         req.Week,
		BlockedDates: req.BlockedDates,
		Actor:        middleware.Actor(c),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, av)
}
