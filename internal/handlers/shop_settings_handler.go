package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/lanavaja/barberia-api/internal/domain/schedule"
	"github.com/lanavaja/barberia-api/internal/httperr"
	"github.com/lanavaja/barberia-api/internal/httpresp"
	"github.com/lanavaja/barberia-api/internal/middleware"
	ucSchedule "github.com/lanavaja/barberia-api/internal/usecase/schedule"
)

type ShopSettingsHandler struct {
	getUC    *ucSchedule.GetShopSettings
	updateUC *ucSchedule.UpdateShopSettings
}

func NewShopSettingsHandler(
	getUC *ucSchedule.GetShopSettings,
	updateUC *ucSchedule.UpdateShopSettings,
) *ShopSettingsHandler {
	return &ShopSettingsHandler{getUC: getUC, updateUC: updateUC}
}

type UpdateShopSettingsRequest struct {
	WorkingHours schedule.WeeklySchedule `json:"working_hours"`
	BlockedDates schedule.DateSet        `json:"blocked_dates"`
}

func (h *ShopSettingsHandler) Get(c *gin.Context) {
	settings, err := h.getUC.Execute(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, settings)
}

func (h *ShopSettingsHandler) Update(c *gin.Context) {
	var req UpdateShopSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	settings, err := h.updateUC.Execute(c.Request.Context(), ucSchedule.UpdateShopSettingsInput{
		WorkingHours: req.WorkingHours,
		BlockedDates: req.BlockedDates,
		Actor:        middleware.Actor(c),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, settings)
}
