package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lanavaja/barberia-api/internal/domain/schedule"
	"github.com/lanavaja/barberia-api/internal/httperr"
)

// parseDateQuery reads a required YYYY-MM-DD query parameter. On failure
// the response is already written.
func parseDateQuery(c *gin.Context, key string) (schedule.Date, bool) {
	raw := c.Query(key)
	if raw == "" {
		httperr.BadRequest(c, "missing_"+key, "Fecha obligatoria.")
		return schedule.Date{}, false
	}

	date, err := schedule.ParseDate(raw)
	if err != nil {
		httperr.BadRequest(c, "invalid_"+key, "Fecha inválida.")
		return schedule.Date{}, false
	}
	return date, true
}

func parseUUIDParam(c *gin.Context, key string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(key))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return uuid.Nil, false
	}
	return id, true
}

func parseUintParam(c *gin.Context, key string) (uint, bool) {
	n, err := strconv.ParseUint(c.Param(key), 10, 32)
	if err != nil || n == 0 {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(n), true
}
