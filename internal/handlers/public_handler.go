package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lanavaja/barberia-api/internal/config"
	"github.com/lanavaja/barberia-api/internal/httperr"
	"github.com/lanavaja/barberia-api/internal/models"
	"github.com/lanavaja/barberia-api/internal/timezone"
	ucAppointment "github.com/lanavaja/barberia-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

// PublicHandler serves the unauthenticated surface a booking page needs:
// the service catalogue, the barber roster and the free slots.
type PublicHandler struct {
	db     *gorm.DB
	config *config.Config

	availabilityUC *ucAppointment.GetAvailability
}

func NewPublicHandler(
	db *gorm.DB,
	cfg *config.Config,
	availabilityUC *ucAppointment.GetAvailability,
) *PublicHandler {
	return &PublicHandler{
		db:             db,
		config:         cfg,
		availabilityUC: availabilityUC,
	}
}

// ======================================================
// SERVICES
// ======================================================

func (h *PublicHandler) ListServices(c *gin.Context) {
	var services []models.Service
	if err := h.db.
		Where("active = ?", true).
		Order("id ASC").
		Find(&services).Error; err != nil {

		httperr.Internal(c, "failed_to_list_services", "Error al listar servicios.")
		return
	}

	c.JSON(http.StatusOK, services)
}

// ======================================================
// BARBERS
// ======================================================

func (h *PublicHandler) ListBarbers(c *gin.Context) {
	var barbers []models.User
	if err := h.db.
		Where("role = ?", models.RoleBarber).
		Order("id ASC").
		Find(&barbers).Error; err != nil {

		httperr.Internal(c, "failed_to_list_barbers", "Error al listar barberos.")
		return
	}

	// Only what the booking page needs; never the full account row.
	out := make([]gin.H, 0, len(barbers))
	for _, b := range barbers {
		out = append(out, gin.H{
			"id":   b.ID,
			"name": b.Name,
		})
	}

	c.JSON(http.StatusOK, out)
}

// ======================================================
// AVAILABILITY
// ======================================================

// Availability lists the free start times for a barber, service and date.
func (h *PublicHandler) Availability(c *gin.Context) {
	barberID, err := strconv.ParseUint(c.Query("barber_id"), 10, 32)
	if err != nil || barberID == 0 {
		httperr.BadRequest(c, "invalid_barber_id", "Barbero inválido.")
		return
	}

	serviceID, err := strconv.ParseUint(c.Query("service_id"), 10, 32)
	if err != nil || serviceID == 0 {
		httperr.BadRequest(c, "invalid_service_id", "Servicio inválido.")
		return
	}

	date, ok := parseDateQuery(c, "date")
	if !ok {
		return
	}

	slots, err := h.availabilityUC.Execute(c.Request.Context(), ucAppointment.AvailabilityInput{
		BarberID:  uint(barberID),
		ServiceID: uint(serviceID),
		Date:      date,
		Today:     timezone.TodayIn(h.config.Timezone),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"barber_id":  barberID,
		"service_id": serviceID,
		"date":       date,
		"slots":      slots,
	})
}
