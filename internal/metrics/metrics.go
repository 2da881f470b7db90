package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	BookingsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "barberia_bookings_created_total",
		Help: "Appointments successfully booked.",
	})

	BookingsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "barberia_bookings_rejected_total",
		Help: "Booking attempts rejected, by business rule.",
	}, []string{"reason"})

	AppointmentsReaped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "barberia_appointments_reaped_total",
		Help: "Stale open appointments expired by the reaper.",
	})

	SlotQueries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "barberia_slot_queries_total",
		Help: "Availability listings served.",
	})

	SlotCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "barberia_slot_cache_hits_total",
		Help: "Availability listings served from the redis cache.",
	})
)

func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
