package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/lanavaja/barberia-api/internal/audit"
	"github.com/lanavaja/barberia-api/internal/cache"
	"github.com/lanavaja/barberia-api/internal/config"
	domain "github.com/lanavaja/barberia-api/internal/domain/appointment"
	"github.com/lanavaja/barberia-api/internal/handlers"
	infraRepo "github.com/lanavaja/barberia-api/internal/infra/repository"
	"github.com/lanavaja/barberia-api/internal/middleware"
	ucAppointment "github.com/lanavaja/barberia-api/internal/usecase/appointment"
	ucSchedule "github.com/lanavaja/barberia-api/internal/usecase/schedule"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
	log *zap.Logger,
) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	slotCache := cache.NewSlotCache(rdb, log)

	// ======================================================
	// USE CASES
	// ======================================================
	reaperUC := ucAppointment.NewReapExpired(appointmentRepo, auditDispatcher, log)

	bookUC := ucAppointment.NewBookAppointment(appointmentRepo, auditDispatcher, slotCache)
	updateStatusUC := ucAppointment.NewUpdateStatus(appointmentRepo, auditDispatcher, slotCache)
	updateNotesUC := ucAppointment.NewUpdateNotes(appointmentRepo)
	listBarberUC := ucAppointment.NewListBarberDay(appointmentRepo, reaperUC)
	listClientUC := ucAppointment.NewListClientAppointments(appointmentRepo, reaperUC)
	purgeUC := ucAppointment.NewPurgeAppointment(appointmentRepo, auditDispatcher)
	availabilityUC := ucAppointment.NewGetAvailability(appointmentRepo, reaperUC, slotCache)

	saveAvailabilityUC := ucSchedule.NewSaveAvailability(appointmentRepo, auditDispatcher, slotCache)
	getSettingsUC := ucSchedule.NewGetShopSettings(appointmentRepo)
	updateSettingsUC := ucSchedule.NewUpdateShopSettings(appointmentRepo, auditDispatcher, slotCache)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	usersHandler := handlers.NewUsersHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		cfg,
		bookUC,
		updateStatusUC,
		updateNotesUC,
		listBarberUC,
		listClientUC,
		purgeUC,
	)

	scheduleHandler := handlers.NewScheduleHandler(db, saveAvailabilityUC)
	shopSettingsHandler := handlers.NewShopSettingsHandler(getSettingsUC, updateSettingsUC)
	publicHandler := handlers.NewPublicHandler(db, cfg, availabilityUC)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/services", publicHandler.ListServices)
			publicAPI.GET("/barbers", publicHandler.ListBarbers)
			publicAPI.GET("/availability", publicHandler.Availability)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/services", serviceHandler.List)
			secured.GET("/shop-settings", shopSettingsHandler.Get)

			// Status and notes scope to the actor inside the engine, so
			// every role shares the route.
			secured.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus)
			secured.PATCH("/appointments/:id/notes", appointmentHandler.UpdateNotes)

			// ------------------------------
			// CLIENTES
			// ------------------------------
			client := secured.Group("/")
			client.Use(middleware.RequireRole(domain.RoleClient))
			{
				client.POST("/me/appointments", appointmentHandler.Book)
				client.GET("/me/appointments", appointmentHandler.MyAppointments)
			}

			// ------------------------------
			// BARBEROS
			// ------------------------------
			barber := secured.Group("/")
			barber.Use(middleware.RequireRole(domain.RoleBarber))
			{
				barber.GET("/me/agenda", appointmentHandler.MyAgenda)
				barber.GET("/me/availability", scheduleHandler.MyAvailability)
				barber.PUT("/me/availability", scheduleHandler.UpdateMyAvailability)
			}

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireRole(domain.RoleAdmin))
			{
				admin.POST("/barbers", usersHandler.CreateBarber)
				admin.GET("/users", usersHandler.List)

				admin.GET("/barbers/:id/availability", scheduleHandler.BarberAvailability)
				admin.PUT("/barbers/:id/availability", scheduleHandler.UpdateBarberAvailability)
				admin.GET("/barbers/:id/agenda", appointmentHandler.BarberAgenda)

				admin.POST("/services", serviceHandler.Create)
				admin.PATCH("/services/:id", serviceHandler.Update)
				admin.DELETE("/services/:id", serviceHandler.Delete)

				admin.PUT("/shop-settings", shopSettingsHandler.Update)

				admin.DELETE("/appointments/:id", appointmentHandler.Purge)

				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
