package routes

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-appointments/internal/clock"
	"github.com/BruksfildServices01/barber-appointments/internal/config"
	domain "github.com/BruksfildServices01/barber-appointments/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-appointments/internal/handlers"
	"github.com/BruksfildServices01/barber-appointments/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/barber-appointments/internal/usecase/appointment"
)

// Dependencies are the infrastructure singletons the routes are built on.
type Dependencies struct {
	Config *config.Config
	Logger *slog.Logger
	Clock  clock.Clock

	Appointments domain.Repository
	Catalog      domain.Catalog
	Directory    domain.Directory
	SlotCache    domain.SlotCache
	Audit        ucAppointment.Auditor

	// AuditLogs backs the admin audit listing; the route is skipped when nil.
	AuditLogs handlers.AuditLogReader
}

func RegisterRoutes(r *gin.Engine, deps Dependencies) {
	cfg := deps.Config
	loc := cfg.Location()

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.CORSMiddleware(cfg.CORSAllowedOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// USE CASES
	// ======================================================
	createUC := ucAppointment.NewCreateAppointment(
		deps.Appointments,
		deps.Catalog,
		deps.Directory,
		deps.SlotCache,
		deps.Audit,
		loc,
		deps.Logger,
	)

	transitionUC := ucAppointment.NewTransitionAppointment(
		deps.Appointments,
		deps.SlotCache,
		deps.Audit,
		deps.Clock,
		loc,
	)

	getUC := ucAppointment.NewGetAppointment(deps.Appointments)

	listUC := ucAppointment.NewListAppointments(
		deps.Appointments,
		deps.Directory,
	)

	notesUC := ucAppointment.NewUpdateAppointmentNotes(
		deps.Appointments,
		deps.Audit,
	)

	rescheduleUC := ucAppointment.NewRescheduleAppointment(
		deps.Appointments,
		deps.SlotCache,
		deps.Audit,
		loc,
		deps.Logger,
	)

	deleteUC := ucAppointment.NewDeleteAppointment(
		deps.Appointments,
		deps.SlotCache,
		deps.Audit,
		loc,
	)

	occupiedUC := ucAppointment.NewGetOccupiedSlots(
		deps.Appointments,
		deps.Directory,
		deps.SlotCache,
		loc,
	)

	availabilityUC := ucAppointment.NewGetAvailability(
		deps.Catalog,
		occupiedUC,
		deps.Clock,
		ucAppointment.BusinessHours{
			Open:  cfg.OpeningTime,
			Close: cfg.ClosingTime,
			Step:  cfg.SlotStep(),
		},
		loc,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	appointmentHandler := handlers.NewAppointmentHandler(
		createUC,
		transitionUC,
		getUC,
		listUC,
		notesUC,
		rescheduleUC,
		deleteUC,
		loc,
	)

	scheduleHandler := handlers.NewScheduleHandler(occupiedUC, availabilityUC, loc)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/barbers/:id/occupied", scheduleHandler.Occupied)
		api.GET("/barbers/:id/availability", scheduleHandler.Availability)

		// ------------------------------
		// SECURED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg.JWTSecret))
		{
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments", appointmentHandler.ListAll)
			secured.GET("/appointments/:id", appointmentHandler.Get)
			secured.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus)
			secured.PATCH("/appointments/:id/notes", appointmentHandler.UpdateNotes)
			secured.PATCH("/appointments/:id/reschedule", appointmentHandler.Reschedule)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)

			secured.GET("/clients/:id/appointments", appointmentHandler.ListByClient)
			secured.GET("/barbers/:id/appointments", appointmentHandler.ListByBarber)

			if deps.AuditLogs != nil {
				secured.GET("/audit-logs", handlers.NewAuditLogsHandler(deps.AuditLogs, loc).List)
			}
		}
	}
}
