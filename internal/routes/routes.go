package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-club/internal/audit"
	"github.com/BruksfildServices01/barber-club/internal/config"
	planDomain "github.com/BruksfildServices01/barber-club/internal/domain/plan"
	"github.com/BruksfildServices01/barber-club/internal/handlers"
	"github.com/BruksfildServices01/barber-club/internal/infra/cache"
	infraRepo "github.com/BruksfildServices01/barber-club/internal/infra/repository"
	"github.com/BruksfildServices01/barber-club/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/barber-club/internal/usecase/appointment"
	ucPlan "github.com/BruksfildServices01/barber-club/internal/usecase/plan"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	planRepo := infraRepo.NewPlanGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	availabilityCache := cache.NewAvailabilityCache(cache.NewRedisClient(cfg.RedisURL))

	planCatalog := planDomain.NewCatalog(cfg.PlanCutQuota)

	// ======================================================
	// 🧠 USE CASES — APPOINTMENTS
	// ======================================================
	availabilityUC := ucAppointment.NewGetAvailability(
		appointmentRepo,
		cfg.SlotGranularityMin,
	)

	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		planRepo,
		availabilityUC,
		auditDispatcher,
	)

	clientCancelUC := ucAppointment.NewCancelByClient(
		appointmentRepo,
		auditDispatcher,
		cfg.CancelWindowMin,
	)

	adminCancelUC := ucAppointment.NewCancelByAdmin(
		appointmentRepo,
		auditDispatcher,
	)

	confirmAppointmentUC := ucAppointment.NewConfirmAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	completeAppointmentUC := ucAppointment.NewCompleteAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	noShowUC := ucAppointment.NewMarkNoShow(
		appointmentRepo,
		auditDispatcher,
	)

	listAppointmentsByDateUC := ucAppointment.NewListAppointmentsByDate(
		appointmentRepo,
	)

	listAppointmentsByMonthUC := ucAppointment.NewListAppointmentsByMonth(
		appointmentRepo,
	)

	// ======================================================
	// 🧠 USE CASES — PLANS
	// ======================================================
	requestPlanUC := ucPlan.NewRequestPlan(
		planRepo,
		appointmentRepo,
		planCatalog,
		auditDispatcher,
	)

	approvePlanUC := ucPlan.NewApprovePlan(
		planRepo,
		appointmentRepo,
		auditDispatcher,
	)

	rejectPlanUC := ucPlan.NewRejectPlan(
		planRepo,
		appointmentRepo,
		auditDispatcher,
	)

	deactivatePlanUC := ucPlan.NewDeactivatePlan(
		planRepo,
		appointmentRepo,
		auditDispatcher,
	)

	planUsageUC := ucPlan.NewGetUsage(
		planRepo,
		appointmentRepo,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	barbershopHandler := handlers.NewBarbershopHandler(db)

	serviceHandler := handlers.NewServiceHandler(db)
	clientHandler := handlers.NewClientHandler(db)
	scheduleHandler := handlers.NewScheduleHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		db,
		confirmAppointmentUC,
		completeAppointmentUC,
		noShowUC,
		adminCancelUC,
		listAppointmentsByDateUC,
		listAppointmentsByMonthUC,
		availabilityCache,
	)

	planHandler := handlers.NewPlanHandler(
		planRepo,
		approvePlanUC,
		rejectPlanUC,
		deactivatePlanUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	publicHandler := handlers.NewPublicHandler(
		db,
		availabilityUC,
		createAppointmentUC,
		clientCancelUC,
		requestPlanUC,
		planUsageUC,
		availabilityCache,
	)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/:slug/services", publicHandler.ListServices)
			publicAPI.GET("/:slug/availability", publicHandler.Availability)
			publicAPI.GET("/:slug/plan-usage", publicHandler.PlanUsage)
			publicAPI.POST("/:slug/appointments", publicHandler.CreateAppointment)
			publicAPI.POST("/:slug/appointments/:ref/cancel", publicHandler.CancelAppointment)
			publicAPI.POST("/:slug/plans", publicHandler.RequestPlan)
		}

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/barbershop", barbershopHandler.GetMeBarbershop)
			secured.PATCH("/me/barbershop", barbershopHandler.UpdateMeBarbershop)

			secured.GET("/me/clients", clientHandler.List)
			secured.PATCH("/me/clients/:id/suspend", clientHandler.Suspend)
			secured.PATCH("/me/clients/:id/unsuspend", clientHandler.Unsuspend)

			secured.GET("/me/services", serviceHandler.List)
			secured.POST("/me/services", serviceHandler.Create)
			secured.PATCH("/me/services/:id", serviceHandler.Update)

			secured.GET("/me/schedule", scheduleHandler.GetWeek)
			secured.PUT("/me/schedule", scheduleHandler.PutWeek)
			secured.GET("/me/special-days", scheduleHandler.ListSpecialDays)
			secured.PUT("/me/special-days", scheduleHandler.UpsertSpecialDay)
			secured.DELETE("/me/special-days/:date", scheduleHandler.DeleteSpecialDay)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/me/appointments", appointmentHandler.ListByDate)
			secured.GET("/me/appointments/month", appointmentHandler.ListByMonth)
			secured.PATCH("/me/appointments/:id/confirm", appointmentHandler.Confirm)
			secured.PATCH("/me/appointments/:id/complete", appointmentHandler.Complete)
			secured.PATCH("/me/appointments/:id/no-show", appointmentHandler.NoShow)
			secured.PATCH("/me/appointments/:id/cancel", appointmentHandler.Cancel)

			// ------------------------------
			// PLANS
			// ------------------------------
			secured.GET("/me/plans", planHandler.List)
			secured.PATCH("/me/plans/:id/approve", planHandler.Approve)
			secured.PATCH("/me/plans/:id/reject", planHandler.Reject)
			secured.PATCH("/me/plans/:id/deactivate", planHandler.Deactivate)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
