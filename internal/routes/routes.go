package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/winhire/interview-engine/internal/audit"
	"github.com/winhire/interview-engine/internal/config"
	avdomain "github.com/winhire/interview-engine/internal/domain/availability"
	fbdomain "github.com/winhire/interview-engine/internal/domain/feedback"
	"github.com/winhire/interview-engine/internal/handlers"
	infraRepo "github.com/winhire/interview-engine/internal/infra/repository"
	"github.com/winhire/interview-engine/internal/logger"
	"github.com/winhire/interview-engine/internal/metrics"
	"github.com/winhire/interview-engine/internal/middleware"
	"github.com/winhire/interview-engine/internal/notify"
	"github.com/winhire/interview-engine/internal/timezone"
	ucApplication "github.com/winhire/interview-engine/internal/usecase/application"
	ucAvailability "github.com/winhire/interview-engine/internal/usecase/availability"
	ucFeedback "github.com/winhire/interview-engine/internal/usecase/feedback"
	ucInterview "github.com/winhire/interview-engine/internal/usecase/interview"
)

// Deps carries the process-wide singletons built in main.
type Deps struct {
	DB       *gorm.DB
	Config   *config.Config
	Log      logger.Logger
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
	Audit    audit.Sink
	Notifier notify.Publisher
	Clock    timezone.Clock
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(d.Log),
		middleware.Metrics(d.Metrics),
		middleware.CORSMiddleware(cfg.Server.AllowedOrigins),
	)

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	availabilityRepo := infraRepo.NewAvailabilityGormRepository(d.DB)
	interviewRepo := infraRepo.NewInterviewGormRepository(d.DB)
	feedbackRepo := infraRepo.NewFeedbackGormRepository(d.DB)
	applicationRepo := infraRepo.NewApplicationGormRepository(d.DB)

	checker := avdomain.NewChecker(availabilityRepo, timezone.Location(cfg.Scheduling.Timezone))
	policy := fbdomain.NewPolicy(cfg.Feedback.RatingMin, cfg.Feedback.RatingMax, cfg.Feedback.Recommendations)

	// ======================================================
	// USE CASES - AVAILABILITY
	// ======================================================
	declareAvailabilityUC := ucAvailability.NewDeclareAvailability(availabilityRepo, d.Audit)
	updateAvailabilityUC := ucAvailability.NewUpdateAvailability(availabilityRepo, d.Audit)
	deleteAvailabilityUC := ucAvailability.NewDeleteAvailability(availabilityRepo, d.Audit)
	listAvailabilityUC := ucAvailability.NewListAvailability(availabilityRepo)
	validateSlotUC := ucAvailability.NewValidateSlot(availabilityRepo, checker)
	findPanelistsUC := ucAvailability.NewFindAvailablePanelists(availabilityRepo)

	// ======================================================
	// USE CASES - INTERVIEWS
	// ======================================================
	scheduleInterviewUC := ucInterview.NewScheduleInterview(interviewRepo, checker, d.Audit, d.Log)
	updateInterviewUC := ucInterview.NewUpdateInterview(interviewRepo, checker, d.Clock, d.Audit)
	updateInterviewStatusUC := ucInterview.NewUpdateInterviewStatus(interviewRepo, d.Clock, d.Audit)
	completeInterviewUC := ucInterview.NewCompleteInterview(interviewRepo, d.Clock, d.Audit)
	cancelInterviewUC := ucInterview.NewCancelInterview(interviewRepo, d.Audit)
	rescheduleInterviewUC := ucInterview.NewRescheduleInterview(interviewRepo, checker, d.Audit, d.Log)
	deleteInterviewUC := ucInterview.NewDeleteInterview(interviewRepo, d.Audit)
	queryInterviewsUC := ucInterview.NewQueryInterviews(interviewRepo)

	// ======================================================
	// USE CASES - FEEDBACK
	// ======================================================
	submitFeedbackUC := ucFeedback.NewSubmitFeedback(feedbackRepo, policy, d.Audit)
	updateFeedbackUC := ucFeedback.NewUpdateFeedback(feedbackRepo, policy, d.Audit)
	deleteFeedbackUC := ucFeedback.NewDeleteFeedback(feedbackRepo, d.Audit)
	queryFeedbackUC := ucFeedback.NewQueryFeedback(feedbackRepo)

	// ======================================================
	// USE CASES - APPLICATIONS
	// ======================================================
	getApplicationUC := ucApplication.NewGetApplication(applicationRepo)
	updateApplicationStatusUC := ucApplication.NewUpdateApplicationStatus(
		applicationRepo,
		d.Clock,
		d.Notifier,
		d.Audit,
		d.Log,
	)
	transitionApplicationUC := ucApplication.NewTransitionApplication(applicationRepo, updateApplicationStatusUC)
	decideApplicationUC := ucApplication.NewDecideApplication(transitionApplicationUC)

	// ======================================================
	// HANDLERS
	// ======================================================
	meHandler := handlers.NewMeHandler(d.DB)
	auditLogsHandler := handlers.NewAuditLogsHandler(infraRepo.NewAuditLogGormRepository(d.DB))

	availabilityHandler := handlers.NewAvailabilityHandler(
		declareAvailabilityUC,
		updateAvailabilityUC,
		deleteAvailabilityUC,
		listAvailabilityUC,
		validateSlotUC,
		findPanelistsUC,
	)

	interviewHandler := handlers.NewInterviewHandler(
		scheduleInterviewUC,
		updateInterviewUC,
		updateInterviewStatusUC,
		completeInterviewUC,
		cancelInterviewUC,
		rescheduleInterviewUC,
		deleteInterviewUC,
		queryInterviewsUC,
	)

	feedbackHandler := handlers.NewFeedbackHandler(
		submitFeedbackUC,
		updateFeedbackUC,
		deleteFeedbackUC,
		queryFeedbackUC,
	)

	applicationHandler := handlers.NewApplicationHandler(
		getApplicationUC,
		updateApplicationStatusUC,
		transitionApplicationUC,
		decideApplicationUC,
		queryFeedbackUC,
	)

	// ======================================================
	// OPERATIONS
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware(cfg.Auth))
	{
		api.GET("/me", meHandler.GetMe)
		api.GET("/audit-logs", auditLogsHandler.List)

		// ------------------------------
		// AVAILABILITY
		// ------------------------------
		api.POST("/availability", availabilityHandler.Create)
		api.GET("/availability", availabilityHandler.List)
		api.GET("/availability/panelist/:panelistId", availabilityHandler.ListByPanelist)
		api.GET("/availability/available", availabilityHandler.Available)
		api.GET("/availability/validate", availabilityHandler.Validate)
		api.PUT("/availability/:id", availabilityHandler.Update)
		api.DELETE("/availability/:id", availabilityHandler.Delete)

		// ------------------------------
		// INTERVIEWS
		// ------------------------------
		api.POST("/interviews", interviewHandler.Create)
		api.GET("/interviews", interviewHandler.List)
		api.GET("/interviews/application/:applicationId", interviewHandler.ListByApplication)
		api.GET("/interviews/interviewer/:interviewerId", interviewHandler.ListByInterviewer)
		api.GET("/interviews/:id", interviewHandler.Get)
		api.PUT("/interviews/:id", interviewHandler.Update)
		api.PUT("/interviews/:id/status", interviewHandler.UpdateStatus)
		api.POST("/interviews/:id/complete", interviewHandler.Complete)
		api.POST("/interviews/:id/cancel", interviewHandler.Cancel)
		api.POST("/interviews/:id/reschedule", interviewHandler.Reschedule)
		api.DELETE("/interviews/:id", interviewHandler.Delete)

		// ------------------------------
		// FEEDBACK
		// ------------------------------
		api.POST("/feedback", feedbackHandler.Create)
		api.GET("/feedback/interview/:interviewId", feedbackHandler.ListByInterview)
		api.GET("/feedback/application/:applicationId", feedbackHandler.ListByApplication)
		api.GET("/feedback/:id", feedbackHandler.Get)
		api.PUT("/feedback/:id", feedbackHandler.Update)
		api.DELETE("/feedback/:id", feedbackHandler.Delete)

		// ------------------------------
		// APPLICATIONS
		// ------------------------------
		api.GET("/applications/:id", applicationHandler.Get)
		api.GET("/applications/:id/rounds", applicationHandler.Rounds)
		api.PUT("/applications/:id/status", applicationHandler.UpdateStatus)
		api.POST("/applications/:id/transition", applicationHandler.Transition)
		api.POST("/applications/:id/decision", applicationHandler.Decide)
	}
}
