package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/cliqtrix/consulting-chatbot/internal/audit"
	"github.com/cliqtrix/consulting-chatbot/internal/auth"
	"github.com/cliqtrix/consulting-chatbot/internal/catalog"
	"github.com/cliqtrix/consulting-chatbot/internal/chat"
	"github.com/cliqtrix/consulting-chatbot/internal/config"
	dbpkg "github.com/cliqtrix/consulting-chatbot/internal/db"
	domain "github.com/cliqtrix/consulting-chatbot/internal/domain/booking"
	"github.com/cliqtrix/consulting-chatbot/internal/handlers"
	infraRepo "github.com/cliqtrix/consulting-chatbot/internal/infra/repository"
	"github.com/cliqtrix/consulting-chatbot/internal/logging"
	"github.com/cliqtrix/consulting-chatbot/internal/notify"
	"github.com/cliqtrix/consulting-chatbot/internal/otp"
	"github.com/cliqtrix/consulting-chatbot/internal/sms"
	ucBooking "github.com/cliqtrix/consulting-chatbot/internal/usecase/booking"
	"github.com/cliqtrix/consulting-chatbot/internal/web"
)

func RegisterRoutes(r *gin.Engine, cfg *config.Config, logger *logging.Logger) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	var appointmentRepo domain.Repository
	if cfg.StorageDriver == config.StoragePostgres {
		appointmentRepo = infraRepo.NewAppointmentGormRepository(dbpkg.NewDB(cfg))
	} else {
		appointmentRepo = infraRepo.NewAppointmentMemoryRepository()
	}

	var otpStore otp.Store
	if cfg.RedisAddr != "" {
		otpStore = otp.NewRedisStore(redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		}))
	} else {
		otpStore = otp.NewMemoryStore()
	}

	var smsSender sms.Sender
	if cfg.SMSWebhookURL != "" {
		smsSender = sms.NewWebhookSender(cfg.SMSWebhookURL, cfg.SMSWebhookToken)
	} else {
		smsSender = sms.NewLogSender(logger)
	}

	var emailSender notify.EmailSender
	if cfg.SendGridAPIKey != "" {
		emailSender = notify.NewSendGridSender(notify.SendGridConfig{
			APIKey:    cfg.SendGridAPIKey,
			FromEmail: cfg.SendGridFromEmail,
			FromName:  cfg.SendGridFromName,
		}, logger)
	} else {
		emailSender = notify.NewStubEmailSender(logger)
	}
	notifier := notify.NewService(emailSender, logger)

	auditLogger := audit.New(logger)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	tokens := auth.NewTokenService(cfg.JWTSecret)

	// ======================================================
	// 🧠 USE CASES — BOOKING
	// ======================================================
	bookUC := ucBooking.NewBookAppointment(
		appointmentRepo,
		notifier,
		auditDispatcher,
	)

	listUpcomingUC := ucBooking.NewListUpcoming(
		appointmentRepo,
	)

	rescheduleUC := ucBooking.NewReschedule(
		appointmentRepo,
		notifier,
		auditDispatcher,
	)

	cancelUC := ucBooking.NewCancel(
		appointmentRepo,
		notifier,
		auditDispatcher,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	chatHandler := handlers.NewChatHandler(chat.New(catalog.All()))

	appointmentHandler := handlers.NewAppointmentHandler(
		bookUC,
		listUpcomingUC,
		rescheduleUC,
		cancelUC,
	)

	otpHandler := handlers.NewOTPHandler(otpStore, smsSender, tokens, auditDispatcher)

	webHandler := web.NewHandler()

	// ======================================================
	// 🌍 ROTAS WEB (HTML)
	// ======================================================
	r.GET("/", webHandler.Index)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.POST("/chat", chatHandler.Advance)
		api.GET("/services", chatHandler.ListServices)

		appointments := api.Group("/appointments")
		{
			appointments.POST("/book", appointmentHandler.Book)
			appointments.POST("/slots", appointmentHandler.Slots)
			appointments.POST("/fetch", appointmentHandler.Fetch)
			appointments.POST("/update", appointmentHandler.Update)
			appointments.POST("/cancel", appointmentHandler.Cancel)
		}

		otpGroup := api.Group("/otp")
		{
			otpGroup.POST("/send", otpHandler.Send)
			otpGroup.POST("/verify", otpHandler.Verify)
		}
	}
}
