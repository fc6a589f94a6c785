// File: coachly/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"coachly/config"
	"coachly/cron"
	"coachly/database"
	bookingRepoPkg "coachly/database/repository/booking"
	scheduleRepoPkg "coachly/database/repository/schedule"
	sessiontypeRepoPkg "coachly/database/repository/sessiontype"
	"coachly/handlers"
	"coachly/middleware"
	"coachly/routes"
	"coachly/services/admin"
	"coachly/services/booking"
	"coachly/services/notification"
	"coachly/services/scheduling"
	"coachly/services/sessiontype"
	"coachly/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	scheduleRepo := scheduleRepoPkg.NewMongoScheduleRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	sessionTypeRepo := sessiontypeRepoPkg.NewMongoSessionTypeRepo()

	for name, repo := range map[string]interface{ EnsureIndexes() error }{
		"schedule":     scheduleRepo,
		"booking":      bookingRepo,
		"session_type": sessionTypeRepo,
	} {
		if err := repo.EnsureIndexes(); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure %s indexes: %v", name, err)
		}
	}

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer asynqClient.Close()

	// services.
	sessionTypeService := &sessiontype.DefaultSessionTypeService{
		Repo:        sessionTypeRepo,
		CacheClient: utils.GetCacheClient(),
	}

	notificationService := &notification.LogNotificationService{}

	scheduleService := &scheduling.DefaultScheduleService{
		Repo:        scheduleRepo,
		CacheClient: utils.GetCacheClient(),
		Timezone:    config.AppConfig.ReferenceTimezone,
	}

	bookingService := &booking.DefaultBookingService{
		ScheduleRepo:      scheduleRepo,
		BookingRepo:       bookingRepo,
		SessionTypes:      sessionTypeService,
		Notification:      notificationService,
		AsynqClient:       asynqClient,
		CacheClient:       utils.GetCacheClient(),
		Timezone:          config.AppConfig.ReferenceTimezone,
		PastBufferMinutes: config.AppConfig.PastBufferMinutes,
	}

	authService := &admin.DefaultAuthService{
		AuthCache: utils.GetAuthCacheClient(),
	}

	bookingHandler := handlers.NewBookingHandler(bookingService)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)
	sessionTypeHandler := handlers.NewSessionTypeHandler(sessionTypeService)
	adminHandler := handlers.NewAdminHandler(authService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Availability and booking endpoints.
		GetAvailableSlotsHandler: bookingHandler.GetAvailableSlots,
		CreateBookingHandler:     bookingHandler.CreateBooking,
		CancelBookingHandler:     bookingHandler.CancelBooking,
		ListBookingsHandler:      bookingHandler.ListBookings,

		// Session-type catalogue endpoints.
		ListSessionTypesHandler:  sessionTypeHandler.ListSessionTypes,
		UpsertSessionTypeHandler: sessionTypeHandler.UpsertSessionType,
		DeleteSessionTypeHandler: sessionTypeHandler.DeleteSessionType,

		// Schedule administration endpoints.
		CreateRuleHandler:      scheduleHandler.CreateRule,
		ListRulesHandler:       scheduleHandler.ListRules,
		UpdateRuleHandler:      scheduleHandler.UpdateRule,
		DeleteRuleHandler:      scheduleHandler.DeleteRule,
		CreateExceptionHandler: scheduleHandler.CreateException,
		ListExceptionsHandler:  scheduleHandler.ListExceptions,
		DeleteExceptionHandler: scheduleHandler.DeleteException,

		// Admin auth endpoints.
		AdminLoginHandler:  adminHandler.Login,
		AdminLogoutHandler: adminHandler.Logout,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background reminder worker and health monitor.
	cron.InitReminderWorker(notificationService)
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
