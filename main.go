// File: reservabot/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"reservabot/config"
	"reservabot/cron"
	"reservabot/database"
	bookingRepo "reservabot/database/repository/booking"
	customerRepo "reservabot/database/repository/customer"
	resourceRepo "reservabot/database/repository/resource"
	"reservabot/handlers"
	"reservabot/middleware"
	"reservabot/routes"
	"reservabot/services/booking"
	"reservabot/services/calendar"
	"reservabot/services/nlp"
	"reservabot/services/notification"
	"reservabot/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	calendarService, err := calendar.NewCalendarService(context.Background())
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize calendar service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	custRepo := customerRepo.NewMongoCustomerRepo()
	resRepo := resourceRepo.NewMongoResourceRepo()
	bkRepo := bookingRepo.NewMongoBookingRepo()

	// services.
	notificationService := notification.NewGatewayNotificationService()
	reminderScheduler := cron.NewAsynqReminderScheduler()
	conversationStore := booking.NewRedisConversationStore(utils.GetCacheClient(), 30*time.Minute)

	workflowService := &booking.DefaultWorkflowService{
		Interpreter:            nlp.NewInterpreter(nlp.DefaultLexicon()),
		Customers:              custRepo,
		Resources:              resRepo,
		Bookings:               bkRepo,
		Notifier:               notificationService,
		Calendar:               calendarService,
		Reminders:              reminderScheduler,
		State:                  conversationStore,
		Logger:                 logger,
		DefaultDurationMinutes: config.AppConfig.DefaultDurationMinutes,
	}

	webhookHandler := handlers.NewWebhookHandler(workflowService, logger)
	adminHandler := handlers.NewAdminHandler(bkRepo, resRepo)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Webhook endpoints.
		HandleInbound: webhookHandler.HandleInbound,

		// Admin endpoints.
		AdminLogin:     adminHandler.Login,
		ListBookings:   adminHandler.ListBookings,
		ListResources:  adminHandler.ListResources,
		CreateResource: adminHandler.CreateResource,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the reminder worker in the background.
	go cron.InitReminderWorker(notificationService)

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
