package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookmyservice/config"
	"bookmyservice/database"
	bookingRepoPkg "bookmyservice/database/repository/booking"
	reviewRepoPkg "bookmyservice/database/repository/review"
	serviceRepoPkg "bookmyservice/database/repository/service"
	subscriptionRepoPkg "bookmyservice/database/repository/subscription"
	userRepoPkg "bookmyservice/database/repository/user"
	windowRepoPkg "bookmyservice/database/repository/window"
	"bookmyservice/handlers"
	"bookmyservice/routes"
	"bookmyservice/services/booking"
	"bookmyservice/services/catalog"
	"bookmyservice/services/notification"
	"bookmyservice/services/review"
	"bookmyservice/services/storage"
	"bookmyservice/services/subscription"
	"bookmyservice/services/user"
	"bookmyservice/utils"
	"bookmyservice/workers"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()
	utils.InitCodeCache()

	storageService, err := storage.NewCloudinaryStorage(config.AppConfig)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage: %v", err)
	}

	// Repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	serviceRepo := serviceRepoPkg.NewMongoServiceRepo()
	windowRepo := windowRepoPkg.NewMongoWindowRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	reviewRepo := reviewRepoPkg.NewMongoReviewRepo()
	subscriptionRepo := subscriptionRepoPkg.NewMongoSubscriptionRepo()

	// Services.
	notifier := notification.NewQueueNotificationService()
	defer notifier.Close()

	userService := &user.DefaultUserService{
		Repo:     userRepo,
		Notifier: notifier,
	}
	catalogService := &catalog.DefaultCatalogService{
		Services: serviceRepo,
		Windows:  windowRepo,
		Bookings: bookingRepo,
	}
	bookingEngine := &booking.DefaultBookingEngine{
		Windows:  windowRepo,
		Bookings: bookingRepo,
		Users:    userRepo,
		Services: serviceRepo,
		Notifier: notifier,
	}
	reviewService := &review.DefaultReviewService{Repo: reviewRepo}
	subscriptionService := &subscription.DefaultSubscriptionService{Repo: subscriptionRepo}

	// Background mail delivery.
	mailWorker := workers.NewMailWorker()
	mailWorker.Start()

	// HTTP surface.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	handlerBundle := &handlers.HandlerBundle{
		Users:         userService,
		Catalog:       catalogService,
		Bookings:      bookingEngine,
		Reviews:       reviewService,
		Subscriptions: subscriptionService,
		Storage:       storageService,
	}
	routes.RegisterRoutes(router, handlerBundle)

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

	mailWorker.Shutdown()
	database.CloseDB()
	logger.Sugar().Info("main: server stopped gracefully")
}
