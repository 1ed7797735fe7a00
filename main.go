package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"seabreeze/config"
	"seabreeze/cron"
	"seabreeze/database"
	reservationRepo "seabreeze/database/repository/reservation"
	resourceRepo "seabreeze/database/repository/resource"
	"seabreeze/handlers"
	"seabreeze/middleware"
	"seabreeze/routes"
	"seabreeze/services/availability"
	"seabreeze/services/reservation"
	"seabreeze/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
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
	router.Use(cors.Default())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	resRepo := reservationRepo.NewMongoReservationRepo(config.AppConfig.DatabaseName)
	rsrcRepo := resourceRepo.NewMongoResourceRepo(config.AppConfig.DatabaseName)
	if err := resRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure ledger indexes: %v", err)
	}

	// services.
	engine := &availability.Engine{
		Ledger: resRepo,
		Halls:  rsrcRepo,
	}
	sessionCaches := availability.NewSessionCaches()

	taskClient := cron.NewTaskClient()
	defer taskClient.Close()

	reservationService := &reservation.DefaultReservationService{
		Repo:     resRepo,
		Engine:   engine,
		Sessions: sessionCaches,
		Holds:    utils.GetHoldCacheClient(),
		Tasks:    taskClient,
		HoldTTL:  time.Duration(config.AppConfig.HoldTTLMinutes) * time.Minute,
	}

	// Background auto-completion worker.
	cron.InitCompletionWorker(resRepo)

	// Assemble the handler bundle and register routes.
	bundle := &routes.HandlerBundle{
		Availability: handlers.NewAvailabilityHandler(engine, sessionCaches),
		Reservation:  handlers.NewReservationHandler(reservationService),
		Hold:         handlers.NewHoldHandler(reservationService),
	}
	routes.RegisterRoutes(router, bundle)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetHoldCacheClient()},
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
