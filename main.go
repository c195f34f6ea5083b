// File: bookwell/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookwell/config"
	"bookwell/cron"
	"bookwell/database"
	bookingRepo "bookwell/database/repository/booking"
	providerRepo "bookwell/database/repository/provider"
	reservationRepo "bookwell/database/repository/reservation"
	serviceRepo "bookwell/database/repository/service"
	"bookwell/handlers"
	"bookwell/routes"
	"bookwell/services/scheduling"
	"bookwell/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.StartHealthMonitor(database.MongoClient)

	// repositories.
	provRepo := providerRepo.NewMongoProviderRepo()
	bookRepo := bookingRepo.NewMongoBookingRepo()
	resStore := reservationRepo.NewMongoReservationStore()
	svcRepo := serviceRepo.NewMongoServiceRepo()

	ctx, cancelIdx := context.WithTimeout(context.Background(), 30*time.Second)
	if err := bookRepo.EnsureIndexes(ctx); err != nil {
		logger.Sugar().Fatalf("main: failed to create booking indexes: %v", err)
	}
	if err := resStore.EnsureIndexes(ctx); err != nil {
		logger.Sugar().Fatalf("main: failed to create reservation indexes: %v", err)
	}
	cancelIdx()

	sweepClient := asynq.NewClient(cron.SweepQueueRedisOpt())
	defer sweepClient.Close()

	engine := &scheduling.DefaultSchedulingEngine{
		ProviderRepo: provRepo,
		BookingRepo:  bookRepo,
		Reservations: resStore,
		ServiceRepo:  svcRepo,
		Cache: scheduling.NewRedisSlotCache(
			utils.GetCacheClient(),
			time.Duration(config.AppConfig.SlotCacheTTLSeconds)*time.Second,
		),
		SweepClient:     sweepClient,
		TickMinutes:     config.AppConfig.SlotTickMinutes,
		HoldMinutes:     config.AppConfig.ReservationHoldMinutes,
		DurationMinutes: config.AppConfig.DefaultDurationMinutes,
		DayEndHour:      config.AppConfig.NearestSlotDayEndHour,
		DayStartHour:    config.AppConfig.NearestSlotDayStartHour,
	}

	// Background reclamation of expired holds.
	cron.InitSweepWorker(engine)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	schedulingHandler := handlers.NewSchedulingHandler(engine)
	routes.RegisterSchedulingRoutes(router, schedulingHandler)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Sugar().Infof("main: listening on :%s", config.AppConfig.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server error: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("main: shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Errorf("main: forced shutdown: %v", err)
	}
}
