package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vitacare-service/internal/app/config"
	"vitacare-service/internal/app/delivery/http/controllers"
	"vitacare-service/internal/app/delivery/http/routers"
	"vitacare-service/internal/app/drivers/database"
	"vitacare-service/internal/app/drivers/logger"
	"vitacare-service/internal/app/drivers/messaging"
	"vitacare-service/internal/app/services/core/accounts"
	"vitacare-service/internal/app/services/core/authz"
	"vitacare-service/internal/app/services/core/ratings"
	"vitacare-service/internal/app/services/core/reminders"
	"vitacare-service/internal/app/services/core/slots"
	"vitacare-service/internal/app/services/core/visits"
	"vitacare-service/internal/app/services/shared/locker"
	"vitacare-service/internal/app/services/shared/notify"
	sharedredis "vitacare-service/internal/app/services/shared/redis"

	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Could not load timezone %q: %v", internalConfig.App.Timezone, err)
	}

	mongoClient := database.NewMongoClient(driverConfig)
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			zapLogger.Error("failed to disconnect MongoDB client", zap.Error(err))
		}
	}()

	redisClient := database.NewRedisClient(driverConfig)
	defer redisClient.Close()

	rabbitConn, rabbitChannel := messaging.NewRabbitMQChannel(driverConfig)
	defer rabbitConn.Close()
	defer rabbitChannel.Close()

	// shared services
	redisRepository := sharedredis.NewRedisRepository(redisClient)
	lockService := locker.NewLockService(redisRepository, zapLogger)
	notificationTransport := notify.NewRabbitMQTransport(rabbitChannel, driverConfig.RabbitMQ.NotificationQueue, zapLogger)
	transactionManager := database.NewMongoTransactionManager(mongoClient)

	// repositories
	dbName := driverConfig.MongoDB.DbName
	slotRepository := slots.NewSlotMongoRepository(mongoClient, dbName)
	visitRepository := visits.NewVisitMongoRepository(mongoClient, dbName)
	accountRepository := accounts.NewAccountMongoRepository(mongoClient, dbName)
	reviewRepository := ratings.NewReviewMongoRepository(mongoClient, dbName)
	notificationRepository := reminders.NewNotificationMongoRepository(mongoClient, dbName)

	// core usecases
	authzEvaluator := authz.NewEvaluator(accountRepository, visitRepository, zapLogger)
	slotLockTTL := time.Duration(internalConfig.App.SlotLockTTLInSeconds) * time.Second
	reminderScheduler := reminders.NewReminderUsecase(
		notificationRepository,
		notificationTransport,
		zapLogger,
		location,
		internalConfig.App.ReminderHourLocal,
		internalConfig.App.ReminderRetentionInDays,
		internalConfig.App.ReminderDispatchWindow,
	)
	slotUsecase := slots.NewSlotUsecase(slotRepository, accountRepository, authzEvaluator, lockService, transactionManager, zapLogger, slotLockTTL)
	visitUsecase := visits.NewVisitUsecase(visitRepository, slotRepository, accountRepository, authzEvaluator, lockService, transactionManager, reminderScheduler, notificationTransport, zapLogger, slotLockTTL)
	reviewUsecase := ratings.NewReviewUsecase(reviewRepository, accountRepository, authzEvaluator, transactionManager, zapLogger)

	sweepWorker := reminders.NewSweepWorker(reminderScheduler, lockService, zapLogger, internalConfig.App.ReminderSweepCronSpec)
	if err := sweepWorker.Start(); err != nil {
		log.Fatalf("Could not start reminder sweep worker: %v", err)
	}

	handler := routers.SetupRoutes(internalConfig, zapLogger, routers.Controllers{
		Slot:   controllers.NewSlotController(slotUsecase, zapLogger),
		Visit:  controllers.NewVisitController(visitUsecase, zapLogger),
		Review: controllers.NewReviewController(reviewUsecase, zapLogger),
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: handler,
	}

	go func() {
		zapLogger.Info("HTTP server listening", zap.String("addr", internalConfig.App.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("shutdown signal received")

	sweepWorker.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		time.Duration(internalConfig.App.ShutdownTimeoutInSeconds)*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("HTTP server shutdown failed", zap.Error(err))
	}
	zapLogger.Info("server stopped")
}
