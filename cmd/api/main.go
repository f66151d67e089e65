package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/srgjo27/tour_wizard/internal/adapter/handler"
	"github.com/srgjo27/tour_wizard/internal/adapter/repository/memory"
	"github.com/srgjo27/tour_wizard/internal/adapter/repository/postgres"
	"github.com/srgjo27/tour_wizard/internal/adapter/repository/redisstore"
	"github.com/srgjo27/tour_wizard/internal/core/payment"
	"github.com/srgjo27/tour_wizard/internal/core/ports"
	"github.com/srgjo27/tour_wizard/internal/core/services"
	"github.com/srgjo27/tour_wizard/internal/platform/config"
	"github.com/srgjo27/tour_wizard/internal/platform/database"
	"github.com/srgjo27/tour_wizard/internal/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logg, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logg.Sync()

	var (
		sessions ports.SessionStore
		receipts ports.ReceiptUploader
		backend  ports.BookingBackend
	)

	switch cfg.Store {
	case config.StoreRedis:
		logg.Info("connecting to redis", zap.String("addr", cfg.RedisAddr))

		redisClient := redis.NewClient(&redis.Options{
			Addr: cfg.RedisAddr,
			DB:   cfg.RedisDB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logg.Fatal("failed to connect to redis", zap.Error(err))
		}
		defer redisClient.Close()
		logg.Info("redis connected")

		sessions = redisstore.NewSessionStore(redisClient, cfg.SessionTTL)
		receipts = redisstore.NewReceiptStore(redisClient, cfg.SessionTTL)

		db, err := database.NewPostgresDB(cfg.DB, logg)
		if err != nil {
			logg.Fatal("failed to connect to db after retries", zap.Error(err))
		}
		defer db.Close()

		if err := database.Migrate(db, cfg.MigrationsDir, logg); err != nil {
			logg.Fatal("failed to apply migrations", zap.Error(err))
		}

		backend = postgres.NewBookingRepository(db)
	default:
		logg.Warn("using in-memory stores; drafts and bookings are lost on restart")
		sessions = memory.NewSessionStore()
		receipts = memory.NewReceiptStore()
		backend = memory.NewBookingBackend()
	}

	policy := payment.Policy{PerTourist: payment.PerTouristDownPayment, Floor: cfg.DownPaymentFloor}

	drafts := services.NewDraftStore(sessions, logg)
	wizardService := services.NewWizardService(drafts, backend, receipts, policy, logg)
	wizardHandler := handler.NewWizardHandler(wizardService, cfg.SessionTTL, logg)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      wizardHandler.Routes(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logg.Info("server starting", zap.String("addr", cfg.HTTPAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Fatal("server startup failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	logg.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logg.Fatal("server forced to shutdown", zap.Error(err))
	}

	logg.Info("server exiting")
}
