package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/articurated/ordermanagement/internal/cache"
	"github.com/articurated/ordermanagement/internal/db"
	"github.com/articurated/ordermanagement/internal/jobs"
	"github.com/articurated/ordermanagement/internal/kafka"
	"github.com/articurated/ordermanagement/internal/logger"
	"github.com/articurated/ordermanagement/internal/repository/postgresql"
	"github.com/articurated/ordermanagement/internal/server"
	"github.com/articurated/ordermanagement/internal/storage"
)

func main() {
	log := logger.New()
	defer log.Sync() //nolint:errcheck

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	database, err := db.NewDb(ctx)
	if err != nil {
		log.Fatal("database init failed", zap.Error(err))
	}
	defer database.Close()

	orderRepo := postgresql.NewOrderRepo(database)
	returnRepo := postgresql.NewReturnRepo(database)
	orderHistoryRepo := postgresql.NewOrderHistoryRepo(database)
	returnHistoryRepo := postgresql.NewReturnHistoryRepo(database)
	jobLogRepo := postgresql.NewJobLogRepo(database)
	userRepo := postgresql.NewUserRepo(database)

	if err := userRepo.EnsureAdmin(ctx, envOr("ADMIN_USERNAME", "admin"), os.Getenv("ADMIN_PASSWORD")); err != nil {
		log.Fatal("admin bootstrap failed", zap.Error(err))
	}

	brokers := strings.Split(envOr("KAFKA_BROKERS", "localhost:9092"), ",")
	producer := kafka.NewKafkaProducer(brokers, log)
	defer producer.Close() //nolint:errcheck

	publisher := jobs.NewPublisher(jobLogRepo, producer, log)
	stg := storage.NewStorage(
		database,
		orderRepo,
		returnRepo,
		orderHistoryRepo,
		returnHistoryRepo,
		jobLogRepo,
		publisher,
		cache.NewOrderCache(),
		log,
	)

	reconciler := jobs.NewReconciler(database, jobLogRepo, publisher, jobs.DefaultReconcilerConfig(), log)
	if err := reconciler.Start(); err != nil {
		log.Fatal("reconciler start failed", zap.Error(err))
	}

	auditManager := server.NewAuditManager(2, 10, 500*time.Millisecond, producer, log)
	srv := server.New(stg, userRepo, auditManager, log)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(gCtx, envOr("HTTP_PORT", "9000"))
	})
	g.Go(func() error {
		<-gCtx.Done()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()

		reconciler.Stop()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal("server exited with error", zap.Error(err))
	}
	log.Info("server stopped")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
