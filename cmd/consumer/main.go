package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	segkafka "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/articurated/ordermanagement/internal/cache"
	"github.com/articurated/ordermanagement/internal/consumer"
	"github.com/articurated/ordermanagement/internal/db"
	"github.com/articurated/ordermanagement/internal/invoice"
	"github.com/articurated/ordermanagement/internal/jobs"
	"github.com/articurated/ordermanagement/internal/kafka"
	"github.com/articurated/ordermanagement/internal/logger"
	"github.com/articurated/ordermanagement/internal/refund"
	"github.com/articurated/ordermanagement/internal/repository/postgresql"
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

	renderer := invoice.NewFileRenderer(envOr("INVOICE_DIR", "invoices"), log)
	invoiceHandler := consumer.NewInvoiceHandler(jobLogRepo, orderRepo, renderer, log)

	refundClient := refund.NewMockClient()
	refundHandler := consumer.NewRefundHandler(database, jobLogRepo, orderRepo, returnRepo, stg, refundClient, log)

	invoiceConsumer := consumer.New(
		"invoice_generation",
		newReader(brokers, jobs.TopicInvoiceJobs, "ordermanagement-invoice-workers"),
		invoiceHandler,
		log,
	)
	refundConsumer := consumer.New(
		"refund_processing",
		newReader(brokers, jobs.TopicRefundJobs, "ordermanagement-refund-workers"),
		refundHandler,
		log,
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error { return invoiceConsumer.Run(gCtx) })
	g.Go(func() error { return refundConsumer.Run(gCtx) })

	if err := g.Wait(); err != nil {
		log.Fatal("consumer exited with error", zap.Error(err))
	}
	log.Info("consumers stopped")
}

func newReader(brokers []string, topic, groupID string) *segkafka.Reader {
	return segkafka.NewReader(segkafka.ReaderConfig{
		Brokers:  brokers,
		GroupID:  groupID,
		Topic:    topic,
		MinBytes: 10e3,
		MaxBytes: 10e6,
		MaxWait:  3 * time.Second,
	})
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
