package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/articurated/ordermanagement/internal/db"
	"github.com/articurated/ordermanagement/internal/storage"
)

type ReconcilerConfig struct {
	// Schedule is a cron expression with a seconds field.
	Schedule string
	// OlderThan guards against re-emitting rows whose first emission is
	// still in flight.
	OlderThan time.Duration
	BatchSize int
}

func DefaultReconcilerConfig() ReconcilerConfig {
	return ReconcilerConfig{
		Schedule:  "*/10 * * * * *",
		OlderThan: 30 * time.Second,
		BatchSize: 50,
	}
}

// Reconciler re-emits queue messages for ledger rows stuck in PENDING, i.e.
// rows whose transaction committed but whose message was never delivered.
// Re-emission is safe because consumers treat delivery as idempotent.
type Reconciler struct {
	db        db.DB
	jobs      storage.JobLogRepository
	publisher *Publisher
	cron      *cron.Cron
	config    ReconcilerConfig
	logger    *zap.Logger
}

func NewReconciler(database db.DB, jobs storage.JobLogRepository, publisher *Publisher, config ReconcilerConfig, logger *zap.Logger) *Reconciler {
	return &Reconciler{
		db:        database,
		jobs:      jobs,
		publisher: publisher,
		cron:      cron.New(cron.WithSeconds()),
		config:    config,
		logger:    logger.With(zap.String("component", "job_reconciler")),
	}
}

func (r *Reconciler) Start() error {
	_, err := r.cron.AddFunc(r.config.Schedule, func() {
		ctx := context.Background()
		if err := r.Sweep(ctx); err != nil {
			r.logger.Error("reconciliation sweep failed", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule reconciliation sweep: %w", err)
	}

	r.cron.Start()
	r.logger.Info("job reconciler started", zap.String("schedule", r.config.Schedule))
	return nil
}

func (r *Reconciler) Stop() {
	r.cron.Stop()
	r.logger.Info("job reconciler stopped")
}

// Sweep re-emits every stale PENDING row it can lock. Rows stay PENDING
// until a consumer moves them forward, so a row whose message keeps getting
// lost is retried on every sweep.
func (r *Reconciler) Sweep(ctx context.Context) error {
	return db.WithinTx(ctx, r.db, func(tx db.Tx) error {
		stale, err := r.jobs.GetStalePendingTx(ctx, tx, r.config.OlderThan, r.config.BatchSize)
		if err != nil {
			return err
		}
		if len(stale) == 0 {
			return nil
		}

		r.logger.Info("re-emitting stale pending jobs", zap.Int("count", len(stale)))
		for _, job := range stale {
			if err := r.publisher.Emit(ctx, job); err != nil {
				// Logged by Emit; keep going so one broker hiccup does
				// not starve the rest of the batch.
				continue
			}
		}
		return nil
	})
}
