package jobs

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/articurated/ordermanagement/internal/db"
	"github.com/articurated/ordermanagement/internal/kafka"
	"github.com/articurated/ordermanagement/internal/metrics"
	"github.com/articurated/ordermanagement/internal/repository"
	"github.com/articurated/ordermanagement/internal/storage"
)

// Publisher writes ledger rows for side-effect jobs and emits the matching
// queue messages. The ledger insert shares the caller's transaction; Emit is
// called after that transaction committed, so a crash in between leaves a
// PENDING row that the reconciler can re-emit, never a message without a row.
type Publisher struct {
	jobs     storage.JobLogRepository
	producer kafka.Producer
	logger   *zap.Logger
}

func NewPublisher(jobs storage.JobLogRepository, producer kafka.Producer, logger *zap.Logger) *Publisher {
	return &Publisher{
		jobs:     jobs,
		producer: producer,
		logger:   logger,
	}
}

func (p *Publisher) CreateInvoiceJobTx(ctx context.Context, tx db.Tx, order *repository.Order) (*repository.JobLog, error) {
	jobID := uuid.New()
	payload, err := json.Marshal(InvoiceJobMessage{
		JobID:         jobID,
		OrderID:       order.ID,
		CustomerEmail: order.CustomerEmail,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal invoice job payload: %w", err)
	}

	job := &repository.JobLog{
		ID:             jobID,
		Kind:           repository.JobKindInvoiceGeneration,
		RelatedOrderID: order.ID,
		Status:         repository.JobStatusPending,
		Payload:        payload,
	}
	if err := p.jobs.CreateTx(ctx, tx, job); err != nil {
		return nil, err
	}
	metrics.JobsPublishedTotal.WithLabelValues(string(job.Kind)).Inc()
	return job, nil
}

func (p *Publisher) CreateRefundJobTx(ctx context.Context, tx db.Tx, ret *repository.ReturnRequest, paymentReference, currency string) (*repository.JobLog, error) {
	jobID := uuid.New()
	payload, err := json.Marshal(RefundJobMessage{
		JobID:            jobID,
		OrderID:          ret.OrderID,
		ReturnID:         ret.ID,
		PaymentReference: paymentReference,
		Currency:         currency,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal refund job payload: %w", err)
	}

	returnID := ret.ID
	job := &repository.JobLog{
		ID:              jobID,
		Kind:            repository.JobKindRefundProcessing,
		RelatedOrderID:  ret.OrderID,
		RelatedReturnID: &returnID,
		Status:          repository.JobStatusPending,
		Payload:         payload,
	}
	if err := p.jobs.CreateTx(ctx, tx, job); err != nil {
		return nil, err
	}
	metrics.JobsPublishedTotal.WithLabelValues(string(job.Kind)).Inc()
	return job, nil
}

// Emit produces exactly one message for the job, keyed by the job id. An
// error here is recoverable: the ledger row stays PENDING and is picked up
// by the reconciliation sweep.
func (p *Publisher) Emit(ctx context.Context, job *repository.JobLog) error {
	topic := TopicForKind(job.Kind)
	if topic == "" {
		return fmt.Errorf("no topic for job kind %q", job.Kind)
	}
	if err := p.producer.SendMessage(ctx, topic, []byte(job.ID.String()), job.Payload); err != nil {
		p.logger.Warn("job message emission failed, row left PENDING for reconciliation",
			zap.String("job_id", job.ID.String()),
			zap.String("kind", string(job.Kind)),
			zap.Error(err))
		return err
	}
	return nil
}
