package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/articurated/ordermanagement/internal/db"
	"github.com/articurated/ordermanagement/internal/jobs"
	"github.com/articurated/ordermanagement/internal/metrics"
	"github.com/articurated/ordermanagement/internal/refund"
	"github.com/articurated/ordermanagement/internal/repository"
	"github.com/articurated/ordermanagement/internal/storage"
)

// ReturnCompleter is the slice of the storage service the refund handler
// needs to complete a return inside its own transaction.
type ReturnCompleter interface {
	ApplyReturnTransitionTx(ctx context.Context, tx db.Tx, id uuid.UUID, target repository.ReturnStatus, actor, reason string) (*repository.ReturnRequest, error)
}

// RefundHandler executes REFUND_PROCESSING jobs. On success the ledger
// update and the return's COMPLETED transition commit in one transaction,
// so a SUCCESS row always implies a completed return.
type RefundHandler struct {
	db        db.DB
	jobLogs   storage.JobLogRepository
	orders    storage.OrderRepository
	returns   storage.ReturnRepository
	completer ReturnCompleter
	client    refund.Client
	logger    *zap.Logger
}

func NewRefundHandler(
	database db.DB,
	jobLogs storage.JobLogRepository,
	orders storage.OrderRepository,
	returns storage.ReturnRepository,
	completer ReturnCompleter,
	client refund.Client,
	logger *zap.Logger,
) *RefundHandler {
	return &RefundHandler{
		db:        database,
		jobLogs:   jobLogs,
		orders:    orders,
		returns:   returns,
		completer: completer,
		client:    client,
		logger:    logger,
	}
}

func (h *RefundHandler) Handle(ctx context.Context, msg kafka.Message) error {
	var m jobs.RefundJobMessage
	if err := json.Unmarshal(msg.Value, &m); err != nil {
		h.logger.Error("undecodable refund job message, discarding",
			zap.ByteString("key", msg.Key), zap.Error(err))
		return nil
	}

	job, err := h.jobLogs.GetByID(ctx, m.JobID)
	if errors.Is(err, repository.ErrObjectNotFound) {
		h.logger.Error("unknown refund job, discarding",
			zap.String("job_id", m.JobID.String()))
		metrics.JobsConsumedTotal.WithLabelValues(string(repository.JobKindRefundProcessing), "unknown").Inc()
		return nil
	}
	if err != nil {
		return err
	}

	if job.Status == repository.JobStatusSuccess {
		h.logger.Info("refund job already processed",
			zap.String("job_id", job.ID.String()))
		metrics.JobsConsumedTotal.WithLabelValues(string(job.Kind), "duplicate").Inc()
		return nil
	}

	attempts := job.Attempts + 1
	if err := h.jobLogs.UpdateStatus(ctx, job.ID, repository.JobStatusInProgress, attempts, nil, nil); err != nil {
		if errors.Is(err, repository.ErrConcurrentModification) {
			// Another worker finished this job between our read and write.
			h.logger.Info("refund job finished elsewhere, discarding",
				zap.String("job_id", job.ID.String()))
			metrics.JobsConsumedTotal.WithLabelValues(string(job.Kind), "duplicate").Inc()
			return nil
		}
		return err
	}

	if _, err := h.returns.GetByID(ctx, m.ReturnID); err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return h.fail(ctx, job, attempts, fmt.Sprintf("ReturnRequest not found: %s", m.ReturnID))
		}
		return err
	}

	// The refund amount is resolved from the order's persisted total; the
	// queue payload deliberately does not carry money.
	order, err := h.orders.GetByID(ctx, m.OrderID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return h.fail(ctx, job, attempts, fmt.Sprintf("Order not found: %s", m.OrderID))
		}
		return err
	}

	resp, err := h.client.ProcessRefund(ctx, refund.Request{
		PaymentReference: m.PaymentReference,
		IdempotencyKey:   job.ID.String(),
		Currency:         m.Currency,
		AmountCents:      order.TotalAmountCents,
	})
	if err != nil {
		return h.fail(ctx, job, attempts, err.Error())
	}
	if !resp.Success {
		return h.fail(ctx, job, attempts, resp.Message)
	}

	meta := "gatewayRef=" + resp.GatewayReference
	var jobAlreadyDone bool
	err = db.WithinTx(ctx, h.db, func(tx db.Tx) error {
		if err := h.jobLogs.UpdateStatusTx(ctx, tx, job.ID, repository.JobStatusSuccess, attempts, nil, &meta); err != nil {
			if errors.Is(err, repository.ErrConcurrentModification) {
				// A racing worker already committed SUCCESS and completed
				// the return; nothing left to do.
				jobAlreadyDone = true
			}
			return err
		}
		// Already-COMPLETED (a duplicate delivery racing a prior success)
		// is an accepted self-transition, not an error.
		_, err := h.completer.ApplyReturnTransitionTx(ctx, tx, m.ReturnID, repository.ReturnCompleted, "system", "refund processed")
		return err
	})
	if err != nil {
		if jobAlreadyDone {
			metrics.JobsConsumedTotal.WithLabelValues(string(job.Kind), "duplicate").Inc()
			return nil
		}
		// The ledger row is still IN_PROGRESS; redelivery retries the
		// whole job and the gateway deduplicates on the job id.
		return err
	}

	h.logger.Info("refund processed",
		zap.String("job_id", job.ID.String()),
		zap.String("return_id", m.ReturnID.String()),
		zap.String("gateway_ref", resp.GatewayReference))
	metrics.JobsConsumedTotal.WithLabelValues(string(job.Kind), "success").Inc()
	return nil
}

func (h *RefundHandler) fail(ctx context.Context, job *repository.JobLog, attempts int, errText string) error {
	h.logger.Error("refund job failed",
		zap.String("job_id", job.ID.String()),
		zap.String("error", errText))
	metrics.JobsConsumedTotal.WithLabelValues(string(job.Kind), "failed").Inc()
	err := h.jobLogs.UpdateStatus(ctx, job.ID, repository.JobStatusFailed, attempts, &errText, nil)
	if errors.Is(err, repository.ErrConcurrentModification) {
		// A racing worker already recorded SUCCESS; the ledger wins.
		return nil
	}
	return err
}
