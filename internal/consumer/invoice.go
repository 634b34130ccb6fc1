package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/articurated/ordermanagement/internal/invoice"
	"github.com/articurated/ordermanagement/internal/jobs"
	"github.com/articurated/ordermanagement/internal/metrics"
	"github.com/articurated/ordermanagement/internal/repository"
	"github.com/articurated/ordermanagement/internal/storage"
)

// InvoiceHandler executes INVOICE_GENERATION jobs: ledger-guarded, so a
// redelivered message for an already succeeded job never renders twice.
type InvoiceHandler struct {
	jobLogs  storage.JobLogRepository
	orders   storage.OrderRepository
	renderer invoice.Renderer
	logger   *zap.Logger
}

func NewInvoiceHandler(jobLogs storage.JobLogRepository, orders storage.OrderRepository, renderer invoice.Renderer, logger *zap.Logger) *InvoiceHandler {
	return &InvoiceHandler{
		jobLogs:  jobLogs,
		orders:   orders,
		renderer: renderer,
		logger:   logger,
	}
}

func (h *InvoiceHandler) Handle(ctx context.Context, msg kafka.Message) error {
	var m jobs.InvoiceJobMessage
	if err := json.Unmarshal(msg.Value, &m); err != nil {
		h.logger.Error("undecodable invoice job message, discarding",
			zap.ByteString("key", msg.Key), zap.Error(err))
		return nil
	}

	job, err := h.jobLogs.GetByID(ctx, m.JobID)
	if errors.Is(err, repository.ErrObjectNotFound) {
		// A message for a job that was never published. Retrying cannot
		// manufacture the missing row.
		h.logger.Error("unknown invoice job, discarding",
			zap.String("job_id", m.JobID.String()))
		metrics.JobsConsumedTotal.WithLabelValues(string(repository.JobKindInvoiceGeneration), "unknown").Inc()
		return nil
	}
	if err != nil {
		return err
	}

	if job.Status == repository.JobStatusSuccess {
		h.logger.Info("invoice job already processed",
			zap.String("job_id", job.ID.String()))
		metrics.JobsConsumedTotal.WithLabelValues(string(job.Kind), "duplicate").Inc()
		return nil
	}

	attempts := job.Attempts + 1
	if err := h.jobLogs.UpdateStatus(ctx, job.ID, repository.JobStatusInProgress, attempts, nil, nil); err != nil {
		if errors.Is(err, repository.ErrConcurrentModification) {
			// Another worker finished this job between our read and write.
			h.logger.Info("invoice job finished elsewhere, discarding",
				zap.String("job_id", job.ID.String()))
			metrics.JobsConsumedTotal.WithLabelValues(string(job.Kind), "duplicate").Inc()
			return nil
		}
		return err
	}

	order, err := h.orders.GetByID(ctx, m.OrderID)
	if errors.Is(err, repository.ErrObjectNotFound) {
		return h.fail(ctx, job, attempts, fmt.Sprintf("Order not found: %s", m.OrderID))
	}
	if err != nil {
		return err
	}

	pdf, err := h.renderer.Render(ctx, order.ID, m.CustomerEmail)
	if err != nil {
		return h.fail(ctx, job, attempts, err.Error())
	}

	meta := fmt.Sprintf("pdfBytes=%d", len(pdf))
	if err := h.jobLogs.UpdateStatus(ctx, job.ID, repository.JobStatusSuccess, attempts, nil, &meta); err != nil {
		if errors.Is(err, repository.ErrConcurrentModification) {
			metrics.JobsConsumedTotal.WithLabelValues(string(job.Kind), "duplicate").Inc()
			return nil
		}
		return err
	}

	h.logger.Info("invoice generated",
		zap.String("job_id", job.ID.String()),
		zap.String("order_id", order.ID.String()),
		zap.Int("bytes", len(pdf)))
	metrics.JobsConsumedTotal.WithLabelValues(string(job.Kind), "success").Inc()
	return nil
}

func (h *InvoiceHandler) fail(ctx context.Context, job *repository.JobLog, attempts int, errText string) error {
	h.logger.Error("invoice job failed",
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
