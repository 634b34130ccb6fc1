package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/articurated/ordermanagement/internal/db"
	"github.com/articurated/ordermanagement/internal/metrics"
	"github.com/articurated/ordermanagement/internal/repository"
)

// Placeholder gateway coordinates until payment capture is modeled; the
// gateway deduplicates on the job id, not on these.
const (
	defaultPaymentReference = "ORIG-PAYMENT-REF"
	defaultCurrency         = "USD"
)

// CreateReturn opens a return request for a delivered order, with the
// synthetic initial history row (from = NULL).
func (s *Storage) CreateReturn(ctx context.Context, orderID uuid.UUID, reason, actor string) (*repository.ReturnRequest, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != repository.OrderDelivered {
		return nil, ErrOrderNotReturnable
	}

	now := time.Now().UTC()
	ret := &repository.ReturnRequest{
		ID:        uuid.New(),
		OrderID:   order.ID,
		Reason:    reason,
		Status:    repository.ReturnRequested,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = db.WithinTx(ctx, s.db, func(tx db.Tx) error {
		if err := s.returns.CreateTx(ctx, tx, ret); err != nil {
			return fmt.Errorf("failed to insert return request: %w", err)
		}
		return s.returnHistory.CreateTx(ctx, tx, &repository.ReturnHistoryEntry{
			ReturnID:   ret.ID,
			FromStatus: nil,
			ToStatus:   repository.ReturnRequested,
			Actor:      actor,
			Reason:     "return created",
			ChangedAt:  now,
		})
	})
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("create_return").Inc()
		return nil, err
	}

	metrics.ReturnsCreatedTotal.Inc()
	s.logger.Info("return created",
		zap.String("return_id", ret.ID.String()),
		zap.String("order_id", order.ID.String()))
	return ret, nil
}

func (s *Storage) GetReturn(ctx context.Context, id uuid.UUID) (*repository.ReturnRequest, error) {
	return s.returns.GetByID(ctx, id)
}

// GetOrderReturns lists every return request opened against an order, newest
// last.
func (s *Storage) GetOrderReturns(ctx context.Context, orderID uuid.UUID) ([]*repository.ReturnRequest, error) {
	if _, err := s.orders.GetByID(ctx, orderID); err != nil {
		return nil, err
	}
	return s.returns.GetByOrderID(ctx, orderID)
}

func (s *Storage) GetReturnHistory(ctx context.Context, returnID uuid.UUID) ([]*repository.ReturnHistoryEntry, error) {
	if _, err := s.returns.GetByID(ctx, returnID); err != nil {
		return nil, err
	}
	return s.returnHistory.GetByReturnID(ctx, returnID)
}

// ChangeReturnStatus applies one validated transition on the external path.
// Completing a return through this path additionally writes the refund job
// ledger row inside the same transaction and emits its message after commit.
// The refund consumer completes returns through ApplyReturnTransitionTx
// instead, so its completion never publishes a second refund job.
func (s *Storage) ChangeReturnStatus(ctx context.Context, id uuid.UUID, target repository.ReturnStatus, actor, reason string) (*repository.ReturnRequest, error) {
	if !target.Valid() {
		return nil, fmt.Errorf("unknown return status %q", target)
	}

	var ret *repository.ReturnRequest
	var job *repository.JobLog

	err := db.WithinTx(ctx, s.db, func(tx db.Tx) error {
		var err error
		var from repository.ReturnStatus
		ret, from, err = s.applyReturnTransitionTx(ctx, tx, id, target, actor, reason)
		if err != nil {
			return err
		}

		if target == repository.ReturnCompleted && from != repository.ReturnCompleted {
			job, err = s.publisher.CreateRefundJobTx(ctx, tx, ret, defaultPaymentReference, defaultCurrency)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("change_return_status").Inc()
		return nil, err
	}

	metrics.TransitionsAppliedTotal.WithLabelValues("return", string(target)).Inc()
	s.emitAfterCommit(ctx, job)
	return ret, nil
}

// ApplyReturnTransitionTx performs a validated return transition inside the
// caller's transaction without any job publishing. The refund consumer uses
// it to compose ledger success and return completion into one unit of work.
func (s *Storage) ApplyReturnTransitionTx(ctx context.Context, tx db.Tx, id uuid.UUID, target repository.ReturnStatus, actor, reason string) (*repository.ReturnRequest, error) {
	ret, _, err := s.applyReturnTransitionTx(ctx, tx, id, target, actor, reason)
	return ret, err
}

func (s *Storage) applyReturnTransitionTx(ctx context.Context, tx db.Tx, id uuid.UUID, target repository.ReturnStatus, actor, reason string) (*repository.ReturnRequest, repository.ReturnStatus, error) {
	ret, err := s.returns.GetByIDTx(ctx, tx, id)
	if err != nil {
		return nil, "", err
	}

	from := ret.Status
	if err := from.ValidateTransitionTo(target); err != nil {
		return nil, from, err
	}

	now := time.Now().UTC()
	if err := s.returnHistory.CreateTx(ctx, tx, &repository.ReturnHistoryEntry{
		ReturnID:   ret.ID,
		FromStatus: &from,
		ToStatus:   target,
		Actor:      actor,
		Reason:     reason,
		ChangedAt:  now,
	}); err != nil {
		return nil, from, fmt.Errorf("failed to insert history row: %w", err)
	}

	ret.Status = target
	ret.UpdatedAt = now
	if err := s.returns.UpdateStatusTx(ctx, tx, ret); err != nil {
		return nil, from, err
	}
	return ret, from, nil
}
