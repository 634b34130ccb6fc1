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

// CreateOrder inserts a new order in PENDING_PAYMENT together with its
// synthetic initial history row (from = NULL).
func (s *Storage) CreateOrder(ctx context.Context, externalID, customerEmail string, totalAmountCents int64) (*repository.Order, error) {
	now := time.Now().UTC()
	order := &repository.Order{
		ID:               uuid.New(),
		ExternalID:       externalID,
		CustomerEmail:    customerEmail,
		TotalAmountCents: totalAmountCents,
		Status:           repository.OrderPendingPayment,
		Version:          1,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	err := db.WithinTx(ctx, s.db, func(tx db.Tx) error {
		if err := s.orders.CreateTx(ctx, tx, order); err != nil {
			return fmt.Errorf("failed to insert order: %w", err)
		}
		return s.orderHistory.CreateTx(ctx, tx, &repository.OrderHistoryEntry{
			OrderID:    order.ID,
			FromStatus: nil,
			ToStatus:   repository.OrderPendingPayment,
			Actor:      "system",
			Reason:     "order created",
			ChangedAt:  now,
		})
	})
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("create_order").Inc()
		return nil, err
	}

	metrics.OrdersCreatedTotal.Inc()
	s.logger.Info("order created",
		zap.String("order_id", order.ID.String()),
		zap.String("external_id", externalID))
	return order, nil
}

func (s *Storage) GetOrder(ctx context.Context, id uuid.UUID) (*repository.Order, error) {
	if s.orderCache != nil {
		if order, found := s.orderCache.Get(id); found {
			return order, nil
		}
	}
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.orderCache != nil {
		s.orderCache.Put(order)
	}
	return order, nil
}

// GetOrderByExternalID resolves an order through the caller-supplied
// reference. Lookups bypass the cache, which is keyed by internal id.
func (s *Storage) GetOrderByExternalID(ctx context.Context, externalID string) (*repository.Order, error) {
	order, err := s.orders.GetByExternalID(ctx, externalID)
	if err != nil {
		return nil, err
	}
	if s.orderCache != nil {
		s.orderCache.Put(order)
	}
	return order, nil
}

func (s *Storage) GetOrderHistory(ctx context.Context, orderID uuid.UUID) ([]*repository.OrderHistoryEntry, error) {
	if _, err := s.orders.GetByID(ctx, orderID); err != nil {
		return nil, err
	}
	return s.orderHistory.GetByOrderID(ctx, orderID)
}

// ChangeOrderStatus applies one validated transition under a single
// transaction: reload, consult the transition table, append the history row,
// bump status and version. A transition to SHIPPED additionally writes the
// invoice job ledger row in the same transaction and emits its message after
// commit.
func (s *Storage) ChangeOrderStatus(ctx context.Context, id uuid.UUID, target repository.OrderStatus, actor, reason string) (*repository.Order, error) {
	if !target.Valid() {
		return nil, fmt.Errorf("unknown order status %q", target)
	}

	var order *repository.Order
	var job *repository.JobLog

	err := db.WithinTx(ctx, s.db, func(tx db.Tx) error {
		var err error
		order, err = s.orders.GetByIDTx(ctx, tx, id)
		if err != nil {
			return err
		}

		from := order.Status
		if err := from.ValidateTransitionTo(target); err != nil {
			return err
		}

		now := time.Now().UTC()
		if err := s.orderHistory.CreateTx(ctx, tx, &repository.OrderHistoryEntry{
			OrderID:    order.ID,
			FromStatus: &from,
			ToStatus:   target,
			Actor:      actor,
			Reason:     reason,
			ChangedAt:  now,
		}); err != nil {
			return fmt.Errorf("failed to insert history row: %w", err)
		}

		order.Status = target
		order.UpdatedAt = now
		if err := s.orders.UpdateStatusTx(ctx, tx, order); err != nil {
			return err
		}

		// Self-transition re-applies are no-ops for job dispatch.
		if target == repository.OrderShipped && from != repository.OrderShipped {
			job, err = s.publisher.CreateInvoiceJobTx(ctx, tx, order)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("change_order_status").Inc()
		return nil, err
	}

	metrics.TransitionsAppliedTotal.WithLabelValues("order", string(target)).Inc()
	if s.orderCache != nil {
		s.orderCache.Put(order)
	}
	s.emitAfterCommit(ctx, job)
	return order, nil
}
