package postgresql

import (
	"context"

	"github.com/google/uuid"

	"github.com/articurated/ordermanagement/internal/db"
	"github.com/articurated/ordermanagement/internal/repository"
	"github.com/articurated/ordermanagement/internal/storage"
)

type OrderHistoryRepo struct {
	db db.DB
}

func NewOrderHistoryRepo(db db.DB) storage.OrderHistoryRepository {
	return &OrderHistoryRepo{db: db}
}

func (r *OrderHistoryRepo) CreateTx(ctx context.Context, tx db.Tx, entry *repository.OrderHistoryEntry) error {
	_, err := tx.Exec(ctx, `
        INSERT INTO order_state_history (
            order_id, from_status, to_status, actor, reason, changed_at
        ) VALUES ($1, $2, $3, $4, $5, $6)
    `, entry.OrderID, entry.FromStatus, entry.ToStatus, entry.Actor, entry.Reason, entry.ChangedAt)
	return err
}

func (r *OrderHistoryRepo) GetByOrderID(ctx context.Context, orderID uuid.UUID) ([]*repository.OrderHistoryEntry, error) {
	var entries []*repository.OrderHistoryEntry
	err := r.db.Select(ctx, &entries, `
        SELECT * FROM order_state_history
        WHERE order_id = $1
        ORDER BY id ASC
    `, orderID)
	return entries, err
}

type ReturnHistoryRepo struct {
	db db.DB
}

func NewReturnHistoryRepo(db db.DB) storage.ReturnHistoryRepository {
	return &ReturnHistoryRepo{db: db}
}

func (r *ReturnHistoryRepo) CreateTx(ctx context.Context, tx db.Tx, entry *repository.ReturnHistoryEntry) error {
	_, err := tx.Exec(ctx, `
        INSERT INTO return_state_history (
            return_id, from_status, to_status, actor, reason, changed_at
        ) VALUES ($1, $2, $3, $4, $5, $6)
    `, entry.ReturnID, entry.FromStatus, entry.ToStatus, entry.Actor, entry.Reason, entry.ChangedAt)
	return err
}

func (r *ReturnHistoryRepo) GetByReturnID(ctx context.Context, returnID uuid.UUID) ([]*repository.ReturnHistoryEntry, error) {
	var entries []*repository.ReturnHistoryEntry
	err := r.db.Select(ctx, &entries, `
        SELECT * FROM return_state_history
        WHERE return_id = $1
        ORDER BY id ASC
    `, returnID)
	return entries, err
}
