package postgresql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/articurated/ordermanagement/internal/db"
	"github.com/articurated/ordermanagement/internal/repository"
	"github.com/articurated/ordermanagement/internal/storage"
)

type OrderRepo struct {
	db db.DB
}

func NewOrderRepo(db db.DB) storage.OrderRepository {
	return &OrderRepo{db: db}
}

func (r *OrderRepo) CreateTx(ctx context.Context, tx db.Tx, order *repository.Order) error {
	_, err := tx.Exec(ctx, `
        INSERT INTO orders (
            id, external_id, customer_email, total_amount_cents, status, version, created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `, order.ID, order.ExternalID, order.CustomerEmail, order.TotalAmountCents, order.Status, order.Version, order.CreatedAt, order.UpdatedAt)
	return err
}

func (r *OrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*repository.Order, error) {
	var order repository.Order
	err := r.db.Get(ctx, &order, "SELECT * FROM orders WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepo) GetByIDTx(ctx context.Context, tx db.Tx, id uuid.UUID) (*repository.Order, error) {
	var order repository.Order
	err := tx.Get(ctx, &order, "SELECT * FROM orders WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepo) GetByExternalID(ctx context.Context, externalID string) (*repository.Order, error) {
	var order repository.Order
	err := r.db.Get(ctx, &order, "SELECT * FROM orders WHERE external_id = $1", externalID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepo) UpdateStatusTx(ctx context.Context, tx db.Tx, order *repository.Order) error {
	tag, err := tx.Exec(ctx, `
        UPDATE orders
        SET
            status = $1,
            updated_at = $2,
            version = version + 1
        WHERE id = $3 AND version = $4
    `, order.Status, order.UpdatedAt, order.ID, order.Version)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		// The row was loaded earlier in this unit of work, so zero rows
		// means the version moved underneath us.
		return repository.ErrConcurrentModification
	}
	order.Version++
	return nil
}
