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

type ReturnRepo struct {
	db db.DB
}

func NewReturnRepo(db db.DB) storage.ReturnRepository {
	return &ReturnRepo{db: db}
}

func (r *ReturnRepo) CreateTx(ctx context.Context, tx db.Tx, ret *repository.ReturnRequest) error {
	_, err := tx.Exec(ctx, `
        INSERT INTO return_requests (
            id, order_id, reason, status, version, created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7)
    `, ret.ID, ret.OrderID, ret.Reason, ret.Status, ret.Version, ret.CreatedAt, ret.UpdatedAt)
	return err
}

func (r *ReturnRepo) GetByID(ctx context.Context, id uuid.UUID) (*repository.ReturnRequest, error) {
	var ret repository.ReturnRequest
	err := r.db.Get(ctx, &ret, "SELECT * FROM return_requests WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &ret, nil
}

func (r *ReturnRepo) GetByIDTx(ctx context.Context, tx db.Tx, id uuid.UUID) (*repository.ReturnRequest, error) {
	var ret repository.ReturnRequest
	err := tx.Get(ctx, &ret, "SELECT * FROM return_requests WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &ret, nil
}

func (r *ReturnRepo) GetByOrderID(ctx context.Context, orderID uuid.UUID) ([]*repository.ReturnRequest, error) {
	var returns []*repository.ReturnRequest
	err := r.db.Select(ctx, &returns, `
        SELECT * FROM return_requests
        WHERE order_id = $1
        ORDER BY created_at ASC
    `, orderID)
	return returns, err
}

func (r *ReturnRepo) UpdateStatusTx(ctx context.Context, tx db.Tx, ret *repository.ReturnRequest) error {
	tag, err := tx.Exec(ctx, `
        UPDATE return_requests
        SET
            status = $1,
            updated_at = $2,
            version = version + 1
        WHERE id = $3 AND version = $4
    `, ret.Status, ret.UpdatedAt, ret.ID, ret.Version)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrConcurrentModification
	}
	ret.Version++
	return nil
}
