//go:generate mockgen -source ./repositories.go -destination=./mocks/repositories.go -package=mock_storage
package storage

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/articurated/ordermanagement/internal/db"
	"github.com/articurated/ordermanagement/internal/repository"
)

type OrderRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, order *repository.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*repository.Order, error)
	GetByIDTx(ctx context.Context, tx db.Tx, id uuid.UUID) (*repository.Order, error)
	GetByExternalID(ctx context.Context, externalID string) (*repository.Order, error)
	// UpdateStatusTx persists the order's status under the optimistic
	// version check and bumps the version on success. Returns
	// repository.ErrConcurrentModification when the persisted version no
	// longer matches the one the order was loaded at.
	UpdateStatusTx(ctx context.Context, tx db.Tx, order *repository.Order) error
}

type ReturnRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, ret *repository.ReturnRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*repository.ReturnRequest, error)
	GetByIDTx(ctx context.Context, tx db.Tx, id uuid.UUID) (*repository.ReturnRequest, error)
	GetByOrderID(ctx context.Context, orderID uuid.UUID) ([]*repository.ReturnRequest, error)
	UpdateStatusTx(ctx context.Context, tx db.Tx, ret *repository.ReturnRequest) error
}

type OrderHistoryRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, entry *repository.OrderHistoryEntry) error
	GetByOrderID(ctx context.Context, orderID uuid.UUID) ([]*repository.OrderHistoryEntry, error)
}

type ReturnHistoryRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, entry *repository.ReturnHistoryEntry) error
	GetByReturnID(ctx context.Context, returnID uuid.UUID) ([]*repository.ReturnHistoryEntry, error)
}

type JobLogRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, job *repository.JobLog) error
	GetByID(ctx context.Context, id uuid.UUID) (*repository.JobLog, error)
	GetByIDTx(ctx context.Context, tx db.Tx, id uuid.UUID) (*repository.JobLog, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status repository.JobStatus, attempts int, lastError, resultMeta *string) error
	UpdateStatusTx(ctx context.Context, tx db.Tx, id uuid.UUID, status repository.JobStatus, attempts int, lastError, resultMeta *string) error
	// GetStalePendingTx selects PENDING rows older than the threshold with
	// FOR UPDATE SKIP LOCKED so concurrent reconciler sweeps do not pick
	// the same rows.
	GetStalePendingTx(ctx context.Context, tx db.Tx, olderThan time.Duration, limit int) ([]*repository.JobLog, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, username, password string) error
	// EnsureAdmin creates the bootstrap account unless it already exists.
	EnsureAdmin(ctx context.Context, username, password string) error
	ValidateUser(ctx context.Context, username, password string) (bool, error)
}
