//go:generate mockgen -source ./service.go -destination=./mocks/service.go -package=mock_storage
package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/articurated/ordermanagement/internal/cache"
	"github.com/articurated/ordermanagement/internal/db"
	"github.com/articurated/ordermanagement/internal/repository"
)

// ErrOrderNotReturnable is returned by CreateReturn when the order has not
// reached DELIVERED yet.
var ErrOrderNotReturnable = errors.New("return can only be created for delivered orders")

// JobPublisher creates job ledger rows inside the domain transaction and
// emits the matching queue message after that transaction committed.
type JobPublisher interface {
	CreateInvoiceJobTx(ctx context.Context, tx db.Tx, order *repository.Order) (*repository.JobLog, error)
	CreateRefundJobTx(ctx context.Context, tx db.Tx, ret *repository.ReturnRequest, paymentReference, currency string) (*repository.JobLog, error)
	Emit(ctx context.Context, job *repository.JobLog) error
}

// Storage orchestrates the transition tables, the repositories and the job
// publisher. Every mutation runs inside a single transaction; queue emission
// happens strictly after commit.
type Storage struct {
	db            db.DB
	orders        OrderRepository
	returns       ReturnRepository
	orderHistory  OrderHistoryRepository
	returnHistory ReturnHistoryRepository
	jobLogs       JobLogRepository
	publisher     JobPublisher
	orderCache    *cache.OrderCache
	logger        *zap.Logger
}

func NewStorage(
	database db.DB,
	orders OrderRepository,
	returns ReturnRepository,
	orderHistory OrderHistoryRepository,
	returnHistory ReturnHistoryRepository,
	jobLogs JobLogRepository,
	publisher JobPublisher,
	orderCache *cache.OrderCache,
	logger *zap.Logger,
) *Storage {
	return &Storage{
		db:            database,
		orders:        orders,
		returns:       returns,
		orderHistory:  orderHistory,
		returnHistory: returnHistory,
		jobLogs:       jobLogs,
		publisher:     publisher,
		orderCache:    orderCache,
		logger:        logger,
	}
}

func (s *Storage) GetJob(ctx context.Context, id uuid.UUID) (*repository.JobLog, error) {
	return s.jobLogs.GetByID(ctx, id)
}

// emitAfterCommit sends the job message for an already-committed ledger row.
// Failures are deliberately swallowed: the row is PENDING and the reconciler
// owns its redelivery.
func (s *Storage) emitAfterCommit(ctx context.Context, job *repository.JobLog) {
	if job == nil {
		return
	}
	_ = s.publisher.Emit(ctx, job)
}
