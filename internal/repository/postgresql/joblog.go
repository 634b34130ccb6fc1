package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/articurated/ordermanagement/internal/db"
	"github.com/articurated/ordermanagement/internal/repository"
	"github.com/articurated/ordermanagement/internal/storage"
)

type JobLogRepo struct {
	db db.DB
}

func NewJobLogRepo(db db.DB) storage.JobLogRepository {
	return &JobLogRepo{db: db}
}

func (r *JobLogRepo) CreateTx(ctx context.Context, tx db.Tx, job *repository.JobLog) error {
	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}
	now := time.Now().UTC()
	_, err := tx.Exec(ctx, `
        INSERT INTO job_log (
            id, kind, related_order_id, related_return_id, status, attempts, payload, created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    `, job.ID, job.Kind, job.RelatedOrderID, job.RelatedReturnID, job.Status, job.Attempts, job.Payload, now, now)
	if err != nil {
		return fmt.Errorf("failed to insert job log row: %w", err)
	}
	return nil
}

func (r *JobLogRepo) GetByID(ctx context.Context, id uuid.UUID) (*repository.JobLog, error) {
	var job repository.JobLog
	err := r.db.Get(ctx, &job, "SELECT * FROM job_log WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobLogRepo) GetByIDTx(ctx context.Context, tx db.Tx, id uuid.UUID) (*repository.JobLog, error) {
	var job repository.JobLog
	err := tx.Get(ctx, &job, "SELECT * FROM job_log WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &job, nil
}

// SUCCESS is terminal: the guard keeps a slow worker that read the row
// before another worker committed SUCCESS from overwriting it.
const updateJobStatusQuery = `
    UPDATE job_log
    SET
        status = $2,
        attempts = $3,
        last_error = $4,
        result_meta = $5
        -- updated_at is handled by the trigger
    WHERE id = $1 AND status <> $6
`

func (r *JobLogRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status repository.JobStatus, attempts int, lastError, resultMeta *string) error {
	tag, err := r.db.Exec(ctx, updateJobStatusQuery, id, status, attempts, lastError, resultMeta, repository.JobStatusSuccess)
	if err != nil {
		return fmt.Errorf("failed to update job %s status: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrConcurrentModification
	}
	return nil
}

func (r *JobLogRepo) UpdateStatusTx(ctx context.Context, tx db.Tx, id uuid.UUID, status repository.JobStatus, attempts int, lastError, resultMeta *string) error {
	tag, err := tx.Exec(ctx, updateJobStatusQuery, id, status, attempts, lastError, resultMeta, repository.JobStatusSuccess)
	if err != nil {
		return fmt.Errorf("failed to update job %s status: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrConcurrentModification
	}
	return nil
}

func (r *JobLogRepo) GetStalePendingTx(ctx context.Context, tx db.Tx, olderThan time.Duration, limit int) ([]*repository.JobLog, error) {
	cutoff := time.Now().UTC().Add(-olderThan)

	var jobs []*repository.JobLog
	err := tx.Select(ctx, &jobs, `
        SELECT * FROM job_log
        WHERE status = $1 AND created_at < $2
        ORDER BY created_at ASC
        LIMIT $3
        FOR UPDATE SKIP LOCKED
    `, repository.JobStatusPending, cutoff, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to select stale pending jobs: %w", err)
	}
	return jobs, nil
}
