package postgresql_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_database "github.com/articurated/ordermanagement/internal/db/mocks"
	"github.com/articurated/ordermanagement/internal/repository"
	"github.com/articurated/ordermanagement/internal/repository/postgresql"
)

func TestJobLogRepo_CreateTx(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns id when missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockTx := mock_database.NewMockTx(ctrl)
		repo := postgresql.NewJobLogRepo(mock_database.NewMockDB(ctrl))

		job := &repository.JobLog{
			Kind:           repository.JobKindInvoiceGeneration,
			RelatedOrderID: uuid.New(),
			Status:         repository.JobStatusPending,
			Payload:        json.RawMessage(`{"job_id":"x"}`),
		}

		mockTx.EXPECT().Exec(
			gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
			gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
		).Return(pgconn.CommandTag("INSERT 0 1"), nil)

		require.NoError(t, repo.CreateTx(ctx, mockTx, job))
		assert.NotEqual(t, uuid.Nil, job.ID)
	})
}

func TestJobLogRepo_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewJobLogRepo(mockDB)

		id := uuid.New()
		errText := "Order not found"
		mockDB.EXPECT().Exec(
			gomock.Any(),
			gomock.Any(),
			gomock.Eq(id),
			gomock.Eq(repository.JobStatusFailed),
			gomock.Eq(2),
			gomock.Eq(&errText),
			gomock.Nil(),
			gomock.Eq(repository.JobStatusSuccess),
		).Return(pgconn.CommandTag("UPDATE 1"), nil)

		assert.NoError(t, repo.UpdateStatus(ctx, id, repository.JobStatusFailed, 2, &errText, nil))
	})

	t.Run("guards the terminal status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewJobLogRepo(mockDB)

		var query string
		mockDB.EXPECT().Exec(
			gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
			gomock.Any(), gomock.Any(), gomock.Eq(repository.JobStatusSuccess),
		).DoAndReturn(func(_ context.Context, q string, _ ...interface{}) (pgconn.CommandTag, error) {
			query = q
			return pgconn.CommandTag("UPDATE 1"), nil
		})

		require.NoError(t, repo.UpdateStatus(ctx, uuid.New(), repository.JobStatusInProgress, 1, nil, nil))
		assert.Contains(t, query, "status <> $6")
	})

	t.Run("lost race", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewJobLogRepo(mockDB)

		// A racing worker committed SUCCESS between our read and this write.
		mockDB.EXPECT().Exec(
			gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
		).Return(pgconn.CommandTag("UPDATE 0"), nil)

		err := repo.UpdateStatus(ctx, uuid.New(), repository.JobStatusFailed, 1, nil, nil)
		assert.ErrorIs(t, err, repository.ErrConcurrentModification)
	})
}

func TestJobLogRepo_UpdateStatusTx_LostRace(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTx := mock_database.NewMockTx(ctrl)
	repo := postgresql.NewJobLogRepo(mock_database.NewMockDB(ctrl))

	mockTx.EXPECT().Exec(
		gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
	).Return(pgconn.CommandTag("UPDATE 0"), nil)

	err := repo.UpdateStatusTx(ctx, mockTx, uuid.New(), repository.JobStatusSuccess, 1, nil, nil)
	assert.ErrorIs(t, err, repository.ErrConcurrentModification)
}

func TestJobLogRepo_GetStalePendingTx(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTx := mock_database.NewMockTx(ctrl)
	repo := postgresql.NewJobLogRepo(mock_database.NewMockDB(ctrl))

	stale := &repository.JobLog{
		ID:     uuid.New(),
		Kind:   repository.JobKindInvoiceGeneration,
		Status: repository.JobStatusPending,
	}

	mockTx.EXPECT().Select(
		gomock.Any(),
		gomock.Any(),
		gomock.Any(),
		gomock.Eq(repository.JobStatusPending),
		gomock.AssignableToTypeOf(time.Time{}),
		gomock.Eq(50),
	).DoAndReturn(func(_ context.Context, dest interface{}, _ string, _ ...interface{}) error {
		*dest.(*[]*repository.JobLog) = []*repository.JobLog{stale}
		return nil
	})

	jobs, err := repo.GetStalePendingTx(ctx, mockTx, 30*time.Second, 50)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, stale.ID, jobs[0].ID)
}
