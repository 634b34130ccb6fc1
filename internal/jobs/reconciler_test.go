package jobs_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	mock_database "github.com/articurated/ordermanagement/internal/db/mocks"
	"github.com/articurated/ordermanagement/internal/jobs"
	mock_kafka "github.com/articurated/ordermanagement/internal/kafka/mocks"
	"github.com/articurated/ordermanagement/internal/repository"
	mock_storage "github.com/articurated/ordermanagement/internal/storage/mocks"
)

func pendingJob(kind repository.JobKind) *repository.JobLog {
	return &repository.JobLog{
		ID:      uuid.New(),
		Kind:    kind,
		Status:  repository.JobStatusPending,
		Payload: json.RawMessage(`{}`),
	}
}

func TestReconciler_Sweep(t *testing.T) {
	ctx := context.Background()
	config := jobs.ReconcilerConfig{
		Schedule:  "* * * * * *",
		OlderThan: 30 * time.Second,
		BatchSize: 50,
	}

	t.Run("re-emits every stale pending row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		jobLogs := mock_storage.NewMockJobLogRepository(ctrl)
		producer := mock_kafka.NewMockProducer(ctrl)

		publisher := jobs.NewPublisher(jobLogs, producer, zap.NewNop())
		r := jobs.NewReconciler(mockDB, jobLogs, publisher, config, zap.NewNop())

		invoiceJob := pendingJob(repository.JobKindInvoiceGeneration)
		refundJob := pendingJob(repository.JobKindRefundProcessing)

		mockDB.EXPECT().BeginTx(gomock.Any()).Return(mockTx, nil)
		jobLogs.EXPECT().
			GetStalePendingTx(gomock.Any(), mockTx, config.OlderThan, config.BatchSize).
			Return([]*repository.JobLog{invoiceJob, refundJob}, nil)
		producer.EXPECT().
			SendMessage(gomock.Any(), jobs.TopicInvoiceJobs, []byte(invoiceJob.ID.String()), gomock.Any()).
			Return(nil)
		producer.EXPECT().
			SendMessage(gomock.Any(), jobs.TopicRefundJobs, []byte(refundJob.ID.String()), gomock.Any()).
			Return(nil)
		mockTx.EXPECT().Commit(gomock.Any()).Return(nil)

		assert.NoError(t, r.Sweep(ctx))
	})

	t.Run("one failed emission does not starve the batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		jobLogs := mock_storage.NewMockJobLogRepository(ctrl)
		producer := mock_kafka.NewMockProducer(ctrl)

		publisher := jobs.NewPublisher(jobLogs, producer, zap.NewNop())
		r := jobs.NewReconciler(mockDB, jobLogs, publisher, config, zap.NewNop())

		first := pendingJob(repository.JobKindInvoiceGeneration)
		second := pendingJob(repository.JobKindInvoiceGeneration)

		mockDB.EXPECT().BeginTx(gomock.Any()).Return(mockTx, nil)
		jobLogs.EXPECT().
			GetStalePendingTx(gomock.Any(), mockTx, config.OlderThan, config.BatchSize).
			Return([]*repository.JobLog{first, second}, nil)
		producer.EXPECT().
			SendMessage(gomock.Any(), jobs.TopicInvoiceJobs, []byte(first.ID.String()), gomock.Any()).
			Return(assert.AnError)
		producer.EXPECT().
			SendMessage(gomock.Any(), jobs.TopicInvoiceJobs, []byte(second.ID.String()), gomock.Any()).
			Return(nil)
		mockTx.EXPECT().Commit(gomock.Any()).Return(nil)

		assert.NoError(t, r.Sweep(ctx))
	})

	t.Run("empty sweep commits and does nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		jobLogs := mock_storage.NewMockJobLogRepository(ctrl)

		publisher := jobs.NewPublisher(jobLogs, mock_kafka.NewMockProducer(ctrl), zap.NewNop())
		r := jobs.NewReconciler(mockDB, jobLogs, publisher, config, zap.NewNop())

		mockDB.EXPECT().BeginTx(gomock.Any()).Return(mockTx, nil)
		jobLogs.EXPECT().
			GetStalePendingTx(gomock.Any(), mockTx, config.OlderThan, config.BatchSize).
			Return(nil, nil)
		mockTx.EXPECT().Commit(gomock.Any()).Return(nil)

		assert.NoError(t, r.Sweep(ctx))
	})

	t.Run("select failure rolls back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockTx := mock_database.NewMockTx(ctrl)
		jobLogs := mock_storage.NewMockJobLogRepository(ctrl)

		publisher := jobs.NewPublisher(jobLogs, mock_kafka.NewMockProducer(ctrl), zap.NewNop())
		r := jobs.NewReconciler(mockDB, jobLogs, publisher, config, zap.NewNop())

		mockDB.EXPECT().BeginTx(gomock.Any()).Return(mockTx, nil)
		jobLogs.EXPECT().
			GetStalePendingTx(gomock.Any(), mockTx, config.OlderThan, config.BatchSize).
			Return(nil, assert.AnError)
		mockTx.EXPECT().Rollback(gomock.Any()).Return(nil)

		assert.Error(t, r.Sweep(ctx))
	})
}
