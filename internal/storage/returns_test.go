package storage_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/articurated/ordermanagement/internal/db"
	"github.com/articurated/ordermanagement/internal/repository"
	"github.com/articurated/ordermanagement/internal/storage"
)

func TestCreateReturn(t *testing.T) {
	ctx := context.Background()

	t.Run("delivered order opens a return", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		stg, m := newTestStorage(ctrl)

		orderID := uuid.New()
		m.orders.EXPECT().
			GetByID(gomock.Any(), orderID).
			Return(&repository.Order{ID: orderID, Status: repository.OrderDelivered}, nil)

		m.expectTxCommit()
		m.returns.EXPECT().
			CreateTx(gomock.Any(), m.tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.Tx, ret *repository.ReturnRequest) error {
				assert.Equal(t, orderID, ret.OrderID)
				assert.Equal(t, repository.ReturnRequested, ret.Status)
				assert.Equal(t, int64(1), ret.Version)
				return nil
			})
		m.returnHistory.EXPECT().
			CreateTx(gomock.Any(), m.tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.Tx, entry *repository.ReturnHistoryEntry) error {
				assert.Nil(t, entry.FromStatus)
				assert.Equal(t, repository.ReturnRequested, entry.ToStatus)
				return nil
			})

		ret, err := stg.CreateReturn(ctx, orderID, "damaged on arrival", "customer")
		require.NoError(t, err)
		assert.Equal(t, repository.ReturnRequested, ret.Status)
	})

	t.Run("undelivered order is not returnable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		stg, m := newTestStorage(ctrl)

		orderID := uuid.New()
		m.orders.EXPECT().
			GetByID(gomock.Any(), orderID).
			Return(&repository.Order{ID: orderID, Status: repository.OrderShipped}, nil)

		_, err := stg.CreateReturn(ctx, orderID, "changed my mind", "customer")
		assert.ErrorIs(t, err, storage.ErrOrderNotReturnable)
	})

	t.Run("missing order passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		stg, m := newTestStorage(ctrl)

		orderID := uuid.New()
		m.orders.EXPECT().GetByID(gomock.Any(), orderID).Return(nil, repository.ErrObjectNotFound)

		_, err := stg.CreateReturn(ctx, orderID, "damaged", "customer")
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
	})
}

func TestChangeReturnStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("completion publishes a refund job", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		stg, m := newTestStorage(ctrl)
		m.expectTxCommit()

		id := uuid.New()
		job := &repository.JobLog{ID: uuid.New(), Kind: repository.JobKindRefundProcessing, Status: repository.JobStatusPending}

		m.returns.EXPECT().
			GetByIDTx(gomock.Any(), m.tx, id).
			Return(&repository.ReturnRequest{ID: id, OrderID: uuid.New(), Status: repository.ReturnReceived, Version: 2}, nil)
		m.returnHistory.EXPECT().CreateTx(gomock.Any(), m.tx, gomock.Any()).Return(nil)
		m.returns.EXPECT().UpdateStatusTx(gomock.Any(), m.tx, gomock.Any()).Return(nil)
		m.publisher.EXPECT().
			CreateRefundJobTx(gomock.Any(), m.tx, gomock.Any(), "ORIG-PAYMENT-REF", "USD").
			Return(job, nil).
			Times(1)
		m.publisher.EXPECT().Emit(gomock.Any(), job).Return(nil).Times(1)

		ret, err := stg.ChangeReturnStatus(ctx, id, repository.ReturnCompleted, "ops", "goods inspected")
		require.NoError(t, err)
		assert.Equal(t, repository.ReturnCompleted, ret.Status)
	})

	t.Run("non-completing transition publishes nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		stg, m := newTestStorage(ctrl)
		m.expectTxCommit()

		id := uuid.New()
		m.returns.EXPECT().
			GetByIDTx(gomock.Any(), m.tx, id).
			Return(&repository.ReturnRequest{ID: id, Status: repository.ReturnRequested, Version: 1}, nil)
		m.returnHistory.EXPECT().CreateTx(gomock.Any(), m.tx, gomock.Any()).Return(nil)
		m.returns.EXPECT().UpdateStatusTx(gomock.Any(), m.tx, gomock.Any()).Return(nil)

		ret, err := stg.ChangeReturnStatus(ctx, id, repository.ReturnApproved, "ops", "approved")
		require.NoError(t, err)
		assert.Equal(t, repository.ReturnApproved, ret.Status)
	})

	t.Run("illegal transition writes nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		stg, m := newTestStorage(ctrl)
		m.expectTxRollback()

		id := uuid.New()
		m.returns.EXPECT().
			GetByIDTx(gomock.Any(), m.tx, id).
			Return(&repository.ReturnRequest{ID: id, Status: repository.ReturnRejected}, nil)

		_, err := stg.ChangeReturnStatus(ctx, id, repository.ReturnApproved, "ops", "oops")

		var invalid *repository.InvalidTransitionError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "return", invalid.Entity)
	})
}

func TestApplyReturnTransitionTx(t *testing.T) {
	ctx := context.Background()

	t.Run("no publishing inside the caller's transaction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		stg, m := newTestStorage(ctrl)

		id := uuid.New()
		m.returns.EXPECT().
			GetByIDTx(gomock.Any(), m.tx, id).
			Return(&repository.ReturnRequest{ID: id, Status: repository.ReturnReceived, Version: 1}, nil)
		m.returnHistory.EXPECT().CreateTx(gomock.Any(), m.tx, gomock.Any()).Return(nil)
		m.returns.EXPECT().UpdateStatusTx(gomock.Any(), m.tx, gomock.Any()).Return(nil)

		ret, err := stg.ApplyReturnTransitionTx(ctx, m.tx, id, repository.ReturnCompleted, "system", "refund processed")
		require.NoError(t, err)
		assert.Equal(t, repository.ReturnCompleted, ret.Status)
	})

	t.Run("self transition on completed return is accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		stg, m := newTestStorage(ctrl)

		id := uuid.New()
		m.returns.EXPECT().
			GetByIDTx(gomock.Any(), m.tx, id).
			Return(&repository.ReturnRequest{ID: id, Status: repository.ReturnCompleted, Version: 3}, nil)
		m.returnHistory.EXPECT().CreateTx(gomock.Any(), m.tx, gomock.Any()).Return(nil)
		m.returns.EXPECT().UpdateStatusTx(gomock.Any(), m.tx, gomock.Any()).Return(nil)

		_, err := stg.ApplyReturnTransitionTx(ctx, m.tx, id, repository.ReturnCompleted, "system", "refund processed")
		assert.NoError(t, err)
	})
}

func TestGetOrderReturns(t *testing.T) {
	ctx := context.Background()

	t.Run("lists returns for an existing order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		stg, m := newTestStorage(ctrl)

		orderID := uuid.New()
		m.orders.EXPECT().GetByID(gomock.Any(), orderID).
			Return(&repository.Order{ID: orderID, Status: repository.OrderDelivered}, nil)
		m.returns.EXPECT().GetByOrderID(gomock.Any(), orderID).
			Return([]*repository.ReturnRequest{
				{ID: uuid.New(), OrderID: orderID, Status: repository.ReturnRejected},
				{ID: uuid.New(), OrderID: orderID, Status: repository.ReturnRequested},
			}, nil)

		returns, err := stg.GetOrderReturns(ctx, orderID)
		require.NoError(t, err)
		require.Len(t, returns, 2)
		assert.Equal(t, orderID, returns[0].OrderID)
	})

	t.Run("missing order yields not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		stg, m := newTestStorage(ctrl)

		orderID := uuid.New()
		m.orders.EXPECT().GetByID(gomock.Any(), orderID).Return(nil, repository.ErrObjectNotFound)

		_, err := stg.GetOrderReturns(ctx, orderID)
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
	})
}
