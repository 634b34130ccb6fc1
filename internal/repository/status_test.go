package repository_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/articurated/ordermanagement/internal/repository"
)

func TestOrderStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    repository.OrderStatus
		to      repository.OrderStatus
		allowed bool
	}{
		{"pending to paid", repository.OrderPendingPayment, repository.OrderPaid, true},
		{"pending to cancelled", repository.OrderPendingPayment, repository.OrderCancelled, true},
		{"pending to shipped skips steps", repository.OrderPendingPayment, repository.OrderShipped, false},
		{"pending to delivered skips steps", repository.OrderPendingPayment, repository.OrderDelivered, false},
		{"paid to processing", repository.OrderPaid, repository.OrderProcessingInWarehouse, true},
		{"paid to cancelled", repository.OrderPaid, repository.OrderCancelled, true},
		{"paid to delivered skips steps", repository.OrderPaid, repository.OrderDelivered, false},
		{"processing to shipped", repository.OrderProcessingInWarehouse, repository.OrderShipped, true},
		{"processing to cancelled not allowed", repository.OrderProcessingInWarehouse, repository.OrderCancelled, false},
		{"shipped to delivered", repository.OrderShipped, repository.OrderDelivered, true},
		{"shipped to cancelled not allowed", repository.OrderShipped, repository.OrderCancelled, false},
		{"no backwards edge", repository.OrderPaid, repository.OrderPendingPayment, false},
		{"delivered is terminal", repository.OrderDelivered, repository.OrderShipped, false},
		{"cancelled is terminal", repository.OrderCancelled, repository.OrderPaid, false},
		{"self transition is a no-op", repository.OrderShipped, repository.OrderShipped, true},
		{"terminal self transition is a no-op", repository.OrderDelivered, repository.OrderDelivered, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestReturnStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    repository.ReturnStatus
		to      repository.ReturnStatus
		allowed bool
	}{
		{"requested to approved", repository.ReturnRequested, repository.ReturnApproved, true},
		{"requested to rejected", repository.ReturnRequested, repository.ReturnRejected, true},
		{"requested to cancelled", repository.ReturnRequested, repository.ReturnCancelled, true},
		{"requested to completed skips steps", repository.ReturnRequested, repository.ReturnCompleted, false},
		{"approved to in transit", repository.ReturnApproved, repository.ReturnInTransit, true},
		{"approved to rejected not allowed", repository.ReturnApproved, repository.ReturnRejected, false},
		{"in transit to received", repository.ReturnInTransit, repository.ReturnReceived, true},
		{"received to completed", repository.ReturnReceived, repository.ReturnCompleted, true},
		{"received to cancelled", repository.ReturnReceived, repository.ReturnCancelled, true},
		{"no backwards edge", repository.ReturnReceived, repository.ReturnInTransit, false},
		{"completed is terminal", repository.ReturnCompleted, repository.ReturnCancelled, false},
		{"rejected is terminal", repository.ReturnRejected, repository.ReturnApproved, false},
		{"cancelled is terminal", repository.ReturnCancelled, repository.ReturnRequested, false},
		{"self transition is a no-op", repository.ReturnCompleted, repository.ReturnCompleted, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestValidateTransitionTo(t *testing.T) {
	t.Run("order error carries the edge", func(t *testing.T) {
		err := repository.OrderDelivered.ValidateTransitionTo(repository.OrderShipped)
		require.Error(t, err)

		var invalid *repository.InvalidTransitionError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "order", invalid.Entity)
		assert.Equal(t, string(repository.OrderDelivered), invalid.From)
		assert.Equal(t, string(repository.OrderShipped), invalid.To)
		assert.Equal(t, "invalid order transition from DELIVERED to SHIPPED", err.Error())
	})

	t.Run("return error carries the edge", func(t *testing.T) {
		err := repository.ReturnRejected.ValidateTransitionTo(repository.ReturnApproved)
		require.Error(t, err)

		var invalid *repository.InvalidTransitionError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "return", invalid.Entity)
	})

	t.Run("legal edge passes", func(t *testing.T) {
		assert.NoError(t, repository.OrderPaid.ValidateTransitionTo(repository.OrderProcessingInWarehouse))
		assert.NoError(t, repository.ReturnReceived.ValidateTransitionTo(repository.ReturnCompleted))
	})
}

func TestStatusValid(t *testing.T) {
	assert.True(t, repository.OrderPendingPayment.Valid())
	assert.True(t, repository.OrderCancelled.Valid())
	assert.False(t, repository.OrderStatus("SHIPPING").Valid())

	assert.True(t, repository.ReturnRequested.Valid())
	assert.False(t, repository.ReturnStatus("DONE").Valid())
}
