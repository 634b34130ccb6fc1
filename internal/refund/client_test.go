package refund_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/articurated/ordermanagement/internal/refund"
)

func TestMockClient_ProcessRefund(t *testing.T) {
	t.Run("succeeds with a mock reference", func(t *testing.T) {
		c := refund.NewMockClient()

		resp, err := c.ProcessRefund(context.Background(), refund.Request{
			PaymentReference: "ORIG-PAYMENT-REF",
			IdempotencyKey:   "job-1",
			Currency:         "USD",
			AmountCents:      12500,
		})
		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.True(t, strings.HasPrefix(resp.GatewayReference, "MOCK-REFUND-"))
	})

	t.Run("declines amounts over the mock balance", func(t *testing.T) {
		c := refund.NewMockClient()

		resp, err := c.ProcessRefund(context.Background(), refund.Request{
			PaymentReference: "ORIG-PAYMENT-REF",
			IdempotencyKey:   "job-3",
			Currency:         "USD",
			AmountCents:      refund.MaxRefundableCents + 1,
		})
		require.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Equal(t, "insufficient balance", resp.Message)
		assert.Empty(t, resp.GatewayReference)
	})

	t.Run("cancelled context is a gateway error", func(t *testing.T) {
		c := refund.NewMockClient()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := c.ProcessRefund(ctx, refund.Request{IdempotencyKey: "job-2"})
		require.Error(t, err)

		var gatewayErr *refund.GatewayError
		assert.ErrorAs(t, err, &gatewayErr)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
