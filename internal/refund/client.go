//go:generate mockgen -source ./client.go -destination=./mocks/client.go -package=mock_refund
package refund

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Request carries one refund instruction to the gateway. IdempotencyKey is
// the job id, so repeated gateway calls for the same job are deduplicated on
// the gateway side as well.
type Request struct {
	PaymentReference string
	IdempotencyKey   string
	Currency         string
	AmountCents      int64
}

type Response struct {
	Success          bool
	GatewayReference string
	Message          string
}

// GatewayError wraps transport-level failures talking to the refund gateway.
// An unsuccessful Response is not a GatewayError; the gateway answered.
type GatewayError struct {
	Err error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("refund gateway call failed: %v", e.Err)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

type Client interface {
	ProcessRefund(ctx context.Context, req Request) (*Response, error)
}

// MaxRefundableCents is the mock gateway's balance; larger amounts are
// declined the way a real gateway declines an overdrawn merchant account.
const MaxRefundableCents int64 = 100_000_000

// MockClient stands in for the real gateway integration. Refunds within the
// mock balance succeed after a small simulated delay.
type MockClient struct{}

func NewMockClient() *MockClient {
	return &MockClient{}
}

func (c *MockClient) ProcessRefund(ctx context.Context, req Request) (*Response, error) {
	select {
	case <-time.After(200 * time.Millisecond):
	case <-ctx.Done():
		return nil, &GatewayError{Err: ctx.Err()}
	}

	if req.AmountCents > MaxRefundableCents {
		return &Response{
			Success: false,
			Message: "insufficient balance",
		}, nil
	}

	return &Response{
		Success:          true,
		GatewayReference: "MOCK-REFUND-" + uuid.NewString(),
		Message:          "Mock refund successful",
	}, nil
}
