package jobs

import (
	"github.com/google/uuid"

	"github.com/articurated/ordermanagement/internal/repository"
)

// One durable topic per job kind.
const (
	TopicInvoiceJobs = "ordermanagement.invoice_generation.jobs"
	TopicRefundJobs  = "ordermanagement.refund_processing.jobs"
)

func TopicForKind(kind repository.JobKind) string {
	switch kind {
	case repository.JobKindInvoiceGeneration:
		return TopicInvoiceJobs
	case repository.JobKindRefundProcessing:
		return TopicRefundJobs
	}
	return ""
}

// InvoiceJobMessage is the queue payload for invoice generation. JobID is
// the message's deduplication token.
type InvoiceJobMessage struct {
	JobID         uuid.UUID `json:"job_id"`
	OrderID       uuid.UUID `json:"order_id"`
	CustomerEmail string    `json:"customer_email"`
}

// RefundJobMessage is the queue payload for refund processing.
type RefundJobMessage struct {
	JobID            uuid.UUID `json:"job_id"`
	OrderID          uuid.UUID `json:"order_id"`
	ReturnID         uuid.UUID `json:"return_id"`
	PaymentReference string    `json:"payment_reference"`
	Currency         string    `json:"currency"`
}
