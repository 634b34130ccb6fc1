package repository

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type JobKind string

const (
	JobKindInvoiceGeneration JobKind = "INVOICE_GENERATION"
	JobKindRefundProcessing  JobKind = "REFUND_PROCESSING"
)

type JobStatus string

const (
	JobStatusPending    JobStatus = "PENDING"
	JobStatusInProgress JobStatus = "IN_PROGRESS"
	JobStatusSuccess    JobStatus = "SUCCESS"
	JobStatusFailed     JobStatus = "FAILED"
)

// JobLog is the ledger row for one dispatched side-effect job. The row id
// doubles as the idempotency key carried on the queue message and passed to
// the refund gateway. Payload holds the serialized queue message so a stuck
// PENDING row can be re-emitted without rebuilding it.
type JobLog struct {
	ID              uuid.UUID       `db:"id" json:"id"`
	Kind            JobKind         `db:"kind" json:"kind"`
	RelatedOrderID  uuid.UUID       `db:"related_order_id" json:"related_order_id"`
	RelatedReturnID *uuid.UUID      `db:"related_return_id" json:"related_return_id"`
	Status          JobStatus       `db:"status" json:"status"`
	Attempts        int             `db:"attempts" json:"attempts"`
	LastError       *string         `db:"last_error" json:"last_error"`
	ResultMeta      *string         `db:"result_meta" json:"result_meta"`
	Payload         json.RawMessage `db:"payload" json:"payload"`
	CreatedAt       time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at" json:"updated_at"`
}
