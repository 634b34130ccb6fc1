package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrObjectNotFound         = errors.New("not found")
	ErrConcurrentModification = errors.New("concurrent modification")
)

// InvalidTransitionError reports a status edge that is not in the
// transition table of the entity kind.
type InvalidTransitionError struct {
	Entity string
	From   string
	To     string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid %s transition from %s to %s", e.Entity, e.From, e.To)
}

type Order struct {
	ID               uuid.UUID   `db:"id" json:"id"`
	ExternalID       string      `db:"external_id" json:"external_id"`
	CustomerEmail    string      `db:"customer_email" json:"customer_email"`
	TotalAmountCents int64       `db:"total_amount_cents" json:"total_amount_cents"`
	Status           OrderStatus `db:"status" json:"status"`
	Version          int64       `db:"version" json:"version"`
	CreatedAt        time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time   `db:"updated_at" json:"updated_at"`
}

type ReturnRequest struct {
	ID        uuid.UUID    `db:"id" json:"id"`
	OrderID   uuid.UUID    `db:"order_id" json:"order_id"`
	Reason    string       `db:"reason" json:"reason"`
	Status    ReturnStatus `db:"status" json:"status"`
	Version   int64        `db:"version" json:"version"`
	CreatedAt time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt time.Time    `db:"updated_at" json:"updated_at"`
}

// OrderHistoryEntry is an append-only transition log row. FromStatus is
// nil only for the synthetic row written when the order is created.
type OrderHistoryEntry struct {
	ID         int64        `db:"id" json:"id"`
	OrderID    uuid.UUID    `db:"order_id" json:"order_id"`
	FromStatus *OrderStatus `db:"from_status" json:"from_status"`
	ToStatus   OrderStatus  `db:"to_status" json:"to_status"`
	Actor      string       `db:"actor" json:"actor"`
	Reason     string       `db:"reason" json:"reason"`
	ChangedAt  time.Time    `db:"changed_at" json:"changed_at"`
}

type ReturnHistoryEntry struct {
	ID         int64         `db:"id" json:"id"`
	ReturnID   uuid.UUID     `db:"return_id" json:"return_id"`
	FromStatus *ReturnStatus `db:"from_status" json:"from_status"`
	ToStatus   ReturnStatus  `db:"to_status" json:"to_status"`
	Actor      string        `db:"actor" json:"actor"`
	Reason     string        `db:"reason" json:"reason"`
	ChangedAt  time.Time     `db:"changed_at" json:"changed_at"`
}
