package repository

type OrderStatus string

const (
	OrderPendingPayment        OrderStatus = "PENDING_PAYMENT"
	OrderPaid                  OrderStatus = "PAID"
	OrderProcessingInWarehouse OrderStatus = "PROCESSING_IN_WAREHOUSE"
	OrderShipped               OrderStatus = "SHIPPED"
	OrderDelivered             OrderStatus = "DELIVERED"
	OrderCancelled             OrderStatus = "CANCELLED"
)

type ReturnStatus string

const (
	ReturnRequested ReturnStatus = "REQUESTED"
	ReturnApproved  ReturnStatus = "APPROVED"
	ReturnRejected  ReturnStatus = "REJECTED"
	ReturnInTransit ReturnStatus = "IN_TRANSIT"
	ReturnReceived  ReturnStatus = "RECEIVED"
	ReturnCompleted ReturnStatus = "COMPLETED"
	ReturnCancelled ReturnStatus = "CANCELLED"
)

// orderTransitions is the full legal-transition table for orders.
// DELIVERED and CANCELLED are terminal.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPendingPayment:        {OrderPaid, OrderCancelled},
	OrderPaid:                  {OrderProcessingInWarehouse, OrderCancelled},
	OrderProcessingInWarehouse: {OrderShipped},
	OrderShipped:               {OrderDelivered},
	OrderDelivered:             {},
	OrderCancelled:             {},
}

// returnTransitions is the full legal-transition table for return requests.
// COMPLETED, REJECTED and CANCELLED are terminal.
var returnTransitions = map[ReturnStatus][]ReturnStatus{
	ReturnRequested: {ReturnApproved, ReturnRejected, ReturnCancelled},
	ReturnApproved:  {ReturnInTransit, ReturnCancelled},
	ReturnInTransit: {ReturnReceived, ReturnCancelled},
	ReturnReceived:  {ReturnCompleted, ReturnCancelled},
	ReturnCompleted: {},
	ReturnRejected:  {},
	ReturnCancelled: {},
}

func (s OrderStatus) Valid() bool {
	_, ok := orderTransitions[s]
	return ok
}

// CanTransitionTo reports whether the edge s -> target is legal.
// Self-transitions are always allowed so a re-applied status is a no-op
// instead of an error.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	if s == target {
		return true
	}
	for _, allowed := range orderTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

func (s OrderStatus) ValidateTransitionTo(target OrderStatus) error {
	if !s.CanTransitionTo(target) {
		return &InvalidTransitionError{Entity: "order", From: string(s), To: string(target)}
	}
	return nil
}

func (s ReturnStatus) Valid() bool {
	_, ok := returnTransitions[s]
	return ok
}

// CanTransitionTo reports whether the edge s -> target is legal.
// Self-transitions are always allowed.
func (s ReturnStatus) CanTransitionTo(target ReturnStatus) bool {
	if s == target {
		return true
	}
	for _, allowed := range returnTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

func (s ReturnStatus) ValidateTransitionTo(target ReturnStatus) error {
	if !s.CanTransitionTo(target) {
		return &InvalidTransitionError{Entity: "return", From: string(s), To: string(target)}
	}
	return nil
}
