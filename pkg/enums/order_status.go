package enums

import "fmt"

// OrderStatus tracks the kitchen lifecycle of an order.
type OrderStatus string

const (
	OrderStatusNew       OrderStatus = "new"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusRejected  OrderStatus = "rejected"
	OrderStatusCancelled OrderStatus = "cancelled"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusDelivered OrderStatus = "delivered"
)

var validOrderStatuses = []OrderStatus{
	OrderStatusNew,
	OrderStatusPreparing,
	OrderStatusReady,
	OrderStatusRejected,
	OrderStatusCancelled,
	OrderStatusCompleted,
	OrderStatusDelivered,
}

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusNew:       {OrderStatusPreparing, OrderStatusRejected, OrderStatusCancelled},
	OrderStatusPreparing: {OrderStatusReady, OrderStatusCancelled},
	OrderStatusReady:     {OrderStatusCompleted, OrderStatusCancelled},
	OrderStatusCompleted: {OrderStatusDelivered, OrderStatusCancelled},
}

// String implements fmt.Stringer.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known OrderStatus.
func (s OrderStatus) IsValid() bool {
	for _, candidate := range validOrderStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no kitchen action can follow.
func (s OrderStatus) IsTerminal() bool {
	switch s {
	case OrderStatusRejected, OrderStatusCancelled, OrderStatusDelivered:
		return true
	}
	return false
}

// IsAccepted reports whether the kitchen took the order on.
func (s OrderStatus) IsAccepted() bool {
	switch s {
	case OrderStatusPreparing, OrderStatusReady, OrderStatusCompleted, OrderStatusDelivered:
		return true
	}
	return false
}

// IsFulfilled reports whether the order reached the customer.
func (s OrderStatus) IsFulfilled() bool {
	return s == OrderStatusCompleted || s == OrderStatusDelivered
}

// CanTransitionTo reports whether next is a legal successor of s.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, candidate := range orderTransitions[s] {
		if candidate == next {
			return true
		}
	}
	return false
}

// ParseOrderStatus converts raw input into an OrderStatus.
func ParseOrderStatus(value string) (OrderStatus, error) {
	for _, candidate := range validOrderStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid order status %q", value)
}
