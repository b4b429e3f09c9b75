package models

import "fmt"

// ValidOrderTransitions defines valid state transitions for OrderStatus.
// Flow: pending → preparing → shipped → completed, preparing may step back to pending.
// Completed is terminal; a cancelled order can only be reopened.
var ValidOrderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusPreparing, OrderStatusShipped, OrderStatusCompleted, OrderStatusCancelled},
	OrderStatusPreparing: {OrderStatusPending, OrderStatusShipped, OrderStatusCompleted, OrderStatusCancelled},
	OrderStatusShipped:   {OrderStatusCompleted, OrderStatusCancelled},
	OrderStatusCompleted: {},
	OrderStatusCancelled: {OrderStatusPending},
}

// TransitionError is returned for a status change the state machine forbids
type TransitionError struct {
	From string
	To   string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %s to %s", e.From, e.To)
}

// IsValidOrderStatus reports whether s is a known order status
func IsValidOrderStatus(s OrderStatus) bool {
	_, ok := ValidOrderTransitions[s]
	return ok
}

// CanTransitionOrderStatus checks if a transition from one order status to another is valid
func CanTransitionOrderStatus(from, to OrderStatus) bool {
	for _, validTo := range ValidOrderTransitions[from] {
		if validTo == to {
			return true
		}
	}
	return false
}

// ValidateOrderStatusTransition returns an error if the transition is invalid
func ValidateOrderStatusTransition(from, to OrderStatus) error {
	if !IsValidOrderStatus(to) {
		return NewValidationError("status", "Invalid order status %q", to)
	}
	if !CanTransitionOrderStatus(from, to) {
		return &TransitionError{From: string(from), To: string(to)}
	}
	return nil
}

// ValidInvoiceTransitions defines valid state transitions for InvoiceStatus
var ValidInvoiceTransitions = map[InvoiceStatus][]InvoiceStatus{
	InvoiceStatusDraft:     {InvoiceStatusSent, InvoiceStatusPaid, InvoiceStatusCancelled},
	InvoiceStatusSent:      {InvoiceStatusPaid, InvoiceStatusCancelled, InvoiceStatusDraft},
	InvoiceStatusPaid:      {},
	InvoiceStatusCancelled: {InvoiceStatusDraft},
}

// ValidateInvoiceStatusTransition returns an error if the transition is invalid
func ValidateInvoiceStatusTransition(from, to InvoiceStatus) error {
	if _, ok := ValidInvoiceTransitions[to]; !ok {
		return NewValidationError("status", "Invalid invoice status %q", to)
	}
	for _, validTo := range ValidInvoiceTransitions[from] {
		if validTo == to {
			return nil
		}
	}
	return &TransitionError{From: string(from), To: string(to)}
}
