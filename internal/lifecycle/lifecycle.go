// Package lifecycle owns the order status machine: the closed set of
// statuses, which transitions are legal, and the derived overdue and
// next-step helpers.
package lifecycle

import (
	"errors"
	"time"

	"traiteur/internal/models"
)

var (
	// ErrTerminalOrder is returned when a transition is requested on a
	// delivered or cancelled order.
	ErrTerminalOrder = errors.New("order is in a terminal status")

	// ErrUnknownStatus is returned when the requested status is not part
	// of the order lifecycle.
	ErrUnknownStatus = errors.New("unknown order status")
)

// successor maps each non-terminal status to its recommended next step.
var successor = map[models.OrderStatus]models.OrderStatus{
	models.OrderStatusPending:   models.OrderStatusConfirmed,
	models.OrderStatusConfirmed: models.OrderStatusPreparing,
	models.OrderStatusPreparing: models.OrderStatusReady,
	models.OrderStatusReady:     models.OrderStatusDelivered,
}

// Known reports whether s is one of the lifecycle statuses.
func Known(s models.OrderStatus) bool {
	switch s {
	case models.OrderStatusPending, models.OrderStatusConfirmed,
		models.OrderStatusPreparing, models.OrderStatusReady,
		models.OrderStatusDelivered, models.OrderStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions are offered from s.
func IsTerminal(s models.OrderStatus) bool {
	return s == models.OrderStatusDelivered || s == models.OrderStatusCancelled
}

// Next returns the recommended successor for one-click advancement.
// Terminal statuses have none.
func Next(s models.OrderStatus) (models.OrderStatus, bool) {
	next, ok := successor[s]
	return next, ok
}

// Transition validates a status change. Terminal orders are locked;
// from any other status every known target is allowed, including
// cancellation and jumps past intermediate steps, matching how staff
// actually advance orders.
func Transition(from, to models.OrderStatus) error {
	if !Known(to) {
		return ErrUnknownStatus
	}
	if IsTerminal(from) {
		return ErrTerminalOrder
	}
	return nil
}

// IsOverdue reports whether an order's delivery time has passed while
// the order is still in flight.
func IsOverdue(deliveryDate time.Time, status models.OrderStatus, now time.Time) bool {
	return deliveryDate.Before(now) && !IsTerminal(status)
}
