package models

import (
	"strings"
	"time"
)

// Order represents a catering order placed by a customer. Customer
// contact fields are denormalized onto the order; ClientID is an
// optional link back to the client record for history views.
type Order struct {
	ID              string        `json:"id"`
	OrderNumber     string        `json:"orderNumber"`
	ClientID        string        `json:"clientId,omitempty"`
	CustomerName    string        `json:"customerName"`
	CustomerPhone   string        `json:"customerPhone"`
	CustomerEmail   string        `json:"customerEmail,omitempty"`
	OrderDate       time.Time     `json:"orderDate"`
	DeliveryDate    time.Time     `json:"deliveryDate"`
	Status          OrderStatus   `json:"status"`
	Items           []OrderItem   `json:"items"`
	Subtotal        float64       `json:"subtotal"`
	Tax             float64       `json:"tax"`
	Total           float64       `json:"total"`
	Notes           string        `json:"notes,omitempty"`
	DeliveryAddress string        `json:"deliveryAddress,omitempty"`
	PaymentMethod   PaymentMethod `json:"paymentMethod"`
	PaymentStatus   PaymentStatus `json:"paymentStatus"`
}

// OrderItem is one line of an order: a menu item, a positive quantity,
// and optional preparation instructions. A quantity dropping to zero
// removes the line instead of keeping it around.
type OrderItem struct {
	MenuItem            MenuItem `json:"menuItem"`
	Quantity            int      `json:"quantity"`
	SpecialInstructions string   `json:"specialInstructions,omitempty"`
}

// OrderStatus represents the possible states of an order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// PaymentMethod represents how the customer pays
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentCard     PaymentMethod = "card"
	PaymentTransfer PaymentMethod = "transfer"
)

// PaymentStatus represents the settlement state of an order
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// Validate checks the fields a new order must carry before it is
// accepted. Returns a map of field name to message; an empty map means
// the order is valid. Totals are computed server-side and are not
// validated here.
func (o Order) Validate(now time.Time) FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(o.CustomerName) == "" {
		errs["customerName"] = "customer name is required"
	}
	if strings.TrimSpace(o.CustomerPhone) == "" {
		errs["customerPhone"] = "customer phone is required"
	}
	if o.DeliveryDate.IsZero() {
		errs["deliveryDate"] = "delivery date is required"
	} else if o.DeliveryDate.Before(now) {
		errs["deliveryDate"] = "delivery date cannot be in the past"
	}
	if strings.TrimSpace(o.DeliveryAddress) == "" {
		errs["deliveryAddress"] = "delivery address is required"
	}
	if len(o.Items) == 0 {
		errs["items"] = "an order needs at least one item"
	}
	for _, item := range o.Items {
		if item.Quantity < 1 {
			errs["items"] = "item quantities must be at least 1"
			break
		}
	}

	return errs
}
