// Package pricing computes order totals from line items at the fixed
// tax rate.
package pricing

import "traiteur/internal/models"

// TaxRate is the fixed surcharge applied to the order subtotal.
const TaxRate = 0.105

// Totals holds the derived money fields of an order.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// Compute derives subtotal, tax, and total for a set of line items.
// It is cheap enough to run on every mutation, so callers recompute
// instead of caching.
func Compute(items []models.OrderItem) Totals {
	var subtotal float64
	for _, item := range items {
		subtotal += float64(item.Quantity) * item.MenuItem.Price
	}

	tax := subtotal * TaxRate
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal + tax,
	}
}
