package query

import (
	"time"

	"traiteur/internal/models"
)

// ClientStats summarizes a client's order history.
type ClientStats struct {
	TotalOrders       int       `json:"totalOrders"`
	CompletedOrders   int       `json:"completedOrders"`
	TotalSpent        float64   `json:"totalSpent"`
	AverageOrderValue float64   `json:"averageOrderValue"`
	LastOrderDate     time.Time `json:"lastOrderDate,omitempty"`
}

// OrdersFor returns the orders belonging to a client, in collection
// order. An empty client id matches nothing.
func OrdersFor(orders []models.Order, clientID string) []models.Order {
	if clientID == "" {
		return nil
	}
	var out []models.Order
	for _, o := range orders {
		if o.ClientID == clientID {
			out = append(out, o)
		}
	}
	return out
}

// Stats aggregates a client's order subset. The average is zero, not
// NaN, for a client with no orders.
func Stats(orders []models.Order) ClientStats {
	stats := ClientStats{TotalOrders: len(orders)}

	for _, o := range orders {
		stats.TotalSpent += o.Total
		if o.Status == models.OrderStatusDelivered {
			stats.CompletedOrders++
		}
		if o.OrderDate.After(stats.LastOrderDate) {
			stats.LastOrderDate = o.OrderDate
		}
	}

	if stats.TotalOrders > 0 {
		stats.AverageOrderValue = stats.TotalSpent / float64(stats.TotalOrders)
	}

	return stats
}
