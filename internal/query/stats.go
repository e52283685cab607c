package query

import (
	"sort"
	"time"

	"traiteur/internal/models"
	"traiteur/internal/stock"
)

// OrderStats feeds the order dashboard cards.
type OrderStats struct {
	TotalOrders   int     `json:"totalOrders"`
	PendingOrders int     `json:"pendingOrders"`
	InProcess     int     `json:"inProcess"`
	TodayRevenue  float64 `json:"todayRevenue"`
}

// InventoryStats feeds the inventory dashboard cards.
type InventoryStats struct {
	TotalItems int `json:"totalItems"`
	OK         int `json:"ok"`
	Low        int `json:"low"`
	Out        int `json:"out"`
}

// MonthRevenue is one point of the revenue-over-time series.
type MonthRevenue struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

// OrderSummary computes the order counters and today's revenue.
// In-process covers confirmed and preparing orders.
func OrderSummary(orders []models.Order, now time.Time) OrderStats {
	stats := OrderStats{TotalOrders: len(orders)}

	y, m, d := now.Date()
	for _, o := range orders {
		switch o.Status {
		case models.OrderStatusPending:
			stats.PendingOrders++
		case models.OrderStatusConfirmed, models.OrderStatusPreparing:
			stats.InProcess++
		}

		oy, om, od := o.OrderDate.Date()
		if oy == y && om == m && od == d {
			stats.TodayRevenue += o.Total
		}
	}

	return stats
}

// InventorySummary counts the items per derived stock status.
func InventorySummary(items []models.InventoryItem) InventoryStats {
	stats := InventoryStats{TotalItems: len(items)}

	for _, item := range items {
		switch stock.Classify(item.CurrentStock, item.MinStock) {
		case stock.StatusOut:
			stats.Out++
		case stock.StatusLow:
			stats.Low++
		default:
			stats.OK++
		}
	}

	return stats
}

// MonthlyRevenue buckets order totals by order month, oldest first.
// Cancelled orders do not count toward revenue.
func MonthlyRevenue(orders []models.Order) []MonthRevenue {
	totals := map[string]float64{}
	var keys []string

	for _, o := range orders {
		if o.Status == models.OrderStatusCancelled {
			continue
		}
		key := o.OrderDate.Format("2006-01")
		if _, seen := totals[key]; !seen {
			keys = append(keys, key)
		}
		totals[key] += o.Total
	}

	sort.Strings(keys)

	out := make([]MonthRevenue, 0, len(keys))
	for _, k := range keys {
		out = append(out, MonthRevenue{Month: k, Revenue: totals[k]})
	}
	return out
}
