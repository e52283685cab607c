package query

import (
	"testing"
	"time"

	"traiteur/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inventoryFixture() []models.InventoryItem {
	return []models.InventoryItem{
		{ID: "1", Name: "Harina de Trigo", Category: "Panadería", CurrentStock: 15, MinStock: 5, MaxStock: 50, Supplier: "Molino San Juan"},
		{ID: "2", Name: "Pollo Entero", Category: "Carnes", CurrentStock: 2, MinStock: 10, MaxStock: 30, Supplier: "Avícola Del Campo"},
		{ID: "3", Name: "Tomates Cherry", Category: "Verduras", CurrentStock: 25, MinStock: 5, MaxStock: 40, Supplier: "Finca Verde"},
		{ID: "4", Name: "Sal Marina", Category: "Condimentos", CurrentStock: 0, MinStock: 2, MaxStock: 10, Supplier: "Salinas del Pacífico"},
	}
}

func TestInventoryFilterByStatus(t *testing.T) {
	got := Inventory(inventoryFixture(), Filters{Status: "low"})

	require.Len(t, got, 1)
	assert.Equal(t, "Pollo Entero", got[0].Name)

	got = Inventory(inventoryFixture(), Filters{Status: "out"})
	require.Len(t, got, 1)
	assert.Equal(t, "Sal Marina", got[0].Name)
}

func TestInventoryFiltersCompose(t *testing.T) {
	// Status filter applies independently of search text and category.
	got := Inventory(inventoryFixture(), Filters{Search: "pollo", Category: "Carnes", Status: "low"})
	require.Len(t, got, 1)
	assert.Equal(t, "Pollo Entero", got[0].Name)

	// A mismatching category empties the result even when status matches.
	got = Inventory(inventoryFixture(), Filters{Category: "Verduras", Status: "low"})
	assert.Empty(t, got)
}

func TestInventorySearchIsCaseInsensitive(t *testing.T) {
	got := Inventory(inventoryFixture(), Filters{Search: "HARINA"})
	require.Len(t, got, 1)
	assert.Equal(t, "Harina de Trigo", got[0].Name)

	// Supplier text is searchable too.
	got = Inventory(inventoryFixture(), Filters{Search: "finca"})
	require.Len(t, got, 1)
	assert.Equal(t, "Tomates Cherry", got[0].Name)
}

func TestInventoryAllSentinel(t *testing.T) {
	got := Inventory(inventoryFixture(), Filters{Category: FilterAll, Status: FilterAll})
	assert.Len(t, got, len(inventoryFixture()))
}

func TestOrdersFilter(t *testing.T) {
	orders := []models.Order{
		{ID: "1", OrderNumber: "PED-2025-001", CustomerName: "María González", CustomerPhone: "+34 612 345 678", Status: models.OrderStatusConfirmed, PaymentStatus: models.PaymentPaid},
		{ID: "2", OrderNumber: "PED-2025-002", CustomerName: "Carlos Rodríguez", CustomerPhone: "+34 687 123 456", Status: models.OrderStatusPreparing, PaymentStatus: models.PaymentPaid},
		{ID: "3", OrderNumber: "PED-2025-003", CustomerName: "Ana Martín", CustomerPhone: "+34 654 987 321", Status: models.OrderStatusPending, PaymentStatus: models.PaymentPending},
	}

	got := Orders(orders, Filters{Status: "pending"})
	require.Len(t, got, 1)
	assert.Equal(t, "PED-2025-003", got[0].OrderNumber)

	got = Orders(orders, Filters{Search: "maría"})
	require.Len(t, got, 1)
	assert.Equal(t, "PED-2025-001", got[0].OrderNumber)

	got = Orders(orders, Filters{Payment: "paid"})
	assert.Len(t, got, 2)

	// Result order follows collection order.
	assert.Equal(t, "PED-2025-001", got[0].OrderNumber)
	assert.Equal(t, "PED-2025-002", got[1].OrderNumber)
}

func TestOrdersFor(t *testing.T) {
	orders := []models.Order{
		{ID: "a", ClientID: "c1", Total: 45.50, Status: models.OrderStatusDelivered, OrderDate: time.Date(2025, 6, 28, 0, 0, 0, 0, time.UTC)},
		{ID: "b", ClientID: "c1", Total: 32.25, Status: models.OrderStatusDelivered, OrderDate: time.Date(2025, 6, 25, 0, 0, 0, 0, time.UTC)},
		{ID: "c", ClientID: "c2", Total: 28.75, Status: models.OrderStatusPending, OrderDate: time.Date(2025, 6, 25, 0, 0, 0, 0, time.UTC)},
	}

	got := OrdersFor(orders, "c1")
	assert.Len(t, got, 2)

	assert.Empty(t, OrdersFor(orders, "c3"))
	assert.Empty(t, OrdersFor(orders, ""))
}

func TestStats(t *testing.T) {
	orders := []models.Order{
		{Total: 45.50, Status: models.OrderStatusDelivered, OrderDate: time.Date(2025, 6, 28, 0, 0, 0, 0, time.UTC)},
		{Total: 32.25, Status: models.OrderStatusDelivered, OrderDate: time.Date(2025, 6, 25, 0, 0, 0, 0, time.UTC)},
		{Total: 28.75, Status: models.OrderStatusPending, OrderDate: time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)},
	}

	stats := Stats(orders)

	assert.Equal(t, 3, stats.TotalOrders)
	assert.Equal(t, 2, stats.CompletedOrders)
	assert.InDelta(t, 106.50, stats.TotalSpent, 0.001)
	assert.InDelta(t, 35.50, stats.AverageOrderValue, 0.001)
	assert.Equal(t, time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC), stats.LastOrderDate)
}

func TestStatsEmpty(t *testing.T) {
	stats := Stats(nil)

	assert.Zero(t, stats.TotalOrders)
	assert.Zero(t, stats.TotalSpent)
	// Zero, not NaN.
	assert.Zero(t, stats.AverageOrderValue)
}

func TestOrderSummary(t *testing.T) {
	now := time.Date(2025, 7, 17, 15, 0, 0, 0, time.UTC)
	orders := []models.Order{
		{Status: models.OrderStatusPending, Total: 102.77, OrderDate: now.Add(-2 * time.Hour)},
		{Status: models.OrderStatusConfirmed, Total: 119.34, OrderDate: now.AddDate(0, 0, -2)},
		{Status: models.OrderStatusPreparing, Total: 155.81, OrderDate: now.AddDate(0, 0, -1)},
	}

	stats := OrderSummary(orders, now)

	assert.Equal(t, 3, stats.TotalOrders)
	assert.Equal(t, 1, stats.PendingOrders)
	assert.Equal(t, 2, stats.InProcess)
	assert.InDelta(t, 102.77, stats.TodayRevenue, 0.001)
}

func TestInventorySummary(t *testing.T) {
	stats := InventorySummary(inventoryFixture())

	assert.Equal(t, 4, stats.TotalItems)
	assert.Equal(t, 2, stats.OK)
	assert.Equal(t, 1, stats.Low)
	assert.Equal(t, 1, stats.Out)
}

func TestMonthlyRevenue(t *testing.T) {
	orders := []models.Order{
		{Total: 100, Status: models.OrderStatusDelivered, OrderDate: time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)},
		{Total: 50, Status: models.OrderStatusPending, OrderDate: time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)},
		{Total: 25, Status: models.OrderStatusDelivered, OrderDate: time.Date(2025, 7, 20, 0, 0, 0, 0, time.UTC)},
		{Total: 999, Status: models.OrderStatusCancelled, OrderDate: time.Date(2025, 7, 21, 0, 0, 0, 0, time.UTC)},
	}

	series := MonthlyRevenue(orders)

	require.Len(t, series, 2)
	assert.Equal(t, MonthRevenue{Month: "2025-06", Revenue: 50}, series[0])
	assert.Equal(t, MonthRevenue{Month: "2025-07", Revenue: 125}, series[1])
}
