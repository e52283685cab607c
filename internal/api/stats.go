package api

import (
	"net/http"
	"time"

	"traiteur/internal/query"
	"traiteur/internal/stock"

	"github.com/gin-gonic/gin"
)

// GetStats returns the dashboard aggregates and refreshes the status
// gauges while it is at it.
func (s *Server) GetStats(c *gin.Context) {
	orders := s.orders.List()
	items := s.inventory.List()

	orderStats := query.OrderSummary(orders, time.Now())
	inventoryStats := query.InventorySummary(items)

	if s.monitor != nil {
		counts := map[string]int{}
		for _, o := range orders {
			counts[string(o.Status)]++
		}
		for status, n := range counts {
			s.monitor.SetOrderCount(status, n)
		}
		s.monitor.SetStockCount(string(stock.StatusOK), inventoryStats.OK)
		s.monitor.SetStockCount(string(stock.StatusLow), inventoryStats.Low)
		s.monitor.SetStockCount(string(stock.StatusOut), inventoryStats.Out)
	}

	c.JSON(http.StatusOK, gin.H{
		"orders":         orderStats,
		"inventory":      inventoryStats,
		"monthlyRevenue": query.MonthlyRevenue(orders),
	})
}
