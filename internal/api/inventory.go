package api

import (
	"net/http"
	"time"

	"traiteur/internal/models"
	"traiteur/internal/query"
	"traiteur/internal/stock"

	"github.com/gin-gonic/gin"
)

// inventoryView wraps an item with its derived stock fields.
type inventoryView struct {
	models.InventoryItem
	StockStatus  stock.Status `json:"stockStatus"`
	FillPercent  float64      `json:"fillPercent"`
	BarTier      stock.Tier   `json:"barTier"`
	ExpiringSoon bool         `json:"expiringSoon"`
}

func newInventoryView(item models.InventoryItem, now time.Time) inventoryView {
	return inventoryView{
		InventoryItem: item,
		StockStatus:   stock.Classify(item.CurrentStock, item.MinStock),
		FillPercent:   stock.FillPercent(item.CurrentStock, item.MaxStock),
		BarTier:       stock.BarTier(item.CurrentStock, item.MinStock, item.MaxStock),
		ExpiringSoon:  item.ExpiringSoon(now),
	}
}

// ListInventory returns the items matching the optional search,
// category, and stock-status query parameters, with derived fields.
func (s *Server) ListInventory(c *gin.Context) {
	f := query.Filters{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Status:   c.Query("status"),
	}

	now := time.Now()
	items := query.Inventory(s.inventory.List(), f)
	out := make([]inventoryView, 0, len(items))
	for _, item := range items {
		out = append(out, newInventoryView(item, now))
	}
	c.JSON(http.StatusOK, out)
}

// CreateInventoryItem validates and stores a new item.
func (s *Server) CreateInventoryItem(c *gin.Context) {
	var item models.InventoryItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if errs := item.Validate(); !errs.OK() {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errs})
		return
	}

	c.JSON(http.StatusCreated, newInventoryView(s.inventory.Create(item), time.Now()))
}

// GetInventoryItem returns one item by id with derived fields.
func (s *Server) GetInventoryItem(c *gin.Context) {
	item, ok := s.inventory.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Inventory item not found"})
		return
	}
	c.JSON(http.StatusOK, newInventoryView(item, time.Now()))
}

// UpdateInventoryItem validates and replaces an item.
func (s *Server) UpdateInventoryItem(c *gin.Context) {
	var item models.InventoryItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if errs := item.Validate(); !errs.OK() {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errs})
		return
	}

	updated, ok := s.inventory.Update(c.Param("id"), item)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Inventory item not found"})
		return
	}
	c.JSON(http.StatusOK, newInventoryView(updated, time.Now()))
}

// DeleteInventoryItem removes an item.
func (s *Server) DeleteInventoryItem(c *gin.Context) {
	if !s.inventory.Delete(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Inventory item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Inventory item deleted"})
}

// AdjustInventoryStock moves an item's stock by a delta, clamped to
// the item's range.
func (s *Server) AdjustInventoryStock(c *gin.Context) {
	var req struct {
		Delta float64 `json:"delta"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, ok := s.inventory.AdjustStock(c.Param("id"), req.Delta)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Inventory item not found"})
		return
	}
	c.JSON(http.StatusOK, newInventoryView(updated, time.Now()))
}
