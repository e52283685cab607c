package api

import (
	"errors"
	"net/http"
	"time"

	"traiteur/internal/lifecycle"
	"traiteur/internal/models"
	"traiteur/internal/pricing"
	"traiteur/internal/query"
	"traiteur/internal/store"

	"github.com/gin-gonic/gin"
)

// orderView wraps an order with its derived overdue flag.
type orderView struct {
	models.Order
	IsOverdue bool `json:"isOverdue"`
}

func (s *Server) orderView(o models.Order) orderView {
	return orderView{
		Order:     o,
		IsOverdue: lifecycle.IsOverdue(o.DeliveryDate, o.Status, time.Now()),
	}
}

// ListOrders returns the orders matching the optional search, status,
// and payment query parameters.
func (s *Server) ListOrders(c *gin.Context) {
	f := query.Filters{
		Search:  c.Query("search"),
		Status:  c.Query("status"),
		Payment: c.Query("payment"),
	}

	orders := query.Orders(s.orders.List(), f)
	out := make([]orderView, 0, len(orders))
	for _, o := range orders {
		out = append(out, s.orderView(o))
	}
	c.JSON(http.StatusOK, out)
}

// CreateOrder validates a new order, resolves its dishes against the
// catalog, computes the totals server-side, and stores it.
func (s *Server) CreateOrder(c *gin.Context) {
	var order models.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	errs := order.Validate(time.Now())

	// Dishes known to the catalog must be orderable; their stored
	// record wins over whatever the payload carried.
	for i, item := range order.Items {
		dish, ok := s.dishes.Get(item.MenuItem.ID)
		if !ok {
			continue
		}
		if !dish.Available {
			errs["items"] = "dish " + dish.Name + " is not available"
			break
		}
		order.Items[i].MenuItem = dish
	}

	if !errs.OK() {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errs})
		return
	}

	totals := pricing.Compute(order.Items)
	order.Subtotal = totals.Subtotal
	order.Tax = totals.Tax
	order.Total = totals.Total
	if order.PaymentStatus == "" {
		order.PaymentStatus = models.PaymentPending
	}

	created := s.orders.Create(order)
	s.refreshClientStats(created.ClientID)
	if s.monitor != nil {
		s.monitor.RecordOrderCreated(string(created.PaymentMethod), created.Total)
	}

	c.JSON(http.StatusCreated, s.orderView(created))
}

// GetOrder returns one order by id.
func (s *Server) GetOrder(c *gin.Context) {
	order, ok := s.orders.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, s.orderView(order))
}

// DeleteOrder removes an order and refreshes the owning client's
// aggregates.
func (s *Server) DeleteOrder(c *gin.Context) {
	order, ok := s.orders.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	s.orders.Delete(order.ID)
	s.refreshClientStats(order.ClientID)
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted"})
}

// UpdateOrderStatus applies a lifecycle transition to an order.
func (s *Server) UpdateOrderStatus(c *gin.Context) {
	var req struct {
		Status models.OrderStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := s.orders.UpdateStatus(c.Param("id"), req.Status)
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	case err != nil:
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	s.refreshClientStats(updated.ClientID)
	c.JSON(http.StatusOK, s.orderView(updated))
}

// UpdateOrderPayment sets the payment status of an order.
func (s *Server) UpdateOrderPayment(c *gin.Context) {
	var req struct {
		PaymentStatus models.PaymentStatus `json:"paymentStatus"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	switch req.PaymentStatus {
	case models.PaymentPending, models.PaymentPaid, models.PaymentRefunded:
	default:
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "unknown payment status"})
		return
	}

	updated, ok := s.orders.UpdatePayment(c.Param("id"), req.PaymentStatus)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, s.orderView(updated))
}
