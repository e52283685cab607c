package api

import (
	"net/http"

	"traiteur/internal/models"
	"traiteur/internal/query"

	"github.com/gin-gonic/gin"
)

// ListClients returns the clients matching the optional search and
// status query parameters.
func (s *Server) ListClients(c *gin.Context) {
	f := query.Filters{
		Search: c.Query("search"),
		Status: c.Query("status"),
	}
	c.JSON(http.StatusOK, query.Clients(s.clients.List(), f))
}

// CreateClient validates and stores a new client.
func (s *Server) CreateClient(c *gin.Context) {
	var client models.Client
	if err := c.ShouldBindJSON(&client); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if errs := client.Validate(); !errs.OK() {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errs})
		return
	}

	c.JSON(http.StatusCreated, s.clients.Create(client))
}

// GetClient returns one client by id.
func (s *Server) GetClient(c *gin.Context) {
	client, ok := s.clients.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}
	c.JSON(http.StatusOK, client)
}

// UpdateClient validates and replaces the editable fields of a client.
func (s *Server) UpdateClient(c *gin.Context) {
	var client models.Client
	if err := c.ShouldBindJSON(&client); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if errs := client.Validate(); !errs.OK() {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errs})
		return
	}

	updated, ok := s.clients.Update(c.Param("id"), client)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteClient removes a client. Orders keep their denormalized
// customer fields.
func (s *Server) DeleteClient(c *gin.Context) {
	if !s.clients.Delete(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Client deleted"})
}

// GetClientOrders returns a client's order history with its summary.
func (s *Server) GetClientOrders(c *gin.Context) {
	id := c.Param("id")
	if _, ok := s.clients.Get(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}

	orders := query.OrdersFor(s.orders.List(), id)
	c.JSON(http.StatusOK, gin.H{
		"orders": orders,
		"stats":  query.Stats(orders),
	})
}

// RefreshClientStats recomputes the cached order aggregates of a
// client from the order collection.
func (s *Server) RefreshClientStats(c *gin.Context) {
	id := c.Param("id")
	if _, ok := s.clients.Get(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}

	s.refreshClientStats(id)
	client, _ := s.clients.Get(id)
	c.JSON(http.StatusOK, client)
}

// refreshClientStats writes the recomputed projections onto the client
// record. Called after order mutations that touch the client.
func (s *Server) refreshClientStats(clientID string) {
	if clientID == "" {
		return
	}
	stats := query.Stats(query.OrdersFor(s.orders.List(), clientID))
	s.clients.SetAggregates(clientID, stats.TotalOrders, stats.TotalSpent, stats.LastOrderDate)
}
