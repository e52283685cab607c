// Package api exposes the back office over HTTP.
package api

import (
	"net/http"
	"time"

	"traiteur/internal/assistant"
	"traiteur/internal/monitoring"
	"traiteur/internal/store"

	"github.com/gin-gonic/gin"
)

// Server wires the entity stores, the assistant, and the monitor into
// a gin router.
type Server struct {
	router    *gin.Engine
	clients   *store.ClientStore
	orders    *store.OrderStore
	dishes    *store.DishStore
	menus     *store.MenuStore
	inventory *store.InventoryStore
	assistant *assistant.Service
	monitor   *monitoring.Monitor
}

// Stores bundles the entity collections the server serves.
type Stores struct {
	Clients   *store.ClientStore
	Orders    *store.OrderStore
	Dishes    *store.DishStore
	Menus     *store.MenuStore
	Inventory *store.InventoryStore
}

// NewServer creates a server instance and registers its routes.
func NewServer(stores Stores, chat *assistant.Service, monitor *monitoring.Monitor) *Server {
	s := &Server{
		router:    gin.Default(),
		clients:   stores.Clients,
		orders:    stores.Orders,
		dishes:    stores.Dishes,
		menus:     stores.Menus,
		inventory: stores.Inventory,
		assistant: chat,
		monitor:   monitor,
	}

	s.router.Use(s.observeRequests())
	s.setupRoutes()
	return s
}

// setupRoutes configures all API endpoints
func (s *Server) setupRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	s.router.GET("/ws", s.handleChatWebSocket)

	api := s.router.Group("/api")
	{
		api.GET("/clients", s.ListClients)
		api.POST("/clients", s.CreateClient)
		api.GET("/clients/:id", s.GetClient)
		api.PUT("/clients/:id", s.UpdateClient)
		api.DELETE("/clients/:id", s.DeleteClient)
		api.GET("/clients/:id/orders", s.GetClientOrders)
		api.POST("/clients/:id/refresh-stats", s.RefreshClientStats)

		api.GET("/orders", s.ListOrders)
		api.POST("/orders", s.CreateOrder)
		api.GET("/orders/:id", s.GetOrder)
		api.DELETE("/orders/:id", s.DeleteOrder)
		api.PUT("/orders/:id/status", s.UpdateOrderStatus)
		api.PUT("/orders/:id/payment", s.UpdateOrderPayment)

		api.GET("/dishes", s.ListDishes)
		api.POST("/dishes", s.CreateDish)
		api.GET("/dishes/:id", s.GetDish)
		api.PUT("/dishes/:id", s.UpdateDish)
		api.DELETE("/dishes/:id", s.DeleteDish)

		api.GET("/menus", s.ListMenus)
		api.POST("/menus", s.CreateMenu)
		api.GET("/menus/:id", s.GetMenu)
		api.PUT("/menus/:id", s.UpdateMenu)
		api.DELETE("/menus/:id", s.DeleteMenu)

		api.GET("/inventory", s.ListInventory)
		api.POST("/inventory", s.CreateInventoryItem)
		api.GET("/inventory/:id", s.GetInventoryItem)
		api.PUT("/inventory/:id", s.UpdateInventoryItem)
		api.DELETE("/inventory/:id", s.DeleteInventoryItem)
		api.POST("/inventory/:id/adjust", s.AdjustInventoryStock)

		api.GET("/stats", s.GetStats)
		api.POST("/chat", s.Chat)
	}
}

// Router returns the gin router, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// observeRequests records request latency per route.
func (s *Server) observeRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		if s.monitor != nil {
			s.monitor.ObserveRequest(c.Request.Method, c.FullPath(), time.Since(start).Seconds())
		}
	}
}
