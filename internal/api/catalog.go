package api

import (
	"net/http"

	"traiteur/internal/models"
	"traiteur/internal/query"

	"github.com/gin-gonic/gin"
)

// Dish handlers

// ListDishes returns the dishes matching the optional search and
// category query parameters.
func (s *Server) ListDishes(c *gin.Context) {
	f := query.Filters{
		Search:   c.Query("search"),
		Category: c.Query("category"),
	}
	c.JSON(http.StatusOK, query.Dishes(s.dishes.List(), f))
}

// CreateDish validates and stores a new dish.
func (s *Server) CreateDish(c *gin.Context) {
	var dish models.MenuItem
	if err := c.ShouldBindJSON(&dish); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if errs := dish.Validate(); !errs.OK() {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errs})
		return
	}

	c.JSON(http.StatusCreated, s.dishes.Create(dish))
}

// GetDish returns one dish by id.
func (s *Server) GetDish(c *gin.Context) {
	dish, ok := s.dishes.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Dish not found"})
		return
	}
	c.JSON(http.StatusOK, dish)
}

// UpdateDish validates and replaces a dish.
func (s *Server) UpdateDish(c *gin.Context) {
	var dish models.MenuItem
	if err := c.ShouldBindJSON(&dish); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if errs := dish.Validate(); !errs.OK() {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errs})
		return
	}

	updated, ok := s.dishes.Update(c.Param("id"), dish)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Dish not found"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteDish removes a dish from the catalog. Menus referencing it are
// left untouched.
func (s *Server) DeleteDish(c *gin.Context) {
	if !s.dishes.Delete(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Dish not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Dish deleted"})
}

// Menu handlers

// ListMenus returns all menus.
func (s *Server) ListMenus(c *gin.Context) {
	c.JSON(http.StatusOK, s.menus.List())
}

// CreateMenu validates and stores a new menu.
func (s *Server) CreateMenu(c *gin.Context) {
	var menu models.Menu
	if err := c.ShouldBindJSON(&menu); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if errs := menu.Validate(); !errs.OK() {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errs})
		return
	}

	c.JSON(http.StatusCreated, s.menus.Create(menu))
}

// GetMenu returns one menu by id.
func (s *Server) GetMenu(c *gin.Context) {
	menu, ok := s.menus.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu not found"})
		return
	}
	c.JSON(http.StatusOK, menu)
}

// UpdateMenu validates and replaces a menu.
func (s *Server) UpdateMenu(c *gin.Context) {
	var menu models.Menu
	if err := c.ShouldBindJSON(&menu); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if errs := menu.Validate(); !errs.OK() {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errs})
		return
	}

	updated, ok := s.menus.Update(c.Param("id"), menu)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu not found"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteMenu removes a menu.
func (s *Server) DeleteMenu(c *gin.Context) {
	if !s.menus.Delete(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu deleted"})
}
