package store

import (
	"sync"

	"traiteur/internal/models"

	"github.com/google/uuid"
)

// DishStore owns the dish catalog.
type DishStore struct {
	mu     sync.RWMutex
	dishes []models.MenuItem
}

// NewDishStore creates an empty dish store.
func NewDishStore() *DishStore {
	return &DishStore{}
}

// Create assigns an identifier and appends the dish.
func (s *DishStore) Create(d models.MenuItem) models.MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	d.ID = uuid.NewString()
	s.dishes = append(s.dishes, d)
	return d
}

// Get returns the dish with the given id.
func (s *DishStore) Get(id string) (models.MenuItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, d := range s.dishes {
		if d.ID == id {
			return d, true
		}
	}
	return models.MenuItem{}, false
}

// Update replaces a dish, preserving its identifier.
func (s *DishStore) Update(id string, d models.MenuItem) (models.MenuItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.dishes {
		if s.dishes[i].ID == id {
			d.ID = id
			s.dishes[i] = d
			return d, true
		}
	}
	return models.MenuItem{}, false
}

// Delete removes a dish. Menus referencing it keep their entries;
// there is no referential integrity across collections.
func (s *DishStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.dishes {
		if s.dishes[i].ID == id {
			s.dishes = append(s.dishes[:i], s.dishes[i+1:]...)
			return true
		}
	}
	return false
}

// List returns the dishes in insertion order.
func (s *DishStore) List() []models.MenuItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.MenuItem, len(s.dishes))
	copy(out, s.dishes)
	return out
}

// Available returns only the dishes that can go on a new order.
func (s *DishStore) Available() []models.MenuItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.MenuItem
	for _, d := range s.dishes {
		if d.Available {
			out = append(out, d)
		}
	}
	return out
}

// MenuStore owns the menu collection.
type MenuStore struct {
	mu    sync.RWMutex
	menus []models.Menu
}

// NewMenuStore creates an empty menu store.
func NewMenuStore() *MenuStore {
	return &MenuStore{}
}

// Create assigns an identifier and appends the menu.
func (s *MenuStore) Create(m models.Menu) models.Menu {
	s.mu.Lock()
	defer s.mu.Unlock()

	m.ID = uuid.NewString()
	s.menus = append(s.menus, m)
	return m
}

// Get returns the menu with the given id.
func (s *MenuStore) Get(id string) (models.Menu, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, m := range s.menus {
		if m.ID == id {
			return m, true
		}
	}
	return models.Menu{}, false
}

// Update replaces a menu, preserving its identifier.
func (s *MenuStore) Update(id string, m models.Menu) (models.Menu, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.menus {
		if s.menus[i].ID == id {
			m.ID = id
			s.menus[i] = m
			return m, true
		}
	}
	return models.Menu{}, false
}

// Delete removes a menu.
func (s *MenuStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.menus {
		if s.menus[i].ID == id {
			s.menus = append(s.menus[:i], s.menus[i+1:]...)
			return true
		}
	}
	return false
}

// List returns the menus in insertion order.
func (s *MenuStore) List() []models.Menu {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Menu, len(s.menus))
	copy(out, s.menus)
	return out
}
