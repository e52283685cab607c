package store

import (
	"sync"

	"traiteur/internal/models"

	"github.com/google/uuid"
)

// InventoryStore owns the inventory collection. Stock adjustments are
// clamped here so the 0 <= currentStock <= maxStock invariant holds no
// matter what the caller sends.
type InventoryStore struct {
	mu    sync.RWMutex
	items []models.InventoryItem
}

// NewInventoryStore creates an empty inventory store.
func NewInventoryStore() *InventoryStore {
	return &InventoryStore{}
}

// Create assigns an identifier and appends the item. Callers validate
// the range invariants before creating.
func (s *InventoryStore) Create(item models.InventoryItem) models.InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	item.ID = uuid.NewString()
	s.items = append(s.items, item)
	return item
}

// Get returns the item with the given id.
func (s *InventoryStore) Get(id string) (models.InventoryItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return models.InventoryItem{}, false
}

// Update replaces an item, preserving its identifier.
func (s *InventoryStore) Update(id string, item models.InventoryItem) (models.InventoryItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			item.ID = id
			s.items[i] = item
			return item, true
		}
	}
	return models.InventoryItem{}, false
}

// AdjustStock moves the current stock by delta, clamped to
// [0, maxStock]. Steps past a bound are no-ops rather than errors.
func (s *InventoryStore) AdjustStock(id string, delta float64) (models.InventoryItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			next := s.items[i].CurrentStock + delta
			if next < 0 {
				next = 0
			}
			if next > s.items[i].MaxStock {
				next = s.items[i].MaxStock
			}
			s.items[i].CurrentStock = next
			return s.items[i], true
		}
	}
	return models.InventoryItem{}, false
}

// Delete removes an item.
func (s *InventoryStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

// List returns the items in insertion order.
func (s *InventoryStore) List() []models.InventoryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.InventoryItem, len(s.items))
	copy(out, s.items)
	return out
}
