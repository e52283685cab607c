// Package store holds the in-memory entity collections. Each store
// owns one ordered slice guarded by a mutex, assigns identifiers on
// create, and hands out copies so callers cannot mutate shared state.
package store

import (
	"sync"
	"time"

	"traiteur/internal/models"

	"github.com/google/uuid"
)

// ClientStore owns the client collection.
type ClientStore struct {
	mu      sync.RWMutex
	clients []models.Client
}

// NewClientStore creates an empty client store.
func NewClientStore() *ClientStore {
	return &ClientStore{}
}

// Create assigns an identifier and creation defaults and appends the
// client. Aggregate fields start at zero; they are projections of the
// order collection, not inputs.
func (s *ClientStore) Create(c models.Client) models.Client {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = uuid.NewString()
	c.CreatedAt = time.Now()
	c.TotalOrders = 0
	c.TotalSpent = 0
	c.LastOrderDate = time.Time{}
	if c.Status == "" {
		c.Status = models.ClientActive
	}

	s.clients = append(s.clients, c)
	return c
}

// Get returns the client with the given id.
func (s *ClientStore) Get(id string) (models.Client, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.clients {
		if c.ID == id {
			return c, true
		}
	}
	return models.Client{}, false
}

// Update replaces the editable fields of a client, preserving its
// identifier, creation time, and cached aggregates.
func (s *ClientStore) Update(id string, c models.Client) (models.Client, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.clients {
		if s.clients[i].ID == id {
			existing := s.clients[i]
			existing.Name = c.Name
			existing.Email = c.Email
			existing.Phone = c.Phone
			existing.Address = c.Address
			existing.Notes = c.Notes
			if c.Status != "" {
				existing.Status = c.Status
			}
			s.clients[i] = existing
			return existing, true
		}
	}
	return models.Client{}, false
}

// SetAggregates stores the recomputed order projections on a client.
func (s *ClientStore) SetAggregates(id string, totalOrders int, totalSpent float64, lastOrder time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.clients {
		if s.clients[i].ID == id {
			s.clients[i].TotalOrders = totalOrders
			s.clients[i].TotalSpent = totalSpent
			s.clients[i].LastOrderDate = lastOrder
			return true
		}
	}
	return false
}

// Delete removes a client. Historical orders keep their denormalized
// customer fields; nothing cascades.
func (s *ClientStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.clients {
		if s.clients[i].ID == id {
			s.clients = append(s.clients[:i], s.clients[i+1:]...)
			return true
		}
	}
	return false
}

// List returns the clients in insertion order.
func (s *ClientStore) List() []models.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Client, len(s.clients))
	copy(out, s.clients)
	return out
}
