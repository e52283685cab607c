package store

import (
	"fmt"
	"sync"
	"time"

	"traiteur/internal/lifecycle"
	"traiteur/internal/models"

	"github.com/google/uuid"
)

// OrderStore owns the order collection and the sequential order
// numbering. Orders are never partially edited: after creation only
// the status and payment status change.
type OrderStore struct {
	mu     sync.RWMutex
	orders []models.Order
	seq    int
}

// NewOrderStore creates an empty order store.
func NewOrderStore() *OrderStore {
	return &OrderStore{}
}

// Create stamps the order with an identifier, a human-readable order
// number, the order date, and the pending status.
func (s *OrderStore) Create(o models.Order) models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	o.ID = uuid.NewString()
	o.OrderNumber = fmt.Sprintf("PED-%d-%03d", time.Now().Year(), s.seq)
	o.OrderDate = time.Now()
	o.Status = models.OrderStatusPending

	s.orders = append(s.orders, o)
	return o
}

// Seed inserts a fixture order as-is, keeping its number and status,
// and keeps the sequence counter ahead of the seeded rows.
func (s *OrderStore) Seed(o models.Order) models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	s.seq++
	s.orders = append(s.orders, o)
	return o
}

// Get returns the order with the given id.
func (s *OrderStore) Get(id string) (models.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, o := range s.orders {
		if o.ID == id {
			return o, true
		}
	}
	return models.Order{}, false
}

// UpdateStatus applies a lifecycle transition. The transition table
// decides legality; the store only writes the result.
func (s *OrderStore) UpdateStatus(id string, next models.OrderStatus) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == id {
			if err := lifecycle.Transition(s.orders[i].Status, next); err != nil {
				return models.Order{}, err
			}
			s.orders[i].Status = next
			return s.orders[i], nil
		}
	}
	return models.Order{}, ErrNotFound
}

// UpdatePayment sets the payment status of an order.
func (s *OrderStore) UpdatePayment(id string, status models.PaymentStatus) (models.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].PaymentStatus = status
			return s.orders[i], true
		}
	}
	return models.Order{}, false
}

// Delete removes an order.
func (s *OrderStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			return true
		}
	}
	return false
}

// List returns the orders in insertion order.
func (s *OrderStore) List() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}
