package fixtures

import (
	"testing"

	"traiteur/internal/api"
	"traiteur/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed(t *testing.T) {
	stores := api.Stores{
		Clients:   store.NewClientStore(),
		Orders:    store.NewOrderStore(),
		Dishes:    store.NewDishStore(),
		Menus:     store.NewMenuStore(),
		Inventory: store.NewInventoryStore(),
	}
	Seed(stores)

	assert.Len(t, stores.Dishes.List(), 5)
	assert.Len(t, stores.Menus.List(), 2)
	assert.Len(t, stores.Inventory.List(), 4)
	assert.Len(t, stores.Clients.List(), 3)
	assert.Len(t, stores.Orders.List(), 3)

	// Seeded orders carry consistent totals.
	for _, o := range stores.Orders.List() {
		assert.InDelta(t, o.Subtotal+o.Tax, o.Total, 0.001, o.OrderNumber)
		assert.NotEmpty(t, o.ClientID)
	}

	// Client projections were recomputed from the seeded orders.
	clients := stores.Clients.List()
	require.NotEmpty(t, clients)
	for _, c := range clients {
		assert.Equal(t, 1, c.TotalOrders, c.Name)
		assert.Greater(t, c.TotalSpent, 0.0, c.Name)
	}

	// Order numbering continues after the seeded rows.
	created := stores.Orders.Create(stores.Orders.List()[0])
	assert.Regexp(t, `^PED-\d{4}-004$`, created.OrderNumber)
}
