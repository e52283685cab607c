package pricing

import (
	"testing"

	"traiteur/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCompute(t *testing.T) {
	items := []models.OrderItem{
		{MenuItem: models.MenuItem{Name: "Paella Valenciana", Price: 45.0}, Quantity: 2},
		{MenuItem: models.MenuItem{Name: "Ensalada César", Price: 18.0}, Quantity: 1},
	}

	totals := Compute(items)

	assert.InDelta(t, 108.00, totals.Subtotal, 0.001)
	assert.InDelta(t, 11.34, totals.Tax, 0.001)
	assert.InDelta(t, 119.34, totals.Total, 0.001)
}

func TestComputeEmpty(t *testing.T) {
	totals := Compute(nil)

	assert.Zero(t, totals.Subtotal)
	assert.Zero(t, totals.Tax)
	assert.Zero(t, totals.Total)
}

func TestComputeInvariant(t *testing.T) {
	// total == subtotal + subtotal * rate for any item set.
	items := []models.OrderItem{
		{MenuItem: models.MenuItem{Price: 35.0}, Quantity: 3},
		{MenuItem: models.MenuItem{Price: 12.0}, Quantity: 3},
	}

	totals := Compute(items)

	assert.InDelta(t, totals.Subtotal+totals.Subtotal*TaxRate, totals.Total, 1e-9)
	assert.InDelta(t, totals.Subtotal*TaxRate, totals.Tax, 1e-9)
}
