package lifecycle

import (
	"testing"
	"time"

	"traiteur/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestNext(t *testing.T) {
	steps := map[models.OrderStatus]models.OrderStatus{
		models.OrderStatusPending:   models.OrderStatusConfirmed,
		models.OrderStatusConfirmed: models.OrderStatusPreparing,
		models.OrderStatusPreparing: models.OrderStatusReady,
		models.OrderStatusReady:     models.OrderStatusDelivered,
	}

	for from, want := range steps {
		next, ok := Next(from)
		assert.True(t, ok, "expected a successor for %s", from)
		assert.Equal(t, want, next)
	}

	// Terminal statuses offer no next step.
	_, ok := Next(models.OrderStatusDelivered)
	assert.False(t, ok)
	_, ok = Next(models.OrderStatusCancelled)
	assert.False(t, ok)
}

func TestTransition(t *testing.T) {
	// Any known target is reachable from a non-terminal status.
	assert.NoError(t, Transition(models.OrderStatusPending, models.OrderStatusConfirmed))
	assert.NoError(t, Transition(models.OrderStatusPending, models.OrderStatusDelivered))
	assert.NoError(t, Transition(models.OrderStatusPreparing, models.OrderStatusCancelled))
	assert.NoError(t, Transition(models.OrderStatusReady, models.OrderStatusPending))

	// Terminal orders are locked.
	assert.ErrorIs(t, Transition(models.OrderStatusDelivered, models.OrderStatusPending), ErrTerminalOrder)
	assert.ErrorIs(t, Transition(models.OrderStatusCancelled, models.OrderStatusConfirmed), ErrTerminalOrder)

	// Unknown targets are rejected before the terminal check.
	assert.ErrorIs(t, Transition(models.OrderStatusPending, "shipped"), ErrUnknownStatus)
}

func TestIsOverdue(t *testing.T) {
	now := time.Date(2025, 7, 18, 12, 0, 0, 0, time.UTC)
	past := now.Add(-2 * time.Hour)
	future := now.Add(2 * time.Hour)

	assert.True(t, IsOverdue(past, models.OrderStatusPreparing, now))
	assert.False(t, IsOverdue(future, models.OrderStatusPreparing, now))

	// Finished orders are never overdue.
	assert.False(t, IsOverdue(past, models.OrderStatusDelivered, now))
	assert.False(t, IsOverdue(past, models.OrderStatusCancelled, now))
}
