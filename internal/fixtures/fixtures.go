// Package fixtures seeds the stores with demonstration data so the
// service is usable without persistence.
package fixtures

import (
	"time"

	"traiteur/internal/api"
	"traiteur/internal/models"
	"traiteur/internal/pricing"
	"traiteur/internal/query"
)

// Seed fills the stores with a small consistent data set: a dish
// catalog, two menus, an inventory, three clients, and three orders
// linked to them.
func Seed(stores api.Stores) {
	now := time.Now()

	paella := stores.Dishes.Create(models.MenuItem{
		Name:        "Paella Valenciana",
		Description: "Arroz con pollo, conejo y verduras de temporada",
		Price:       45.00,
		Category:    "Arroces",
		Available:   true,
	})
	tortilla := stores.Dishes.Create(models.MenuItem{
		Name:        "Tortilla Española",
		Description: "Tortilla de patatas tradicional",
		Price:       18.00,
		Category:    "Entrantes",
		Available:   true,
	})
	salmon := stores.Dishes.Create(models.MenuItem{
		Name:        "Salmón a la Plancha",
		Description: "Salmón fresco con verduras salteadas",
		Price:       42.00,
		Category:    "Pescados",
		Available:   true,
	})
	stores.Dishes.Create(models.MenuItem{
		Name:        "Cochinillo Asado",
		Description: "Cochinillo al horno de leña",
		Price:       65.00,
		Category:    "Carnes",
		Available:   false,
	})
	crema := stores.Dishes.Create(models.MenuItem{
		Name:        "Crema Catalana",
		Description: "Postre tradicional con azúcar caramelizado",
		Price:       12.00,
		Category:    "Postres",
		Available:   true,
	})

	stores.Menus.Create(models.Menu{
		Name:        "Menú Degustación",
		Description: "Recorrido por la cocina de la casa",
		Dishes:      []string{tortilla.ID, paella.ID, crema.ID},
	})
	stores.Menus.Create(models.Menu{
		Name:        "Menú de Empresa",
		Description: "Para eventos corporativos",
		Dishes:      []string{tortilla.ID, salmon.ID, crema.ID},
	})

	stores.Inventory.Create(models.InventoryItem{
		Name:         "Harina de Trigo",
		Category:     "Panadería",
		CurrentStock: 15,
		MinStock:     5,
		MaxStock:     50,
		Unit:         "kg",
		PricePerUnit: 1.20,
		Supplier:     "Molino San Juan",
		Location:     "Almacén seco",
	})
	stores.Inventory.Create(models.InventoryItem{
		Name:         "Pollo Entero",
		Category:     "Carnes",
		CurrentStock: 2,
		MinStock:     10,
		MaxStock:     30,
		Unit:         "unidad",
		PricePerUnit: 8.50,
		Supplier:     "Avícola Del Campo",
		Location:     "Cámara 1",
	})
	stores.Inventory.Create(models.InventoryItem{
		Name:         "Tomates Cherry",
		Category:     "Verduras",
		CurrentStock: 25,
		MinStock:     5,
		MaxStock:     40,
		Unit:         "kg",
		PricePerUnit: 3.80,
		Supplier:     "Finca Verde",
		Location:     "Cámara 2",
	})
	stores.Inventory.Create(models.InventoryItem{
		Name:         "Sal Marina",
		Category:     "Condimentos",
		CurrentStock: 0,
		MinStock:     2,
		MaxStock:     10,
		Unit:         "kg",
		PricePerUnit: 2.10,
		Supplier:     "Salinas del Pacífico",
		Location:     "Almacén seco",
	})

	maria := stores.Clients.Create(models.Client{
		Name:    "María González",
		Email:   "maria.gonzalez@email.com",
		Phone:   "+34 612 345 678",
		Address: "Calle Mayor 123, Madrid",
	})
	carlos := stores.Clients.Create(models.Client{
		Name:    "Carlos Rodríguez",
		Email:   "carlos.rodriguez@email.com",
		Phone:   "+34 687 123 456",
		Address: "Avenida de la Paz 45, Barcelona",
	})
	ana := stores.Clients.Create(models.Client{
		Name:    "Ana Martín",
		Email:   "ana.martin@email.com",
		Phone:   "+34 654 987 321",
		Address: "Plaza del Sol 8, Valencia",
		Status:  models.ClientInactive,
	})

	seedOrder(stores, "PED-2025-001", maria.ID, maria, now.AddDate(0, 0, -10), now.AddDate(0, 0, -7),
		models.OrderStatusDelivered, models.PaymentCard, models.PaymentPaid,
		[]models.OrderItem{
			{MenuItem: paella, Quantity: 2},
			{MenuItem: crema, Quantity: 4},
		})
	seedOrder(stores, "PED-2025-002", carlos.ID, carlos, now.AddDate(0, 0, -3), now.AddDate(0, 0, 2),
		models.OrderStatusPreparing, models.PaymentTransfer, models.PaymentPaid,
		[]models.OrderItem{
			{MenuItem: salmon, Quantity: 6, SpecialInstructions: "Sin guarnición en dos raciones"},
		})
	seedOrder(stores, "PED-2025-003", ana.ID, ana, now.AddDate(0, 0, -1), now.AddDate(0, 0, 5),
		models.OrderStatusPending, models.PaymentCash, models.PaymentPending,
		[]models.OrderItem{
			{MenuItem: tortilla, Quantity: 3},
			{MenuItem: paella, Quantity: 1},
		})

	// Seeded orders bypass the handlers, so the projections need one
	// recompute pass.
	for _, id := range []string{maria.ID, carlos.ID, ana.ID} {
		stats := query.Stats(query.OrdersFor(stores.Orders.List(), id))
		stores.Clients.SetAggregates(id, stats.TotalOrders, stats.TotalSpent, stats.LastOrderDate)
	}
}

func seedOrder(stores api.Stores, number, clientID string, client models.Client,
	orderDate, deliveryDate time.Time, status models.OrderStatus,
	method models.PaymentMethod, payment models.PaymentStatus, items []models.OrderItem) {

	totals := pricing.Compute(items)
	stores.Orders.Seed(models.Order{
		OrderNumber:     number,
		ClientID:        clientID,
		CustomerName:    client.Name,
		CustomerPhone:   client.Phone,
		CustomerEmail:   client.Email,
		OrderDate:       orderDate,
		DeliveryDate:    deliveryDate,
		Status:          status,
		Items:           items,
		Subtotal:        totals.Subtotal,
		Tax:             totals.Tax,
		Total:           totals.Total,
		DeliveryAddress: client.Address,
		PaymentMethod:   method,
		PaymentStatus:   payment,
	})
}
