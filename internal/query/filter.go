// Package query filters and summarizes the entity collections. All
// functions are read-only: they take snapshots from the stores and
// derive views, leaving result order equal to collection order.
package query

import (
	"strings"

	"traiteur/internal/models"
	"traiteur/internal/stock"
)

// FilterAll is the sentinel that disables a category or status filter.
const FilterAll = "all"

// Filters carries the search and filter selections of a list view.
// Zero values leave the corresponding predicate inactive; the three
// predicates are ANDed.
type Filters struct {
	Search   string
	Category string
	Status   string
	Payment  string
}

// matchText reports whether any field contains the query as a
// case-insensitive substring. An empty query matches everything.
func matchText(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	query = strings.ToLower(query)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}

// matchChoice reports whether value equals the filter, treating empty
// and "all" as no filter.
func matchChoice(filter, value string) bool {
	return filter == "" || filter == FilterAll || filter == value
}

// Inventory returns the items matching the search text (name,
// category, supplier), category filter, and derived stock status.
func Inventory(items []models.InventoryItem, f Filters) []models.InventoryItem {
	var out []models.InventoryItem
	for _, item := range items {
		if !matchText(f.Search, item.Name, item.Category, item.Supplier) {
			continue
		}
		if !matchChoice(f.Category, item.Category) {
			continue
		}
		status := stock.Classify(item.CurrentStock, item.MinStock)
		if !matchChoice(f.Status, string(status)) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// Orders returns the orders matching the search text (order number,
// customer name, phone), status filter, and payment status filter.
func Orders(orders []models.Order, f Filters) []models.Order {
	var out []models.Order
	for _, o := range orders {
		if !matchText(f.Search, o.OrderNumber, o.CustomerName, o.CustomerPhone) {
			continue
		}
		if !matchChoice(f.Status, string(o.Status)) {
			continue
		}
		if !matchChoice(f.Payment, string(o.PaymentStatus)) {
			continue
		}
		out = append(out, o)
	}
	return out
}

// Dishes returns the dishes matching the search text (name,
// description) and category filter.
func Dishes(dishes []models.MenuItem, f Filters) []models.MenuItem {
	var out []models.MenuItem
	for _, d := range dishes {
		if !matchText(f.Search, d.Name, d.Description) {
			continue
		}
		if !matchChoice(f.Category, d.Category) {
			continue
		}
		out = append(out, d)
	}
	return out
}

// Clients returns the clients matching the search text (name, email,
// phone) and status filter.
func Clients(clients []models.Client, f Filters) []models.Client {
	var out []models.Client
	for _, c := range clients {
		if !matchText(f.Search, c.Name, c.Email, c.Phone) {
			continue
		}
		if !matchChoice(f.Status, string(c.Status)) {
			continue
		}
		out = append(out, c)
	}
	return out
}
