package models

import (
	"strings"
	"time"
)

// InventoryItem represents a stocked ingredient or supply. CurrentStock
// is the only field routine operations mutate, always clamped to
// [0, MaxStock].
type InventoryItem struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Category       string     `json:"category"`
	CurrentStock   float64    `json:"currentStock"`
	MinStock       float64    `json:"minStock"`
	MaxStock       float64    `json:"maxStock"`
	Unit           string     `json:"unit"`
	PricePerUnit   float64    `json:"pricePerUnit"`
	ExpirationDate *time.Time `json:"expirationDate,omitempty"`
	Supplier       string     `json:"supplier"`
	Location       string     `json:"location"`
	Description    string     `json:"description"`
}

// Validate enforces the stock range invariants on the add/edit form:
// 0 <= currentStock <= maxStock, minStock < maxStock, pricePerUnit > 0.
func (i InventoryItem) Validate() FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(i.Name) == "" {
		errs["name"] = "name is required"
	}
	if strings.TrimSpace(i.Category) == "" {
		errs["category"] = "category is required"
	}
	if i.CurrentStock < 0 {
		errs["currentStock"] = "current stock cannot be negative"
	}
	if i.MinStock < 0 {
		errs["minStock"] = "minimum stock cannot be negative"
	}
	if i.MaxStock <= 0 {
		errs["maxStock"] = "maximum stock must be greater than 0"
	}
	if i.MinStock >= i.MaxStock {
		errs["minStock"] = "minimum stock must be below the maximum"
	}
	if i.CurrentStock > i.MaxStock {
		errs["currentStock"] = "current stock cannot exceed the maximum"
	}
	if strings.TrimSpace(i.Unit) == "" {
		errs["unit"] = "unit is required"
	}
	if i.PricePerUnit <= 0 {
		errs["pricePerUnit"] = "price per unit must be greater than 0"
	}
	if strings.TrimSpace(i.Supplier) == "" {
		errs["supplier"] = "supplier is required"
	}
	if strings.TrimSpace(i.Location) == "" {
		errs["location"] = "location is required"
	}

	return errs
}

// ExpiringSoon reports whether the item expires within the next seven
// days relative to now.
func (i InventoryItem) ExpiringSoon(now time.Time) bool {
	if i.ExpirationDate == nil {
		return false
	}
	return !i.ExpirationDate.After(now.Add(7 * 24 * time.Hour))
}
