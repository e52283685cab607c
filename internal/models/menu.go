package models

import "strings"

// MenuItem represents a dish offered in the catalog. Unavailable
// dishes stay in the catalog but cannot be added to new orders.
type MenuItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Available   bool    `json:"available"`
}

// Menu is a named, ordered selection of dishes. Dish references may
// repeat; the menu does not deduplicate them.
type Menu struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Dishes      []string `json:"dishes"`
}

// Validate checks dish form fields.
func (m MenuItem) Validate() FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(m.Name) == "" {
		errs["name"] = "name is required"
	}
	if strings.TrimSpace(m.Category) == "" {
		errs["category"] = "category is required"
	}
	if m.Price < 0 {
		errs["price"] = "price cannot be negative"
	}

	return errs
}

// Validate checks menu form fields.
func (m Menu) Validate() FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(m.Name) == "" {
		errs["name"] = "name is required"
	}
	if len(m.Dishes) == 0 {
		errs["dishes"] = "a menu needs at least one dish"
	}

	return errs
}
