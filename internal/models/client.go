package models

import (
	"regexp"
	"strings"
	"time"
)

// Client represents a recurring customer of the catering business.
// TotalOrders, TotalSpent, and LastOrderDate are projections recomputed
// from the order history; callers never set them directly.
type Client struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Email         string       `json:"email"`
	Phone         string       `json:"phone"`
	Address       string       `json:"address"`
	Notes         string       `json:"notes,omitempty"`
	Status        ClientStatus `json:"status"`
	CreatedAt     time.Time    `json:"createdAt"`
	TotalOrders   int          `json:"totalOrders"`
	TotalSpent    float64      `json:"totalSpent"`
	LastOrderDate time.Time    `json:"lastOrderDate,omitempty"`
}

// ClientStatus represents whether a client is actively ordering
type ClientStatus string

const (
	ClientActive   ClientStatus = "active"
	ClientInactive ClientStatus = "inactive"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate checks the fields a client record must carry. Returns a map
// of field name to message; an empty map means the client is valid.
func (c Client) Validate() FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(c.Name) == "" {
		errs["name"] = "name is required"
	}
	if strings.TrimSpace(c.Email) == "" {
		errs["email"] = "email is required"
	} else if !emailPattern.MatchString(c.Email) {
		errs["email"] = "email is not valid"
	}
	if strings.TrimSpace(c.Phone) == "" {
		errs["phone"] = "phone is required"
	}
	if strings.TrimSpace(c.Address) == "" {
		errs["address"] = "address is required"
	}

	return errs
}
