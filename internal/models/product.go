package models

import "time"

// Product statuses accepted by the API.
const (
	StatusDraft  = "draft"
	StatusActive = "active"
)

// Product represents a product entity in the inventory system.
type Product struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Stock       int       `json:"stock"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Media       string    `json:"media,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
	UpdatedAt   time.Time `json:"updated_at,omitempty"`
}
