package client

import (
	"strings"

	"github.com/ashik3031/inventory-management/internal/models"
)

// StockFilter selects products by stock presence.
type StockFilter string

const (
	StockAll StockFilter = "all"
	StockIn  StockFilter = "in"  // stock > 0
	StockOut StockFilter = "out" // stock <= 0
)

// DisplayFilter narrows an already-fetched product list for presentation.
// Category and price bounds behave like the server-side filter; Stock adds
// the in/out-of-stock cut. It never re-fetches.
type DisplayFilter struct {
	Category string
	MinPrice *float64
	MaxPrice *float64
	Search   string
	Stock    StockFilter
}

// Apply returns the subset of products matching the filter, preserving order.
func (f DisplayFilter) Apply(products []models.Product) []models.Product {
	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if f.matches(p) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

func (f DisplayFilter) matches(p models.Product) bool {
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if f.Search != "" && !strings.Contains(strings.ToLower(p.Title), strings.ToLower(f.Search)) {
		return false
	}
	switch f.Stock {
	case StockIn:
		return p.Stock > 0
	case StockOut:
		return p.Stock <= 0
	}
	return true
}
