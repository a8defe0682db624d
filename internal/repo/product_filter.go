package repo

import (
	"strings"

	"github.com/ashik3031/inventory-management/internal/models"
)

// ProductFilter holds the optional listing constraints. A zero-value filter
// matches every product.
type ProductFilter struct {
	Category string
	MinPrice *float64
	MaxPrice *float64
	Search   string
}

// Matches reports whether p satisfies every constraint set on the filter.
// Category is an exact match; price bounds are inclusive; Search is a
// case-insensitive substring match on the title.
func (pf ProductFilter) Matches(p models.Product) bool {
	if pf.Category != "" && p.Category != pf.Category {
		return false
	}
	if pf.MinPrice != nil && p.Price < *pf.MinPrice {
		return false
	}
	if pf.MaxPrice != nil && p.Price > *pf.MaxPrice {
		return false
	}
	if pf.Search != "" && !strings.Contains(strings.ToLower(p.Title), strings.ToLower(pf.Search)) {
		return false
	}
	return true
}
