// Package stats computes inventory summary metrics over a full product snapshot.
package stats

import (
	"strconv"

	"github.com/ashik3031/inventory-management/internal/models"
)

// LowStockThreshold is the stock level at or below which an item is counted
// as needing reorder.
const LowStockThreshold = 10

// Summary holds the aggregate metrics for the current product set.
type Summary struct {
	TotalProducts int    `json:"totalProducts"`
	LowStockItems int    `json:"lowStockItems"`
	TotalValue    string `json:"totalValue"`
}

// Summarize walks the given snapshot once and returns its totals. TotalValue
// is the sum of price times stock, rendered with two-decimal precision. An
// empty snapshot yields all-zero metrics.
func Summarize(products []models.Product) Summary {
	s := Summary{TotalProducts: len(products)}

	var value float64
	for _, p := range products {
		if p.Stock <= LowStockThreshold {
			s.LowStockItems++
		}
		value += p.Price * float64(p.Stock)
	}
	s.TotalValue = strconv.FormatFloat(value, 'f', 2, 64)
	return s
}
