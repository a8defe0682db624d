package stats

import (
	"testing"

	"github.com/ashik3031/inventory-management/internal/models"
)

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	if s.TotalProducts != 0 || s.LowStockItems != 0 {
		t.Errorf("expected zero counts, got %+v", s)
	}
	if s.TotalValue != "0.00" {
		t.Errorf("expected total value 0.00, got %s", s.TotalValue)
	}
}

func TestSummarize(t *testing.T) {
	products := []models.Product{
		{Title: "Lamp", Price: 20, Stock: 5},
		{Title: "Sofa", Price: 300, Stock: 2},
		{Title: "Shirt", Price: 15.5, Stock: 40},
		{Title: "Mug", Price: 3.33, Stock: 10}, // exactly at the threshold
	}

	s := Summarize(products)

	if s.TotalProducts != 4 {
		t.Errorf("expected 4 products, got %d", s.TotalProducts)
	}
	if s.LowStockItems != 3 {
		t.Errorf("expected 3 items at or below the threshold, got %d", s.LowStockItems)
	}
	// 100 + 600 + 620 + 33.3
	if s.TotalValue != "1353.30" {
		t.Errorf("expected total value 1353.30, got %s", s.TotalValue)
	}
}

func TestSummarize_TwoDecimalRendering(t *testing.T) {
	s := Summarize([]models.Product{{Price: 0.1, Stock: 3}})
	if s.TotalValue != "0.30" {
		t.Errorf("expected 0.30, got %s", s.TotalValue)
	}
}
