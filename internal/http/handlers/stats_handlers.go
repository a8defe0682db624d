package handlers

import (
	"log"
	"net/http"

	"github.com/ashik3031/inventory-management/internal/stats"
)

// GetInventoryStatsHandler godoc
// @Summary Inventory summary statistics
// @Description Totals over the full product set; an empty inventory yields all-zero metrics
// @Tags products
// @Produce json
// @Success 200 {object} stats.Summary
// @Failure 500 {object} map[string]string
// @Router /api/products/stats [get]
func GetInventoryStatsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := productRepo.GetAll()
	if err != nil {
		log.Printf("Error fetching inventory stats: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "Failed to fetch inventory statistics",
		})
		return
	}

	if err := writeJSON(w, http.StatusOK, stats.Summarize(products)); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}
