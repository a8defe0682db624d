package handlers

import (
	"strings"

	"github.com/ashik3031/inventory-management/internal/models"
)

type ProductValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateProduct(p ProductRequest) []ProductValidationError {
	errs := []ProductValidationError{}
	if strings.TrimSpace(p.Title) == "" {
		errs = append(errs, ProductValidationError{Field: "Title", Description: "Title is required"})
	}
	if p.Price < 0 {
		errs = append(errs, ProductValidationError{Field: "Price", Description: "Price cannot be negative"})
	}
	if p.Stock < 0 {
		errs = append(errs, ProductValidationError{Field: "Stock", Description: "Stock cannot be negative"})
	}
	if p.Status != "" && p.Status != models.StatusDraft && p.Status != models.StatusActive {
		errs = append(errs, ProductValidationError{Field: "Status", Description: "Status must be draft or active"})
	}
	return errs
}
