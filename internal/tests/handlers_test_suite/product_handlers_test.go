package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	handler "github.com/ashik3031/inventory-management/internal/http/handlers"
	api "github.com/ashik3031/inventory-management/internal/http/router"
)

func TestCreateProductHandler_Valid(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	w := createProduct(r, handler.ProductRequest{
		Title:    "Lamp",
		Price:    20.0,
		Stock:    5,
		Category: "home",
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	var resp handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	if resp.Id == 0 {
		t.Errorf("expected a store-assigned id, got 0")
	}
	if resp.Title != "Lamp" {
		t.Errorf("expected title 'Lamp', got %v", resp.Title)
	}
	if resp.Price != 20.0 {
		t.Errorf("expected price 20.0, got %v", resp.Price)
	}
	if resp.Stock != 5 {
		t.Errorf("expected stock 5, got %v", resp.Stock)
	}
	if resp.Status != "draft" {
		t.Errorf("expected default status 'draft', got %q", resp.Status)
	}
	if !resp.LowStock {
		t.Errorf("expected low_stock for stock 5")
	}
}

func TestCreateProductHandler_Invalid(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	tests := []struct {
		name           string
		payload        handler.ProductRequest
		expectedErrors []string
	}{
		{
			name:           "Empty title and negative price",
			payload:        handler.ProductRequest{Title: "", Price: -1.0},
			expectedErrors: []string{"Title", "Price"},
		},
		{
			name:           "Empty title only",
			payload:        handler.ProductRequest{Title: "", Price: 100.0},
			expectedErrors: []string{"Title"},
		},
		{
			name:           "Negative stock",
			payload:        handler.ProductRequest{Title: "Chair", Price: 50.0, Stock: -1},
			expectedErrors: []string{"Stock"},
		},
		{
			name:           "Unknown status",
			payload:        handler.ProductRequest{Title: "Desk", Price: 80.0, Status: "archived"},
			expectedErrors: []string{"Status"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := createProduct(r, tt.payload)

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected status 400, got %d", w.Code)
			}

			var resp []handler.ProductValidationError
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("error decoding response: %v", err)
			}

			for _, field := range tt.expectedErrors {
				found := false
				for _, err := range resp {
					if strings.EqualFold(err.Field, field) {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("expected error for field %q, but not found", field)
				}
			}
		})
	}
}

func TestCreateProductHandler_MalformedJSON(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	badJSON := `{Title: "Invalid" Price: 100 "}` // missing comma
	req := httptest.NewRequest(http.MethodPost, "/api/products/add", bytes.NewBufferString(badJSON))
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 Bad Request, got %d", w.Code)
	}
}

func TestGetProductByIDHandler(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	var created handler.ProductResponse
	w := createProduct(r, handler.ProductRequest{Title: "Lamp", Price: 20.0, Stock: 5, Category: "home"})
	json.NewDecoder(w.Body).Decode(&created)

	var fetched handler.ProductResponse
	w = getJSON(r, fmt.Sprintf("/api/products/%d", created.Id), &fetched)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	if fetched.Id != created.Id || fetched.Title != "Lamp" {
		t.Errorf("unexpected product: %+v", fetched)
	}

	w = getJSON(r, "/api/products/99999", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for missing product, got %d", w.Code)
	}

	w = getJSON(r, "/api/products/not-a-number", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for invalid id, got %d", w.Code)
	}
}

func TestFilterProducts(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	createProduct(r, handler.ProductRequest{Title: "Lamp", Price: 20.0, Stock: 5, Category: "home"})
	createProduct(r, handler.ProductRequest{Title: "Sofa", Price: 300.0, Stock: 2, Category: "home"})
	createProduct(r, handler.ProductRequest{Title: "Shirt", Price: 15.0, Stock: 40, Category: "fashion"})

	tests := []struct {
		name       string
		query      string
		wantTitles []string
	}{
		{"no filters returns all", "", []string{"Lamp", "Sofa", "Shirt"}},
		{"category exact match", "?category=home", []string{"Lamp", "Sofa"}},
		{"category is case-sensitive", "?category=Home", []string{}},
		{"unknown category empty", "?category=fashionx", []string{}},
		{"price range inclusive", "?min=15&max=20", []string{"Lamp", "Shirt"}},
		{"min bound only", "?min=21", []string{"Sofa"}},
		{"combined category and range", "?category=home&min=10&max=30", []string{"Lamp"}},
		{"search is case-insensitive", "?search=lAmP", []string{"Lamp"}},
		{"search substring", "?search=s", []string{"Sofa", "Shirt"}},
		{"malformed bound treated as absent", "?min=abc&category=fashion", []string{"Shirt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resp []handler.ProductResponse
			w := getJSON(r, "/api/products"+tt.query, &resp)
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200 OK, got %d", w.Code)
			}

			if len(resp) != len(tt.wantTitles) {
				t.Fatalf("expected %d products, got %d (%+v)", len(tt.wantTitles), len(resp), resp)
			}
			for i, title := range tt.wantTitles {
				if resp[i].Title != title {
					t.Errorf("expected product %d to be %q, got %q", i, title, resp[i].Title)
				}
			}
		})
	}
}

func TestFilterProducts_BoundsHold(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	prices := []float64{5, 10, 15, 20, 25, 30}
	for i, price := range prices {
		createProduct(r, handler.ProductRequest{Title: fmt.Sprintf("Item %d", i), Price: price, Stock: 1})
	}

	var resp []handler.ProductResponse
	w := getJSON(r, "/api/products?min=10&max=25", &resp)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	if len(resp) != 4 {
		t.Fatalf("expected 4 products within bounds, got %d", len(resp))
	}
	for _, p := range resp {
		if p.Price < 10 || p.Price > 25 {
			t.Errorf("product %q price %v outside [10, 25]", p.Title, p.Price)
		}
	}
}

func TestUpdateProductHandler_PartialUpdate(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	var created handler.ProductResponse
	w := createProduct(r, handler.ProductRequest{
		Title: "Lamp", Description: "A desk lamp", Price: 20.0, Stock: 5, Category: "home", Status: "active",
	})
	json.NewDecoder(w.Body).Decode(&created)

	payload := `{"price": 25.5}`
	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/api/products/edit/%d", created.Id), strings.NewReader(payload))
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req)

	if w2.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w2.Code)
	}

	var updated handler.ProductResponse
	if err := json.NewDecoder(w2.Body).Decode(&updated); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	if updated.Id != created.Id {
		t.Errorf("identifier changed on edit: %d -> %d", created.Id, updated.Id)
	}
	if updated.Price != 25.5 {
		t.Errorf("expected price 25.5, got %v", updated.Price)
	}
	// Fields absent from the payload keep their stored values.
	if updated.Title != "Lamp" || updated.Description != "A desk lamp" ||
		updated.Stock != 5 || updated.Category != "home" || updated.Status != "active" {
		t.Errorf("absent fields not preserved: %+v", updated)
	}
}

func TestUpdateProductHandler_NotFound(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	req := httptest.NewRequest(http.MethodPut, "/api/products/edit/99999", strings.NewReader(`{"price": 1}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestDeleteProductHandler(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	var created handler.ProductResponse
	w := createProduct(r, handler.ProductRequest{Title: "Lamp", Price: 20.0, Stock: 5, Category: "home"})
	json.NewDecoder(w.Body).Decode(&created)

	w2 := deleteProduct(r, created.Id, token)
	if w2.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w2.Code)
	}
	var resp handler.DeleteResult
	if err := json.NewDecoder(w2.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Message != "Product deleted" {
		t.Errorf("expected confirmation message, got %q", resp.Message)
	}

	// Deleting then fetching by id yields NotFound.
	w3 := getJSON(r, fmt.Sprintf("/api/products/%d", created.Id), nil)
	if w3.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", w3.Code)
	}
}

func TestDeleteProductHandler_RequiresToken(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	var created handler.ProductResponse
	w := createProduct(r, handler.ProductRequest{Title: "Lamp", Price: 20.0, Stock: 5})
	json.NewDecoder(w.Body).Decode(&created)

	if w2 := deleteProduct(r, created.Id, ""); w2.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without token, got %d", w2.Code)
	}
	if w2 := deleteProduct(r, created.Id, "not-a-token"); w2.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 with a bogus token, got %d", w2.Code)
	}

	// Product survives the rejected attempts.
	if w3 := getJSON(r, fmt.Sprintf("/api/products/%d", created.Id), nil); w3.Code != http.StatusOK {
		t.Errorf("expected product to remain, got %d", w3.Code)
	}
}

func TestRecentProducts(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 6; i++ {
		createProductAt(base.Add(time.Duration(i)*time.Minute), handler.ProductRequest{
			Title: fmt.Sprintf("Item %d", i), Price: 10, Stock: 1,
		})
	}

	var resp []handler.ProductResponse
	w := getJSON(r, "/api/products/recent", &resp)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	if len(resp) != 4 {
		t.Fatalf("expected 4 recent products, got %d", len(resp))
	}
	for i, title := range []string{"Item 5", "Item 4", "Item 3", "Item 2"} {
		if resp[i].Title != title {
			t.Errorf("expected position %d to be %q, got %q", i, title, resp[i].Title)
		}
	}
}
