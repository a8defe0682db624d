package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"golang.org/x/crypto/bcrypt"

	handler "github.com/ashik3031/inventory-management/internal/http/handlers"
	rl "github.com/ashik3031/inventory-management/internal/http/rate_limiter"
	api "github.com/ashik3031/inventory-management/internal/http/router"
	"github.com/ashik3031/inventory-management/internal/models"
	"github.com/ashik3031/inventory-management/internal/repo"
)

const (
	adminEmail    = "admin@example.com"
	adminPassword = "secret-pass"
)

var (
	token       string
	productRepo *repo.InMemoryProductRepository
	userRepo    *repo.InMemoryUserRepository
)

func init() {
	setupTestRepos(adminPassword)
	r := api.NewRouter()

	var err error
	token, err = generateToken(r, adminEmail, adminPassword)
	if err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
}

func setupTestRepos(password string) {
	productRepo = repo.NewInMemoryProductRepository()
	handler.SetProductRepo(productRepo)

	userRepo = repo.NewInMemoryUserRepository()
	handler.SetUserRepo(userRepo)

	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	userRepo.CreateUser(models.User{
		Username:     "admin",
		Email:        adminEmail,
		PasswordHash: string(hash),
	})
}

func clearAllProducts() {
	productRepo.Clear()
}

func resetRateLimits() {
	rl.CleanupAllVisitors()
}

func generateToken(r http.Handler, email, password string) (string, error) {
	resetRateLimits()

	payload := handler.LoginRequest{Email: email, Password: password}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp handler.LoginResult
	err := json.NewDecoder(w.Body).Decode(&resp)
	if err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Token, nil
}

func createProduct(r http.Handler, p handler.ProductRequest) *httptest.ResponseRecorder {
	body, _ := json.Marshal(p)
	req := httptest.NewRequest(http.MethodPost, "/api/products/add", bytes.NewReader(body))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createProductAt(createdAt time.Time, p handler.ProductRequest) models.Product {
	created, _ := productRepo.Create(models.Product{
		Title:       p.Title,
		Description: p.Description,
		Status:      p.Status,
		Stock:       p.Stock,
		Price:       p.Price,
		Category:    p.Category,
		Media:       p.Media,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	})
	return created
}

func deleteProduct(r http.Handler, id int, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/products/%d", id), nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func getJSON(r http.Handler, path string, out any) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if out != nil && w.Code == http.StatusOK {
		json.NewDecoder(w.Body).Decode(out)
	}
	return w
}
