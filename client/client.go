// Package client is a Go consumer of the inventory API. It keeps the
// authenticated session in an explicit object with a defined lifecycle: set
// on login, cleared on logout, read when a protected call is made.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/ashik3031/inventory-management/internal/models"
	"github.com/ashik3031/inventory-management/internal/stats"
)

var (
	// ErrUnauthorized is returned on bad credentials or a rejected token.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound is returned when a requested product does not exist.
	ErrNotFound = errors.New("not found")
)

// Session holds the credentials of a logged-in user.
type Session struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

type Client struct {
	baseURL string
	http    *http.Client
	session *Session
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Session returns the active session, or nil when logged out.
func (c *Client) Session() *Session {
	return c.session
}

// Register creates a new account and returns the created user record.
func (c *Client) Register(ctx context.Context, username, email, password string) (models.User, error) {
	body := map[string]string{"username": username, "email": email, "password": password}

	var user models.User
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", body, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Login authenticates and installs the returned session on the client.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	body := map[string]string{"email": email, "password": password}

	var s Session
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", body, &s); err != nil {
		return nil, err
	}
	c.session = &s
	return &s, nil
}

// Logout clears the active session.
func (c *Client) Logout() {
	c.session = nil
}

// ListFilter is the server-side filter sent with a product listing request.
type ListFilter struct {
	Category string
	MinPrice *float64
	MaxPrice *float64
	Search   string
}

func (f ListFilter) query() string {
	q := url.Values{}
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	if f.MinPrice != nil {
		q.Set("min", strconv.FormatFloat(*f.MinPrice, 'f', -1, 64))
	}
	if f.MaxPrice != nil {
		q.Set("max", strconv.FormatFloat(*f.MaxPrice, 'f', -1, 64))
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

// Products fetches the product list matching the given filter.
func (c *Client) Products(ctx context.Context, filter ListFilter) ([]models.Product, error) {
	var products []models.Product
	if err := c.do(ctx, http.MethodGet, "/api/products"+filter.query(), nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Product fetches a single product by id.
func (c *Client) Product(ctx context.Context, id int) (models.Product, error) {
	var p models.Product
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/products/%d", id), nil, &p)
	return p, err
}

// CreateProduct adds a product and returns the stored record.
func (c *Client) CreateProduct(ctx context.Context, p models.Product) (models.Product, error) {
	var created models.Product
	err := c.do(ctx, http.MethodPost, "/api/products/add", p, &created)
	return created, err
}

// UpdateProduct applies a partial update. Only non-nil fields change.
func (c *Client) UpdateProduct(ctx context.Context, id int, update map[string]any) (models.Product, error) {
	var updated models.Product
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/products/edit/%d", id), update, &updated)
	return updated, err
}

// DeleteProduct removes a product. Requires an active session.
func (c *Client) DeleteProduct(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/products/%d", id), nil, nil)
}

// RecentProducts fetches the newest products.
func (c *Client) RecentProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.do(ctx, http.MethodGet, "/api/products/recent", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// InventoryStats fetches the aggregate metrics. On failure the caller's
// recovery path is fetching the products and recomputing with LocalStats;
// no silent fallback happens here.
func (c *Client) InventoryStats(ctx context.Context) (stats.Summary, error) {
	var s stats.Summary
	err := c.do(ctx, http.MethodGet, "/api/products/stats", nil, &s)
	return s, err
}

// LocalStats recomputes the inventory summary from an already-fetched
// product list. It is the single defined recovery path when InventoryStats
// fails.
func LocalStats(products []models.Product) stats.Summary {
	return stats.Summarize(products)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.session != nil {
		req.Header.Set("Authorization", "Bearer "+c.session.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode >= 400:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, bytes.TrimSpace(msg))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
