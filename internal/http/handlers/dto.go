package handlers

import "github.com/ashik3031/inventory-management/internal/models"

type ProductRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	Stock       int     `json:"stock"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Media       string  `json:"media"`
}

// ProductUpdateRequest carries a partial update; absent fields keep their
// stored value.
type ProductUpdateRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Status      *string  `json:"status"`
	Stock       *int     `json:"stock"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	Media       *string  `json:"media"`
}

type ProductResponse struct {
	Id          int     `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	Stock       int     `json:"stock"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Media       string  `json:"media,omitempty"`
	CreatedAt   string  `json:"created_at,omitempty"`
	UpdatedAt   string  `json:"updated_at,omitempty"`
	LowStock    bool    `json:"low_stock,omitempty"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

type DeleteResult struct {
	Message string `json:"msg"`
}
