package repo

import (
	"errors"

	"github.com/ashik3031/inventory-management/internal/models"
)

type UserRepository interface {
	CreateUser(u models.User) (models.User, error)
	GetByEmail(email string) (models.User, error)
}

var ErrUserNotFound = errors.New("user not found")
