package userRepo

import "github.com/rightguydaniel/deluxconex-BE/models"

// UserRepository defines persistence operations for user accounts.
// Lookup methods return (nil, nil) when no matching document exists.
type UserRepository interface {
	Create(user *models.User) error
	Update(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetAll() ([]models.User, error)
	SetBlocked(id string, blocked bool) error
	Delete(id string) error
}
