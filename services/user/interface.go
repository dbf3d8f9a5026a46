package user

import (
	userRepo "github.com/rightguydaniel/deluxconex-BE/database/repository/user"
	"github.com/rightguydaniel/deluxconex-BE/models"
	"github.com/rightguydaniel/deluxconex-BE/services/notification"
)

type UserService interface {
	// Registration & authentication
	Register(req RegistrationRequest) (*AuthResponse, error)
	Login(email, password string) (*AuthResponse, error)
	UpdatePassword(userID, currentPassword, newPassword string) error
	RequestPasswordReset(email string) error
	ResetPassword(token, newPassword string) error

	// User management
	GetUserByID(userID string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	UpdateUser(userID string, req UpdateRequest) (*models.User, error)
	DeleteUser(userID string) error

	// Admin
	GetAllUsers() ([]models.User, error)
	SetBlocked(userID string, blocked bool) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo    userRepo.UserRepository
	Mailer  notification.Mailer
	BaseURL string
}

// RegistrationRequest carries the signup form fields.
type RegistrationRequest struct {
	FullName string `json:"full_name"`
	UserName string `json:"user_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// UpdateRequest carries profile fields a user may change.
type UpdateRequest struct {
	FullName string `json:"full_name,omitempty"`
	UserName string `json:"user_name,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// AuthResponse contains the user's ID, token, and additional details.
type AuthResponse struct {
	ID       string `json:"id"`
	Token    string `json:"token"`
	FullName string `json:"full_name,omitempty"`
	UserName string `json:"user_name,omitempty"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role,omitempty"`
}
