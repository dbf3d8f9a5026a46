package user

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/rightguydaniel/deluxconex-BE/models"
	"github.com/rightguydaniel/deluxconex-BE/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	tokenValidity      = 24 * time.Hour
	resetTokenValidity = time.Hour
)

// Register creates a new customer account and returns a signed session
// token. A welcome email goes out best-effort.
func (s *DefaultUserService) Register(req RegistrationRequest) (*AuthResponse, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" || req.FullName == "" {
		return nil, fmt.Errorf("full name, email and password are required")
	}
	if len(req.Password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}

	existing, err := s.Repo.GetByEmail(req.Email)
	if err != nil {
		utils.GetLogger().Error("Register: duplicate check failed", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, fmt.Errorf("a user with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &models.User{
		ID:           uuid.New().String(),
		FullName:     req.FullName,
		UserName:     req.UserName,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: string(hash),
		Role:         models.RoleUser,
	}
	if err := s.Repo.Create(u); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if err := s.Mailer.Send(u.Email, "Welcome to DeluxConex",
		fmt.Sprintf("Hi %s, your DeluxConex account is ready.", u.FullName), ""); err != nil {
		utils.GetLogger().Warn("Register: welcome email failed", zap.String("email", u.Email), zap.Error(err))
	}

	return s.authResponse(u)
}

// Login verifies credentials and returns a signed session token.
func (s *DefaultUserService) Login(email, password string) (*AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Login: lookup failed", zap.Error(err))
		return nil, fmt.Errorf("sign in failed, please try again")
	}
	if u == nil {
		return nil, fmt.Errorf("invalid email or password")
	}
	if u.Blocked() {
		return nil, fmt.Errorf("this account has been blocked")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	return s.authResponse(u)
}

// UpdatePassword changes the password after verifying the current one.
func (s *DefaultUserService) UpdatePassword(userID, currentPassword, newPassword string) error {
	if len(newPassword) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}

	u, err := s.Repo.GetByID(userID)
	if err != nil {
		return fmt.Errorf("failed to load user: %w", err)
	}
	if u == nil {
		return fmt.Errorf("user not found")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(currentPassword)); err != nil {
		return fmt.Errorf("current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	u.PasswordHash = string(hash)
	if err := s.Repo.Update(u); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

// RequestPasswordReset emails a reset link when the address belongs to an
// account. It reports success either way so the endpoint cannot be used to
// probe which emails are registered.
func (s *DefaultUserService) RequestPasswordReset(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("RequestPasswordReset: lookup failed", zap.Error(err))
		return nil
	}
	if u == nil || u.Blocked() {
		return nil
	}

	token, err := utils.GenerateResetToken(u.ID, resetTokenValidity)
	if err != nil {
		utils.GetLogger().Error("RequestPasswordReset: token generation failed",
			zap.String("userId", u.ID), zap.Error(err))
		return nil
	}

	link := fmt.Sprintf("%s/reset-password?token=%s", s.BaseURL, url.QueryEscape(token))
	body := fmt.Sprintf("Hi %s, use the link below to reset your DeluxConex password. It expires in 1 hour.\n\n%s",
		u.FullName, link)
	if err := s.Mailer.Send(u.Email, "Reset your DeluxConex password", body, ""); err != nil {
		utils.GetLogger().Warn("RequestPasswordReset: email failed",
			zap.String("email", u.Email), zap.Error(err))
	}
	return nil
}

// ResetPassword sets a new password from a valid reset token.
func (s *DefaultUserService) ResetPassword(token, newPassword string) error {
	if len(newPassword) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}

	userID, err := utils.ExtractResetClaims(token)
	if err != nil {
		return fmt.Errorf("invalid or expired reset token")
	}

	u, err := s.Repo.GetByID(userID)
	if err != nil {
		return fmt.Errorf("failed to load user: %w", err)
	}
	if u == nil {
		return fmt.Errorf("invalid or expired reset token")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	u.PasswordHash = string(hash)
	if err := s.Repo.Update(u); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

func (s *DefaultUserService) authResponse(u *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(u.ID, u.Email, string(u.Role), tokenValidity)
	if err != nil {
		return nil, fmt.Errorf("failed to generate auth token: %w", err)
	}
	return &AuthResponse{
		ID:       u.ID,
		Token:    token,
		FullName: u.FullName,
		UserName: u.UserName,
		Email:    u.Email,
		Role:     string(u.Role),
	}, nil
}
