package user

import (
	"fmt"

	"github.com/rightguydaniel/deluxconex-BE/models"
)

// GetUserByID fetches a user by ID.
func (s *DefaultUserService) GetUserByID(userID string) (*models.User, error) {
	u, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if u == nil {
		return nil, fmt.Errorf("user with id %s not found", userID)
	}
	return u, nil
}

// GetUserByEmail fetches a user by email.
func (s *DefaultUserService) GetUserByEmail(email string) (*models.User, error) {
	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if u == nil {
		return nil, fmt.Errorf("user with email %s not found", email)
	}
	return u, nil
}

// UpdateUser applies profile changes and returns the updated record.
func (s *DefaultUserService) UpdateUser(userID string, req UpdateRequest) (*models.User, error) {
	u, err := s.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	if req.FullName != "" {
		u.FullName = req.FullName
	}
	if req.UserName != "" {
		u.UserName = req.UserName
	}
	if req.Phone != "" {
		u.Phone = req.Phone
	}

	if err := s.Repo.Update(u); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return u, nil
}

// DeleteUser removes the account.
func (s *DefaultUserService) DeleteUser(userID string) error {
	if err := s.Repo.Delete(userID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// GetAllUsers lists every account. Admin only.
func (s *DefaultUserService) GetAllUsers() ([]models.User, error) {
	users, err := s.Repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	return users, nil
}

// SetBlocked blocks or unblocks an account. Admin only.
func (s *DefaultUserService) SetBlocked(userID string, blocked bool) error {
	if err := s.Repo.SetBlocked(userID, blocked); err != nil {
		return fmt.Errorf("failed to update block state: %w", err)
	}
	return nil
}
