package models

import "time"

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// User represents a customer or administrator account.
type User struct {
	ID           string     `bson:"id" json:"id"`
	FullName     string     `bson:"fullName" json:"full_name"`
	UserName     string     `bson:"userName,omitempty" json:"user_name,omitempty"`
	Email        string     `bson:"email" json:"email"`
	Phone        string     `bson:"phone" json:"phone"`
	PasswordHash string     `bson:"passwordHash" json:"-"`
	Role         UserRole   `bson:"role" json:"role"`
	BlockedAt    *time.Time `bson:"blockedAt,omitempty" json:"blocked_at,omitempty"`
	DeletedAt    *time.Time `bson:"deletedAt,omitempty" json:"deleted_at,omitempty"`
	CreatedAt    time.Time  `bson:"createdAt" json:"created_at"`
	UpdatedAt    time.Time  `bson:"updatedAt" json:"updated_at"`
}

// Blocked reports whether the account has been blocked by an administrator.
func (u *User) Blocked() bool {
	return u.BlockedAt != nil
}
