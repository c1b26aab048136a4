package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
	RoleUser     = "user"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidRole = errors.New("invalid role")
var ErrForbidden = errors.New("access forbidden")
var ErrSelfDelete = errors.New("cannot delete own account")

// ValidRole reports whether role is one of the enumerated permission tiers.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleEmployee || role == RoleUser
}

// PrivilegedRole reports whether role grants access to the back-office
// surface. Accounts with role "user" exist but never count as authenticated
// operators.
func PrivilegedRole(role string) bool {
	return role == RoleAdmin || role == RoleEmployee
}

// User models an account in the system.
type User struct {
	ID           string    `json:"_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
