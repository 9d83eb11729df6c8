package domain

import (
	"errors"
	"strings"
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

var ErrUserNotFound = errors.New("user not found")
var ErrEmailTaken = errors.New("email already registered")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidToken = errors.New("invalid or expired token")
var ErrForbidden = errors.New("access forbidden")
var ErrPasswordMismatch = errors.New("current password is incorrect")
var ErrInvalidRole = errors.New("invalid role")

// ValidRole reports whether role belongs to the closed role set.
func ValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}

// NormalizeEmail canonicalizes an email for storage and lookup. Email
// comparison is case-insensitive by policy: every email is lowercased and
// trimmed here, so the store's unique index enforces the policy globally.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// User is the persisted identity record behind every principal.
// PasswordHash never leaves the process boundary: it is excluded from
// JSON serialization entirely.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
