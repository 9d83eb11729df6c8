package ports

import (
	"context"

	"github.com/fullstack-labs/user-service/internal/core/domain"
)

// UpdateProfileInput carries the fields a user may change on their own record.
type UpdateProfileInput struct {
	Name  string
	Email string
}

// CreateUserInput is the admin-only creation payload. Unlike public
// registration it accepts a role, validated against the closed set.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// UpdateUserInput is the admin-only update payload.
type UpdateUserInput struct {
	Name  string
	Email string
	Role  string
}

// UserService covers profile self-service and the admin-gated user CRUD.
type UserService interface {
	GetProfile(ctx context.Context, userID int64) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID int64, input UpdateProfileInput) (*domain.User, error)
	// ChangePassword re-verifies the current password before storing the
	// new hash; a mismatch surfaces as domain.ErrPasswordMismatch.
	ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error
	DeleteAccount(ctx context.Context, userID int64) error

	ListUsers(ctx context.Context) ([]*domain.User, error)
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error)
	UpdateUser(ctx context.Context, id int64, input UpdateUserInput) (*domain.User, error)
	DeleteUser(ctx context.Context, id int64) error
}
