package ports

import (
	"context"

	"github.com/fullstack-labs/user-service/internal/core/domain"
)

// UserRepository is the credential store contract. Implementations must
// enforce email uniqueness at the storage layer and surface a violation
// as domain.ErrEmailTaken; a missing row surfaces as domain.ErrUserNotFound.
type UserRepository interface {
	// Create inserts a new user and returns it with ID and CreatedAt assigned.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	// List returns all users ordered by descending ID.
	List(ctx context.Context) ([]*domain.User, error)
	// Update rewrites name, email and role for the given user ID.
	Update(ctx context.Context, user *domain.User) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	Delete(ctx context.Context, id int64) error
}
