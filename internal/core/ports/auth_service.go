package ports

import (
	"context"

	"github.com/fullstack-labs/user-service/internal/core/domain"
)

// AuthService implements public registration and login.
type AuthService interface {
	// Register creates a new account with the user role. Client-supplied
	// roles are never honoured on this path.
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	// Login verifies credentials and returns a signed bearer token plus the
	// user it identifies. Unknown email and wrong password are
	// indistinguishable to the caller.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
