package service

import (
	"context"
	"errors"
	"time"

	"github.com/fullstack-labs/user-service/internal/core/auth"
	"github.com/fullstack-labs/user-service/internal/core/domain"
	"github.com/fullstack-labs/user-service/internal/core/ports"
)

// AuthService implements registration and login.
type AuthService struct {
	repo   ports.UserRepository
	tokens *auth.TokenManager
	audit  ports.AuditSink
}

func NewAuthService(repo ports.UserRepository, tokens *auth.TokenManager, audit ports.AuditSink) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, audit: audit}
}

// Register creates a new account. The role is always "user" on this path;
// admins are only minted through the admin-gated creation endpoint.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         name,
		Email:        domain.NormalizeEmail(email),
		PasswordHash: hash,
		Role:         domain.RoleUser,
	}

	// No existence pre-check: the store's unique index on email is the
	// arbiter, which also resolves concurrent registrations of the same
	// address to exactly one success and one conflict.
	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.record(created, domain.ActionRegistered)
	return created, nil
}

// Login verifies credentials and issues a bearer token. Unknown email and
// wrong password both surface as ErrInvalidCredentials so the endpoint
// never reveals whether an address is registered.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}

	s.record(user, domain.ActionLoggedIn)
	return token, user, nil
}

func (s *AuthService) record(user *domain.User, action domain.AuditAction) {
	if s.audit == nil {
		return
	}
	s.audit.Enqueue(domain.AuditEvent{
		UserID:     user.ID,
		Email:      user.Email,
		Action:     action,
		OccurredAt: time.Now().UTC(),
	})
}
