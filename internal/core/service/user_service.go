package service

import (
	"context"
	"time"

	"github.com/fullstack-labs/user-service/internal/core/auth"
	"github.com/fullstack-labs/user-service/internal/core/domain"
	"github.com/fullstack-labs/user-service/internal/core/ports"
)

// UserService implements profile self-service and the admin user CRUD.
type UserService struct {
	repo  ports.UserRepository
	audit ports.AuditSink
}

func NewUserService(repo ports.UserRepository, audit ports.AuditSink) *UserService {
	return &UserService{repo: repo, audit: audit}
}

// GetProfile returns the caller's current store record. Returns
// ErrUserNotFound when the account was deleted after token issuance.
func (s *UserService) GetProfile(ctx context.Context, userID int64) (*domain.User, error) {
	return s.repo.FindByID(ctx, userID)
}

// UpdateProfile changes the caller's name and email. The role is read from
// the existing record, never from the caller.
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, input ports.UpdateProfileInput) (*domain.User, error) {
	current, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	current.Name = input.Name
	current.Email = domain.NormalizeEmail(input.Email)
	if err := s.repo.Update(ctx, current); err != nil {
		return nil, err
	}

	s.record(current.ID, current.Email, domain.ActionProfileUpdated)
	return current, nil
}

// ChangePassword re-verifies the current password before storing the new
// hash. A mismatch is a distinct outcome from bad credentials at login.
func (s *UserService) ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if !auth.CheckPassword(currentPassword, user.PasswordHash) {
		return domain.ErrPasswordMismatch
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.repo.UpdatePassword(ctx, userID, hash); err != nil {
		return err
	}

	s.record(user.ID, user.Email, domain.ActionPasswordChanged)
	return nil
}

// DeleteAccount removes the caller's record. Tokens already issued for the
// account stay cryptographically valid until expiry; subsequent profile
// reads return not-found.
func (s *UserService) DeleteAccount(ctx context.Context, userID int64) error {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, userID); err != nil {
		return err
	}

	s.record(user.ID, user.Email, domain.ActionAccountDeleted)
	return nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// CreateUser is the admin-only creation path and the only way to mint
// another admin.
func (s *UserService) CreateUser(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	if !domain.ValidRole(input.Role) {
		return nil, domain.ErrInvalidRole
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         input.Name,
		Email:        domain.NormalizeEmail(input.Email),
		PasswordHash: hash,
		Role:         input.Role,
	}
	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.record(created.ID, created.Email, domain.ActionAdminCreatedUser)
	return created, nil
}

func (s *UserService) UpdateUser(ctx context.Context, id int64, input ports.UpdateUserInput) (*domain.User, error) {
	if !domain.ValidRole(input.Role) {
		return nil, domain.ErrInvalidRole
	}

	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	current.Name = input.Name
	current.Email = domain.NormalizeEmail(input.Email)
	current.Role = input.Role
	if err := s.repo.Update(ctx, current); err != nil {
		return nil, err
	}

	s.record(current.ID, current.Email, domain.ActionAdminUpdatedUser)
	return current, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.record(user.ID, user.Email, domain.ActionAdminDeletedUser)
	return nil
}

func (s *UserService) record(userID int64, email string, action domain.AuditAction) {
	if s.audit == nil {
		return
	}
	s.audit.Enqueue(domain.AuditEvent{
		UserID:     userID,
		Email:      email,
		Action:     action,
		OccurredAt: time.Now().UTC(),
	})
}
