package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/fullstack-labs/user-service/internal/api/middleware"
	"github.com/fullstack-labs/user-service/internal/core/auth"
	"github.com/fullstack-labs/user-service/internal/core/domain"
	"github.com/fullstack-labs/user-service/internal/core/ports"
)

type stubUserService struct {
	getProfileFn     func(ctx context.Context, userID int64) (*domain.User, error)
	updateProfileFn  func(ctx context.Context, userID int64, input ports.UpdateProfileInput) (*domain.User, error)
	changePasswordFn func(ctx context.Context, userID int64, current, next string) error
	deleteAccountFn  func(ctx context.Context, userID int64) error
	listUsersFn      func(ctx context.Context) ([]*domain.User, error)
	getUserFn        func(ctx context.Context, id int64) (*domain.User, error)
	createUserFn     func(ctx context.Context, input ports.CreateUserInput) (*domain.User, error)
	updateUserFn     func(ctx context.Context, id int64, input ports.UpdateUserInput) (*domain.User, error)
	deleteUserFn     func(ctx context.Context, id int64) error
}

func (s *stubUserService) GetProfile(ctx context.Context, userID int64) (*domain.User, error) {
	return s.getProfileFn(ctx, userID)
}

func (s *stubUserService) UpdateProfile(ctx context.Context, userID int64, input ports.UpdateProfileInput) (*domain.User, error) {
	return s.updateProfileFn(ctx, userID, input)
}

func (s *stubUserService) ChangePassword(ctx context.Context, userID int64, current, next string) error {
	return s.changePasswordFn(ctx, userID, current, next)
}

func (s *stubUserService) DeleteAccount(ctx context.Context, userID int64) error {
	return s.deleteAccountFn(ctx, userID)
}

func (s *stubUserService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.listUsersFn(ctx)
}

func (s *stubUserService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	return s.getUserFn(ctx, id)
}

func (s *stubUserService) CreateUser(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	return s.createUserFn(ctx, input)
}

func (s *stubUserService) UpdateUser(ctx context.Context, id int64, input ports.UpdateUserInput) (*domain.User, error) {
	return s.updateUserFn(ctx, id, input)
}

func (s *stubUserService) DeleteUser(ctx context.Context, id int64) error {
	return s.deleteUserFn(ctx, id)
}

func setPrincipal(c echo.Context, userID int64, role string) {
	c.Set(middleware.PrincipalKey, &auth.Claims{
		Name:  "Ana",
		Email: "ana@x.com",
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: strconv.FormatInt(userID, 10),
		},
	})
	c.Set("role", role)
}

func TestProfileHandler_Get(t *testing.T) {
	stub := &stubUserService{
		getProfileFn: func(ctx context.Context, userID int64) (*domain.User, error) {
			if userID != 7 {
				t.Fatalf("expected lookup for user 7, got %d", userID)
			}
			return &domain.User{ID: 7, Name: "Ana", Email: "ana@x.com", Role: domain.RoleUser}, nil
		},
	}
	h := NewProfileHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/api/profile", "")
	setPrincipal(c, 7, domain.RoleUser)

	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["email"] != "ana@x.com" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestProfileHandler_Get_DeletedMidSession(t *testing.T) {
	stub := &stubUserService{
		getProfileFn: func(ctx context.Context, userID int64) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	h := NewProfileHandler(stub)

	c, _ := newTestContext(t, http.MethodGet, "/api/profile", "")
	setPrincipal(c, 7, domain.RoleUser)

	if err := h.Get(c); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound to propagate, got %v", err)
	}
}

func TestProfileHandler_Update(t *testing.T) {
	stub := &stubUserService{
		updateProfileFn: func(ctx context.Context, userID int64, input ports.UpdateProfileInput) (*domain.User, error) {
			if userID != 7 || input.Name != "Ana Maria" || input.Email != "ana.maria@x.com" {
				t.Fatalf("unexpected args: %d %+v", userID, input)
			}
			return &domain.User{ID: 7, Name: input.Name, Email: input.Email, Role: domain.RoleUser}, nil
		},
	}
	h := NewProfileHandler(stub)

	c, rec := newTestContext(t, http.MethodPut, "/api/profile",
		`{"name":"Ana Maria","email":"ana.maria@x.com"}`)
	setPrincipal(c, 7, domain.RoleUser)

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestProfileHandler_Update_MissingFields(t *testing.T) {
	stub := &stubUserService{
		updateProfileFn: func(ctx context.Context, userID int64, input ports.UpdateProfileInput) (*domain.User, error) {
			t.Fatalf("service must not be called on invalid payload")
			return nil, nil
		},
	}
	h := NewProfileHandler(stub)

	c, rec := newTestContext(t, http.MethodPut, "/api/profile", `{"name":"Ana"}`)
	setPrincipal(c, 7, domain.RoleUser)

	if err := h.Update(c); err != nil {
		c.Echo().HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestProfileHandler_ChangePassword(t *testing.T) {
	stub := &stubUserService{
		changePasswordFn: func(ctx context.Context, userID int64, current, next string) error {
			if current != "oldpass1" || next != "newpass1" {
				t.Fatalf("unexpected args: %s %s", current, next)
			}
			return nil
		},
	}
	h := NewProfileHandler(stub)

	c, rec := newTestContext(t, http.MethodPut, "/api/profile/password",
		`{"currentPassword":"oldpass1","newPassword":"newpass1"}`)
	setPrincipal(c, 7, domain.RoleUser)

	if err := h.ChangePassword(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestProfileHandler_ChangePassword_WrongCurrent(t *testing.T) {
	stub := &stubUserService{
		changePasswordFn: func(ctx context.Context, userID int64, current, next string) error {
			return domain.ErrPasswordMismatch
		},
	}
	h := NewProfileHandler(stub)

	c, _ := newTestContext(t, http.MethodPut, "/api/profile/password",
		`{"currentPassword":"wrong","newPassword":"newpass1"}`)
	setPrincipal(c, 7, domain.RoleUser)

	if err := h.ChangePassword(c); !errors.Is(err, domain.ErrPasswordMismatch) {
		t.Fatalf("expected ErrPasswordMismatch to propagate, got %v", err)
	}
}

func TestProfileHandler_Delete(t *testing.T) {
	deleted := false
	stub := &stubUserService{
		deleteAccountFn: func(ctx context.Context, userID int64) error {
			deleted = true
			return nil
		},
	}
	h := NewProfileHandler(stub)

	c, rec := newTestContext(t, http.MethodDelete, "/api/profile", "")
	setPrincipal(c, 7, domain.RoleUser)

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !deleted {
		t.Fatalf("service not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
