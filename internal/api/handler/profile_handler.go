package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fullstack-labs/user-service/internal/core/ports"
)

// ProfileHandler handles the authenticated user's self-service operations.
// Every route resolves the target account from the token's subject claim;
// there is no way to address another user's record from here.
type ProfileHandler struct {
	userService ports.UserService
}

func NewProfileHandler(userService ports.UserService) *ProfileHandler {
	return &ProfileHandler{userService: userService}
}

type updateProfileRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Get returns the caller's current store record. Unlike /api/me this hits
// the database, so a deleted account yields 404 even with a valid token.
//
// @Summary      Get own profile
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.User
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/profile [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	claims, err := principal(c)
	if err != nil {
		return err
	}

	user, err := h.userService.GetProfile(c.Request().Context(), claims.UserID())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Update changes the caller's name and email.
//
// @Summary      Update own profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.User
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /api/profile [put]
func (h *ProfileHandler) Update(c echo.Context) error {
	claims, err := principal(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userService.UpdateProfile(c.Request().Context(), claims.UserID(), ports.UpdateProfileInput{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// ChangePassword re-verifies the current password before storing a new one.
//
// @Summary      Change own password
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  map[string]string
// @Router       /api/profile/password [put]
func (h *ProfileHandler) ChangePassword(c echo.Context) error {
	claims, err := principal(c)
	if err != nil {
		return err
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.userService.ChangePassword(c.Request().Context(), claims.UserID(), req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "password updated"})
}

// Delete removes the caller's account. Already-issued tokens stay valid
// until expiry; subsequent profile reads return 404.
//
// @Summary      Delete own account
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  messageResponse
// @Router       /api/profile [delete]
func (h *ProfileHandler) Delete(c echo.Context) error {
	claims, err := principal(c)
	if err != nil {
		return err
	}

	if err := h.userService.DeleteAccount(c.Request().Context(), claims.UserID()); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "account deleted"})
}
