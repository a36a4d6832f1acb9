package handler

import (
	"log/slog"
	"net/http"

	"krishihive/internal/delivery/http/response"
	"krishihive/internal/domain/entity"
	"krishihive/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for the admin panel handlers.
type AdminHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		uc:     uc,
		logger: logger,
	}
}

// setRoleInput is the request body for a role change.
type setRoleInput struct {
	Role string `json:"role" validate:"required"`
}

// ListUsers returns every profile for the member management panel.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	profiles, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	users := make([]*profileResponse, 0, len(profiles))
	for _, p := range profiles {
		users = append(users, toProfileResponse(p))
	}

	return response.Success(c, http.StatusOK, users, "Users retrieved")
}

// SetRole updates a user's role.
func (h *AdminHandler) SetRole(c echo.Context) error {
	var input setRoleInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid role input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	uid := c.Param("uid")
	if err := h.uc.SetRole(c.Request().Context(), uid, entity.Role(input.Role)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"uid":  uid,
		"role": input.Role,
	}, "Role updated")
}
