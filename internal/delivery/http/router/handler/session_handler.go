// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"krishihive/internal/delivery/http/middleware"
	"krishihive/internal/delivery/http/response"
	"krishihive/internal/domain/entity"
	"krishihive/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SessionHandler holds dependencies for sign-in and sign-out handlers.
type SessionHandler struct {
	profiles usecase.ProfileUsecase
	carts    usecase.CartUsecase
	logger   *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(profiles usecase.ProfileUsecase, carts usecase.CartUsecase, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		profiles: profiles,
		carts:    carts,
		logger:   logger,
	}
}

// profileResponse is the wire shape for a user profile.
type profileResponse struct {
	UID          string    `json:"uid"`
	DisplayName  string    `json:"display_name"`
	PhotoURL     string    `json:"photo_url,omitempty"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	Organization string    `json:"organization,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	LastLogin    time.Time `json:"last_login"`
}

func toProfileResponse(p *entity.UserProfile) *profileResponse {
	return &profileResponse{
		UID:          p.UID,
		DisplayName:  p.DisplayName,
		PhotoURL:     p.PhotoURL,
		Email:        p.Email,
		Role:         p.Role.String(),
		Organization: p.Organization,
		CreatedAt:    p.CreatedAt,
		LastLogin:    p.LastLogin,
	}
}

// StartSession establishes a server-side session from a verified ID token.
// It bootstraps the profile on first sign-in and hydrates the saved cart.
func (h *SessionHandler) StartSession(c echo.Context) error {
	claims := middleware.ClaimsFromContext(c)
	if claims == nil {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Please sign in to continue")
	}

	profile, err := h.profiles.EnsureProfile(c.Request().Context(), &usecase.ProfileClaims{
		UID:         claims.UID,
		Email:       claims.Email,
		DisplayName: claims.DisplayName,
		PhotoURL:    claims.PhotoURL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	// Best-effort: a failed load leaves the cart empty for this session.
	h.carts.Hydrate(c.Request().Context(), claims.UID)

	return response.Success(c, http.StatusOK, map[string]any{
		"profile":  toProfileResponse(profile),
		"is_admin": profile.IsAdmin(),
	}, "Session started")
}

// EndSession drops the in-memory cart for the caller. The saved cart
// document stays in place for the next session to hydrate from.
func (h *SessionHandler) EndSession(c echo.Context) error {
	uid := middleware.UIDFromContext(c)
	if uid == "" {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Please sign in to continue")
	}

	h.carts.Reset(uid)

	return response.Success(c, http.StatusOK, map[string]string{"message": "Signed out"}, "Session ended")
}

// HealthCheck responds to health probes.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
