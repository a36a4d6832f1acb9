package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "krishihive/internal/delivery/context"
	"krishihive/internal/delivery/http/response"
	"krishihive/internal/domain/entity"
	"krishihive/internal/domain/service"
	"krishihive/internal/usecase"

	"github.com/labstack/echo/v4"
)

// Context keys set by Authenticate for downstream handlers.
const (
	KeyUID    = "uid"
	KeyClaims = "authClaims"
)

// AuthMiddleware validates Firebase ID tokens and gates routes by role.
type AuthMiddleware struct {
	verifier service.TokenVerifier
	profiles usecase.ProfileUsecase
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(verifier service.TokenVerifier, profiles usecase.ProfileUsecase, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
		profiles: profiles,
		logger:   logger,
	}
}

// Authenticate validates the bearer token and stores the caller's identity
// on the request context. Any verification failure is a 401.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid token format, must be Bearer token")
		}

		claims, err := m.verifier.VerifyIDToken(c.Request().Context(), tokenString)
		if err != nil {
			m.logger.Debug("token verification failed",
				slog.String("request_id", deliverycontext.GetRequestID(c)),
				slog.Any("error", err),
			)

			return response.Unauthorized(c, "TOKEN_INVALID", "Invalid or expired session token")
		}

		c.Set(KeyUID, claims.UID)
		c.Set(KeyClaims, claims)

		return next(c)
	}
}

// RequireRole is a middleware factory that 403s unless the caller's profile
// carries one of the given roles. The profile is fetched once per request,
// never cached across requests, and any fetch failure reads as "no role".
// Must run after Authenticate.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid := UIDFromContext(c)
			if uid == "" {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: identity missing")
			}

			profile, err := m.profiles.GetProfile(c.Request().Context(), uid)
			if err != nil {
				m.logger.Debug("role check failed, denying",
					slog.String("request_id", deliverycontext.GetRequestID(c)),
					slog.String("uid", uid),
					slog.Any("error", err),
				)

				return response.Forbidden(c, "FORBIDDEN", "Permission denied: insufficient role")
			}

			for _, role := range roles {
				if profile.Role == role {
					return next(c)
				}
			}

			return response.Forbidden(c, "FORBIDDEN", "Permission denied: insufficient role")
		}
	}
}

// UIDFromContext returns the authenticated UID set by Authenticate, or "".
func UIDFromContext(c echo.Context) string {
	if uid, ok := c.Get(KeyUID).(string); ok {
		return uid
	}

	return ""
}

// ClaimsFromContext returns the verified claims set by Authenticate, or nil.
func ClaimsFromContext(c echo.Context) *service.AuthClaims {
	if claims, ok := c.Get(KeyClaims).(*service.AuthClaims); ok {
		return claims
	}

	return nil
}
