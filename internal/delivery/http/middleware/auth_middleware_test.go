package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"krishihive/internal/domain/entity"
	"krishihive/internal/domain/repository"
	"krishihive/internal/domain/service"
	mockRepo "krishihive/internal/mocks/repository"
	mockService "krishihive/internal/mocks/service"
	"krishihive/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// authMiddlewareFixtures holds all test dependencies for middleware tests.
type authMiddlewareFixtures struct {
	middleware  *AuthMiddleware
	verifier    *mockService.MockTokenVerifier
	profileRepo *mockRepo.MockProfileRepository
}

func createTestAuthMiddleware(t *testing.T) authMiddlewareFixtures {
	verifier := mockService.NewMockTokenVerifier(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	profiles := impl.NewProfileService(profileRepo, logger)

	return authMiddlewareFixtures{
		middleware:  NewAuthMiddleware(verifier, profiles, logger),
		verifier:    verifier,
		profileRepo: profileRepo,
	}
}

func newTestContext(t *testing.T, authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	fx := createTestAuthMiddleware(t)
	c, rec := newTestContext(t, "")

	err := fx.middleware.Authenticate(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	fx := createTestAuthMiddleware(t)
	c, rec := newTestContext(t, "Basic dXNlcjpwYXNz")

	err := fx.middleware.Authenticate(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_VerifierRejects(t *testing.T) {
	fx := createTestAuthMiddleware(t)
	c, rec := newTestContext(t, "Bearer expired-token")

	fx.verifier.EXPECT().
		VerifyIDToken(c.Request().Context(), "expired-token").
		Return(nil, errors.New("token expired"))

	err := fx.middleware.Authenticate(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_SetsIdentity(t *testing.T) {
	fx := createTestAuthMiddleware(t)
	c, rec := newTestContext(t, "Bearer good-token")

	fx.verifier.EXPECT().
		VerifyIDToken(c.Request().Context(), "good-token").
		Return(&service.AuthClaims{UID: "uid-1", Email: "asha@krishihive.in"}, nil)

	var seenUID string
	next := func(c echo.Context) error {
		seenUID = UIDFromContext(c)

		return c.NoContent(http.StatusOK)
	}

	err := fx.middleware.Authenticate(next)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "uid-1", seenUID)
	require.NotNil(t, ClaimsFromContext(c))
	assert.Equal(t, "asha@krishihive.in", ClaimsFromContext(c).Email)
}

func TestAuthMiddleware_RequireRole_Match(t *testing.T) {
	fx := createTestAuthMiddleware(t)
	c, rec := newTestContext(t, "")
	c.Set(KeyUID, "uid-admin")

	fx.profileRepo.EXPECT().
		FindByUID(c.Request().Context(), "uid-admin").
		Return(&entity.UserProfile{UID: "uid-admin", Role: entity.RoleAdmin}, nil)

	err := fx.middleware.RequireRole(entity.RoleAdmin)(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_RequireRole_Mismatch(t *testing.T) {
	fx := createTestAuthMiddleware(t)
	c, rec := newTestContext(t, "")
	c.Set(KeyUID, "uid-member")

	fx.profileRepo.EXPECT().
		FindByUID(c.Request().Context(), "uid-member").
		Return(&entity.UserProfile{UID: "uid-member", Role: entity.RoleMember}, nil)

	err := fx.middleware.RequireRole(entity.RoleAdmin)(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthMiddleware_RequireRole_AnyOfSeveral(t *testing.T) {
	fx := createTestAuthMiddleware(t)
	c, rec := newTestContext(t, "")
	c.Set(KeyUID, "uid-manager")

	fx.profileRepo.EXPECT().
		FindByUID(c.Request().Context(), "uid-manager").
		Return(&entity.UserProfile{UID: "uid-manager", Role: entity.RoleManager}, nil)

	err := fx.middleware.RequireRole(entity.RoleManager, entity.RoleAdmin)(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_RequireRole_SingleFetchForRoleSet(t *testing.T) {
	fx := createTestAuthMiddleware(t)
	c, rec := newTestContext(t, "")
	c.Set(KeyUID, "uid-member")

	// One profile read covers the whole candidate set, even on a mismatch.
	fx.profileRepo.EXPECT().
		FindByUID(c.Request().Context(), "uid-member").
		Return(&entity.UserProfile{UID: "uid-member", Role: entity.RoleMember}, nil).
		Once()

	err := fx.middleware.RequireRole(entity.RoleManager, entity.RoleAdmin)(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	fx.profileRepo.AssertNumberOfCalls(t, "FindByUID", 1)
}

func TestAuthMiddleware_RequireRole_FetchErrorFailsClosed(t *testing.T) {
	fx := createTestAuthMiddleware(t)
	c, rec := newTestContext(t, "")
	c.Set(KeyUID, "uid-1")

	fx.profileRepo.EXPECT().
		FindByUID(c.Request().Context(), "uid-1").
		Return(nil, errors.New("backend unavailable"))

	err := fx.middleware.RequireRole(entity.RoleAdmin)(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthMiddleware_RequireRole_MissingProfileFailsClosed(t *testing.T) {
	fx := createTestAuthMiddleware(t)
	c, rec := newTestContext(t, "")
	c.Set(KeyUID, "uid-ghost")

	fx.profileRepo.EXPECT().
		FindByUID(c.Request().Context(), "uid-ghost").
		Return(nil, repository.ErrProfileNotFound)

	err := fx.middleware.RequireRole(entity.RoleAdmin)(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthMiddleware_RequireRole_NoIdentity(t *testing.T) {
	fx := createTestAuthMiddleware(t)
	c, rec := newTestContext(t, "")

	err := fx.middleware.RequireRole(entity.RoleAdmin)(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
