package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"krishihive/internal/domain/entity"
	domainerrors "krishihive/internal/domain/errors"
	"krishihive/internal/domain/repository"
	mockRepo "krishihive/internal/mocks/repository"
	"krishihive/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service     usecase.ProfileUsecase
	profileRepo *mockRepo.MockProfileRepository
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewProfileService(profileRepo, logger)

	return profileServiceFixtures{
		service:     svc,
		profileRepo: profileRepo,
	}
}

func adminProfile() *entity.UserProfile {
	return &entity.UserProfile{
		UID:         "uid-admin",
		DisplayName: "Asha Patil",
		Email:       "asha@example.com",
		Role:        entity.RoleAdmin,
	}
}

func TestProfileService_GetProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	expected := adminProfile()
	fx.profileRepo.EXPECT().FindByUID(ctx, "uid-admin").Return(expected, nil)

	profile, err := fx.service.GetProfile(ctx, "uid-admin")

	require.NoError(t, err)
	assert.Equal(t, expected, profile)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	fx.profileRepo.EXPECT().FindByUID(ctx, "uid-x").Return(nil, repository.ErrProfileNotFound)

	_, err := fx.service.GetProfile(ctx, "uid-x")

	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

func TestProfileService_EnsureProfile_FirstSignInCreatesMember(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	claims := &usecase.ProfileClaims{
		UID:         "uid-new",
		Email:       "ravi@example.com",
		DisplayName: "Ravi Kumar",
		PhotoURL:    "https://example.com/ravi.png",
	}

	fx.profileRepo.EXPECT().FindByUID(ctx, "uid-new").Return(nil, repository.ErrProfileNotFound)
	fx.profileRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.UserProfile")).
		Run(func(ctx context.Context, profile *entity.UserProfile) {
			assert.Equal(t, "uid-new", profile.UID)
			assert.Equal(t, entity.RoleMember, profile.Role)
			assert.False(t, profile.CreatedAt.IsZero())
		}).
		Return(nil)

	profile, err := fx.service.EnsureProfile(ctx, claims)

	require.NoError(t, err)
	assert.Equal(t, entity.RoleMember, profile.Role)
	assert.Equal(t, "Ravi Kumar", profile.DisplayName)
}

func TestProfileService_EnsureProfile_ExistingProfileKeepsRole(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	existing := adminProfile()
	fx.profileRepo.EXPECT().FindByUID(ctx, "uid-admin").Return(existing, nil)
	fx.profileRepo.EXPECT().
		TouchLastLogin(ctx, "uid-admin", mock.AnythingOfType("time.Time")).
		Return(nil)

	profile, err := fx.service.EnsureProfile(ctx, &usecase.ProfileClaims{UID: "uid-admin"})

	require.NoError(t, err)
	// A repeat sign-in never resets an elevated role.
	assert.Equal(t, entity.RoleAdmin, profile.Role)
	assert.WithinDuration(t, time.Now(), profile.LastLogin, time.Minute)
}

func TestProfileService_EnsureProfile_TouchFailureStillSignsIn(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	fx.profileRepo.EXPECT().FindByUID(ctx, "uid-admin").Return(adminProfile(), nil)
	fx.profileRepo.EXPECT().
		TouchLastLogin(ctx, "uid-admin", mock.AnythingOfType("time.Time")).
		Return(errors.New("firestore unavailable"))

	_, err := fx.service.EnsureProfile(ctx, &usecase.ProfileClaims{UID: "uid-admin"})

	require.NoError(t, err)
}

func TestProfileService_IsAdmin_True(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	fx.profileRepo.EXPECT().FindByUID(ctx, "uid-admin").Return(adminProfile(), nil)

	assert.True(t, fx.service.IsAdmin(ctx, "uid-admin"))
}

func TestProfileService_IsAdmin_MemberIsNotAdmin(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	member := adminProfile()
	member.Role = entity.RoleMember
	fx.profileRepo.EXPECT().FindByUID(ctx, "uid-admin").Return(member, nil)

	assert.False(t, fx.service.IsAdmin(ctx, "uid-admin"))
}

func TestProfileService_IsAdmin_MissingProfileFailsClosed(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	fx.profileRepo.EXPECT().FindByUID(ctx, "uid-x").Return(nil, repository.ErrProfileNotFound)

	assert.False(t, fx.service.IsAdmin(ctx, "uid-x"))
}

func TestProfileService_IsAdmin_FetchErrorFailsClosed(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	fx.profileRepo.EXPECT().FindByUID(ctx, "uid-admin").Return(nil, errors.New("firestore unavailable"))

	// An admin whose role read fails is treated as unprivileged, never the
	// other way around.
	assert.False(t, fx.service.IsAdmin(ctx, "uid-admin"))
}

func TestProfileService_IsAdmin_EmptyUID(t *testing.T) {
	fx := createTestProfileService(t)

	assert.False(t, fx.service.IsAdmin(context.Background(), ""))
}

func TestProfileService_ListUsers_Success(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	expected := []*entity.UserProfile{adminProfile()}
	fx.profileRepo.EXPECT().List(ctx).Return(expected, nil)

	profiles, err := fx.service.ListUsers(ctx)

	require.NoError(t, err)
	assert.Equal(t, expected, profiles)
}

func TestProfileService_SetRole_Success(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	fx.profileRepo.EXPECT().FindByUID(ctx, "uid-1").Return(adminProfile(), nil)
	fx.profileRepo.EXPECT().UpdateRole(ctx, "uid-1", entity.RoleManager).Return(nil)

	require.NoError(t, fx.service.SetRole(ctx, "uid-1", entity.RoleManager))
}

func TestProfileService_SetRole_UnknownRole(t *testing.T) {
	fx := createTestProfileService(t)

	err := fx.service.SetRole(context.Background(), "uid-1", entity.Role("superuser"))

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInvalidRole.ErrorCode(), appErr.ErrorCode())
}

func TestProfileService_SetRole_MissingProfile(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	fx.profileRepo.EXPECT().FindByUID(ctx, "uid-x").Return(nil, repository.ErrProfileNotFound)

	err := fx.service.SetRole(ctx, "uid-x", entity.RoleAdmin)

	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}
