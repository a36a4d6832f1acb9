package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "krishihive/internal/delivery/context"
	"krishihive/internal/domain/entity"
	domainerrors "krishihive/internal/domain/errors"
	"krishihive/internal/domain/repository"
	"krishihive/internal/usecase"

	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	profileRepo repository.ProfileRepository
	logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	profileRepo repository.ProfileRepository,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile retrieves the profile for a UID.
func (srv *profileService) GetProfile(ctx context.Context, uid string) (*entity.UserProfile, error) {
	profile, err := srv.profileRepo.FindByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProfileNotFound, "no profile for uid")
		}

		return nil, errors.Wrap(err, "failed to fetch profile")
	}

	return profile, nil
}

// EnsureProfile creates a member-role profile on first sign-in and records
// the login time.
func (srv *profileService) EnsureProfile(ctx context.Context, claims *usecase.ProfileClaims) (*entity.UserProfile, error) {
	now := time.Now().UTC()

	profile, err := srv.profileRepo.FindByUID(ctx, claims.UID)
	if err == nil {
		if touchErr := srv.profileRepo.TouchLastLogin(ctx, claims.UID, now); touchErr != nil {
			// Bookkeeping only; the sign-in still succeeds.
			srv.log(ctx).Warn("failed to record last login",
				slog.String("uid", claims.UID),
				slog.Any("error", touchErr),
			)
		}
		profile.LastLogin = now

		return profile, nil
	}

	if !errors.Is(err, repository.ErrProfileNotFound) {
		return nil, errors.Wrap(err, "failed to fetch profile")
	}

	profile = &entity.UserProfile{
		UID:         claims.UID,
		DisplayName: claims.DisplayName,
		PhotoURL:    claims.PhotoURL,
		Email:       claims.Email,
		Role:        entity.RoleMember,
		CreatedAt:   now,
		LastLogin:   now,
	}

	if err := srv.profileRepo.Create(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to create profile")
	}

	srv.log(ctx).Info("created profile for first sign-in", slog.String("uid", claims.UID))

	return profile, nil
}

// IsAdmin decides admin-area visibility. Fail-closed: a missing profile or a
// failed fetch both read as "not admin".
func (srv *profileService) IsAdmin(ctx context.Context, uid string) bool {
	return srv.HasRole(ctx, uid, entity.RoleAdmin)
}

// HasRole reports whether the UID's profile carries the given role, failing
// closed on any fetch error.
func (srv *profileService) HasRole(ctx context.Context, uid string, role entity.Role) bool {
	if uid == "" {
		return false
	}

	profile, err := srv.profileRepo.FindByUID(ctx, uid)
	if err != nil {
		if !errors.Is(err, repository.ErrProfileNotFound) {
			srv.log(ctx).Warn("role check failed, treating as unprivileged",
				slog.String("uid", uid),
				slog.Any("error", err),
			)
		}

		return false
	}

	return profile.Role == role
}

// ListUsers returns all profiles for the admin panel.
func (srv *profileService) ListUsers(ctx context.Context) ([]*entity.UserProfile, error) {
	profiles, err := srv.profileRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list profiles")
	}

	return profiles, nil
}

// SetRole updates a user's role after validating it against the known set.
func (srv *profileService) SetRole(ctx context.Context, uid string, role entity.Role) error {
	if !role.IsValid() {
		return domainerrors.ErrInvalidRole.WithDetails(role.String())
	}

	if _, err := srv.profileRepo.FindByUID(ctx, uid); err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return errors.Wrap(domainerrors.ErrProfileNotFound, "no profile for uid")
		}

		return errors.Wrap(err, "failed to fetch profile")
	}

	if err := srv.profileRepo.UpdateRole(ctx, uid, role); err != nil {
		return errors.Wrap(err, "failed to update role")
	}

	srv.log(ctx).Info("role updated",
		slog.String("uid", uid),
		slog.String("role", role.String()),
	)

	return nil
}
