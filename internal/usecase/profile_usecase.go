package usecase

import (
	"context"

	"krishihive/internal/domain/entity"
)

// ProfileUsecase defines the interface for profile and role-gating operations.
type ProfileUsecase interface {
	// GetProfile retrieves the profile for a UID. A missing profile is
	// reported via repository.ErrProfileNotFound wrapped in a domain error,
	// distinct from fetch failures.
	GetProfile(ctx context.Context, uid string) (*entity.UserProfile, error)

	// EnsureProfile creates a member-role profile on first sign-in and
	// records the login time. Returns the (existing or new) profile.
	EnsureProfile(ctx context.Context, claims *ProfileClaims) (*entity.UserProfile, error)

	// IsAdmin decides admin-area visibility for a UID. Fail-closed: any
	// error fetching the role record yields false.
	IsAdmin(ctx context.Context, uid string) bool

	// HasRole reports whether the UID's profile carries the given role.
	// Fail-closed like IsAdmin.
	HasRole(ctx context.Context, uid string, role entity.Role) bool

	// ListUsers returns all profiles for the admin panel.
	ListUsers(ctx context.Context) ([]*entity.UserProfile, error)

	// SetRole updates a user's role. The role must be a known value.
	SetRole(ctx context.Context, uid string, role entity.Role) error
}

// ProfileClaims carries the identity fields needed to bootstrap a profile.
type ProfileClaims struct {
	UID         string
	Email       string
	DisplayName string
	PhotoURL    string
}
