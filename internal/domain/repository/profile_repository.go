package repository

import (
	"context"
	"errors"
	"time"

	"krishihive/internal/domain/entity"
)

// ErrProfileNotFound is returned when no profile document exists for a UID.
// Callers must treat "not found" and "fetch failed" as separate cases; the
// role gate maps both to non-admin, but session bootstrap only creates a
// profile on the former.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository persists per-user profile records, keyed by UID.
type ProfileRepository interface {
	// FindByUID retrieves a single profile by the user's UID.
	// Returns ErrProfileNotFound if no document exists.
	FindByUID(ctx context.Context, uid string) (*entity.UserProfile, error)

	// Create persists a new profile document.
	Create(ctx context.Context, profile *entity.UserProfile) error

	// UpdateRole changes the role field of an existing profile.
	UpdateRole(ctx context.Context, uid string, role entity.Role) error

	// TouchLastLogin records a sign-in timestamp.
	TouchLastLogin(ctx context.Context, uid string, at time.Time) error

	// List returns all profiles, newest first, for the admin panel.
	List(ctx context.Context) ([]*entity.UserProfile, error)
}
