package entity

import "time"

// UserProfile is the per-user record stored by the identity backend.
// The backend is the source of truth; this service reads it to key carts and
// to decide role-gated visibility, and only ever writes the bookkeeping
// fields (role changes by admins, lastLogin on sign-in).
type UserProfile struct {
	UID          string    // Stable identifier issued by the authentication provider.
	DisplayName  string    // Display name as shown in the UI.
	PhotoURL     string    // Avatar URL, may be empty.
	Email        string    // Primary contact email.
	Role         Role      // Sole input to admin-view gating.
	Organization string    // FPO the user belongs to, may be empty.
	CreatedAt    time.Time // When the profile document was first written.
	LastLogin    time.Time // Updated on every session start.
}

// IsAdmin reports whether this profile grants access to the admin area.
func (p *UserProfile) IsAdmin() bool {
	return p != nil && p.Role == RoleAdmin
}
