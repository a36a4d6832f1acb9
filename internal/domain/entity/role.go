// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a user can have in the organization.
type Role string

const (
	// RoleMember indicates a regular FPO member.
	RoleMember Role = "member"
	// RoleManager indicates an FPO manager.
	RoleManager Role = "manager"
	// RoleAdmin indicates a platform administrator.
	RoleAdmin Role = "admin"
	// RoleBuyer indicates an external buyer account.
	RoleBuyer Role = "buyer"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleMember, RoleManager, RoleAdmin, RoleBuyer:
		return true
	default:
		return false
	}
}
