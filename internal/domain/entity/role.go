// Package entity contains the core business objects of the project.
package entity

// Role represents the type of account a user holds in the marketplace.
// A role is assigned at registration and never changes afterwards.
type Role string

const (
	// RoleBuyer indicates an account that searches for and purchases cylinders.
	RoleBuyer Role = "buyer"
	// RoleSeller indicates an account that lists cylinder stock for sale.
	RoleSeller Role = "seller"
	// RoleAdmin indicates an account that operates the approval console.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleBuyer, RoleSeller, RoleAdmin:
		return true
	default:
		return false
	}
}
