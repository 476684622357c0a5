// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleProvider indicates a user who issues invoices.
	RoleProvider Role = "provider"
	// RolePurchaser indicates a user who owes and pays invoices.
	RolePurchaser Role = "purchaser"
	// RoleAdmin indicates a platform administrator.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleProvider, RolePurchaser, RoleAdmin:
		return true
	default:
		return false
	}
}
