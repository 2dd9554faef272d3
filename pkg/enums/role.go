package enums

import "fmt"

// Role represents an actor's permission level in the storefront.
type Role string

const (
	RoleGuest    Role = "guest"
	RoleCustomer Role = "customer"
	RoleManager  Role = "manager"
	RoleAdmin    Role = "admin"
)

var validRoles = []Role{
	RoleGuest,
	RoleCustomer,
	RoleManager,
	RoleAdmin,
}

// validAccountRoles are the roles an account record may carry.
var validAccountRoles = []Role{
	RoleAdmin,
	RoleManager,
	RoleCustomer,
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}

// IsValid reports whether the value is a known Role.
func (r Role) IsValid() bool {
	for _, candidate := range validRoles {
		if candidate == r {
			return true
		}
	}
	return false
}

// IsStaff reports whether the role may enter the admin panel.
func (r Role) IsStaff() bool {
	return r == RoleManager || r == RoleAdmin
}

// ParseRole converts raw input into a Role.
func ParseRole(value string) (Role, error) {
	for _, candidate := range validRoles {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid role %q", value)
}

// ParseAccountRole converts raw input into a role assignable to an account.
func ParseAccountRole(value string) (Role, error) {
	for _, candidate := range validAccountRoles {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid account role %q", value)
}
