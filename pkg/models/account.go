package models

import "github.com/dhruvpatel/atoz-storefront/pkg/enums"

// Account is a user record visible in the admin panel. Only its role is
// mutable.
type Account struct {
	ID    string     `json:"id" yaml:"id"`
	Name  string     `json:"name" yaml:"name"`
	Role  enums.Role `json:"role" yaml:"role"`
	Email string     `json:"email" yaml:"email"`
}
