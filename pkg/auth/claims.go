package auth

import (
	"github.com/dhruvpatel/atoz-storefront/pkg/enums"
	"github.com/golang-jwt/jwt/v5"
)

// AccessTokenPayload captures the data available when minting a JWT.
type AccessTokenPayload struct {
	Name  string
	Email string
	Role  enums.Role
}

// AccessTokenClaims represents the typed JWT issued to clients.
type AccessTokenClaims struct {
	Name  string     `json:"name"`
	Email string     `json:"email,omitempty"`
	Role  enums.Role `json:"role"`
	jwt.RegisteredClaims
}
