package session

import (
	"context"
	"strings"

	"github.com/dhruvpatel/atoz-storefront/pkg/config"
	"github.com/dhruvpatel/atoz-storefront/pkg/enums"
	pkgerrors "github.com/dhruvpatel/atoz-storefront/pkg/errors"
)

const invalidCredentialsMessage = "Invalid credentials for selected role"

// Credentials is the raw login form input.
type Credentials struct {
	Name          string
	Email         string
	RequestedRole enums.Role
}

// Authenticator resolves credentials to a role. The gate depends on this
// interface so the demo allow-list can be swapped for a real identity
// provider without touching the session state machine.
type Authenticator interface {
	Authenticate(ctx context.Context, creds Credentials) (enums.Role, error)
}

// AllowList is the demo authenticator: a closed name-to-role mapping,
// matched trimmed and case-insensitively. It performs no credential
// verification and must never be used outside the demo.
type AllowList struct {
	adminName   string
	managerName string
}

// NewAllowList builds the demo allow-list from config.
func NewAllowList(cfg config.DemoConfig) *AllowList {
	return &AllowList{
		adminName:   normalizeName(cfg.AdminName),
		managerName: normalizeName(cfg.ManagerName),
	}
}

// Authenticate grants admin or manager only to the configured names, each
// for its own requested role. Every other combination is rejected.
func (a *AllowList) Authenticate(_ context.Context, creds Credentials) (enums.Role, error) {
	name := normalizeName(creds.Name)

	if creds.RequestedRole == enums.RoleAdmin && name == a.adminName {
		return enums.RoleAdmin, nil
	}
	if creds.RequestedRole == enums.RoleManager && name == a.managerName {
		return enums.RoleManager, nil
	}
	return enums.RoleGuest, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
