package users

import (
	"sync"

	"github.com/dhruvpatel/atoz-storefront/pkg/enums"
	pkgerrors "github.com/dhruvpatel/atoz-storefront/pkg/errors"
	"github.com/dhruvpatel/atoz-storefront/pkg/models"
)

// Registry holds the account records shown in the admin panel. Only a
// record's role is mutable.
type Registry struct {
	mu       sync.RWMutex
	accounts []models.Account
}

// NewRegistry seeds the account list.
func NewRegistry(accounts []models.Account) *Registry {
	return &Registry{accounts: append([]models.Account(nil), accounts...)}
}

// List returns all accounts in seed order.
func (r *Registry) List() []models.Account {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.Account(nil), r.accounts...)
}

// UpdateRole sets the account's role. Only roles assignable to accounts
// are accepted; missing ids report ok=false without error.
func (r *Registry) UpdateRole(id string, role enums.Role) (models.Account, bool, error) {
	if _, err := enums.ParseAccountRole(role.String()); err != nil {
		return models.Account{}, false, pkgerrors.New(pkgerrors.CodeValidation, "invalid account role")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.accounts {
		if r.accounts[i].ID == id {
			r.accounts[i].Role = role
			return r.accounts[i], true, nil
		}
	}
	return models.Account{}, false, nil
}
