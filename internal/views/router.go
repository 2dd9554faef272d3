package views

import (
	"sync"

	"github.com/dhruvpatel/atoz-storefront/pkg/enums"
	pkgerrors "github.com/dhruvpatel/atoz-storefront/pkg/errors"
)

const restrictedMessage = "Restricted access: staff role required"

// Router switches the active top-level panel between shop and admin.
type Router struct {
	mu     sync.RWMutex
	active enums.View
}

// NewRouter starts on the shop view.
func NewRouter() *Router {
	return &Router{active: enums.ViewShop}
}

// Current returns the active view.
func (r *Router) Current() enums.View {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.active
}

// Activate switches to the requested view. The admin view requires a
// staff role; unqualified requests leave the view unchanged.
func (r *Router) Activate(view enums.View, role enums.Role) (enums.View, error) {
	if !view.IsValid() {
		return r.Current(), pkgerrors.New(pkgerrors.CodeValidation, "invalid view")
	}
	if view == enums.ViewAdmin && !role.IsStaff() {
		return r.Current(), pkgerrors.New(pkgerrors.CodeForbidden, restrictedMessage)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.active = view
	return r.active, nil
}

// Reset forces the router back to the shop view (used on logout).
func (r *Router) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.active = enums.ViewShop
}
