package banners

import (
	"sync"

	"github.com/dhruvpatel/atoz-storefront/pkg/models"
)

// Registry holds the promotional banners. Only the active flag is
// mutable.
type Registry struct {
	mu      sync.RWMutex
	banners []models.Banner
}

// NewRegistry seeds the banner list.
func NewRegistry(banners []models.Banner) *Registry {
	return &Registry{banners: append([]models.Banner(nil), banners...)}
}

// List returns all banners in seed order.
func (r *Registry) List() []models.Banner {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.Banner(nil), r.banners...)
}

// Toggle flips the banner's active flag. Missing ids report ok=false.
func (r *Registry) Toggle(id string) (models.Banner, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.banners {
		if r.banners[i].ID == id {
			r.banners[i].Active = !r.banners[i].Active
			return r.banners[i], true
		}
	}
	return models.Banner{}, false
}
