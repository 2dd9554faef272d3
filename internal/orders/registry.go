package orders

import (
	"sync"

	"github.com/dhruvpatel/atoz-storefront/pkg/enums"
	pkgerrors "github.com/dhruvpatel/atoz-storefront/pkg/errors"
	"github.com/dhruvpatel/atoz-storefront/pkg/models"
)

// Registry holds the demo orders. Only an order's status is mutable.
type Registry struct {
	mu     sync.RWMutex
	orders []models.Order
}

// NewRegistry seeds the order list.
func NewRegistry(orders []models.Order) *Registry {
	return &Registry{orders: cloneOrders(orders)}
}

// List returns all orders in seed order.
func (r *Registry) List() []models.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneOrders(r.orders)
}

// UpdateStatus sets the order's status. Unknown statuses are rejected;
// missing ids report ok=false without error.
func (r *Registry) UpdateStatus(id string, status enums.OrderStatus) (models.Order, bool, error) {
	if !status.IsValid() {
		return models.Order{}, false, pkgerrors.New(pkgerrors.CodeValidation, "invalid order status")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders[i].Status = status
			return cloneOrder(r.orders[i]), true, nil
		}
	}
	return models.Order{}, false, nil
}

func cloneOrder(o models.Order) models.Order {
	o.Items = append([]models.OrderItem(nil), o.Items...)
	return o
}

func cloneOrders(orders []models.Order) []models.Order {
	out := make([]models.Order, len(orders))
	for i := range orders {
		out[i] = cloneOrder(orders[i])
	}
	return out
}
