package cart

import (
	"fmt"
	"sync"

	"github.com/dhruvpatel/atoz-storefront/pkg/enums"
	pkgerrors "github.com/dhruvpatel/atoz-storefront/pkg/errors"
	"github.com/dhruvpatel/atoz-storefront/pkg/models"
)

// Line ties a catalog product to a requested quantity.
type Line struct {
	models.Product
	Qty int `json:"qty"`
}

type productLookup interface {
	Get(id string) (models.Product, bool)
}

type notifier interface {
	Push(kind enums.ToastKind, message string)
}

// Engine owns the demo cart: one line per product id, quantities clamped
// to the product's stock.
type Engine struct {
	mu      sync.Mutex
	lines   []Line
	catalog productLookup
	toasts  notifier
}

// NewEngine wires the cart against the catalog and the toast hub.
func NewEngine(catalog productLookup, toasts notifier) (*Engine, error) {
	if catalog == nil {
		return nil, fmt.Errorf("product lookup required")
	}
	if toasts == nil {
		return nil, fmt.Errorf("notifier required")
	}
	return &Engine{catalog: catalog, toasts: toasts}, nil
}

// Add puts one unit of the product in the cart. Re-adding increments the
// existing line's quantity, clamped to the product's current stock, and
// never creates a second line. Emits a transient success toast.
func (e *Engine) Add(productID string) ([]Line, error) {
	product, ok := e.catalog.Get(productID)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}

	e.mu.Lock()
	found := false
	for i := range e.lines {
		if e.lines[i].ID == product.ID {
			qty := e.lines[i].Qty + 1
			if qty > product.Stock {
				qty = product.Stock
			}
			e.lines[i].Qty = qty
			found = true
			break
		}
	}
	if !found {
		e.lines = append(e.lines, Line{Product: product, Qty: 1})
	}
	snapshot := e.snapshotLocked()
	e.mu.Unlock()

	e.toasts.Push(enums.ToastKindSuccess, fmt.Sprintf("%s added to cart", product.Name))
	return snapshot, nil
}

// Remove deletes the line with the given product id. Missing ids are
// no-ops.
func (e *Engine) Remove(productID string) []Line {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.lines {
		if e.lines[i].ID == productID {
			e.lines = append(e.lines[:i], e.lines[i+1:]...)
			break
		}
	}
	return e.snapshotLocked()
}

// UpdateQty sets the line's quantity to clamp(requested, 1, stock). The
// result is always at least 1 and never above stock, whatever the caller
// requested.
func (e *Engine) UpdateQty(productID string, requested, stock int) []Line {
	qty := requested
	if qty > stock {
		qty = stock
	}
	if qty < 1 {
		qty = 1
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.lines {
		if e.lines[i].ID == productID {
			e.lines[i].Qty = qty
			break
		}
	}
	return e.snapshotLocked()
}

// Subtotal sums price * qty * (1 - discount/100) over all lines. The
// result is unrounded; display formatting is the view layer's job.
func (e *Engine) Subtotal() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	var sum float64
	for _, line := range e.lines {
		sum += line.Price * float64(line.Qty) * (1 - line.Discount/100)
	}
	return sum
}

// Items returns a snapshot of the cart lines.
func (e *Engine) Items() []Line {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

// Clear empties the cart.
func (e *Engine) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.lines = nil
}

func (e *Engine) snapshotLocked() []Line {
	out := make([]Line, len(e.lines))
	for i, line := range e.lines {
		line.Images = append([]string(nil), line.Images...)
		out[i] = line
	}
	return out
}
