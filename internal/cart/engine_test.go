package cart

import (
	"math"
	"testing"

	"github.com/dhruvpatel/atoz-storefront/pkg/enums"
	pkgerrors "github.com/dhruvpatel/atoz-storefront/pkg/errors"
	"github.com/dhruvpatel/atoz-storefront/pkg/models"
)

type fakeCatalog struct {
	products map[string]models.Product
}

func (f *fakeCatalog) Get(id string) (models.Product, bool) {
	p, ok := f.products[id]
	return p, ok
}

type fakeToasts struct {
	kinds    []enums.ToastKind
	messages []string
}

func (f *fakeToasts) Push(kind enums.ToastKind, message string) {
	f.kinds = append(f.kinds, kind)
	f.messages = append(f.messages, message)
}

func newTestEngine(t *testing.T, products ...models.Product) (*Engine, *fakeToasts) {
	t.Helper()
	catalog := &fakeCatalog{products: map[string]models.Product{}}
	for _, p := range products {
		catalog.products[p.ID] = p
	}
	toasts := &fakeToasts{}
	engine, err := NewEngine(catalog, toasts)
	if err != nil {
		t.Fatalf("unexpected engine error: %v", err)
	}
	return engine, toasts
}

func tee() models.Product {
	return models.Product{
		ID:       "P1",
		Name:     "Cotton Tee",
		Category: "Men's Fashion",
		Price:    1000,
		Stock:    3,
		Images:   []string{"https://example.com/tee.jpg"},
		Discount: 10,
		Status:   enums.ProductStatusActive,
	}
}

func TestAddCreatesSingleLine(t *testing.T) {
	engine, toasts := newTestEngine(t, tee())

	lines, err := engine.Add("P1")
	if err != nil {
		t.Fatalf("unexpected add error: %v", err)
	}
	if len(lines) != 1 || lines[0].Qty != 1 {
		t.Fatalf("expected one line with qty 1, got %+v", lines)
	}
	if len(toasts.messages) != 1 || toasts.messages[0] != "Cotton Tee added to cart" {
		t.Fatalf("unexpected toast %v", toasts.messages)
	}
	if toasts.kinds[0] != enums.ToastKindSuccess {
		t.Fatalf("unexpected toast kind %v", toasts.kinds[0])
	}
}

func TestAddTwiceIncrementsInsteadOfDuplicating(t *testing.T) {
	engine, _ := newTestEngine(t, tee())

	engine.Add("P1")
	lines, err := engine.Add("P1")
	if err != nil {
		t.Fatalf("unexpected add error: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("re-add must not duplicate; got %d lines", len(lines))
	}
	if lines[0].Qty != 2 {
		t.Fatalf("expected qty 2, got %d", lines[0].Qty)
	}
}

func TestAddClampsToStock(t *testing.T) {
	product := tee()
	product.Stock = 1
	engine, _ := newTestEngine(t, product)

	engine.Add("P1")
	lines, _ := engine.Add("P1")
	if lines[0].Qty != 1 {
		t.Fatalf("qty must not exceed stock; got %d", lines[0].Qty)
	}
}

func TestAddUnknownProduct(t *testing.T) {
	engine, toasts := newTestEngine(t)

	_, err := engine.Add("nope")
	if err == nil {
		t.Fatal("expected not found error")
	}
	if pkgerrors.As(err).Code() != pkgerrors.CodeNotFound {
		t.Fatalf("unexpected code %s", pkgerrors.As(err).Code())
	}
	if len(toasts.messages) != 0 {
		t.Fatal("no toast expected on failed add")
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	engine, _ := newTestEngine(t, tee())
	engine.Add("P1")

	lines := engine.Remove("P1")
	if len(lines) != 0 {
		t.Fatalf("expected empty cart, got %+v", lines)
	}
	// Second remove is a no-op.
	lines = engine.Remove("P1")
	if len(lines) != 0 {
		t.Fatalf("expected empty cart, got %+v", lines)
	}
}

func TestUpdateQtyClamps(t *testing.T) {
	engine, _ := newTestEngine(t, tee())
	engine.Add("P1")

	tests := []struct {
		requested int
		stock     int
		want      int
	}{
		{requested: 2, stock: 3, want: 2},
		{requested: 0, stock: 3, want: 1},
		{requested: -10, stock: 3, want: 1},
		{requested: 99, stock: 3, want: 3},
		{requested: 5, stock: 0, want: 1},
		{requested: math.MaxInt, stock: 3, want: 3},
		{requested: math.MinInt, stock: 3, want: 1},
	}

	for _, tt := range tests {
		lines := engine.UpdateQty("P1", tt.requested, tt.stock)
		if lines[0].Qty != tt.want {
			t.Fatalf("clamp(%d, 1, %d): expected %d got %d", tt.requested, tt.stock, tt.want, lines[0].Qty)
		}
		if lines[0].Qty < 1 {
			t.Fatalf("qty fell below 1: %d", lines[0].Qty)
		}
	}
}

func TestSubtotal(t *testing.T) {
	discounted := tee() // 1000 with 10% discount
	full := models.Product{
		ID:     "P2",
		Name:   "Analog Watch",
		Price:  4999,
		Stock:  5,
		Images: []string{"https://example.com/watch.jpg"},
		Status: enums.ProductStatusActive,
	}
	engine, _ := newTestEngine(t, discounted, full)

	if engine.Subtotal() != 0 {
		t.Fatalf("empty cart subtotal must be 0, got %f", engine.Subtotal())
	}

	engine.Add("P1")
	engine.Add("P1")
	engine.Add("P2")

	want := 1000*2*0.9 + 4999
	if got := engine.Subtotal(); math.Abs(got-want) > 1e-9 {
		t.Fatalf("expected subtotal %f, got %f", want, got)
	}
}

func TestSubtotalLinearInQtyAndDecreasingInDiscount(t *testing.T) {
	base := tee()
	base.Discount = 0
	engine, _ := newTestEngine(t, base)
	engine.Add("P1")

	engine.UpdateQty("P1", 1, 3)
	one := engine.Subtotal()
	engine.UpdateQty("P1", 2, 3)
	two := engine.Subtotal()
	if math.Abs(two-2*one) > 1e-9 {
		t.Fatalf("subtotal not linear in qty: %f vs %f", two, 2*one)
	}

	discounted := tee()
	discounted.ID = "P9"
	discounted.Discount = 50
	engine2, _ := newTestEngine(t, discounted)
	engine2.Add("P9")
	engine2.UpdateQty("P9", 1, 3)
	if engine2.Subtotal() >= one {
		t.Fatalf("higher discount must lower subtotal: %f vs %f", engine2.Subtotal(), one)
	}
}

func TestClear(t *testing.T) {
	engine, _ := newTestEngine(t, tee())
	engine.Add("P1")
	engine.Clear()
	if len(engine.Items()) != 0 {
		t.Fatal("expected empty cart after clear")
	}
}

func TestItemsReturnsSnapshot(t *testing.T) {
	engine, _ := newTestEngine(t, tee())
	engine.Add("P1")

	items := engine.Items()
	items[0].Qty = 99
	items[0].Images[0] = "mutated"

	fresh := engine.Items()
	if fresh[0].Qty == 99 || fresh[0].Images[0] == "mutated" {
		t.Fatal("Items leaked internal state")
	}
}
