package catalog

import (
	"fmt"
	"strings"
	"sync"

	"github.com/dhruvpatel/atoz-storefront/pkg/enums"
	pkgerrors "github.com/dhruvpatel/atoz-storefront/pkg/errors"
	"github.com/dhruvpatel/atoz-storefront/pkg/models"
	"github.com/google/uuid"
)

// AllCategories is the filter value that matches every category.
const AllCategories = "All"

// Draft holds the mutable product payload supplied by the admin form.
// Status is carried raw so Validate can report unknown values itself.
type Draft struct {
	Name     string
	Category string
	Price    float64
	Stock    int
	Images   []string
	Discount float64
	Status   enums.ProductStatus
	Label    string
}

// Store owns the product catalog and its category set. Mutations validate
// first and never abort on bad input; lookups return defensive snapshots.
type Store struct {
	mu         sync.RWMutex
	products   []models.Product
	categories []string

	// fallbackCategory is pinned to the first seed category at
	// construction. Removing a category reassigns its products here even
	// if this category was itself removed or reordered since.
	fallbackCategory string

	newID func() string
}

// NewStore seeds a catalog. The first seed category becomes the fallback
// for products orphaned by RemoveCategory.
func NewStore(products []models.Product, categories []string) (*Store, error) {
	if len(categories) == 0 {
		return nil, fmt.Errorf("at least one seed category required")
	}
	return &Store{
		products:         cloneProducts(products),
		categories:       append([]string(nil), categories...),
		fallbackCategory: categories[0],
		newID: func() string {
			return "P-" + uuid.NewString()
		},
	}, nil
}

// Validate checks a draft against the catalog rules and returns the first
// violation as a user-facing validation error.
func (s *Store) Validate(draft Draft) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.validateLocked(draft)
}

func (s *Store) validateLocked(draft Draft) error {
	if len(strings.TrimSpace(draft.Name)) < 3 {
		return pkgerrors.New(pkgerrors.CodeValidation, "Product name must be at least 3 characters")
	}
	if !s.knownCategoryLocked(draft.Category) {
		return pkgerrors.New(pkgerrors.CodeValidation, "Category is invalid")
	}
	if draft.Price <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "Price must be a positive number")
	}
	if draft.Stock < 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "Stock must be a non-negative integer")
	}
	if len(draft.Images) == 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "At least one image URL is required")
	}
	for _, image := range draft.Images {
		if !strings.HasPrefix(image, "http") {
			return pkgerrors.New(pkgerrors.CodeValidation, "Images must be valid URLs")
		}
	}
	if draft.Discount < 0 || draft.Discount > 90 {
		return pkgerrors.New(pkgerrors.CodeValidation, "Discount must be between 0 and 90")
	}
	if !draft.Status.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "Status must be Active or Draft")
	}
	return nil
}

// Create validates the draft, assigns a fresh id, and prepends the product
// (most-recent-first ordering).
func (s *Store) Create(draft Draft) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.validateLocked(draft); err != nil {
		return models.Product{}, err
	}

	product := productFromDraft(s.newID(), draft)
	s.products = append([]models.Product{product}, s.products...)
	return cloneProduct(product), nil
}

// Update validates the draft and replaces the matching product's fields,
// preserving its id. A missing id is a silent no-op (ok=false).
func (s *Store) Update(id string, draft Draft) (models.Product, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.validateLocked(draft); err != nil {
		return models.Product{}, false, err
	}

	for i := range s.products {
		if s.products[i].ID == id {
			s.products[i] = productFromDraft(id, draft)
			return cloneProduct(s.products[i]), true, nil
		}
	}
	return models.Product{}, false, nil
}

// Delete removes the product with the given id. Missing ids are no-ops.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return
		}
	}
}

// Get returns a snapshot of the product with the given id.
func (s *Store) Get(id string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.products {
		if s.products[i].ID == id {
			return cloneProduct(s.products[i]), true
		}
	}
	return models.Product{}, false
}

// List returns the full catalog, most-recent-first.
func (s *Store) List() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneProducts(s.products)
}

// Filter returns the products whose name contains query
// (case-insensitive) and whose category matches exactly, unless category
// is "All". Catalog order is preserved.
func (s *Store) Filter(query, category string) []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(query)
	matches := make([]models.Product, 0, len(s.products))
	for i := range s.products {
		p := s.products[i]
		if !strings.Contains(strings.ToLower(p.Name), needle) {
			continue
		}
		if category != AllCategories && category != "" && p.Category != category {
			continue
		}
		matches = append(matches, cloneProduct(p))
	}
	return matches
}

// AddCategory appends a new category name. Blank and duplicate names
// (case-sensitive exact match) are rejected.
func (s *Store) AddCategory(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "Category name required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.knownCategoryLocked(trimmed) {
		return pkgerrors.New(pkgerrors.CodeValidation, "Category already exists")
	}
	s.categories = append(s.categories, trimmed)
	return nil
}

// RemoveCategory drops the category and reassigns every product in it to
// the pinned fallback category. Missing names are no-ops.
func (s *Store) RemoveCategory(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.categories[:0]
	for _, c := range s.categories {
		if c != name {
			kept = append(kept, c)
		}
	}
	s.categories = kept

	for i := range s.products {
		if s.products[i].Category == name {
			s.products[i].Category = s.fallbackCategory
		}
	}
}

// Categories returns the current category set.
func (s *Store) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.categories...)
}

// CategoriesWithAll returns the category set prefixed with the "All"
// filter entry the shop renders.
func (s *Store) CategoriesWithAll() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string{AllCategories}, s.categories...)
}

// FallbackCategory reports the pinned reassignment target.
func (s *Store) FallbackCategory() string {
	return s.fallbackCategory
}

func (s *Store) knownCategoryLocked(name string) bool {
	for _, c := range s.categories {
		if c == name {
			return true
		}
	}
	return false
}

func productFromDraft(id string, draft Draft) models.Product {
	return models.Product{
		ID:       id,
		Name:     draft.Name,
		Category: draft.Category,
		Price:    draft.Price,
		Stock:    draft.Stock,
		Images:   append([]string(nil), draft.Images...),
		Discount: draft.Discount,
		Status:   draft.Status,
		Label:    draft.Label,
	}
}

func cloneProduct(p models.Product) models.Product {
	p.Images = append([]string(nil), p.Images...)
	return p
}

func cloneProducts(products []models.Product) []models.Product {
	out := make([]models.Product, len(products))
	for i := range products {
		out[i] = cloneProduct(products[i])
	}
	return out
}
