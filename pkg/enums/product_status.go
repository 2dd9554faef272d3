package enums

import "fmt"

// ProductStatus marks whether a product is live in the shop or a draft.
type ProductStatus string

const (
	ProductStatusActive ProductStatus = "Active"
	ProductStatusDraft  ProductStatus = "Draft"
)

var validProductStatuses = []ProductStatus{
	ProductStatusActive,
	ProductStatusDraft,
}

// String implements fmt.Stringer.
func (s ProductStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known ProductStatus.
func (s ProductStatus) IsValid() bool {
	for _, candidate := range validProductStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseProductStatus converts raw input into a ProductStatus.
func ParseProductStatus(value string) (ProductStatus, error) {
	for _, candidate := range validProductStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid product status %q", value)
}
