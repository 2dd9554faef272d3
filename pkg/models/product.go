package models

import "github.com/dhruvpatel/atoz-storefront/pkg/enums"

// Product represents a catalog listing.
type Product struct {
	ID       string              `json:"id" yaml:"id"`
	Name     string              `json:"name" yaml:"name"`
	Category string              `json:"category" yaml:"category"`
	Price    float64             `json:"price" yaml:"price"`
	Stock    int                 `json:"stock" yaml:"stock"`
	Images   []string            `json:"images" yaml:"images"`
	Discount float64             `json:"discount" yaml:"discount"`
	Status   enums.ProductStatus `json:"status" yaml:"status"`
	Label    string              `json:"label,omitempty" yaml:"label,omitempty"`
}
