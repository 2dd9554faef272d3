package models

import "github.com/dhruvpatel/atoz-storefront/pkg/enums"

// OrderItem is a purchased line inside an order.
type OrderItem struct {
	ID    string  `json:"id" yaml:"id"`
	Name  string  `json:"name" yaml:"name"`
	Qty   int     `json:"qty" yaml:"qty"`
	Price float64 `json:"price" yaml:"price"`
}

// Order represents a customer order. Only its status is mutable.
type Order struct {
	ID       string            `json:"id" yaml:"id"`
	Items    []OrderItem       `json:"items" yaml:"items"`
	Total    float64           `json:"total" yaml:"total"`
	Status   enums.OrderStatus `json:"status" yaml:"status"`
	Customer string            `json:"customer" yaml:"customer"`
}
