package seed

import (
	"github.com/dhruvpatel/atoz-storefront/pkg/enums"
	"github.com/dhruvpatel/atoz-storefront/pkg/models"
)

// Defaults returns the built-in demo fixtures.
func Defaults() Fixtures {
	return Fixtures{
		Products: []models.Product{
			{
				ID:       "P1001",
				Name:     "Men's Premium Cotton Tee",
				Category: "Men's Fashion",
				Price:    1299,
				Stock:    35,
				Images: []string{
					"https://images.unsplash.com/photo-1512436991641-6745cdb1723f?q=80&w=1200&auto=format&fit=crop",
					"https://images.unsplash.com/photo-1539533113208-f6df8cc8b543?q=80&w=1200&auto=format&fit=crop",
				},
				Discount: 10,
				Status:   enums.ProductStatusActive,
				Label:    "Best Deal",
			},
			{
				ID:       "P1002",
				Name:     "Gold Accent Analog Watch",
				Category: "Accessories",
				Price:    4999,
				Stock:    18,
				Images: []string{
					"https://images.unsplash.com/photo-1524805444758-089113d48a6d?q=80&w=1200&auto=format&fit=crop",
				},
				Discount: 20,
				Status:   enums.ProductStatusActive,
				Label:    "New Arrival",
			},
			{
				ID:       "P1003",
				Name:     "Women's Silk Scarf",
				Category: "Women's Fashion",
				Price:    1499,
				Stock:    40,
				Images: []string{
					"https://images.unsplash.com/photo-1520975922284-7b12e08f7f46?q=80&w=1200&auto=format&fit=crop",
				},
				Discount: 0,
				Status:   enums.ProductStatusActive,
				Label:    "New Arrival",
			},
			{
				ID:       "P1004",
				Name:     "Smart Wireless Earbuds",
				Category: "Electronics",
				Price:    5999,
				Stock:    25,
				Images: []string{
					"https://images.unsplash.com/photo-1585386959984-a41552231658?q=80&w=1200&auto=format&fit=crop",
				},
				Discount: 15,
				Status:   enums.ProductStatusActive,
				Label:    "Best Deal",
			},
			{
				ID:       "P1005",
				Name:     "Minimal Ceramic Vase",
				Category: "Home Lifestyle",
				Price:    1799,
				Stock:    12,
				Images: []string{
					"https://images.unsplash.com/photo-1503088414719-7f87fefc2f63?q=80&w=1200&auto=format&fit=crop",
				},
				Discount: 5,
				Status:   enums.ProductStatusActive,
				Label:    "New Arrival",
			},
			{
				ID:       "P1006",
				Name:     "Kids Cotton Hoodie",
				Category: "Kids",
				Price:    999,
				Stock:    28,
				Images: []string{
					"https://images.unsplash.com/photo-1520975842061-190a2fe0baae?q=80&w=1200&auto=format&fit=crop",
				},
				Discount: 10,
				Status:   enums.ProductStatusActive,
			},
		},
		Categories: []string{
			"Men's Fashion",
			"Women's Fashion",
			"Electronics",
			"Accessories",
			"Home Lifestyle",
			"Kids",
		},
		Orders: []models.Order{
			{
				ID:       "O-10001",
				Items:    []models.OrderItem{{ID: "P1002", Name: "Gold Accent Analog Watch", Qty: 1, Price: 4999}},
				Total:    4999,
				Status:   enums.OrderStatusPending,
				Customer: "alice@example.com",
			},
			{
				ID:       "O-10002",
				Items:    []models.OrderItem{{ID: "P1006", Name: "Kids Cotton Hoodie", Qty: 2, Price: 999}},
				Total:    1998,
				Status:   enums.OrderStatusShipped,
				Customer: "bob@example.com",
			},
		},
		Accounts: []models.Account{
			{ID: "U-1", Name: "Dhruv", Role: enums.RoleAdmin, Email: "admin@atoz.com"},
			{ID: "U-2", Name: "Partner", Role: enums.RoleManager, Email: "manager@atoz.com"},
		},
		Banners: []models.Banner{
			{ID: "B-1", Title: "Festive Sale", Active: true},
			{ID: "B-2", Title: "New Arrivals Weekly", Active: true},
		},
	}
}
