package service

import "github.com/aaravmahajanofficial/smart-shop-assistant/internal/models"

// StarterCatalog returns a fresh copy on every call, the store writes ids
// back into the slice it is given.
func StarterCatalog() []*models.Product {
	return []*models.Product{
		{
			Name:        "Laptop Pro",
			Description: "High-performance laptop for professionals",
			Price:       1299.99,
			Image:       "https://images.unsplash.com/photo-1496181133206-80ce9b88a853",
		},
		{
			Name:        "Wireless Headphones",
			Description: "Premium noise-canceling headphones",
			Price:       199.99,
			Image:       "https://images.unsplash.com/photo-1505740420928-5e560c06d30e",
		},
		{
			Name:        "Smart Watch",
			Description: "Fitness and health tracking smartwatch",
			Price:       299.99,
			Image:       "https://images.unsplash.com/photo-1523275335684-37898b6baf30",
		},
		{
			Name:        "Tablet Pro",
			Description: "Powerful tablet for creative professionals",
			Price:       799.99,
			Image:       "https://images.unsplash.com/photo-1585790050230-5dd28404ccb9",
		},
		{
			Name:        "Gaming Console",
			Description: "Next-gen gaming experience",
			Price:       499.99,
			Image:       "https://images.unsplash.com/photo-1486401899868-0e435ed85128",
		},
		{
			Name:        "Wireless Earbuds",
			Description: "True wireless earbuds with premium sound",
			Price:       149.99,
			Image:       "https://images.unsplash.com/photo-1590658268037-6bf12165a8df",
		},
	}
}
