package memory

import (
	"github.com/dwikikusuma/ja-fashion/internal/catalog/domain"
	"github.com/dwikikusuma/ja-fashion/pkg/money"
)

// Seed is a small demo catalog for local development without a content store.
func Seed() Snapshot {
	return Snapshot{
		Products: []domain.Product{
			{
				ID: "prod-ajrak-shawl", Title: "Classic Ajrak Shawl", Slug: "classic-ajrak-shawl",
				Price: money.FromRupees(2500), OriginalPrice: money.FromRupees(3000),
				Description: "Hand block-printed ajrak in indigo and madder red.",
				Category:    "Shawls", Color: "Red", Size: "Free", InStock: true, Featured: true,
				Rating: 4.8, Reviews: 42, CreatedAt: "2024-05-01T10:00:00Z",
			},
			{
				ID: "prod-indigo-dupatta", Title: "Indigo Dupatta", Slug: "indigo-dupatta",
				Price:       money.FromRupees(1800),
				Description: "Lightweight cotton dupatta dyed with natural indigo.",
				Category:    "Dupattas", Color: "Blue", Size: "Free", InStock: true, IsNew: true,
				Rating: 4.5, Reviews: 12, CreatedAt: "2024-06-10T10:00:00Z",
			},
			{
				ID: "prod-ajrak-kurta", Title: "Ajrak Print Kurta", Slug: "ajrak-print-kurta",
				Price: money.FromRupees(4200), OriginalPrice: money.FromRupees(4800),
				Description: "Straight cut kurta in ajrak print lawn.",
				Category:    "Kurtas", Color: "Red", Size: "M", InStock: true, Featured: true, IsNew: true,
				Rating: 4.7, Reviews: 30, CreatedAt: "2024-06-01T10:00:00Z",
			},
			{
				ID: "prod-black-kurta", Title: "Embroidered Black Kurta", Slug: "embroidered-black-kurta",
				Price:       money.FromRupees(5500),
				Description: "Mirror work embroidery on black cotton.",
				Category:    "Kurtas", Color: "Black", Size: "L", InStock: false,
				Rating: 4.2, Reviews: 8, CreatedAt: "2024-03-15T10:00:00Z",
			},
		},
		Traditional: []domain.Product{
			{
				ID: "cape-sindhi-1", Title: "Sindhi Cape", Slug: "sindhi-cape",
				Price: money.FromRupees(6500), Category: "sindhiCape", Color: "Maroon", Size: "M",
				InStock: true, CreatedAt: "2024-04-01T10:00:00Z",
			},
			{
				ID: "dress-balochi-1", Title: "Balochi Dress", Slug: "balochi-dress",
				Price: money.FromRupees(9500), Category: "balochiDress", Color: "Green", Size: "L",
				InStock: true, IsNew: true, CreatedAt: "2024-05-20T10:00:00Z",
			},
		},
		Cities: []domain.City{
			{ID: "city-karachi", Name: "Karachi", Slug: "karachi", Province: "Sindh", Country: "Pakistan", ShippingCost: money.FromRupees(200), DeliveryDays: 2, IsActive: true},
			{ID: "city-hyderabad", Name: "Hyderabad", Slug: "hyderabad", Province: "Sindh", Country: "Pakistan", ShippingCost: money.FromRupees(250), DeliveryDays: 3, IsActive: true},
			{ID: "city-lahore", Name: "Lahore", Slug: "lahore", Province: "Punjab", Country: "Pakistan", ShippingCost: money.FromRupees(350), DeliveryDays: 4, IsActive: true},
			{ID: "city-quetta", Name: "Quetta", Slug: "quetta", Province: "Balochistan", Country: "Pakistan", ShippingCost: money.FromRupees(450), DeliveryDays: 6, IsActive: false},
		},
		Testimonials: []domain.Testimonial{
			{ID: "t1", CustomerName: "Sana K.", Text: "The ajrak shawl is beautiful and arrived in two days."},
			{ID: "t2", CustomerName: "Bilal A.", Text: "Great quality kurta, ordering again for Eid."},
		},
		Portfolio: []domain.PortfolioItem{
			{ID: "pf1", Title: "Bridal Ajrak Set", Price: money.FromRupees(15000), Category: "Bridal", Color: "Red", Sizes: []string{"S", "M"}, InStock: true, Featured: true},
		},
	}
}
