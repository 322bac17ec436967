package domain

import "github.com/dwikikusuma/ja-fashion/pkg/money"

type Product struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Slug          string       `json:"slug"`
	Price         money.Amount `json:"price"`
	OriginalPrice money.Amount `json:"originalPrice,omitempty"`
	Description   string       `json:"description"`
	Category      string       `json:"category"`
	Color         string       `json:"color,omitempty"`
	Size          string       `json:"size,omitempty"`
	InStock       bool         `json:"inStock"`
	Featured      bool         `json:"featured"`
	IsNew         bool         `json:"isNew"`
	ImageURL      string       `json:"imageUrl"`
	Rating        float64      `json:"rating,omitempty"`
	Reviews       int          `json:"reviews,omitempty"`
	CreatedAt     string       `json:"createdAt,omitempty"`
}

// OnSale reports whether the product carries a higher original price.
func (p Product) OnSale() bool {
	return p.OriginalPrice > p.Price
}

// ProductQuery narrows a product listing. Zero value lists everything.
type ProductQuery struct {
	FeaturedOnly bool
	NewOnly      bool
	Category     string
	Color        string
	Size         string
}
