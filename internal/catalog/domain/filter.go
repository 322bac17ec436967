package domain

import "github.com/dwikikusuma/ja-fashion/pkg/money"

const (
	SortNewest    = "newest"
	SortOldest    = "oldest"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortNameAZ    = "name-az"
	SortNameZA    = "name-za"
	SortPopular   = "popular"
)

// Filter is the catalog sidebar state.
type Filter struct {
	Search      string
	Categories  []string
	Colors      []string
	Sizes       []string
	MinPrice    money.Amount
	MaxPrice    money.Amount // zero means unbounded
	InStockOnly bool
	SortBy      string
}
