package app

import (
	"slices"
	"sort"
	"strings"

	"github.com/dwikikusuma/ja-fashion/internal/catalog/domain"
)

// ApplyFilter returns the products matching f, sorted by f.SortBy.
// The input slice is not modified.
func ApplyFilter(products []domain.Product, f domain.Filter) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	search := strings.ToLower(strings.TrimSpace(f.Search))

	for _, p := range products {
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Title), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		if !matchAny(f.Categories, p.Category) || !matchAny(f.Colors, p.Color) || !matchAny(f.Sizes, p.Size) {
			continue
		}
		if p.Price < f.MinPrice {
			continue
		}
		if f.MaxPrice > 0 && p.Price > f.MaxPrice {
			continue
		}
		if f.InStockOnly && !p.InStock {
			continue
		}
		out = append(out, p)
	}

	sortProducts(out, f.SortBy)
	return out
}

func matchAny(wanted []string, v string) bool {
	if len(wanted) == 0 {
		return true
	}
	return slices.ContainsFunc(wanted, func(w string) bool {
		return strings.EqualFold(strings.TrimSpace(w), v)
	})
}

func sortProducts(ps []domain.Product, by string) {
	var less func(a, b domain.Product) bool
	switch by {
	case domain.SortOldest:
		less = func(a, b domain.Product) bool { return a.CreatedAt < b.CreatedAt }
	case domain.SortPriceLow:
		less = func(a, b domain.Product) bool { return a.Price < b.Price }
	case domain.SortPriceHigh:
		less = func(a, b domain.Product) bool { return a.Price > b.Price }
	case domain.SortNameAZ:
		less = func(a, b domain.Product) bool { return strings.ToLower(a.Title) < strings.ToLower(b.Title) }
	case domain.SortNameZA:
		less = func(a, b domain.Product) bool { return strings.ToLower(a.Title) > strings.ToLower(b.Title) }
	case domain.SortPopular:
		less = func(a, b domain.Product) bool {
			if a.Reviews != b.Reviews {
				return a.Reviews > b.Reviews
			}
			return a.Rating > b.Rating
		}
	default:
		// newest: ISO timestamps sort lexically
		less = func(a, b domain.Product) bool { return a.CreatedAt > b.CreatedAt }
	}
	sort.SliceStable(ps, func(i, j int) bool { return less(ps[i], ps[j]) })
}
