// Package memory serves the catalog from an in-process snapshot. It backs
// STORE=memory and the tests of every module that reads products.
package memory

import (
	"context"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/dwikikusuma/ja-fashion/internal/catalog/app"
	"github.com/dwikikusuma/ja-fashion/internal/catalog/domain"
	"github.com/dwikikusuma/ja-fashion/pkg/money"
)

type Catalog struct {
	mu           sync.RWMutex
	products     []domain.Product
	traditional  []domain.Product
	cities       []domain.City
	testimonials []domain.Testimonial
	portfolio    []domain.PortfolioItem
}

// Snapshot is the content a Catalog starts with.
type Snapshot struct {
	Products     []domain.Product
	Traditional  []domain.Product
	Cities       []domain.City
	Testimonials []domain.Testimonial
	Portfolio    []domain.PortfolioItem
}

func New(s Snapshot) *Catalog {
	return &Catalog{
		products:     slices.Clone(s.Products),
		traditional:  slices.Clone(s.Traditional),
		cities:       slices.Clone(s.Cities),
		testimonials: slices.Clone(s.Testimonials),
		portfolio:    slices.Clone(s.Portfolio),
	}
}

// SetPrice changes a product's price in place.
func (c *Catalog) SetPrice(id string, price money.Amount) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.products {
		if c.products[i].ID == id {
			c.products[i].Price = price
		}
	}
}

func (c *Catalog) List(ctx context.Context, q domain.ProductQuery) ([]domain.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.Product, 0, len(c.products))
	for _, p := range c.products {
		if q.FeaturedOnly && !p.Featured {
			continue
		}
		if q.NewOnly && !p.IsNew {
			continue
		}
		if q.Category != "" && p.Category != q.Category {
			continue
		}
		if q.Color != "" && p.Color != q.Color {
			continue
		}
		if q.Size != "" && p.Size != q.Size {
			continue
		}
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	return out, nil
}

func (c *Catalog) GetBySlug(ctx context.Context, slug string) (domain.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, p := range c.products {
		if p.Slug == slug {
			return p, nil
		}
	}
	return domain.Product{}, app.ErrNotFound
}

func (c *Catalog) GetByID(ctx context.Context, id string) (domain.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, p := range slices.Concat(c.products, c.traditional) {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, app.ErrNotFound
}

func (c *Catalog) Search(ctx context.Context, term string) ([]domain.Product, error) {
	all, _ := c.List(ctx, domain.ProductQuery{})
	term = strings.ToLower(term)
	out := all[:0]
	for _, p := range all {
		if strings.Contains(strings.ToLower(p.Title), term) || strings.Contains(strings.ToLower(p.Description), term) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (c *Catalog) Traditional(ctx context.Context) ([]domain.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.traditional), nil
}

func (c *Catalog) DistinctColors(ctx context.Context) ([]string, error) {
	return c.distinct(func(p domain.Product) string { return p.Color }), nil
}

func (c *Catalog) DistinctSizes(ctx context.Context) ([]string, error) {
	return c.distinct(func(p domain.Product) string { return p.Size }), nil
}

func (c *Catalog) distinct(field func(domain.Product) string) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []string
	for _, p := range c.products {
		if v := field(p); v != "" && !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}

func (c *Catalog) Testimonials(ctx context.Context) ([]domain.Testimonial, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.testimonials), nil
}

func (c *Catalog) Portfolio(ctx context.Context) ([]domain.PortfolioItem, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.portfolio), nil
}

func (c *Catalog) Cities() app.CityRepo { return cities{c} }

type cities struct{ c *Catalog }

func (r cities) ListActive(ctx context.Context, province string) ([]domain.City, error) {
	r.c.mu.RLock()
	defer r.c.mu.RUnlock()
	var out []domain.City
	for _, city := range r.c.cities {
		if !city.IsActive || (province != "" && city.Province != province) {
			continue
		}
		out = append(out, city)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r cities) GetBySlug(ctx context.Context, slug string) (domain.City, error) {
	r.c.mu.RLock()
	defer r.c.mu.RUnlock()
	for _, city := range r.c.cities {
		if city.Slug == slug {
			return city, nil
		}
	}
	return domain.City{}, app.ErrNotFound
}

func (r cities) Provinces(ctx context.Context) ([]string, error) {
	active, _ := r.ListActive(ctx, "")
	var out []string
	for _, city := range active {
		if city.Province != "" && !slices.Contains(out, city.Province) {
			out = append(out, city.Province)
		}
	}
	sort.Strings(out)
	return out, nil
}
