package app

import (
	"context"
	"errors"
	"strings"

	"github.com/dwikikusuma/ja-fashion/internal/catalog/domain"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	products ProductRepo
	cities   CityRepo
	content  ContentRepo
}

func NewService(products ProductRepo, cities CityRepo, content ContentRepo) *Service {
	return &Service{
		products: products,
		cities:   cities,
		content:  content,
	}
}

func (s *Service) AllProducts(ctx context.Context) ([]domain.Product, error) {
	return s.products.List(ctx, domain.ProductQuery{})
}

func (s *Service) FeaturedProducts(ctx context.Context) ([]domain.Product, error) {
	return s.products.List(ctx, domain.ProductQuery{FeaturedOnly: true})
}

func (s *Service) NewProducts(ctx context.Context) ([]domain.Product, error) {
	return s.products.List(ctx, domain.ProductQuery{NewOnly: true})
}

func (s *Service) ProductsByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, ErrInvalidInput
	}
	return s.products.List(ctx, domain.ProductQuery{Category: category})
}

func (s *Service) ProductsByColor(ctx context.Context, color string) ([]domain.Product, error) {
	color = strings.TrimSpace(color)
	if color == "" {
		return nil, ErrInvalidInput
	}
	return s.products.List(ctx, domain.ProductQuery{Color: color})
}

func (s *Service) ProductsBySize(ctx context.Context, size string) ([]domain.Product, error) {
	size = strings.TrimSpace(size)
	if size == "" {
		return nil, ErrInvalidInput
	}
	return s.products.List(ctx, domain.ProductQuery{Size: size})
}

func (s *Service) ProductBySlug(ctx context.Context, slug string) (domain.Product, error) {
	if strings.TrimSpace(slug) == "" {
		return domain.Product{}, ErrInvalidInput
	}
	return s.products.GetBySlug(ctx, strings.TrimSpace(slug))
}

func (s *Service) ProductByID(ctx context.Context, id string) (domain.Product, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Product{}, ErrInvalidInput
	}
	return s.products.GetByID(ctx, strings.TrimSpace(id))
}

// SearchProducts matches title or description. A blank term lists everything.
func (s *Service) SearchProducts(ctx context.Context, term string) ([]domain.Product, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return s.AllProducts(ctx)
	}
	return s.products.Search(ctx, term)
}

func (s *Service) TraditionalWear(ctx context.Context) ([]domain.Product, error) {
	return s.products.Traditional(ctx)
}

func (s *Service) UniqueColors(ctx context.Context) ([]string, error) {
	return s.products.DistinctColors(ctx)
}

func (s *Service) UniqueSizes(ctx context.Context) ([]string, error) {
	return s.products.DistinctSizes(ctx)
}

func (s *Service) AllCities(ctx context.Context) ([]domain.City, error) {
	return s.cities.ListActive(ctx, "")
}

func (s *Service) CitiesByProvince(ctx context.Context, province string) ([]domain.City, error) {
	province = strings.TrimSpace(province)
	if province == "" {
		return nil, ErrInvalidInput
	}
	return s.cities.ListActive(ctx, province)
}

func (s *Service) CityBySlug(ctx context.Context, slug string) (domain.City, error) {
	if strings.TrimSpace(slug) == "" {
		return domain.City{}, ErrInvalidInput
	}
	return s.cities.GetBySlug(ctx, strings.TrimSpace(slug))
}

// CityByName finds an active city by case-insensitive name.
func (s *Service) CityByName(ctx context.Context, name string) (domain.City, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.City{}, ErrInvalidInput
	}
	cities, err := s.cities.ListActive(ctx, "")
	if err != nil {
		return domain.City{}, err
	}
	for _, c := range cities {
		if strings.EqualFold(c.Name, name) {
			return c, nil
		}
	}
	return domain.City{}, ErrNotFound
}

func (s *Service) UniqueProvinces(ctx context.Context) ([]string, error) {
	return s.cities.Provinces(ctx)
}

func (s *Service) Testimonials(ctx context.Context) ([]domain.Testimonial, error) {
	return s.content.Testimonials(ctx)
}

func (s *Service) Portfolio(ctx context.Context) ([]domain.PortfolioItem, error) {
	return s.content.Portfolio(ctx)
}

// Browse lists products matching f. Search goes to the content store, the
// remaining criteria are applied in process.
func (s *Service) Browse(ctx context.Context, f domain.Filter) ([]domain.Product, error) {
	products, err := s.SearchProducts(ctx, f.Search)
	if err != nil {
		return nil, err
	}
	f.Search = ""
	return ApplyFilter(products, f), nil
}
