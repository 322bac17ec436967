package app

import (
	"context"

	"github.com/dwikikusuma/ja-fashion/internal/catalog/domain"
)

type ProductRepo interface {
	List(ctx context.Context, q domain.ProductQuery) ([]domain.Product, error)
	GetBySlug(ctx context.Context, slug string) (domain.Product, error)
	GetByID(ctx context.Context, id string) (domain.Product, error)
	Search(ctx context.Context, term string) ([]domain.Product, error)
	Traditional(ctx context.Context) ([]domain.Product, error)
	DistinctColors(ctx context.Context) ([]string, error)
	DistinctSizes(ctx context.Context) ([]string, error)
}

type CityRepo interface {
	ListActive(ctx context.Context, province string) ([]domain.City, error)
	GetBySlug(ctx context.Context, slug string) (domain.City, error)
	Provinces(ctx context.Context) ([]string, error)
}

type ContentRepo interface {
	Testimonials(ctx context.Context) ([]domain.Testimonial, error)
	Portfolio(ctx context.Context) ([]domain.PortfolioItem, error)
}
