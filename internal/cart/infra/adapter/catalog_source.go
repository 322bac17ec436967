package adapter

import (
	"context"
	"errors"
	"time"

	"github.com/dwikikusuma/ja-fashion/internal/cart/app"
	"github.com/dwikikusuma/ja-fashion/internal/cart/domain"
	catalogapp "github.com/dwikikusuma/ja-fashion/internal/catalog/app"
)

type CatalogSource struct {
	catalog *catalogapp.Service
}

func NewCatalogSource(catalog *catalogapp.Service) *CatalogSource {
	return &CatalogSource{catalog: catalog}
}

func (s *CatalogSource) Snapshot(ctx context.Context, productID string) (domain.CartItem, error) {
	p, err := s.catalog.ProductByID(ctx, productID)
	switch {
	case errors.Is(err, catalogapp.ErrNotFound):
		return domain.CartItem{}, app.ErrNotFound
	case errors.Is(err, catalogapp.ErrInvalidInput):
		return domain.CartItem{}, app.ErrInvalidInput
	case err != nil:
		return domain.CartItem{}, err
	}
	if !p.InStock {
		return domain.CartItem{}, app.ErrOutOfStock
	}

	item := domain.CartItem{
		ProductID: p.ID,
		Name:      p.Title,
		UnitPrice: p.Price,
		Image:     p.ImageURL,
		Color:     p.Color,
		Size:      p.Size,
		Category:  p.Category,
		AddedAt:   time.Now().UTC(),
	}
	if p.OnSale() {
		item.OriginalPrice = p.OriginalPrice
	}
	return item, nil
}
