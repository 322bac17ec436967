package adapter

import (
	"context"
	"errors"
	"time"

	catalogapp "github.com/dwikikusuma/ja-fashion/internal/catalog/app"
	"github.com/dwikikusuma/ja-fashion/internal/wishlist/app"
	"github.com/dwikikusuma/ja-fashion/internal/wishlist/domain"
)

type CatalogSource struct {
	catalog *catalogapp.Service
}

func NewCatalogSource(catalog *catalogapp.Service) *CatalogSource {
	return &CatalogSource{catalog: catalog}
}

// Snapshot allows out-of-stock products; shoppers may save them for later.
func (s *CatalogSource) Snapshot(ctx context.Context, productID string) (domain.Item, error) {
	p, err := s.catalog.ProductByID(ctx, productID)
	switch {
	case errors.Is(err, catalogapp.ErrNotFound):
		return domain.Item{}, app.ErrNotFound
	case errors.Is(err, catalogapp.ErrInvalidInput):
		return domain.Item{}, app.ErrInvalidInput
	case err != nil:
		return domain.Item{}, err
	}
	item := domain.Item{
		ProductID: p.ID,
		Name:      p.Title,
		Price:     p.Price,
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
