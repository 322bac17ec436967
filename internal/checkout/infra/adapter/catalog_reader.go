package adapter

import (
	"context"
	"errors"

	catalogapp "github.com/dwikikusuma/ja-fashion/internal/catalog/app"
	checkoutapp "github.com/dwikikusuma/ja-fashion/internal/checkout/app"
	"github.com/dwikikusuma/ja-fashion/pkg/money"
)

type CatalogServiceReader struct {
	svc *catalogapp.Service
}

func NewCatalogServiceReader(svc *catalogapp.Service) *CatalogServiceReader {
	return &CatalogServiceReader{svc: svc}
}

func (r *CatalogServiceReader) GetProduct(ctx context.Context, productID string) (checkoutapp.Product, error) {
	p, err := r.svc.ProductByID(ctx, productID)
	if errors.Is(err, catalogapp.ErrNotFound) {
		return checkoutapp.Product{}, checkoutapp.ErrProductUnavailable
	}
	if err != nil {
		return checkoutapp.Product{}, err
	}

	return checkoutapp.Product{
		ID:            p.ID,
		Name:          p.Title,
		Image:         p.ImageURL,
		Category:      p.Category,
		Color:         p.Color,
		Size:          p.Size,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		InStock:       p.InStock,
	}, nil
}

// ShippingFor looks the city up in the content store's delivery list.
func (r *CatalogServiceReader) ShippingFor(ctx context.Context, city string) (money.Amount, bool, error) {
	c, err := r.svc.CityByName(ctx, city)
	if errors.Is(err, catalogapp.ErrNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return c.ShippingCost, true, nil
}
