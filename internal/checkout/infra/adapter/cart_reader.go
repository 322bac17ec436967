package adapter

import (
	"context"

	cartapp "github.com/dwikikusuma/ja-fashion/internal/cart/app"
	checkoutapp "github.com/dwikikusuma/ja-fashion/internal/checkout/app"
)

type CartServiceReader struct {
	svc *cartapp.Service
}

func NewCartServiceReader(svc *cartapp.Service) *CartServiceReader {
	return &CartServiceReader{svc: svc}
}

func (r *CartServiceReader) Lines(ctx context.Context, ownerID string) ([]checkoutapp.CartLine, error) {
	cart, err := r.svc.GetCart(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	items := make([]checkoutapp.CartLine, 0, len(cart.Items))
	for _, it := range cart.Items {
		items = append(items, checkoutapp.CartLine{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
		})
	}
	return items, nil
}

func (r *CartServiceReader) Clear(ctx context.Context, ownerID string) error {
	return r.svc.Clear(ctx, ownerID)
}
