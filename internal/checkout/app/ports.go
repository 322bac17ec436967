package app

import (
	"context"
	"time"

	"github.com/dwikikusuma/ja-fashion/internal/checkout/domain"
	"github.com/dwikikusuma/ja-fashion/pkg/config"
	"github.com/dwikikusuma/ja-fashion/pkg/money"
)

type CartLine struct {
	ProductID string
	Quantity  int
}

type CartReader interface {
	Lines(ctx context.Context, ownerID string) ([]CartLine, error)
	Clear(ctx context.Context, ownerID string) error
}

type Product struct {
	ID            string
	Name          string
	Image         string
	Category      string
	Color         string
	Size          string
	Price         money.Amount
	OriginalPrice money.Amount
	InStock       bool
}

// CatalogReader returns ErrProductUnavailable for unknown products.
type CatalogReader interface {
	GetProduct(ctx context.Context, productID string) (Product, error)
}

// ShippingRates returns the delivery cost for a city; ok is false when the
// city is not in the delivery list.
type ShippingRates interface {
	ShippingFor(ctx context.Context, city string) (cost money.Amount, ok bool, err error)
}

type OrderDraft struct {
	UserID  string
	Address domain.Address
	Lines   []domain.Line
	Summary domain.Summary
}

type PlacedOrder struct {
	ID        string
	Status    string
	CreatedAt time.Time
}

// OrderWriter persists an order and its items atomically.
type OrderWriter interface {
	Create(ctx context.Context, draft OrderDraft) (PlacedOrder, error)
}

type Settings interface {
	Get() config.Storefront
}
