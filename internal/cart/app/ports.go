package app

import (
	"context"

	"github.com/dwikikusuma/ja-fashion/internal/cart/domain"
)

// CartRepo persists one active cart per owner. Get returns ErrNotFound when
// the owner has no active cart.
type CartRepo interface {
	Get(ctx context.Context, ownerID string) (domain.Cart, error)
	GetOrCreate(ctx context.Context, ownerID string) (domain.Cart, error)
	AddItem(ctx context.Context, cartID string, item domain.CartItem) error
	SetItemQuantity(ctx context.Context, cartID, productID string, qty int) error
	RemoveItem(ctx context.Context, cartID, productID string) error
	ClearCart(ctx context.Context, cartID string) error
}

// ProductSource builds the item snapshot for a product id.
type ProductSource interface {
	Snapshot(ctx context.Context, productID string) (domain.CartItem, error)
}
