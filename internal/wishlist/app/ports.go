package app

import (
	"context"

	"github.com/dwikikusuma/ja-fashion/internal/wishlist/domain"
)

// WishlistRepo lists items newest first. Add leaves an existing row untouched.
type WishlistRepo interface {
	Add(ctx context.Context, ownerID string, item domain.Item) error
	Remove(ctx context.Context, ownerID, productID string) error
	List(ctx context.Context, ownerID string, limit int) ([]domain.Item, error)
	Contains(ctx context.Context, ownerID, productID string) (bool, error)
	Count(ctx context.Context, ownerID string) (int, error)
}

type ProductSource interface {
	Snapshot(ctx context.Context, productID string) (domain.Item, error)
}
