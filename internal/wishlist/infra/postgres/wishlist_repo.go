package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dwikikusuma/ja-fashion/internal/wishlist/domain"
	"github.com/dwikikusuma/ja-fashion/internal/wishlist/infra/postgres/wishlistdb"
	"github.com/dwikikusuma/ja-fashion/pkg/money"
)

type WishlistRepo struct {
	q *wishlistdb.Queries
}

func NewWishlistRepo(db *sql.DB) *WishlistRepo {
	return &WishlistRepo{q: wishlistdb.New(db)}
}

func (r *WishlistRepo) Add(ctx context.Context, ownerID string, item domain.Item) error {
	err := r.q.AddItem(ctx, wishlistdb.AddItemParams{
		OwnerID:       ownerID,
		ProductID:     item.ProductID,
		Name:          item.Name,
		Price:         int64(item.Price),
		OriginalPrice: sql.NullInt64{Int64: int64(item.OriginalPrice), Valid: item.OriginalPrice > 0},
		Image:         item.Image,
		Color:         item.Color,
		Size:          item.Size,
		Category:      item.Category,
	})
	if err != nil {
		return fmt.Errorf("add wishlist item: %w", err)
	}
	return nil
}

func (r *WishlistRepo) Remove(ctx context.Context, ownerID, productID string) error {
	if err := r.q.RemoveItem(ctx, wishlistdb.RemoveItemParams{OwnerID: ownerID, ProductID: productID}); err != nil {
		return fmt.Errorf("remove wishlist item: %w", err)
	}
	return nil
}

func (r *WishlistRepo) List(ctx context.Context, ownerID string, limit int) ([]domain.Item, error) {
	rows, err := r.q.ListItems(ctx, wishlistdb.ListItemsParams{
		OwnerID: ownerID,
		Limit:   sql.NullInt32{Int32: int32(limit), Valid: limit > 0},
	})
	if err != nil {
		return nil, fmt.Errorf("list wishlist: %w", err)
	}
	out := make([]domain.Item, 0, len(rows))
	for _, it := range rows {
		out = append(out, domain.Item{
			ProductID:     it.ProductID,
			Name:          it.Name,
			Price:         money.Amount(it.Price),
			OriginalPrice: money.Amount(it.OriginalPrice.Int64),
			Image:         it.Image,
			Color:         it.Color,
			Size:          it.Size,
			Category:      it.Category,
			AddedAt:       it.AddedAt,
		})
	}
	return out, nil
}

func (r *WishlistRepo) Contains(ctx context.Context, ownerID, productID string) (bool, error) {
	return r.q.HasItem(ctx, wishlistdb.HasItemParams{OwnerID: ownerID, ProductID: productID})
}

func (r *WishlistRepo) Count(ctx context.Context, ownerID string) (int, error) {
	n, err := r.q.CountItems(ctx, ownerID)
	return int(n), err
}
