package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dwikikusuma/ja-fashion/internal/cart/app"
	"github.com/dwikikusuma/ja-fashion/internal/cart/domain"
	"github.com/dwikikusuma/ja-fashion/internal/cart/infra/postgres/cartdb"
	"github.com/dwikikusuma/ja-fashion/pkg/money"
	"github.com/dwikikusuma/ja-fashion/pkg/postgres"
	"github.com/google/uuid"
)

type CartRepo struct {
	q *cartdb.Queries
}

func NewCartRepo(db *sql.DB) *CartRepo {
	return &CartRepo{
		q: cartdb.New(db),
	}
}

func (r *CartRepo) Get(ctx context.Context, ownerID string) (domain.Cart, error) {
	cart, err := r.q.GetActiveCartByOwner(ctx, ownerID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Cart{}, app.ErrNotFound
	}
	if err != nil {
		return domain.Cart{}, fmt.Errorf("get cart: %w", err)
	}

	rows, err := r.q.ListCartItems(ctx, cart.ID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("list cart items: %w", err)
	}

	items := make([]domain.CartItem, 0, len(rows))
	for _, it := range rows {
		items = append(items, domain.CartItem{
			ProductID:     it.ProductID,
			Name:          it.Name,
			UnitPrice:     money.Amount(it.UnitPrice),
			OriginalPrice: money.Amount(it.OriginalPrice.Int64),
			Image:         it.Image,
			Color:         it.Color,
			Size:          it.Size,
			Category:      it.Category,
			Quantity:      int(it.Quantity),
			AddedAt:       it.AddedAt,
		})
	}

	return domain.Cart{
		ID:        cart.ID.String(),
		OwnerID:   cart.OwnerID,
		Status:    cart.Status,
		Items:     items,
		CreatedAt: cart.CreatedAt,
		UpdatedAt: cart.UpdatedAt,
	}, nil
}

func (r *CartRepo) GetOrCreate(ctx context.Context, ownerID string) (domain.Cart, error) {
	cart, err := r.Get(ctx, ownerID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, app.ErrNotFound) {
		return domain.Cart{}, err
	}

	_, createErr := r.q.CreateActiveCart(ctx, cartdb.CreateActiveCartParams{
		ID:      uuid.New(),
		OwnerID: ownerID,
	})
	if createErr == nil || postgres.IsUniqueViolation(createErr) {
		// a concurrent caller may have won the partial unique index
		return r.Get(ctx, ownerID)
	}
	return domain.Cart{}, fmt.Errorf("create cart: %w", createErr)
}

func (r *CartRepo) AddItem(ctx context.Context, cartID string, item domain.CartItem) error {
	cartUUID, err := uuid.Parse(cartID)
	if err != nil {
		return app.ErrInvalidInput
	}

	_, err = r.q.UpsertAddItemIncrement(ctx, cartdb.UpsertAddItemIncrementParams{
		CartID:        cartUUID,
		ProductID:     item.ProductID,
		Name:          item.Name,
		UnitPrice:     int64(item.UnitPrice),
		OriginalPrice: sql.NullInt64{Int64: int64(item.OriginalPrice), Valid: item.OriginalPrice > 0},
		Image:         item.Image,
		Color:         item.Color,
		Size:          item.Size,
		Category:      item.Category,
		Quantity:      int32(item.Quantity),
	})
	if err != nil {
		return fmt.Errorf("add cart item: %w", err)
	}
	return r.q.TouchCart(ctx, cartUUID)
}

func (r *CartRepo) SetItemQuantity(ctx context.Context, cartID, productID string, qty int) error {
	cartUUID, err := uuid.Parse(cartID)
	if err != nil {
		return app.ErrInvalidInput
	}

	n, err := r.q.SetItemQuantity(ctx, cartdb.SetItemQuantityParams{
		CartID:    cartUUID,
		ProductID: productID,
		Quantity:  int32(qty),
	})
	if err != nil {
		return fmt.Errorf("set cart item quantity: %w", err)
	}
	if n == 0 {
		return app.ErrNotFound
	}
	return r.q.TouchCart(ctx, cartUUID)
}

func (r *CartRepo) RemoveItem(ctx context.Context, cartID, productID string) error {
	cartUUID, err := uuid.Parse(cartID)
	if err != nil {
		return app.ErrInvalidInput
	}

	if err := r.q.RemoveItem(ctx, cartdb.RemoveItemParams{CartID: cartUUID, ProductID: productID}); err != nil {
		return fmt.Errorf("remove cart item: %w", err)
	}
	return r.q.TouchCart(ctx, cartUUID)
}

func (r *CartRepo) ClearCart(ctx context.Context, cartID string) error {
	cartUUID, err := uuid.Parse(cartID)
	if err != nil {
		return app.ErrInvalidInput
	}

	if err := r.q.ClearCart(ctx, cartUUID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return r.q.TouchCart(ctx, cartUUID)
}
