package app

import (
	"context"

	"github.com/dwikikusuma/ja-fashion/internal/order/domain"
)

// OrderRepo returns ErrNotFound for unknown orders. Listings are newest
// first and carry their items.
type OrderRepo interface {
	CreateOrderTx(ctx context.Context, order domain.Order) (domain.Order, error)
	Get(ctx context.Context, id string) (domain.Order, error)
	GetByPaymentIntent(ctx context.Context, paymentIntentID string) (domain.Order, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id, status string) error
	SetPaymentIntent(ctx context.Context, id, paymentIntentID string) error
}
