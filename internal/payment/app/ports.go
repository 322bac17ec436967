package app

import (
	"context"

	checkoutapp "github.com/dwikikusuma/ja-fashion/internal/checkout/app"
	orderdomain "github.com/dwikikusuma/ja-fashion/internal/order/domain"
	"github.com/dwikikusuma/ja-fashion/pkg/money"
)

type IntentRequest struct {
	Amount   money.Amount
	Metadata map[string]string
}

type Intent struct {
	ID           string
	ClientSecret string
}

// Gateway creates payment intents with the processor.
type Gateway interface {
	CreateIntent(ctx context.Context, req IntentRequest) (Intent, error)
}

// Event is a verified processor notification about a payment intent.
type Event struct {
	ID              string
	Type            string
	PaymentIntentID string
	OrderID         string
}

type WebhookVerifier interface {
	Verify(payload []byte, signature string) (Event, error)
}

type OrderPlacer interface {
	PlaceOrder(ctx context.Context, in checkoutapp.PlaceOrderInput) (checkoutapp.Placement, error)
	ClearCart(ctx context.Context, ownerID, orderID string)
}

type Orders interface {
	AttachPaymentIntent(ctx context.Context, id, paymentIntentID string) error
	SetStatus(ctx context.Context, id, status string) error
	ByPaymentIntent(ctx context.Context, paymentIntentID string) (orderdomain.Order, error)
}
