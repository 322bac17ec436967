package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	checkoutapp "github.com/dwikikusuma/ja-fashion/internal/checkout/app"
	orderapp "github.com/dwikikusuma/ja-fashion/internal/order/app"
	orderdomain "github.com/dwikikusuma/ja-fashion/internal/order/domain"
	"github.com/dwikikusuma/ja-fashion/pkg/money"
)

var (
	ErrInvalidAmount    = errors.New("amount must be a valid positive number")
	ErrInvalidSignature = errors.New("invalid webhook signature")
)

const (
	EventIntentSucceeded = "payment_intent.succeeded"
	EventIntentFailed    = "payment_intent.payment_failed"
)

type Service struct {
	gateway  Gateway
	verifier WebhookVerifier
	checkout OrderPlacer
	orders   Orders
	log      *slog.Logger
}

func NewService(gateway Gateway, verifier WebhookVerifier, checkout OrderPlacer, orders Orders, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{gateway: gateway, verifier: verifier, checkout: checkout, orders: orders, log: log}
}

// CreatePaymentIntent charges amount rupees. The amount must be finite and
// positive; it is sent to the processor in paisa.
func (s *Service) CreatePaymentIntent(ctx context.Context, amount float64) (Intent, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return Intent{}, ErrInvalidAmount
	}
	return s.gateway.CreateIntent(ctx, IntentRequest{Amount: money.FromRupees(amount)})
}

type Payment struct {
	OrderID      string       `json:"orderId"`
	ClientSecret string       `json:"clientSecret"`
	Total        money.Amount `json:"total"`
	WhatsAppURL  string       `json:"whatsappUrl"`
}

// PayForOrder places the order and opens a payment intent for its total.
// The order stays pending until the processor confirms the charge. The cart
// is emptied only once the intent exists; if the processor refuses, the
// order is cancelled and the cart is left for a retry.
func (s *Service) PayForOrder(ctx context.Context, in checkoutapp.PlaceOrderInput) (Payment, error) {
	in.KeepCart = true
	placed, err := s.checkout.PlaceOrder(ctx, in)
	if err != nil {
		return Payment{}, err
	}

	total := placed.Quote.Summary.Total
	intent, err := s.gateway.CreateIntent(ctx, IntentRequest{
		Amount:   total,
		Metadata: map[string]string{"order_id": placed.OrderID},
	})
	if err != nil {
		s.cancel(ctx, placed.OrderID)
		return Payment{}, fmt.Errorf("order %s: %w", placed.OrderID, err)
	}

	if err := s.orders.AttachPaymentIntent(ctx, placed.OrderID, intent.ID); err != nil {
		s.cancel(ctx, placed.OrderID)
		return Payment{}, fmt.Errorf("attach payment intent: %w", err)
	}
	s.checkout.ClearCart(ctx, in.OwnerID, placed.OrderID)

	return Payment{
		OrderID:      placed.OrderID,
		ClientSecret: intent.ClientSecret,
		Total:        total,
		WhatsAppURL:  placed.WhatsAppURL,
	}, nil
}

func (s *Service) cancel(ctx context.Context, orderID string) {
	if err := s.orders.SetStatus(ctx, orderID, orderdomain.StatusCancelled); err != nil {
		s.log.Error("cancel unpaid order failed", slog.String("order_id", orderID), slog.Any("err", err))
	}
}

// HandleWebhook verifies a processor notification and moves the matching
// order to paid or payment_failed. Unrelated events are acknowledged and
// ignored.
func (s *Service) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	ev, err := s.verifier.Verify(payload, signature)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	var status string
	switch ev.Type {
	case EventIntentSucceeded:
		status = orderdomain.StatusPaid
	case EventIntentFailed:
		status = orderdomain.StatusPaymentFailed
	default:
		s.log.Debug("webhook event ignored", slog.String("type", ev.Type), slog.String("event_id", ev.ID))
		return nil
	}

	orderID := ev.OrderID
	if orderID == "" {
		o, err := s.orders.ByPaymentIntent(ctx, ev.PaymentIntentID)
		if errors.Is(err, orderapp.ErrNotFound) {
			s.log.Warn("webhook for unknown payment intent", slog.String("payment_intent", ev.PaymentIntentID))
			return nil
		}
		if err != nil {
			return err
		}
		orderID = o.ID
	}

	if err := s.orders.SetStatus(ctx, orderID, status); err != nil {
		if errors.Is(err, orderapp.ErrNotFound) {
			s.log.Warn("webhook for unknown order", slog.String("order_id", orderID))
			return nil
		}
		return err
	}
	s.log.Info("order payment updated",
		slog.String("order_id", orderID),
		slog.String("status", status),
		slog.String("payment_intent", ev.PaymentIntentID),
	)
	return nil
}
