// Package stripe implements the payment gateway on Stripe PaymentIntents.
package stripe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/dwikikusuma/ja-fashion/internal/payment/app"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
)

type Config struct {
	SecretKey     string
	WebhookSecret string
	Currency      string
	// BaseURL overrides the API endpoint; used by tests.
	BaseURL string
}

type Gateway struct {
	api      *client.API
	currency string
	secret   string
}

func New(cfg Config) (*Gateway, error) {
	if strings.TrimSpace(cfg.SecretKey) == "" {
		return nil, errors.New("stripe: secret key is not set")
	}
	if cfg.Currency == "" {
		cfg.Currency = "pkr"
	}

	var backends *stripe.Backends
	if cfg.BaseURL != "" {
		backends = &stripe.Backends{
			API: stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
				URL:               stripe.String(cfg.BaseURL),
				MaxNetworkRetries: stripe.Int64(0),
			}),
		}
	}

	api := &client.API{}
	api.Init(cfg.SecretKey, backends)
	return &Gateway{api: api, currency: strings.ToLower(cfg.Currency), secret: cfg.WebhookSecret}, nil
}

func (g *Gateway) CreateIntent(ctx context.Context, req app.IntentRequest) (app.Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(req.Amount)),
		Currency: stripe.String(g.currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return app.Intent{}, gatewayError(err)
	}
	return app.Intent{ID: pi.ID, ClientSecret: pi.ClientSecret}, nil
}

// gatewayError keeps the processor's human-readable message.
func gatewayError(err error) error {
	var se *stripe.Error
	if errors.As(err, &se) && se.Msg != "" {
		return errors.New(se.Msg)
	}
	return err
}

// Verify checks the Stripe-Signature header and extracts the payment intent.
func (g *Gateway) Verify(payload []byte, signature string) (app.Event, error) {
	if g.secret == "" {
		return app.Event{}, errors.New("webhook secret is not set")
	}
	ev, err := webhook.ConstructEventWithOptions(payload, signature, g.secret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return app.Event{}, err
	}

	out := app.Event{ID: ev.ID, Type: string(ev.Type)}
	if !strings.HasPrefix(out.Type, "payment_intent.") || ev.Data == nil {
		return out, nil
	}

	var pi stripe.PaymentIntent
	if err := json.Unmarshal(ev.Data.Raw, &pi); err != nil {
		return app.Event{}, fmt.Errorf("decode payment intent: %w", err)
	}
	out.PaymentIntentID = pi.ID
	out.OrderID = pi.Metadata["order_id"]
	return out, nil
}
