package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dwikikusuma/ja-fashion/internal/checkout/domain"
	"github.com/dwikikusuma/ja-fashion/pkg/money"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrInvalidPromo       = errors.New("invalid promo code")
	ErrProductUnavailable = errors.New("product unavailable")
)

type Service struct {
	Cart     CartReader
	Catalog  CatalogReader
	Shipping ShippingRates
	Orders   OrderWriter
	Settings Settings

	log           *slog.Logger
	maxConcurrent int
}

type Deps struct {
	Cart     CartReader
	Catalog  CatalogReader
	Shipping ShippingRates
	Orders   OrderWriter
	Settings Settings
	Log      *slog.Logger
}

func NewService(d Deps, maxConcurrent int) *Service {
	if maxConcurrent <= 0 {
		maxConcurrent = 10
	}
	if d.Log == nil {
		d.Log = slog.Default()
	}

	return &Service{
		Cart:          d.Cart,
		Catalog:       d.Catalog,
		Shipping:      d.Shipping,
		Orders:        d.Orders,
		Settings:      d.Settings,
		log:           d.Log,
		maxConcurrent: maxConcurrent,
	}
}

// LookupPromo matches code case-insensitively. A blank code yields nil.
func (s *Service) LookupPromo(code string) (*domain.Promo, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, nil
	}
	for _, p := range s.Settings.Get().PromoCodes {
		if strings.EqualFold(p.Code, code) {
			return &domain.Promo{
				Code:        p.Code,
				Percent:     decimal.NewFromFloat(p.Percent),
				Description: p.Description,
			}, nil
		}
	}
	return nil, ErrInvalidPromo
}

// ShippingFor uses the city's delivery rate when known, else the flat rate.
func (s *Service) ShippingFor(ctx context.Context, city string) (money.Amount, error) {
	flat := money.FromRupees(s.Settings.Get().FlatShipping)
	city = strings.TrimSpace(city)
	if city == "" || s.Shipping == nil {
		return flat, nil
	}
	cost, ok, err := s.Shipping.ShippingFor(ctx, city)
	if err != nil {
		s.log.Warn("city shipping lookup failed, using flat rate", slog.String("city", city), slog.Any("err", err))
		return flat, nil
	}
	if !ok {
		return flat, nil
	}
	return cost, nil
}

type QuoteInput struct {
	OwnerID   string
	PromoCode string
	City      string
}

// Quote prices the owner's cart against the live catalog.
func (s *Service) Quote(ctx context.Context, in QuoteInput) (domain.Quote, error) {
	if strings.TrimSpace(in.OwnerID) == "" {
		return domain.Quote{}, ErrInvalidInput
	}
	promo, err := s.LookupPromo(in.PromoCode)
	if err != nil {
		return domain.Quote{}, err
	}

	items, err := s.Cart.Lines(ctx, in.OwnerID)
	if err != nil {
		return domain.Quote{}, err
	}
	if len(items) == 0 {
		return domain.Quote{}, ErrEmptyCart
	}

	lines, err := s.price(ctx, items)
	if err != nil {
		return domain.Quote{}, err
	}

	shipping, err := s.ShippingFor(ctx, in.City)
	if err != nil {
		return domain.Quote{}, err
	}
	tax := money.FromRupees(s.Settings.Get().Tax)

	return domain.Quote{
		Lines:   lines,
		Summary: domain.Summarize(lines, promo, shipping, tax),
	}, nil
}

func (s *Service) price(ctx context.Context, items []CartLine) ([]domain.Line, error) {
	lines := make([]domain.Line, len(items))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrent)

	for idx := range items {
		g.Go(func() error {
			it := items[idx]
			if it.Quantity <= 0 {
				return fmt.Errorf("%w: quantity must be greater than zero: %d", ErrInvalidInput, it.Quantity)
			}

			product, err := s.Catalog.GetProduct(ctx, it.ProductID)
			if err != nil {
				return fmt.Errorf("failed to get product %s: %w", it.ProductID, err)
			}
			if !product.InStock {
				return fmt.Errorf("%s is out of stock: %w", product.Name, ErrProductUnavailable)
			}

			line := domain.Line{
				ProductID: product.ID,
				Name:      product.Name,
				Image:     product.Image,
				Category:  product.Category,
				Color:     product.Color,
				Size:      product.Size,
				Quantity:  it.Quantity,
				UnitPrice: product.Price,
				LineTotal: product.Price.Times(it.Quantity),
			}
			if product.OriginalPrice > product.Price {
				line.OriginalPrice = product.OriginalPrice
			}
			lines[idx] = line
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return lines, nil
}

type PlaceOrderInput struct {
	OwnerID   string
	UserID    string
	Address   domain.Address
	PromoCode string
	// KeepCart leaves the cart intact; the caller clears it with ClearCart
	// once payment has been set up.
	KeepCart bool
}

type Placement struct {
	OrderID     string       `json:"orderId"`
	Status      string       `json:"status"`
	Quote       domain.Quote `json:"quote"`
	Message     string       `json:"-"`
	WhatsAppURL string       `json:"whatsappUrl"`
}

// PlaceOrder persists the quoted cart as a pending order, empties the cart
// and builds the WhatsApp hand-off link.
func (s *Service) PlaceOrder(ctx context.Context, in PlaceOrderInput) (Placement, error) {
	if err := in.Address.Validate(); err != nil {
		return Placement{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	addr := in.Address.Normalize()

	quote, err := s.Quote(ctx, QuoteInput{OwnerID: in.OwnerID, PromoCode: in.PromoCode, City: addr.City})
	if err != nil {
		return Placement{}, err
	}

	placed, err := s.Orders.Create(ctx, OrderDraft{
		UserID:  in.UserID,
		Address: addr,
		Lines:   quote.Lines,
		Summary: quote.Summary,
	})
	if err != nil {
		return Placement{}, fmt.Errorf("create order: %w", err)
	}

	if !in.KeepCart {
		s.ClearCart(ctx, in.OwnerID, placed.ID)
	}

	msg := domain.WhatsAppMessage(quote.Lines, quote.Summary, addr)
	s.log.Info("order placed",
		slog.String("order_id", placed.ID),
		slog.Int("lines", len(quote.Lines)),
		slog.String("total", quote.Summary.Total.String()),
	)

	return Placement{
		OrderID:     placed.ID,
		Status:      placed.Status,
		Quote:       quote,
		Message:     msg,
		WhatsAppURL: domain.WhatsAppURL(s.whatsAppNumber(), msg),
	}, nil
}

// ClearCart empties the owner's cart after an order. The order stands even
// if the cart cannot be emptied.
func (s *Service) ClearCart(ctx context.Context, ownerID, orderID string) {
	if err := s.Cart.Clear(ctx, ownerID); err != nil {
		s.log.Warn("clear cart after order failed", slog.String("order_id", orderID), slog.Any("err", err))
	}
}

func (s *Service) whatsAppNumber() string {
	return s.Settings.Get().WhatsAppNumber
}

// ContactURL is the floating chat link shown on every page.
func (s *Service) ContactURL() string {
	return domain.WhatsAppURL(s.whatsAppNumber(), "")
}
