package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dwikikusuma/ja-fashion/internal/order/domain"
	"github.com/dwikikusuma/ja-fashion/pkg/money"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("order not found")
)

type Service struct {
	repo OrderRepo
}

func NewService(repo OrderRepo) *Service {
	return &Service{repo: repo}
}

// Create validates the request, derives the totals and stores the order
// with status pending.
func (s *Service) Create(ctx context.Context, req domain.CreateOrderRequest) (domain.Order, error) {
	if err := validateCustomer(req.Customer); err != nil {
		return domain.Order{}, err
	}
	if len(req.Items) == 0 {
		return domain.Order{}, fmt.Errorf("%w: order has no items", ErrInvalidInput)
	}
	if req.Shipping < 0 || req.Tax < 0 || req.PromoDiscount < 0 {
		return domain.Order{}, fmt.Errorf("%w: shipping, tax and discount cannot be negative", ErrInvalidInput)
	}

	items := make([]domain.OrderItem, 0, len(req.Items))
	var subtotal, savings money.Amount

	for i, item := range req.Items {
		if item.Quantity <= 0 {
			return domain.Order{}, fmt.Errorf("%w: item %d: quantity must be positive, got %d", ErrInvalidInput, i, item.Quantity)
		}
		if item.Price < 0 {
			return domain.Order{}, fmt.Errorf("%w: item %d: price cannot be negative, got %d", ErrInvalidInput, i, item.Price)
		}
		if strings.TrimSpace(item.ProductID) == "" || strings.TrimSpace(item.Name) == "" {
			return domain.Order{}, fmt.Errorf("%w: item %d: product id and name are required", ErrInvalidInput, i)
		}

		line := item.Price.Times(item.Quantity)
		items = append(items, domain.OrderItem{
			ProductID:     item.ProductID,
			Name:          item.Name,
			Price:         item.Price,
			OriginalPrice: item.OriginalPrice,
			Image:         item.Image,
			Color:         item.Color,
			Size:          item.Size,
			Category:      item.Category,
			Quantity:      item.Quantity,
			LineTotal:     line,
		})

		subtotal += line
		if item.OriginalPrice > item.Price {
			savings += (item.OriginalPrice - item.Price).Times(item.Quantity)
		}
	}
	if req.PromoDiscount > subtotal {
		return domain.Order{}, fmt.Errorf("%w: discount exceeds subtotal", ErrInvalidInput)
	}

	order := domain.Order{
		UserID:        req.UserID,
		Customer:      req.Customer,
		Subtotal:      subtotal,
		Savings:       savings,
		PromoCode:     req.PromoCode,
		PromoDiscount: req.PromoDiscount,
		Shipping:      req.Shipping,
		Tax:           req.Tax,
		Total:         subtotal - req.PromoDiscount + req.Shipping + req.Tax,
		Status:        domain.StatusPending,
		Items:         items,
	}

	return s.repo.CreateOrderTx(ctx, order)
}

func validateCustomer(c domain.Customer) error {
	for _, v := range []string{c.Name, c.Phone, c.Email, c.Address, c.City, c.PostalCode} {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("%w: customer details are incomplete", ErrInvalidInput)
		}
	}
	return nil
}

// List returns the user's orders, newest first.
func (s *Service) List(ctx context.Context, userID string) ([]domain.Order, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByUser(ctx, userID, 0)
}

func (s *Service) Recent(ctx context.Context, userID string, n int) ([]domain.Order, error) {
	if strings.TrimSpace(userID) == "" || n < 1 {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByUser(ctx, userID, n)
}

func (s *Service) Get(ctx context.Context, id string) (domain.Order, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Order{}, ErrInvalidInput
	}
	return s.repo.Get(ctx, id)
}

// GetForUser hides orders that belong to another account. Guest orders
// (no user id) are visible by id, as on the confirmation page.
func (s *Service) GetForUser(ctx context.Context, id, userID string) (domain.Order, error) {
	o, err := s.Get(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}
	if o.UserID != "" && o.UserID != userID {
		return domain.Order{}, ErrNotFound
	}
	return o, nil
}

func (s *Service) SetStatus(ctx context.Context, id, status string) error {
	status = strings.ToLower(strings.TrimSpace(status))
	if strings.TrimSpace(id) == "" || !domain.ValidStatus(status) {
		return ErrInvalidInput
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *Service) AttachPaymentIntent(ctx context.Context, id, paymentIntentID string) error {
	if strings.TrimSpace(id) == "" || strings.TrimSpace(paymentIntentID) == "" {
		return ErrInvalidInput
	}
	return s.repo.SetPaymentIntent(ctx, id, paymentIntentID)
}

func (s *Service) ByPaymentIntent(ctx context.Context, paymentIntentID string) (domain.Order, error) {
	if strings.TrimSpace(paymentIntentID) == "" {
		return domain.Order{}, ErrInvalidInput
	}
	return s.repo.GetByPaymentIntent(ctx, paymentIntentID)
}
