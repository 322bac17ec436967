package app

import (
	"context"
	"errors"
	"strings"

	"github.com/dwikikusuma/ja-fashion/internal/cart/domain"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrOutOfStock   = errors.New("product is out of stock")
)

type Service struct {
	repo     CartRepo
	products ProductSource
}

func NewService(repo CartRepo, products ProductSource) *Service {
	return &Service{
		repo:     repo,
		products: products,
	}
}

// GetCart returns the owner's cart, or an empty one when nothing was added yet.
func (s *Service) GetCart(ctx context.Context, ownerID string) (domain.Cart, error) {
	if strings.TrimSpace(ownerID) == "" {
		return domain.Cart{}, ErrInvalidInput
	}
	cart, err := s.repo.Get(ctx, ownerID)
	if errors.Is(err, ErrNotFound) {
		return domain.Cart{OwnerID: ownerID, Status: domain.StatusActive}, nil
	}
	return cart, err
}

func (s *Service) GetOrCreate(ctx context.Context, ownerID string) (domain.Cart, error) {
	if strings.TrimSpace(ownerID) == "" {
		return domain.Cart{}, ErrInvalidInput
	}
	return s.repo.GetOrCreate(ctx, ownerID)
}

// AddItem adds item to the owner's cart. Adding a product already in the
// cart increases its quantity.
func (s *Service) AddItem(ctx context.Context, ownerID string, item domain.CartItem) (domain.Cart, error) {
	if strings.TrimSpace(item.ProductID) == "" || strings.TrimSpace(item.Name) == "" || item.UnitPrice < 0 {
		return domain.Cart{}, ErrInvalidInput
	}
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	cart, err := s.GetOrCreate(ctx, ownerID)
	if err != nil {
		return domain.Cart{}, err
	}
	if err := s.repo.AddItem(ctx, cart.ID, item); err != nil {
		return domain.Cart{}, err
	}
	return s.repo.Get(ctx, ownerID)
}

// AddProduct snapshots the product from the catalog and adds it.
func (s *Service) AddProduct(ctx context.Context, ownerID, productID string, qty int) (domain.Cart, error) {
	if strings.TrimSpace(productID) == "" {
		return domain.Cart{}, ErrInvalidInput
	}
	item, err := s.products.Snapshot(ctx, productID)
	if err != nil {
		return domain.Cart{}, err
	}
	item.Quantity = qty
	return s.AddItem(ctx, ownerID, item)
}

func (s *Service) RemoveItem(ctx context.Context, ownerID, productID string) (domain.Cart, error) {
	cart, err := s.existing(ctx, ownerID, productID)
	if err != nil {
		return domain.Cart{}, err
	}
	if err := s.repo.RemoveItem(ctx, cart.ID, productID); err != nil {
		return domain.Cart{}, err
	}
	return s.repo.Get(ctx, ownerID)
}

// UpdateQuantity sets the quantity of a cart line; below one removes it.
func (s *Service) UpdateQuantity(ctx context.Context, ownerID, productID string, qty int) (domain.Cart, error) {
	if qty < 1 {
		return s.RemoveItem(ctx, ownerID, productID)
	}
	cart, err := s.existing(ctx, ownerID, productID)
	if err != nil {
		return domain.Cart{}, err
	}
	if !cart.Contains(productID) {
		return domain.Cart{}, ErrNotFound
	}
	if err := s.repo.SetItemQuantity(ctx, cart.ID, productID, qty); err != nil {
		return domain.Cart{}, err
	}
	return s.repo.Get(ctx, ownerID)
}

func (s *Service) Clear(ctx context.Context, ownerID string) error {
	cart, err := s.repo.Get(ctx, ownerID)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return s.repo.ClearCart(ctx, cart.ID)
}

// Merge folds the guest cart into the user cart and empties the guest cart.
func (s *Service) Merge(ctx context.Context, guestID, userID string) (domain.Cart, error) {
	if strings.TrimSpace(guestID) == "" || strings.TrimSpace(userID) == "" {
		return domain.Cart{}, ErrInvalidInput
	}
	if guestID == userID {
		return s.GetCart(ctx, userID)
	}

	guest, err := s.repo.Get(ctx, guestID)
	if errors.Is(err, ErrNotFound) || (err == nil && len(guest.Items) == 0) {
		return s.GetCart(ctx, userID)
	}
	if err != nil {
		return domain.Cart{}, err
	}

	user, err := s.repo.GetOrCreate(ctx, userID)
	if err != nil {
		return domain.Cart{}, err
	}
	for _, it := range guest.Items {
		if err := s.repo.AddItem(ctx, user.ID, it); err != nil {
			return domain.Cart{}, err
		}
	}
	if err := s.repo.ClearCart(ctx, guest.ID); err != nil {
		return domain.Cart{}, err
	}
	return s.repo.Get(ctx, userID)
}

func (s *Service) existing(ctx context.Context, ownerID, productID string) (domain.Cart, error) {
	if strings.TrimSpace(ownerID) == "" || strings.TrimSpace(productID) == "" {
		return domain.Cart{}, ErrInvalidInput
	}
	return s.repo.Get(ctx, ownerID)
}
