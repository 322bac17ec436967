package app

import (
	"context"
	"errors"
	"strings"

	"github.com/dwikikusuma/ja-fashion/internal/wishlist/domain"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	repo     WishlistRepo
	products ProductSource
}

func NewService(repo WishlistRepo, products ProductSource) *Service {
	return &Service{repo: repo, products: products}
}

// Add saves productID for the owner. Saving twice keeps a single entry.
func (s *Service) Add(ctx context.Context, ownerID, productID string) (domain.Item, error) {
	if strings.TrimSpace(ownerID) == "" || strings.TrimSpace(productID) == "" {
		return domain.Item{}, ErrInvalidInput
	}
	item, err := s.products.Snapshot(ctx, productID)
	if err != nil {
		return domain.Item{}, err
	}
	if err := s.repo.Add(ctx, ownerID, item); err != nil {
		return domain.Item{}, err
	}
	return item, nil
}

func (s *Service) Remove(ctx context.Context, ownerID, productID string) error {
	if strings.TrimSpace(ownerID) == "" || strings.TrimSpace(productID) == "" {
		return ErrInvalidInput
	}
	return s.repo.Remove(ctx, ownerID, productID)
}

// Toggle adds the product when absent and removes it otherwise. It reports
// whether the product is saved afterwards.
func (s *Service) Toggle(ctx context.Context, ownerID, productID string) (bool, error) {
	saved, err := s.Contains(ctx, ownerID, productID)
	if err != nil {
		return false, err
	}
	if saved {
		return false, s.Remove(ctx, ownerID, productID)
	}
	_, err = s.Add(ctx, ownerID, productID)
	return err == nil, err
}

func (s *Service) Contains(ctx context.Context, ownerID, productID string) (bool, error) {
	if strings.TrimSpace(ownerID) == "" || strings.TrimSpace(productID) == "" {
		return false, ErrInvalidInput
	}
	return s.repo.Contains(ctx, ownerID, productID)
}

func (s *Service) Count(ctx context.Context, ownerID string) (int, error) {
	if strings.TrimSpace(ownerID) == "" {
		return 0, ErrInvalidInput
	}
	return s.repo.Count(ctx, ownerID)
}

func (s *Service) List(ctx context.Context, ownerID string) ([]domain.Item, error) {
	if strings.TrimSpace(ownerID) == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.List(ctx, ownerID, 0)
}

// Recent returns the n most recently saved items.
func (s *Service) Recent(ctx context.Context, ownerID string, n int) ([]domain.Item, error) {
	if strings.TrimSpace(ownerID) == "" || n < 1 {
		return nil, ErrInvalidInput
	}
	return s.repo.List(ctx, ownerID, n)
}

// Merge moves a guest's saved items to the signed-in user.
func (s *Service) Merge(ctx context.Context, guestID, userID string) error {
	if guestID == "" || userID == "" || guestID == userID {
		return nil
	}
	items, err := s.repo.List(ctx, guestID, 0)
	if err != nil {
		return err
	}
	for _, it := range items {
		if err := s.repo.Add(ctx, userID, it); err != nil {
			return err
		}
		if err := s.repo.Remove(ctx, guestID, it.ProductID); err != nil {
			return err
		}
	}
	return nil
}
