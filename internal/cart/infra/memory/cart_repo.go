package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/dwikikusuma/ja-fashion/internal/cart/app"
	"github.com/dwikikusuma/ja-fashion/internal/cart/domain"
	"github.com/google/uuid"
)

// CartRepo keeps carts in process memory.
type CartRepo struct {
	mu      sync.Mutex
	byOwner map[string]*domain.Cart
	byID    map[string]*domain.Cart
	now     func() time.Time
}

func NewCartRepo() *CartRepo {
	return &CartRepo{
		byOwner: make(map[string]*domain.Cart),
		byID:    make(map[string]*domain.Cart),
		now:     time.Now,
	}
}

func (r *CartRepo) Get(ctx context.Context, ownerID string) (domain.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.byOwner[ownerID]
	if !ok {
		return domain.Cart{}, app.ErrNotFound
	}
	return copyCart(c), nil
}

func (r *CartRepo) GetOrCreate(ctx context.Context, ownerID string) (domain.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.byOwner[ownerID]; ok {
		return copyCart(c), nil
	}
	now := r.now().UTC()
	c := &domain.Cart{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Status:    domain.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.byOwner[ownerID] = c
	r.byID[c.ID] = c
	return copyCart(c), nil
}

func (r *CartRepo) AddItem(ctx context.Context, cartID string, item domain.CartItem) error {
	return r.update(cartID, func(c *domain.Cart) {
		if item.AddedAt.IsZero() {
			item.AddedAt = r.now().UTC()
		}
		c.Add(item)
	})
}

func (r *CartRepo) SetItemQuantity(ctx context.Context, cartID, productID string, qty int) error {
	return r.update(cartID, func(c *domain.Cart) { c.SetQuantity(productID, qty) })
}

func (r *CartRepo) RemoveItem(ctx context.Context, cartID, productID string) error {
	return r.update(cartID, func(c *domain.Cart) { c.Remove(productID) })
}

func (r *CartRepo) ClearCart(ctx context.Context, cartID string) error {
	return r.update(cartID, func(c *domain.Cart) { c.Clear() })
}

func (r *CartRepo) update(cartID string, fn func(*domain.Cart)) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.byID[cartID]
	if !ok {
		return app.ErrNotFound
	}
	fn(c)
	c.UpdatedAt = r.now().UTC()
	return nil
}

func copyCart(c *domain.Cart) domain.Cart {
	out := *c
	out.Items = slices.Clone(c.Items)
	return out
}
