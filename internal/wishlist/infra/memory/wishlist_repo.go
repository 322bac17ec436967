package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/dwikikusuma/ja-fashion/internal/wishlist/domain"
)

type WishlistRepo struct {
	mu    sync.RWMutex
	items map[string]map[string]domain.Item
	now   func() time.Time
}

func NewWishlistRepo() *WishlistRepo {
	return &WishlistRepo{items: make(map[string]map[string]domain.Item), now: time.Now}
}

func (r *WishlistRepo) Add(ctx context.Context, ownerID string, item domain.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.items[ownerID]
	if !ok {
		m = make(map[string]domain.Item)
		r.items[ownerID] = m
	}
	if _, exists := m[item.ProductID]; exists {
		return nil
	}
	if item.AddedAt.IsZero() {
		item.AddedAt = r.now().UTC()
	}
	m[item.ProductID] = item
	return nil
}

func (r *WishlistRepo) Remove(ctx context.Context, ownerID, productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items[ownerID], productID)
	return nil
}

func (r *WishlistRepo) List(ctx context.Context, ownerID string, limit int) ([]domain.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Item, 0, len(r.items[ownerID]))
	for _, it := range r.items[ownerID] {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].AddedAt.Equal(out[j].AddedAt) {
			return out[i].AddedAt.After(out[j].AddedAt)
		}
		return out[i].ProductID < out[j].ProductID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *WishlistRepo) Contains(ctx context.Context, ownerID, productID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.items[ownerID][productID]
	return ok, nil
}

func (r *WishlistRepo) Count(ctx context.Context, ownerID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items[ownerID]), nil
}
