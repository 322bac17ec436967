package memory

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/dwikikusuma/ja-fashion/internal/order/app"
	"github.com/dwikikusuma/ja-fashion/internal/order/domain"
	"github.com/google/uuid"
)

type OrderRepo struct {
	mu     sync.RWMutex
	orders map[string]domain.Order
	now    func() time.Time
}

func NewOrderRepo() *OrderRepo {
	return &OrderRepo{orders: make(map[string]domain.Order), now: time.Now}
}

func (r *OrderRepo) CreateOrderTx(ctx context.Context, order domain.Order) (domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now().UTC()
	order.ID = uuid.NewString()
	order.CreatedAt = now
	order.UpdatedAt = now
	order.Items = slices.Clone(order.Items)
	for i := range order.Items {
		order.Items[i].ID = uuid.NewString()
		order.Items[i].OrderID = order.ID
	}
	r.orders[order.ID] = order
	return clone(order), nil
}

func (r *OrderRepo) Get(ctx context.Context, id string) (domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.orders[id]
	if !ok {
		return domain.Order{}, app.ErrNotFound
	}
	return clone(o), nil
}

func (r *OrderRepo) GetByPaymentIntent(ctx context.Context, paymentIntentID string) (domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, o := range r.orders {
		if o.PaymentIntentID == paymentIntentID {
			return clone(o), nil
		}
	}
	return domain.Order{}, app.ErrNotFound
}

func (r *OrderRepo) ListByUser(ctx context.Context, userID string, limit int) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, clone(o))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *OrderRepo) UpdateStatus(ctx context.Context, id, status string) error {
	return r.update(id, func(o *domain.Order) { o.Status = status })
}

func (r *OrderRepo) SetPaymentIntent(ctx context.Context, id, paymentIntentID string) error {
	return r.update(id, func(o *domain.Order) { o.PaymentIntentID = paymentIntentID })
}

func (r *OrderRepo) update(id string, fn func(*domain.Order)) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return app.ErrNotFound
	}
	fn(&o)
	o.UpdatedAt = r.now().UTC()
	r.orders[id] = o
	return nil
}

func clone(o domain.Order) domain.Order {
	o.Items = slices.Clone(o.Items)
	return o
}
