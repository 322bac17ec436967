package app_test

import (
	"context"
	"testing"

	"github.com/dwikikusuma/ja-fashion/internal/order/app"
	"github.com/dwikikusuma/ja-fashion/internal/order/domain"
	"github.com/dwikikusuma/ja-fashion/internal/order/infra/memory"
	"github.com/dwikikusuma/ja-fashion/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func customer() domain.Customer {
	return domain.Customer{
		Name: "Ayesha Khan", Phone: "03001234567", Email: "ayesha@example.com",
		Address: "12 Clifton Block 5", City: "Karachi", PostalCode: "75600",
	}
}

func request(userID string) domain.CreateOrderRequest {
	return domain.CreateOrderRequest{
		UserID:        userID,
		Customer:      customer(),
		PromoCode:     "WELCOME10",
		PromoDiscount: money.FromRupees(680),
		Shipping:      money.FromRupees(300),
		Items: []domain.OrderItemRequest{
			{ProductID: "p1", Name: "Classic Ajrak Shawl", Price: money.FromRupees(2500), OriginalPrice: money.FromRupees(3000), Quantity: 2},
			{ProductID: "p2", Name: "Indigo Dupatta", Price: money.FromRupees(1800), Quantity: 1},
		},
	}
}

func TestCreateDerivesTotals(t *testing.T) {
	svc := app.NewService(memory.NewOrderRepo())

	o, err := svc.Create(context.Background(), request("u1"))
	require.NoError(t, err)

	assert.NotEmpty(t, o.ID)
	assert.Equal(t, domain.StatusPending, o.Status)
	assert.Equal(t, money.FromRupees(6800), o.Subtotal)
	assert.Equal(t, money.FromRupees(1000), o.Savings)
	assert.Equal(t, money.FromRupees(6800-680+300), o.Total)
	require.Len(t, o.Items, 2)
	assert.Equal(t, money.FromRupees(5000), o.Items[0].LineTotal)
	assert.Equal(t, o.ID, o.Items[0].OrderID)
}

func TestCreateValidation(t *testing.T) {
	svc := app.NewService(memory.NewOrderRepo())
	ctx := context.Background()

	tests := map[string]func(*domain.CreateOrderRequest){
		"blank customer field": func(r *domain.CreateOrderRequest) { r.Customer.PostalCode = "  " },
		"no items":             func(r *domain.CreateOrderRequest) { r.Items = nil },
		"zero quantity":        func(r *domain.CreateOrderRequest) { r.Items[0].Quantity = 0 },
		"negative price":       func(r *domain.CreateOrderRequest) { r.Items[1].Price = -1 },
		"negative shipping":    func(r *domain.CreateOrderRequest) { r.Shipping = -1 },
		"discount too large":   func(r *domain.CreateOrderRequest) { r.PromoDiscount = money.FromRupees(10000) },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			req := request("u1")
			mutate(&req)
			_, err := svc.Create(ctx, req)
			assert.ErrorIs(t, err, app.ErrInvalidInput)
		})
	}
}

func TestListRecentAndOwnership(t *testing.T) {
	repo := memory.NewOrderRepo()
	svc := app.NewService(repo)
	ctx := context.Background()

	var ids []string
	for i := 0; i < 3; i++ {
		o, err := svc.Create(ctx, request("u1"))
		require.NoError(t, err)
		ids = append(ids, o.ID)
	}
	guest, err := svc.Create(ctx, request(""))
	require.NoError(t, err)

	all, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	recent, err := svc.Recent(ctx, "u1", 2)
	require.NoError(t, err)
	assert.Len(t, recent, 2)

	_, err = svc.GetForUser(ctx, ids[0], "someone-else")
	assert.ErrorIs(t, err, app.ErrNotFound)

	got, err := svc.GetForUser(ctx, guest.ID, "")
	require.NoError(t, err)
	assert.Equal(t, guest.ID, got.ID)

	_, err = svc.List(ctx, "")
	assert.ErrorIs(t, err, app.ErrInvalidInput)
}

func TestStatusAndPaymentIntent(t *testing.T) {
	svc := app.NewService(memory.NewOrderRepo())
	ctx := context.Background()

	o, err := svc.Create(ctx, request("u1"))
	require.NoError(t, err)

	require.NoError(t, svc.AttachPaymentIntent(ctx, o.ID, "pi_123"))
	require.NoError(t, svc.SetStatus(ctx, o.ID, "PAID"))

	got, err := svc.ByPaymentIntent(ctx, "pi_123")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPaid, got.Status)

	assert.ErrorIs(t, svc.SetStatus(ctx, o.ID, "teleported"), app.ErrInvalidInput)
	assert.ErrorIs(t, svc.SetStatus(ctx, "missing", domain.StatusShipped), app.ErrNotFound)
}
