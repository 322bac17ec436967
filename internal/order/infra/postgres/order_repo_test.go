package postgres_test

import (
	"context"
	"testing"

	"github.com/dwikikusuma/ja-fashion/internal/order/app"
	"github.com/dwikikusuma/ja-fashion/internal/order/domain"
	"github.com/dwikikusuma/ja-fashion/internal/order/infra/postgres"
	"github.com/dwikikusuma/ja-fashion/pkg/money"
	"github.com/dwikikusuma/ja-fashion/pkg/postgres/pgtest"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderRepoRoundTrip(t *testing.T) {
	repo := postgres.NewOrderRepo(pgtest.Open(t))
	svc := app.NewService(repo)
	ctx := context.Background()
	userID := uuid.NewString()

	req := domain.CreateOrderRequest{
		UserID: userID,
		Customer: domain.Customer{
			Name: "Ayesha", Phone: "0300", Email: "a@example.com",
			Address: "Clifton", City: "Karachi", PostalCode: "75600",
		},
		Shipping: money.FromRupees(300),
		Items: []domain.OrderItemRequest{
			{ProductID: "p1", Name: "Shawl", Price: money.FromRupees(2500), OriginalPrice: money.FromRupees(3000), Quantity: 2},
			{ProductID: "p2", Name: "Dupatta", Price: money.FromRupees(1800), Quantity: 1},
		},
	}

	first, err := svc.Create(ctx, req)
	require.NoError(t, err)
	second, err := svc.Create(ctx, req)
	require.NoError(t, err)

	list, err := svc.List(ctx, userID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Len(t, list[1].Items, 2)

	got, err := svc.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, money.FromRupees(7100), got.Total)
	assert.Equal(t, money.FromRupees(1000), got.Savings)

	pi := "pi_" + uuid.NewString()
	require.NoError(t, svc.AttachPaymentIntent(ctx, first.ID, pi))
	require.NoError(t, svc.SetStatus(ctx, first.ID, domain.StatusPaid))

	byPI, err := svc.ByPaymentIntent(ctx, pi)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPaid, byPI.Status)

	_, err = svc.Get(ctx, uuid.NewString())
	assert.ErrorIs(t, err, app.ErrNotFound)
}

func TestCreateOrderTxRollsBackOnBadItem(t *testing.T) {
	repo := postgres.NewOrderRepo(pgtest.Open(t))
	userID := uuid.NewString()

	_, err := repo.CreateOrderTx(context.Background(), domain.Order{
		UserID:   userID,
		Customer: domain.Customer{Name: "x", Phone: "x", Email: "x", Address: "x", City: "x", PostalCode: "x"},
		Status:   domain.StatusPending,
		Items:    []domain.OrderItem{{ProductID: "p1", Name: "x", Price: 100, Quantity: 2, LineTotal: 150}},
	})
	require.Error(t, err)

	orders, err := repo.ListByUser(context.Background(), userID, 0)
	require.NoError(t, err)
	assert.Empty(t, orders)
}
