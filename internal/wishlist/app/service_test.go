package app_test

import (
	"context"
	"testing"
	"time"

	catalogapp "github.com/dwikikusuma/ja-fashion/internal/catalog/app"
	catalogmem "github.com/dwikikusuma/ja-fashion/internal/catalog/infra/memory"
	"github.com/dwikikusuma/ja-fashion/internal/wishlist/app"
	"github.com/dwikikusuma/ja-fashion/internal/wishlist/domain"
	"github.com/dwikikusuma/ja-fashion/internal/wishlist/infra/adapter"
	"github.com/dwikikusuma/ja-fashion/internal/wishlist/infra/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() *app.Service {
	cat := catalogmem.New(catalogmem.Seed())
	return app.NewService(memory.NewWishlistRepo(), adapter.NewCatalogSource(catalogapp.NewService(cat, cat.Cities(), cat)))
}

func TestAddIsIdempotent(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.Add(ctx, "u1", "prod-ajrak-shawl")
		require.NoError(t, err)
	}
	n, err := svc.Count(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	ok, err := svc.Contains(ctx, "u1", "prod-ajrak-shawl")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestOutOfStockCanBeSaved(t *testing.T) {
	svc := newService()
	item, err := svc.Add(context.Background(), "u1", "prod-black-kurta")
	require.NoError(t, err)
	assert.Equal(t, "Embroidered Black Kurta", item.Name)

	_, err = svc.Add(context.Background(), "u1", "missing")
	assert.ErrorIs(t, err, app.ErrNotFound)
}

func TestToggleAndRemove(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	saved, err := svc.Toggle(ctx, "u1", "prod-indigo-dupatta")
	require.NoError(t, err)
	assert.True(t, saved)

	saved, err = svc.Toggle(ctx, "u1", "prod-indigo-dupatta")
	require.NoError(t, err)
	assert.False(t, saved)

	require.NoError(t, svc.Remove(ctx, "u1", "prod-indigo-dupatta"))
	n, err := svc.Count(ctx, "u1")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRecentNewestFirst(t *testing.T) {
	repo := memory.NewWishlistRepo()
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"a", "b", "c"} {
		require.NoError(t, repo.Add(context.Background(), "u1", domain.Item{ProductID: id, AddedAt: base.Add(time.Duration(i) * time.Hour)}))
	}
	svc := app.NewService(repo, nil)

	recent, err := svc.Recent(context.Background(), "u1", 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "c", recent[0].ProductID)
	assert.Equal(t, "b", recent[1].ProductID)

	_, err = svc.Recent(context.Background(), "u1", 0)
	assert.ErrorIs(t, err, app.ErrInvalidInput)
}

func TestMerge(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, err := svc.Add(ctx, "guest", "prod-ajrak-shawl")
	require.NoError(t, err)
	_, err = svc.Add(ctx, "user", "prod-ajrak-shawl")
	require.NoError(t, err)
	_, err = svc.Add(ctx, "guest", "prod-indigo-dupatta")
	require.NoError(t, err)

	require.NoError(t, svc.Merge(ctx, "guest", "user"))

	n, err := svc.Count(ctx, "user")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	n, err = svc.Count(ctx, "guest")
	require.NoError(t, err)
	assert.Zero(t, n)
}
