package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dwikikusuma/ja-fashion/internal/catalog/app"
	"github.com/dwikikusuma/ja-fashion/internal/catalog/domain"
	"github.com/dwikikusuma/ja-fashion/internal/catalog/infra/memory"
	"github.com/dwikikusuma/ja-fashion/pkg/logger"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRepo struct {
	app.ProductRepo
	calls int
	err   error
}

func (r *countingRepo) DistinctColors(ctx context.Context) ([]string, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	return r.ProductRepo.DistinctColors(ctx)
}

func TestNilClientPassesThrough(t *testing.T) {
	cat := memory.New(memory.Seed())
	inner := &countingRepo{ProductRepo: cat}
	s := New(nil, Repos{Products: inner, Cities: cat.Cities(), Content: cat}, 0, logger.Discard())

	for i := 0; i < 2; i++ {
		colors, err := s.DistinctColors(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"Black", "Blue", "Red"}, colors)
	}
	assert.Equal(t, 2, inner.calls)
	assert.NoError(t, s.Invalidate(context.Background()))
}

func TestUnreachableRedisFallsBack(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = rdb.Close() })

	cat := memory.New(memory.Seed())
	s := New(rdb, Repos{Products: cat, Cities: cat.Cities(), Content: cat}, time.Minute, logger.Discard())

	p, err := s.GetBySlug(context.Background(), "indigo-dupatta")
	require.NoError(t, err)
	assert.Equal(t, "Indigo Dupatta", p.Title)

	cities, err := s.Cities().ListActive(context.Background(), "Sindh")
	require.NoError(t, err)
	assert.Len(t, cities, 2)
}

func TestLoadErrorsPropagate(t *testing.T) {
	boom := errors.New("sanity down")
	cat := memory.New(memory.Seed())
	s := New(nil, Repos{Products: &countingRepo{ProductRepo: cat, err: boom}, Cities: cat.Cities(), Content: cat}, 0, nil)

	_, err := s.DistinctColors(context.Background())
	assert.ErrorIs(t, err, boom)

	_, err = s.GetBySlug(context.Background(), "nope")
	assert.ErrorIs(t, err, app.ErrNotFound)

	_, err = s.List(context.Background(), domain.ProductQuery{Category: "Shawls"})
	assert.NoError(t, err)
}
