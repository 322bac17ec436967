// Package cache decorates the catalog repositories with a Redis read-through cache.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dwikikusuma/ja-fashion/internal/catalog/app"
	"github.com/dwikikusuma/ja-fashion/internal/catalog/domain"
	"github.com/redis/go-redis/v9"
)

const (
	DefaultTTL = 5 * time.Minute
	keyPrefix  = "catalog:"
)

// Repos is the set of catalog repositories a Store wraps.
type Repos struct {
	Products app.ProductRepo
	Cities   app.CityRepo
	Content  app.ContentRepo
}

// Store serves catalog reads from Redis when it can. A nil client disables
// caching; Redis errors fall through to the wrapped repository.
type Store struct {
	rdb  *redis.Client
	ttl  time.Duration
	log  *slog.Logger
	next Repos
}

func New(rdb *redis.Client, next Repos, ttl time.Duration, log *slog.Logger) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if log == nil {
		log = slog.Default()
	}
	return &Store{rdb: rdb, ttl: ttl, log: log, next: next}
}

func cached[T any](ctx context.Context, s *Store, key string, load func(context.Context) (T, error)) (T, error) {
	if s.rdb == nil {
		return load(ctx)
	}
	key = keyPrefix + key

	raw, err := s.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var v T
		if jerr := json.Unmarshal(raw, &v); jerr == nil {
			return v, nil
		}
		s.log.Warn("catalog cache entry corrupt", slog.String("key", key))
	case !errors.Is(err, redis.Nil):
		s.log.Warn("catalog cache read failed", slog.String("key", key), slog.Any("err", err))
	}

	v, err := load(ctx)
	if err != nil {
		return v, err
	}

	if b, jerr := json.Marshal(v); jerr == nil {
		if serr := s.rdb.Set(ctx, key, b, s.ttl).Err(); serr != nil {
			s.log.Warn("catalog cache write failed", slog.String("key", key), slog.Any("err", serr))
		}
	}
	return v, nil
}

// Invalidate drops every cached catalog entry.
func (s *Store) Invalidate(ctx context.Context) error {
	if s.rdb == nil {
		return nil
	}
	iter := s.rdb.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return s.rdb.Del(ctx, keys...).Err()
}

func (s *Store) List(ctx context.Context, q domain.ProductQuery) ([]domain.Product, error) {
	key := fmt.Sprintf("list:f=%t:n=%t:c=%s:col=%s:s=%s", q.FeaturedOnly, q.NewOnly, q.Category, q.Color, q.Size)
	return cached(ctx, s, key, func(ctx context.Context) ([]domain.Product, error) {
		return s.next.Products.List(ctx, q)
	})
}

func (s *Store) GetBySlug(ctx context.Context, slug string) (domain.Product, error) {
	return cached(ctx, s, "slug:"+slug, func(ctx context.Context) (domain.Product, error) {
		return s.next.Products.GetBySlug(ctx, slug)
	})
}

func (s *Store) GetByID(ctx context.Context, id string) (domain.Product, error) {
	return cached(ctx, s, "id:"+id, func(ctx context.Context) (domain.Product, error) {
		return s.next.Products.GetByID(ctx, id)
	})
}

// Search results are not cached; terms are unbounded.
func (s *Store) Search(ctx context.Context, term string) ([]domain.Product, error) {
	return s.next.Products.Search(ctx, term)
}

func (s *Store) Traditional(ctx context.Context) ([]domain.Product, error) {
	return cached(ctx, s, "traditional", s.next.Products.Traditional)
}

func (s *Store) DistinctColors(ctx context.Context) ([]string, error) {
	return cached(ctx, s, "colors", s.next.Products.DistinctColors)
}

func (s *Store) DistinctSizes(ctx context.Context) ([]string, error) {
	return cached(ctx, s, "sizes", s.next.Products.DistinctSizes)
}

func (s *Store) Testimonials(ctx context.Context) ([]domain.Testimonial, error) {
	return cached(ctx, s, "testimonials", s.next.Content.Testimonials)
}

func (s *Store) Portfolio(ctx context.Context) ([]domain.PortfolioItem, error) {
	return cached(ctx, s, "portfolio", s.next.Content.Portfolio)
}

// Cities returns the city repository view of the store.
func (s *Store) Cities() app.CityRepo { return cityStore{s} }

type cityStore struct{ s *Store }

func (c cityStore) ListActive(ctx context.Context, province string) ([]domain.City, error) {
	return cached(ctx, c.s, "cities:"+province, func(ctx context.Context) ([]domain.City, error) {
		return c.s.next.Cities.ListActive(ctx, province)
	})
}

func (c cityStore) GetBySlug(ctx context.Context, slug string) (domain.City, error) {
	return cached(ctx, c.s, "city:"+slug, func(ctx context.Context) (domain.City, error) {
		return c.s.next.Cities.GetBySlug(ctx, slug)
	})
}

func (c cityStore) Provinces(ctx context.Context) ([]string, error) {
	return cached(ctx, c.s, "provinces", c.s.next.Cities.Provinces)
}
