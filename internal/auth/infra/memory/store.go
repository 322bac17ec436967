package memory

import (
	"context"
	"sync"
	"time"

	"github.com/dwikikusuma/ja-fashion/internal/auth/app"
	"github.com/dwikikusuma/ja-fashion/internal/auth/domain"
)

// Store keeps accounts in process memory.
type Store struct {
	mu       sync.RWMutex
	users    map[string]domain.User
	byEmail  map[string]string
	resets   map[string]domain.ResetToken
	profiles map[string]domain.Profile
}

func NewStore() *Store {
	return &Store{
		users:    map[string]domain.User{},
		byEmail:  map[string]string{},
		resets:   map[string]domain.ResetToken{},
		profiles: map[string]domain.Profile{},
	}
}

var _ app.Store = (*Store)(nil)

func (s *Store) CreateUser(ctx context.Context, u domain.User) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byEmail[u.Email]; ok {
		return domain.User{}, app.ErrEmailTaken
	}
	s.users[u.ID] = u
	s.byEmail[u.Email] = u.ID
	return u, nil
}

func (s *Store) UserByEmail(ctx context.Context, email string) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[email]
	if !ok {
		return domain.User{}, app.ErrNotFound
	}
	return s.users[id], nil
}

func (s *Store) UserByID(ctx context.Context, id string) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return domain.User{}, app.ErrNotFound
	}
	return u, nil
}

func (s *Store) UpdatePassword(ctx context.Context, userID, hash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return app.ErrNotFound
	}
	u.PasswordHash = hash
	s.users[userID] = u
	return nil
}

func (s *Store) CreateReset(ctx context.Context, t domain.ResetToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resets[t.TokenHash] = t
	return nil
}

func (s *Store) ConsumeReset(ctx context.Context, tokenHash string, now time.Time) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.resets[tokenHash]
	if !ok || t.UsedAt != nil || !now.Before(t.ExpiresAt) {
		return "", app.ErrInvalidToken
	}
	t.UsedAt = &now
	s.resets[tokenHash] = t
	return t.UserID, nil
}

func (s *Store) GetProfile(ctx context.Context, userID string) (domain.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.profiles[userID]
	if !ok {
		return domain.Profile{}, app.ErrNotFound
	}
	return p, nil
}

func (s *Store) CreateProfile(ctx context.Context, p domain.Profile) (domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.profiles[p.UserID]; ok {
		return existing, nil
	}
	s.profiles[p.UserID] = p
	return p, nil
}

func (s *Store) UpdateProfile(ctx context.Context, p domain.Profile) (domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.profiles[p.UserID]; !ok {
		return domain.Profile{}, app.ErrNotFound
	}
	s.profiles[p.UserID] = p
	return p, nil
}
