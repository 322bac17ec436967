// Package gormstore persists accounts, reset tokens and profiles with gorm
// on the shared PostgreSQL pool.
package gormstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dwikikusuma/ja-fashion/internal/auth/app"
	"github.com/dwikikusuma/ja-fashion/internal/auth/domain"
	"github.com/dwikikusuma/ja-fashion/pkg/postgres"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Store struct {
	db *gorm.DB
}

var _ app.Store = (*Store)(nil)

// Open wraps an existing connection pool.
func Open(sqlDB *sql.DB) (*Store, error) {
	db, err := gorm.Open(gormpg.New(gormpg.Config{Conn: sqlDB}), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("gorm open: %w", err)
	}
	return &Store{db: db}, nil
}

// AutoMigrate creates or updates the users, password_resets and profiles
// tables.
func (s *Store) AutoMigrate(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(&userModel{}, &passwordResetModel{}, &profileModel{})
}

func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || postgres.IsUniqueViolation(err)
}

func (s *Store) CreateUser(ctx context.Context, u domain.User) (domain.User, error) {
	m := userModel{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Phone:        u.Phone,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.CreatedAt,
	}
	if err := s.db.WithContext(ctx).Create(&m).Error; err != nil {
		if isDuplicate(err) {
			return domain.User{}, app.ErrEmailTaken
		}
		return domain.User{}, fmt.Errorf("create user: %w", err)
	}
	return m.toDomain(), nil
}

func (s *Store) findUser(ctx context.Context, query string, arg any) (domain.User, error) {
	var m userModel
	err := s.db.WithContext(ctx).Where(query, arg).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.User{}, app.ErrNotFound
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("find user: %w", err)
	}
	return m.toDomain(), nil
}

func (s *Store) UserByEmail(ctx context.Context, email string) (domain.User, error) {
	return s.findUser(ctx, "email = ?", email)
}

func (s *Store) UserByID(ctx context.Context, id string) (domain.User, error) {
	return s.findUser(ctx, "id = ?", id)
}

func (s *Store) UpdatePassword(ctx context.Context, userID, hash string) error {
	res := s.db.WithContext(ctx).Model(&userModel{}).Where("id = ?", userID).
		Updates(map[string]any{"password_hash": hash, "updated_at": time.Now().UTC()})
	if res.Error != nil {
		return fmt.Errorf("update password: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return app.ErrNotFound
	}
	return nil
}

func (s *Store) CreateReset(ctx context.Context, t domain.ResetToken) error {
	m := passwordResetModel{
		TokenHash: t.TokenHash,
		UserID:    t.UserID,
		ExpiresAt: t.ExpiresAt,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.db.WithContext(ctx).Omit("User").Create(&m).Error; err != nil {
		return fmt.Errorf("create reset token: %w", err)
	}
	return nil
}

// ConsumeReset claims the token with a single conditional update so two
// concurrent resets cannot both succeed.
func (s *Store) ConsumeReset(ctx context.Context, tokenHash string, now time.Time) (string, error) {
	var userID string
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&passwordResetModel{}).
			Where("token_hash = ? AND used_at IS NULL AND expires_at > ?", tokenHash, now).
			Update("used_at", now)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return app.ErrInvalidToken
		}
		var m passwordResetModel
		if err := tx.Select("user_id").Where("token_hash = ?", tokenHash).First(&m).Error; err != nil {
			return err
		}
		userID = m.UserID
		return nil
	})
	if err != nil {
		if errors.Is(err, app.ErrInvalidToken) {
			return "", err
		}
		return "", fmt.Errorf("consume reset token: %w", err)
	}
	return userID, nil
}

func (s *Store) GetProfile(ctx context.Context, userID string) (domain.Profile, error) {
	var m profileModel
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Profile{}, app.ErrNotFound
	}
	if err != nil {
		return domain.Profile{}, fmt.Errorf("get profile: %w", err)
	}
	return m.toDomain(), nil
}

// CreateProfile keeps the existing row when two first visits race.
func (s *Store) CreateProfile(ctx context.Context, p domain.Profile) (domain.Profile, error) {
	m := profileFromDomain(p)
	err := s.db.WithContext(ctx).Omit("User").Create(&m).Error
	if isDuplicate(err) {
		return s.GetProfile(ctx, p.UserID)
	}
	if err != nil {
		return domain.Profile{}, fmt.Errorf("create profile: %w", err)
	}
	return m.toDomain(), nil
}

func (s *Store) UpdateProfile(ctx context.Context, p domain.Profile) (domain.Profile, error) {
	m := profileFromDomain(p)
	res := s.db.WithContext(ctx).Model(&profileModel{}).Where("user_id = ?", p.UserID).
		Select("first_name", "last_name", "phone", "address", "newsletter", "promotions", "avatar_path", "updated_at").
		Updates(&m)
	if res.Error != nil {
		return domain.Profile{}, fmt.Errorf("update profile: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.Profile{}, app.ErrNotFound
	}
	return s.GetProfile(ctx, p.UserID)
}
