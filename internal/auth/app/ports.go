package app

import (
	"context"
	"time"

	"github.com/dwikikusuma/ja-fashion/internal/auth/domain"
)

// UserRepo returns ErrNotFound for unknown users and ErrEmailTaken when the
// email is already registered.
type UserRepo interface {
	CreateUser(ctx context.Context, u domain.User) (domain.User, error)
	UserByEmail(ctx context.Context, email string) (domain.User, error)
	UserByID(ctx context.Context, id string) (domain.User, error)
	UpdatePassword(ctx context.Context, userID, hash string) error
}

// ResetRepo stores password reset tokens. ConsumeReset marks the token used
// and returns its user, or ErrInvalidToken when it is unknown, used or
// expired at now.
type ResetRepo interface {
	CreateReset(ctx context.Context, t domain.ResetToken) error
	ConsumeReset(ctx context.Context, tokenHash string, now time.Time) (string, error)
}

type ProfileRepo interface {
	GetProfile(ctx context.Context, userID string) (domain.Profile, error)
	CreateProfile(ctx context.Context, p domain.Profile) (domain.Profile, error)
	UpdateProfile(ctx context.Context, p domain.Profile) (domain.Profile, error)
}

type Store interface {
	UserRepo
	ResetRepo
	ProfileRepo
}

type Mailer interface {
	SendPasswordReset(ctx context.Context, email, link string) error
}

// GuestMerger moves a guest's cart or wishlist onto the account after
// sign-in.
type GuestMerger interface {
	MergeGuest(ctx context.Context, guestID, userID string) error
}

type GuestMergerFunc func(ctx context.Context, guestID, userID string) error

func (f GuestMergerFunc) MergeGuest(ctx context.Context, guestID, userID string) error {
	return f(ctx, guestID, userID)
}
