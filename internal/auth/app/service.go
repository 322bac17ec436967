package app

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/dwikikusuma/ja-fashion/internal/auth/domain"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotFound           = errors.New("not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidToken       = errors.New("invalid or expired reset token")
)

const (
	MinPasswordLength = 6
	ResetTokenTTL     = time.Hour
)

type Service struct {
	store   Store
	tokens  *Tokens
	mailer  Mailer
	mergers []GuestMerger
	baseURL string
	cost    int
	log     *slog.Logger
	now     func() time.Time
}

type Options struct {
	// BaseURL prefixes the reset link sent by email.
	BaseURL string
	// BcryptCost defaults to bcrypt.DefaultCost.
	BcryptCost int
	Mergers    []GuestMerger
	Log        *slog.Logger
}

func NewService(store Store, tokens *Tokens, mailer Mailer, opts Options) *Service {
	if opts.BcryptCost == 0 {
		opts.BcryptCost = bcrypt.DefaultCost
	}
	if opts.Log == nil {
		opts.Log = slog.Default()
	}
	return &Service{
		store:   store,
		tokens:  tokens,
		mailer:  mailer,
		mergers: opts.Mergers,
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		cost:    opts.BcryptCost,
		log:     opts.Log,
		now:     time.Now,
	}
}

type RegisterInput struct {
	Email           string `json:"email" form:"email"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirmPassword" form:"confirmPassword"`
	FirstName       string `json:"firstName" form:"firstName"`
	LastName        string `json:"lastName" form:"lastName"`
	Phone           string `json:"phone" form:"phone"`
	AgreeToTerms    bool   `json:"agreeToTerms" form:"agreeToTerms"`
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (domain.User, error) {
	email := domain.NormalizeEmail(in.Email)
	if email == "" || !strings.Contains(email, "@") {
		return domain.User{}, fmt.Errorf("%w: a valid email is required", ErrInvalidInput)
	}
	if in.Password != in.ConfirmPassword {
		return domain.User{}, fmt.Errorf("%w: passwords do not match", ErrInvalidInput)
	}
	if !in.AgreeToTerms {
		return domain.User{}, fmt.Errorf("%w: you must agree to the terms", ErrInvalidInput)
	}
	if err := s.checkPassword(in.Password); err != nil {
		return domain.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	u, err := s.store.CreateUser(ctx, domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		Phone:        strings.TrimSpace(in.Phone),
		CreatedAt:    s.now().UTC(),
	})
	if err != nil {
		return domain.User{}, err
	}
	s.log.Info("user registered", slog.String("user_id", u.ID))
	return u, nil
}

func (s *Service) checkPassword(pw string) error {
	if len(pw) < MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, MinPasswordLength)
	}
	return nil
}

type LoginInput struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
	// GuestID is the anonymous owner whose cart and wishlist move onto the
	// account.
	GuestID string `json:"-" form:"-"`
}

type Session struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expiresAt"`
	User      domain.User `json:"user"`
}

func (s *Service) Login(ctx context.Context, in LoginInput) (Session, error) {
	u, err := s.store.UserByEmail(ctx, domain.NormalizeEmail(in.Email))
	if errors.Is(err, ErrNotFound) {
		return Session{}, ErrInvalidCredentials
	}
	if err != nil {
		return Session{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return Session{}, ErrInvalidCredentials
	}

	token, exp, err := s.tokens.Issue(u.ID, u.Email)
	if err != nil {
		return Session{}, err
	}

	if in.GuestID != "" && in.GuestID != u.ID {
		for _, m := range s.mergers {
			if err := m.MergeGuest(ctx, in.GuestID, u.ID); err != nil {
				s.log.Warn("guest merge failed", slog.String("user_id", u.ID), slog.Any("err", err))
			}
		}
	}
	return Session{Token: token, ExpiresAt: exp, User: u}, nil
}

// Authenticate resolves a session token to its user claims.
func (s *Service) Authenticate(token string) (Claims, error) {
	if strings.TrimSpace(token) == "" {
		return Claims{}, ErrUnauthorized
	}
	return s.tokens.Parse(token)
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// ForgotPassword mails a single-use reset link. Unknown emails succeed
// silently so the endpoint does not reveal which addresses exist.
func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	email = domain.NormalizeEmail(email)
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	u, err := s.store.UserByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	token := uuid.NewString()
	if err := s.store.CreateReset(ctx, domain.ResetToken{
		TokenHash: hashToken(token),
		UserID:    u.ID,
		ExpiresAt: s.now().Add(ResetTokenTTL).UTC(),
	}); err != nil {
		return err
	}

	link := s.baseURL + "/reset-password?token=" + url.QueryEscape(token)
	if err := s.mailer.SendPasswordReset(ctx, u.Email, link); err != nil {
		s.log.Error("send password reset failed", slog.String("user_id", u.ID), slog.Any("err", err))
	}
	return nil
}

func (s *Service) ResetPassword(ctx context.Context, token, password, confirm string) error {
	if strings.TrimSpace(token) == "" {
		return ErrInvalidToken
	}
	if password != confirm {
		return fmt.Errorf("%w: passwords do not match", ErrInvalidInput)
	}
	if err := s.checkPassword(password); err != nil {
		return err
	}

	userID, err := s.store.ConsumeReset(ctx, hashToken(token), s.now())
	if err != nil {
		return err
	}
	return s.setPassword(ctx, userID, password)
}

// UpdatePassword changes the signed-in user's password.
func (s *Service) UpdatePassword(ctx context.Context, userID, password string) error {
	if userID == "" {
		return ErrUnauthorized
	}
	if err := s.checkPassword(password); err != nil {
		return err
	}
	return s.setPassword(ctx, userID, password)
}

func (s *Service) setPassword(ctx context.Context, userID, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.store.UpdatePassword(ctx, userID, string(hash))
}

// Profile returns the user's profile, creating it from the account on
// first access.
func (s *Service) Profile(ctx context.Context, userID string) (domain.Profile, error) {
	if userID == "" {
		return domain.Profile{}, ErrUnauthorized
	}
	p, err := s.store.GetProfile(ctx, userID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return domain.Profile{}, err
	}

	u, err := s.store.UserByID(ctx, userID)
	if err != nil {
		return domain.Profile{}, err
	}
	now := s.now().UTC()
	return s.store.CreateProfile(ctx, domain.Profile{
		UserID:    u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
		JoinDate:  now.Truncate(24 * time.Hour),
		UpdatedAt: now,
	})
}

type ProfileUpdate struct {
	FirstName   *string             `json:"firstName" form:"firstName"`
	LastName    *string             `json:"lastName" form:"lastName"`
	Phone       *string             `json:"phone" form:"phone"`
	Address     *string             `json:"address" form:"address"`
	AvatarPath  *string             `json:"avatarPath" form:"avatarPath"`
	Preferences *domain.Preferences `json:"preferences"`
}

func (s *Service) UpdateProfile(ctx context.Context, userID string, in ProfileUpdate) (domain.Profile, error) {
	p, err := s.Profile(ctx, userID)
	if err != nil {
		return domain.Profile{}, err
	}
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = strings.TrimSpace(*v)
		}
	}
	set(&p.FirstName, in.FirstName)
	set(&p.LastName, in.LastName)
	set(&p.Phone, in.Phone)
	set(&p.Address, in.Address)
	set(&p.AvatarPath, in.AvatarPath)
	if in.Preferences != nil {
		p.Preferences = *in.Preferences
	}
	p.UpdatedAt = s.now().UTC()
	return s.store.UpdateProfile(ctx, p)
}
