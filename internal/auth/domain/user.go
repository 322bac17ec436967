package domain

import (
	"strings"
	"time"
)

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Phone        string    `json:"phone"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Preferences struct {
	Newsletter bool `json:"newsletter"`
	Promotions bool `json:"promotions"`
}

// Profile is created lazily the first time a signed-in user opens it.
type Profile struct {
	UserID      string      `json:"id"`
	Email       string      `json:"email"`
	FirstName   string      `json:"firstName"`
	LastName    string      `json:"lastName"`
	Phone       string      `json:"phone"`
	Address     string      `json:"address"`
	JoinDate    time.Time   `json:"joinDate"`
	Preferences Preferences `json:"preferences"`
	AvatarPath  string      `json:"avatarPath"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

func (p Profile) DisplayName() string {
	name := strings.TrimSpace(p.FirstName + " " + p.LastName)
	if name == "" {
		return p.Email
	}
	return name
}

// ResetToken is stored by hash; the plain token only exists in the email.
type ResetToken struct {
	TokenHash string
	UserID    string
	ExpiresAt time.Time
	UsedAt    *time.Time
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
