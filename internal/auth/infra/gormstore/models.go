package gormstore

import (
	"time"

	"github.com/dwikikusuma/ja-fashion/internal/auth/domain"
)

type userModel struct {
	ID           string    `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:text;not null;uniqueIndex"`
	PasswordHash string    `gorm:"type:text;not null"`
	FirstName    string    `gorm:"type:text;not null;default:''"`
	LastName     string    `gorm:"type:text;not null;default:''"`
	Phone        string    `gorm:"type:text;not null;default:''"`
	CreatedAt    time.Time `gorm:"type:timestamptz;not null"`
	UpdatedAt    time.Time `gorm:"type:timestamptz;not null"`
}

func (userModel) TableName() string { return "users" }

func (m userModel) toDomain() domain.User {
	return domain.User{
		ID:           m.ID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Phone:        m.Phone,
		CreatedAt:    m.CreatedAt,
	}
}

type passwordResetModel struct {
	TokenHash string     `gorm:"type:text;primaryKey"`
	UserID    string     `gorm:"type:uuid;not null;index"`
	ExpiresAt time.Time  `gorm:"type:timestamptz;not null"`
	UsedAt    *time.Time `gorm:"type:timestamptz"`
	CreatedAt time.Time  `gorm:"type:timestamptz;not null"`

	User userModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (passwordResetModel) TableName() string { return "password_resets" }

type profileModel struct {
	UserID     string    `gorm:"type:uuid;primaryKey"`
	Email      string    `gorm:"type:text;not null"`
	FirstName  string    `gorm:"type:text;not null;default:''"`
	LastName   string    `gorm:"type:text;not null;default:''"`
	Phone      string    `gorm:"type:text;not null;default:''"`
	Address    string    `gorm:"type:text;not null;default:''"`
	JoinDate   time.Time `gorm:"type:date;not null"`
	Newsletter bool      `gorm:"not null;default:false"`
	Promotions bool      `gorm:"not null;default:false"`
	AvatarPath string    `gorm:"type:text;not null;default:''"`
	UpdatedAt  time.Time `gorm:"type:timestamptz;not null"`

	User userModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (profileModel) TableName() string { return "profiles" }

func profileFromDomain(p domain.Profile) profileModel {
	return profileModel{
		UserID:     p.UserID,
		Email:      p.Email,
		FirstName:  p.FirstName,
		LastName:   p.LastName,
		Phone:      p.Phone,
		Address:    p.Address,
		JoinDate:   p.JoinDate,
		Newsletter: p.Preferences.Newsletter,
		Promotions: p.Preferences.Promotions,
		AvatarPath: p.AvatarPath,
		UpdatedAt:  p.UpdatedAt,
	}
}

func (m profileModel) toDomain() domain.Profile {
	return domain.Profile{
		UserID:      m.UserID,
		Email:       m.Email,
		FirstName:   m.FirstName,
		LastName:    m.LastName,
		Phone:       m.Phone,
		Address:     m.Address,
		JoinDate:    m.JoinDate,
		Preferences: domain.Preferences{Newsletter: m.Newsletter, Promotions: m.Promotions},
		AvatarPath:  m.AvatarPath,
		UpdatedAt:   m.UpdatedAt,
	}
}
