package domain

import (
	"time"

	"github.com/dwikikusuma/ja-fashion/pkg/money"
)

type Item struct {
	ProductID     string       `json:"productId"`
	Name          string       `json:"name"`
	Price         money.Amount `json:"price"`
	OriginalPrice money.Amount `json:"originalPrice,omitempty"`
	Image         string       `json:"image,omitempty"`
	Color         string       `json:"color,omitempty"`
	Size          string       `json:"size,omitempty"`
	Category      string       `json:"category,omitempty"`
	AddedAt       time.Time    `json:"addedAt"`
}
