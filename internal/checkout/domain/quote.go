package domain

import (
	"github.com/dwikikusuma/ja-fashion/pkg/money"
	"github.com/shopspring/decimal"
)

type Line struct {
	ProductID     string       `json:"productId"`
	Name          string       `json:"name"`
	Image         string       `json:"image,omitempty"`
	Category      string       `json:"category,omitempty"`
	Color         string       `json:"color,omitempty"`
	Size          string       `json:"size,omitempty"`
	Quantity      int          `json:"quantity"`
	UnitPrice     money.Amount `json:"price"`
	OriginalPrice money.Amount `json:"originalPrice,omitempty"`
	LineTotal     money.Amount `json:"lineTotal"`
}

// Savings is the markdown on this line, zero when not on sale.
func (l Line) Savings() money.Amount {
	if l.OriginalPrice <= l.UnitPrice {
		return 0
	}
	return (l.OriginalPrice - l.UnitPrice).Times(l.Quantity)
}

type Promo struct {
	Code        string          `json:"code"`
	Percent     decimal.Decimal `json:"percent"`
	Description string          `json:"description"`
}

type Summary struct {
	Subtotal      money.Amount `json:"subtotal"`
	Savings       money.Amount `json:"savings"`
	PromoCode     string       `json:"promoCode,omitempty"`
	PromoDiscount money.Amount `json:"promoDiscount"`
	Shipping      money.Amount `json:"shipping"`
	Tax           money.Amount `json:"tax"`
	Total         money.Amount `json:"total"`
}

type Quote struct {
	Lines   []Line  `json:"lines"`
	Summary Summary `json:"summary"`
}

// Summarize prices lines. promo may be nil.
func Summarize(lines []Line, promo *Promo, shipping, tax money.Amount) Summary {
	var s Summary
	for _, l := range lines {
		s.Subtotal += l.LineTotal
		s.Savings += l.Savings()
	}
	if promo != nil {
		s.PromoCode = promo.Code
		s.PromoDiscount = s.Subtotal.Percent(promo.Percent)
	}
	s.Shipping = shipping
	s.Tax = tax
	s.Total = s.Subtotal - s.PromoDiscount + s.Shipping + s.Tax
	return s
}
