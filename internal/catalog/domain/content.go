package domain

import "github.com/dwikikusuma/ja-fashion/pkg/money"

type City struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Slug         string       `json:"slug"`
	Province     string       `json:"province,omitempty"`
	Country      string       `json:"country"`
	ShippingCost money.Amount `json:"shippingCost"`
	DeliveryDays int          `json:"deliveryTime"`
	IsActive     bool         `json:"isActive"`
	Description  string       `json:"description,omitempty"`
}

type Testimonial struct {
	ID           string `json:"id"`
	CustomerName string `json:"customerName"`
	Text         string `json:"testimonial"`
}

type PortfolioItem struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Price       money.Amount `json:"price"`
	Category    string       `json:"category,omitempty"`
	Color       string       `json:"color,omitempty"`
	Sizes       []string     `json:"sizes,omitempty"`
	InStock     bool         `json:"inStock"`
	IsNew       bool         `json:"isNew"`
	IsSale      bool         `json:"isSale"`
	Rating      float64      `json:"rating,omitempty"`
	Reviews     int          `json:"reviews,omitempty"`
	Featured    bool         `json:"featured"`
	ImageURLs   []string     `json:"images"`
}
