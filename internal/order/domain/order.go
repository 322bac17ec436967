package domain

import (
	"strings"
	"time"

	"github.com/dwikikusuma/ja-fashion/pkg/money"
)

const (
	StatusPending       = "pending"
	StatusProcessing    = "processing"
	StatusPaid          = "paid"
	StatusPaymentFailed = "payment_failed"
	StatusShipped       = "shipped"
	StatusDelivered     = "delivered"
	StatusCancelled     = "cancelled"
)

var knownStatuses = map[string]bool{
	StatusPending:       true,
	StatusProcessing:    true,
	StatusPaid:          true,
	StatusPaymentFailed: true,
	StatusShipped:       true,
	StatusDelivered:     true,
	StatusCancelled:     true,
}

func ValidStatus(s string) bool {
	return knownStatuses[s]
}

type Customer struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
}

type Order struct {
	ID              string       `json:"id"`
	UserID          string       `json:"userId,omitempty"`
	Customer        Customer     `json:"customer"`
	Subtotal        money.Amount `json:"subtotal"`
	Savings         money.Amount `json:"savings"`
	PromoCode       string       `json:"promoCode,omitempty"`
	PromoDiscount   money.Amount `json:"promoDiscount"`
	Shipping        money.Amount `json:"shipping"`
	Tax             money.Amount `json:"tax"`
	Total           money.Amount `json:"total"`
	Status          string       `json:"status"`
	PaymentIntentID string       `json:"paymentIntentId,omitempty"`
	Items           []OrderItem  `json:"items"`
	CreatedAt       time.Time    `json:"createdAt"`
	UpdatedAt       time.Time    `json:"updatedAt"`
}

type OrderItem struct {
	ID            string       `json:"id"`
	OrderID       string       `json:"orderId"`
	ProductID     string       `json:"productId"`
	Name          string       `json:"name"`
	Price         money.Amount `json:"price"`
	OriginalPrice money.Amount `json:"originalPrice,omitempty"`
	Image         string       `json:"image,omitempty"`
	Color         string       `json:"color,omitempty"`
	Size          string       `json:"size,omitempty"`
	Category      string       `json:"category,omitempty"`
	Quantity      int          `json:"quantity"`
	LineTotal     money.Amount `json:"lineTotal"`
}

func (o Order) ItemCount() int {
	n := 0
	for _, it := range o.Items {
		n += it.Quantity
	}
	return n
}

type CreateOrderRequest struct {
	UserID        string
	Customer      Customer
	PromoCode     string
	PromoDiscount money.Amount
	Shipping      money.Amount
	Tax           money.Amount
	Items         []OrderItemRequest
}

type OrderItemRequest struct {
	ProductID     string
	Name          string
	Price         money.Amount
	OriginalPrice money.Amount
	Image         string
	Color         string
	Size          string
	Category      string
	Quantity      int
}

// Badge is how a status is shown on the order history page.
type Badge struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// StatusBadge maps the fulfilment statuses to a label and color. Others are
// shown as-is in gray.
func StatusBadge(status string) Badge {
	switch strings.ToLower(status) {
	case StatusDelivered:
		return Badge{Label: "Delivered", Color: "green"}
	case StatusShipped:
		return Badge{Label: "Shipped", Color: "blue"}
	case StatusProcessing:
		return Badge{Label: "Processing", Color: "yellow"}
	case StatusCancelled:
		return Badge{Label: "Cancelled", Color: "red"}
	default:
		return Badge{Label: status, Color: "gray"}
	}
}
