package orderdb

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type Order struct {
	ID                 uuid.UUID
	UserID             string
	CustomerName       string
	CustomerPhone      string
	CustomerEmail      string
	CustomerAddress    string
	CustomerCity       string
	CustomerPostalCode string
	Subtotal           int64
	Savings            int64
	PromoCode          sql.NullString
	PromoDiscount      int64
	Shipping           int64
	Tax                int64
	Total              int64
	Status             string
	PaymentIntentID    sql.NullString
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type OrderItem struct {
	ID            uuid.UUID
	OrderID       uuid.UUID
	ProductID     string
	Name          string
	Price         int64
	OriginalPrice sql.NullInt64
	Image         string
	Color         string
	Size          string
	Category      string
	Quantity      int32
	LineTotal     int64
	CreatedAt     time.Time
}
