package cartdb

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type Cart struct {
	ID        uuid.UUID
	OwnerID   string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CartItem struct {
	CartID        uuid.UUID
	ProductID     string
	Name          string
	UnitPrice     int64
	OriginalPrice sql.NullInt64
	Image         string
	Color         string
	Size          string
	Category      string
	Quantity      int32
	AddedAt       time.Time
}
