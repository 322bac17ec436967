package wishlistdb

import (
	"database/sql"
	"time"
)

type WishlistItem struct {
	OwnerID       string
	ProductID     string
	Name          string
	Price         int64
	OriginalPrice sql.NullInt64
	Image         string
	Color         string
	Size          string
	Category      string
	AddedAt       time.Time
}
