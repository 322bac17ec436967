package domain

import (
	"time"

	"github.com/dwikikusuma/ja-fashion/pkg/money"
)

const StatusActive = "ACTIVE"

// CartItem snapshots the product at the time it was added.
type CartItem struct {
	ProductID     string       `json:"productId"`
	Name          string       `json:"name"`
	UnitPrice     money.Amount `json:"price"`
	OriginalPrice money.Amount `json:"originalPrice,omitempty"`
	Image         string       `json:"image,omitempty"`
	Color         string       `json:"color,omitempty"`
	Size          string       `json:"size,omitempty"`
	Category      string       `json:"category,omitempty"`
	Quantity      int          `json:"quantity"`
	AddedAt       time.Time    `json:"addedAt"`
}

func (i CartItem) LineTotal() money.Amount {
	return i.UnitPrice.Times(i.Quantity)
}

type Cart struct {
	ID        string     `json:"id"`
	OwnerID   string     `json:"ownerId"`
	Status    string     `json:"status"`
	Items     []CartItem `json:"items"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// Add puts item in the cart, or bumps the quantity of the existing row.
// A non-positive quantity counts as one.
func (c *Cart) Add(item CartItem) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	for i := range c.Items {
		if c.Items[i].ProductID == item.ProductID {
			c.Items[i].Quantity += item.Quantity
			return
		}
	}
	c.Items = append(c.Items, item)
}

// SetQuantity sets an item's quantity; below one removes it.
func (c *Cart) SetQuantity(productID string, qty int) {
	if qty < 1 {
		c.Remove(productID)
		return
	}
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = qty
			return
		}
	}
}

func (c *Cart) Remove(productID string) {
	out := c.Items[:0]
	for _, it := range c.Items {
		if it.ProductID != productID {
			out = append(out, it)
		}
	}
	c.Items = out
}

func (c *Cart) Clear() {
	c.Items = nil
}

func (c Cart) TotalItems() int {
	n := 0
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

func (c Cart) TotalPrice() money.Amount {
	var total money.Amount
	for _, it := range c.Items {
		total += it.LineTotal()
	}
	return total
}

func (c Cart) Contains(productID string) bool {
	return c.QuantityOf(productID) > 0
}

func (c Cart) QuantityOf(productID string) int {
	for _, it := range c.Items {
		if it.ProductID == productID {
			return it.Quantity
		}
	}
	return 0
}
