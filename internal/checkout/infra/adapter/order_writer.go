package adapter

import (
	"context"

	checkoutapp "github.com/dwikikusuma/ja-fashion/internal/checkout/app"
	orderapp "github.com/dwikikusuma/ja-fashion/internal/order/app"
	orderdomain "github.com/dwikikusuma/ja-fashion/internal/order/domain"
)

type OrderServiceWriter struct {
	svc *orderapp.Service
}

func NewOrderServiceWriter(svc *orderapp.Service) *OrderServiceWriter {
	return &OrderServiceWriter{svc: svc}
}

func (w *OrderServiceWriter) Create(ctx context.Context, d checkoutapp.OrderDraft) (checkoutapp.PlacedOrder, error) {
	items := make([]orderdomain.OrderItemRequest, 0, len(d.Lines))
	for _, l := range d.Lines {
		items = append(items, orderdomain.OrderItemRequest{
			ProductID:     l.ProductID,
			Name:          l.Name,
			Price:         l.UnitPrice,
			OriginalPrice: l.OriginalPrice,
			Image:         l.Image,
			Color:         l.Color,
			Size:          l.Size,
			Category:      l.Category,
			Quantity:      l.Quantity,
		})
	}

	o, err := w.svc.Create(ctx, orderdomain.CreateOrderRequest{
		UserID: d.UserID,
		Customer: orderdomain.Customer{
			Name:       d.Address.Name,
			Phone:      d.Address.Phone,
			Email:      d.Address.Email,
			Address:    d.Address.Address,
			City:       d.Address.City,
			PostalCode: d.Address.PostalCode,
		},
		PromoCode:     d.Summary.PromoCode,
		PromoDiscount: d.Summary.PromoDiscount,
		Shipping:      d.Summary.Shipping,
		Tax:           d.Summary.Tax,
		Items:         items,
	})
	if err != nil {
		return checkoutapp.PlacedOrder{}, err
	}
	return checkoutapp.PlacedOrder{ID: o.ID, Status: o.Status, CreatedAt: o.CreatedAt}, nil
}
