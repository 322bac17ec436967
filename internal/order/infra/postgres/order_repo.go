package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dwikikusuma/ja-fashion/internal/order/app"
	"github.com/dwikikusuma/ja-fashion/internal/order/domain"
	"github.com/dwikikusuma/ja-fashion/internal/order/infra/postgres/orderdb"
	"github.com/dwikikusuma/ja-fashion/pkg/money"
	"github.com/google/uuid"
)

type OrderRepo struct {
	*orderdb.Queries
	db *sql.DB
}

func NewOrderRepo(db *sql.DB) *OrderRepo {
	return &OrderRepo{
		Queries: orderdb.New(db),
		db:      db,
	}
}

func (r *OrderRepo) execTX(ctx context.Context, fn func(queries *orderdb.Queries) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	q := orderdb.New(tx)
	err = fn(q)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("tx err: %w; rollback err: %v", err, rbErr)
		}
		return err
	}

	return tx.Commit()
}

func (r *OrderRepo) CreateOrderTx(ctx context.Context, order domain.Order) (domain.Order, error) {
	var created domain.Order

	err := r.execTX(ctx, func(q *orderdb.Queries) error {
		o, err := q.CreateOrder(ctx, orderdb.CreateOrderParams{
			UserID:             order.UserID,
			CustomerName:       order.Customer.Name,
			CustomerPhone:      order.Customer.Phone,
			CustomerEmail:      order.Customer.Email,
			CustomerAddress:    order.Customer.Address,
			CustomerCity:       order.Customer.City,
			CustomerPostalCode: order.Customer.PostalCode,
			Subtotal:           int64(order.Subtotal),
			Savings:            int64(order.Savings),
			PromoCode:          sql.NullString{String: order.PromoCode, Valid: order.PromoCode != ""},
			PromoDiscount:      int64(order.PromoDiscount),
			Shipping:           int64(order.Shipping),
			Tax:                int64(order.Tax),
			Total:              int64(order.Total),
			Status:             order.Status,
		})
		if err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		items := make([]domain.OrderItem, 0, len(order.Items))
		for i, item := range order.Items {
			if item.LineTotal != item.Price.Times(item.Quantity) {
				return fmt.Errorf("item %d: line total mismatch", i)
			}

			row, err := q.AddOrderItem(ctx, orderdb.AddOrderItemParams{
				OrderID:       o.ID,
				ProductID:     item.ProductID,
				Name:          item.Name,
				Price:         int64(item.Price),
				OriginalPrice: sql.NullInt64{Int64: int64(item.OriginalPrice), Valid: item.OriginalPrice > 0},
				Image:         item.Image,
				Color:         item.Color,
				Size:          item.Size,
				Category:      item.Category,
				Quantity:      int32(item.Quantity),
				LineTotal:     int64(item.LineTotal),
			})
			if err != nil {
				return fmt.Errorf("failed to insert item %d: %w", i, err)
			}
			items = append(items, toItem(row))
		}

		created = toOrder(o)
		created.Items = items
		return nil
	})
	if err != nil {
		return domain.Order{}, err
	}
	return created, nil
}

func (r *OrderRepo) Get(ctx context.Context, id string) (domain.Order, error) {
	oid, err := uuid.Parse(id)
	if err != nil {
		return domain.Order{}, app.ErrNotFound
	}
	o, err := r.GetOrder(ctx, oid)
	return r.withItems(ctx, o, err)
}

func (r *OrderRepo) GetByPaymentIntent(ctx context.Context, paymentIntentID string) (domain.Order, error) {
	o, err := r.GetOrderByPaymentIntent(ctx, sql.NullString{String: paymentIntentID, Valid: true})
	return r.withItems(ctx, o, err)
}

func (r *OrderRepo) withItems(ctx context.Context, o orderdb.Order, err error) (domain.Order, error) {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Order{}, app.ErrNotFound
	}
	if err != nil {
		return domain.Order{}, fmt.Errorf("get order: %w", err)
	}
	orders, err := r.attachItems(ctx, []orderdb.Order{o})
	if err != nil {
		return domain.Order{}, err
	}
	return orders[0], nil
}

func (r *OrderRepo) ListByUser(ctx context.Context, userID string, limit int) ([]domain.Order, error) {
	rows, err := r.ListOrdersByUser(ctx, orderdb.ListOrdersByUserParams{
		UserID: userID,
		Limit:  sql.NullInt32{Int32: int32(limit), Valid: limit > 0},
	})
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return r.attachItems(ctx, rows)
}

// attachItems loads the items of all orders in one query.
func (r *OrderRepo) attachItems(ctx context.Context, rows []orderdb.Order) ([]domain.Order, error) {
	out := make([]domain.Order, 0, len(rows))
	if len(rows) == 0 {
		return out, nil
	}

	ids := make([]string, 0, len(rows))
	index := make(map[uuid.UUID]int, len(rows))
	for i, o := range rows {
		ids = append(ids, o.ID.String())
		index[o.ID] = i
		out = append(out, toOrder(o))
	}

	items, err := r.ListOrderItems(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	for _, it := range items {
		i := index[it.OrderID]
		out[i].Items = append(out[i].Items, toItem(it))
	}
	return out, nil
}

func (r *OrderRepo) UpdateStatus(ctx context.Context, id, status string) error {
	oid, err := uuid.Parse(id)
	if err != nil {
		return app.ErrNotFound
	}
	n, err := r.UpdateOrderStatus(ctx, orderdb.UpdateOrderStatusParams{ID: oid, Status: status})
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if n == 0 {
		return app.ErrNotFound
	}
	return nil
}

func (r *OrderRepo) SetPaymentIntent(ctx context.Context, id, paymentIntentID string) error {
	oid, err := uuid.Parse(id)
	if err != nil {
		return app.ErrNotFound
	}
	n, err := r.Queries.SetPaymentIntent(ctx, orderdb.SetPaymentIntentParams{
		ID:              oid,
		PaymentIntentID: sql.NullString{String: paymentIntentID, Valid: true},
	})
	if err != nil {
		return fmt.Errorf("set payment intent: %w", err)
	}
	if n == 0 {
		return app.ErrNotFound
	}
	return nil
}

func toOrder(o orderdb.Order) domain.Order {
	return domain.Order{
		ID:     o.ID.String(),
		UserID: o.UserID,
		Customer: domain.Customer{
			Name:       o.CustomerName,
			Phone:      o.CustomerPhone,
			Email:      o.CustomerEmail,
			Address:    o.CustomerAddress,
			City:       o.CustomerCity,
			PostalCode: o.CustomerPostalCode,
		},
		Subtotal:        money.Amount(o.Subtotal),
		Savings:         money.Amount(o.Savings),
		PromoCode:       o.PromoCode.String,
		PromoDiscount:   money.Amount(o.PromoDiscount),
		Shipping:        money.Amount(o.Shipping),
		Tax:             money.Amount(o.Tax),
		Total:           money.Amount(o.Total),
		Status:          o.Status,
		PaymentIntentID: o.PaymentIntentID.String,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func toItem(row orderdb.OrderItem) domain.OrderItem {
	return domain.OrderItem{
		ID:            row.ID.String(),
		OrderID:       row.OrderID.String(),
		ProductID:     row.ProductID,
		Name:          row.Name,
		Price:         money.Amount(row.Price),
		OriginalPrice: money.Amount(row.OriginalPrice.Int64),
		Image:         row.Image,
		Color:         row.Color,
		Size:          row.Size,
		Category:      row.Category,
		Quantity:      int(row.Quantity),
		LineTotal:     money.Amount(row.LineTotal),
	}
}
