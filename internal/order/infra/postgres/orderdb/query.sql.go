// source: query.sql

package orderdb

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

const orderColumns = `id, user_id, customer_name, customer_phone, customer_email, customer_address, customer_city,
    customer_postal_code, subtotal, savings, promo_code, promo_discount, shipping, tax, total, status,
    payment_intent_id, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (Order, error) {
	var i Order
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.CustomerName,
		&i.CustomerPhone,
		&i.CustomerEmail,
		&i.CustomerAddress,
		&i.CustomerCity,
		&i.CustomerPostalCode,
		&i.Subtotal,
		&i.Savings,
		&i.PromoCode,
		&i.PromoDiscount,
		&i.Shipping,
		&i.Tax,
		&i.Total,
		&i.Status,
		&i.PaymentIntentID,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const createOrder = `-- name: CreateOrder :one
INSERT INTO orders (
    user_id, customer_name, customer_phone, customer_email, customer_address, customer_city,
    customer_postal_code, subtotal, savings, promo_code, promo_discount, shipping, tax, total, status
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
RETURNING ` + orderColumns

type CreateOrderParams struct {
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
}

func (q *Queries) CreateOrder(ctx context.Context, arg CreateOrderParams) (Order, error) {
	row := q.db.QueryRowContext(ctx, createOrder,
		arg.UserID,
		arg.CustomerName,
		arg.CustomerPhone,
		arg.CustomerEmail,
		arg.CustomerAddress,
		arg.CustomerCity,
		arg.CustomerPostalCode,
		arg.Subtotal,
		arg.Savings,
		arg.PromoCode,
		arg.PromoDiscount,
		arg.Shipping,
		arg.Tax,
		arg.Total,
		arg.Status,
	)
	return scanOrder(row)
}

const addOrderItem = `-- name: AddOrderItem :one
INSERT INTO order_items (order_id, product_id, name, price, original_price, image, color, size, category, quantity, line_total)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING id, order_id, product_id, name, price, original_price, image, color, size, category, quantity, line_total, created_at
`

type AddOrderItemParams struct {
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
}

func scanItem(row rowScanner) (OrderItem, error) {
	var i OrderItem
	err := row.Scan(
		&i.ID,
		&i.OrderID,
		&i.ProductID,
		&i.Name,
		&i.Price,
		&i.OriginalPrice,
		&i.Image,
		&i.Color,
		&i.Size,
		&i.Category,
		&i.Quantity,
		&i.LineTotal,
		&i.CreatedAt,
	)
	return i, err
}

func (q *Queries) AddOrderItem(ctx context.Context, arg AddOrderItemParams) (OrderItem, error) {
	row := q.db.QueryRowContext(ctx, addOrderItem,
		arg.OrderID,
		arg.ProductID,
		arg.Name,
		arg.Price,
		arg.OriginalPrice,
		arg.Image,
		arg.Color,
		arg.Size,
		arg.Category,
		arg.Quantity,
		arg.LineTotal,
	)
	return scanItem(row)
}

const getOrder = `-- name: GetOrder :one
SELECT ` + orderColumns + ` FROM orders WHERE id = $1
`

func (q *Queries) GetOrder(ctx context.Context, id uuid.UUID) (Order, error) {
	return scanOrder(q.db.QueryRowContext(ctx, getOrder, id))
}

const getOrderByPaymentIntent = `-- name: GetOrderByPaymentIntent :one
SELECT ` + orderColumns + ` FROM orders WHERE payment_intent_id = $1
`

func (q *Queries) GetOrderByPaymentIntent(ctx context.Context, paymentIntentID sql.NullString) (Order, error) {
	return scanOrder(q.db.QueryRowContext(ctx, getOrderByPaymentIntent, paymentIntentID))
}

const listOrdersByUser = `-- name: ListOrdersByUser :many
SELECT ` + orderColumns + ` FROM orders WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2
`

type ListOrdersByUserParams struct {
	UserID string
	Limit  sql.NullInt32
}

func (q *Queries) ListOrdersByUser(ctx context.Context, arg ListOrdersByUserParams) ([]Order, error) {
	rows, err := q.db.QueryContext(ctx, listOrdersByUser, arg.UserID, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Order
	for rows.Next() {
		i, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listOrderItems = `-- name: ListOrderItems :many
SELECT id, order_id, product_id, name, price, original_price, image, color, size, category, quantity, line_total, created_at
FROM order_items WHERE order_id = ANY($1::uuid[]) ORDER BY order_id, created_at, id
`

// ListOrderItems takes the ids as text; pgx casts them to uuid[].
func (q *Queries) ListOrderItems(ctx context.Context, orderIDs []string) ([]OrderItem, error) {
	rows, err := q.db.QueryContext(ctx, listOrderItems, orderIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []OrderItem
	for rows.Next() {
		i, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updateOrderStatus = `-- name: UpdateOrderStatus :execrows
UPDATE orders SET status = $2, updated_at = now() WHERE id = $1
`

type UpdateOrderStatusParams struct {
	ID     uuid.UUID
	Status string
}

func (q *Queries) UpdateOrderStatus(ctx context.Context, arg UpdateOrderStatusParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, updateOrderStatus, arg.ID, arg.Status)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const setPaymentIntent = `-- name: SetPaymentIntent :execrows
UPDATE orders SET payment_intent_id = $2, updated_at = now() WHERE id = $1
`

type SetPaymentIntentParams struct {
	ID              uuid.UUID
	PaymentIntentID sql.NullString
}

func (q *Queries) SetPaymentIntent(ctx context.Context, arg SetPaymentIntentParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, setPaymentIntent, arg.ID, arg.PaymentIntentID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
