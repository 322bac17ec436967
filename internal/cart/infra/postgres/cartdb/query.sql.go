// source: query.sql

package cartdb

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

const getActiveCartByOwner = `-- name: GetActiveCartByOwner :one
SELECT id, owner_id, status, created_at, updated_at
FROM carts
WHERE owner_id = $1 AND status = 'ACTIVE'
`

func (q *Queries) GetActiveCartByOwner(ctx context.Context, ownerID string) (Cart, error) {
	row := q.db.QueryRowContext(ctx, getActiveCartByOwner, ownerID)
	var i Cart
	err := row.Scan(
		&i.ID,
		&i.OwnerID,
		&i.Status,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const createActiveCart = `-- name: CreateActiveCart :one
INSERT INTO carts (id, owner_id, status)
VALUES ($1, $2, 'ACTIVE')
RETURNING id, owner_id, status, created_at, updated_at
`

type CreateActiveCartParams struct {
	ID      uuid.UUID
	OwnerID string
}

func (q *Queries) CreateActiveCart(ctx context.Context, arg CreateActiveCartParams) (Cart, error) {
	row := q.db.QueryRowContext(ctx, createActiveCart, arg.ID, arg.OwnerID)
	var i Cart
	err := row.Scan(
		&i.ID,
		&i.OwnerID,
		&i.Status,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listCartItems = `-- name: ListCartItems :many
SELECT cart_id, product_id, name, unit_price, original_price, image, color, size, category, quantity, added_at
FROM cart_items
WHERE cart_id = $1
ORDER BY added_at, product_id
`

func (q *Queries) ListCartItems(ctx context.Context, cartID uuid.UUID) ([]CartItem, error) {
	rows, err := q.db.QueryContext(ctx, listCartItems, cartID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []CartItem
	for rows.Next() {
		var i CartItem
		if err := rows.Scan(
			&i.CartID,
			&i.ProductID,
			&i.Name,
			&i.UnitPrice,
			&i.OriginalPrice,
			&i.Image,
			&i.Color,
			&i.Size,
			&i.Category,
			&i.Quantity,
			&i.AddedAt,
		); err != nil {
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

const upsertAddItemIncrement = `-- name: UpsertAddItemIncrement :one
INSERT INTO cart_items (cart_id, product_id, name, unit_price, original_price, image, color, size, category, quantity)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (cart_id, product_id)
DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity
RETURNING quantity
`

type UpsertAddItemIncrementParams struct {
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
}

func (q *Queries) UpsertAddItemIncrement(ctx context.Context, arg UpsertAddItemIncrementParams) (int32, error) {
	row := q.db.QueryRowContext(ctx, upsertAddItemIncrement,
		arg.CartID,
		arg.ProductID,
		arg.Name,
		arg.UnitPrice,
		arg.OriginalPrice,
		arg.Image,
		arg.Color,
		arg.Size,
		arg.Category,
		arg.Quantity,
	)
	var quantity int32
	err := row.Scan(&quantity)
	return quantity, err
}

const setItemQuantity = `-- name: SetItemQuantity :execrows
UPDATE cart_items SET quantity = $3
WHERE cart_id = $1 AND product_id = $2
`

type SetItemQuantityParams struct {
	CartID    uuid.UUID
	ProductID string
	Quantity  int32
}

func (q *Queries) SetItemQuantity(ctx context.Context, arg SetItemQuantityParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, setItemQuantity, arg.CartID, arg.ProductID, arg.Quantity)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const removeItem = `-- name: RemoveItem :exec
DELETE FROM cart_items WHERE cart_id = $1 AND product_id = $2
`

type RemoveItemParams struct {
	CartID    uuid.UUID
	ProductID string
}

func (q *Queries) RemoveItem(ctx context.Context, arg RemoveItemParams) error {
	_, err := q.db.ExecContext(ctx, removeItem, arg.CartID, arg.ProductID)
	return err
}

const clearCart = `-- name: ClearCart :exec
DELETE FROM cart_items WHERE cart_id = $1
`

func (q *Queries) ClearCart(ctx context.Context, cartID uuid.UUID) error {
	_, err := q.db.ExecContext(ctx, clearCart, cartID)
	return err
}

const touchCart = `-- name: TouchCart :exec
UPDATE carts SET updated_at = now() WHERE id = $1
`

func (q *Queries) TouchCart(ctx context.Context, id uuid.UUID) error {
	_, err := q.db.ExecContext(ctx, touchCart, id)
	return err
}
