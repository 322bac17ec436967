// source: query.sql

package wishlistdb

import (
	"context"
	"database/sql"
)

const addItem = `-- name: AddItem :exec
INSERT INTO wishlist_items (owner_id, product_id, name, price, original_price, image, color, size, category)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (owner_id, product_id) DO NOTHING
`

type AddItemParams struct {
	OwnerID       string
	ProductID     string
	Name          string
	Price         int64
	OriginalPrice sql.NullInt64
	Image         string
	Color         string
	Size          string
	Category      string
}

func (q *Queries) AddItem(ctx context.Context, arg AddItemParams) error {
	_, err := q.db.ExecContext(ctx, addItem,
		arg.OwnerID,
		arg.ProductID,
		arg.Name,
		arg.Price,
		arg.OriginalPrice,
		arg.Image,
		arg.Color,
		arg.Size,
		arg.Category,
	)
	return err
}

const removeItem = `-- name: RemoveItem :exec
DELETE FROM wishlist_items WHERE owner_id = $1 AND product_id = $2
`

type RemoveItemParams struct {
	OwnerID   string
	ProductID string
}

func (q *Queries) RemoveItem(ctx context.Context, arg RemoveItemParams) error {
	_, err := q.db.ExecContext(ctx, removeItem, arg.OwnerID, arg.ProductID)
	return err
}

const listItems = `-- name: ListItems :many
SELECT owner_id, product_id, name, price, original_price, image, color, size, category, added_at
FROM wishlist_items
WHERE owner_id = $1
ORDER BY added_at DESC, product_id
LIMIT $2
`

type ListItemsParams struct {
	OwnerID string
	Limit   sql.NullInt32
}

func (q *Queries) ListItems(ctx context.Context, arg ListItemsParams) ([]WishlistItem, error) {
	rows, err := q.db.QueryContext(ctx, listItems, arg.OwnerID, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []WishlistItem
	for rows.Next() {
		var i WishlistItem
		if err := rows.Scan(
			&i.OwnerID,
			&i.ProductID,
			&i.Name,
			&i.Price,
			&i.OriginalPrice,
			&i.Image,
			&i.Color,
			&i.Size,
			&i.Category,
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

const hasItem = `-- name: HasItem :one
SELECT EXISTS (SELECT 1 FROM wishlist_items WHERE owner_id = $1 AND product_id = $2)
`

type HasItemParams struct {
	OwnerID   string
	ProductID string
}

func (q *Queries) HasItem(ctx context.Context, arg HasItemParams) (bool, error) {
	row := q.db.QueryRowContext(ctx, hasItem, arg.OwnerID, arg.ProductID)
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}

const countItems = `-- name: CountItems :one
SELECT count(*) FROM wishlist_items WHERE owner_id = $1
`

func (q *Queries) CountItems(ctx context.Context, ownerID string) (int64, error) {
	row := q.db.QueryRowContext(ctx, countItems, ownerID)
	var count int64
	err := row.Scan(&count)
	return count, err
}
