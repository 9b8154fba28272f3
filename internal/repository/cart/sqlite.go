package cart

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"pasteleria-mil-sabores/internal/domain"
	"pasteleria-mil-sabores/internal/watch"
)

type sqliteRepo struct {
	db  *sql.DB
	hub *watch.Hub[[]domain.CartItem]
}

func NewSQLite(db *sql.DB) Repository {
	return &sqliteRepo{
		db:  db,
		hub: watch.NewHub[[]domain.CartItem](),
	}
}

func (r *sqliteRepo) Items(ctx context.Context) ([]domain.CartItem, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, product_id, name, description, unit_price_cents, image_ref, quantity, created_at
FROM cart_items
ORDER BY created_at ASC, id ASC
`)
	if err != nil {
		return nil, fmt.Errorf("query cart items: %w", err)
	}
	defer rows.Close()

	var items []domain.CartItem
	for rows.Next() {
		var it domain.CartItem
		var createdMillis int64
		if err := rows.Scan(
			&it.ID,
			&it.ProductID,
			&it.Name,
			&it.Description,
			&it.UnitPriceCents,
			&it.ImageRef,
			&it.Quantity,
			&createdMillis,
		); err != nil {
			return nil, fmt.Errorf("scan cart item: %w", err)
		}
		it.CreatedAt = time.UnixMilli(createdMillis).UTC()
		items = append(items, it)
	}
	return items, rows.Err()
}

// AddItem relies on the UNIQUE(product_id) constraint: concurrent adds for
// the same product serialize on a single upsert instead of racing a
// read-then-write merge.
func (r *sqliteRepo) AddItem(ctx context.Context, item domain.CartItem) error {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx, `
INSERT INTO cart_items (id, product_id, name, description, unit_price_cents, image_ref, quantity, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(product_id) DO UPDATE SET
	quantity = quantity + excluded.quantity
`, item.ID, item.ProductID, item.Name, item.Description, item.UnitPriceCents, item.ImageRef, item.Quantity, item.CreatedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("add cart item: %w", err)
	}
	r.notify(ctx)
	return nil
}

func (r *sqliteRepo) RemoveItem(ctx context.Context, productID string) error {
	cmd, err := r.db.ExecContext(ctx, `
DELETE FROM cart_items
WHERE product_id = ?
`, productID)
	if err != nil {
		return fmt.Errorf("remove cart item: %w", err)
	}
	if n, _ := cmd.RowsAffected(); n > 0 {
		r.notify(ctx)
	}
	return nil
}

func (r *sqliteRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM cart_items`); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	r.notify(ctx)
	return nil
}

func (r *sqliteRepo) Watch(ctx context.Context) <-chan []domain.CartItem {
	return r.hub.Subscribe(ctx)
}

func (r *sqliteRepo) notify(ctx context.Context) {
	items, err := r.Items(ctx)
	if err != nil {
		return
	}
	r.hub.Publish(items)
}
