package product

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"pasteleria-mil-sabores/internal/domain"
)

type sqliteRepo struct {
	db *sql.DB
}

func NewSQLite(db *sql.DB) Repository {
	return &sqliteRepo{db: db}
}

const productColumns = "id, code, name, description, price_cents, currency, image_ref, category, created_at"

func (r *sqliteRepo) List(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT `+productColumns+`
FROM products
ORDER BY code ASC
`)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *sqliteRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT `+productColumns+`
FROM products
WHERE id = ?
`, id)

	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *sqliteRepo) Upsert(ctx context.Context, p domain.Product) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx, `
INSERT INTO products (id, code, name, description, price_cents, currency, image_ref, category, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(code) DO UPDATE SET
	name = excluded.name,
	description = excluded.description,
	price_cents = excluded.price_cents,
	currency = excluded.currency,
	image_ref = excluded.image_ref,
	category = excluded.category
`, p.ID, p.Code, p.Name, p.Description, p.PriceCents, p.Currency, p.ImageRef, p.Category, p.CreatedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("upsert product %s: %w", p.Code, err)
	}
	return nil
}

func (r *sqliteRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (domain.Product, error) {
	var p domain.Product
	var createdMillis int64
	if err := row.Scan(
		&p.ID,
		&p.Code,
		&p.Name,
		&p.Description,
		&p.PriceCents,
		&p.Currency,
		&p.ImageRef,
		&p.Category,
		&createdMillis,
	); err != nil {
		return domain.Product{}, err
	}
	p.CreatedAt = time.UnixMilli(createdMillis).UTC()
	return p, nil
}
