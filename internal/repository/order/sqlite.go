package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"pasteleria-mil-sabores/internal/domain"
	"pasteleria-mil-sabores/internal/watch"
)

type sqliteRepo struct {
	db  *sql.DB
	hub *watch.Hub[domain.Order]
}

func NewSQLite(db *sql.DB) Repository {
	return &sqliteRepo{
		db:  db,
		hub: watch.NewHub[domain.Order](),
	}
}

const orderColumns = "id, order_number, status, total_cents, address, district, delivery_date, phone, created_at, progress"

func (r *sqliteRepo) Create(ctx context.Context, o domain.Order) (*domain.Order, error) {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx, `
INSERT INTO orders (id, order_number, status, total_cents, address, district, delivery_date, phone, created_at, progress)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`, o.ID, o.OrderNumber, string(o.Status), o.TotalCents, o.Address, o.District, o.DeliveryDate, o.Phone, o.CreatedAt.UnixMilli(), o.Progress)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateNumber
		}
		return nil, fmt.Errorf("insert order: %w", err)
	}
	r.notify(ctx)
	return &o, nil
}

func (r *sqliteRepo) GetByNumber(ctx context.Context, number string) (*domain.Order, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT `+orderColumns+`
FROM orders
WHERE order_number = ?
`, number)
	return scanOrder(row)
}

func (r *sqliteRepo) Latest(ctx context.Context) (*domain.Order, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT `+orderColumns+`
FROM orders
ORDER BY created_at DESC, id DESC
LIMIT 1
`)
	return scanOrder(row)
}

func (r *sqliteRepo) List(ctx context.Context) ([]domain.Order, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT `+orderColumns+`
FROM orders
ORDER BY created_at DESC, id DESC
`)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		o, err := scanOrderRow(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *sqliteRepo) UpdateProgress(ctx context.Context, id string, from, to int, status domain.OrderStatus) error {
	cmd, err := r.db.ExecContext(ctx, `
UPDATE orders
SET progress = ?, status = ?
WHERE id = ? AND progress = ?
`, to, string(status), id, from)
	if err != nil {
		return fmt.Errorf("update order progress: %w", err)
	}
	n, err := cmd.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	r.notify(ctx)
	return nil
}

func (r *sqliteRepo) Watch(ctx context.Context) <-chan domain.Order {
	return r.hub.Subscribe(ctx)
}

func (r *sqliteRepo) notify(ctx context.Context) {
	latest, err := r.Latest(ctx)
	if err != nil {
		return
	}
	r.hub.Publish(*latest)
}

func scanOrder(row *sql.Row) (*domain.Order, error) {
	o, err := scanOrderRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrderRow(row rowScanner) (domain.Order, error) {
	var o domain.Order
	var status string
	var createdMillis int64
	if err := row.Scan(
		&o.ID,
		&o.OrderNumber,
		&status,
		&o.TotalCents,
		&o.Address,
		&o.District,
		&o.DeliveryDate,
		&o.Phone,
		&createdMillis,
		&o.Progress,
	); err != nil {
		return domain.Order{}, err
	}
	o.Status = domain.OrderStatus(status)
	o.CreatedAt = time.UnixMilli(createdMillis).UTC()
	return o, nil
}

func isUniqueViolation(err error) bool {
	var serr *sqlite.Error
	if errors.As(err, &serr) {
		return serr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
	}
	return false
}
