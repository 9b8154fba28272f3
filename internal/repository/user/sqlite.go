package user

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
)

type sqliteRepo struct {
	db *sql.DB
}

func NewSQLite(db *sql.DB) Repository {
	return &sqliteRepo{db: db}
}

const userColumns = "id, name, email, password_hash, address, birth_date, phone, rut, created_at"

func (r *sqliteRepo) Create(ctx context.Context, u domain.User) (*domain.User, error) {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx, `
INSERT INTO users (id, name, email, password_hash, address, birth_date, phone, rut, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
`, u.ID, u.Name, u.Email, u.PasswordHash, u.Address, u.BirthDate, u.Phone, u.RUT, u.CreatedAt.UnixMilli())
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &u, nil
}

func (r *sqliteRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.get(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
}

func (r *sqliteRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.get(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email)
}

func (r *sqliteRepo) Update(ctx context.Context, u domain.User) error {
	cmd, err := r.db.ExecContext(ctx, `
UPDATE users
SET name = ?, password_hash = ?, address = ?, birth_date = ?, phone = ?, rut = ?
WHERE id = ?
`, u.Name, u.PasswordHash, u.Address, u.BirthDate, u.Phone, u.RUT, u.ID)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	n, err := cmd.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *sqliteRepo) get(ctx context.Context, query string, arg any) (*domain.User, error) {
	var u domain.User
	var createdMillis int64
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.Address,
		&u.BirthDate,
		&u.Phone,
		&u.RUT,
		&createdMillis,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	u.CreatedAt = time.UnixMilli(createdMillis).UTC()
	return &u, nil
}

func isUniqueViolation(err error) bool {
	var serr *sqlite.Error
	if errors.As(err, &serr) {
		return serr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
	}
	return false
}
