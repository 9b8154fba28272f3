package order

import (
	"context"
	"errors"

	"pasteleria-mil-sabores/internal/domain"
)

// ErrDuplicateNumber reports a collision on the generated order number; the
// caller re-rolls and retries.
var ErrDuplicateNumber = errors.New("duplicate order number")

// Repository persists orders. An order is written once; afterwards only the
// progress/status pair changes, and only through UpdateProgress.
type Repository interface {
	Create(ctx context.Context, o domain.Order) (*domain.Order, error)
	GetByNumber(ctx context.Context, number string) (*domain.Order, error)
	// Latest returns the most recently created order, or domain.ErrNotFound
	// when no order exists yet.
	Latest(ctx context.Context) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	// UpdateProgress moves the order from progress `from` to `to` and sets
	// the matching status label. It is a compare-and-swap: when the stored
	// progress no longer equals `from`, domain.ErrNotFound is returned and
	// nothing changes.
	UpdateProgress(ctx context.Context, id string, from, to int, status domain.OrderStatus) error
	// Watch emits the most recent order after every order mutation until
	// ctx is done.
	Watch(ctx context.Context) <-chan domain.Order
}
