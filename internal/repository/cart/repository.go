package cart

import (
	"context"

	"pasteleria-mil-sabores/internal/domain"
)

// Repository owns the active cart's line items. Mutations are atomic at the
// storage layer and every successful mutation is published to watchers, so
// subscribed views track the persisted state without polling.
type Repository interface {
	Items(ctx context.Context) ([]domain.CartItem, error)
	// AddItem inserts the line item, or increments the quantity of the
	// existing row for the same product, in a single statement.
	AddItem(ctx context.Context, item domain.CartItem) error
	// RemoveItem deletes the line item for productID. Absent is a no-op.
	RemoveItem(ctx context.Context, productID string) error
	Clear(ctx context.Context) error
	// Watch emits the full line-item list after every cart mutation until
	// ctx is done.
	Watch(ctx context.Context) <-chan []domain.CartItem
}
