package cart

import (
	"context"
	"errors"

	"pasteleria-mil-sabores/internal/domain"
)

// Service maintains the active cart: it merges duplicate adds, removes and
// clears line items, and derives the total and item count from the persisted
// state.
type Service struct {
	repo     cartRepo
	products productRepo
}

type cartRepo interface {
	Items(ctx context.Context) ([]domain.CartItem, error)
	AddItem(ctx context.Context, item domain.CartItem) error
	RemoveItem(ctx context.Context, productID string) error
	Clear(ctx context.Context) error
	Watch(ctx context.Context) <-chan []domain.CartItem
}

type productRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

func New(repo cartRepo, products productRepo) *Service {
	return &Service{repo: repo, products: products}
}

// AddItem snapshots the catalog product and adds quantity of it to the cart.
// Adding a product already present increments the existing line's quantity;
// price changes in the catalog never touch lines already in the cart.
func (s *Service) AddItem(ctx context.Context, productID string, quantity int) error {
	if quantity <= 0 {
		return errors.New("quantity must be positive")
	}
	p, err := s.products.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return err
	}
	return s.repo.AddItem(ctx, domain.CartItem{
		ProductID:      p.ID,
		Name:           p.Name,
		Description:    p.Description,
		UnitPriceCents: p.PriceCents,
		ImageRef:       p.ImageRef,
		Quantity:       quantity,
	})
}

// RemoveItem deletes the product's line item. Removing an absent product is
// not an error.
func (s *Service) RemoveItem(ctx context.Context, productID string) error {
	return s.repo.RemoveItem(ctx, productID)
}

func (s *Service) Clear(ctx context.Context) error {
	return s.repo.Clear(ctx)
}

func (s *Service) Items(ctx context.Context) ([]domain.CartItem, error) {
	return s.repo.Items(ctx)
}

// Total computes the cart total in cents from the current line items. An
// empty cart totals zero.
func (s *Service) Total(ctx context.Context) (int64, error) {
	items, err := s.repo.Items(ctx)
	if err != nil {
		return 0, err
	}
	return domain.TotalCents(items), nil
}

// ItemCount sums the quantities over all line items.
func (s *Service) ItemCount(ctx context.Context) (int, error) {
	items, err := s.repo.Items(ctx)
	if err != nil {
		return 0, err
	}
	return domain.ItemCount(items), nil
}

// Watch is a live projection of the cart: it emits the full line-item list
// after every mutation until ctx is done.
func (s *Service) Watch(ctx context.Context) <-chan []domain.CartItem {
	return s.repo.Watch(ctx)
}
