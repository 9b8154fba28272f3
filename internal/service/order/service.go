package order

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"pasteleria-mil-sabores/internal/domain"
	orderrepo "pasteleria-mil-sabores/internal/repository/order"
)

// ErrNumberExhausted is returned when order number generation keeps
// colliding past the retry budget.
var ErrNumberExhausted = errors.New("could not generate a unique order number")

const (
	orderNumberPrefix = "PED"
	minPhoneLength    = 8
	numberAttempts    = 5
)

// Service converts the current cart plus shipping details into a persisted
// Order, and answers order lookups.
type Service struct {
	orders orderRepo
	cart   cartTotaler
	gate   sessionGate
	now    func() time.Time
	random func() int
}

type orderRepo interface {
	Create(ctx context.Context, o domain.Order) (*domain.Order, error)
	GetByNumber(ctx context.Context, number string) (*domain.Order, error)
	Latest(ctx context.Context) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	Watch(ctx context.Context) <-chan domain.Order
}

type cartTotaler interface {
	Total(ctx context.Context) (int64, error)
	Clear(ctx context.Context) error
}

type sessionGate interface {
	IsLoggedIn(ctx context.Context) (bool, error)
}

func New(orders orderRepo, cart cartTotaler, gate sessionGate) *Service {
	return &Service{
		orders: orders,
		cart:   cart,
		gate:   gate,
		now:    time.Now,
		random: func() int { return rand.Intn(90000) + 10000 },
	}
}

// CheckoutInput carries the shipping details collected at checkout.
type CheckoutInput struct {
	Address      string `json:"address"`
	District     string `json:"district"`
	DeliveryDate string `json:"deliveryDate"`
	Phone        string `json:"phone"`
}

// CreateOrder validates in, snapshots the cart total into a new order with a
// generated number, persists it at progress 0 / Pending and clears the cart.
// Validation problems come back as *domain.ValidationError; a missing
// session comes back as domain.ErrNotAuthenticated.
func (s *Service) CreateOrder(ctx context.Context, in CheckoutInput) (*domain.Order, error) {
	loggedIn, err := s.gate.IsLoggedIn(ctx)
	if err != nil {
		return nil, fmt.Errorf("check session: %w", err)
	}
	if !loggedIn {
		return nil, domain.ErrNotAuthenticated
	}

	if verr := validateCheckout(in, s.now()); verr != nil {
		return nil, verr
	}

	total, err := s.cart.Total(ctx)
	if err != nil {
		return nil, fmt.Errorf("compute cart total: %w", err)
	}

	created, err := s.persistWithFreshNumber(ctx, domain.Order{
		Status:       domain.StatusPending,
		TotalCents:   total,
		Address:      strings.TrimSpace(in.Address),
		District:     strings.TrimSpace(in.District),
		DeliveryDate: strings.TrimSpace(in.DeliveryDate),
		Phone:        strings.TrimSpace(in.Phone),
		CreatedAt:    s.now().UTC(),
		Progress:     0,
	})
	if err != nil {
		return nil, err
	}

	if err := s.cart.Clear(ctx); err != nil {
		return nil, fmt.Errorf("clear cart after checkout: %w", err)
	}
	return created, nil
}

// persistWithFreshNumber re-rolls the random suffix on a detected collision;
// the order_number column carries a UNIQUE constraint.
func (s *Service) persistWithFreshNumber(ctx context.Context, o domain.Order) (*domain.Order, error) {
	for attempt := 0; attempt < numberAttempts; attempt++ {
		o.OrderNumber = s.generateOrderNumber()
		created, err := s.orders.Create(ctx, o)
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, orderrepo.ErrDuplicateNumber) {
			return nil, err
		}
	}
	return nil, ErrNumberExhausted
}

// generateOrderNumber builds PED-<YYYYMMDD>-<5 random digits>.
func (s *Service) generateOrderNumber() string {
	return fmt.Sprintf("%s-%s-%05d", orderNumberPrefix, s.now().Format("20060102"), s.random())
}

func validateCheckout(in CheckoutInput, now time.Time) *domain.ValidationError {
	for _, f := range []struct {
		name  string
		value string
	}{
		{"address", in.Address},
		{"district", in.District},
		{"deliveryDate", in.DeliveryDate},
		{"phone", in.Phone},
	} {
		if strings.TrimSpace(f.value) == "" {
			return &domain.ValidationError{Kind: domain.MissingField, Field: f.name}
		}
	}

	date := strings.TrimSpace(in.DeliveryDate)
	if _, err := ParseDeliveryDate(date); err != nil {
		return &domain.ValidationError{Kind: domain.BadDateFormat, Field: "deliveryDate"}
	}
	if !IsValidDeliveryDate(date, now) {
		return &domain.ValidationError{Kind: domain.DateOutOfWindow, Field: "deliveryDate"}
	}
	if len(strings.TrimSpace(in.Phone)) < minPhoneLength {
		return &domain.ValidationError{Kind: domain.BadPhone, Field: "phone"}
	}
	return nil
}

// Latest returns the most recent order, or domain.ErrNotFound when no order
// has been placed yet.
func (s *Service) Latest(ctx context.Context) (*domain.Order, error) {
	return s.orders.Latest(ctx)
}

func (s *Service) GetByNumber(ctx context.Context, number string) (*domain.Order, error) {
	return s.orders.GetByNumber(ctx, number)
}

func (s *Service) List(ctx context.Context) ([]domain.Order, error) {
	return s.orders.List(ctx)
}

// Watch emits the most recent order after every order change until ctx is
// done.
func (s *Service) Watch(ctx context.Context) <-chan domain.Order {
	return s.orders.Watch(ctx)
}
