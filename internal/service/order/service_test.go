package order

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"pasteleria-mil-sabores/internal/domain"
	orderrepo "pasteleria-mil-sabores/internal/repository/order"
)

type stubOrderRepo struct {
	created     []domain.Order
	createErrs  []error
	createCalls int
	latest      *domain.Order
	latestErr   error
	byNumber    *domain.Order
	byNumberErr error
}

func (s *stubOrderRepo) Create(_ context.Context, o domain.Order) (*domain.Order, error) {
	idx := s.createCalls
	s.createCalls++
	if idx < len(s.createErrs) && s.createErrs[idx] != nil {
		return nil, s.createErrs[idx]
	}
	o.ID = "order-id"
	s.created = append(s.created, o)
	return &o, nil
}

func (s *stubOrderRepo) GetByNumber(_ context.Context, _ string) (*domain.Order, error) {
	return s.byNumber, s.byNumberErr
}

func (s *stubOrderRepo) Latest(_ context.Context) (*domain.Order, error) {
	if s.latestErr != nil {
		return nil, s.latestErr
	}
	return s.latest, nil
}

func (s *stubOrderRepo) List(_ context.Context) ([]domain.Order, error) {
	return s.created, nil
}

func (s *stubOrderRepo) Watch(_ context.Context) <-chan domain.Order {
	return nil
}

type stubCart struct {
	total    int64
	totalErr error
	cleared  bool
	clearErr error
}

func (s *stubCart) Total(_ context.Context) (int64, error) {
	return s.total, s.totalErr
}

func (s *stubCart) Clear(_ context.Context) error {
	s.cleared = true
	return s.clearErr
}

type stubGate struct {
	loggedIn bool
	err      error
}

func (s *stubGate) IsLoggedIn(_ context.Context) (bool, error) {
	return s.loggedIn, s.err
}

func fixedNow() time.Time {
	return time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
}

func newTestService(repo *stubOrderRepo, cart *stubCart, gate *stubGate) *Service {
	svc := New(repo, cart, gate)
	svc.now = fixedNow
	svc.random = func() int { return 12345 }
	return svc
}

func validInput() CheckoutInput {
	return CheckoutInput{
		Address:      "Av. Siempre Viva 742",
		District:     "Providencia",
		DeliveryDate: "13/03/2025",
		Phone:        "987654321",
	}
}

func TestCreateOrderHappyPath(t *testing.T) {
	repo := &stubOrderRepo{}
	cart := &stubCart{total: 5000}
	svc := newTestService(repo, cart, &stubGate{loggedIn: true})

	order, err := svc.CreateOrder(context.Background(), validInput())
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	if order.TotalCents != 5000 {
		t.Errorf("total = %d, want 5000", order.TotalCents)
	}
	if order.Progress != 0 {
		t.Errorf("progress = %d, want 0", order.Progress)
	}
	if order.Status != domain.StatusPending {
		t.Errorf("status = %q, want Pending", order.Status)
	}
	want := regexp.MustCompile(`^PED-20250310-\d{5}$`)
	if !want.MatchString(order.OrderNumber) {
		t.Errorf("order number %q does not match PED-YYYYMMDD-NNNNN", order.OrderNumber)
	}
	if !cart.cleared {
		t.Error("cart was not cleared after checkout")
	}
}

func TestCreateOrderValidationKinds(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*CheckoutInput)
		kind   domain.ValidationKind
		field  string
	}{
		{"blank address", func(in *CheckoutInput) { in.Address = "   " }, domain.MissingField, "address"},
		{"blank district", func(in *CheckoutInput) { in.District = "" }, domain.MissingField, "district"},
		{"blank date", func(in *CheckoutInput) { in.DeliveryDate = "" }, domain.MissingField, "deliveryDate"},
		{"blank phone", func(in *CheckoutInput) { in.Phone = "" }, domain.MissingField, "phone"},
		{"bad date format", func(in *CheckoutInput) { in.DeliveryDate = "2025-03-13" }, domain.BadDateFormat, "deliveryDate"},
		{"date out of window", func(in *CheckoutInput) { in.DeliveryDate = "10/03/2025" }, domain.DateOutOfWindow, "deliveryDate"},
		{"short phone", func(in *CheckoutInput) { in.Phone = "1234567" }, domain.BadPhone, "phone"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &stubOrderRepo{}
			cart := &stubCart{total: 1000}
			svc := newTestService(repo, cart, &stubGate{loggedIn: true})

			in := validInput()
			tc.mutate(&in)

			_, err := svc.CreateOrder(context.Background(), in)
			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Kind != tc.kind {
				t.Errorf("kind = %q, want %q", verr.Kind, tc.kind)
			}
			if verr.Field != tc.field {
				t.Errorf("field = %q, want %q", verr.Field, tc.field)
			}
			if repo.createCalls != 0 {
				t.Error("no order must be persisted on validation failure")
			}
			if cart.cleared {
				t.Error("cart must stay intact on validation failure")
			}
		})
	}
}

func TestCreateOrderRequiresSession(t *testing.T) {
	repo := &stubOrderRepo{}
	svc := newTestService(repo, &stubCart{}, &stubGate{loggedIn: false})

	_, err := svc.CreateOrder(context.Background(), validInput())
	if !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
	if repo.createCalls != 0 {
		t.Error("no order must be persisted without a session")
	}
}

func TestCreateOrderRerollsOnNumberCollision(t *testing.T) {
	repo := &stubOrderRepo{
		createErrs: []error{orderrepo.ErrDuplicateNumber, orderrepo.ErrDuplicateNumber},
	}
	svc := newTestService(repo, &stubCart{total: 100}, &stubGate{loggedIn: true})

	rolls := 0
	svc.random = func() int {
		rolls++
		return 10000 + rolls
	}

	order, err := svc.CreateOrder(context.Background(), validInput())
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if repo.createCalls != 3 {
		t.Errorf("create attempts = %d, want 3", repo.createCalls)
	}
	if order.OrderNumber != "PED-20250310-10003" {
		t.Errorf("order number = %q, want the third roll", order.OrderNumber)
	}
}

func TestCreateOrderGivesUpAfterRepeatedCollisions(t *testing.T) {
	repo := &stubOrderRepo{
		createErrs: []error{
			orderrepo.ErrDuplicateNumber,
			orderrepo.ErrDuplicateNumber,
			orderrepo.ErrDuplicateNumber,
			orderrepo.ErrDuplicateNumber,
			orderrepo.ErrDuplicateNumber,
		},
	}
	cart := &stubCart{total: 100}
	svc := newTestService(repo, cart, &stubGate{loggedIn: true})

	_, err := svc.CreateOrder(context.Background(), validInput())
	if !errors.Is(err, ErrNumberExhausted) {
		t.Fatalf("expected ErrNumberExhausted, got %v", err)
	}
	if cart.cleared {
		t.Error("cart must stay intact when order creation fails")
	}
}

func TestCreateOrderPropagatesPersistenceFailure(t *testing.T) {
	boom := errors.New("disk full")
	repo := &stubOrderRepo{createErrs: []error{boom}}
	cart := &stubCart{total: 100}
	svc := newTestService(repo, cart, &stubGate{loggedIn: true})

	_, err := svc.CreateOrder(context.Background(), validInput())
	if !errors.Is(err, boom) {
		t.Fatalf("expected persistence error to propagate, got %v", err)
	}
	if cart.cleared {
		t.Error("cart must stay intact when the order insert fails")
	}
}

func TestLatestReturnsNotFoundWhenEmpty(t *testing.T) {
	repo := &stubOrderRepo{latestErr: domain.ErrNotFound}
	svc := newTestService(repo, &stubCart{}, &stubGate{loggedIn: true})

	_, err := svc.Latest(context.Background())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
