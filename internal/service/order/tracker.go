package order

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"pasteleria-mil-sabores/internal/domain"
)

// DefaultDwell is how long an order sits in a state before the tracker
// advances it.
const DefaultDwell = 3 * time.Second

// defaultMaxFailures is how many consecutive failed advancement cycles the
// tracker tolerates before reporting itself unhealthy.
const defaultMaxFailures = 5

type trackerRepo interface {
	Latest(ctx context.Context) (*domain.Order, error)
	UpdateProgress(ctx context.Context, id string, from, to int, status domain.OrderStatus) error
}

// Tracker drives the delivery state machine: once per dwell interval it
// reads the most recent order and, if it has not been delivered yet, bumps
// it one step. Because it always starts from the persisted progress it
// resumes mid-flight orders across process restarts.
type Tracker struct {
	orders trackerRepo
	dwell  time.Duration
	logger *log.Logger

	maxFailures int

	mu       sync.Mutex
	failures int
	lastErr  error
}

func NewTracker(orders trackerRepo, dwell time.Duration, logger *log.Logger) *Tracker {
	if dwell <= 0 {
		dwell = DefaultDwell
	}
	return &Tracker{
		orders:      orders,
		dwell:       dwell,
		logger:      logger,
		maxFailures: defaultMaxFailures,
	}
}

// Run advances the current order once per dwell interval until ctx is done.
// A failed cycle is logged and counted, never retried within the cycle.
func (t *Tracker) Run(ctx context.Context) {
	ticker := time.NewTicker(t.dwell)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := t.advanceOnce(ctx); err != nil {
				t.recordFailure(err)
				t.logger.Printf("order progress advance failed: %v", err)
			} else {
				t.recordSuccess()
			}
		case <-ctx.Done():
			return
		}
	}
}

// advanceOnce moves the most recent order one step forward. No order, or an
// already delivered order, is a successful no-op. The update is a
// compare-and-swap on the persisted progress, so a concurrent writer can
// never make progress skip or regress.
func (t *Tracker) advanceOnce(ctx context.Context) error {
	o, err := t.orders.Latest(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return err
	}
	if o.IsTerminal() {
		return nil
	}

	next := o.Progress + 1
	err = t.orders.UpdateProgress(ctx, o.ID, o.Progress, next, domain.StatusForProgress(next))
	if errors.Is(err, domain.ErrNotFound) {
		// Someone else moved or removed the order since we read it; the
		// next cycle re-reads.
		return nil
	}
	return err
}

// Healthy reports false, with the last error, once maxFailures consecutive
// cycles have failed. A successful cycle resets the counter.
func (t *Tracker) Healthy() (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.failures >= t.maxFailures {
		return false, t.lastErr
	}
	return true, nil
}

func (t *Tracker) recordFailure(err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.failures++
	t.lastErr = err
}

func (t *Tracker) recordSuccess() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.failures = 0
	t.lastErr = nil
}
