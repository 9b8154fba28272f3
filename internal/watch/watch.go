// Package watch provides in-process change notification for live
// projections: subscribers always observe the latest published value and a
// slow subscriber never blocks a publisher.
package watch

import (
	"context"
	"sync"
)

// Hub fans the latest value of T out to subscribers. Each subscriber channel
// has capacity one; when a subscriber lags, the pending value is replaced by
// the newer one rather than queued.
type Hub[T any] struct {
	mu   sync.Mutex
	subs map[chan T]struct{}
}

func NewHub[T any]() *Hub[T] {
	return &Hub[T]{subs: make(map[chan T]struct{})}
}

// Subscribe registers a subscriber whose channel delivers every state change
// until ctx is done. The channel is closed on cancellation.
func (h *Hub[T]) Subscribe(ctx context.Context) <-chan T {
	ch := make(chan T, 1)

	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	go func() {
		<-ctx.Done()
		h.mu.Lock()
		delete(h.subs, ch)
		close(ch)
		h.mu.Unlock()
	}()

	return ch
}

// Publish delivers v to all current subscribers without blocking. A pending
// undelivered value is dropped in favor of v.
func (h *Hub[T]) Publish(v T) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for ch := range h.subs {
		select {
		case ch <- v:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- v:
			default:
			}
		}
	}
}

// Subscribers reports the current subscriber count.
func (h *Hub[T]) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
