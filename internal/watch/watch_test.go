package watch

import (
	"context"
	"testing"
	"time"
)

func TestHubDeliversLatestValue(t *testing.T) {
	hub := NewHub[int]()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := hub.Subscribe(ctx)

	hub.Publish(1)
	hub.Publish(2)

	select {
	case got := <-ch:
		if got != 2 {
			t.Fatalf("expected latest value 2, got %d", got)
		}
	case <-time.After(time.Second):
		t.Fatal("no value delivered")
	}
}

func TestHubPublishDoesNotBlockOnSlowSubscriber(t *testing.T) {
	hub := NewHub[int]()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_ = hub.Subscribe(ctx) // never read

	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			hub.Publish(i)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}
}

func TestHubSubscriptionEndsWithContext(t *testing.T) {
	hub := NewHub[int]()
	ctx, cancel := context.WithCancel(context.Background())

	ch := hub.Subscribe(ctx)
	cancel()

	deadline := time.After(time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				if n := hub.Subscribers(); n != 0 {
					t.Fatalf("expected 0 subscribers after cancel, got %d", n)
				}
				return
			}
		case <-deadline:
			t.Fatal("channel not closed after context cancellation")
		}
	}
}
