package services

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestAvailabilityCheckerCoalescesRapidInput(t *testing.T) {
	var calls int32
	results := make(chan string, 4)

	checker := NewAvailabilityChecker(20*time.Millisecond,
		func(ctx context.Context, value string) (bool, error) {
			atomic.AddInt32(&calls, 1)
			return true, nil
		},
		func(value string, taken bool, err error) {
			results <- value
		},
	)
	defer checker.Stop()

	ctx := context.Background()
	checker.Input(ctx, "a")
	checker.Input(ctx, "ab")
	checker.Input(ctx, "abc")

	select {
	case got := <-results:
		if got != "abc" {
			t.Fatalf("checked value = %q, want the last input", got)
		}
	case <-time.After(time.Second):
		t.Fatalf("no result delivered")
	}

	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Fatalf("backend calls = %d, want 1", n)
	}
}

func TestAvailabilityCheckerDiscardsStaleInFlightResult(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	results := make(chan string, 4)

	checker := NewAvailabilityChecker(time.Millisecond,
		func(ctx context.Context, value string) (bool, error) {
			if value == "old" {
				close(started)
				<-release
			}
			return true, nil
		},
		func(value string, taken bool, err error) {
			results <- value
		},
	)
	defer checker.Stop()

	ctx := context.Background()
	checker.Input(ctx, "old")
	<-started

	// Newer input arrives while the old check is still in flight.
	checker.Input(ctx, "new")
	close(release)

	select {
	case got := <-results:
		if got != "new" {
			t.Fatalf("delivered %q, want only the newer value", got)
		}
	case <-time.After(time.Second):
		t.Fatalf("no result delivered")
	}

	select {
	case got := <-results:
		t.Fatalf("stale result %q leaked through", got)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestAvailabilityCheckerStopCancelsPending(t *testing.T) {
	results := make(chan string, 1)

	checker := NewAvailabilityChecker(20*time.Millisecond,
		func(ctx context.Context, value string) (bool, error) { return false, nil },
		func(value string, taken bool, err error) { results <- value },
	)

	checker.Input(context.Background(), "abc")
	checker.Stop()

	select {
	case got := <-results:
		t.Fatalf("result %q delivered after stop", got)
	case <-time.After(60 * time.Millisecond):
	}
}
