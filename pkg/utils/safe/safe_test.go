package safe

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestGoSafeRestartsAfterPanic(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	done := make(chan string, 1)

	GoSafeWithCtx("worker", ctx, func(ctx context.Context) {
		if calls.Add(1) == 1 {
			panic("first run fails")
		}
		done <- GoID(ctx)
	})

	select {
	case id := <-done:
		if id != "worker" {
			t.Fatalf("expected goroutine id worker, got %q", id)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("goroutine was not restarted")
	}

	if calls.Load() != 2 {
		t.Fatalf("expected 2 runs, got %d", calls.Load())
	}
}

func TestGoSafeStopsWhenContextDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var calls atomic.Int32
	GoSafeWithCtx("stopper", ctx, func(ctx context.Context) {
		calls.Add(1)
		cancel()
		panic("boom")
	})

	time.Sleep(2 * restartDelay)
	if calls.Load() != 1 {
		t.Fatalf("expected a single run after cancel, got %d", calls.Load())
	}
}
