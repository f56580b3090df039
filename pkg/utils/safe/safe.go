package safe

import (
	"context"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/masteryyh/tablekit/pkg/utils/signal"
)

const restartDelay = 500 * time.Millisecond

type goIDKey struct{}

// GoID returns the name given to the goroutine running with ctx.
func GoID(ctx context.Context) string {
	id, _ := ctx.Value(goIDKey{}).(string)
	return id
}

func GoSafe(name string, fn func(ctx context.Context)) {
	GoSafeWithCtx(name, nil, fn)
}

// GoSafeWithCtx runs fn in a goroutine, restarting it after a panic until ctx
// is done. A nil ctx uses the process base context.
func GoSafeWithCtx(name string, ctx context.Context, fn func(ctx context.Context)) {
	if ctx == nil {
		ctx = signal.GetBaseContext()
	}

	go func() {
		for {
			runCtx, cancel := context.WithCancel(context.WithValue(ctx, goIDKey{}, name))
			panicked := run(runCtx, name, fn)
			cancel()

			if !panicked {
				return
			}
			select {
			case <-ctx.Done():
				return
			case <-time.After(restartDelay):
			}
		}
	}()
}

func run(ctx context.Context, name string, fn func(ctx context.Context)) (panicked bool) {
	defer func() {
		if r := recover(); r != nil {
			panicked = true
			slog.ErrorContext(ctx, "recovered from panic, restarting", "goroutine", name, "error", r, "stack", string(debug.Stack()))
		}
	}()
	fn(ctx)
	return false
}
