package tools

import (
	"context"

	"go.uber.org/zap"
)

// TaskFunc defines a function executed asynchronously.
type TaskFunc func(ctx context.Context) error

// Dispatch runs the task in a separate goroutine, fire-and-forget. Failures
// are logged under the task name; nothing is retried.
func Dispatch(ctx context.Context, name string, log *zap.Logger, fn TaskFunc) {
	go func() {
		if err := fn(ctx); err != nil {
			log.Error("background task failed",
				zap.String("task", name),
				zap.Error(err))
		}
	}()
}
