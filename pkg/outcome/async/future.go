package async

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/core"
)

// Future is an Outcome that is still being computed. It settles exactly once.
type Future[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	done      chan struct{}
	result    outcome.Outcome[T]
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		done:      make(chan struct{}),
	}
}

// Go computes f on its own goroutine. A panic in f settles the future as a
// failure carrying the panic value.
func Go[T any](ctx context.Context, f func(ctx context.Context) outcome.Outcome[T]) *Future[T] {
	fut := newFuture[T]()
	logger := core.Logger(ctx).With(zap.Stringer("future", fut.id))

	go func() {
		defer close(fut.done)

		fut.result = outcome.Capture(func() outcome.Outcome[T] {
			return f(ctx)
		})

		if fut.result.IsFailure() {
			logger.Debug("future failed", zap.Any("failure", fut.result.Failure()))
		} else {
			logger.Debug("future settled")
		}
	}()

	return fut
}

// Resolve returns a future that is already settled with o.
func Resolve[T any](o outcome.Outcome[T]) *Future[T] {
	fut := newFuture[T]()
	fut.result = o
	close(fut.done)
	return fut
}

// Await blocks until the future settles. If ctx is done first, Await returns a
// failure carrying ctx.Err(); the computation keeps running.
func (f *Future[T]) Await(ctx context.Context) outcome.Outcome[T] {
	select {
	case <-f.done:
		return f.result
	default:
	}

	select {
	case <-f.done:
		return f.result
	case <-ctx.Done():
		core.Logger(ctx).Debug("await abandoned",
			zap.Stringer("future", f.id),
			zap.Bool("cancelled", outcome.IsCancellationError(ctx.Err())))
		return outcome.Fail[T](ctx.Err())
	}
}

func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

func (f *Future[T]) ID() uuid.UUID {
	return f.id
}

func (f *Future[T]) CreatedAt() time.Time {
	return f.createdAt
}
