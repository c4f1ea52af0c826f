package tiny

import (
	"context"

	"go.uber.org/zap"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/core"
	"github.com/ib-77/outcome/pkg/outcome/solo"
)

type Chain[T any] struct {
	ctx context.Context
	res outcome.Outcome[T]
}

func Start[T any](ctx context.Context, o outcome.Outcome[T]) Chain[T] {
	return Chain[T]{ctx: ctx, res: o}
}

func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, outcome.Success(v))
}

func (c Chain[T]) Outcome() outcome.Outcome[T] {
	return c.res
}

func (c Chain[T]) with(o outcome.Outcome[T]) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: o}
}

// Then composes functions that already return outcome.Outcome[T]
func (c Chain[T]) Then(onSuccess func(ctx context.Context, t T) outcome.Outcome[T]) Chain[T] {
	return c.with(solo.FlatMap(c.res, func(v T) outcome.Outcome[T] {
		return onSuccess(c.ctx, v)
	}))
}

func (c Chain[T]) RepeatUntil(onSuccess func(ctx context.Context, t T) outcome.Outcome[T],
	until func(ctx context.Context, t T) bool) Chain[T] {

	if c.res.IsFailure() {
		return c
	}

	for {
		c = c.Then(onSuccess)

		if c.res.IsFailure() || !until(c.ctx, c.res.Get()) {
			return c
		}
	}
}

func (c Chain[T]) While(onSuccess func(ctx context.Context, t T) outcome.Outcome[T],
	while func(ctx context.Context, t T) bool) Chain[T] {

	for c.res.IsSuccess() && while(c.ctx, c.res.Get()) {
		c = c.Then(onSuccess)
	}
	return c
}

func (c Chain[T]) Or(alternative Chain[T]) Chain[T] {
	if c.res.IsSuccess() {
		return c
	}
	return alternative
}

// ThenTry composes functions that return (T, error), like repo calls
func (c Chain[T]) ThenTry(try func(ctx context.Context, t T) (T, error)) Chain[T] {
	if c.res.IsFailure() {
		return c
	}

	next := solo.Try(c.res, func(v T) (T, error) {
		return try(c.ctx, v)
	})
	if next.IsFailure() {
		err := next.Err()
		core.Logger(c.ctx).Debug("chain step failed",
			zap.Error(err),
			zap.Bool("cancelled", outcome.IsCancellationError(err)))
	}
	return c.with(next)
}

// Map transforms the successful value to a new value
func (c Chain[T]) Map(onSuccess func(ctx context.Context, t T) T) Chain[T] {
	return c.with(solo.Map(c.res, func(v T) T {
		return onSuccess(c.ctx, v)
	}))
}

func (c Chain[T]) Filter(p func(ctx context.Context, t T) bool) Chain[T] {
	return c.with(c.res.Filter(func(v T) bool {
		return p(c.ctx, v)
	}))
}

func (c Chain[T]) Recover(onFailure func(ctx context.Context, failure any) (T, bool)) Chain[T] {
	return c.with(c.res.Recover(func(failure any) (T, bool) {
		return onFailure(c.ctx, failure)
	}))
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[T]) Ensure(onSuccess func(context.Context, T), onFailure func(context.Context, any)) Chain[T] {
	if c.res.IsFailure() {
		if onFailure != nil {
			onFailure(c.ctx, c.res.Failure())
		}
		return c
	}

	if onSuccess != nil {
		onSuccess(c.ctx, c.res.Get())
	}
	return c
}

// Finally collapses the chain to a final value, delegating to solo.Reduce
func (c Chain[T]) Finally(
	onSuccess func(context.Context, T) T,
	onFailure func(context.Context, any) T,
) T {
	return solo.Reduce(c.res,
		func(v T) T { return onSuccess(c.ctx, v) },
		func(failure any) T { return onFailure(c.ctx, failure) })
}
