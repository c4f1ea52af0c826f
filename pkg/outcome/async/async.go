package async

import (
	"context"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/solo"
)

// Every operation here schedules its synchronous counterpart on a goroutine,
// binding ctx into the supplied callbacks.

func Of[T any](ctx context.Context, f func(ctx context.Context) (T, error)) *Future[T] {
	return Go(ctx, func(ctx context.Context) outcome.Outcome[T] {
		return outcome.Of(func() (T, error) {
			return f(ctx)
		})
	})
}

func Map[In, Out any](ctx context.Context, input outcome.Outcome[In],
	onSuccess func(ctx context.Context, v In) Out) *Future[Out] {
	return Go(ctx, func(ctx context.Context) outcome.Outcome[Out] {
		return solo.Map(input, func(v In) Out {
			return onSuccess(ctx, v)
		})
	})
}

func Try[In, Out any](ctx context.Context, input outcome.Outcome[In],
	onTryExecute func(ctx context.Context, v In) (Out, error)) *Future[Out] {
	return Go(ctx, func(ctx context.Context) outcome.Outcome[Out] {
		return solo.Try(input, func(v In) (Out, error) {
			return onTryExecute(ctx, v)
		})
	})
}

func FlatMap[In, Out any](ctx context.Context, input outcome.Outcome[In],
	onSuccess func(ctx context.Context, v In) outcome.Outcome[Out]) *Future[Out] {
	return Go(ctx, func(ctx context.Context) outcome.Outcome[Out] {
		return solo.FlatMap(input, func(v In) outcome.Outcome[Out] {
			return onSuccess(ctx, v)
		})
	})
}

func Collect[In, Out any](ctx context.Context, input outcome.Outcome[In],
	f func(ctx context.Context, v In) (Out, bool)) *Future[Out] {
	return Go(ctx, func(ctx context.Context) outcome.Outcome[Out] {
		return solo.Collect(input, func(v In) (Out, bool) {
			return f(ctx, v)
		})
	})
}

func Filter[T any](ctx context.Context, input outcome.Outcome[T],
	p func(ctx context.Context, v T) bool) *Future[T] {
	return Go(ctx, func(ctx context.Context) outcome.Outcome[T] {
		return input.Filter(func(v T) bool {
			return p(ctx, v)
		})
	})
}

func Recover[T any](ctx context.Context, input outcome.Outcome[T],
	f func(ctx context.Context, failure any) (T, bool)) *Future[T] {
	return Go(ctx, func(ctx context.Context) outcome.Outcome[T] {
		return input.Recover(func(failure any) (T, bool) {
			return f(ctx, failure)
		})
	})
}

func RecoverWith[T any](ctx context.Context, input outcome.Outcome[T],
	f func(ctx context.Context, failure any) (outcome.Outcome[T], bool)) *Future[T] {
	return Go(ctx, func(ctx context.Context) outcome.Outcome[T] {
		return input.RecoverWith(func(failure any) (outcome.Outcome[T], bool) {
			return f(ctx, failure)
		})
	})
}

// Reduce settles with the folded value; a panic in the handler settles it as a failure.
func Reduce[In, Out any](ctx context.Context, input outcome.Outcome[In],
	onSuccess func(ctx context.Context, v In) Out,
	onFailure func(ctx context.Context, failure any) Out) *Future[Out] {
	return Go(ctx, func(ctx context.Context) outcome.Outcome[Out] {
		return outcome.Success(solo.Reduce(input,
			func(v In) Out { return onSuccess(ctx, v) },
			func(failure any) Out { return onFailure(ctx, failure) }))
	})
}

func Transform[In, Out any](ctx context.Context, input outcome.Outcome[In],
	onSuccess func(ctx context.Context, v In) outcome.Outcome[Out],
	onFailure func(ctx context.Context, failure any) outcome.Outcome[Out]) *Future[Out] {
	return Go(ctx, func(ctx context.Context) outcome.Outcome[Out] {
		return solo.Transform(input,
			func(v In) outcome.Outcome[Out] { return onSuccess(ctx, v) },
			func(failure any) outcome.Outcome[Out] { return onFailure(ctx, failure) })
	})
}

// IfSuccessOrElse runs the side effect for the branch input is on. onFailure may be nil.
func IfSuccessOrElse[T any](ctx context.Context, input outcome.Outcome[T],
	onSuccess func(ctx context.Context, v T),
	onFailure func(ctx context.Context)) *Future[struct{}] {
	return Go(ctx, func(ctx context.Context) outcome.Outcome[struct{}] {
		var orElse func()
		if onFailure != nil {
			orElse = func() { onFailure(ctx) }
		}

		input.IfSuccessOrElse(func(v T) { onSuccess(ctx, v) }, orElse)
		return outcome.Success(struct{}{})
	})
}

// OrElseReject settles with the value of input, or rejects with the failure
// payload, transformed when transform is set. Awaiting and calling Get
// panics with the rejection.
func OrElseReject[T any](ctx context.Context, input outcome.Outcome[T],
	transform func(ctx context.Context, failure any) any) *Future[T] {
	return Go(ctx, func(ctx context.Context) outcome.Outcome[T] {
		if input.IsSuccess() || transform == nil {
			return input
		}
		return outcome.Fail[T](transform(ctx, input.Failure()))
	})
}
