package solo

import (
	"github.com/ib-77/outcome/pkg/outcome"
)

func Map[In, Out any](input outcome.Outcome[In], onSuccess func(v In) Out) outcome.Outcome[Out] {
	if input.IsFailure() {
		return outcome.FailFrom[Out](input)
	}

	return outcome.Capture(func() outcome.Outcome[Out] {
		return outcome.Success(onSuccess(input.Get()))
	})
}

// Try maps with a function that reports failure through its error.
func Try[In, Out any](input outcome.Outcome[In], onTryExecute func(v In) (Out, error)) outcome.Outcome[Out] {
	if input.IsFailure() {
		return outcome.FailFrom[Out](input)
	}

	return outcome.Of(func() (Out, error) {
		return onTryExecute(input.Get())
	})
}

func FlatMap[In, Out any](input outcome.Outcome[In],
	onSuccess func(v In) outcome.Outcome[Out]) outcome.Outcome[Out] {

	if input.IsFailure() {
		return outcome.FailFrom[Out](input)
	}

	return outcome.Capture(func() outcome.Outcome[Out] {
		return onSuccess(input.Get())
	})
}

// Collect applies the partial function f to the value. f reports that it is
// not defined for a value by returning false.
func Collect[In, Out any](input outcome.Outcome[In], f func(v In) (Out, bool)) outcome.Outcome[Out] {
	if input.IsFailure() {
		return outcome.FailFrom[Out](input)
	}

	return outcome.Capture(func() outcome.Outcome[Out] {
		v := input.Get()
		if out, defined := f(v); defined {
			return outcome.Success(out)
		}
		return outcome.Fail[Out](outcome.NotDefined(v))
	})
}

// Reduce folds both branches into a plain value. Exactly one of the handlers runs.
func Reduce[In, Out any](input outcome.Outcome[In],
	onSuccess func(v In) Out,
	onFailure func(failure any) Out) Out {

	if input.IsSuccess() {
		return onSuccess(input.Get())
	}
	return onFailure(input.Failure())
}

func Transform[In, Out any](input outcome.Outcome[In],
	onSuccess func(v In) outcome.Outcome[Out],
	onFailure func(failure any) outcome.Outcome[Out]) outcome.Outcome[Out] {

	if input.IsSuccess() {
		return FlatMap(input, onSuccess)
	}

	return outcome.FailFrom[Out](input).RecoverWith(func(failure any) (outcome.Outcome[Out], bool) {
		return onFailure(failure), true
	})
}

// Flatten removes one level of nesting. It never panics: a nested failure is
// returned as is.
func Flatten[T any](input outcome.Outcome[outcome.Outcome[T]]) outcome.Outcome[T] {
	if input.IsFailure() {
		return outcome.FailFrom[T](input)
	}
	return input.Get()
}
