package outcome

import (
	"fmt"

	"github.com/samber/lo"
)

// Outcome is either Ok, holding a value, or Err, holding an opaque failure payload.
// The zero Outcome is an Err with a nil payload.
type Outcome[T any] struct {
	value   T
	failure any
	ok      bool
}

func Success[T any](v T) Outcome[T] {
	return Outcome[T]{
		value: v,
		ok:    true,
	}
}

func Fail[T any](failure any) Outcome[T] {
	return Outcome[T]{
		failure: failure,
		ok:      false,
	}
}

// Of runs f immediately. A non-nil error or a panic becomes the Err payload.
func Of[T any](f func() (T, error)) Outcome[T] {
	return Capture(func() Outcome[T] {
		return FromTuple(f())
	})
}

func FromTuple[T any](v T, err error) Outcome[T] {
	if !IsNil(err) {
		return Fail[T](err)
	}
	return Success(v)
}

// Capture runs f and stores a panic raised by it as the Err payload, verbatim.
func Capture[T any](f func() Outcome[T]) (o Outcome[T]) {
	defer func() {
		if r := recover(); r != nil {
			o = Fail[T](r)
		}
	}()

	return f()
}

func (o Outcome[T]) IsSuccess() bool {
	return o.ok
}

func (o Outcome[T]) IsFailure() bool {
	return !o.ok
}

// Get returns the value, or panics with the stored failure payload.
func (o Outcome[T]) Get() T {
	if !o.ok {
		panic(o.failure)
	}
	return o.value
}

// ToPtr returns a pointer to a copy of the value, or nil on failure.
func (o Outcome[T]) ToPtr() *T {
	if !o.ok {
		return nil
	}
	return lo.ToPtr(o.value)
}

func (o Outcome[T]) Failure() any {
	if o.ok {
		return nil
	}
	return o.failure
}

// Err adapts the failure payload to error. Payloads that are not errors are
// wrapped in a *FailureError.
func (o Outcome[T]) Err() error {
	if o.ok {
		return nil
	}

	if err, ok := o.failure.(error); ok && !IsNil(err) {
		return err
	}
	return &FailureError{Payload: o.failure}
}

func (o Outcome[T]) Unwrap() (T, error) {
	if !o.ok {
		return lo.Empty[T](), o.Err()
	}
	return o.value, nil
}

func (o Outcome[T]) String() string {
	if !o.ok {
		return fmt.Sprintf("Err(%v)", o.failure)
	}
	return fmt.Sprintf("Ok(%v)", o.value)
}

// FailureAs narrows the opaque failure payload to E.
func FailureAs[E, T any](o Outcome[T]) (E, bool) {
	if o.ok {
		return lo.Empty[E](), false
	}

	e, ok := o.failure.(E)
	return e, ok
}

// FailFrom re-types the failure of from, keeping its payload untouched.
// from must be a failure.
func FailFrom[Out, In any](from Outcome[In]) Outcome[Out] {
	return Fail[Out](from.failure)
}
