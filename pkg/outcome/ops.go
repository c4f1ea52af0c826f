package outcome

// Filter keeps a success when p holds for its value and turns it into a
// PredicateFailed failure otherwise. Failures pass through without calling p.
func (o Outcome[T]) Filter(p func(v T) bool) Outcome[T] {
	if !o.ok {
		return o
	}

	return Capture(func() Outcome[T] {
		if p(o.value) {
			return o
		}
		return Fail[T](PredicateFailed(o.value))
	})
}

func (o Outcome[T]) Or(alternative Outcome[T]) Outcome[T] {
	if o.ok {
		return o
	}
	return alternative
}

func (o Outcome[T]) OrElse(defaultV T) T {
	if o.ok {
		return o.value
	}
	return defaultV
}

func (o Outcome[T]) OrElsePanic() T {
	return o.Get()
}

// OrElsePanicWith returns the value, or panics with transform applied to the
// failure payload.
func (o Outcome[T]) OrElsePanicWith(transform func(failure any) any) T {
	if !o.ok {
		panic(transform(o.failure))
	}
	return o.value
}

// Failed swaps the roles: a failure becomes a success holding its payload.
func (o Outcome[T]) Failed() Outcome[any] {
	if o.ok {
		return Fail[any](ErrCannotInvert)
	}
	return Success[any](o.failure)
}

// IfSuccessOrElse calls onSuccess with the value, or onFailure when it is set.
// Panics raised by either are not captured.
func (o Outcome[T]) IfSuccessOrElse(onSuccess func(v T), onFailure func()) {
	if o.ok {
		onSuccess(o.value)
		return
	}

	if onFailure != nil {
		onFailure()
	}
}

// Recover applies the partial function f to the failure payload. Successes
// pass through without calling f.
func (o Outcome[T]) Recover(f func(failure any) (T, bool)) Outcome[T] {
	if o.ok {
		return o
	}

	return Capture(func() Outcome[T] {
		if v, defined := f(o.failure); defined {
			return Success(v)
		}
		return Fail[T](NotDefined(o.failure))
	})
}

func (o Outcome[T]) RecoverWith(f func(failure any) (Outcome[T], bool)) Outcome[T] {
	if o.ok {
		return o
	}

	return Capture(func() Outcome[T] {
		if r, defined := f(o.failure); defined {
			return r
		}
		return Fail[T](NotDefined(o.failure))
	})
}
