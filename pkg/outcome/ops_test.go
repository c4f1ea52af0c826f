package outcome

import (
	"errors"
	"fmt"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter(t *testing.T) {
	t.Parallel()

	positive := func(v int) bool { return v > 0 }

	t.Run("keeps a success when the predicate holds", func(t *testing.T) {
		assert.Equal(t, Success(1), Success(1).Filter(positive))
	})

	t.Run("fails when the predicate does not hold", func(t *testing.T) {
		o := Success(0).Filter(positive)

		require.True(t, o.IsFailure())
		assert.ErrorIs(t, o.Err(), ErrPredicateFailed)
		assert.EqualError(t, o.Err(), "predicate does not hold for 0")
	})

	t.Run("never evaluates the predicate on a failure", func(t *testing.T) {
		called := false
		in := Fail[int]("e")

		out := in.Filter(func(int) bool {
			called = true
			return true
		})

		assert.Equal(t, in, out)
		assert.False(t, called)
	})

	t.Run("predicate panic becomes the failure", func(t *testing.T) {
		o := Success(1).Filter(func(int) bool { panic("bad predicate") })

		assert.Equal(t, Fail[int]("bad predicate"), o)
	})
}

func TestOr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    Outcome[string]
		alt      Outcome[string]
		expected Outcome[string]
	}{
		{
			name:     "success wins over a success",
			input:    Success("x"),
			alt:      Success("y"),
			expected: Success("x"),
		},
		{
			name:     "success wins over a failure",
			input:    Success("x"),
			alt:      Fail[string]("f"),
			expected: Success("x"),
		},
		{
			name:     "failure is replaced by the alternative",
			input:    Fail[string]("e"),
			alt:      Success("y"),
			expected: Success("y"),
		},
		{
			name:     "failure is replaced by a failing alternative",
			input:    Fail[string]("e"),
			alt:      Fail[string]("f"),
			expected: Fail[string]("f"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.input.Or(tt.alt))
		})
	}
}

func TestOrElse(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, Success(1).OrElse(2))
	assert.Equal(t, 2, Fail[int]("e").OrElse(2))
}

func TestOrElsePanic(t *testing.T) {
	t.Parallel()

	t.Run("returns the value", func(t *testing.T) {
		assert.Equal(t, 1, Success(1).OrElsePanic())
		assert.Equal(t, 1, Success(1).OrElsePanicWith(func(any) any { return "unused" }))
	})

	t.Run("panics with the stored payload", func(t *testing.T) {
		assert.PanicsWithValue(t, "e", func() { Fail[int]("e").OrElsePanic() })
	})

	t.Run("panics with the transformed payload", func(t *testing.T) {
		wrap := func(failure any) any { return fmt.Errorf("wrapped: %v", failure) }

		assert.PanicsWithError(t, "wrapped: e", func() { Fail[int]("e").OrElsePanicWith(wrap) })
	})
}

func TestFailed(t *testing.T) {
	t.Parallel()

	t.Run("success cannot be inverted", func(t *testing.T) {
		o := Success(1).Failed()

		require.True(t, o.IsFailure())
		assert.ErrorIs(t, o.Err(), ErrCannotInvert)
	})

	t.Run("failure becomes a success holding the payload", func(t *testing.T) {
		err := errors.New("e")
		assert.Equal(t, Success[any](err), Fail[int](err).Failed())
	})
}

func TestIfSuccessOrElse(t *testing.T) {
	t.Parallel()

	t.Run("success calls only the success branch", func(t *testing.T) {
		var got int
		elseCalled := false

		Success(4).IfSuccessOrElse(func(v int) { got = v }, func() { elseCalled = true })

		assert.Equal(t, 4, got)
		assert.False(t, elseCalled)
	})

	t.Run("failure calls only the else branch", func(t *testing.T) {
		successCalled := false
		elseCalled := false

		Fail[int]("e").IfSuccessOrElse(func(int) { successCalled = true }, func() { elseCalled = true })

		assert.False(t, successCalled)
		assert.True(t, elseCalled)
	})

	t.Run("else branch is optional", func(t *testing.T) {
		assert.NotPanics(t, func() {
			Fail[int]("e").IfSuccessOrElse(func(int) {}, nil)
		})
	})

	t.Run("side effect panics propagate", func(t *testing.T) {
		assert.PanicsWithValue(t, "side", func() {
			Success(1).IfSuccessOrElse(func(int) { panic("side") }, nil)
		})
	})
}

func TestRecover(t *testing.T) {
	t.Parallel()

	double := func(failure any) (string, bool) {
		s, ok := failure.(string)
		return s + s, ok
	}

	t.Run("defined for the payload", func(t *testing.T) {
		assert.Equal(t, Success("foofoo"), Fail[string]("foo").Recover(double))
	})

	t.Run("not defined for the payload", func(t *testing.T) {
		o := Fail[string](3).Recover(double)

		require.True(t, o.IsFailure())
		assert.ErrorIs(t, o.Err(), ErrNotDefined)
		assert.EqualError(t, o.Err(), "function not defined for 3")
	})

	t.Run("panic becomes the failure", func(t *testing.T) {
		o := Fail[string]("foo").Recover(func(any) (string, bool) { panic("recovery failed") })

		assert.Equal(t, Fail[string]("recovery failed"), o)
	})

	t.Run("success passes through", func(t *testing.T) {
		called := false
		o := Success("bar").Recover(func(any) (string, bool) {
			called = true
			return "", true
		})

		assert.Equal(t, Success("bar"), o)
		assert.False(t, called)
	})
}

func TestRecoverWith(t *testing.T) {
	t.Parallel()

	double := func(failure any) (Outcome[string], bool) {
		s := failure.(string)
		return Success(s + s), true
	}

	t.Run("returns the recovered outcome directly", func(t *testing.T) {
		assert.Equal(t, Success("foofoo"), Fail[string]("foo").RecoverWith(double))

		inner := Fail[string]("other")
		assert.Equal(t, inner, Fail[string]("foo").RecoverWith(func(any) (Outcome[string], bool) {
			return inner, true
		}))
	})

	t.Run("not defined for the payload", func(t *testing.T) {
		o := Fail[string]("foo").RecoverWith(func(any) (Outcome[string], bool) {
			return Outcome[string]{}, false
		})

		assert.Equal(t, Fail[string](NotDefined("foo")), o)
	})

	t.Run("panic becomes the failure", func(t *testing.T) {
		o := Fail[string](1).RecoverWith(double)

		require.True(t, o.IsFailure())
		_, isRuntimeErr := o.Failure().(runtime.Error)
		assert.True(t, isRuntimeErr)
	})

	t.Run("success passes through", func(t *testing.T) {
		assert.Equal(t, Success("bar"), Success("bar").RecoverWith(double))
	})
}
