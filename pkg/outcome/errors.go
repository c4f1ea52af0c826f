package outcome

import (
	"errors"
	"fmt"
)

var (
	ErrNotDefined      = errors.New("function not defined")
	ErrPredicateFailed = errors.New("predicate does not hold")
	ErrCannotInvert    = errors.New("cannot invert a success")
)

// ValueError is a failure the package constructs itself; it names the value
// that caused it.
type ValueError struct {
	Reason error
	Value  any
}

func NotDefined(v any) *ValueError {
	return &ValueError{Reason: ErrNotDefined, Value: v}
}

func PredicateFailed(v any) *ValueError {
	return &ValueError{Reason: ErrPredicateFailed, Value: v}
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("%v for %v", e.Reason, e.Value)
}

func (e *ValueError) Unwrap() error {
	return e.Reason
}

// FailureError carries a failure payload that is not an error.
type FailureError struct {
	Payload any
}

func (e *FailureError) Error() string {
	return fmt.Sprintf("failure: %v", e.Payload)
}
