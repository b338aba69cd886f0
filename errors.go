package parzen

import (
	"errors"
	"fmt"

	"github.com/parzenlabs/parzen/kernel"
)

// Conditions reported by the optimizer. All of them are local, synchronous
// and recoverable; failed operations leave the trial history unchanged.
// Callers match them with errors.Is.
var (
	// ErrInvalidDomain reports malformed construction inputs: domain bounds
	// with min > max, or configuration values outside their valid ranges.
	ErrInvalidDomain = errors.New("invalid domain")

	// ErrInvalidBandwidth reports a non-positive derived bandwidth. It
	// indicates a misconfigured bandwidth rule.
	ErrInvalidBandwidth = kernel.ErrInvalidBandwidth

	// ErrOutOfDomain reports an observed parameter outside [min, max].
	ErrOutOfDomain = errors.New("parameter out of domain")

	// ErrInvalidMetric reports a NaN metric, which would make the trial
	// ranking partial.
	ErrInvalidMetric = errors.New("invalid metric")

	// ErrNoTrials reports that no outcome has been observed yet. It is an
	// expected condition, not a defect.
	ErrNoTrials = errors.New("no trials recorded")
)

// Error carries the operation that failed alongside the condition.
type Error struct {
	// Op is the operation that caused the error.
	Op string
	// Message describes what went wrong.
	Message string
	// Err is the underlying condition.
	Err error
}

// Error returns the string representation of the error.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Op != "" {
		return fmt.Sprintf("parzen: %s: %s: %v", e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("parzen: %s: %v", e.Message, e.Err)
}

// Unwrap returns the underlying condition.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// opErrorf wraps a sentinel condition with operation context.
func opErrorf(op string, cause error, format string, args ...any) *Error {
	return &Error{
		Op:      op,
		Message: fmt.Sprintf(format, args...),
		Err:     cause,
	}
}
