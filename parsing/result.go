// Package parsing provides an accumulating alternative to the error-returning
// accessors of the root package. Each lookup produces an immutable Result
// carrying either a value or a cause, plus ordered lists of warnings and
// errors, and combinators compose many lookups into one aggregate outcome.
package parsing

import (
	"errors"
	"reflect"
)

// Kind is the kind of a Result: Success or Failure.
type Kind int

const (
	// Success indicates a successful result.
	Success Kind = iota
	// Failure indicates a failed result.
	Failure
)

func (k Kind) String() string {
	switch k {
	case Success:
		return "Success"
	case Failure:
		return "Failure"
	}
	return "Unknown"
}

// Warning is a non-fatal diagnostic message attached to a Result.
type Warning string

// Error is a fatal diagnostic message attached to a failed Result.
type Error string

// Unit is the single-valued placeholder type produced by Warn and Fail.
type Unit struct{}

// ErrAtLeastOneFailed is the umbrella cause attached by AllOf when one or
// more of the aggregated operations failed.
var ErrAtLeastOneFailed = errors.New("At least one operation failed!")

// Result is an immutable two-variant parse outcome. A Success holds a value
// of type A; a Failure holds the causing error and at least one Error.
// Both variants carry accumulated warnings and errors in the order the
// operations were combined. Combinators never mutate a Result; they always
// construct a new one.
type Result[A any] struct {
	kind     Kind
	value    A
	cause    error
	warnings []Warning
	errors   []Error
}

// Kind returns the kind of result.
func (r Result[A]) Kind() Kind {
	return r.kind
}

// IsSuccess reports whether the result is a Success.
func (r Result[A]) IsSuccess() bool {
	return r.kind == Success
}

// Get returns the contained value and true if the result is a Success.
func (r Result[A]) Get() (A, bool) {
	if r.kind != Success {
		var zero A
		return zero, false
	}
	return r.value, true
}

// Cause returns the error that caused a Failure, or nil for a Success.
func (r Result[A]) Cause() error {
	return r.cause
}

// Warnings returns the accumulated warnings in combination order.
func (r Result[A]) Warnings() []Warning {
	return r.warnings
}

// Errors returns the accumulated errors in combination order.
func (r Result[A]) Errors() []Error {
	return r.errors
}

func success[A any](value A, warnings []Warning, errs []Error) Result[A] {
	return Result[A]{
		kind:     Success,
		value:    value,
		warnings: warnings,
		errors:   errs,
	}
}

func failure[A any](cause error, warnings []Warning, errs []Error) Result[A] {
	return Result[A]{
		kind:     Failure,
		cause:    cause,
		warnings: warnings,
		errors:   errs,
	}
}

// SuccessOf lifts a plain value into a successful Result with no warnings or
// errors. It panics if given a nil value; absence is expressed with Option,
// not nil.
func SuccessOf[A any](value A) Result[A] {
	if isNil(value) {
		panic("parsing: SuccessOf requires a non-nil value")
	}
	return success(value, nil, nil)
}

// Warn produces a successful Unit result carrying exactly one warning.
func Warn(message string) Result[Unit] {
	return success(Unit{}, []Warning{Warning(message)}, nil)
}

// WarnKey produces a successful Unit result carrying exactly one warning
// associated with a key.
func WarnKey(key, message string) Result[Unit] {
	return success(Unit{}, []Warning{Warning("Key '" + key + "': " + message)}, nil)
}

// Fail produces a failed Unit result carrying exactly one error derived from
// the given cause.
func Fail(cause error) Result[Unit] {
	return failure[Unit](cause, nil, []Error{Error(cause.Error())})
}

// FlatMap is monadic bind. On Success it applies f to the contained value
// and merges warnings and errors of both results in order. On Failure it
// short-circuits: f is never invoked and the failure is returned unchanged
// aside from its value type. Consequently warnings from steps chained after
// the first failure are dropped; AllOf is the combinator that accumulates
// across failures.
func FlatMap[A, B any](r Result[A], f func(A) Result[B]) Result[B] {
	if r.kind == Failure {
		return failure[B](r.cause, r.warnings, r.errors)
	}
	next := f(r.value)
	warnings := concat(r.warnings, next.warnings)
	errs := concat(r.errors, next.errors)
	if next.kind == Failure {
		return failure[B](next.cause, warnings, errs)
	}
	return success(next.value, warnings, errs)
}

// AndThen is FlatMap ignoring the prior value, for sequencing operations
// such as Warn that do not consume one.
func AndThen[A, B any](r Result[A], f func() Result[B]) Result[B] {
	return FlatMap(r, func(A) Result[B] {
		return f()
	})
}

// Map applies f to the value of a Success, keeping warnings and errors. A
// Failure is returned unchanged aside from its value type.
func Map[A, B any](r Result[A], f func(A) B) Result[B] {
	if r.kind == Failure {
		return failure[B](r.cause, r.warnings, r.errors)
	}
	return success(f(r.value), r.warnings, r.errors)
}

// Erase converts a Result to its type-erased form so that results of
// different value types can be aggregated with AllOf.
func Erase[A any](r Result[A]) Result[any] {
	if r.kind == Failure {
		return failure[any](r.cause, r.warnings, r.errors)
	}
	return success[any](r.value, r.warnings, r.errors)
}

// AllOf evaluates all of the given already-computed operations. If none
// failed, it returns a Success holding every operation's value in input
// order, with the warnings of all operations concatenated in input order.
// Otherwise it returns a Failure accumulating the warnings and errors of
// every operation, successes and failures alike, in input order, with
// ErrAtLeastOneFailed as cause. Unlike FlatMap, AllOf never short-circuits.
func AllOf[T any](operations ...Result[T]) Result[[]T] {
	failed := false
	for _, op := range operations {
		if op.kind == Failure {
			failed = true
			break
		}
	}

	if !failed {
		var warnings []Warning
		results := make([]T, 0, len(operations))
		for _, op := range operations {
			warnings = concat(warnings, op.warnings)
			results = append(results, op.value)
		}
		return success(results, warnings, nil)
	}

	var warnings []Warning
	var errs []Error
	for _, op := range operations {
		warnings = concat(warnings, op.warnings)
		errs = concat(errs, op.errors)
	}
	return failure[[]T](ErrAtLeastOneFailed, warnings, errs)
}

func concat[T any](a, b []T) []T {
	if len(b) == 0 {
		return a
	}
	merged := make([]T, 0, len(a)+len(b))
	merged = append(merged, a...)
	merged = append(merged, b...)
	return merged
}

func isNil(value any) bool {
	v := reflect.ValueOf(value)
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return v.IsNil()
	}
	return false
}
