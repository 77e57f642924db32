// Package result holds the tri-state outcome returned by every remote
// operation: Success with a payload, Error with a user-facing message, or
// Loading with nothing.
package result

import "fmt"

type State uint8

const (
	StateLoading State = iota
	StateSuccess
	StateError
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// Unit is the payload of a successful call that returns no body.
type Unit struct{}

// Result is exactly one of Success, Error or Loading. The zero value is Loading.
type Result[T any] struct {
	state   State
	value   T
	message string
}

func Success[T any](v T) Result[T] {
	return Result[T]{state: StateSuccess, value: v}
}

func Error[T any](message string) Result[T] {
	return Result[T]{state: StateError, message: message}
}

func Errorf[T any](format string, args ...any) Result[T] {
	return Error[T](fmt.Sprintf(format, args...))
}

func Loading[T any]() Result[T] {
	return Result[T]{state: StateLoading}
}

func (r Result[T]) State() State    { return r.state }
func (r Result[T]) IsSuccess() bool { return r.state == StateSuccess }
func (r Result[T]) IsError() bool   { return r.state == StateError }
func (r Result[T]) IsLoading() bool { return r.state == StateLoading }

// Value returns the payload and true only for Success.
func (r Result[T]) Value() (T, bool) {
	if r.state != StateSuccess {
		var zero T
		return zero, false
	}
	return r.value, true
}

// Message returns the error message and true only for Error.
func (r Result[T]) Message() (string, bool) {
	if r.state != StateError {
		return "", false
	}
	return r.message, true
}

func (r Result[T]) String() string {
	switch r.state {
	case StateSuccess:
		return fmt.Sprintf("Success(%v)", r.value)
	case StateError:
		return fmt.Sprintf("Error(%s)", r.message)
	default:
		return "Loading()"
	}
}

// Map applies f to a Success payload. Error and Loading pass through with
// their message intact.
func Map[T, U any](r Result[T], f func(T) U) Result[U] {
	switch r.state {
	case StateSuccess:
		return Success(f(r.value))
	case StateError:
		return Error[U](r.message)
	default:
		return Loading[U]()
	}
}

// Then runs the dependent step f only on Success.
func Then[T, U any](r Result[T], f func(T) Result[U]) Result[U] {
	switch r.state {
	case StateSuccess:
		return f(r.value)
	case StateError:
		return Error[U](r.message)
	default:
		return Loading[U]()
	}
}

// Match calls exactly one of the handlers.
func Match[T any](r Result[T], onSuccess func(T), onError func(string), onLoading func()) {
	switch r.state {
	case StateSuccess:
		onSuccess(r.value)
	case StateError:
		onError(r.message)
	default:
		onLoading()
	}
}

// Fold reduces r to a single value, one handler per state.
func Fold[T, R any](r Result[T], onSuccess func(T) R, onError func(string) R, onLoading func() R) R {
	switch r.state {
	case StateSuccess:
		return onSuccess(r.value)
	case StateError:
		return onError(r.message)
	default:
		return onLoading()
	}
}
