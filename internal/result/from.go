package result

import (
	"errors"
)

// UserMessager is implemented by errors that carry a message meant for the
// end user, such as a server-supplied error body.
type UserMessager interface {
	UserMessage() string
}

// From converts a conventional (value, error) pair.
func From[T any](v T, err error) Result[T] {
	if err != nil {
		return FromErr[T](err)
	}
	return Success(v)
}

// FromErr converts err into an Error result. A nil err yields Success of the
// zero value.
func FromErr[T any](err error) Result[T] {
	if err == nil {
		var zero T
		return Success(zero)
	}
	return Error[T](MessageOf(err))
}

// Done converts an error-only call into a Unit result.
func Done(err error) Result[Unit] {
	if err != nil {
		return Error[Unit](MessageOf(err))
	}
	return Success(Unit{})
}

// FromPtr converts a (pointer, error) pair, dereferencing the pointer on success.
// A nil pointer with no error is reported as an error since the caller asked
// for a payload.
func FromPtr[T any](v *T, err error) Result[T] {
	if err != nil {
		return FromErr[T](err)
	}
	if v == nil {
		return Error[T]("empty response")
	}
	return Success(*v)
}

func MessageOf(err error) string {
	var m UserMessager
	if errors.As(err, &m) {
		if msg := m.UserMessage(); msg != "" {
			return msg
		}
	}
	return err.Error()
}
