package auth

import (
	"errors"
	"fmt"
)

var (
	ErrNoRefreshToken = errors.New("no refresh token available")
	ErrEmptyToken     = errors.New("refresh response did not contain an access token")
)

// RefreshError is returned when the refresh endpoint answers with a non-2xx status.
type RefreshError struct {
	StatusCode int
	Status     string
}

func (e *RefreshError) Error() string {
	return fmt.Sprintf("refresh failed with status %s", e.Status)
}
