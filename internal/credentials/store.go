// Package credentials owns the persisted access/refresh token pair and the
// signed-in user id.
package credentials

import (
	"context"
	"errors"

	"golang.org/x/oauth2"
)

var ErrNotFound = errors.New("no credentials stored - please log in first")

type Credentials struct {
	Token  *oauth2.Token
	UserID string
}

func (c *Credentials) AccessToken() string {
	if c == nil || c.Token == nil {
		return ""
	}
	return c.Token.AccessToken
}

func (c *Credentials) RefreshToken() string {
	if c == nil || c.Token == nil {
		return ""
	}
	return c.Token.RefreshToken
}

// Store is the single mutable resource shared by every outgoing request.
// Implementations must make each write atomic with respect to reads: a reader
// sees either the previous or the new credentials, never a mix.
type Store interface {
	// Get returns ErrNotFound when nothing is stored.
	Get(ctx context.Context) (*Credentials, error)

	// Set replaces everything, including the user id.
	Set(ctx context.Context, creds *Credentials) error

	// Rotate swaps in a refreshed token and keeps the user id. An empty
	// refresh token on the new token keeps the stored one. Returns
	// ErrNotFound when nothing is stored, so a refresh finishing after a
	// logout does not sign the user back in.
	Rotate(ctx context.Context, token *oauth2.Token) error

	Clear(ctx context.Context) error
}

func HasToken(ctx context.Context, s Store) (bool, error) {
	_, err := s.Get(ctx)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func cloneToken(t *oauth2.Token) *oauth2.Token {
	if t == nil {
		return nil
	}
	return &oauth2.Token{
		AccessToken:  t.AccessToken,
		TokenType:    t.TokenType,
		RefreshToken: t.RefreshToken,
		Expiry:       t.Expiry,
	}
}

func clone(c *Credentials) *Credentials {
	if c == nil {
		return nil
	}
	return &Credentials{Token: cloneToken(c.Token), UserID: c.UserID}
}

func tokenType(t *oauth2.Token) string {
	if t.TokenType == "" {
		return "Bearer"
	}
	return t.TokenType
}
