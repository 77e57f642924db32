package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/sync/singleflight"

	"github.com/garrettladley/notemap/internal/credentials"
	"github.com/garrettladley/notemap/internal/xhttp"
	"github.com/garrettladley/notemap/internal/xslog"
)

var _ http.RoundTripper = (*Transport)(nil)

// Transport signs outgoing requests with the stored access token and, when
// the backend answers 401, refreshes the token once and replays the request.
//
// Requests that arrive with their own Authorization header are passed through
// untouched and never recovered.
type Transport struct {
	base           http.RoundTripper
	store          credentials.Store
	refresher      Refresher
	logger         *slog.Logger
	refreshTimeout time.Duration

	// keyed by refresh token
	flights singleflight.Group
}

type TransportOption func(*Transport)

func WithBase(base http.RoundTripper) TransportOption {
	return func(t *Transport) { t.base = base }
}

func WithLogger(logger *slog.Logger) TransportOption {
	return func(t *Transport) { t.logger = logger }
}

func WithRefreshTimeout(d time.Duration) TransportOption {
	return func(t *Transport) { t.refreshTimeout = d }
}

func NewTransport(store credentials.Store, refresher Refresher, opts ...TransportOption) *Transport {
	t := &Transport{
		base:           xhttp.NewTransport(),
		store:          store,
		refresher:      refresher,
		logger:         slog.Default(),
		refreshTimeout: defaultRefreshTimeout,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if xhttp.HasAuthorization(req) {
		return t.base.RoundTrip(req)
	}

	ctx := req.Context()

	out := req.Clone(ctx)
	if err := xhttp.Rewindable(out); err != nil {
		closeBody(req)
		return nil, err
	}

	sent, err := t.sign(ctx, out)
	if err != nil {
		closeBody(req)
		return nil, err
	}

	resp, err := t.base.RoundTrip(out)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusUnauthorized {
		return resp, nil
	}

	accessToken, err := t.authenticate(ctx, sent)
	if err != nil {
		if ctx.Err() != nil {
			xhttp.DrainAndClose(resp)
			return nil, ctx.Err()
		}
		t.logger.WarnContext(ctx, "token recovery failed, returning original response",
			xslog.OutgoingRequestGroup(out),
			xslog.Error(err),
		)
		return resp, nil
	}

	retry, err := xhttp.CloneForRetry(out)
	if err != nil {
		t.logger.WarnContext(ctx, "request cannot be replayed", xslog.Error(err))
		return resp, nil
	}
	xhttp.DrainAndClose(resp)

	xhttp.SetRequestHeaderBearer(retry, accessToken)

	t.logger.DebugContext(ctx, "replaying request with refreshed token",
		xslog.OutgoingRequestGroup(retry),
		xslog.Attempt(2),
	)

	// straight to base: a replayed request is never recovered again
	return t.base.RoundTrip(retry)
}

// sign attaches the stored access token and returns it. With nothing stored
// the request goes out unsigned.
func (t *Transport) sign(ctx context.Context, req *http.Request) (string, error) {
	creds, err := t.store.Get(ctx)
	if errors.Is(err, credentials.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("loading credentials: %w", err)
	}

	accessToken := creds.AccessToken()
	if accessToken == "" {
		return "", nil
	}

	xhttp.SetRequestHeaderBearer(req, accessToken)
	return accessToken, nil
}

// authenticate returns the access token to replay with after rejected was
// refused by the backend.
func (t *Transport) authenticate(ctx context.Context, rejected string) (string, error) {
	creds, err := t.store.Get(ctx)
	if err != nil {
		return "", fmt.Errorf("loading credentials: %w", err)
	}

	// someone else already rotated the token while this request was in flight
	if current := creds.AccessToken(); current != "" && current != rejected {
		return current, nil
	}

	refreshToken := creds.RefreshToken()
	if refreshToken == "" {
		return "", ErrNoRefreshToken
	}

	ch := t.flights.DoChan(refreshToken, func() (any, error) {
		return t.refresh(ctx, refreshToken)
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		token := res.Val.(*oauth2.Token)
		t.logger.DebugContext(ctx, "access token refreshed",
			xslog.Shared(res.Shared),
			xslog.Expiry(token.Expiry),
		)
		return token.AccessToken, nil
	}
}

// refresh outlives the triggering request: a token the backend has rotated
// must still be persisted.
func (t *Transport) refresh(ctx context.Context, refreshToken string) (*oauth2.Token, error) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), t.refreshTimeout)
	defer cancel()

	token, err := t.refresher.Refresh(ctx, refreshToken)
	if err != nil {
		return nil, fmt.Errorf("failed to refresh token: %w", err)
	}
	if token == nil || token.AccessToken == "" {
		return nil, ErrEmptyToken
	}

	if err := t.store.Rotate(ctx, token); err != nil {
		return nil, fmt.Errorf("failed to save refreshed token: %w", err)
	}

	return token, nil
}

// RoundTrippers must close the request body, even on error.
func closeBody(req *http.Request) {
	if req.Body != nil {
		_ = req.Body.Close()
	}
}
