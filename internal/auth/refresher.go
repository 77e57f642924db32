package auth

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	go_json "github.com/goccy/go-json"
	"golang.org/x/oauth2"

	"github.com/garrettladley/notemap/internal/credentials"
	"github.com/garrettladley/notemap/internal/xhttp"
)

const (
	refreshPath           = "/auth/refresh"
	defaultRefreshTimeout = 10 * time.Second
)

// Refresher exchanges a refresh token for a new access token.
type Refresher interface {
	Refresh(ctx context.Context, refreshToken string) (*oauth2.Token, error)
}

type RefresherFunc func(ctx context.Context, refreshToken string) (*oauth2.Token, error)

func (f RefresherFunc) Refresh(ctx context.Context, refreshToken string) (*oauth2.Token, error) {
	return f(ctx, refreshToken)
}

var _ Refresher = (*HTTPRefresher)(nil)

// HTTPRefresher calls the backend's refresh endpoint. Its client never goes
// through the authenticated Transport.
type HTTPRefresher struct {
	url    string
	client *http.Client
	now    func() time.Time
}

type RefresherOption func(*HTTPRefresher)

func WithRefreshHTTPClient(c *http.Client) RefresherOption {
	return func(r *HTTPRefresher) { r.client = c }
}

func NewHTTPRefresher(baseURL string, opts ...RefresherOption) *HTTPRefresher {
	r := &HTTPRefresher{
		url:    strings.TrimRight(baseURL, "/") + refreshPath,
		client: xhttp.NewHTTPClient(xhttp.WithTimeout(defaultRefreshTimeout)),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type refreshResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (r *HTTPRefresher) Refresh(ctx context.Context, refreshToken string) (*oauth2.Token, error) {
	if refreshToken == "" {
		return nil, ErrNoRefreshToken
	}

	body, err := go_json.Marshal(refreshRequest{RefreshToken: refreshToken})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	xhttp.SetRequestHeaderJSON(req)

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer xhttp.DrainAndClose(resp)

	if !xhttp.IsSuccess(resp.StatusCode) {
		return nil, &RefreshError{StatusCode: resp.StatusCode, Status: xhttp.StatusLine(resp)}
	}

	var respBody refreshResponse
	if err := go_json.NewDecoder(resp.Body).Decode(&respBody); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return r.toToken(respBody)
}

func (r *HTTPRefresher) toToken(resp refreshResponse) (*oauth2.Token, error) {
	if strings.TrimSpace(resp.AccessToken) == "" {
		return nil, ErrEmptyToken
	}

	token := &oauth2.Token{
		AccessToken:  resp.AccessToken,
		TokenType:    resp.TokenType,
		RefreshToken: resp.RefreshToken,
	}
	if token.TokenType == "" {
		token.TokenType = "Bearer"
	}

	switch {
	case resp.ExpiresIn > 0:
		token.Expiry = r.now().Add(time.Duration(resp.ExpiresIn) * time.Second)
	default:
		if exp, ok := credentials.ExpiryFromJWT(resp.AccessToken); ok {
			token.Expiry = exp
		}
	}

	return token, nil
}
