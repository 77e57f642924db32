package notemap

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	go_json "github.com/goccy/go-json"

	"github.com/garrettladley/notemap/internal/auth"
	"github.com/garrettladley/notemap/internal/credentials"
	"github.com/garrettladley/notemap/internal/xhttp"
	"github.com/garrettladley/notemap/internal/xslog"
)

const DefaultBaseURL = "https://api.notemap.app"

type Client struct {
	Auth    AuthService
	Notes   NoteService
	Users   UserService
	Follows FollowService

	baseURL    string
	httpClient *http.Client
	// publicHTTP never carries a bearer token and never refreshes
	publicHTTP *http.Client
	logger     *slog.Logger
}

// New builds a client whose authenticated requests are signed from store and
// recovered once on 401 through refresh.
func New(store credentials.Store, opts ...Option) *Client {
	cfg := &clientConfig{
		baseURL:       DefaultBaseURL,
		logger:        slog.Default(),
		baseTransport: http.DefaultTransport,
		timeout:       30 * time.Second,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	cfg.baseURL = strings.TrimRight(cfg.baseURL, "/")

	base := xhttp.NewTransportWithBase(xhttp.NewLoggingTransport(cfg.baseTransport, cfg.logger))

	publicHTTP := xhttp.NewHTTPClient(xhttp.WithTransport(base), xhttp.WithTimeout(cfg.timeout))

	refresher := cfg.refresher
	if refresher == nil {
		refresher = auth.NewHTTPRefresher(cfg.baseURL, auth.WithRefreshHTTPClient(publicHTTP))
	}

	authed := auth.NewTransport(store, refresher,
		auth.WithBase(base),
		auth.WithLogger(cfg.logger),
	)

	c := &Client{
		baseURL:    cfg.baseURL,
		httpClient: xhttp.NewHTTPClient(xhttp.WithTransport(authed), xhttp.WithTimeout(cfg.timeout)),
		publicHTTP: publicHTTP,
		logger:     cfg.logger,
	}

	c.Auth = &authService{client: c}
	c.Notes = &noteService{client: c}
	c.Users = &userService{client: c}
	c.Follows = &followService{client: c}

	return c
}

type clientConfig struct {
	baseURL       string
	logger        *slog.Logger
	timeout       time.Duration
	refresher     auth.Refresher
	baseTransport http.RoundTripper
}

type Option func(*clientConfig)

func WithBaseURL(baseURL string) Option {
	return func(cfg *clientConfig) { cfg.baseURL = baseURL }
}

func WithLogger(logger *slog.Logger) Option {
	return func(cfg *clientConfig) { cfg.logger = logger }
}

func WithTimeout(d time.Duration) Option {
	return func(cfg *clientConfig) { cfg.timeout = d }
}

func WithRefresher(r auth.Refresher) Option {
	return func(cfg *clientConfig) { cfg.refresher = r }
}

func WithBaseTransport(rt http.RoundTripper) Option {
	return func(cfg *clientConfig) { cfg.baseTransport = rt }
}

type requestConfig struct {
	public         bool
	idempotencyKey string
}

type requestOption func(*requestConfig)

func public() requestOption {
	return func(cfg *requestConfig) { cfg.public = true }
}

func withIdempotencyKey(key string) requestOption {
	return func(cfg *requestConfig) { cfg.idempotencyKey = key }
}

func (c *Client) do(ctx context.Context, method string, path string, query url.Values, body any, result any, opts ...requestOption) error {
	var cfg requestConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := go_json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	xhttp.SetRequestHeaderJSON(req)
	if cfg.idempotencyKey != "" {
		req.Header.Set(xhttp.IdempotencyKey, cfg.idempotencyKey)
	}

	httpClient := c.httpClient
	if cfg.public {
		httpClient = c.publicHTTP
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return parseAPIError(resp)
	}

	if result == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return ErrEmptyResponse
	}
	if err := go_json.NewDecoder(bytes.NewReader(data)).Decode(result); err != nil {
		c.logger.DebugContext(ctx, "undecodable response body",
			xslog.HTTPStatus(resp.StatusCode),
			xslog.Body(data),
		)
		return fmt.Errorf("decoding response: %w", err)
	}

	return nil
}
