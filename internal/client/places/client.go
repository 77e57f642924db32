// Package places talks to the place autocomplete and details API used to pin
// notes to a location.
package places

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	go_json "github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/garrettladley/notemap/internal/xhttp"
	"github.com/garrettladley/notemap/internal/xslog"
)

const (
	DefaultBaseURL = "https://maps.googleapis.com/maps/api/place"

	defaultTimeout     = 10 * time.Second
	defaultRatePerSec  = 5
	defaultBurst       = 5
	defaultBiasRadiusM = 50_000
	detailsFields      = "place_id,name,formatted_address,geometry/location"
)

var ErrMissingAPIKey = errors.New("places api key is not configured")

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
}

type Option func(*Client)

func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithRateLimit caps outgoing requests; rps <= 0 disables limiting.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 0)
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), max(burst, 1))
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		apiKey:     apiKey,
		httpClient: xhttp.NewHTTPClient(xhttp.WithTimeout(defaultTimeout)),
		limiter:    rate.NewLimiter(defaultRatePerSec, defaultBurst),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Autocomplete returns predictions for input, biased towards near when set.
func (c *Client) Autocomplete(ctx context.Context, input string, near *LatLng) ([]Prediction, error) {
	const route = "/autocomplete/json"

	query := url.Values{"input": {input}}
	if near != nil {
		query.Set("location", formatLatLng(*near))
		query.Set("radius", strconv.Itoa(defaultBiasRadiusM))
	}

	var resp autocompleteResponse
	if err := c.get(ctx, route, query, &resp); err != nil {
		return nil, err
	}
	if err := resp.err(); err != nil {
		return nil, err
	}

	predictions := make([]Prediction, 0, len(resp.Predictions))
	for _, p := range resp.Predictions {
		predictions = append(predictions, Prediction{
			PlaceID:       p.PlaceID,
			Description:   p.Description,
			MainText:      p.StructuredFormatting.MainText,
			SecondaryText: p.StructuredFormatting.SecondaryText,
		})
	}
	return predictions, nil
}

func (c *Client) Details(ctx context.Context, placeID string) (*Place, error) {
	const route = "/details/json"

	query := url.Values{
		"place_id": {placeID},
		"fields":   {detailsFields},
	}

	var resp detailsResponse
	if err := c.get(ctx, route, query, &resp); err != nil {
		return nil, err
	}
	if err := resp.err(); err != nil {
		return nil, err
	}

	return &Place{
		PlaceID: resp.Result.PlaceID,
		Name:    resp.Result.Name,
		Address: resp.Result.FormattedAddress,
		LatLng:  resp.Result.Geometry.Location,
	}, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, result any) error {
	if c.apiKey == "" {
		return ErrMissingAPIKey
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("waiting for rate limiter: %w", err)
	}

	query.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	xhttp.SetRequestHeaderJSON(req)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", redactKey(err))
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.DebugContext(ctx, "places request",
		xslog.OutgoingRequestGroup(req),
		xslog.ResponseGroup(resp.StatusCode, time.Since(start)),
	)

	if !xhttp.IsSuccess(resp.StatusCode) {
		return parseHTTPError(resp)
	}

	if err := go_json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// redactKey drops the query string from transport errors, which would
// otherwise carry the api key into user-facing messages.
func redactKey(err error) error {
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return err
	}
	u, perr := url.Parse(urlErr.URL)
	if perr != nil {
		return &url.Error{Op: urlErr.Op, URL: "[redacted]", Err: urlErr.Err}
	}
	u.RawQuery = ""
	return &url.Error{Op: urlErr.Op, URL: u.String(), Err: urlErr.Err}
}

func formatLatLng(ll LatLng) string {
	return strconv.FormatFloat(ll.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(ll.Lng, 'f', -1, 64)
}
