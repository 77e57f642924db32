package places

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/garrettladley/notemap/internal/result"
	"github.com/garrettladley/notemap/internal/xslog"
)

func newTestClient(t *testing.T, h http.HandlerFunc, opts ...Option) *Client {
	t.Helper()

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	opts = append([]Option{WithBaseURL(srv.URL), WithLogger(xslog.Discard())}, opts...)
	return New("test-key", opts...)
}

func TestAutocomplete(t *testing.T) {
	t.Parallel()

	queries := make(chan url.Values, 1)
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/autocomplete/json" {
			t.Errorf("path = %s", r.URL.Path)
		}
		queries <- r.URL.Query()
		_, _ = io.WriteString(w, `{
			"status": "OK",
			"predictions": [{
				"place_id": "p1",
				"description": "Blue Bottle, Market St",
				"structured_formatting": {"main_text": "Blue Bottle", "secondary_text": "Market St"}
			}]
		}`)
	})

	got, err := c.Autocomplete(t.Context(), "blue bottle", &LatLng{Lat: 37.77, Lng: -122.41})
	if err != nil {
		t.Fatalf("Autocomplete() error = %v", err)
	}

	want := []Prediction{{
		PlaceID:       "p1",
		Description:   "Blue Bottle, Market St",
		MainText:      "Blue Bottle",
		SecondaryText: "Market St",
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Autocomplete() mismatch (-want +got):\n%s", diff)
	}

	q := <-queries
	for key, want := range map[string]string{
		"input":    "blue bottle",
		"key":      "test-key",
		"location": "37.77,-122.41",
		"radius":   "50000",
	} {
		if q.Get(key) != want {
			t.Errorf("query %s = %q, want %q", key, q.Get(key), want)
		}
	}
}

func TestAutocompleteZeroResults(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"status":"ZERO_RESULTS","predictions":[]}`)
	})

	got, err := c.Autocomplete(t.Context(), "nowhere", nil)
	if err != nil {
		t.Fatalf("Autocomplete() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Autocomplete() = %v, want empty", got)
	}
}

func TestDetails(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("place_id") != "p1" {
			t.Errorf("place_id = %q", r.URL.Query().Get("place_id"))
		}
		_, _ = io.WriteString(w, `{
			"status": "OK",
			"result": {
				"place_id": "p1",
				"name": "Blue Bottle",
				"formatted_address": "1 Market St",
				"geometry": {"location": {"lat": 37.77, "lng": -122.41}}
			}
		}`)
	})

	got, err := c.Details(t.Context(), "p1")
	if err != nil {
		t.Fatalf("Details() error = %v", err)
	}

	want := &Place{PlaceID: "p1", Name: "Blue Bottle", Address: "1 Market St", LatLng: LatLng{Lat: 37.77, Lng: -122.41}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Details() mismatch (-want +got):\n%s", diff)
	}
}

func TestErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{
			name:    "denied in body",
			status:  http.StatusOK,
			body:    `{"status":"REQUEST_DENIED","error_message":"The provided API key is invalid."}`,
			wantMsg: "The provided API key is invalid.",
		},
		{
			name:    "status without message",
			status:  http.StatusOK,
			body:    `{"status":"OVER_QUERY_LIMIT"}`,
			wantMsg: "OVER_QUERY_LIMIT",
		},
		{
			name:    "http failure",
			status:  http.StatusBadGateway,
			body:    "",
			wantMsg: "502 Bad Gateway",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			_, err := c.Details(t.Context(), "p1")

			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("Details() error = %v, want APIError", err)
			}
			if got := result.MessageOf(err); got != tt.wantMsg {
				t.Errorf("message = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}

func TestMissingAPIKey(t *testing.T) {
	t.Parallel()

	c := New("", WithBaseURL("http://unused"))
	if _, err := c.Autocomplete(t.Context(), "x", nil); !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("Autocomplete() error = %v, want ErrMissingAPIKey", err)
	}
}

func TestRateLimitHonorsContext(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"status":"ZERO_RESULTS"}`)
	}, WithRateLimit(0.001, 1))

	if _, err := c.Autocomplete(t.Context(), "first", nil); err != nil {
		t.Fatalf("first Autocomplete() error = %v", err)
	}

	ctx, cancel := context.WithTimeout(t.Context(), 20*time.Millisecond)
	defer cancel()

	if _, err := c.Autocomplete(ctx, "second", nil); err == nil {
		t.Error("second Autocomplete() succeeded, want rate limiter error")
	}
}

func TestTransportErrorHidesAPIKey(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(srv.Close)
	t.Cleanup(func() { close(release) })

	c := New("SECRET-KEY",
		WithBaseURL(srv.URL),
		WithLogger(xslog.Discard()),
		WithHTTPClient(&http.Client{Timeout: 50 * time.Millisecond}),
	)

	_, err := c.Autocomplete(t.Context(), "cafe", nil)
	if err == nil {
		t.Fatal("Autocomplete() error = nil, want timeout")
	}

	var netErr interface{ Timeout() bool }
	if !errors.As(err, &netErr) || !netErr.Timeout() {
		t.Errorf("Autocomplete() error = %v, want a timeout", err)
	}

	msg := result.MessageOf(err)
	if strings.Contains(msg, "SECRET-KEY") || strings.Contains(msg, "key=") {
		t.Errorf("message leaks the api key: %q", msg)
	}
	if !strings.Contains(msg, "/autocomplete/json") {
		t.Errorf("message = %q, want the request path", msg)
	}
}
