package auth

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	go_json "github.com/goccy/go-json"
	"github.com/golang-jwt/jwt/v5"
)

func TestHTTPRefresher(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	jwtExpiry := now.Add(30 * time.Minute)

	signedAccess, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(jwtExpiry),
	}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}

	tests := []struct {
		name        string
		status      int
		body        string
		wantErr     error
		wantAccess  string
		wantRefresh string
		wantExpiry  time.Time
	}{
		{
			name:        "expires_in wins",
			status:      http.StatusOK,
			body:        `{"access_token":"a2","refresh_token":"r2","token_type":"Bearer","expires_in":900}`,
			wantAccess:  "a2",
			wantRefresh: "r2",
			wantExpiry:  now.Add(15 * time.Minute),
		},
		{
			name:       "expiry read from jwt",
			status:     http.StatusOK,
			body:       `{"access_token":"` + signedAccess + `"}`,
			wantAccess: signedAccess,
			wantExpiry: jwtExpiry,
		},
		{
			name:    "empty access token",
			status:  http.StatusOK,
			body:    `{"access_token":""}`,
			wantErr: ErrEmptyToken,
		},
		{
			name:    "rejected refresh token",
			status:  http.StatusUnauthorized,
			body:    `{"message":"refresh token revoked"}`,
			wantErr: &RefreshError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/auth/refresh" || r.Method != http.MethodPost {
					t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
				}
				if r.Header.Get("Authorization") != "" {
					t.Error("refresh request must not carry a bearer token")
				}

				var req refreshRequest
				data, _ := io.ReadAll(r.Body)
				if err := go_json.Unmarshal(data, &req); err != nil || req.RefreshToken != "r1" {
					t.Errorf("refresh body = %s", data)
				}

				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			t.Cleanup(srv.Close)

			r := NewHTTPRefresher(srv.URL + "/")
			r.now = func() time.Time { return now }

			token, err := r.Refresh(t.Context(), "r1")

			if tt.wantErr != nil {
				var refreshErr *RefreshError
				switch {
				case errors.As(tt.wantErr, &refreshErr):
					if !errors.As(err, &refreshErr) || refreshErr.StatusCode != tt.status {
						t.Errorf("Refresh() error = %v, want RefreshError with %d", err, tt.status)
					}
				case !errors.Is(err, tt.wantErr):
					t.Errorf("Refresh() error = %v, want %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("Refresh() error = %v", err)
			}
			if token.AccessToken != tt.wantAccess {
				t.Errorf("AccessToken = %q, want %q", token.AccessToken, tt.wantAccess)
			}
			if token.RefreshToken != tt.wantRefresh {
				t.Errorf("RefreshToken = %q, want %q", token.RefreshToken, tt.wantRefresh)
			}
			if !token.Expiry.Equal(tt.wantExpiry) {
				t.Errorf("Expiry = %v, want %v", token.Expiry, tt.wantExpiry)
			}
			if token.TokenType != "Bearer" {
				t.Errorf("TokenType = %q, want Bearer", token.TokenType)
			}
		})
	}
}

func TestHTTPRefresherNetworkError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	if _, err := NewHTTPRefresher(url).Refresh(t.Context(), "r1"); err == nil {
		t.Error("Refresh() against closed server returned nil error")
	}
}

func TestHTTPRefresherRequiresToken(t *testing.T) {
	t.Parallel()

	if _, err := NewHTTPRefresher("http://unused").Refresh(t.Context(), ""); !errors.Is(err, ErrNoRefreshToken) {
		t.Errorf("Refresh(\"\") error = %v, want ErrNoRefreshToken", err)
	}
}
