package xhttp

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	Authorization  = "Authorization"
	Accept         = "Accept"
	ContentType    = "Content-Type"
	UserAgent      = "User-Agent"
	RetryAfter     = "Retry-After"
	XRequestID     = "X-Request-ID"
	IdempotencyKey = "Idempotency-Key"
)

const (
	ApplicationJSON = "application/json"
	bearerPrefix    = "Bearer "
)

func SetRequestHeaderBearer(req *http.Request, accessToken string) {
	req.Header.Set(Authorization, bearerPrefix+accessToken)
}

// BearerToken returns the token of a "Bearer <token>" Authorization header.
func BearerToken(req *http.Request) (string, bool) {
	v := req.Header.Get(Authorization)
	if len(v) < len(bearerPrefix) || !strings.EqualFold(v[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}
	return strings.TrimSpace(v[len(bearerPrefix):]), true
}

func HasAuthorization(req *http.Request) bool {
	_, ok := req.Header[Authorization]
	return ok
}

func SetRequestHeaderJSON(req *http.Request) {
	req.Header.Set(Accept, ApplicationJSON)
	if req.Body != nil && req.Body != http.NoBody {
		req.Header.Set(ContentType, ApplicationJSON)
	}
}

// ParseRetryAfter understands both the delta-seconds and HTTP-date forms.
func ParseRetryAfter(h http.Header, now time.Time) time.Duration {
	v := h.Get(RetryAfter)
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(v); err == nil && at.After(now) {
		return at.Sub(now)
	}
	return 0
}
