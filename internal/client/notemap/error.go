package notemap

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	go_json "github.com/goccy/go-json"

	"github.com/garrettladley/notemap/internal/result"
	"github.com/garrettladley/notemap/internal/xhttp"
)

var ErrEmptyResponse = errors.New("empty response body")

// maxErrorBody bounds how much of an error response is read.
const maxErrorBody = 64 << 10

var _ result.UserMessager = (*APIError)(nil)

type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Fields     map[string]string
	RetryAfter time.Duration
	RateLimit  *RateLimitInfo
}

func (e *APIError) Error() string {
	return fmt.Sprintf("notemap api: %d %s", e.StatusCode, e.Message)
}

// UserMessage is the server-supplied message, or "<code> <reason>" when the
// response carried none.
func (e *APIError) UserMessage() string {
	return e.Message
}

func (e *APIError) IsUnauthorized() bool { return e.StatusCode == http.StatusUnauthorized }
func (e *APIError) IsNotFound() bool     { return e.StatusCode == http.StatusNotFound }

func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

func parseAPIError(resp *http.Response) error {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Message:    xhttp.StatusLine(resp),
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		apiErr.RetryAfter = xhttp.ParseRetryAfter(resp.Header, time.Now())
		if info, err := ParseRateLimitHeaders(resp.Header); err == nil {
			apiErr.RateLimit = info
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(strings.TrimSpace(string(body))) == 0 {
		return apiErr
	}

	var errResp struct {
		Message string            `json:"message"`
		Error   string            `json:"error"`
		Code    string            `json:"code"`
		Fields  map[string]string `json:"fields"`
	}

	if err := go_json.Unmarshal(body, &errResp); err != nil {
		return apiErr
	}

	msg := errResp.Message
	if msg == "" {
		msg = errResp.Error
	}
	if msg != "" {
		apiErr.Message = msg
	}
	apiErr.Code = errResp.Code
	apiErr.Fields = errResp.Fields

	return apiErr
}
