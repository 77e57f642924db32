package places

import (
	"fmt"
	"io"
	"net/http"

	go_json "github.com/goccy/go-json"

	"github.com/garrettladley/notemap/internal/xhttp"
)

// APIError is a non-success HTTP status or a non-OK status in the body.
type APIError struct {
	StatusCode int
	Status     string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("places api: %s", e.Status)
	}
	return fmt.Sprintf("places api: %s: %s", e.Status, e.Message)
}

func (e *APIError) UserMessage() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Status
}

func parseHTTPError(resp *http.Response) error {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Status:     xhttp.StatusLine(resp),
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return apiErr
	}

	var env envelope
	if err := go_json.Unmarshal(body, &env); err == nil {
		if env.Status != "" {
			apiErr.Status = env.Status
		}
		apiErr.Message = env.ErrorMessage
	}
	return apiErr
}

func (e envelope) err() error {
	if e.Status == statusOK || e.Status == statusZeroResults {
		return nil
	}
	return &APIError{StatusCode: http.StatusOK, Status: e.Status, Message: e.ErrorMessage}
}
