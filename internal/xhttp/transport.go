package xhttp

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/garrettladley/notemap/internal/version"
	"github.com/garrettladley/notemap/internal/xcontext"
)

type notemapTransport struct {
	base http.RoundTripper
}

var _ http.RoundTripper = (*notemapTransport)(nil)

func (t *notemapTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// RoundTrippers must not mutate the caller's request
	req = req.Clone(req.Context())

	req.Header.Set(UserAgent, "notemap/"+version.Get())
	req.Header.Set(version.Header, version.Get())

	if req.Header.Get(XRequestID) == "" {
		id, ok := xcontext.GetRequestID(req.Context())
		if !ok {
			id = uuid.NewString()
		}
		req.Header.Set(XRequestID, id)
	}

	return t.base.RoundTrip(req)
}

// NewTransport returns an http.RoundTripper with standard notemap headers.
func NewTransport() http.RoundTripper {
	return NewTransportWithBase(http.DefaultTransport)
}

func NewTransportWithBase(base http.RoundTripper) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	return &notemapTransport{base: base}
}
