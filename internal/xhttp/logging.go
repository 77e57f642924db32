package xhttp

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/garrettladley/notemap/internal/xslog"
)

type loggingTransport struct {
	base   http.RoundTripper
	logger *slog.Logger
}

var _ http.RoundTripper = (*loggingTransport)(nil)

// NewLoggingTransport logs one line per round trip at debug level, warn for
// transport failures. A logger carried by the request context wins over
// logger.
func NewLoggingTransport(base http.RoundTripper, logger *slog.Logger) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &loggingTransport{base: base, logger: logger}
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	ctx := req.Context()
	logger := xslog.FromContextOr(ctx, t.logger)

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		logger.WarnContext(ctx, "http round trip failed",
			xslog.OutgoingRequestGroup(req),
			xslog.Duration(time.Since(start)),
			xslog.Error(err),
		)
		return nil, err
	}

	logger.DebugContext(ctx, "http round trip",
		xslog.OutgoingRequestGroup(req),
		xslog.ResponseGroup(resp.StatusCode, time.Since(start)),
	)
	return resp, nil
}
