package xhttp

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/garrettladley/notemap/internal/xslog"
)

func TestLoggingTransportPrefersContextLogger(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(srv.Close)

	var fallback, scoped bytes.Buffer
	transport := NewLoggingTransport(http.DefaultTransport, xslog.NewLogger(&fallback, xslog.LevelDebug))

	ctx := xslog.WithLogger(t.Context(), xslog.NewLogger(&scoped, xslog.LevelDebug))
	ctx = xslog.WithAttrs(ctx, xslog.RequestID("req-7"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/v1/me?key=secret", nil)
	if err != nil {
		t.Fatalf("creating request: %v", err)
	}

	resp, err := (&http.Client{Transport: transport}).Do(req)
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	DrainAndClose(resp)

	if fallback.Len() != 0 {
		t.Errorf("fallback logger was used: %s", fallback.String())
	}

	out := scoped.String()
	if !strings.Contains(out, "http round trip") || !strings.Contains(out, `"request_id":"req-7"`) {
		t.Errorf("log = %s, want a round trip line with the request id", out)
	}
	if strings.Contains(out, "secret") {
		t.Errorf("log leaks the query string: %s", out)
	}
}
