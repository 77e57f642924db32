package github

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCheckForUpdate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		current       string
		tag           string
		wantAvailable bool
	}{
		{name: "newer release", current: "v1.2.0", tag: "v1.3.0", wantAvailable: true},
		{name: "same release", current: "v1.3.0", tag: "v1.3.0"},
		{name: "development build", current: "dev", tag: "v9.0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/repos/"+Owner+"/"+Repo+"/releases/latest" {
					http.NotFound(w, r)
					return
				}
				_, _ = io.WriteString(w, `{"tag_name":"`+tt.tag+`","html_url":"https://example.com/r"}`)
			}))
			t.Cleanup(srv.Close)

			update, err := NewClient(WithBaseURL(srv.URL)).CheckForUpdate(t.Context(), tt.current)
			if err != nil {
				t.Fatalf("CheckForUpdate() error = %v", err)
			}
			if update.Available != tt.wantAvailable {
				t.Errorf("Available = %v, want %v", update.Available, tt.wantAvailable)
			}
			if update.Latest.TagName != tt.tag {
				t.Errorf("TagName = %q, want %q", update.Latest.TagName, tt.tag)
			}
		})
	}
}

func TestLatestReleaseStatusError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	t.Cleanup(srv.Close)

	if _, err := NewClient(WithBaseURL(srv.URL)).LatestRelease(t.Context(), Owner, Repo); err == nil {
		t.Error("LatestRelease() error = nil for 403")
	}
}
