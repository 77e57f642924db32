package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/garrettladley/notemap/internal/client/notemap"
	"github.com/garrettladley/notemap/internal/result"
)

func newPrintCmd(asJSON bool) (*cobra.Command, *bytes.Buffer) {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().Bool(flagJSON, asJSON, "")
	var out bytes.Buffer
	cmd.SetOut(&out)
	return cmd, &out
}

func TestPrintResult(t *testing.T) {
	t.Parallel()

	note := notemap.Note{ID: 1, Title: "t"}

	tests := []struct {
		name    string
		asJSON  bool
		r       result.Result[notemap.Note]
		wantOut string
		wantErr string
	}{
		{name: "success text", r: result.Success(note), wantOut: "#1 t"},
		{name: "success json", asJSON: true, r: result.Success(note), wantOut: `"title": "t"`},
		{name: "error", r: result.Error[notemap.Note]("not found"), wantErr: "not found"},
		{name: "loading", r: result.Loading[notemap.Note](), wantOut: "still loading"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cmd, out := newPrintCmd(tt.asJSON)
			err := printResult(cmd, tt.r, printNote)

			if tt.wantErr != "" {
				if err == nil || err.Error() != tt.wantErr {
					t.Fatalf("printResult() error = %v, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("printResult() error = %v", err)
			}
			if !strings.Contains(out.String(), tt.wantOut) {
				t.Errorf("output = %q, want it to contain %q", out.String(), tt.wantOut)
			}
		})
	}
}

func TestReadPassword(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	cmd.SetIn(strings.NewReader("s3cret\n"))
	cmd.SetErr(io.Discard)

	t.Setenv(passwordEnv, "")
	if got, _ := readPassword(cmd, "flag"); got != "flag" {
		t.Errorf("flag password = %q", got)
	}
	if got, _ := readPassword(cmd, ""); got != "s3cret" {
		t.Errorf("stdin password = %q", got)
	}

	t.Setenv(passwordEnv, "from-env")
	if got, _ := readPassword(cmd, ""); got != "from-env" {
		t.Errorf("env password = %q", got)
	}
}

func TestParseNoteID(t *testing.T) {
	t.Parallel()

	for in, wantErr := range map[string]bool{"42": false, "0": true, "-1": true, "abc": true} {
		if _, err := parseNoteID(in); (err != nil) != wantErr {
			t.Errorf("parseNoteID(%q) error = %v, wantErr %v", in, err, wantErr)
		}
	}
}
