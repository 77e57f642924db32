package xslog

import (
	"bytes"
	"strings"
	"testing"
)

func TestFromContext(t *testing.T) {
	t.Parallel()

	fallback := Discard()
	if got := FromContextOr(t.Context(), fallback); got != fallback {
		t.Error("FromContextOr() without a logger did not return the fallback")
	}

	var buf bytes.Buffer
	ctx := WithLogger(t.Context(), NewLogger(&buf, LevelDebug))
	ctx = WithAttrs(ctx, Command("notemap notes get"), RequestID("req-1"))

	FromContext(ctx).InfoContext(ctx, "hello")

	out := buf.String()
	for _, want := range []string{`"msg":"hello"`, `"command":"notemap notes get"`, `"request_id":"req-1"`} {
		if !strings.Contains(out, want) {
			t.Errorf("log line %s missing %s", out, want)
		}
	}
}
