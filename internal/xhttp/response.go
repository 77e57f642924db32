package xhttp

import (
	"io"
	"net/http"
	"strconv"
)

// maxDrain bounds how much of an abandoned body is read so the connection
// can be reused.
const maxDrain = 64 << 10

func DrainAndClose(resp *http.Response) {
	if resp == nil || resp.Body == nil {
		return
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrain))
	_ = resp.Body.Close()
}

func IsSuccess(status int) bool {
	return status >= 200 && status < 300
}

// StatusLine is the "<code> <reason>" form used when an error response has no
// usable body, e.g. "404 Not Found".
func StatusLine(resp *http.Response) string {
	if resp.Status != "" {
		return resp.Status
	}
	return StatusLineFor(resp.StatusCode)
}

func StatusLineFor(status int) string {
	text := http.StatusText(status)
	if text == "" {
		return strconv.Itoa(status)
	}
	return strconv.Itoa(status) + " " + text
}
