package xslog

import (
	"log/slog"
	"time"

	"github.com/garrettladley/notemap/internal/version"
)

const (
	keyError = "error"
)

func Error(err error) slog.Attr {
	return slog.String(keyError, err.Error())
}

func ErrorMessage(msg string) slog.Attr {
	return slog.String(keyError, msg)
}

func HTTPStatus(status int) slog.Attr {
	const statusKey = "status"
	return slog.Int(statusKey, status)
}

func Duration(duration time.Duration) slog.Attr {
	const durationKey = "duration"
	return slog.Duration(durationKey, duration)
}

func Version() slog.Attr {
	const versionKey = "version"
	return slog.String(versionKey, version.Get())
}

func NoteID(id int64) slog.Attr {
	const noteIDKey = "note_id"
	return slog.Int64(noteIDKey, id)
}

func UserID(id string) slog.Attr {
	const userIDKey = "user_id"
	return slog.String(userIDKey, id)
}

func PlaceID(id string) slog.Attr {
	const placeIDKey = "place_id"
	return slog.String(placeIDKey, id)
}

func Attempt(n int) slog.Attr {
	const attemptKey = "attempt"
	return slog.Int(attemptKey, n)
}

func Count(count int) slog.Attr {
	const countKey = "count"
	return slog.Int(countKey, count)
}

func Expiry(t time.Time) slog.Attr {
	const expiryKey = "expiry"
	return slog.Time(expiryKey, t)
}

func Shared(shared bool) slog.Attr {
	const sharedKey = "shared"
	return slog.Bool(sharedKey, shared)
}

func Command(name string) slog.Attr {
	const commandKey = "command"
	return slog.String(commandKey, name)
}

func Body(body []byte) slog.Attr {
	const bodyKey = "body"
	return slog.String(bodyKey, string(body))
}

func RequestID(id string) slog.Attr {
	const requestIDKey = "request_id"
	return slog.String(requestIDKey, id)
}
