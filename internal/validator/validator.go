package validator

import (
	"maps"
	"slices"
	"strings"
)

type Validator interface {
	// Validate validates the fields of the struct and returns a map of errors.
	// returns nil if no errors are found
	Validate() map[string]string
}

// Error carries one message per invalid field.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	return "invalid input: " + e.UserMessage()
}

// UserMessage lists the field messages in field order.
func (e *Error) UserMessage() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, field := range slices.Sorted(maps.Keys(e.Fields)) {
		msgs = append(msgs, e.Fields[field])
	}
	return strings.Join(msgs, "; ")
}

func Validate(v Validator) error {
	if fields := v.Validate(); len(fields) > 0 {
		return &Error{Fields: fields}
	}
	return nil
}

// Fields accumulates messages, keeping the first one per field.
type Fields map[string]string

func (f Fields) Check(ok bool, field, msg string) {
	if ok {
		return
	}
	if _, exists := f[field]; !exists {
		f[field] = msg
	}
}

// Result returns nil when nothing failed.
func (f Fields) Result() map[string]string {
	if len(f) == 0 {
		return nil
	}
	return f
}

func NotBlank(s string) bool { return strings.TrimSpace(s) != "" }

func MaxLen(s string, n int) bool { return len([]rune(s)) <= n }

func Between(v, lo, hi int) bool { return v >= lo && v <= hi }

func Latitude(lat float64) bool { return lat >= -90 && lat <= 90 }

func Longitude(lng float64) bool { return lng >= -180 && lng <= 180 }

func Email(s string) bool {
	at := strings.IndexByte(s, '@')
	return at > 0 && at < len(s)-1 && !strings.ContainsAny(s, " \t\n")
}
