package notemap

import (
	"strings"

	"github.com/garrettladley/notemap/internal/validator"
)

const (
	maxTitleLen    = 120
	maxBodyLen     = 5000
	minPasswordLen = 8
	minUsernameLen = 3
	maxUsernameLen = 30
	MinStars       = 1
	MaxStars       = 5
)

var (
	_ validator.Validator = LoginRequest{}
	_ validator.Validator = RegisterRequest{}
	_ validator.Validator = CreateNoteRequest{}
	_ validator.Validator = UpdateNoteRequest{}
)

func (r LoginRequest) Validate() map[string]string {
	fields := make(validator.Fields)
	fields.Check(validator.Email(r.Email), "email", "enter a valid email address")
	fields.Check(r.Password != "", "password", "password is required")
	return fields.Result()
}

func (r RegisterRequest) Validate() map[string]string {
	fields := make(validator.Fields)
	n := len([]rune(strings.TrimSpace(r.Username)))
	fields.Check(n >= minUsernameLen && n <= maxUsernameLen, "username", "username must be 3 to 30 characters")
	fields.Check(validator.Email(r.Email), "email", "enter a valid email address")
	fields.Check(len(r.Password) >= minPasswordLen, "password", "password must be at least 8 characters")
	return fields.Result()
}

func (r CreateNoteRequest) Validate() map[string]string {
	fields := make(validator.Fields)
	checkTitle(fields, r.Title)
	fields.Check(validator.MaxLen(r.Body, maxBodyLen), "body", "body is too long")
	checkLocation(fields, r.Location)
	fields.Check(r.Visibility == "" || r.Visibility.Valid(), "visibility", "unknown visibility")
	return fields.Result()
}

func (r UpdateNoteRequest) Validate() map[string]string {
	fields := make(validator.Fields)
	if r.Title != nil {
		checkTitle(fields, *r.Title)
	}
	if r.Body != nil {
		fields.Check(validator.MaxLen(*r.Body, maxBodyLen), "body", "body is too long")
	}
	if r.Location != nil {
		checkLocation(fields, *r.Location)
	}
	if r.Visibility != nil {
		fields.Check(r.Visibility.Valid(), "visibility", "unknown visibility")
	}
	return fields.Result()
}

func ValidateStars(stars int) error {
	if validator.Between(stars, MinStars, MaxStars) {
		return nil
	}
	return &validator.Error{Fields: map[string]string{"stars": "rating must be between 1 and 5"}}
}

func checkTitle(fields validator.Fields, title string) {
	fields.Check(validator.NotBlank(title), "title", "title is required")
	fields.Check(validator.MaxLen(title, maxTitleLen), "title", "title is too long")
}

func checkLocation(fields validator.Fields, loc Location) {
	fields.Check(validator.Latitude(loc.Latitude), "latitude", "latitude must be between -90 and 90")
	fields.Check(validator.Longitude(loc.Longitude), "longitude", "longitude must be between -180 and 180")
}
