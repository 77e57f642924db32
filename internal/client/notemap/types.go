package notemap

import "time"

type Note struct {
	ID          int64        `json:"id"`
	Title       string       `json:"title"`
	Body        string       `json:"body,omitempty"`
	AuthorID    string       `json:"author_id,omitempty"`
	Author      *UserSummary `json:"author,omitempty"`
	Location    *Location    `json:"location,omitempty"`
	Visibility  Visibility   `json:"visibility,omitempty"`
	Tags        []string     `json:"tags,omitempty"`
	Rating      float64      `json:"rating,omitempty"`
	RatingCount int          `json:"rating_count,omitempty"`
	MyRating    *int         `json:"my_rating,omitempty"`
	LikeCount   int          `json:"like_count,omitempty"`
	Liked       bool         `json:"liked,omitempty"`
	Saved       bool         `json:"saved,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	PlaceID   string  `json:"place_id,omitempty"`
	Name      string  `json:"name,omitempty"`
	Address   string  `json:"address,omitempty"`
}

type UserSummary struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name,omitempty"`
	AvatarURL   string `json:"avatar_url,omitempty"`
}

type User struct {
	UserSummary

	Bio            string    `json:"bio,omitempty"`
	FollowerCount  int       `json:"follower_count"`
	FollowingCount int       `json:"following_count"`
	NoteCount      int       `json:"note_count"`
	IsFollowing    bool      `json:"is_following,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type NoteRating struct {
	NoteID  int64   `json:"note_id"`
	Average float64 `json:"average"`
	Count   int     `json:"count"`
	Mine    int     `json:"mine"`
}

// TokenPair is returned by login and register.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type,omitempty"`
	ExpiresIn    int64  `json:"expires_in,omitempty"`
	UserID       string `json:"user_id,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateNoteRequest struct {
	Title      string     `json:"title"`
	Body       string     `json:"body,omitempty"`
	Location   Location   `json:"location"`
	Visibility Visibility `json:"visibility,omitempty"`
	Tags       []string   `json:"tags,omitempty"`
}

// UpdateNoteRequest only sends the fields that are set.
type UpdateNoteRequest struct {
	Title      *string     `json:"title,omitempty"`
	Body       *string     `json:"body,omitempty"`
	Location   *Location   `json:"location,omitempty"`
	Visibility *Visibility `json:"visibility,omitempty"`
	Tags       *[]string   `json:"tags,omitempty"`
}

type NearbyParams struct {
	Latitude     float64
	Longitude    float64
	RadiusMeters int
	Limit        int
}

type followStatus struct {
	Following bool `json:"following"`
}

type rateRequest struct {
	Stars int `json:"stars"`
}

type logoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}
