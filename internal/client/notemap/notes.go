package notemap

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"
)

type noteService struct {
	client *Client
}

func (s *noteService) Get(ctx context.Context, id int64) (*Note, error) {
	const route = "/v1/notes"
	path := fmt.Sprintf("%s/%d", route, id)

	var note Note
	if err := s.client.do(ctx, http.MethodGet, path, nil, nil, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

func (s *noteService) List(ctx context.Context, params *ListParams) (*Page[Note], error) {
	const route = "/v1/notes"

	var resp Page[Note]
	if err := s.client.do(ctx, http.MethodGet, route, params.values(), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *noteService) Nearby(ctx context.Context, params NearbyParams) ([]Note, error) {
	const route = "/v1/notes/nearby"

	query := url.Values{
		"lat": {strconv.FormatFloat(params.Latitude, 'f', -1, 64)},
		"lng": {strconv.FormatFloat(params.Longitude, 'f', -1, 64)},
	}
	if params.RadiusMeters > 0 {
		query.Set("radius", strconv.Itoa(params.RadiusMeters))
	}
	if params.Limit > 0 {
		query.Set("limit", strconv.Itoa(params.Limit))
	}

	var resp Page[Note]
	if err := s.client.do(ctx, http.MethodGet, route, query, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Records, nil
}

func (s *noteService) ByUser(ctx context.Context, userID string, params *ListParams) (*Page[Note], error) {
	const route = "/v1/users"
	path := fmt.Sprintf("%s/%s/notes", route, url.PathEscape(userID))

	var resp Page[Note]
	if err := s.client.do(ctx, http.MethodGet, path, params.values(), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Create sends a fresh Idempotency-Key so a replayed create is not duplicated.
func (s *noteService) Create(ctx context.Context, req CreateNoteRequest) (*Note, error) {
	const route = "/v1/notes"

	var note Note
	if err := s.client.do(ctx, http.MethodPost, route, nil, req, &note, withIdempotencyKey(uuid.NewString())); err != nil {
		return nil, err
	}
	return &note, nil
}

func (s *noteService) Update(ctx context.Context, id int64, req UpdateNoteRequest) (*Note, error) {
	const route = "/v1/notes"
	path := fmt.Sprintf("%s/%d", route, id)

	var note Note
	if err := s.client.do(ctx, http.MethodPatch, path, nil, req, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

func (s *noteService) Delete(ctx context.Context, id int64) error {
	const route = "/v1/notes"
	path := fmt.Sprintf("%s/%d", route, id)
	return s.client.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

func (s *noteService) Rate(ctx context.Context, id int64, stars int) (*NoteRating, error) {
	const route = "/v1/notes"
	path := fmt.Sprintf("%s/%d/rating", route, id)

	var rating NoteRating
	if err := s.client.do(ctx, http.MethodPut, path, nil, rateRequest{Stars: stars}, &rating); err != nil {
		return nil, err
	}
	return &rating, nil
}

func (s *noteService) Like(ctx context.Context, id int64) error {
	return s.toggle(ctx, http.MethodPut, id, "like")
}

func (s *noteService) Unlike(ctx context.Context, id int64) error {
	return s.toggle(ctx, http.MethodDelete, id, "like")
}

func (s *noteService) Save(ctx context.Context, id int64) error {
	return s.toggle(ctx, http.MethodPut, id, "save")
}

func (s *noteService) Unsave(ctx context.Context, id int64) error {
	return s.toggle(ctx, http.MethodDelete, id, "save")
}

func (s *noteService) toggle(ctx context.Context, method string, id int64, action string) error {
	const route = "/v1/notes"
	path := fmt.Sprintf("%s/%d/%s", route, id, action)
	return s.client.do(ctx, method, path, nil, nil, nil)
}

func (s *noteService) Saved(ctx context.Context, params *ListParams) (*Page[Note], error) {
	const route = "/v1/me/saved"

	var resp Page[Note]
	if err := s.client.do(ctx, http.MethodGet, route, params.values(), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
