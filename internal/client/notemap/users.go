package notemap

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

type userService struct {
	client *Client
}

func (s *userService) Me(ctx context.Context) (*User, error) {
	const route = "/v1/me"

	var user User
	if err := s.client.do(ctx, http.MethodGet, route, nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *userService) Get(ctx context.Context, id string) (*User, error) {
	const route = "/v1/users"
	path := fmt.Sprintf("%s/%s", route, url.PathEscape(id))

	var user User
	if err := s.client.do(ctx, http.MethodGet, path, nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *userService) Search(ctx context.Context, query string, params *ListParams) (*Page[UserSummary], error) {
	const route = "/v1/users/search"

	values := params.values()
	values.Set("q", query)

	var resp Page[UserSummary]
	if err := s.client.do(ctx, http.MethodGet, route, values, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
