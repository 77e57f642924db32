package notemap

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

type followService struct {
	client *Client
}

func followPath(userID, suffix string) string {
	const route = "/v1/users"
	return fmt.Sprintf("%s/%s/%s", route, url.PathEscape(userID), suffix)
}

func (s *followService) Follow(ctx context.Context, userID string) error {
	return s.client.do(ctx, http.MethodPut, followPath(userID, "follow"), nil, nil, nil)
}

func (s *followService) Unfollow(ctx context.Context, userID string) error {
	return s.client.do(ctx, http.MethodDelete, followPath(userID, "follow"), nil, nil, nil)
}

func (s *followService) Followers(ctx context.Context, userID string, params *ListParams) (*Page[UserSummary], error) {
	var resp Page[UserSummary]
	if err := s.client.do(ctx, http.MethodGet, followPath(userID, "followers"), params.values(), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *followService) Following(ctx context.Context, userID string, params *ListParams) (*Page[UserSummary], error) {
	var resp Page[UserSummary]
	if err := s.client.do(ctx, http.MethodGet, followPath(userID, "following"), params.values(), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *followService) IsFollowing(ctx context.Context, userID string) (bool, error) {
	var status followStatus
	if err := s.client.do(ctx, http.MethodGet, followPath(userID, "follow"), nil, nil, &status); err != nil {
		return false, err
	}
	return status.Following, nil
}
