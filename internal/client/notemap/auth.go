package notemap

import (
	"context"
	"net/http"
)

type authService struct {
	client *Client
}

func (s *authService) Login(ctx context.Context, req LoginRequest) (*TokenPair, error) {
	const route = "/auth/login"

	var pair TokenPair
	if err := s.client.do(ctx, http.MethodPost, route, nil, req, &pair, public()); err != nil {
		return nil, err
	}
	return &pair, nil
}

func (s *authService) Register(ctx context.Context, req RegisterRequest) (*TokenPair, error) {
	const route = "/auth/register"

	var pair TokenPair
	if err := s.client.do(ctx, http.MethodPost, route, nil, req, &pair, public()); err != nil {
		return nil, err
	}
	return &pair, nil
}

func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	const route = "/auth/logout"
	return s.client.do(ctx, http.MethodPost, route, nil, logoutRequest{RefreshToken: refreshToken}, nil, public())
}
