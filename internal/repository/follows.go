package repository

import (
	"context"

	"github.com/garrettladley/notemap/internal/client/notemap"
	"github.com/garrettladley/notemap/internal/result"
)

type followRepo struct {
	api notemap.FollowService
}

func (r *followRepo) Follow(ctx context.Context, userID string) result.Result[result.Unit] {
	return result.Done(r.api.Follow(ctx, userID))
}

func (r *followRepo) Unfollow(ctx context.Context, userID string) result.Result[result.Unit] {
	return result.Done(r.api.Unfollow(ctx, userID))
}

func (r *followRepo) Followers(ctx context.Context, userID string, params *notemap.ListParams) result.Result[notemap.Page[notemap.UserSummary]] {
	return result.FromPtr(r.api.Followers(ctx, userID, withDefaultLimit(params)))
}

func (r *followRepo) Following(ctx context.Context, userID string, params *notemap.ListParams) result.Result[notemap.Page[notemap.UserSummary]] {
	return result.FromPtr(r.api.Following(ctx, userID, withDefaultLimit(params)))
}

func (r *followRepo) IsFollowing(ctx context.Context, userID string) result.Result[bool] {
	return result.From(r.api.IsFollowing(ctx, userID))
}
