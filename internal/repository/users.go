package repository

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/garrettladley/notemap/internal/cache"
	"github.com/garrettladley/notemap/internal/client/notemap"
	"github.com/garrettladley/notemap/internal/result"
	"github.com/garrettladley/notemap/internal/xslog"
)

type userRepo struct {
	users   notemap.UserService
	follows notemap.FollowService
	notes   notemap.NoteService
	recent  cache.RecentUsers
}

func (r *userRepo) Me(ctx context.Context) result.Result[notemap.User] {
	return result.FromPtr(r.users.Me(ctx))
}

func (r *userRepo) Get(ctx context.Context, id string) result.Result[notemap.User] {
	user, err := r.users.Get(ctx, id)
	if err == nil && user != nil {
		r.remember(ctx, user.UserSummary)
	}
	return result.FromPtr(user, err)
}

func (r *userRepo) Search(ctx context.Context, query string, params *notemap.ListParams) result.Result[notemap.Page[notemap.UserSummary]] {
	if query == "" {
		return result.Error[notemap.Page[notemap.UserSummary]]("search query is required")
	}
	return result.FromPtr(r.users.Search(ctx, query, withDefaultLimit(params)))
}

func (r *userRepo) Recent(ctx context.Context, limit int) result.Result[[]cache.RecentUser] {
	return result.From(r.recent.List(ctx, limit))
}

// Profile loads the user and the first page of their notes, followers and
// following concurrently; any failure fails the whole profile.
func (r *userRepo) Profile(ctx context.Context, id string) result.Result[Profile] {
	var (
		profile   Profile
		firstPage = &notemap.ListParams{Limit: DefaultPageSize}
		g, gctx   = errgroup.WithContext(ctx)
	)

	g.Go(func() error {
		user, err := r.users.Get(gctx, id)
		if err != nil {
			return err
		}
		profile.User = *user
		return nil
	})
	g.Go(func() error {
		page, err := r.notes.ByUser(gctx, id, firstPage)
		if err != nil {
			return err
		}
		profile.Notes = page.Records
		return nil
	})
	g.Go(func() error {
		page, err := r.follows.Followers(gctx, id, firstPage)
		if err != nil {
			return err
		}
		profile.Followers = page.Records
		return nil
	})
	g.Go(func() error {
		page, err := r.follows.Following(gctx, id, firstPage)
		if err != nil {
			return err
		}
		profile.Following = page.Records
		return nil
	})

	if err := g.Wait(); err != nil {
		return result.FromErr[Profile](err)
	}

	r.remember(ctx, profile.User.UserSummary)
	return result.Success(profile)
}

// remember is best-effort; a cache failure never fails the lookup.
func (r *userRepo) remember(ctx context.Context, u notemap.UserSummary) {
	err := r.recent.Add(ctx, cache.RecentUser{
		UserID:      u.ID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		AvatarURL:   u.AvatarURL,
	})
	if err != nil {
		xslog.FromContext(ctx).WarnContext(ctx, "failed to record recent user", xslog.UserID(u.ID), xslog.Error(err))
	}
}
