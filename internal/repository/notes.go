package repository

import (
	"context"

	"github.com/garrettladley/notemap/internal/client/notemap"
	"github.com/garrettladley/notemap/internal/result"
	"github.com/garrettladley/notemap/internal/validator"
)

type noteRepo struct {
	api notemap.NoteService
}

func (r *noteRepo) Get(ctx context.Context, id int64) result.Result[notemap.Note] {
	return result.FromPtr(r.api.Get(ctx, id))
}

func (r *noteRepo) List(ctx context.Context, params *notemap.ListParams) result.Result[notemap.Page[notemap.Note]] {
	return result.FromPtr(r.api.List(ctx, withDefaultLimit(params)))
}

func (r *noteRepo) Nearby(ctx context.Context, params notemap.NearbyParams) result.Result[[]notemap.Note] {
	return result.From(r.api.Nearby(ctx, params))
}

func (r *noteRepo) ByUser(ctx context.Context, userID string, params *notemap.ListParams) result.Result[notemap.Page[notemap.Note]] {
	return result.FromPtr(r.api.ByUser(ctx, userID, withDefaultLimit(params)))
}

func (r *noteRepo) Create(ctx context.Context, req notemap.CreateNoteRequest) result.Result[notemap.Note] {
	if err := validator.Validate(req); err != nil {
		return result.FromErr[notemap.Note](err)
	}
	if req.Visibility == "" {
		req.Visibility = notemap.VisibilityPublic
	}
	return result.FromPtr(r.api.Create(ctx, req))
}

func (r *noteRepo) Update(ctx context.Context, id int64, req notemap.UpdateNoteRequest) result.Result[notemap.Note] {
	if err := validator.Validate(req); err != nil {
		return result.FromErr[notemap.Note](err)
	}
	return result.FromPtr(r.api.Update(ctx, id, req))
}

func (r *noteRepo) Delete(ctx context.Context, id int64) result.Result[result.Unit] {
	return result.Done(r.api.Delete(ctx, id))
}

func (r *noteRepo) Rate(ctx context.Context, id int64, stars int) result.Result[notemap.NoteRating] {
	if err := notemap.ValidateStars(stars); err != nil {
		return result.FromErr[notemap.NoteRating](err)
	}
	return result.FromPtr(r.api.Rate(ctx, id, stars))
}

func (r *noteRepo) Like(ctx context.Context, id int64) result.Result[result.Unit] {
	return result.Done(r.api.Like(ctx, id))
}

func (r *noteRepo) Unlike(ctx context.Context, id int64) result.Result[result.Unit] {
	return result.Done(r.api.Unlike(ctx, id))
}

func (r *noteRepo) Save(ctx context.Context, id int64) result.Result[result.Unit] {
	return result.Done(r.api.Save(ctx, id))
}

func (r *noteRepo) Unsave(ctx context.Context, id int64) result.Result[result.Unit] {
	return result.Done(r.api.Unsave(ctx, id))
}

func (r *noteRepo) Saved(ctx context.Context, params *notemap.ListParams) result.Result[notemap.Page[notemap.Note]] {
	return result.FromPtr(r.api.Saved(ctx, withDefaultLimit(params)))
}

func withDefaultLimit(params *notemap.ListParams) *notemap.ListParams {
	if params == nil {
		return &notemap.ListParams{Limit: DefaultPageSize}
	}
	if params.Limit <= 0 {
		p := *params
		p.Limit = DefaultPageSize
		return &p
	}
	return params
}
