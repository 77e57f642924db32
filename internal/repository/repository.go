// Package repository joins the remote clients with the local stores. Every
// method returns a result.Result so callers handle success, error and loading
// the same way.
package repository

import (
	"context"
	"time"

	"github.com/garrettladley/notemap/internal/cache"
	"github.com/garrettladley/notemap/internal/client/notemap"
	"github.com/garrettladley/notemap/internal/client/places"
	"github.com/garrettladley/notemap/internal/credentials"
	"github.com/garrettladley/notemap/internal/result"
)

const DefaultPageSize = 20

type Repository struct {
	Auth      AuthRepository
	Notes     NoteRepository
	Users     UserRepository
	Follows   FollowRepository
	Locations LocationRepository
}

// PlacesAPI is the subset of the places client the repository needs.
type PlacesAPI interface {
	Autocomplete(ctx context.Context, input string, near *places.LatLng) ([]places.Prediction, error)
	Details(ctx context.Context, placeID string) (*places.Place, error)
}

type Deps struct {
	API         *notemap.Client
	Places      PlacesAPI
	Credentials credentials.Store
	Cache       *cache.Cache
}

func New(deps Deps) *Repository {
	return &Repository{
		Auth: &authRepo{
			api:   deps.API.Auth,
			store: deps.Credentials,
			cache: deps.Cache,
			now:   time.Now,
		},
		Notes: &noteRepo{api: deps.API.Notes},
		Users: &userRepo{
			users:   deps.API.Users,
			follows: deps.API.Follows,
			notes:   deps.API.Notes,
			recent:  deps.Cache.Users,
		},
		Follows: &followRepo{api: deps.API.Follows},
		Locations: &locationRepo{
			places: deps.Places,
			recent: deps.Cache.Locations,
		},
	}
}

type Session struct {
	UserID string
	Expiry time.Time
}

type Profile struct {
	User      notemap.User
	Notes     []notemap.Note
	Followers []notemap.UserSummary
	Following []notemap.UserSummary
}

type AuthRepository interface {
	Login(ctx context.Context, email, password string) result.Result[Session]
	Register(ctx context.Context, username, email, password string) result.Result[Session]
	// Logout always clears local credentials and the recent lists, even when
	// the backend call fails.
	Logout(ctx context.Context) result.Result[result.Unit]
	CurrentUserID(ctx context.Context) result.Result[string]
	IsSignedIn(ctx context.Context) result.Result[bool]
}

type NoteRepository interface {
	Get(ctx context.Context, id int64) result.Result[notemap.Note]
	List(ctx context.Context, params *notemap.ListParams) result.Result[notemap.Page[notemap.Note]]
	Nearby(ctx context.Context, params notemap.NearbyParams) result.Result[[]notemap.Note]
	ByUser(ctx context.Context, userID string, params *notemap.ListParams) result.Result[notemap.Page[notemap.Note]]
	Create(ctx context.Context, req notemap.CreateNoteRequest) result.Result[notemap.Note]
	Update(ctx context.Context, id int64, req notemap.UpdateNoteRequest) result.Result[notemap.Note]
	Delete(ctx context.Context, id int64) result.Result[result.Unit]
	Rate(ctx context.Context, id int64, stars int) result.Result[notemap.NoteRating]
	Like(ctx context.Context, id int64) result.Result[result.Unit]
	Unlike(ctx context.Context, id int64) result.Result[result.Unit]
	Save(ctx context.Context, id int64) result.Result[result.Unit]
	Unsave(ctx context.Context, id int64) result.Result[result.Unit]
	Saved(ctx context.Context, params *notemap.ListParams) result.Result[notemap.Page[notemap.Note]]
}

type UserRepository interface {
	Me(ctx context.Context) result.Result[notemap.User]
	// Get records the user in the recent list on success.
	Get(ctx context.Context, id string) result.Result[notemap.User]
	Search(ctx context.Context, query string, params *notemap.ListParams) result.Result[notemap.Page[notemap.UserSummary]]
	Recent(ctx context.Context, limit int) result.Result[[]cache.RecentUser]
	Profile(ctx context.Context, id string) result.Result[Profile]
}

type FollowRepository interface {
	Follow(ctx context.Context, userID string) result.Result[result.Unit]
	Unfollow(ctx context.Context, userID string) result.Result[result.Unit]
	Followers(ctx context.Context, userID string, params *notemap.ListParams) result.Result[notemap.Page[notemap.UserSummary]]
	Following(ctx context.Context, userID string, params *notemap.ListParams) result.Result[notemap.Page[notemap.UserSummary]]
	IsFollowing(ctx context.Context, userID string) result.Result[bool]
}

type LocationRepository interface {
	Search(ctx context.Context, input string, near *places.LatLng) result.Result[[]places.Prediction]
	// Resolve records the place in the recent list on success.
	Resolve(ctx context.Context, placeID string) result.Result[places.Place]
	Recent(ctx context.Context, limit int) result.Result[[]cache.RecentLocation]
}
