package notemap

import "context"

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (*TokenPair, error)
	Register(ctx context.Context, req RegisterRequest) (*TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
}

type NoteService interface {
	Get(ctx context.Context, id int64) (*Note, error)
	List(ctx context.Context, params *ListParams) (*Page[Note], error)
	Nearby(ctx context.Context, params NearbyParams) ([]Note, error)
	ByUser(ctx context.Context, userID string, params *ListParams) (*Page[Note], error)
	Create(ctx context.Context, req CreateNoteRequest) (*Note, error)
	Update(ctx context.Context, id int64, req UpdateNoteRequest) (*Note, error)
	Delete(ctx context.Context, id int64) error
	Rate(ctx context.Context, id int64, stars int) (*NoteRating, error)
	Like(ctx context.Context, id int64) error
	Unlike(ctx context.Context, id int64) error
	Save(ctx context.Context, id int64) error
	Unsave(ctx context.Context, id int64) error
	Saved(ctx context.Context, params *ListParams) (*Page[Note], error)
}

type UserService interface {
	Me(ctx context.Context) (*User, error)
	Get(ctx context.Context, id string) (*User, error)
	Search(ctx context.Context, query string, params *ListParams) (*Page[UserSummary], error)
}

type FollowService interface {
	Follow(ctx context.Context, userID string) error
	Unfollow(ctx context.Context, userID string) error
	Followers(ctx context.Context, userID string, params *ListParams) (*Page[UserSummary], error)
	Following(ctx context.Context, userID string, params *ListParams) (*Page[UserSummary], error)
	IsFollowing(ctx context.Context, userID string) (bool, error)
}
