package repository

import (
	"context"
	"errors"
	"time"

	"golang.org/x/oauth2"

	"github.com/garrettladley/notemap/internal/cache"
	"github.com/garrettladley/notemap/internal/client/notemap"
	"github.com/garrettladley/notemap/internal/credentials"
	"github.com/garrettladley/notemap/internal/result"
	"github.com/garrettladley/notemap/internal/validator"
	"github.com/garrettladley/notemap/internal/xslog"
)

const msgNotSignedIn = "not signed in - run notemap login"

type authRepo struct {
	api   notemap.AuthService
	store credentials.Store
	cache *cache.Cache
	now   func() time.Time
}

func (r *authRepo) Login(ctx context.Context, email, password string) result.Result[Session] {
	req := notemap.LoginRequest{Email: email, Password: password}
	if err := validator.Validate(req); err != nil {
		return result.FromErr[Session](err)
	}

	pair, err := r.api.Login(ctx, req)
	if err != nil {
		return result.FromErr[Session](err)
	}
	return r.persist(ctx, pair)
}

func (r *authRepo) Register(ctx context.Context, username, email, password string) result.Result[Session] {
	req := notemap.RegisterRequest{Username: username, Email: email, Password: password}
	if err := validator.Validate(req); err != nil {
		return result.FromErr[Session](err)
	}

	pair, err := r.api.Register(ctx, req)
	if err != nil {
		return result.FromErr[Session](err)
	}
	return r.persist(ctx, pair)
}

func (r *authRepo) persist(ctx context.Context, pair *notemap.TokenPair) result.Result[Session] {
	if pair == nil || pair.AccessToken == "" {
		return result.Error[Session]("sign in failed: no access token returned")
	}

	token := &oauth2.Token{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    pair.TokenType,
	}
	switch {
	case pair.ExpiresIn > 0:
		token.Expiry = r.now().Add(time.Duration(pair.ExpiresIn) * time.Second)
	default:
		if exp, ok := credentials.ExpiryFromJWT(pair.AccessToken); ok {
			token.Expiry = exp
		}
	}

	userID := pair.UserID
	if userID == "" {
		userID, _ = credentials.SubjectFromJWT(pair.AccessToken)
	}

	if err := r.store.Set(ctx, &credentials.Credentials{Token: token, UserID: userID}); err != nil {
		return result.FromErr[Session](err)
	}

	xslog.FromContext(ctx).InfoContext(ctx, "signed in", xslog.UserID(userID), xslog.Expiry(token.Expiry))
	return result.Success(Session{UserID: userID, Expiry: token.Expiry})
}

func (r *authRepo) Logout(ctx context.Context) result.Result[result.Unit] {
	creds, err := r.store.Get(ctx)
	if errors.Is(err, credentials.ErrNotFound) {
		return result.Success(result.Unit{})
	}
	if err != nil {
		return result.Done(err)
	}

	if refresh := creds.RefreshToken(); refresh != "" {
		if err := r.api.Logout(ctx, refresh); err != nil {
			xslog.FromContext(ctx).WarnContext(ctx, "remote logout failed, clearing local credentials anyway", xslog.Error(err))
		}
	}

	if err := r.store.Clear(ctx); err != nil {
		return result.Done(err)
	}
	return result.Done(r.clearRecent(ctx))
}

// clearRecent forgets the signed-out user's recently viewed users and places.
func (r *authRepo) clearRecent(ctx context.Context) error {
	if r.cache == nil {
		return nil
	}
	return errors.Join(
		r.cache.Users.Clear(ctx),
		r.cache.Locations.Clear(ctx),
	)
}

func (r *authRepo) CurrentUserID(ctx context.Context) result.Result[string] {
	creds, err := r.store.Get(ctx)
	if errors.Is(err, credentials.ErrNotFound) {
		return result.Error[string](msgNotSignedIn)
	}
	if err != nil {
		return result.FromErr[string](err)
	}
	if creds.UserID == "" {
		return result.Error[string]("signed in, but the user id is unknown - sign in again")
	}
	return result.Success(creds.UserID)
}

func (r *authRepo) IsSignedIn(ctx context.Context) result.Result[bool] {
	return result.From(credentials.HasToken(ctx, r.store))
}
