package credentials

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/oauth2"
)

var _ Store = (*RedisStore)(nil)

const (
	redisKeyPrefix = "notemap:credentials:"

	fieldAccessToken  = "access_token"
	fieldRefreshToken = "refresh_token"
	fieldTokenType    = "token_type"
	fieldExpiry       = "expiry"
	fieldUserID       = "user_id"

	maxRotateAttempts = 3
)

// RedisStore keeps the credentials in one hash so several processes signed in
// as the same account share a single token pair.
type RedisStore struct {
	client *redis.Client
	key    string
}

func NewRedisStore(client *redis.Client, account string) *RedisStore {
	return &RedisStore{client: client, key: redisKeyPrefix + account}
}

func (s *RedisStore) Get(ctx context.Context) (*Credentials, error) {
	fields, err := s.client.HGetAll(ctx, s.key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load credentials: %w", err)
	}
	if len(fields) == 0 || fields[fieldAccessToken] == "" {
		return nil, ErrNotFound
	}

	token := &oauth2.Token{
		AccessToken:  fields[fieldAccessToken],
		TokenType:    fields[fieldTokenType],
		RefreshToken: fields[fieldRefreshToken],
	}
	if raw := fields[fieldExpiry]; raw != "" {
		expiry, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse stored expiry: %w", err)
		}
		token.Expiry = expiry
	}

	return &Credentials{Token: token, UserID: fields[fieldUserID]}, nil
}

func (s *RedisStore) Set(ctx context.Context, creds *Credentials) error {
	if creds == nil || creds.Token == nil {
		return errors.New("credentials must carry a token")
	}

	values := tokenFields(creds.Token)
	values[fieldRefreshToken] = creds.Token.RefreshToken
	values[fieldUserID] = creds.UserID

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, s.key)
		pipe.HSet(ctx, s.key, values)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to store credentials: %w", err)
	}
	return nil
}

func (s *RedisStore) Rotate(ctx context.Context, token *oauth2.Token) error {
	if token == nil {
		return errors.New("token must not be nil")
	}

	values := tokenFields(token)
	if token.RefreshToken != "" {
		values[fieldRefreshToken] = token.RefreshToken
	}

	// WATCH aborts the write if another process clears or rotates in between
	rotate := func(tx *redis.Tx) error {
		n, err := tx.Exists(ctx, s.key).Result()
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrNotFound
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, s.key, values)
			return nil
		})
		return err
	}

	for range maxRotateAttempts {
		err := s.client.Watch(ctx, rotate, s.key)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, ErrNotFound):
			return ErrNotFound
		case errors.Is(err, redis.TxFailedErr):
			continue
		default:
			return fmt.Errorf("failed to rotate token: %w", err)
		}
	}
	return fmt.Errorf("failed to rotate token: %w", redis.TxFailedErr)
}

func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("failed to clear credentials: %w", err)
	}
	return nil
}

func tokenFields(token *oauth2.Token) map[string]any {
	values := map[string]any{
		fieldAccessToken: token.AccessToken,
		fieldTokenType:   tokenType(token),
		fieldExpiry:      "",
	}
	if !token.Expiry.IsZero() {
		values[fieldExpiry] = token.Expiry.UTC().Format(time.RFC3339Nano)
	}
	return values
}
