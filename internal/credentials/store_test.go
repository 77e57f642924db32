package credentials

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/garrettladley/notemap/internal/db"
	notemapredis "github.com/garrettladley/notemap/internal/redis"
)

func newSQLiteStore(t *testing.T) Store {
	t.Helper()

	sqlDB, err := db.Open(t.Context(), "file:"+uuid.NewString()+"?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	return NewSQLiteStore(sqlDB)
}

func newMemoryStore(*testing.T) Store {
	return NewMemoryStore()
}

// newRedisStore runs against NOTEMAP_TEST_REDIS_URL and is skipped without it.
func newRedisStore(t *testing.T) Store {
	t.Helper()

	url := os.Getenv("NOTEMAP_TEST_REDIS_URL")
	if url == "" {
		t.Skip("NOTEMAP_TEST_REDIS_URL not set")
	}

	client, err := notemapredis.New(t.Context(), notemapredis.Config{URL: url})
	if err != nil {
		t.Fatalf("failed to connect to redis: %v", err)
	}

	store := NewRedisStore(client, "test-"+uuid.NewString())
	t.Cleanup(func() {
		_ = client.Del(context.Background(), store.key).Err()
		_ = client.Close()
	})
	return store
}

var stores = []struct {
	name string
	new  func(*testing.T) Store
}{
	{name: "memory", new: newMemoryStore},
	{name: "sqlite", new: newSQLiteStore},
	{name: "redis", new: newRedisStore},
}

func TestStoreEmpty(t *testing.T) {
	t.Parallel()

	for _, s := range stores {
		t.Run(s.name, func(t *testing.T) {
			t.Parallel()

			store := s.new(t)

			_, err := store.Get(t.Context())
			if !errors.Is(err, ErrNotFound) {
				t.Fatalf("Get() error = %v, want ErrNotFound", err)
			}

			has, err := HasToken(t.Context(), store)
			if err != nil || has {
				t.Errorf("HasToken() = %v, %v, want false, nil", has, err)
			}
		})
	}
}

func TestStoreSetGetClear(t *testing.T) {
	t.Parallel()

	expiry := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	want := &Credentials{
		Token: &oauth2.Token{
			AccessToken:  "access-1",
			TokenType:    "Bearer",
			RefreshToken: "refresh-1",
			Expiry:       expiry,
		},
		UserID: "user-42",
	}

	for _, s := range stores {
		t.Run(s.name, func(t *testing.T) {
			t.Parallel()

			ctx := t.Context()
			store := s.new(t)

			if err := store.Set(ctx, want); err != nil {
				t.Fatalf("Set() error = %v", err)
			}

			got, err := store.Get(ctx)
			if err != nil {
				t.Fatalf("Get() error = %v", err)
			}
			if diff := cmp.Diff(want, got, tokenCmp()); diff != "" {
				t.Errorf("Get() mismatch (-want +got):\n%s", diff)
			}

			if err := store.Clear(ctx); err != nil {
				t.Fatalf("Clear() error = %v", err)
			}
			if _, err := store.Get(ctx); !errors.Is(err, ErrNotFound) {
				t.Errorf("Get() after Clear error = %v, want ErrNotFound", err)
			}
		})
	}
}

func TestStoreRotate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		rotated     *oauth2.Token
		wantAccess  string
		wantRefresh string
	}{
		{
			name:        "keeps refresh token when none returned",
			rotated:     &oauth2.Token{AccessToken: "access-2"},
			wantAccess:  "access-2",
			wantRefresh: "refresh-1",
		},
		{
			name:        "replaces rotated refresh token",
			rotated:     &oauth2.Token{AccessToken: "access-2", RefreshToken: "refresh-2"},
			wantAccess:  "access-2",
			wantRefresh: "refresh-2",
		},
	}

	for _, s := range stores {
		for _, tt := range tests {
			t.Run(s.name+"/"+tt.name, func(t *testing.T) {
				t.Parallel()

				ctx := t.Context()
				store := s.new(t)

				initial := &Credentials{
					Token:  &oauth2.Token{AccessToken: "access-1", RefreshToken: "refresh-1"},
					UserID: "user-1",
				}
				if err := store.Set(ctx, initial); err != nil {
					t.Fatalf("Set() error = %v", err)
				}

				if err := store.Rotate(ctx, tt.rotated); err != nil {
					t.Fatalf("Rotate() error = %v", err)
				}

				got, err := store.Get(ctx)
				if err != nil {
					t.Fatalf("Get() error = %v", err)
				}
				if got.AccessToken() != tt.wantAccess {
					t.Errorf("AccessToken() = %q, want %q", got.AccessToken(), tt.wantAccess)
				}
				if got.RefreshToken() != tt.wantRefresh {
					t.Errorf("RefreshToken() = %q, want %q", got.RefreshToken(), tt.wantRefresh)
				}
				if got.UserID != "user-1" {
					t.Errorf("UserID = %q, want %q", got.UserID, "user-1")
				}
			})
		}
	}
}

func TestStoreRotateAfterClear(t *testing.T) {
	t.Parallel()

	rotated := &oauth2.Token{AccessToken: "access-2", RefreshToken: "refresh-2"}

	for _, s := range stores {
		t.Run(s.name, func(t *testing.T) {
			t.Parallel()

			ctx := t.Context()
			store := s.new(t)

			if err := store.Rotate(ctx, rotated); !errors.Is(err, ErrNotFound) {
				t.Errorf("Rotate() on empty store error = %v, want ErrNotFound", err)
			}

			if err := store.Set(ctx, pair(1)); err != nil {
				t.Fatalf("Set() error = %v", err)
			}
			if err := store.Clear(ctx); err != nil {
				t.Fatalf("Clear() error = %v", err)
			}

			if err := store.Rotate(ctx, rotated); !errors.Is(err, ErrNotFound) {
				t.Errorf("Rotate() after Clear error = %v, want ErrNotFound", err)
			}
			if got, err := store.Get(ctx); !errors.Is(err, ErrNotFound) {
				t.Errorf("Get() after Clear and Rotate = %+v, %v, want ErrNotFound", got, err)
			}
		})
	}
}

func TestStoreConcurrentRotateIsNeverTorn(t *testing.T) {
	t.Parallel()

	for _, s := range stores {
		t.Run(s.name, func(t *testing.T) {
			t.Parallel()

			ctx := t.Context()
			store := s.new(t)

			if err := store.Set(ctx, pair(0)); err != nil {
				t.Fatalf("Set() error = %v", err)
			}

			const writes = 50

			var wg sync.WaitGroup
			wg.Go(func() {
				for i := 1; i <= writes; i++ {
					if err := store.Rotate(ctx, pair(i).Token); err != nil {
						t.Errorf("Rotate() error = %v", err)
						return
					}
				}
			})

			for range 4 {
				wg.Go(func() {
					for range writes {
						assertConsistent(ctx, t, store)
					}
				})
			}

			wg.Wait()
		})
	}
}

func pair(n int) *Credentials {
	return &Credentials{
		Token: &oauth2.Token{
			AccessToken:  fmt.Sprintf("access-%d", n),
			RefreshToken: fmt.Sprintf("refresh-%d", n),
		},
		UserID: "user",
	}
}

func assertConsistent(ctx context.Context, t *testing.T, store Store) {
	t.Helper()

	got, err := store.Get(ctx)
	if err != nil {
		t.Errorf("Get() error = %v", err)
		return
	}

	access := strings.TrimPrefix(got.AccessToken(), "access-")
	refresh := strings.TrimPrefix(got.RefreshToken(), "refresh-")
	if access != refresh {
		t.Errorf("torn read: access=%q refresh=%q", got.AccessToken(), got.RefreshToken())
	}
}

func tokenCmp() cmp.Option {
	return cmp.Comparer(func(a, b *oauth2.Token) bool {
		if a == nil || b == nil {
			return a == b
		}
		return a.AccessToken == b.AccessToken &&
			a.TokenType == b.TokenType &&
			a.RefreshToken == b.RefreshToken &&
			a.Expiry.Equal(b.Expiry)
	})
}
