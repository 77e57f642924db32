// Package cache keeps small local lists that survive restarts: recently
// viewed users and recently used locations.
package cache

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// MaxEntries bounds each recent list; the oldest rows are evicted first.
const MaxEntries = 20

type RecentUser struct {
	UserID      string
	Username    string
	DisplayName string
	AvatarURL   string
	ViewedAt    time.Time
}

type RecentLocation struct {
	PlaceID   string
	Name      string
	Address   string
	Latitude  float64
	Longitude float64
	UsedAt    time.Time
}

type RecentUsers interface {
	Add(ctx context.Context, user RecentUser) error
	List(ctx context.Context, limit int) ([]RecentUser, error)
	Clear(ctx context.Context) error
}

type RecentLocations interface {
	Add(ctx context.Context, loc RecentLocation) error
	List(ctx context.Context, limit int) ([]RecentLocation, error)
	Clear(ctx context.Context) error
}

type Cache struct {
	Users     RecentUsers
	Locations RecentLocations
}

func New(db *sql.DB) *Cache {
	return &Cache{
		Users:     &recentUsers{db: db, now: time.Now},
		Locations: &recentLocations{db: db, now: time.Now},
	}
}

func clampLimit(limit int) int {
	if limit <= 0 || limit > MaxEntries {
		return MaxEntries
	}
	return limit
}

// withTx runs fn in a transaction, committing only when fn succeeds.
func withTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
