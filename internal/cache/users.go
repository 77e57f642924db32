package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

type recentUsers struct {
	db  *sql.DB
	now func() time.Time
}

func (r *recentUsers) Add(ctx context.Context, user RecentUser) error {
	if user.UserID == "" {
		return errors.New("recent user must have an id")
	}
	if user.ViewedAt.IsZero() {
		user.ViewedAt = r.now()
	}

	const upsert = `
		INSERT INTO recent_users (user_id, username, display_name, avatar_url, viewed_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET
			username = excluded.username,
			display_name = excluded.display_name,
			avatar_url = excluded.avatar_url,
			viewed_at = excluded.viewed_at`

	const evict = `
		DELETE FROM recent_users WHERE user_id NOT IN (
			SELECT user_id FROM recent_users ORDER BY viewed_at DESC LIMIT ?
		)`

	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, upsert,
			user.UserID,
			user.Username,
			nullString(user.DisplayName),
			nullString(user.AvatarURL),
			user.ViewedAt.UTC(),
		); err != nil {
			return fmt.Errorf("failed to record recent user: %w", err)
		}
		if _, err := tx.ExecContext(ctx, evict, MaxEntries); err != nil {
			return fmt.Errorf("failed to evict recent users: %w", err)
		}
		return nil
	})
}

func (r *recentUsers) List(ctx context.Context, limit int) ([]RecentUser, error) {
	const query = `
		SELECT user_id, username, display_name, avatar_url, viewed_at
		FROM recent_users ORDER BY viewed_at DESC LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list recent users: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var users []RecentUser
	for rows.Next() {
		var (
			u                      RecentUser
			displayName, avatarURL sql.NullString
		)
		if err := rows.Scan(&u.UserID, &u.Username, &displayName, &avatarURL, &u.ViewedAt); err != nil {
			return nil, err
		}
		u.DisplayName = displayName.String
		u.AvatarURL = avatarURL.String
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *recentUsers) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM recent_users"); err != nil {
		return fmt.Errorf("failed to clear recent users: %w", err)
	}
	return nil
}
