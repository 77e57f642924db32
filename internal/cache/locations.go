package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

type recentLocations struct {
	db  *sql.DB
	now func() time.Time
}

func (r *recentLocations) Add(ctx context.Context, loc RecentLocation) error {
	if loc.PlaceID == "" {
		return errors.New("recent location must have a place id")
	}
	if loc.UsedAt.IsZero() {
		loc.UsedAt = r.now()
	}

	const upsert = `
		INSERT INTO recent_locations (place_id, name, address, latitude, longitude, used_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (place_id) DO UPDATE SET
			name = excluded.name,
			address = excluded.address,
			latitude = excluded.latitude,
			longitude = excluded.longitude,
			used_at = excluded.used_at`

	const evict = `
		DELETE FROM recent_locations WHERE place_id NOT IN (
			SELECT place_id FROM recent_locations ORDER BY used_at DESC LIMIT ?
		)`

	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, upsert,
			loc.PlaceID,
			loc.Name,
			nullString(loc.Address),
			loc.Latitude,
			loc.Longitude,
			loc.UsedAt.UTC(),
		); err != nil {
			return fmt.Errorf("failed to record recent location: %w", err)
		}
		if _, err := tx.ExecContext(ctx, evict, MaxEntries); err != nil {
			return fmt.Errorf("failed to evict recent locations: %w", err)
		}
		return nil
	})
}

func (r *recentLocations) List(ctx context.Context, limit int) ([]RecentLocation, error) {
	const query = `
		SELECT place_id, name, address, latitude, longitude, used_at
		FROM recent_locations ORDER BY used_at DESC LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list recent locations: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var locs []RecentLocation
	for rows.Next() {
		var (
			l       RecentLocation
			address sql.NullString
		)
		if err := rows.Scan(&l.PlaceID, &l.Name, &address, &l.Latitude, &l.Longitude, &l.UsedAt); err != nil {
			return nil, err
		}
		l.Address = address.String
		locs = append(locs, l)
	}
	return locs, rows.Err()
}

func (r *recentLocations) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM recent_locations"); err != nil {
		return fmt.Errorf("failed to clear recent locations: %w", err)
	}
	return nil
}
