package credentials

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/oauth2"
)

var _ Store = (*SQLiteStore)(nil)

// SQLiteStore keeps the credentials in the single-row credentials table.
type SQLiteStore struct {
	db *sql.DB
	mu sync.Mutex // serializes writers
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Get(ctx context.Context) (*Credentials, error) {
	const query = `
		SELECT access_token, refresh_token, token_type, expiry, user_id
		FROM credentials WHERE id = 1`

	var (
		access    string
		refresh   sql.NullString
		tokenType string
		expiry    sql.NullTime
		userID    sql.NullString
	)

	err := s.db.QueryRowContext(ctx, query).Scan(&access, &refresh, &tokenType, &expiry, &userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load credentials: %w", err)
	}

	token := &oauth2.Token{
		AccessToken:  access,
		TokenType:    tokenType,
		RefreshToken: refresh.String,
	}
	if expiry.Valid {
		token.Expiry = expiry.Time
	}

	return &Credentials{Token: token, UserID: userID.String}, nil
}

func (s *SQLiteStore) Set(ctx context.Context, creds *Credentials) error {
	if creds == nil || creds.Token == nil {
		return errors.New("credentials must carry a token")
	}

	const query = `
		INSERT INTO credentials (id, access_token, refresh_token, token_type, expiry, user_id, updated_at)
		VALUES (1, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			access_token = excluded.access_token,
			refresh_token = excluded.refresh_token,
			token_type = excluded.token_type,
			expiry = excluded.expiry,
			user_id = excluded.user_id,
			updated_at = excluded.updated_at`

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, query,
		creds.Token.AccessToken,
		nullString(creds.Token.RefreshToken),
		tokenType(creds.Token),
		nullTime(creds.Token.Expiry),
		nullString(creds.UserID),
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert credentials: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Rotate(ctx context.Context, token *oauth2.Token) error {
	if token == nil {
		return errors.New("token must not be nil")
	}

	// one statement, so readers never observe a half-rotated pair
	const query = `
		UPDATE credentials SET
			access_token = ?,
			refresh_token = COALESCE(?, refresh_token),
			token_type = ?,
			expiry = ?,
			updated_at = ?
		WHERE id = 1`

	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, query,
		token.AccessToken,
		nullString(token.RefreshToken),
		tokenType(token),
		nullTime(token.Expiry),
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to rotate token: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to rotate token: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.ExecContext(ctx, "DELETE FROM credentials"); err != nil {
		return fmt.Errorf("failed to clear credentials: %w", err)
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t.UTC(), Valid: !t.IsZero()}
}
