package db

import (
	"testing"

	"github.com/google/uuid"
)

func TestOpenAppliesMigrations(t *testing.T) {
	t.Parallel()

	sqlDB, err := Open(t.Context(), "file:"+uuid.NewString()+"?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	for _, table := range []string{"credentials", "recent_users", "recent_locations"} {
		var count int
		err := sqlDB.QueryRowContext(t.Context(),
			"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&count)
		if err != nil {
			t.Fatalf("querying sqlite_master: %v", err)
		}
		if count != 1 {
			t.Errorf("table %q missing", table)
		}
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	t.Parallel()

	path := "file:" + uuid.NewString() + "?mode=memory&cache=shared"

	first, err := Open(t.Context(), path)
	if err != nil {
		t.Fatalf("first Open() error = %v", err)
	}
	t.Cleanup(func() { _ = first.Close() })

	second, err := Open(t.Context(), path)
	if err != nil {
		t.Fatalf("second Open() error = %v", err)
	}
	t.Cleanup(func() { _ = second.Close() })

	var applied int
	if err := second.QueryRowContext(t.Context(), "SELECT COUNT(*) FROM migrations_history").Scan(&applied); err != nil {
		t.Fatalf("counting migrations: %v", err)
	}
	if applied != 2 {
		t.Errorf("applied migrations = %d, want 2", applied)
	}
}

func TestDSN(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want string
	}{
		{path: "/tmp/notemap.db", want: "/tmp/notemap.db?_busy_timeout=5000&_foreign_keys=on"},
		{path: "file:x?mode=memory", want: "file:x?mode=memory&_busy_timeout=5000&_foreign_keys=on"},
	}

	for _, tt := range tests {
		if got := dsn(tt.path); got != tt.want {
			t.Errorf("dsn(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
