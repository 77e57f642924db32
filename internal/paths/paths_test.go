package paths

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFilesLiveUnderHome(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nm")
	t.Setenv("NOTEMAP_HOME", dir)

	db, err := DB()
	if err != nil {
		t.Fatalf("DB() error = %v", err)
	}
	if db != filepath.Join(dir, "notemap.db") {
		t.Errorf("DB() = %q", db)
	}

	log, err := Log()
	if err != nil {
		t.Fatalf("Log() error = %v", err)
	}
	if log != filepath.Join(dir, "notemap.log") {
		t.Errorf("Log() = %q", log)
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("directory not created: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o700 {
		t.Errorf("directory mode = %o, want 700", perm)
	}
}
