package sqlite

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewSQLiteConfig_Default(t *testing.T) {
	os.Unsetenv("SQLITE_DB_PATH")

	cfg := NewSQLiteConfig()
	if cfg.Path != defaultPath {
		t.Errorf("Expected default path %q, got %q", defaultPath, cfg.Path)
	}
}

func TestNewSQLiteConfig_FromEnv(t *testing.T) {
	t.Setenv("SQLITE_DB_PATH", "/tmp/custom.db")

	cfg := NewSQLiteConfig()
	if cfg.Path != "/tmp/custom.db" {
		t.Errorf("Expected path from env, got %q", cfg.Path)
	}
}

func TestSQLiteDB_ConnectAndClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	database := NewSQLiteDB(&SQLiteConfig{Path: path})

	if err := database.Connect(); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}

	if database.DB() == nil {
		t.Fatal("Expected non-nil *sql.DB after Connect")
	}

	// migrations must have created the collections table
	var name string
	err := database.DB().QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='collections'",
	).Scan(&name)
	if err != nil {
		t.Fatalf("Expected collections table to exist: %v", err)
	}

	if err := database.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if database.DB() != nil {
		t.Error("Expected nil *sql.DB after Close")
	}
}

func TestSQLiteDB_DoubleConnect(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	database := NewSQLiteDB(&SQLiteConfig{Path: path})

	if err := database.Connect(); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	defer database.Close()

	if err := database.Connect(); err == nil {
		t.Error("Expected error on second Connect")
	}
}

func TestSQLiteDB_CloseWithoutConnect(t *testing.T) {
	database := NewSQLiteDB(&SQLiteConfig{Path: filepath.Join(t.TempDir(), "test.db")})

	if err := database.Close(); err != nil {
		t.Errorf("Close on unconnected database should be a no-op, got %v", err)
	}
}
