package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestNewDB_UnusableFileFails(t *testing.T) {
	// A directory at the database path cannot be opened as sqlite; NewDB
	// must close the half-opened handle and report the error.
	path := filepath.Join(t.TempDir(), "horabot.db")
	if err := os.MkdirAll(path, 0755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}

	db, err := NewDB(context.Background(), path)
	if err == nil {
		db.Close()
		t.Fatal("expected error for an unusable database file")
	}
}

func TestNewDB_CorruptFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "horabot.db")
	if err := os.WriteFile(path, []byte("no es una base de datos"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	db, err := NewDB(context.Background(), path)
	if err == nil {
		db.Close()
		t.Fatal("expected error for a corrupt database file")
	}
}
