package storage

import "testing"

func TestNewAndMigrate(t *testing.T) {
	dbPath := t.TempDir() + "/test.db"

	db, err := New(dbPath)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}

	// Migrate is idempotent
	if err := Migrate(db); err != nil {
		t.Fatalf("second Migrate() error = %v", err)
	}

	var name string
	err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='students'").Scan(&name)
	if err != nil {
		t.Fatalf("students table missing: %v", err)
	}
}
