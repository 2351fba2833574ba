// Package testutil opens throwaway databases for package tests.
package testutil

import (
	"path/filepath"
	"testing"

	"bookify/internal/database"

	"gorm.io/gorm"
)

// SQLite opens a file-backed SQLite database in t's temp dir and migrates
// the given models into it.
func SQLite(t *testing.T, models ...any) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := database.ConnectWith(dsn, database.Options{Silent: true})
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	if len(models) > 0 {
		if err := database.Migrate(db, models...); err != nil {
			t.Fatalf("failed to migrate db: %v", err)
		}
	}
	return db
}
