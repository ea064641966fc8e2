// Package testutil holds helpers shared by package tests.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"donation-backend/internal/client"
)

// NewDB returns a migrated SQLite database private to the test.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db") + "?_busy_timeout=5000"
	db, err := client.InitDBClient("sqlite", dsn, zerolog.Nop())
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = client.CloseDBClient(db)
	})

	return db
}
