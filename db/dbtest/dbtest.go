// Package dbtest opens migrated in-memory SQLite stores for tests.
package dbtest

import (
	"testing"

	"starwars-api/db"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/driver/sqlite"
)

// New returns a fresh, migrated store that is closed when the test ends.
func New(t testing.TB) db.Database {
	t.Helper()
	log := zaptest.NewLogger(t)

	database, err := db.Open(sqlite.Open(":memory:"), log)
	require.NoError(t, err)

	// every pooled connection to :memory: would otherwise see its own empty database
	sqlDB, err := database.GetDB().DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Migrate(database, log))
	t.Cleanup(func() { _ = database.Close() })
	return database
}
