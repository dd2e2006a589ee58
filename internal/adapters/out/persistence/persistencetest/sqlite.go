// Package persistencetest opens throwaway stores for tests.
package persistencetest

import (
	"path/filepath"
	"testing"

	"pizzabot/internal/adapters/out/persistence"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NewSQLiteDB opens a migrated sqlite store in a temporary directory. The store is
// closed when the test finishes.
func NewSQLiteDB(t testing.TB) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "pizza.db")
	db, err := persistence.Open(persistence.Config{Driver: persistence.DriverSQLite, Path: path}, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, persistence.Migrate(db))

	t.Cleanup(func() {
		_ = persistence.Close(db)
	})
	return db
}

// Count returns the number of rows in table matching the optional condition.
func Count(t testing.TB, db *gorm.DB, table string, query string, args ...any) int64 {
	t.Helper()

	var n int64
	q := db.Table(table)
	if query != "" {
		q = q.Where(query, args...)
	}
	require.NoError(t, q.Count(&n).Error)
	return n
}
