package repository

import (
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"reviewcash/pkg/config"
	"reviewcash/pkg/sqlite"
)

const testSchema = `
CREATE TABLE users (
    uid        TEXT PRIMARY KEY,
    balance    INTEGER NOT NULL DEFAULT 0,
    role       TEXT NOT NULL DEFAULT 'user',
    created_at TEXT NOT NULL
);

CREATE TABLE tasks (
    id     INTEGER PRIMARY KEY AUTOINCREMENT,
    title  TEXT NOT NULL,
    reward INTEGER NOT NULL DEFAULT 0,
    status TEXT NOT NULL DEFAULT 'active'
);
`

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := sqlite.Open(config.SQLiteConfig{Path: filepath.Join(t.TempDir(), "test.db")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(testSchema)
	require.NoError(t, err)
	return db
}
