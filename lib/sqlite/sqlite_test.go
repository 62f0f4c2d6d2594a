package sqlite_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/filecoin-project/lotus-escrow/lib/sqlite"
)

var ddl = []string{
	`CREATE TABLE IF NOT EXISTS entries (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS entries_name_index ON entries (name)`,
}

func versions(t *testing.T, db *sql.DB) []int {
	rows, err := db.Query("SELECT version FROM _meta ORDER BY version")
	require.NoError(t, err)
	defer rows.Close() //nolint:errcheck

	var out []int
	for rows.Next() {
		var v int
		require.NoError(t, rows.Scan(&v))
		out = append(out, v)
	}
	require.NoError(t, rows.Err())
	return out
}

func TestSqlite(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")

	db, err := sqlite.Open(dbPath)
	req.NoError(err)
	req.NoError(sqlite.InitDb(ctx, "testdb", db, ddl, nil))
	req.Equal([]int{1}, versions(t, db))

	_, err = db.Exec("INSERT INTO entries (name) VALUES ('first')")
	req.NoError(err)
	req.NoError(db.Close())

	// reopening keeps data and version
	db, err = sqlite.Open(dbPath)
	req.NoError(err)
	req.NoError(sqlite.InitDb(ctx, "testdb", db, ddl, nil))
	req.Equal([]int{1}, versions(t, db))

	migration1 := func(ctx context.Context, tx *sql.Tx) error {
		_, err := tx.Exec("ALTER TABLE entries ADD COLUMN extra TEXT NOT NULL DEFAULT '!'")
		return err
	}
	req.NoError(sqlite.InitDb(ctx, "testdb", db, ddl, []sqlite.MigrationFunc{migration1}))
	req.Equal([]int{1, 2}, versions(t, db))

	var name, extra string
	req.NoError(db.QueryRow("SELECT name, extra FROM entries WHERE id = 1").Scan(&name, &extra))
	req.Equal("first", name)
	req.Equal("!", extra)

	// migrations only run once
	req.NoError(sqlite.InitDb(ctx, "testdb", db, ddl, []sqlite.MigrationFunc{migration1}))
	req.Equal([]int{1, 2}, versions(t, db))

	// an older binary refuses a newer database
	req.Error(sqlite.InitDb(ctx, "testdb", db, ddl, nil))
	req.NoError(db.Close())
}
