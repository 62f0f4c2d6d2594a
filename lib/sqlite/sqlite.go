package sqlite

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	logging "github.com/ipfs/go-log/v2"
	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/xerrors"
)

var log = logging.Logger("sqlite")

type MigrationFunc func(ctx context.Context, tx *sql.Tx) error

var pragmas = []string{
	"PRAGMA synchronous = normal",
	"PRAGMA temp_store = memory",
	"PRAGMA mmap_size = 30000000000",
	"PRAGMA page_size = 32768",
	"PRAGMA auto_vacuum = NONE",
	"PRAGMA automatic_index = OFF",
	"PRAGMA journal_mode = WAL",
	"PRAGMA read_uncommitted = ON",
	"PRAGMA foreign_keys = ON",
	"PRAGMA busy_timeout = 5000",
}

const metaTableDdl = `CREATE TABLE IF NOT EXISTS _meta (
	version UINT64 NOT NULL UNIQUE
)`

// Open opens the sqlite database at path, creating it and its parent
// directory if needed, and applies the standard pragmas.
func Open(path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, xerrors.Errorf("error creating database base directory [@ %s]: %w", path, err)
	}

	db, err := sql.Open("sqlite3", path+"?mode=rwc")
	if err != nil {
		return nil, xerrors.Errorf("error opening database [@ %s]: %w", path, err)
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, xerrors.Errorf("error setting database pragma %q: %w", pragma, err)
		}
	}

	return db, nil
}

// InitDb creates the schema on a fresh database and then brings it up to date
// by running every migration newer than the recorded version. The initial
// schema is version 1; migration i upgrades to version i+2.
func InitDb(ctx context.Context, name string, db *sql.DB, ddls []string, versionMigrations []MigrationFunc) error {
	start := time.Now()

	var exists bool
	err := db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM sqlite_master WHERE type='table' AND name='_meta')").Scan(&exists)
	if err != nil {
		return xerrors.Errorf("error looking for %s database version table: %w", name, err)
	}

	if !exists {
		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return xerrors.Errorf("error starting %s schema transaction: %w", name, err)
		}
		stmts := make([]string, 0, len(ddls)+2)
		stmts = append(stmts, ddls...)
		stmts = append(stmts, metaTableDdl, "INSERT INTO _meta (version) VALUES (1)")
		for _, ddl := range stmts {
			if _, err := tx.ExecContext(ctx, ddl); err != nil {
				_ = tx.Rollback()
				return xerrors.Errorf("error creating %s schema: %w", name, err)
			}
		}
		if err := tx.Commit(); err != nil {
			return xerrors.Errorf("error committing %s schema: %w", name, err)
		}
		log.Infow("created database schema", "db", name)
	}

	var version int
	if err := db.QueryRowContext(ctx, "SELECT MAX(version) FROM _meta").Scan(&version); err != nil {
		return xerrors.Errorf("error reading %s database version: %w", name, err)
	}

	if version > len(versionMigrations)+1 {
		return xerrors.Errorf("%s database version %d is newer than this binary supports (%d)", name, version, len(versionMigrations)+1)
	}

	for i := version - 1; i < len(versionMigrations); i++ {
		target := i + 2
		log.Infow("migrating database", "db", name, "version", target)

		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return xerrors.Errorf("error starting %s migration to version %d: %w", name, target, err)
		}
		if err := versionMigrations[i](ctx, tx); err != nil {
			_ = tx.Rollback()
			return xerrors.Errorf("error migrating %s to version %d: %w", name, target, err)
		}
		if _, err := tx.ExecContext(ctx, "INSERT INTO _meta (version) VALUES (?)", target); err != nil {
			_ = tx.Rollback()
			return xerrors.Errorf("error recording %s version %d: %w", name, target, err)
		}
		if err := tx.Commit(); err != nil {
			return xerrors.Errorf("error committing %s migration to version %d: %w", name, target, err)
		}
	}

	log.Debugw("database ready", "db", name, "took", time.Since(start))
	return nil
}
