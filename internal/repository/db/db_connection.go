package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const sqliteDriverName = "sqlite"

// InitDB opens/creates a SQLite DB file and ensures tables exist.
func InitDB(path string) (*sql.DB, error) {
	db, err := sql.Open(sqliteDriverName, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %q: %w", path, err)
	}

	// One writer: the edit path and the playback loop share the state row.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL;",
		"PRAGMA foreign_keys = ON;",
		"PRAGMA busy_timeout = 5000;",
	} {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("set %s: %w", pragma, err)
		}
	}

	if err := ensureSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return db, nil
}

const schemaBurnState = `
CREATE TABLE IF NOT EXISTS burn_state (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    start_date TIMESTAMP NOT NULL,
    end_date TIMESTAMP NOT NULL,
    playhead TIMESTAMP NOT NULL,
    initial_height REAL NOT NULL,
    candle_width REAL NOT NULL,
    burn_mode TEXT NOT NULL,
    calc_mode TEXT NOT NULL,
    burn_rate REAL NOT NULL,
    wax_density REAL NOT NULL,
    wax_burn_rate REAL NOT NULL,
    flame_color TEXT NOT NULL,
    wax_color TEXT NOT NULL,
    ruler_color TEXT NOT NULL,
    ruler_label_color TEXT NOT NULL,
    camera_state TEXT,
    playing BOOLEAN NOT NULL,
    updated_at TIMESTAMP NOT NULL
);
`

const schemaBurnEvents = `
CREATE TABLE IF NOT EXISTS burn_events (
    id TEXT PRIMARY KEY,
    occurred_at TIMESTAMP NOT NULL,
    type TEXT NOT NULL,
    message TEXT NOT NULL,
    meta TEXT
);
`

const indexBurnEvents = `
CREATE INDEX IF NOT EXISTS idx_burn_events_occurred_at ON burn_events (occurred_at);
`

const schemaUsers = `
CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    username TEXT UNIQUE NOT NULL,
    password_hash TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL
);
`

func ensureSchema(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin schema transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for i, stmt := range []string{
		schemaBurnState,
		schemaBurnEvents,
		indexBurnEvents,
		schemaUsers,
	} {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema transaction: %w", err)
	}
	return nil
}
